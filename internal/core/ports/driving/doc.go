// Package driving defines the primary ports of the pipeline: interfaces
// the CLI and HTTP adapters call into the core through.
package driving
