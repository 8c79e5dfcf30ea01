// Package domain contains the core types of the metadata pipeline:
// the Metadata record, embedded document properties, stored reports,
// and the domain error taxonomy.
//
// Domain types have no dependencies on adapters or external libraries
// beyond the standard library.
package domain
