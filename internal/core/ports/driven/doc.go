// Package driven defines the secondary ports of the pipeline: interfaces
// implemented by adapters the core calls out to (format extractors, the
// OCR engine, the page rasteriser, NLP analysis, report storage, config).
package driven
