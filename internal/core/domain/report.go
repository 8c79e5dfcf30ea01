package domain

import "time"

// Report is a stored record of one completed metadata generation.
// Reports are immutable once saved.
type Report struct {
	// ID is the unique identifier for the report.
	ID string

	// Filename is the base name of the processed file.
	Filename string

	// Metadata is the full record produced by the pipeline.
	Metadata Metadata

	// CreatedAt is when the report was generated.
	CreatedAt time.Time
}
