package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedFormat indicates the file extension is not one of
	// the supported document types. Fatal to metadata generation.
	ErrUnsupportedFormat = errors.New("unsupported file type")

	// ErrExtraction indicates the underlying reader or OCR engine failed
	// while extracting text. Fatal to metadata generation.
	ErrExtraction = errors.New("text extraction failed")
)
