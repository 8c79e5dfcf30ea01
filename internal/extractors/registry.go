// Package extractors provides implementations of the Extractor interface
// for the supported document formats. Each extractor knows how to pull
// text and embedded metadata out of a specific file type.
//
// Extractors are registered with the Registry at startup and selected
// by lowercased file extension.
package extractors

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Raunakgup/auto-metadata-gen/internal/core/domain"
	"github.com/Raunakgup/auto-metadata-gen/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.ExtractorRegistry = (*Registry)(nil)

// Registry maps file extensions to their extractors.
type Registry struct {
	byExt map[string]driven.Extractor
}

// NewRegistry creates an empty extractor registry.
func NewRegistry() *Registry {
	return &Registry{
		byExt: make(map[string]driven.Extractor),
	}
}

// Register adds an extractor for every extension it reports.
// A later registration for the same extension replaces the earlier one.
func (r *Registry) Register(e driven.Extractor) {
	for _, ext := range e.Extensions() {
		r.byExt[strings.ToLower(ext)] = e
	}
}

// ForPath returns the extractor for the path's extension.
// Extension matching is case-insensitive.
func (r *Registry) ForPath(path string) (driven.Extractor, error) {
	ext := strings.ToLower(filepath.Ext(path))
	e, ok := r.byExt[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, ext)
	}
	return e, nil
}

// Supports reports whether the path's extension has a registered extractor.
func (r *Registry) Supports(path string) bool {
	_, err := r.ForPath(path)
	return err == nil
}

// Extensions returns all registered extensions, sorted.
func (r *Registry) Extensions() []string {
	exts := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
