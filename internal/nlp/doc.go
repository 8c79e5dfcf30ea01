// Package nlp implements the analysis half of the pipeline: language
// detection, the title and section heuristics, and the TF-IDF-based
// keyword, summary, and entity extractors.
//
// The heuristics (DetectTitle, ExtractSections, ExtractKeywords) are
// pure functions. Model-backed analysis lives on Engine, of which one
// shared instance exists per process.
package nlp
