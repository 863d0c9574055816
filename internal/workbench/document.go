// Package workbench implements the document workbench domain for
// Stevedore: an in-memory store of working documents, the lifecycle
// state machine that governs edits and analysis operations, and the
// per-document history ledger.
package workbench

import (
	"time"

	"github.com/jmcandrew/stevedore/internal/analysis"
)

// Document is a unit of work moving through the draft/analyze/verify
// lifecycle. The store owns all instances; callers receive copies.
type Document struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Status       Status    `json:"status"`
	LastModified time.Time `json:"last_modified"`

	// AnalysisResult and AnalysisType are retained across unlock; a
	// re-analysis overwrites them.
	AnalysisResult *analysis.Result `json:"analysis_result,omitempty"`
	AnalysisType   analysis.Kind    `json:"analysis_type,omitempty"`

	// History is newest first and append-only.
	History []HistoryEntry `json:"history"`
}

// CreateCommand carries the data needed to register a new draft document.
type CreateCommand struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// EditCommand carries a content replacement for a document.
type EditCommand struct {
	Content string `json:"content"`
}

// AnalyzeCommand selects the analysis operation to run on a document.
type AnalyzeCommand struct {
	Kind string `json:"kind"`
}

// Clock abstracts time capture so transitions can be pinned in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock is the default Clock backed by time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
