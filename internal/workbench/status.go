package workbench

// Status is a document's position in the workbench lifecycle.
//
// Transitions:
//
//	draft     --start analysis--> analyzing
//	analyzing --success--------> analyzed   (result attached, history entry)
//	analyzing --failure--------> draft      (silent revert, no history)
//	draft|analyzed --verify----> verified   (history entry)
//	verified  --unlock---------> draft      (history entry)
//
// Content edits are legal only in draft and analyzed. At most one
// analysis may be in flight per document; the guard lives here rather
// than in any presentation layer.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusAnalyzing Status = "analyzing"
	StatusAnalyzed  Status = "analyzed"
	StatusVerified  Status = "verified"
)

// Editable reports whether content edits are legal in this status.
func (s Status) Editable() bool {
	return s == StatusDraft || s == StatusAnalyzed
}

// Analyzable reports whether an analysis operation may start in this status.
func (s Status) Analyzable() bool {
	return s == StatusDraft || s == StatusAnalyzed
}

// Verifiable reports whether a verify transition is legal in this status.
// Verify is legal from any non-analyzing state; re-verifying a verified
// document is a harmless no-op handled by the store.
func (s Status) Verifiable() bool {
	return s != StatusAnalyzing
}
