package workbench

import (
	"fmt"
	"time"

	"github.com/jmcandrew/stevedore/internal/analysis"
)

// Actors recorded on history entries.
const (
	ActorSystem   = "System"
	ActorAIAgent  = "AI Agent"
	ActorOperator = "Operator"
)

// Actions recorded on history entries.
const (
	ActionCreated  = "Created"
	ActionVerified = "Verified & Trained"
	ActionUnlocked = "Unlocked for Edit"
)

// ActionAnalyzed renders the history action for a completed analysis.
func ActionAnalyzed(kind analysis.Kind) string {
	return fmt.Sprintf("Analyzed (%s)", kind)
}

// HistoryEntry is one record in a document's ledger. Entries are
// prepended at capture time and never edited, removed, or reordered.
type HistoryEntry struct {
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
	User      string    `json:"user"`
}

// prepend returns a new history slice with entry at the head. The input
// slice is never mutated, so previously returned documents stay stable.
func prepend(history []HistoryEntry, entry HistoryEntry) []HistoryEntry {
	out := make([]HistoryEntry, 0, len(history)+1)
	out = append(out, entry)
	return append(out, history...)
}
