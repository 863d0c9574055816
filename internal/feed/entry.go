// Package feed implements the live audit feed: a capped ring of audit
// entries fed by a background generator simulating platform activity.
package feed

import "time"

// EntryType categorizes an audit entry's origin.
type EntryType string

const (
	TypeSystem     EntryType = "System"
	TypeManual     EntryType = "Manual"
	TypeSecurity   EntryType = "Security"
	TypeValidation EntryType = "Validation"
)

// Entry is one record in the audit feed.
type Entry struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Type       EntryType `json:"type"`
	Action     string    `json:"action"`
	Details    string    `json:"details"`
	DocumentID string    `json:"document_id"`
	User       string    `json:"user"`
}
