// Package intake implements the document intake registry for
// Stevedore. It provides types, data access, and business logic for
// uploading intake documents, tracking their processing disposition,
// and storing payloads in blob storage.
package intake

import (
	"time"

	"github.com/google/uuid"
)

// Processing dispositions for an intake record.
const (
	StatusProcessed = "processed"
	StatusReview    = "review"
	StatusRejected  = "rejected"
	StatusAnalyzing = "analyzing"
)

// Record represents a registered intake document with its metadata and
// blob storage reference.
type Record struct {
	ID          uuid.UUID `json:"id"`
	Reference   string    `json:"reference"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	PageCount   *int      `json:"page_count"`
	StorageKey  string    `json:"storage_key"`
	Supplier    string    `json:"supplier"`
	DocType     string    `json:"doc_type"`
	Confidence  int       `json:"confidence"`
	IssueCount  int       `json:"issue_count"`
	Status      string    `json:"status"`
	ReceivedAt  time.Time `json:"received_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateCommand carries the data needed to upload and register a new
// intake record. Data holds the raw file bytes. PageCount is optional
// and may be extracted by the caller via pdfcpu; nil values are stored
// as NULL.
type CreateCommand struct {
	Data        []byte
	Filename    string
	ContentType string
	Reference   string
	Supplier    string
	DocType     string
	PageCount   *int
}

// BatchResult reports the outcome of a single file within a batch
// upload. On success, Record is populated and Error is empty.
type BatchResult struct {
	Record   *Record `json:"record,omitempty"`
	Filename string  `json:"filename"`
	Error    string  `json:"error,omitempty"`
}
