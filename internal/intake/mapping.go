package intake

import (
	"net/url"
	"strconv"

	"github.com/jmcandrew/stevedore/pkg/query"
	"github.com/jmcandrew/stevedore/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "intake_records", "r").
	Project("id", "ID").
	Project("reference", "Reference").
	Project("filename", "Filename").
	Project("content_type", "ContentType").
	Project("size_bytes", "SizeBytes").
	Project("page_count", "PageCount").
	Project("storage_key", "StorageKey").
	Project("supplier", "Supplier").
	Project("doc_type", "DocType").
	Project("confidence", "Confidence").
	Project("issue_count", "IssueCount").
	Project("status", "Status").
	Project("received_at", "ReceivedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field:      "ReceivedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for intake queries. Nil
// fields are ignored. Status, DocType, and Reference use exact
// matching; Filename and Supplier use case-insensitive contains
// matching. MinConfidence keeps records at or above a threshold.
type Filters struct {
	Status        *string `json:"status,omitempty"`
	Filename      *string `json:"filename,omitempty"`
	Supplier      *string `json:"supplier,omitempty"`
	DocType       *string `json:"doc_type,omitempty"`
	Reference     *string `json:"reference,omitempty"`
	MinConfidence *int    `json:"min_confidence,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("Status", f.Status).
		WhereContains("Filename", f.Filename).
		WhereContains("Supplier", f.Supplier).
		WhereEquals("DocType", f.DocType).
		WhereEquals("Reference", f.Reference).
		WhereAtLeast("Confidence", f.MinConfidence)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if s := values.Get("status"); s != "" {
		f.Status = &s
	}

	if fn := values.Get("filename"); fn != "" {
		f.Filename = &fn
	}

	if sp := values.Get("supplier"); sp != "" {
		f.Supplier = &sp
	}

	if dt := values.Get("doc_type"); dt != "" {
		f.DocType = &dt
	}

	if ref := values.Get("reference"); ref != "" {
		f.Reference = &ref
	}

	if mc := values.Get("min_confidence"); mc != "" {
		if v, err := strconv.Atoi(mc); err == nil {
			f.MinConfidence = &v
		}
	}

	return f
}

func scanRecord(s repository.Scanner) (Record, error) {
	var r Record
	err := s.Scan(
		&r.ID,
		&r.Reference,
		&r.Filename,
		&r.ContentType,
		&r.SizeBytes,
		&r.PageCount,
		&r.StorageKey,
		&r.Supplier,
		&r.DocType,
		&r.Confidence,
		&r.IssueCount,
		&r.Status,
		&r.ReceivedAt,
		&r.UpdatedAt,
	)
	return r, err
}
