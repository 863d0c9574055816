package intake_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/jmcandrew/stevedore/internal/intake"
)

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", intake.ErrNotFound, http.StatusNotFound},
		{"duplicate", intake.ErrDuplicate, http.StatusConflict},
		{"file too large", intake.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
		{"invalid file", intake.ErrInvalidFile, http.StatusBadRequest},
		{"unknown error", errors.New("something else"), http.StatusInternalServerError},
		{"wrapped not found", fmt.Errorf("find failed: %w", intake.ErrNotFound), http.StatusNotFound},
		{"wrapped duplicate", fmt.Errorf("insert failed: %w", intake.ErrDuplicate), http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := intake.MapHTTPStatus(tt.err)
			if got != tt.want {
				t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestFiltersFromQuery(t *testing.T) {
	t.Run("all params present", func(t *testing.T) {
		values := url.Values{
			"status":         {"review"},
			"filename":       {"invoice"},
			"supplier":       {"maersk"},
			"doc_type":       {"Invoice"},
			"reference":      {"INV-2024-001"},
			"min_confidence": {"80"},
		}

		f := intake.FiltersFromQuery(values)

		if f.Status == nil || *f.Status != "review" {
			t.Errorf("Status = %v, want review", f.Status)
		}
		if f.Filename == nil || *f.Filename != "invoice" {
			t.Errorf("Filename = %v, want invoice", f.Filename)
		}
		if f.Supplier == nil || *f.Supplier != "maersk" {
			t.Errorf("Supplier = %v, want maersk", f.Supplier)
		}
		if f.DocType == nil || *f.DocType != "Invoice" {
			t.Errorf("DocType = %v, want Invoice", f.DocType)
		}
		if f.Reference == nil || *f.Reference != "INV-2024-001" {
			t.Errorf("Reference = %v, want INV-2024-001", f.Reference)
		}
		if f.MinConfidence == nil || *f.MinConfidence != 80 {
			t.Errorf("MinConfidence = %v, want 80", f.MinConfidence)
		}
	})

	t.Run("empty params yield nil fields", func(t *testing.T) {
		f := intake.FiltersFromQuery(url.Values{})

		if f.Status != nil {
			t.Errorf("Status = %v, want nil", f.Status)
		}
		if f.Filename != nil {
			t.Errorf("Filename = %v, want nil", f.Filename)
		}
		if f.Supplier != nil {
			t.Errorf("Supplier = %v, want nil", f.Supplier)
		}
		if f.DocType != nil {
			t.Errorf("DocType = %v, want nil", f.DocType)
		}
		if f.Reference != nil {
			t.Errorf("Reference = %v, want nil", f.Reference)
		}
		if f.MinConfidence != nil {
			t.Errorf("MinConfidence = %v, want nil", f.MinConfidence)
		}
	})

	t.Run("invalid min_confidence ignored", func(t *testing.T) {
		values := url.Values{"min_confidence": {"not-a-number"}}
		f := intake.FiltersFromQuery(values)

		if f.MinConfidence != nil {
			t.Errorf("MinConfidence = %v, want nil", f.MinConfidence)
		}
	})
}
