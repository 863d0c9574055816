package feed_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jmcandrew/stevedore/internal/feed"
)

func setupMux(h *feed.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	group := h.Routes()
	for _, route := range group.Routes {
		pattern := route.Method + " " + group.Prefix + route.Pattern
		mux.HandleFunc(pattern, route.Handler)
	}
	return mux
}

func TestHandlerList(t *testing.T) {
	h := feed.NewHandler(newFeed(t, feed.Options{}), discard())
	mux := setupMux(h)

	t.Run("returns full feed", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/feed", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}

		var entries []feed.Entry
		if err := json.NewDecoder(rec.Body).Decode(&entries); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if len(entries) != 10 {
			t.Errorf("got %d entries, want 10", len(entries))
		}
	})

	t.Run("search narrows results", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/feed?search=ofac", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		var entries []feed.Entry
		if err := json.NewDecoder(rec.Body).Decode(&entries); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if len(entries) != 1 || entries[0].ID != "LOG-9905" {
			t.Errorf("entries = %+v, want single LOG-9905", entries)
		}
	})

	t.Run("sort with descending prefix", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/feed?sort=-user", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		var entries []feed.Entry
		if err := json.NewDecoder(rec.Body).Decode(&entries); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		for i := 1; i < len(entries); i++ {
			if entries[i].User > entries[i-1].User {
				t.Fatalf("entries not sorted by user descending: %s before %s", entries[i-1].User, entries[i].User)
			}
		}
	})
}
