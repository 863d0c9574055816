package middleware_test

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"

	"github.com/jmcandrew/stevedore/pkg/middleware"
)

func TestStackOrder(t *testing.T) {
	var order []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	stack := middleware.New()
	stack.Use(tag("outer"))
	stack.Use(tag("inner"))

	handler := stack.Apply(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	want := []string{"outer", "inner", "handler"}
	if !slices.Equal(order, want) {
		t.Errorf("call order = %v, want %v", order, want)
	}
}

func TestCORS(t *testing.T) {
	cfg := &middleware.CORSConfig{
		Enabled: true,
		Origins: []string{"http://localhost:5173"},
	}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := middleware.CORS(cfg)(next)

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/documents", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
			t.Errorf("Allow-Origin = %q, want the request origin", got)
		}
		if got := rec.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(got, "DELETE") {
			t.Errorf("Allow-Methods = %q, want default method list", got)
		}
		if got := rec.Header().Get("Access-Control-Max-Age"); got != "3600" {
			t.Errorf("Max-Age = %q, want 3600", got)
		}
		if rec.Code != http.StatusNoContent {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
		}
	})

	t.Run("unknown origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/documents", nil)
		req.Header.Set("Origin", "http://evil.example")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("Allow-Origin = %q, want empty", got)
		}
	})

	t.Run("preflight short-circuits", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/documents", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
		}
	})

	t.Run("disabled passes through", func(t *testing.T) {
		disabled := &middleware.CORSConfig{Enabled: false}
		req := httptest.NewRequest(http.MethodGet, "/documents", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		rec := httptest.NewRecorder()
		middleware.CORS(disabled)(next).ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("Allow-Origin = %q, want empty", got)
		}
		if rec.Code != http.StatusNoContent {
			t.Errorf("status = %d, want pass-through %d", rec.Code, http.StatusNoContent)
		}
	})
}

func TestCORSConfigFinalize(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := &middleware.CORSConfig{}
		if err := cfg.Finalize(nil); err != nil {
			t.Fatalf("Finalize failed: %v", err)
		}
		if len(cfg.AllowedMethods) != 5 {
			t.Errorf("AllowedMethods = %v, want the five defaults", cfg.AllowedMethods)
		}
		if cfg.MaxAge != 3600 {
			t.Errorf("MaxAge = %d, want 3600", cfg.MaxAge)
		}
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("TEST_CORS_ENABLED", "true")
		t.Setenv("TEST_CORS_ORIGINS", "http://a.example, http://b.example")
		t.Setenv("TEST_CORS_MAX_AGE", "600")

		cfg := &middleware.CORSConfig{}
		env := &middleware.CORSEnv{
			Enabled: "TEST_CORS_ENABLED",
			Origins: "TEST_CORS_ORIGINS",
			MaxAge:  "TEST_CORS_MAX_AGE",
		}
		if err := cfg.Finalize(env); err != nil {
			t.Fatalf("Finalize failed: %v", err)
		}

		if !cfg.Enabled {
			t.Error("Enabled = false, want true from env")
		}
		want := []string{"http://a.example", "http://b.example"}
		if !slices.Equal(cfg.Origins, want) {
			t.Errorf("Origins = %v, want %v", cfg.Origins, want)
		}
		if cfg.MaxAge != 600 {
			t.Errorf("MaxAge = %d, want 600", cfg.MaxAge)
		}
	})
}

func TestCORSConfigMerge(t *testing.T) {
	base := &middleware.CORSConfig{
		Enabled: true,
		Origins: []string{"http://base.example"},
		MaxAge:  3600,
	}
	base.Merge(&middleware.CORSConfig{
		Enabled: false,
		Origins: []string{"http://overlay.example"},
	})

	if base.Enabled {
		t.Error("Enabled = true, want overlay value false")
	}
	if len(base.Origins) != 1 || base.Origins[0] != "http://overlay.example" {
		t.Errorf("Origins = %v, want overlay origins", base.Origins)
	}
	if base.MaxAge != 3600 {
		t.Errorf("MaxAge = %d, want base value retained", base.MaxAge)
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, "missing")
	})

	req := httptest.NewRequest(http.MethodGet, "/documents/DOC-404", nil)
	rec := httptest.NewRecorder()
	middleware.Logger(logger)(next).ServeHTTP(rec, req)

	line := buf.String()
	if !strings.Contains(line, "status=404") {
		t.Errorf("log line %q missing resolved status", line)
	}
	if !strings.Contains(line, "method=GET") {
		t.Errorf("log line %q missing method", line)
	}
	if !strings.Contains(line, "uri=/documents/DOC-404") {
		t.Errorf("log line %q missing uri", line)
	}
}

func TestLoggerDefaultStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "implicit 200")
	})

	rec := httptest.NewRecorder()
	middleware.Logger(logger)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if line := buf.String(); !strings.Contains(line, "status=200") {
		t.Errorf("log line %q, want implicit status 200", line)
	}
}
