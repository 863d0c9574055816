// Package module composes prefix-scoped HTTP modules, each carrying its
// own router and middleware stack, onto a single server router.
package module

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/jmcandrew/stevedore/pkg/middleware"
)

// Module serves a single-level path prefix (e.g. "/api") by stripping the
// prefix and delegating to an inner router wrapped in module middleware.
type Module struct {
	prefix     string
	router     http.Handler
	middleware middleware.System
}

// New creates a Module for the given prefix. Panics on an empty,
// unrooted, or multi-level prefix since that is a wiring bug.
func New(prefix string, router http.Handler) *Module {
	if err := validatePrefix(prefix); err != nil {
		panic(err)
	}
	return &Module{
		prefix:     prefix,
		router:     router,
		middleware: middleware.New(),
	}
}

// Prefix returns the module's path prefix.
func (m *Module) Prefix() string {
	return m.prefix
}

// Use appends middleware to the module's stack.
func (m *Module) Use(mw func(http.Handler) http.Handler) {
	m.middleware.Use(mw)
}

// Serve strips the module prefix from the request path and dispatches to
// the wrapped inner router.
func (m *Module) Serve(w http.ResponseWriter, req *http.Request) {
	inner := strip(req.URL.Path, m.prefix)
	m.middleware.Apply(m.router).ServeHTTP(w, rewrite(req, inner))
}

func rewrite(req *http.Request, path string) *http.Request {
	r := new(http.Request)
	*r = *req
	r.URL = new(url.URL)
	*r.URL = *req.URL
	r.URL.Path = path
	r.URL.RawPath = ""
	return r
}

func strip(full, prefix string) string {
	path := full[len(prefix):]
	if path == "" {
		return "/"
	}
	return path
}

func validatePrefix(prefix string) error {
	switch {
	case prefix == "":
		return fmt.Errorf("module prefix cannot be empty")
	case !strings.HasPrefix(prefix, "/"):
		return fmt.Errorf("module prefix must start with /: %s", prefix)
	case strings.Count(prefix, "/") != 1:
		return fmt.Errorf("module prefix must be a single path segment: %s", prefix)
	}
	return nil
}
