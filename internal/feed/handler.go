package feed

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/jmcandrew/stevedore/pkg/handlers"
	"github.com/jmcandrew/stevedore/pkg/routes"
)

// Handler provides HTTP endpoints for the audit feed.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "feed"),
	}
}

// Routes returns the route group definition for feed endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/feed",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
		},
	}
}

// List returns the current feed contents. Query params: search filters
// by substring; sort names a field, with a "-" prefix for descending.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("search")
	sortKey := r.URL.Query().Get("sort")
	desc := strings.HasPrefix(sortKey, "-")
	sortKey = strings.TrimPrefix(sortKey, "-")

	handlers.RespondJSON(w, http.StatusOK, h.sys.Snapshot(query, sortKey, desc))
}
