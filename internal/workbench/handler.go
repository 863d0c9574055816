package workbench

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jmcandrew/stevedore/internal/analysis"
	"github.com/jmcandrew/stevedore/pkg/handlers"
	"github.com/jmcandrew/stevedore/pkg/routes"
)

// Handler provides HTTP endpoints for workbench document operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "workbench"),
	}
}

// Routes returns the route group definition for workbench endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/workbench",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/documents", Handler: h.List},
			{Method: "GET", Pattern: "/documents/{id}", Handler: h.Find},
			{Method: "POST", Pattern: "/documents", Handler: h.Create},
			{Method: "PUT", Pattern: "/documents/{id}/content", Handler: h.EditContent},
			{Method: "POST", Pattern: "/documents/{id}/analyze", Handler: h.Analyze},
			{Method: "POST", Pattern: "/documents/{id}/verify", Handler: h.Verify},
			{Method: "POST", Pattern: "/documents/{id}/unlock", Handler: h.Unlock},
		},
	}
}

// List returns every workbench document in creation order.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.sys.List(r.Context()))
}

// Find returns a single workbench document by id.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	doc, err := h.sys.Find(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, doc)
}

// Create registers a new draft document from a JSON body.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd CreateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	doc, err := h.sys.Create(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, doc)
}

// EditContent replaces a document's content from a JSON body.
func (h *Handler) EditContent(w http.ResponseWriter, r *http.Request) {
	var cmd EditCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	doc, err := h.sys.EditContent(r.Context(), r.PathValue("id"), cmd.Content)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, doc)
}

// Analyze runs the requested analysis operation against a document and
// returns the updated document on success.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var cmd AnalyzeCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	kind, err := analysis.ParseKind(cmd.Kind)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	doc, err := h.sys.Analyze(r.Context(), r.PathValue("id"), kind)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, doc)
}

// Verify locks a document as ground truth.
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	doc, err := h.sys.Verify(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, doc)
}

// Unlock returns a verified document to draft for editing.
func (h *Handler) Unlock(w http.ResponseWriter, r *http.Request) {
	doc, err := h.sys.Unlock(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, doc)
}
