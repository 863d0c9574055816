package workbench

import (
	"errors"
	"net/http"

	"github.com/jmcandrew/stevedore/internal/analysis"
)

// Domain errors for workbench operations.
var (
	ErrNotFound         = errors.New("document not found")
	ErrDuplicate        = errors.New("document already exists")
	ErrLocked           = errors.New("document is verified and locked against changes")
	ErrAnalysisInFlight = errors.New("analysis already in flight for document")
)

// MapHTTPStatus maps workbench and gateway errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrLocked), errors.Is(err, ErrAnalysisInFlight):
		return http.StatusConflict
	case errors.Is(err, analysis.ErrInvalidKind):
		return http.StatusBadRequest
	case errors.Is(err, analysis.ErrAnalysisFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
