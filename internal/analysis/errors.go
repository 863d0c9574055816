package analysis

import (
	"errors"
	"net/http"
)

var (
	// ErrAnalysisFailed covers every gateway failure mode: transport
	// errors, malformed response bodies, and missing fields. Callers get
	// no finer taxonomy; their only recourse is to revert and retry.
	ErrAnalysisFailed = errors.New("analysis failed")
	// ErrInvalidKind indicates an unrecognized analysis operation.
	ErrInvalidKind = errors.New("invalid analysis kind")
)

// MapHTTPStatus maps analysis errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrInvalidKind) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrAnalysisFailed) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
