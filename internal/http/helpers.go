package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"smartspend/internal/aggregator"
	"smartspend/internal/auth"
	"smartspend/internal/core"
	"smartspend/internal/ingest"
	applog "smartspend/internal/log"
	"smartspend/internal/validation"
)

// errorResponse is the body of every non-2xx answer.
type errorResponse struct {
	Error  string                  `json:"error"`
	Fields []validation.FieldError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Debug("Failed to encode response", applog.FieldError, err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// errorStatus maps domain errors to HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, ingest.ErrMissingColumns):
		return http.StatusUnprocessableEntity
	case errors.Is(err, aggregator.ErrUnknownWindow),
		errors.Is(err, validation.ErrInvalid),
		errors.Is(err, core.ErrNegativeTarget),
		errors.Is(err, core.ErrEmptyCategory),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

var errBadRequest = errors.New("bad request")

// writeServiceError answers with the mapped status. Internal errors are
// logged and hidden from the client.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		applog.NewStructuredLogger(applog.FromContext(r.Context())).
			LogError(r.Context(), "Request failed", err, applog.ComponentHTTP, op, nil)
		writeError(w, status, "internal error")
		return
	}

	var verr *validation.Error
	if errors.As(err, &verr) {
		writeJSON(w, status, errorResponse{Error: validation.ErrInvalid.Error(), Fields: verr.Fields})
		return
	}
	writeError(w, status, err.Error())
}

// decodeJSON reads one JSON object into v, rejecting unknown fields.
func decodeJSON(r *http.Request, limit int64, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, limit))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}

func parseWindow(r *http.Request) (aggregator.Window, error) {
	return aggregator.ParseWindow(r.URL.Query().Get("period"))
}

func parseRecent(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("recent")
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > 100 {
		return 0, fmt.Errorf("%w: recent must be between 1 and 100", errBadRequest)
	}
	return n, nil
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 {
			return -1
		}
		return r
	}, s)
}
