package http

import (
	"context"
	"net/http"
	"time"
)

// handleHealth performs basic liveness check
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(s.started).Round(time.Second).String(),
	})
}

// handleReady checks that the store answers within a short deadline.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	status := "ready"
	httpStatus := http.StatusOK
	checks := make(map[string]any)

	if _, err := s.svc.Targets(ctx); err != nil {
		checks["store"] = "failed: " + err.Error()
		status = "not_ready"
		httpStatus = http.StatusServiceUnavailable
	} else {
		checks["store"] = "ok"
	}

	checks["sessions"] = map[string]any{"active": s.sessions.Len()}
	checks["rate_limiter"] = map[string]any{"active_clients": s.rateLimiter.ActiveClients()}

	writeJSON(w, httpStatus, map[string]any{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks":    checks,
	})
}
