package http

import (
	"net/http"

	applog "smartspend/internal/log"
)

type classifyRequest struct {
	Description string `json:"description"`
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	if err := decodeJSON(r, 4<<10, &req); err != nil {
		s.writeServiceError(w, r, applog.OpClassify, err)
		return
	}
	writeJSON(w, http.StatusOK, s.svc.Classify(sanitizeInput(req.Description)))
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := s.svc.Dashboard(r.Context())
	if err != nil {
		s.writeServiceError(w, r, applog.OpReport, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	window, err := parseWindow(r)
	if err != nil {
		s.writeServiceError(w, r, applog.OpReport, err)
		return
	}
	v, err := s.svc.Recommendations(r.Context(), window)
	if err != nil {
		s.writeServiceError(w, r, applog.OpReport, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleVisualize(w http.ResponseWriter, r *http.Request) {
	window, err := parseWindow(r)
	if err != nil {
		s.writeServiceError(w, r, applog.OpReport, err)
		return
	}
	recent, err := parseRecent(r)
	if err != nil {
		s.writeServiceError(w, r, applog.OpReport, err)
		return
	}
	v, err := s.svc.Visualize(r.Context(), window, recent)
	if err != nil {
		s.writeServiceError(w, r, applog.OpReport, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}
