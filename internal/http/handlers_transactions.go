package http

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"smartspend/internal/core"
	"smartspend/internal/ingest"
	applog "smartspend/internal/log"
)

type importResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	window, err := parseWindow(r)
	if err != nil {
		s.writeServiceError(w, r, applog.OpRead, err)
		return
	}
	txs, err := s.svc.Transactions(r.Context(), window)
	if err != nil {
		s.writeServiceError(w, r, applog.OpRead, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"window":       window,
		"count":        len(txs),
		"transactions": txs,
	})
}

func (s *Server) handleAddTransaction(w http.ResponseWriter, r *http.Request) {
	var in ingest.Input
	if err := decodeJSON(r, 16<<10, &in); err != nil {
		s.writeServiceError(w, r, applog.OpCreate, err)
		return
	}
	in.Description = sanitizeInput(in.Description)
	in.Category = sanitizeInput(in.Category)

	tx, err := s.svc.AddTransaction(r.Context(), in)
	if err != nil {
		s.writeServiceError(w, r, applog.OpCreate, err)
		return
	}
	writeJSON(w, http.StatusCreated, tx)
}

// handleUpload accepts a multipart form with a "file" part or the raw CSV
// as the request body.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)

	body, closeBody, err := s.uploadReader(r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "upload exceeds "+strconv.FormatInt(s.maxUpload, 10)+" bytes")
			return
		}
		s.writeServiceError(w, r, applog.OpImport, err)
		return
	}
	defer closeBody()

	res, err := s.svc.Import(r.Context(), body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "upload exceeds "+strconv.FormatInt(s.maxUpload, 10)+" bytes")
			return
		}
		s.writeServiceError(w, r, applog.OpImport, err)
		return
	}
	writeJSON(w, http.StatusOK, importResponse{Imported: res.Imported, Skipped: res.Skipped})
}

func (s *Server) uploadReader(r *http.Request) (io.Reader, func(), error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		return r.Body, func() {}, nil
	}

	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: %v", errBadRequest, err)
	}
	f, _, err := r.FormFile("file")
	if err != nil {
		return nil, nil, fmt.Errorf("%w: missing \"file\" part", errBadRequest)
	}
	return f, func() { f.Close() }, nil
}

func (s *Server) handleDemo(w http.ResponseWriter, r *http.Request) {
	res, err := s.svc.LoadDemo(r.Context())
	if err != nil {
		s.writeServiceError(w, r, applog.OpImport, err)
		return
	}
	writeJSON(w, http.StatusOK, importResponse{Imported: res.Imported})
}

func (s *Server) handleGetTargets(w http.ResponseWriter, r *http.Request) {
	t, err := s.svc.Targets(r.Context())
	if err != nil {
		s.writeServiceError(w, r, applog.OpRead, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// handlePutTargets replaces every target, or overlays them on the current
// set with ?merge=true.
func (s *Server) handlePutTargets(w http.ResponseWriter, r *http.Request) {
	var t core.Targets
	if err := decodeJSON(r, 16<<10, &t); err != nil {
		s.writeServiceError(w, r, applog.OpUpdate, err)
		return
	}

	var (
		out core.Targets
		err error
	)
	if merge, _ := strconv.ParseBool(r.URL.Query().Get("merge")); merge {
		out, err = s.svc.UpdateTargets(r.Context(), t)
	} else {
		out, err = s.svc.SetTargets(r.Context(), t)
	}
	if err != nil {
		s.writeServiceError(w, r, applog.OpUpdate, err)
		return
	}

	applog.FromContext(r.Context()).InfoContext(r.Context(), "Targets updated",
		applog.FieldUser, userFromContext(r.Context()), "categories", len(out))
	writeJSON(w, http.StatusOK, out)
}
