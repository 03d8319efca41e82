package http

import (
	"context"
	"errors"
	"net/http"

	"smartspend/internal/auth"
	applog "smartspend/internal/log"
)

type userContextKey struct{}

// userFromContext returns the authenticated user set by requireAuth.
func userFromContext(ctx context.Context) string {
	u, _ := ctx.Value(userContextKey{}).(string)
	return u
}

// requireAuth rejects requests without a live session token.
func (s *Server) requireAuth(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			w.Header().Set("WWW-Authenticate", `Bearer realm="smartspend"`)
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		user, ok := s.sessions.Lookup(token)
		if !ok {
			w.Header().Set("WWW-Authenticate", `Bearer realm="smartspend", error="invalid_token"`)
			writeError(w, http.StatusUnauthorized, "invalid or expired session")
			return
		}
		ctx := context.WithValue(r.Context(), userContextKey{}, user)
		next(w, r.WithContext(ctx))
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	User  string `json:"user"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, 4<<10, &req); err != nil {
		s.writeServiceError(w, r, applog.OpLogin, err)
		return
	}
	username := sanitizeInput(req.Username)

	if err := s.verifier.Verify(r.Context(), username, req.Password); err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			applog.FromContext(r.Context()).WarnContext(r.Context(), "Login failed",
				applog.FieldUser, username,
				applog.FieldClientIP, s.detector.ExtractClientIP(r))
		}
		s.writeServiceError(w, r, applog.OpLogin, err)
		return
	}

	token, err := s.sessions.Create(username)
	if err != nil {
		s.writeServiceError(w, r, applog.OpLogin, err)
		return
	}

	applog.FromContext(r.Context()).InfoContext(r.Context(), "User logged in", applog.FieldUser, username)
	writeJSON(w, http.StatusOK, loginResponse{Token: token, User: username})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.sessions.Revoke(bearerToken(r))
	w.WriteHeader(http.StatusNoContent)
}
