package http

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"smartspend/internal/auth"
	applog "smartspend/internal/log"
	"smartspend/internal/middleware/ratelimit"
	"smartspend/internal/middleware/security"
	"smartspend/internal/middleware/trace"
	"smartspend/internal/services"
)

// Options tunes the server. Zero values fall back to defaults.
type Options struct {
	RateLimitPerMinute int
	Logger             *applog.Logger
	// MaxUploadBytes caps CSV uploads. Zero means 10 MiB.
	MaxUploadBytes int64
}

const defaultMaxUpload = 10 << 20

type Server struct {
	http.Server
	svc      *services.LedgerService
	verifier auth.Verifier
	sessions *auth.Sessions

	logger      *applog.Logger
	rateLimiter *ratelimit.Limiter
	detector    *security.Detector
	headers     *security.HeadersMiddleware
	tracer      *trace.Middleware
	maxUpload   int64
	started     time.Time

	shutdownOnce sync.Once
}

// NewServer configures routes and middleware, returning a ready-to-run http.Server.
func NewServer(addr string, svc *services.LedgerService, verifier auth.Verifier, sessions *auth.Sessions, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = applog.New(applog.Config{Component: applog.ComponentHTTP, Handler: slog.Default().Handler()})
	}
	maxUpload := opts.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = defaultMaxUpload
	}

	mux := http.NewServeMux()
	detector := security.NewDetector()

	s := &Server{
		Server: http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		},
		svc:         svc,
		verifier:    verifier,
		sessions:    sessions,
		logger:      logger,
		rateLimiter: ratelimit.NewLimiter(ratelimit.Config{RequestsPerMinute: opts.RateLimitPerMinute}),
		detector:    detector,
		headers:     security.NewHeadersMiddleware(security.DefaultHeadersConfig()),
		tracer:      trace.NewMiddleware(logger, detector.ExtractClientIP),
		maxUpload:   maxUpload,
		started:     time.Now(),
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)

	mux.Handle("POST /api/login", s.withSecurityHeaders(http.HandlerFunc(s.handleLogin)))
	mux.Handle("POST /api/logout", s.withSecurityHeaders(s.requireAuth(s.handleLogout)))
	mux.Handle("POST /api/classify", s.withSecurityHeaders(s.requireAuth(s.handleClassify)))
	mux.Handle("GET /api/transactions", s.withSecurityHeaders(s.requireAuth(s.handleListTransactions)))
	mux.Handle("POST /api/transactions", s.withSecurityHeaders(s.requireAuth(s.handleAddTransaction)))
	mux.Handle("POST /api/transactions/upload", s.withSecurityHeaders(s.requireAuth(s.handleUpload)))
	mux.Handle("POST /api/transactions/demo", s.withSecurityHeaders(s.requireAuth(s.handleDemo)))
	mux.Handle("GET /api/targets", s.withSecurityHeaders(s.requireAuth(s.handleGetTargets)))
	mux.Handle("PUT /api/targets", s.withSecurityHeaders(s.requireAuth(s.handlePutTargets)))
	mux.Handle("GET /api/dashboard", s.withSecurityHeaders(s.requireAuth(s.handleDashboard)))
	mux.Handle("GET /api/recommendations", s.withSecurityHeaders(s.requireAuth(s.handleRecommendations)))
	mux.Handle("GET /api/visualize", s.withSecurityHeaders(s.requireAuth(s.handleVisualize)))

	return s
}

// withSecurityHeaders wraps an /api handler with request tracing, security
// headers, the request-scoped logger, probe detection and POST rate limiting.
func (s *Server) withSecurityHeaders(next http.Handler) http.Handler {
	limited := s.rateLimiter.Middleware(s.detector.ExtractClientIP, func(w http.ResponseWriter, r *http.Request) {
		applog.FromContext(r.Context()).WarnContext(r.Context(), "Rate limit exceeded",
			applog.FieldClientIP, s.detector.ExtractClientIP(r),
			applog.FieldPath, r.URL.Path)
		writeError(w, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
	}, http.MethodPost, http.MethodPut)(next)

	detect := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.detector.DetectSuspiciousRequest(r) {
			applog.FromContext(r.Context()).WarnContext(r.Context(), "Suspicious request",
				applog.FieldClientIP, s.detector.ExtractClientIP(r),
				applog.FieldPath, r.URL.Path,
				applog.FieldUserAgent, r.Header.Get("User-Agent"))
		}
		limited.ServeHTTP(w, r)
	})

	withLogger := applog.Middleware(s.logger)(applog.RequestIDMiddleware(trace.RequestIDFromRequest)(detect))
	return s.tracer.Middleware(s.headers.Middleware(withLogger))
}

// Shutdown gracefully shuts down the server and its background routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		s.rateLimiter.Stop()
		shutdownErr = s.Server.Shutdown(ctx)
	})

	return shutdownErr
}
