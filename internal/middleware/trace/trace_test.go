package trace

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	applog "smartspend/internal/log"
)

func TestMiddlewareAssignsRequestID(t *testing.T) {
	var buf bytes.Buffer
	m := NewMiddleware(applog.NewWriter(&buf, slog.LevelInfo, applog.ComponentHTTP), func(*http.Request) string { return "198.51.100.4" })

	var seen string
	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))

	if !strings.HasPrefix(seen, "req_") {
		t.Fatalf("request id = %q, want req_ prefix", seen)
	}
	if got := rec.Header().Get(HeaderRequestID); got != seen {
		t.Errorf("response header = %q, want %q", got, seen)
	}
	out := buf.String()
	if !strings.Contains(out, "status_code=418") || !strings.Contains(out, "client_ip=198.51.100.4") {
		t.Errorf("access log missing fields: %q", out)
	}
}

func TestMiddlewareReusesIncomingID(t *testing.T) {
	m := NewMiddleware(applog.NewWriter(&bytes.Buffer{}, slog.LevelInfo, applog.ComponentHTTP), nil)
	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(HeaderRequestID, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	if got := rec.Header().Get(HeaderRequestID); got != "abc-123" {
		t.Errorf("request id = %q, want abc-123", got)
	}

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(HeaderRequestID, "bad id with spaces")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	if got := rec.Header().Get(HeaderRequestID); !strings.HasPrefix(got, "req_") {
		t.Errorf("malformed incoming id should be replaced, got %q", got)
	}
}

func TestGenerateRequestIDUnique(t *testing.T) {
	a, b := GenerateRequestID(), GenerateRequestID()
	if a == b {
		t.Errorf("ids should differ: %q", a)
	}
	if len(a) != len("req_")+16 {
		t.Errorf("unexpected id length: %q", a)
	}
}
