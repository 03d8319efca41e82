package security

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestExtractClientIP(t *testing.T) {
	d := NewDetector()

	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{"direct public peer", "203.0.113.7:5000", nil, "203.0.113.7"},
		{"public peer cannot spoof", "203.0.113.7:5000", map[string]string{"X-Forwarded-For": "1.1.1.1"}, "203.0.113.7"},
		{"trusted proxy forwards", "10.0.0.2:5000", map[string]string{"X-Forwarded-For": "198.51.100.4, 10.0.0.2"}, "198.51.100.4"},
		{"trusted proxy real ip", "127.0.0.1:5000", map[string]string{"X-Real-IP": "198.51.100.9"}, "198.51.100.9"},
		{"garbage forwarded", "10.0.0.2:5000", map[string]string{"X-Forwarded-For": "nope"}, "10.0.0.2"},
		{"no port", "198.51.100.1", nil, "198.51.100.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			if got := d.ExtractClientIP(r); got != tt.want {
				t.Errorf("ExtractClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAddTrustedProxy(t *testing.T) {
	d := NewDetector()
	if err := d.AddTrustedProxy("not-a-cidr"); err == nil {
		t.Error("expected error for invalid CIDR")
	}
	if err := d.AddTrustedProxy("203.0.113.0/24"); err != nil {
		t.Fatalf("AddTrustedProxy: %v", err)
	}
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "203.0.113.7:1"
	r.Header.Set("X-Forwarded-For", "198.51.100.4")
	if got := d.ExtractClientIP(r); got != "198.51.100.4" {
		t.Errorf("ExtractClientIP() = %q", got)
	}
}

func TestDetectSuspiciousRequest(t *testing.T) {
	d := NewDetector()

	normal := httptest.NewRequest(http.MethodGet, "/api/dashboard?period=last30", nil)
	if d.DetectSuspiciousRequest(normal) {
		t.Error("normal request flagged")
	}

	probe := httptest.NewRequest(http.MethodGet, "/.env", nil)
	if !d.DetectSuspiciousRequest(probe) {
		t.Error("probe not flagged")
	}

	scanner := httptest.NewRequest(http.MethodGet, "/", nil)
	scanner.Header.Set("User-Agent", "sqlmap/1.7")
	if !d.DetectSuspiciousRequest(scanner) {
		t.Error("scanner not flagged")
	}

	if got := d.SuspiciousRequests(); got != 2 {
		t.Errorf("SuspiciousRequests = %d, want 2", got)
	}
}

func TestHeadersMiddleware(t *testing.T) {
	h := NewHeadersMiddleware(DefaultHeadersConfig()).Middleware(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}),
	)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", got)
	}
	if got := rec.Header().Get("Cache-Control"); got != "no-store" {
		t.Errorf("Cache-Control = %q", got)
	}
	if rec.Header().Get("Strict-Transport-Security") != "" {
		t.Error("HSTS must only be sent over TLS")
	}

	tlsReq := httptest.NewRequest(http.MethodGet, "/", nil)
	tlsReq.TLS = &tls.ConnectionState{}
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, tlsReq)
	if got := rec.Header().Get("Strict-Transport-Security"); got != "max-age=31536000; includeSubDomains" {
		t.Errorf("Strict-Transport-Security = %q", got)
	}
}
