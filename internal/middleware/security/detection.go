package security

import (
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
)

// Detector resolves client addresses behind trusted proxies and flags
// requests that look like scans.
type Detector struct {
	suspicious atomic.Int64

	mu             sync.RWMutex
	trustedProxies []*net.IPNet
}

// NewDetector trusts loopback and private networks as proxies.
func NewDetector() *Detector {
	return &Detector{
		trustedProxies: []*net.IPNet{
			parseCIDR("127.0.0.0/8"),
			parseCIDR("10.0.0.0/8"),
			parseCIDR("172.16.0.0/12"),
			parseCIDR("192.168.0.0/16"),
			parseCIDR("::1/128"),
		},
	}
}

func parseCIDR(cidr string) *net.IPNet {
	_, network, err := net.ParseCIDR(cidr)
	if err != nil {
		panic(fmt.Sprintf("failed to parse trusted proxy CIDR %s: %v", cidr, err))
	}
	return network
}

var suspiciousPatterns = []string{
	"../", "..\\", ".env", "wp-admin", "phpmyadmin",
	"admin.php", "config.php", ".git", ".ssh",
	"<script", "union select", "etc/passwd", "cmd.exe",
}

var suspiciousAgents = []string{"sqlmap", "nmap", "nikto", "gobuster", "dirb"}

// DetectSuspiciousRequest reports whether r matches a known probe pattern.
func (d *Detector) DetectSuspiciousRequest(r *http.Request) bool {
	suspicious := false

	target := strings.ToLower(r.URL.Path + "?" + r.URL.RawQuery)
	for _, pattern := range suspiciousPatterns {
		if strings.Contains(target, pattern) {
			suspicious = true
			break
		}
	}

	userAgent := strings.ToLower(r.Header.Get("User-Agent"))
	for _, agent := range suspiciousAgents {
		if strings.Contains(userAgent, agent) {
			suspicious = true
			break
		}
	}

	switch r.Method {
	case "TRACE", "TRACK", "DEBUG", "CONNECT":
		suspicious = true
	}

	if len(r.URL.String()) > 2048 {
		suspicious = true
	}

	if suspicious {
		d.suspicious.Add(1)
	}
	return suspicious
}

// SuspiciousRequests returns how many requests were flagged so far.
func (d *Detector) SuspiciousRequests() int64 {
	return d.suspicious.Load()
}

// ExtractClientIP extracts the real client IP, honouring forwarded headers
// only when the direct peer is a trusted proxy.
func (d *Detector) ExtractClientIP(r *http.Request) string {
	directIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		directIP = r.RemoteAddr
	}

	parsedDirectIP := net.ParseIP(directIP)
	if parsedDirectIP == nil {
		return directIP
	}

	if d.isTrustedProxy(parsedDirectIP) {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			clientIP := strings.TrimSpace(first)
			if net.ParseIP(clientIP) != nil {
				return clientIP
			}
		}

		if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
			if net.ParseIP(xri) != nil {
				return xri
			}
		}
	}

	return directIP
}

func (d *Detector) isTrustedProxy(ip net.IP) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, network := range d.trustedProxies {
		if network.Contains(ip) {
			return true
		}
	}
	return false
}

// AddTrustedProxy adds a trusted proxy network
func (d *Detector) AddTrustedProxy(cidr string) error {
	_, network, err := net.ParseCIDR(cidr)
	if err != nil {
		return fmt.Errorf("invalid CIDR %s: %w", cidr, err)
	}

	d.mu.Lock()
	d.trustedProxies = append(d.trustedProxies, network)
	d.mu.Unlock()
	return nil
}
