package server

import (
	"net/http/httptest"
	"testing"
)

func TestRateLimiterAllow(t *testing.T) {
	// 60 requests per minute with a burst of 2: the first two requests pass
	// and the third hits an empty bucket.
	rl := NewRateLimiter(60, 2, nil)
	defer rl.Close()

	if !rl.Allow("api:key-1") {
		t.Error("expected first request to be allowed")
	}
	if !rl.Allow("api:key-1") {
		t.Error("expected second request to be allowed")
	}
	if rl.Allow("api:key-1") {
		t.Error("expected third request to exceed burst capacity")
	}

	// A different key gets its own bucket.
	if !rl.Allow("api:key-2") {
		t.Error("expected fresh key to be allowed")
	}
}

func TestRateLimiterGetLimiterReuse(t *testing.T) {
	rl := NewRateLimiter(60, 5, nil)
	defer rl.Close()

	first := rl.GetLimiter("ip:10.0.0.1")
	second := rl.GetLimiter("ip:10.0.0.1")
	if first != second {
		t.Error("expected the same limiter instance for a repeated key")
	}

	other := rl.GetLimiter("ip:10.0.0.2")
	if first == other {
		t.Error("expected distinct limiter instances per key")
	}
}

func TestRateLimiterGetStats(t *testing.T) {
	rl := NewRateLimiter(120, 10, nil)
	defer rl.Close()

	rl.Allow("api:alpha")
	rl.Allow("ip:192.168.1.1")

	stats := rl.GetStats()

	if stats["active_limiters"] != 2 {
		t.Errorf("expected 2 active limiters, got %v", stats["active_limiters"])
	}
	if stats["rate_per_minute"] != 120.0 {
		t.Errorf("expected rate_per_minute 120, got %v", stats["rate_per_minute"])
	}
	if stats["rate_per_second"] != 2.0 {
		t.Errorf("expected rate_per_second 2, got %v", stats["rate_per_second"])
	}
	if stats["burst_capacity"] != 10 {
		t.Errorf("expected burst_capacity 10, got %v", stats["burst_capacity"])
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		expected   string
	}{
		{
			name:       "remote addr with port",
			remoteAddr: "203.0.113.5:41234",
			expected:   "203.0.113.5",
		},
		{
			name:       "remote addr without port",
			remoteAddr: "203.0.113.5",
			expected:   "203.0.113.5",
		},
		{
			name:       "x-forwarded-for single IP",
			remoteAddr: "10.0.0.1:1234",
			headers:    map[string]string{"X-Forwarded-For": "198.51.100.7"},
			expected:   "198.51.100.7",
		},
		{
			name:       "x-forwarded-for chain takes first valid",
			remoteAddr: "10.0.0.1:1234",
			headers:    map[string]string{"X-Forwarded-For": "198.51.100.7, 10.0.0.2, 10.0.0.3"},
			expected:   "198.51.100.7",
		},
		{
			name:       "x-forwarded-for garbage falls through to x-real-ip",
			remoteAddr: "10.0.0.1:1234",
			headers: map[string]string{
				"X-Forwarded-For": "not-an-ip",
				"X-Real-IP":       "198.51.100.9",
			},
			expected: "198.51.100.9",
		},
		{
			name:       "x-real-ip garbage falls through to remote addr",
			remoteAddr: "10.0.0.1:1234",
			headers:    map[string]string{"X-Real-IP": "bogus"},
			expected:   "10.0.0.1",
		},
		{
			name:       "x-forwarded-for IPv6",
			remoteAddr: "10.0.0.1:1234",
			headers:    map[string]string{"X-Forwarded-For": "2001:db8::1"},
			expected:   "2001:db8::1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/api/v1/score", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}

			if got := getClientIP(r); got != tt.expected {
				t.Errorf("expected client IP %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestGetRateLimitKey(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		expected   string
	}{
		{
			name:       "x-api-key header",
			remoteAddr: "10.0.0.1:1234",
			headers:    map[string]string{"X-API-Key": "secret-key"},
			expected:   "api:secret-key",
		},
		{
			name:       "bearer token",
			remoteAddr: "10.0.0.1:1234",
			headers:    map[string]string{"Authorization": "Bearer tok-123"},
			expected:   "api:tok-123",
		},
		{
			name:       "x-api-key wins over bearer",
			remoteAddr: "10.0.0.1:1234",
			headers: map[string]string{
				"X-API-Key":     "secret-key",
				"Authorization": "Bearer tok-123",
			},
			expected: "api:secret-key",
		},
		{
			name:       "non-bearer authorization ignored",
			remoteAddr: "10.0.0.1:1234",
			headers:    map[string]string{"Authorization": "Basic dXNlcg=="},
			expected:   "ip:10.0.0.1",
		},
		{
			name:       "no credentials falls back to client IP",
			remoteAddr: "203.0.113.5:41234",
			expected:   "ip:203.0.113.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/api/v1/score", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}

			if got := getRateLimitKey(r); got != tt.expected {
				t.Errorf("expected key %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestParseFirstIP(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"single valid IP", "198.51.100.7", "198.51.100.7"},
		{"list with whitespace", " 198.51.100.7 , 10.0.0.1", "198.51.100.7"},
		{"skips invalid entries", "garbage, 198.51.100.7", "198.51.100.7"},
		{"all invalid", "garbage, also-garbage", ""},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseFirstIP(tt.input); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
