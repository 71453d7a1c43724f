package middleware

import (
	"net/http/httptest"
	"testing"
)

func TestClientIP(t *testing.T) {
	cases := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{
			name:    "forwarded-for wins and takes the first hop",
			headers: map[string]string{"X-Forwarded-For": "203.0.113.9, 10.0.0.1", "X-Real-IP": "198.51.100.2"},
			remote:  "10.0.0.1:5555",
			want:    "203.0.113.9",
		},
		{
			name:    "real-ip when no forwarded-for",
			headers: map[string]string{"X-Real-IP": "198.51.100.2"},
			remote:  "10.0.0.1:5555",
			want:    "198.51.100.2",
		},
		{
			name:    "cloudflare header as third choice",
			headers: map[string]string{"CF-Connecting-IP": "192.0.2.7"},
			remote:  "10.0.0.1:5555",
			want:    "192.0.2.7",
		},
		{
			name:   "falls back to socket peer",
			remote: "192.0.2.50:12345",
			want:   "192.0.2.50",
		},
		{
			name:    "garbage forwarded-for is skipped",
			headers: map[string]string{"X-Forwarded-For": "not-an-ip"},
			remote:  "192.0.2.50:12345",
			want:    "192.0.2.50",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tc.remote
			for k, v := range tc.headers {
				r.Header.Set(k, v)
			}
			if got := ClientIP(r); got != tc.want {
				t.Fatalf("ClientIP = %q, want %q", got, tc.want)
			}
		})
	}
}
