package httpapi

import (
	"net/http/httptest"
	"testing"
)

func TestResolveClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{name: "fly header wins", headers: map[string]string{"Fly-Client-IP": "203.0.113.9", "X-Real-IP": "10.0.0.1"}, remote: "192.0.2.1:5000", want: "203.0.113.9"},
		{name: "first forwarded hop", headers: map[string]string{"X-Forwarded-For": "198.51.100.7, 10.0.0.2"}, remote: "192.0.2.1:5000", want: "198.51.100.7"},
		{name: "remote addr fallback", remote: "192.0.2.1:5000", want: "192.0.2.1"},
		{name: "garbage is ignored", headers: map[string]string{"X-Real-IP": "not-an-ip"}, remote: "[2001:db8::1]:443", want: "2001:db8::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/players", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if got := resolveClientIP(req); got != tt.want {
				t.Fatalf("resolveClientIP()=%q want=%q", got, tt.want)
			}
		})
	}
}
