package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func secureRecorder(hsts bool) *httptest.ResponseRecorder {
	handler := SecureHeaders(hsts)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestSecureHeaders(t *testing.T) {
	rr := secureRecorder(false)

	tests := []struct {
		header string
		want   string
	}{
		{"X-Content-Type-Options", "nosniff"},
		{"X-Frame-Options", "SAMEORIGIN"},
		{"Referrer-Policy", "strict-origin-when-cross-origin"},
		{"Permissions-Policy", "camera=(), microphone=(), geolocation=()"},
		{"Cross-Origin-Opener-Policy", "same-origin"},
		{"Strict-Transport-Security", ""},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got := rr.Header().Get(tt.header)
			if got != tt.want {
				t.Errorf("%s: got %q, want %q", tt.header, got, tt.want)
			}
		})
	}

	t.Run("Content-Security-Policy", func(t *testing.T) {
		csp := rr.Header().Get("Content-Security-Policy")
		for _, directive := range []string{"default-src 'self'", "script-src 'none'", "object-src 'none'"} {
			if !strings.Contains(csp, directive) {
				t.Errorf("CSP %q is missing %q", csp, directive)
			}
		}
	})
}

func TestSecureHeadersHSTS(t *testing.T) {
	rr := secureRecorder(true)
	if got := rr.Header().Get("Strict-Transport-Security"); got != strictTransportSecurity {
		t.Errorf("Strict-Transport-Security: got %q, want %q", got, strictTransportSecurity)
	}
}
