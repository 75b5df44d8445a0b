package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCORS(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name        string
		allowed     []string
		method      string
		origin      string
		preflight   bool
		wantStatus  int
		wantOrigin  string
		wantMethods bool
	}{
		{
			name:       "allowed origin",
			allowed:    []string{"https://app.example.com/"},
			method:     http.MethodGet,
			origin:     "https://app.example.com",
			wantStatus: http.StatusOK,
			wantOrigin: "https://app.example.com",
		},
		{
			name:       "other origin",
			allowed:    []string{"https://app.example.com"},
			method:     http.MethodGet,
			origin:     "https://evil.example.com",
			wantStatus: http.StatusOK,
		},
		{
			name:        "preflight allowed",
			allowed:     []string{"https://app.example.com"},
			method:      http.MethodOptions,
			origin:      "https://app.example.com",
			preflight:   true,
			wantStatus:  http.StatusNoContent,
			wantOrigin:  "https://app.example.com",
			wantMethods: true,
		},
		{
			name:       "preflight rejected origin",
			allowed:    []string{"https://app.example.com"},
			method:     http.MethodOptions,
			origin:     "https://evil.example.com",
			preflight:  true,
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "wildcard",
			allowed:    []string{"*"},
			method:     http.MethodDelete,
			origin:     "http://localhost:3000",
			wantStatus: http.StatusOK,
			wantOrigin: "http://localhost:3000",
		},
		{
			name:       "no origin header",
			allowed:    []string{"*"},
			method:     http.MethodGet,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/events", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			}
			rr := httptest.NewRecorder()

			CORS(tt.allowed, okHandler).ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
			if tt.wantMethods {
				assert.Equal(t, corsAllowMethods, rr.Header().Get("Access-Control-Allow-Methods"))
			} else {
				assert.Empty(t, rr.Header().Get("Access-Control-Allow-Methods"))
			}
		})
	}
}
