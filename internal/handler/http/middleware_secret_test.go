package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/jca-proxy/internal/logger"
	"github.com/MKhiriev/jca-proxy/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestWithSecret(t *testing.T) {
	tests := []struct {
		name           string
		secret         string
		authorization  []string
		wantNextCalled bool
		wantStatus     int
		wantBody       string
	}{
		{
			name:           "matching secret",
			secret:         "s3cr3t",
			authorization:  []string{"Basic s3cr3t"},
			wantNextCalled: true,
			wantStatus:     http.StatusNoContent,
		},
		{
			name:       "no header",
			secret:     "s3cr3t",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Invalid authorization",
		},
		{
			name:          "wrong secret",
			secret:        "s3cr3t",
			authorization: []string{"Basic other"},
			wantStatus:    http.StatusUnauthorized,
			wantBody:      "Invalid authorization",
		},
		{
			name:          "secret prefix only",
			secret:        "s3cr3t",
			authorization: []string{"Basic s3cr"},
			wantStatus:    http.StatusUnauthorized,
			wantBody:      "Invalid authorization",
		},
		{
			name:          "lowercase scheme",
			secret:        "s3cr3t",
			authorization: []string{"basic s3cr3t"},
			wantStatus:    http.StatusUnauthorized,
			wantBody:      "Invalid authorization",
		},
		{
			name:          "no scheme",
			secret:        "s3cr3t",
			authorization: []string{"s3cr3t"},
			wantStatus:    http.StatusUnauthorized,
			wantBody:      "Invalid authorization",
		},
		{
			name:          "empty configured secret",
			secret:        "",
			authorization: []string{"Basic "},
			wantStatus:    http.StatusUnauthorized,
			wantBody:      "Invalid authorization",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{
				secretValidator: validators.NewSecretValidator(tt.secret),
				logger:          logger.Nop(),
			}

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodPost, "/update", nil)
			for _, v := range tt.authorization {
				req.Header.Add("Authorization", v)
			}

			rr := httptest.NewRecorder()
			h.withSecret(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantNextCalled, nextCalled)
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantBody, rr.Body.String())
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
			}
		})
	}
}
