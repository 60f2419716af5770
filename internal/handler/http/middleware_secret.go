package http

import (
	"net/http"

	"github.com/MKhiriev/jca-proxy/internal/logger"
)

// withSecret rejects requests whose Authorization header does not carry the
// shared secret. The wrapped handler is not called for them.
func (h *Handler) withSecret(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.secretValidator.ValidateHeader(r.Header) {
			logger.FromRequest(r).Warn().
				Str("func", "*Handler.withSecret").
				Bool("header_present", r.Header.Get("Authorization") != "").
				Msg("invalid authorization")

			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(invalidAuthorizationMessage))
			return
		}

		next.ServeHTTP(w, r)
	})
}
