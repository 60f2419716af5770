package http

import (
	"context"
	"net/http"
)

// withRequestTimeout bounds every request context by the configured request
// timeout. Handlers turn an expired deadline into 504.
func (h *Handler) withRequestTimeout(next http.Handler) http.Handler {
	if h.requestTimeout <= 0 {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
