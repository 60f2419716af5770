package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/jca-proxy/internal/logger"
)

// withLogging emits the access-log line. The logger comes from the request
// context, so the entry carries the trace_id set by withTraceID.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rec := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(rec, r)

		if rec.status == 0 {
			rec.status = http.StatusOK
		}

		logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Str("remote_addr", r.RemoteAddr).
			Int("status", rec.status).
			Int("size", rec.size).
			Dur("duration", time.Since(started)).
			Msg("request served")
	})
}
