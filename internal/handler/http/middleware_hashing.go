package http

import (
	"bytes"
	"net/http"

	"github.com/MKhiriev/jca-proxy/internal/logger"
)

// hashHeader carries the hex HMAC-SHA256 of a response body.
const hashHeader = "HashSHA256"

// withResponseHashing signs successful response bodies with the configured
// hash key. The response is buffered so the header can precede the body.
// Without a hash key the middleware is a no-op.
func (h *Handler) withResponseHashing(next http.Handler) http.Handler {
	if h.hasher == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hw := &hashingResponseWriter{ResponseWriter: w}
		next.ServeHTTP(hw, r)

		if hw.status == 0 {
			hw.status = http.StatusOK
		}

		body := hw.body.Bytes()
		if hw.status >= http.StatusOK && hw.status < http.StatusMultipleChoices && len(body) > 0 {
			hash := h.hasher.SumHex(body)
			w.Header().Set(hashHeader, hash)

			logger.FromRequest(r).Debug().
				Str("func", "*Handler.withResponseHashing").
				Str("hash", hash).
				Msg("response signed")
		}

		w.WriteHeader(hw.status)
		if len(body) > 0 {
			_, _ = w.Write(body)
		}
	})
}

// hashingResponseWriter holds back the status and body until the wrapped
// handler returns.
type hashingResponseWriter struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (w *hashingResponseWriter) WriteHeader(statusCode int) {
	if w.status == 0 {
		w.status = statusCode
	}
}

func (w *hashingResponseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.body.Write(b)
}
