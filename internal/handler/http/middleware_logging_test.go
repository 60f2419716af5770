package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/jca-proxy/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeRequest builds a request whose context carries a logger writing to buf,
// as withTraceID would install one.
func makeRequest(method, target string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

// accessEntry is the subset of the access-log line the tests look at.
type accessEntry struct {
	Method     string  `json:"method"`
	URI        string  `json:"uri"`
	RemoteAddr string  `json:"remote_addr"`
	Status     int     `json:"status"`
	Size       int     `json:"size"`
	Duration   float64 `json:"duration"`
	Message    string  `json:"message"`
}

func serveLogged(t *testing.T, next http.HandlerFunc, method, target string) (*httptest.ResponseRecorder, accessEntry) {
	t.Helper()

	var buf bytes.Buffer
	rr := httptest.NewRecorder()
	withLogging(next).ServeHTTP(rr, makeRequest(method, target, &buf))

	var entry accessEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "exactly one JSON line is logged")
	return rr, entry
}

func TestWithLogging_Entry(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		status int
		body   string
	}{
		{name: "GET 200", method: http.MethodGet, target: "/jcadata?server=srv-1", status: http.StatusOK, body: "{}\n"},
		{name: "POST 204", method: http.MethodPost, target: "/update", status: http.StatusNoContent},
		{name: "POST 401", method: http.MethodPost, target: "/update", status: http.StatusUnauthorized, body: "Invalid authorization"},
		{name: "GET 404", method: http.MethodGet, target: "/jcadata?server=missing", status: http.StatusNotFound},
		{name: "GET 504", method: http.MethodGet, target: "/jcadata?server=slow", status: http.StatusGatewayTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, entry := serveLogged(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}, tt.method, tt.target)

			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, accessEntry{
				Method:     tt.method,
				URI:        tt.target,
				RemoteAddr: "192.0.2.1:1234",
				Status:     tt.status,
				Size:       len(tt.body),
				Duration:   entry.Duration,
				Message:    "request served",
			}, entry)
		})
	}
}

func TestWithLogging_Duration(t *testing.T) {
	_, entry := serveLogged(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(20 * time.Millisecond)
	}, http.MethodGet, "/jcadata")

	assert.GreaterOrEqual(t, entry.Duration, float64(20), "duration is logged in milliseconds")
}

func TestWithLogging_SizeAcrossWrites(t *testing.T) {
	_, entry := serveLogged(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 512)))
		_, _ = w.Write([]byte(strings.Repeat("b", 512)))
	}, http.MethodGet, "/jcadata")

	assert.Equal(t, 1024, entry.Size)
}

func TestWithLogging_DefaultsTo200(t *testing.T) {
	for name, body := range map[string]string{"write only": "implicit", "nothing written": ""} {
		t.Run(name, func(t *testing.T) {
			rr, entry := serveLogged(t, func(w http.ResponseWriter, r *http.Request) {
				if body != "" {
					_, _ = w.Write([]byte(body))
				}
			}, http.MethodGet, "/jcadata")

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, http.StatusOK, entry.Status)
		})
	}
}

func TestWithLogging_Concurrent(t *testing.T) {
	handler := withLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	var wg sync.WaitGroup
	for j := 0; j < 50; j++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			var buf bytes.Buffer
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, makeRequest(http.MethodPost, "/update", &buf))

			assert.Equal(t, http.StatusNoContent, rr.Code)
			assert.Contains(t, buf.String(), `"status":204`)
		}()
	}
	wg.Wait()
}

func TestWithLogging_DoesNotRecover(t *testing.T) {
	var buf bytes.Buffer
	handler := withLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	assert.Panics(t, func() {
		handler.ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/jcadata", &buf))
	})
}

func TestWithLogging_NopLogger(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/update", nil)
	req = req.WithContext(logger.Nop().WithContext(req.Context()))
	rr := httptest.NewRecorder()

	assert.NotPanics(t, func() {
		withLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})).ServeHTTP(rr, req)
	})
	assert.Equal(t, http.StatusNoContent, rr.Code)
}
