package adapter

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorDetail(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		want   string
	}{
		{name: "body is trimmed", body: "  record locked \n", status: http.StatusConflict, want: "record locked"},
		{name: "empty body uses status text", body: "", status: http.StatusServiceUnavailable, want: "Service Unavailable"},
		{
			name:   "long body is truncated",
			body:   strings.Repeat("x", maxErrorBodyLen+10),
			status: http.StatusInternalServerError,
			want:   strings.Repeat("x", maxErrorBodyLen) + "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorDetail([]byte(tt.body), tt.status))
		})
	}
}
