package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{
			name:     "object",
			data:     map[string]string{"key": "value"},
			status:   http.StatusOK,
			wantBody: "{\n  \"key\": \"value\"\n}\n",
		},
		{
			name:     "empty list",
			data:     []map[string]any{},
			status:   http.StatusOK,
			wantBody: "[]\n",
		},
		{
			name:     "status is passed through",
			data:     map[string]string{"error": "not found"},
			status:   http.StatusNotFound,
			wantBody: "{\n  \"error\": \"not found\"\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)

			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestWriteJSON_Unmarshalable(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotEqual(t, "application/json", w.Header().Get("Content-Type"))
}

func TestMarshalIndentedJSON(t *testing.T) {
	data := map[string]any{
		"identifier": "srv1",
		"port":       json.Number("8080"),
		"tags":       []any{"a", "b"},
	}

	got, err := MarshalIndentedJSON(data)
	require.NoError(t, err)

	assert.Equal(t, `{
  "identifier": "srv1",
  "port": 8080,
  "tags": [
    "a",
    "b"
  ]
}
`, string(got))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(got, &decoded), "indented output stays valid JSON")
	assert.Equal(t, "srv1", decoded["identifier"])
}
