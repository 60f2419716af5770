package handler

import (
	"testing"

	"github.com/MKhiriev/jca-proxy/internal/config"
	"github.com/MKhiriev/jca-proxy/internal/logger"
	"github.com/MKhiriev/jca-proxy/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServices returns an empty *service.Services. http.NewHandler only
// stores the pointer, so no service is needed at construction time.
func newTestServices() *service.Services {
	return &service.Services{}
}

func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name     string
		server   config.Server
		wantHTTP bool
		wantErr  error
	}{
		{
			name:     "explicit address",
			server:   config.Server{HTTPAddress: "localhost:8080"},
			wantHTTP: true,
		},
		{
			name:     "port only",
			server:   config.Server{Port: 8080},
			wantHTTP: true,
		},
		{
			name:     "address and port",
			server:   config.Server{HTTPAddress: ":9000", Port: 8080},
			wantHTTP: true,
		},
		{
			name:    "nothing to listen on",
			server:  config.Server{},
			wantErr: errNoHandlersAreCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.StructuredConfig{Server: tt.server}

			h, err := NewHandlers(newTestServices(), cfg, logger.Nop())

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, h)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, h)
			assert.Equal(t, tt.wantHTTP, h.HTTP != nil)
		})
	}
}

// TestNewHandlers_IndependentInstances verifies that two calls to NewHandlers
// produce independent *Handlers instances.
func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := config.StructuredConfig{Server: config.Server{Port: 8080}}

	h1, err1 := NewHandlers(newTestServices(), cfg, logger.Nop())
	h2, err2 := NewHandlers(newTestServices(), cfg, logger.Nop())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
}
