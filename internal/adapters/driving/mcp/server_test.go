package mcp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/flowpack/internal/adapters/driven/storage/memory"
)

func TestNewServer(t *testing.T) {
	t.Run("nil exporter returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{Manifest: testManifest()})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingExporter)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, err := NewServer(&Ports{Exporter: &mockExporter{}, Manifest: testManifest()})
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("nil exporter returns error", func(t *testing.T) {
		ports := &Ports{Manifest: testManifest()}
		assert.ErrorIs(t, ports.Validate(), ErrMissingExporter)
	})

	t.Run("nil manifest returns error", func(t *testing.T) {
		ports := &Ports{Exporter: &mockExporter{}}
		assert.ErrorIs(t, ports.Validate(), ErrMissingManifest)
	})

	t.Run("optional ports may be nil", func(t *testing.T) {
		ports := &Ports{Exporter: &mockExporter{}, Manifest: testManifest()}
		assert.NoError(t, ports.Validate())
	})
}

func TestServer_Handler(t *testing.T) {
	ctx := context.Background()
	store := memory.NewArchiveStore()
	_, err := store.Save(ctx, "Pack.zip", []byte("zipdata"))
	require.NoError(t, err)

	server, err := NewServer(&Ports{Exporter: &mockExporter{}, Manifest: testManifest(), Archives: store})
	require.NoError(t, err)
	handler := server.Handler()

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})

	t.Run("archive download", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/archives/Pack.zip", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/zip", rec.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="Pack.zip"`, rec.Header().Get("Content-Disposition"))
		assert.Equal(t, "zipdata", rec.Body.String())
	})

	t.Run("unknown archive", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/archives/Missing.zip", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_Handler_NoArchiveStore(t *testing.T) {
	server, err := NewServer(&Ports{Exporter: &mockExporter{}, Manifest: testManifest()})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/archives/Pack.zip", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
