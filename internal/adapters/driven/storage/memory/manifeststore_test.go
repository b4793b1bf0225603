package memory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/flowpack/internal/core/domain"
)

func TestManifestStore_Load(t *testing.T) {
	manifest := domain.DefaultManifest()
	settings := domain.DefaultExportSettings()
	store := NewManifestStore(manifest, settings)

	got, gotSettings, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, manifest, got)
	assert.Equal(t, settings, gotSettings)
	assert.Empty(t, store.Path())
}

func TestManifestStore_Load_NilManifest(t *testing.T) {
	store := NewManifestStore(nil, domain.DefaultExportSettings())

	_, _, err := store.Load()
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestManifestStore_Write(t *testing.T) {
	store := NewManifestStore(nil, domain.ExportSettings{})
	manifest, err := domain.NewManifest("Pack", []domain.Descriptor{{Name: "A", Locator: "a"}})
	require.NoError(t, err)

	require.NoError(t, store.Write(manifest, domain.DefaultExportSettings()))

	got, _, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "Pack", got.ArchiveName())
}

func TestManifestStore_SetLoadError(t *testing.T) {
	store := NewManifestStore(domain.DefaultManifest(), domain.DefaultExportSettings())
	store.SetLoadError(errors.New("disk on fire"))

	_, _, err := store.Load()
	assert.EqualError(t, err, "disk on fire")
}
