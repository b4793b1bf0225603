package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPServeCmd_Flags(t *testing.T) {
	port := mcpServeCmd.Flags().Lookup("port")
	require.NotNil(t, port)
	assert.Equal(t, "p", port.Shorthand)
	assert.Equal(t, "0", port.DefValue)

	noSave := mcpServeCmd.Flags().Lookup("no-save")
	require.NotNil(t, noSave)
	assert.Equal(t, "false", noSave.DefValue)
}

func TestMCPServeCmd_LongDescription(t *testing.T) {
	assert.Contains(t, mcpServeCmd.Long, "flowpack mcp serve --port 8080")
	assert.Contains(t, mcpServeCmd.Long, "--no-save")
}

func TestNewMCPPorts_SavesToConfiguredSaver(t *testing.T) {
	env := setupTestConfig(t)

	ports, err := newMCPPorts(false)

	require.NoError(t, err)
	assert.NoError(t, ports.Validate())
	assert.Equal(t, "TestPack", ports.Manifest.ArchiveName())
	assert.Nil(t, ports.Archives)
	assert.NotNil(t, ports.Links)
	assert.Equal(t, []string{"."}, env.saverDirs)
}

func TestNewMCPPorts_NoSaveUsesMemoryStore(t *testing.T) {
	env := setupTestConfig(t)

	ports, err := newMCPPorts(true)

	require.NoError(t, err)
	assert.NotNil(t, ports.Archives)
	assert.Empty(t, env.saverDirs)
	assert.Len(t, env.settings, 1)
}

func TestNewMCPPorts_NotConfigured(t *testing.T) {
	t.Cleanup(resetCommandState)

	_, err := newMCPPorts(false)

	assert.ErrorIs(t, err, errNotConfigured)
}
