package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	internalconfig "github.com/trebuchet-org/solconf/internal/config"
	"github.com/trebuchet-org/solconf/internal/domain/config"
)

func TestLocalConfigStore(t *testing.T) {
	ctx := context.Background()
	dataDir := filepath.Join(t.TempDir(), ".solconf")
	store := NewLocalConfigStoreAdapter(&config.RuntimeConfig{DataDir: dataDir})

	assert.False(t, store.Exists())
	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultLocalConfig(), loaded)

	require.NoError(t, store.Save(ctx, &config.LocalConfig{Network: "sepolia", Compiler: "0.8.13"}))
	assert.True(t, store.Exists())
	assert.Equal(t, filepath.Join(dataDir, "config.local.json"), store.GetPath())

	loaded, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, &config.LocalConfig{Network: "sepolia", Compiler: "0.8.13"}, loaded)
}

func TestLocalConfigStoreCorruptFile(t *testing.T) {
	dataDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "config.local.json"), []byte("{"), 0644))

	_, err := NewLocalConfigStoreAdapter(&config.RuntimeConfig{DataDir: dataDir}).Load(context.Background())
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestFileWriter(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	w := NewFileWriterAdapter()

	path := filepath.Join(root, "solconf.json")
	exists, err := w.FileExists(ctx, path)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, w.WriteProject(ctx, path, config.DefaultProjectConfig()))
	exists, err = w.FileExists(ctx, path)
	require.NoError(t, err)
	assert.True(t, exists)

	loaded, err := internalconfig.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultProjectConfig(), loaded.Config)

	foundry, err := internalconfig.ToFoundry(loaded.Config, 0, "")
	require.NoError(t, err)
	require.NoError(t, w.WriteFoundry(ctx, filepath.Join(root, "foundry.toml"), foundry))
	reloaded, err := internalconfig.LoadFoundryConfig(root)
	require.NoError(t, err)
	assert.Equal(t, "0.8.13", reloaded.Profile["default"].SolcVersion)
}
