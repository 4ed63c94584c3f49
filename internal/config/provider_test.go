package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider(t *testing.T) {
	t.Run("loads the project and applies defaults", func(t *testing.T) {
		root := t.TempDir()
		data, err := os.ReadFile(filepath.Join("testdata", "solconf.toml"))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(root, "solconf.toml"), data, 0644))

		v := SetupViper(root)
		cfg, err := Provider(v)
		require.NoError(t, err)

		assert.Equal(t, root, cfg.ProjectRoot)
		assert.Equal(t, filepath.Join(root, ".solconf"), cfg.DataDir)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
		assert.Equal(t, DefaultSolcMirror, cfg.SolcMirror)
		require.NotNil(t, cfg.Project)
		assert.Equal(t, uint64(31337), cfg.Project.Resolved.Networks["localhost"].ChainID)
	})

	t.Run("local config supplies the default network", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, ".solconf"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(root, ".solconf", "config.local.json"), []byte(`{"network":"localhost"}`), 0644))

		cfg, err := Provider(SetupViper(root))
		require.NoError(t, err)
		assert.Equal(t, "localhost", cfg.Network)
		assert.Nil(t, cfg.Project)
	})

	t.Run("environment overrides", func(t *testing.T) {
		root := t.TempDir()
		t.Setenv("SOLCONF_TIMEOUT", "2m")
		t.Setenv("SOLCONF_NON_INTERACTIVE", "true")

		cfg, err := Provider(SetupViper(root))
		require.NoError(t, err)
		assert.Equal(t, 2*time.Minute, cfg.Timeout)
		assert.True(t, cfg.NonInteractive)
	})

	t.Run("explicit config path that fails to parse", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, "broken.toml"), []byte("[networks"), 0644))

		v := SetupViper(root)
		v.Set("config", "broken.toml")
		_, err := Provider(v)
		assert.ErrorContains(t, err, "failed to load project config")
	})
}
