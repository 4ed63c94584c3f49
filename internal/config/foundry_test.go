package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/solconf/internal/domain/config"
)

func TestToFoundry(t *testing.T) {
	cfg := richProject()

	t.Run("project settings", func(t *testing.T) {
		foundry, err := ToFoundry(cfg, 0, "")
		require.NoError(t, err)

		profile := foundry.Profile["default"]
		assert.Equal(t, "0.8.13", profile.SolcVersion)
		assert.True(t, profile.Optimizer)
		assert.Equal(t, uint32(1000), profile.OptimizerRuns)
		assert.Equal(t, "http://127.0.0.1:8545", foundry.RpcEndpoints["localhost"])
		assert.Equal(t, "${SEPOLIA_RPC_URL}", foundry.RpcEndpoints["sepolia"])
	})

	t.Run("compiler override", func(t *testing.T) {
		foundry, err := ToFoundry(cfg, 1, "ci")
		require.NoError(t, err)

		profile := foundry.Profile["ci"]
		assert.Equal(t, "0.8.24", profile.SolcVersion)
		assert.Equal(t, uint32(20000), profile.OptimizerRuns)
		assert.Equal(t, "cancun", profile.EVMVersion)
	})

	t.Run("bad index", func(t *testing.T) {
		_, err := ToFoundry(cfg, 5, "")
		assert.Error(t, err)
	})
}

func TestFromFoundry(t *testing.T) {
	dir := t.TempDir()
	content := `[profile.default]
src = "src"
solc_version = "0.8.13"
optimizer = true

[rpc_endpoints]
localhost = "http://127.0.0.1:8545"
sepolia = "${SEPOLIA_RPC_URL}"
devnet = "http://10.0.0.5:8545"
custom = "https://rpc.custom.org"

[etherscan]
custom = { key = "${CUSTOM_KEY}", chain = 777 }
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "foundry.toml"), []byte(content), 0644))

	foundry, err := LoadFoundryConfig(dir)
	require.NoError(t, err)

	cfg, unknown, err := FromFoundry(foundry, "default")
	require.NoError(t, err)

	assert.Equal(t, []string{"devnet"}, unknown)
	assert.Equal(t, uint64(31337), cfg.Networks["localhost"].ChainID)
	assert.Equal(t, uint64(11155111), cfg.Networks["sepolia"].ChainID)
	assert.Equal(t, uint64(777), cfg.Networks["custom"].ChainID)
	assert.Equal(t, "${SEPOLIA_RPC_URL}", cfg.Networks["sepolia"].URL)
	assert.Equal(t, "0.8.13", cfg.Solidity.Compilers[0].Version)
	assert.True(t, cfg.Settings.Optimizer.Enabled)
	assert.Equal(t, uint32(200), cfg.Settings.Optimizer.Runs)

	_, _, err = FromFoundry(foundry, "missing")
	assert.ErrorContains(t, err, "profile missing not found")
}

func TestFoundryRoundTrip(t *testing.T) {
	dir := t.TempDir()
	foundry, err := ToFoundry(config.DefaultProjectConfig(), 0, "")
	require.NoError(t, err)
	require.NoError(t, WriteFoundryConfig(filepath.Join(dir, FoundryFileName), foundry))

	reloaded, err := LoadFoundryConfig(dir)
	require.NoError(t, err)
	cfg, unknown, err := FromFoundry(reloaded, "")
	require.NoError(t, err)
	assert.Empty(t, unknown)
	assert.Equal(t, config.DefaultProjectConfig(), cfg)
}
