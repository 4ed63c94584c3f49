package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/solconf/internal/domain"
	"github.com/trebuchet-org/solconf/internal/domain/config"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

func TestExportFoundry(t *testing.T) {
	ctx := context.Background()
	rt := runtimeWith(twoCompilerProject())

	t.Run("writes the selected compiler", func(t *testing.T) {
		writer := new(MockFileWriter)
		writer.On("FileExists", ctx, "/project/foundry.toml").Return(false, nil)
		writer.On("WriteFoundry", ctx, "/project/foundry.toml", mock.Anything).Return(nil)

		result, err := usecase.NewExportFoundry(rt, writer).Run(ctx, usecase.ExportFoundryParams{Compiler: "0.8.24"})
		require.NoError(t, err)
		assert.Equal(t, "default", result.Profile)
		profile := result.Foundry.Profile["default"]
		assert.Equal(t, "0.8.24", profile.SolcVersion)
		assert.Equal(t, "cancun", profile.EVMVersion)
		assert.False(t, profile.Optimizer)
		writer.AssertExpectations(t)
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		writer := new(MockFileWriter)
		writer.On("FileExists", ctx, "/project/foundry.toml").Return(true, nil)

		_, err := usecase.NewExportFoundry(rt, writer).Run(ctx, usecase.ExportFoundryParams{})
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	})
}

func TestImportFoundry(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	content := `[profile.default]
solc_version = "0.8.20"
optimizer = true
optimizer_runs = 500

[rpc_endpoints]
sepolia = "https://rpc.sepolia.test"
devnet = "http://10.0.0.5:8545"
staging = "http://10.0.0.6:8545"
`
	require.NoError(t, os.WriteFile(filepath.Join(root, "foundry.toml"), []byte(content), 0644))
	rt := &config.RuntimeConfig{ProjectRoot: root}

	t.Run("probes unknown chains", func(t *testing.T) {
		writer := new(MockFileWriter)
		writer.On("FileExists", ctx, filepath.Join(root, "solconf.toml")).Return(false, nil)
		writer.On("WriteProject", ctx, filepath.Join(root, "solconf.toml"), mock.Anything).Return(nil)

		prober := new(MockProber)
		prober.On("ChainID", ctx, "http://10.0.0.5:8545").Return(uint64(4242), nil)
		prober.On("ChainID", ctx, "http://10.0.0.6:8545").Return(uint64(0), errors.New("timeout"))

		result, err := usecase.NewImportFoundry(rt, writer, prober, usecase.NopProgress{}).Run(ctx, usecase.ImportFoundryParams{Probe: true})
		require.NoError(t, err)

		assert.Equal(t, map[string]uint64{"devnet": 4242}, result.Probed)
		assert.Equal(t, []string{"staging"}, result.Unresolved)
		assert.Equal(t, uint64(11155111), result.Config.Networks["sepolia"].ChainID)
		assert.Equal(t, uint64(4242), result.Config.Networks["devnet"].ChainID)
		assert.Equal(t, config.OptimizerConfig{Enabled: true, Runs: 500}, result.Config.Settings.Optimizer)
		writer.AssertExpectations(t)
	})

	t.Run("without probing", func(t *testing.T) {
		writer := new(MockFileWriter)
		writer.On("FileExists", ctx, filepath.Join(root, "solconf.json")).Return(false, nil)
		writer.On("WriteProject", ctx, filepath.Join(root, "solconf.json"), mock.Anything).Return(nil)

		prober := new(MockProber)
		result, err := usecase.NewImportFoundry(rt, writer, prober, usecase.NopProgress{}).Run(ctx, usecase.ImportFoundryParams{Format: config.FormatJSON})
		require.NoError(t, err)
		assert.Equal(t, []string{"devnet", "staging"}, result.Unresolved)
		prober.AssertNotCalled(t, "ChainID", mock.Anything, mock.Anything)
	})
}
