package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/solconf/internal/domain"
	"github.com/trebuchet-org/solconf/internal/domain/config"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

func twoCompilerProject() *config.ProjectConfig {
	cfg := config.DefaultProjectConfig()
	cfg.Solidity.Compilers = append(cfg.Solidity.Compilers, config.CompilerConfig{
		Version: "0.8.24",
		Settings: &config.SettingsConfig{
			Optimizer:  config.OptimizerConfig{Enabled: false},
			EVMVersion: "cancun",
		},
	})
	return cfg
}

func TestListCompilers(t *testing.T) {
	result, err := usecase.NewListCompilers(runtimeWith(twoCompilerProject())).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Compilers, 2)

	assert.Equal(t, "0.8.13", result.Compilers[0].Version)
	assert.True(t, result.Compilers[0].Default)
	assert.False(t, result.Compilers[0].Override)
	assert.Equal(t, uint32(1000), result.Compilers[0].Settings.Optimizer.Runs)

	assert.True(t, result.Compilers[1].Override)
	assert.Equal(t, "cancun", result.Compilers[1].Settings.EVMVersion)
}

func TestResolveCompilers(t *testing.T) {
	ctx := context.Background()
	index := &staticIndex{list: &domain.SolcReleaseList{
		Builds: []domain.SolcBuild{
			{
				Path:        "solc-linux-amd64-v0.8.13+commit.abaa5c0e",
				Version:     "0.8.13",
				LongVersion: "0.8.13+commit.abaa5c0e",
				SHA256:      "0x3cc5a3f1b5f2b1f1",
			},
		},
		Releases:      map[string]string{"0.8.13": "solc-linux-amd64-v0.8.13+commit.abaa5c0e"},
		LatestRelease: "0.8.30",
	}}

	uc := usecase.NewResolveCompilers(runtimeWith(twoCompilerProject()), index, usecase.NopProgress{})

	t.Run("all pins", func(t *testing.T) {
		result, err := uc.Run(ctx, usecase.ResolveCompilersParams{Platform: "linux-amd64"})
		require.NoError(t, err)
		require.Len(t, result.Compilers, 2)
		assert.False(t, result.AllAvailable)
		assert.Equal(t, "0.8.30", result.LatestRelease)

		found := result.Compilers[0]
		assert.True(t, found.Available)
		assert.Equal(t, "0.8.13+commit.abaa5c0e", found.Build.LongVersion)
		assert.Equal(t, "https://mirror.test/linux-amd64/solc-linux-amd64-v0.8.13+commit.abaa5c0e", found.DownloadURL)

		assert.False(t, result.Compilers[1].Available)
		assert.Nil(t, result.Compilers[1].Build)
	})

	t.Run("one pin", func(t *testing.T) {
		result, err := uc.Run(ctx, usecase.ResolveCompilersParams{Platform: "linux-amd64", Version: "0.8.13"})
		require.NoError(t, err)
		require.Len(t, result.Compilers, 1)
		assert.True(t, result.AllAvailable)
	})

	t.Run("unpinned version", func(t *testing.T) {
		_, err := uc.Run(ctx, usecase.ResolveCompilersParams{Platform: "linux-amd64", Version: "0.7.6"})
		assert.ErrorIs(t, err, domain.ErrCompilerNotFound)
	})
}

func TestHostPlatform(t *testing.T) {
	tests := []struct {
		goos, goarch string
		want         string
		wantErr      bool
	}{
		{"linux", "amd64", "linux-amd64", false},
		{"darwin", "arm64", "macosx-amd64", false},
		{"windows", "amd64", "windows-amd64", false},
		{"linux", "arm64", "", true},
	}
	for _, tt := range tests {
		got, err := usecase.HostPlatform(tt.goos, tt.goarch)
		if tt.wantErr {
			assert.Error(t, err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestCompilerSettings(t *testing.T) {
	ctx := context.Background()
	rt := runtimeWith(twoCompilerProject())
	uc := usecase.NewCompilerSettings(rt)

	t.Run("project settings", func(t *testing.T) {
		result, err := uc.Run(ctx, usecase.CompilerSettingsParams{})
		require.NoError(t, err)
		assert.Equal(t, "0.8.13", result.Version)
		assert.Equal(t, usecase.StandardJSONOptimizer{Enabled: true, Runs: 1000}, result.Settings.Optimizer)
		assert.Contains(t, result.Settings.OutputSelection["*"]["*"], "abi")
	})

	t.Run("override with disabled optimizer still carries runs", func(t *testing.T) {
		result, err := uc.Run(ctx, usecase.CompilerSettingsParams{Version: "0.8.24"})
		require.NoError(t, err)
		assert.Equal(t, usecase.StandardJSONOptimizer{Enabled: false, Runs: 200}, result.Settings.Optimizer)
		assert.Equal(t, "cancun", result.Settings.EVMVersion)
	})

	t.Run("local default compiler", func(t *testing.T) {
		rt.Compiler = "0.8.24"
		defer func() { rt.Compiler = "" }()
		result, err := uc.Run(ctx, usecase.CompilerSettingsParams{})
		require.NoError(t, err)
		assert.Equal(t, "0.8.24", result.Version)
	})
}

func TestCompilerSettingsRejectsMalformedRecord(t *testing.T) {
	cfg := config.DefaultProjectConfig()
	cfg.Networks["localhost"] = config.NetworkConfig{URL: "127.0.0.1:8545", ChainID: 0}

	_, err := usecase.NewCompilerSettings(runtimeWith(cfg)).Run(context.Background(), usecase.CompilerSettingsParams{})
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "networks.localhost.chainId")
}
