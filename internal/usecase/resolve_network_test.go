package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/solconf/internal/domain"
	"github.com/trebuchet-org/solconf/internal/domain/config"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

func TestResolveNetwork(t *testing.T) {
	ctx := context.Background()

	t.Run("explicit name", func(t *testing.T) {
		uc := usecase.NewResolveNetwork(runtimeWith(multiNetworkProject()), new(MockSelector))
		network, err := uc.Run(ctx, "sepolia")
		require.NoError(t, err)
		assert.Equal(t, "sepolia", network.Name)
		assert.Equal(t, uint64(11155111), network.Config.ChainID)
	})

	t.Run("falls back to configured default", func(t *testing.T) {
		cfg := runtimeWith(multiNetworkProject())
		cfg.Network = "mainnet"
		network, err := usecase.NewResolveNetwork(cfg, new(MockSelector)).Run(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, "mainnet", network.Name)
	})

	t.Run("single network needs no choice", func(t *testing.T) {
		network, err := usecase.NewResolveNetwork(runtimeWith(config.DefaultProjectConfig()), new(MockSelector)).Run(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, "localhost", network.Name)
	})

	t.Run("prompts when interactive", func(t *testing.T) {
		selector := new(MockSelector)
		selector.On("SelectNetwork", ctx, []string{"localhost", "mainnet", "sepolia"}, "Select network").Return("sepolia", nil)

		network, err := usecase.NewResolveNetwork(runtimeWith(multiNetworkProject()), selector).Run(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, "sepolia", network.Name)
		selector.AssertExpectations(t)
	})

	t.Run("non-interactive without default", func(t *testing.T) {
		cfg := runtimeWith(multiNetworkProject())
		cfg.NonInteractive = true
		_, err := usecase.NewResolveNetwork(cfg, new(MockSelector)).Run(ctx, "")
		assert.ErrorIs(t, err, domain.ErrNonInteractive)
	})

	t.Run("unknown network carries suggestions", func(t *testing.T) {
		_, err := usecase.NewResolveNetwork(runtimeWith(multiNetworkProject()), new(MockSelector)).Run(ctx, "sepolai")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		var unknown domain.UnknownNetworkError
		require.True(t, errors.As(err, &unknown))
		assert.Equal(t, []string{"sepolia"}, unknown.Suggestions)
		assert.Contains(t, err.Error(), "did you mean: sepolia?")
	})

	t.Run("no project", func(t *testing.T) {
		_, err := usecase.NewResolveNetwork(&config.RuntimeConfig{}, new(MockSelector)).Run(ctx, "localhost")
		assert.ErrorIs(t, err, domain.ErrNoProject)
	})
}

func TestSuggestNetworks(t *testing.T) {
	names := []string{"arbitrum", "arbitrum-sepolia", "localhost", "mainnet", "sepolia"}

	tests := []struct {
		name string
		want []string
	}{
		{name: "main", want: []string{"mainnet"}},
		{name: "local", want: []string{"localhost"}},
		{name: "mainet", want: []string{"mainnet"}},
		{name: "zksync", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, usecase.SuggestNetworks(tt.name, names))
		})
	}
}
