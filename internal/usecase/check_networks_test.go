package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/solconf/internal/domain"
	"github.com/trebuchet-org/solconf/internal/domain/config"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

func TestCheckNetworks(t *testing.T) {
	ctx := context.Background()

	project := multiNetworkProject()
	project.Networks["optimism"] = config.NetworkConfig{URL: "${SOLCONF_TEST_UNSET_OP_RPC}", ChainID: 10}
	rt := runtimeWith(project)

	prober := new(MockProber)
	prober.On("ChainID", mock.Anything, "http://127.0.0.1:8545").Return(uint64(31337), nil)
	prober.On("ChainID", mock.Anything, "https://rpc.mainnet.test").Return(uint64(5), nil)
	prober.On("ChainID", mock.Anything, "https://rpc.sepolia.test").Return(uint64(0), errors.New("connection refused"))

	cache := newMemoryCache()
	result, err := usecase.NewCheckNetworks(rt, prober, cache, usecase.NopProgress{}).Run(ctx, usecase.CheckNetworksParams{Concurrency: 2})
	require.NoError(t, err)

	require.Len(t, result.Probes, 4)
	assert.False(t, result.Healthy)

	states := map[string]domain.NetworkState{}
	for _, p := range result.Probes {
		states[p.Name] = p.State
	}
	assert.Equal(t, map[string]domain.NetworkState{
		"localhost": domain.NetworkOK,
		"mainnet":   domain.NetworkMismatch,
		"optimism":  domain.NetworkUnreachable,
		"sepolia":   domain.NetworkUnreachable,
	}, states)
	assert.Len(t, result.Failed(), 3)

	// probes keep declaration order
	assert.Equal(t, "localhost", result.Probes[0].Name)
	assert.Contains(t, result.Probes[1].Error, "declared 1, node reports 5")
	assert.Contains(t, result.Probes[2].Error, "SOLCONF_TEST_UNSET_OP_RPC")

	seen, ok := cache.Get("mainnet", "https://rpc.mainnet.test")
	assert.True(t, ok)
	assert.Equal(t, uint64(5), seen)
	_, ok = cache.Get("sepolia", "https://rpc.sepolia.test")
	assert.False(t, ok)

	prober.AssertNotCalled(t, "ChainID", mock.Anything, "${SOLCONF_TEST_UNSET_OP_RPC}")
}

func TestCheckNetworksSingle(t *testing.T) {
	ctx := context.Background()
	rt := runtimeWith(multiNetworkProject())

	prober := new(MockProber)
	prober.On("ChainID", mock.Anything, "https://rpc.sepolia.test").Return(uint64(11155111), nil)

	result, err := usecase.NewCheckNetworks(rt, prober, newMemoryCache(), usecase.NopProgress{}).Run(ctx, usecase.CheckNetworksParams{Network: "sepolia"})
	require.NoError(t, err)
	require.Len(t, result.Probes, 1)
	assert.True(t, result.Healthy)
	prober.AssertNumberOfCalls(t, "ChainID", 1)

	_, err = usecase.NewCheckNetworks(rt, prober, newMemoryCache(), usecase.NopProgress{}).Run(ctx, usecase.CheckNetworksParams{Network: "goerli"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListNetworks(t *testing.T) {
	rt := runtimeWith(multiNetworkProject())
	rt.Network = "sepolia"

	cache := newMemoryCache()
	require.NoError(t, cache.Set("mainnet", "https://rpc.mainnet.test", 1))
	require.NoError(t, cache.Set("sepolia", "https://old-rpc.sepolia.test", 11155111))

	result, err := usecase.NewListNetworks(rt, cache).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Networks, 3)

	byName := map[string]usecase.NetworkInfo{}
	for _, n := range result.Networks {
		byName[n.Name] = n
	}
	assert.Equal(t, uint64(1), byName["mainnet"].LastSeenChainID)
	assert.Zero(t, byName["sepolia"].LastSeenChainID)
	assert.True(t, byName["sepolia"].Default)
	assert.True(t, byName["mainnet"].Known)
	assert.Equal(t, "sepolia", result.Default)
}
