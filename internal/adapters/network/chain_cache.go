package network

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/renameio/v2"
	"github.com/trebuchet-org/solconf/internal/domain/config"
	"github.com/trebuchet-org/solconf/internal/logging"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

// chainCacheFile lives in the data dir
const chainCacheFile = "chainIds.json"

// chainCacheEntry is the last chain id observed for a network
type chainCacheEntry struct {
	URL       string    `json:"url"`
	ChainID   uint64    `json:"chainId"`
	CheckedAt time.Time `json:"checkedAt"`
}

type chainCacheFileContent struct {
	Networks  map[string]chainCacheEntry `json:"networks"`
	UpdatedAt time.Time                  `json:"updatedAt"`
}

// ChainIDCacheAdapter persists observed chain ids as JSON in the data dir
type ChainIDCacheAdapter struct {
	path  string
	mu    sync.RWMutex
	cache *chainCacheFileContent
}

// NewChainIDCacheAdapter creates a cache backed by <data dir>/chainIds.json
func NewChainIDCacheAdapter(cfg *config.RuntimeConfig) *ChainIDCacheAdapter {
	c := &ChainIDCacheAdapter{
		path: filepath.Join(cfg.DataDir, chainCacheFile),
	}
	c.load()
	return c
}

func emptyChainCache() *chainCacheFileContent {
	return &chainCacheFileContent{Networks: make(map[string]chainCacheEntry)}
}

func (c *ChainIDCacheAdapter) load() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache = emptyChainCache()
	data, err := os.ReadFile(c.path)
	if err != nil {
		// Cache doesn't exist yet, that's fine
		return
	}

	var loaded chainCacheFileContent
	if err := json.Unmarshal(data, &loaded); err != nil || loaded.Networks == nil {
		logging.WithComponent("chain-cache").Debug().Str("path", c.path).Msg("ignoring unreadable chain id cache")
		return
	}
	c.cache = &loaded
}

// Get returns the cached id when it was observed at rpcURL
func (c *ChainIDCacheAdapter) Get(network, rpcURL string) (uint64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.cache.Networks[network]
	if !ok || entry.URL != rpcURL {
		return 0, false
	}
	return entry.ChainID, true
}

// Set records an observation and rewrites the cache file
func (c *ChainIDCacheAdapter) Set(network, rpcURL string, chainID uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().UTC()
	c.cache.Networks[network] = chainCacheEntry{URL: rpcURL, ChainID: chainID, CheckedAt: now}
	c.cache.UpdatedAt = now

	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	data, err := json.MarshalIndent(c.cache, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal chain id cache: %w", err)
	}
	if err := renameio.WriteFile(c.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write chain id cache: %w", err)
	}
	return nil
}

var _ usecase.ChainIDCache = (*ChainIDCacheAdapter)(nil)
