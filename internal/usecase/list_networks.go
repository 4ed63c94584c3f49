package usecase

import (
	"context"

	"github.com/trebuchet-org/solconf/internal/domain"
	"github.com/trebuchet-org/solconf/internal/domain/config"
)

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkInfo
	Default  string
}

// NetworkInfo describes one declared network
type NetworkInfo struct {
	Name    string `json:"name"`
	URL     string `json:"url"`
	ChainID uint64 `json:"chainId"`
	// LastSeenChainID is the chain id the endpoint reported on the last check, 0 if never checked
	LastSeenChainID uint64 `json:"lastSeenChainId,omitempty"`
	Accounts        int    `json:"accounts"`
	Default         bool   `json:"default"`
	Known           bool   `json:"known"`
}

// ListNetworks is a use case for listing declared networks
type ListNetworks struct {
	cfg   *config.RuntimeConfig
	cache ChainIDCache
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(cfg *config.RuntimeConfig, cache ChainIDCache) *ListNetworks {
	return &ListNetworks{
		cfg:   cfg,
		cache: cache,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context) (*ListNetworksResult, error) {
	project, err := requireProject(uc.cfg)
	if err != nil {
		return nil, err
	}

	names := project.Config.NetworkNames()
	networks := make([]NetworkInfo, 0, len(names))
	for _, name := range names {
		raw := project.Config.Networks[name]
		info := NetworkInfo{
			Name:     name,
			URL:      raw.URL,
			ChainID:  raw.ChainID,
			Accounts: len(raw.Accounts),
			Default:  name == uc.cfg.Network,
		}
		if known, ok := domain.LookupKnownNetwork(name); ok && known.ChainID == raw.ChainID {
			info.Known = true
		}
		if seen, ok := uc.cache.Get(name, project.Resolved.Networks[name].URL); ok {
			info.LastSeenChainID = seen
		}
		networks = append(networks, info)
	}

	return &ListNetworksResult{
		Networks: networks,
		Default:  uc.cfg.Network,
	}, nil
}
