package config

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/google/renameio/v2"
	"github.com/trebuchet-org/solconf/internal/domain"
	"github.com/trebuchet-org/solconf/internal/domain/config"
)

// FoundryFileName is the foundry project file
const FoundryFileName = "foundry.toml"

// foundryDefaultRuns is what forge assumes when optimizer_runs is absent
const foundryDefaultRuns = 200

// LoadFoundryConfig loads and parses foundry.toml without env var expansion
func LoadFoundryConfig(projectRoot string) (*config.FoundryConfig, error) {
	foundryPath := filepath.Join(projectRoot, FoundryFileName)

	var cfg config.FoundryConfig
	if _, err := toml.DecodeFile(foundryPath, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse foundry.toml: %w", err)
	}
	return &cfg, nil
}

// WriteFoundryConfig atomically writes foundry.toml
func WriteFoundryConfig(path string, cfg *config.FoundryConfig) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode foundry.toml: %w", err)
	}
	if err := renameio.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// ToFoundry builds a foundry.toml document for one pinned compiler.
// RPC endpoints keep their raw ${VAR} references.
func ToFoundry(cfg *config.ProjectConfig, compilerIndex int, profile string) (*config.FoundryConfig, error) {
	if compilerIndex < 0 || compilerIndex >= len(cfg.Solidity.Compilers) {
		return nil, fmt.Errorf("%w: no compiler at index %d", domain.ErrCompilerNotFound, compilerIndex)
	}
	if profile == "" {
		profile = "default"
	}

	settings := cfg.EffectiveSettings(compilerIndex)
	out := &config.FoundryConfig{
		Profile: map[string]config.FoundryProfile{
			profile: {
				SrcPath:     "contracts",
				OutPath:     "out",
				LibPaths:    []string{"lib"},
				SolcVersion: cfg.Solidity.Compilers[compilerIndex].Version,
				Optimizer:   settings.Optimizer.Enabled,
				EVMVersion:  settings.EVMVersion,
			},
		},
		RpcEndpoints: make(map[string]string, len(cfg.Networks)),
	}
	if settings.Optimizer.Enabled {
		p := out.Profile[profile]
		p.OptimizerRuns = settings.Optimizer.Runs
		out.Profile[profile] = p
	}
	for name, network := range cfg.Networks {
		out.RpcEndpoints[name] = network.URL
	}
	return out, nil
}

// FromFoundry builds a project record from a foundry.toml profile. Chain IDs
// are taken from etherscan `chain` entries or the well-known network table;
// names whose chain cannot be inferred are returned so callers can probe them.
func FromFoundry(foundry *config.FoundryConfig, profile string) (*config.ProjectConfig, []string, error) {
	if profile == "" {
		profile = "default"
	}
	p, ok := foundry.Profile[profile]
	if !ok {
		return nil, nil, fmt.Errorf("profile %s not found in foundry.toml", profile)
	}
	if p.SolcVersion == "" {
		return nil, nil, fmt.Errorf("profile %s does not pin solc_version", profile)
	}

	cfg := &config.ProjectConfig{
		Networks: make(map[string]config.NetworkConfig, len(foundry.RpcEndpoints)),
		Solidity: config.SolidityConfig{
			Compilers: []config.CompilerConfig{{Version: p.SolcVersion}},
		},
		Settings: config.SettingsConfig{
			Optimizer: config.OptimizerConfig{
				Enabled: p.Optimizer,
			},
			EVMVersion: p.EVMVersion,
		},
	}
	if p.Optimizer {
		cfg.Settings.Optimizer.Runs = p.OptimizerRuns
		if cfg.Settings.Optimizer.Runs == 0 {
			cfg.Settings.Optimizer.Runs = foundryDefaultRuns
		}
	}

	var unknown []string
	for name, rpcURL := range foundry.RpcEndpoints {
		network := config.NetworkConfig{URL: rpcURL}
		if es, ok := foundry.Etherscan[name]; ok && es.Chain != 0 {
			network.ChainID = es.Chain
		} else if known, ok := domain.LookupKnownNetwork(name); ok {
			network.ChainID = known.ChainID
		} else {
			unknown = append(unknown, name)
		}
		cfg.Networks[name] = network
	}
	sort.Strings(unknown)
	return cfg, unknown, nil
}
