package config

import "sort"

// ProjectConfig is the toolchain project record: target networks, compiler
// pins and optimizer settings. Field keys are identical across toml, yaml and json.
type ProjectConfig struct {
	Networks map[string]NetworkConfig `toml:"networks" yaml:"networks" json:"networks"`
	Solidity SolidityConfig           `toml:"solidity" yaml:"solidity" json:"solidity"`
	Settings SettingsConfig           `toml:"settings" yaml:"settings" json:"settings"`
}

// NetworkConfig describes one named execution environment
type NetworkConfig struct {
	URL      string   `toml:"url" yaml:"url" json:"url"`
	ChainID  uint64   `toml:"chainId" yaml:"chainId" json:"chainId"`
	Accounts []string `toml:"accounts,omitempty" yaml:"accounts,omitempty" json:"accounts,omitempty"` //nolint:gosec // usually env var references
}

// SolidityConfig lists the compiler releases made available to the build
type SolidityConfig struct {
	Compilers []CompilerConfig `toml:"compilers" yaml:"compilers" json:"compilers"`
}

// CompilerConfig pins one compiler release. Settings overrides the
// project-wide settings block for this compiler only.
type CompilerConfig struct {
	Version  string          `toml:"version" yaml:"version" json:"version"`
	Settings *SettingsConfig `toml:"settings,omitempty" yaml:"settings,omitempty" json:"settings,omitempty"`
}

// SettingsConfig holds compilation settings
type SettingsConfig struct {
	Optimizer  OptimizerConfig `toml:"optimizer" yaml:"optimizer" json:"optimizer"`
	EVMVersion string          `toml:"evmVersion,omitempty" yaml:"evmVersion,omitempty" json:"evmVersion,omitempty"`
}

// OptimizerConfig toggles the optimizer pass. Runs trades deployment size
// (low) against per-call execution cost (high).
type OptimizerConfig struct {
	Enabled bool   `toml:"enabled" yaml:"enabled" json:"enabled"`
	Runs    uint32 `toml:"runs" yaml:"runs" json:"runs"`
}

const (
	DefaultNetworkName     = "localhost"
	DefaultNetworkURL      = "http://127.0.0.1:8545"
	DefaultChainID         = 31337
	DefaultCompilerVersion = "0.8.13"
	DefaultOptimizerRuns   = 1000

	// ToolchainDefaultRuns is what solc assumes when runs is left out
	ToolchainDefaultRuns = 200
)

// DefaultProjectConfig returns the record written by `solconf init`
func DefaultProjectConfig() *ProjectConfig {
	return &ProjectConfig{
		Networks: map[string]NetworkConfig{
			DefaultNetworkName: {
				URL:     DefaultNetworkURL,
				ChainID: DefaultChainID,
			},
		},
		Solidity: SolidityConfig{
			Compilers: []CompilerConfig{
				{Version: DefaultCompilerVersion},
			},
		},
		Settings: SettingsConfig{
			Optimizer: OptimizerConfig{
				Enabled: true,
				Runs:    DefaultOptimizerRuns,
			},
		},
	}
}

// NetworkNames returns the declared network names in sorted order
func (c *ProjectConfig) NetworkNames() []string {
	names := make([]string, 0, len(c.Networks))
	for name := range c.Networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EffectiveSettings returns the settings that apply to compiler i
func (c *ProjectConfig) EffectiveSettings(i int) SettingsConfig {
	if i >= 0 && i < len(c.Solidity.Compilers) && c.Solidity.Compilers[i].Settings != nil {
		return *c.Solidity.Compilers[i].Settings
	}
	return c.Settings
}

// CompilerIndex returns the position of a pinned version, or -1
func (c *ProjectConfig) CompilerIndex(version string) int {
	for i, compiler := range c.Solidity.Compilers {
		if compiler.Version == version {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy
func (c *ProjectConfig) Clone() *ProjectConfig {
	out := &ProjectConfig{
		Settings: c.Settings,
	}
	if c.Networks != nil {
		out.Networks = make(map[string]NetworkConfig, len(c.Networks))
		for name, n := range c.Networks {
			if n.Accounts != nil {
				n.Accounts = append([]string(nil), n.Accounts...)
			}
			out.Networks[name] = n
		}
	}
	if c.Solidity.Compilers != nil {
		out.Solidity.Compilers = make([]CompilerConfig, len(c.Solidity.Compilers))
		for i, compiler := range c.Solidity.Compilers {
			if compiler.Settings != nil {
				s := *compiler.Settings
				compiler.Settings = &s
			}
			out.Solidity.Compilers[i] = compiler
		}
	}
	return out
}
