package usecase

import (
	"context"

	"github.com/trebuchet-org/solconf/internal/domain/config"
)

// StandardJSONSettings is the settings object of solc's standard-json input
type StandardJSONSettings struct {
	Optimizer       StandardJSONOptimizer          `json:"optimizer"`
	EVMVersion      string                         `json:"evmVersion,omitempty"`
	OutputSelection map[string]map[string][]string `json:"outputSelection"`
}

// StandardJSONOptimizer mirrors solc's optimizer settings
type StandardJSONOptimizer struct {
	Enabled bool   `json:"enabled"`
	Runs    uint32 `json:"runs"`
}

// CompilerSettingsParams contains parameters for emitting compiler settings
type CompilerSettingsParams struct {
	Version string
}

// CompilerSettingsResult contains the settings for one pin
type CompilerSettingsResult struct {
	Version  string
	Settings StandardJSONSettings
}

// CompilerSettings renders the settings a pinned compiler is invoked with
type CompilerSettings struct {
	cfg *config.RuntimeConfig
}

// NewCompilerSettings creates a new CompilerSettings use case
func NewCompilerSettings(cfg *config.RuntimeConfig) *CompilerSettings {
	return &CompilerSettings{cfg: cfg}
}

func defaultOutputSelection() map[string]map[string][]string {
	return map[string]map[string][]string{
		"*": {
			"*": {"abi", "evm.bytecode", "evm.deployedBytecode", "evm.methodIdentifiers", "metadata"},
			"":  {"ast"},
		},
	}
}

// Run executes the use case
func (uc *CompilerSettings) Run(ctx context.Context, params CompilerSettingsParams) (*CompilerSettingsResult, error) {
	project, err := requireValidProject(uc.cfg)
	if err != nil {
		return nil, err
	}

	version := params.Version
	if version == "" {
		version = uc.cfg.Compiler
	}
	idx, err := defaultCompiler(project.Config, version)
	if err != nil {
		return nil, err
	}

	settings := project.Config.EffectiveSettings(idx)
	runs := settings.Optimizer.Runs
	if runs == 0 {
		// solc requires runs even when the optimizer is off
		runs = config.ToolchainDefaultRuns
	}

	return &CompilerSettingsResult{
		Version: project.Config.Solidity.Compilers[idx].Version,
		Settings: StandardJSONSettings{
			Optimizer: StandardJSONOptimizer{
				Enabled: settings.Optimizer.Enabled,
				Runs:    runs,
			},
			EVMVersion:      settings.EVMVersion,
			OutputSelection: defaultOutputSelection(),
		},
	}, nil
}
