package usecase

import (
	"context"
	"fmt"

	internalconfig "github.com/trebuchet-org/solconf/internal/config"
	"github.com/trebuchet-org/solconf/internal/domain"
	"github.com/trebuchet-org/solconf/internal/domain/config"
)

// MigrateNetworkEnvParams contains parameters for moving an RPC URL into .env
type MigrateNetworkEnvParams struct {
	Network string
}

// MigrateNetworkEnvResult contains the result of the migration
type MigrateNetworkEnvResult struct {
	Network    string
	EnvVar     string
	ConfigPath string
}

// MigrateNetworkEnv replaces a literal RPC URL with a ${VAR} reference
type MigrateNetworkEnv struct {
	cfg *config.RuntimeConfig
}

// NewMigrateNetworkEnv creates a new MigrateNetworkEnv use case
func NewMigrateNetworkEnv(cfg *config.RuntimeConfig) *MigrateNetworkEnv {
	return &MigrateNetworkEnv{cfg: cfg}
}

// Run executes the use case
func (uc *MigrateNetworkEnv) Run(ctx context.Context, params MigrateNetworkEnvParams) (*MigrateNetworkEnvResult, error) {
	project, err := requireProject(uc.cfg)
	if err != nil {
		return nil, err
	}
	if _, ok := project.Config.Networks[params.Network]; !ok {
		return nil, domain.UnknownNetworkError{
			Name:        params.Network,
			Suggestions: SuggestNetworks(params.Network, project.Config.NetworkNames()),
		}
	}

	envVar, err := internalconfig.MigrateNetworkURL(uc.cfg.ProjectRoot, project, params.Network)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate network '%s': %w", params.Network, err)
	}

	return &MigrateNetworkEnvResult{
		Network:    params.Network,
		EnvVar:     envVar,
		ConfigPath: project.Path,
	}, nil
}
