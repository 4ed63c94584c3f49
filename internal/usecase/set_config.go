package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/trebuchet-org/solconf/internal/domain"
	"github.com/trebuchet-org/solconf/internal/domain/config"
)

// SetConfigParams contains parameters for setting configuration
type SetConfigParams struct {
	Key   string
	Value string
}

// SetConfigResult contains the result of setting configuration
type SetConfigResult struct {
	UpdatedConfig *config.LocalConfig
	ConfigPath    string
	Key           config.ConfigKey
	Value         string
}

// SetConfig is a use case for setting configuration values
type SetConfig struct {
	cfg   *config.RuntimeConfig
	store LocalConfigStore
}

// NewSetConfig creates a new SetConfig use case
func NewSetConfig(cfg *config.RuntimeConfig, store LocalConfigStore) *SetConfig {
	return &SetConfig{
		cfg:   cfg,
		store: store,
	}
}

func unknownConfigKeyError(key string) error {
	validKeys := []string{}
	for _, k := range config.ValidConfigKeys() {
		if k == config.ConfigKeyNetwork {
			validKeys = append(validKeys, string(k)+" (net)")
		} else {
			validKeys = append(validKeys, string(k))
		}
	}
	return fmt.Errorf("unknown config key: %s\nAvailable keys: %s", key, strings.Join(validKeys, ", "))
}

// Run executes the set config use case
func (uc *SetConfig) Run(ctx context.Context, params SetConfigParams) (*SetConfigResult, error) {
	key := strings.ToLower(params.Key)
	if !config.IsValidConfigKey(key) {
		return nil, unknownConfigKeyError(params.Key)
	}
	normalizedKey := config.NormalizeConfigKey(key)

	if err := uc.checkValue(normalizedKey, params.Value); err != nil {
		return nil, err
	}

	local, err := uc.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	switch normalizedKey {
	case config.ConfigKeyNetwork:
		local.Network = params.Value
	case config.ConfigKeyCompiler:
		local.Compiler = params.Value
	}

	if err := uc.store.Save(ctx, local); err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}

	return &SetConfigResult{
		UpdatedConfig: local,
		ConfigPath:    uc.store.GetPath(),
		Key:           normalizedKey,
		Value:         params.Value,
	}, nil
}

// checkValue rejects defaults the project record does not declare
func (uc *SetConfig) checkValue(key config.ConfigKey, value string) error {
	if uc.cfg.Project == nil {
		return nil
	}
	project := uc.cfg.Project.Config

	switch key {
	case config.ConfigKeyNetwork:
		if _, ok := project.Networks[value]; !ok {
			return domain.UnknownNetworkError{Name: value, Suggestions: SuggestNetworks(value, project.NetworkNames())}
		}
	case config.ConfigKeyCompiler:
		if project.CompilerIndex(value) < 0 {
			return &compilerNotPinnedError{version: value}
		}
	}
	return nil
}
