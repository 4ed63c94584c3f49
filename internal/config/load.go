package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/trebuchet-org/solconf/internal/domain"
	"github.com/trebuchet-org/solconf/internal/domain/config"
	"github.com/trebuchet-org/solconf/internal/logging"
	"gopkg.in/yaml.v3"
)

// LoadEnvFiles loads .env and .env.local from the project root.
// Variables already set in the environment are not overridden.
func LoadEnvFiles(projectRoot string) {
	logger := logging.WithComponent("config")
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				// Log warning but don't fail
				logger.Warn().Err(err).Str("file", envFile).Msg("failed to load env file")
			}
		}
	}
}

// Load reads, decodes and resolves a project file
func Load(path string) (*config.LoadedProject, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) //nolint:gosec // user supplied project file
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	cfg, warnings, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	logging.WithComponent("config").Debug().
		Str("path", path).
		Str("format", string(format)).
		Int("networks", len(cfg.Networks)).
		Int("compilers", len(cfg.Solidity.Compilers)).
		Msg("loaded project config")

	return &config.LoadedProject{
		Path:     path,
		Format:   format,
		Config:   cfg,
		Resolved: Resolve(cfg),
		Warnings: warnings,
	}, nil
}

// Decode parses a project record. Unknown keys are returned as warnings;
// type errors fail with domain.ErrInvalidConfig.
func Decode(data []byte, format config.Format) (*config.ProjectConfig, []string, error) {
	var (
		cfg      config.ProjectConfig
		warnings []string
		err      error
	)

	switch format {
	case config.FormatTOML:
		warnings, err = decodeTOML(data, &cfg)
	case config.FormatYAML:
		warnings, err = decodeYAML(data, &cfg)
	case config.FormatJSON:
		warnings, err = decodeJSON(data, &cfg)
	default:
		err = fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}

	applyDefaults(&cfg)
	return &cfg, warnings, nil
}

func decodeTOML(data []byte, cfg *config.ProjectConfig) ([]string, error) {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, err
	}

	var warnings []string
	for _, key := range md.Undecoded() {
		warnings = append(warnings, fmt.Sprintf("unknown key %q", key.String()))
	}
	return warnings, nil
}

func decodeYAML(data []byte, cfg *config.ProjectConfig) ([]string, error) {
	strict := yaml.NewDecoder(bytes.NewReader(data))
	strict.KnownFields(true)

	var probe config.ProjectConfig
	err := strict.Decode(&probe)
	if err == nil {
		*cfg = probe
		return nil, nil
	}
	if errors.Is(err, io.EOF) {
		return nil, nil
	}

	var typeErr *yaml.TypeError
	if !errors.As(err, &typeErr) {
		return nil, err
	}

	var warnings []string
	var failures []string
	for _, msg := range typeErr.Errors {
		if strings.Contains(msg, "not found in type") {
			warnings = append(warnings, msg)
		} else {
			failures = append(failures, msg)
		}
	}
	if len(failures) > 0 {
		return nil, fmt.Errorf("yaml: %s", strings.Join(failures, "; "))
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return warnings, nil
}

func decodeJSON(data []byte, cfg *config.ProjectConfig) ([]string, error) {
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	strict := json.NewDecoder(bytes.NewReader(data))
	strict.DisallowUnknownFields()
	var probe config.ProjectConfig
	if err := strict.Decode(&probe); err != nil {
		// the lenient decode succeeded, so only unknown fields can fail here
		return []string{strings.TrimPrefix(err.Error(), "json: ")}, nil
	}
	return nil, nil
}

// applyDefaults fills values the toolchain would otherwise assume implicitly
func applyDefaults(cfg *config.ProjectConfig) {
	if cfg.Settings.Optimizer.Enabled && cfg.Settings.Optimizer.Runs == 0 {
		cfg.Settings.Optimizer.Runs = config.ToolchainDefaultRuns
	}
	for i := range cfg.Solidity.Compilers {
		s := cfg.Solidity.Compilers[i].Settings
		if s != nil && s.Optimizer.Enabled && s.Optimizer.Runs == 0 {
			s.Optimizer.Runs = config.ToolchainDefaultRuns
		}
	}
}

// Resolve returns a copy with environment references expanded
func Resolve(cfg *config.ProjectConfig) *config.ProjectConfig {
	resolved := cfg.Clone()
	for name, network := range resolved.Networks {
		network.URL = os.ExpandEnv(network.URL)
		for i, account := range network.Accounts {
			network.Accounts[i] = os.ExpandEnv(account)
		}
		resolved.Networks[name] = network
	}
	return resolved
}
