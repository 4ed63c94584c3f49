package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/trebuchet-org/solconf/internal/domain/config"
	"github.com/trebuchet-org/solconf/internal/logging"
)

// DataDirName is the per-project directory for local state
const DataDirName = ".solconf"

// DefaultSolcMirror is the official solc binary index
const DefaultSolcMirror = "https://binaries.soliditylang.org"

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}
	projectRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		DataDir:        filepath.Join(projectRoot, DataDirName),
		Network:        v.GetString("network"),
		Compiler:       v.GetString("compiler"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		JSON:           v.GetBool("json"),
		Timeout:        v.GetDuration("timeout"),
		SolcMirror:     strings.TrimRight(v.GetString("solc_mirror"), "/"),
	}

	LoadEnvFiles(projectRoot)

	path := v.GetString("config")
	if path != "" && !filepath.IsAbs(path) {
		path = filepath.Join(projectRoot, path)
	}
	if path == "" {
		path, _ = ProjectFile(projectRoot)
	}
	if path == "" || v.GetBool("skip_project_load") {
		// init runs before any project file exists, and may replace a broken one
		return cfg, nil
	}

	project, err := Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load project config: %w", err)
	}
	cfg.Project = project

	logger := logging.WithComponent("config")
	for _, w := range project.Warnings {
		logger.Warn().Str("path", project.Path).Msg(w)
	}

	return cfg, nil
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string) *viper.Viper {
	v := viper.New()

	// Local defaults written by `solconf config set`
	v.SetConfigName("config.local")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, DataDirName))

	// Set up environment variables
	v.SetEnvPrefix("SOLCONF")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("timeout", "30s")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("json", false)
	v.SetDefault("project_root", projectRoot)
	v.SetDefault("solc_mirror", DefaultSolcMirror)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	return v
}
