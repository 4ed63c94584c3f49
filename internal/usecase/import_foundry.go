package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	internalconfig "github.com/trebuchet-org/solconf/internal/config"
	"github.com/trebuchet-org/solconf/internal/domain"
	"github.com/trebuchet-org/solconf/internal/domain/config"
)

// ImportFoundryParams contains parameters for importing foundry.toml
type ImportFoundryParams struct {
	Profile string
	Format  config.Format
	Force   bool
	// Probe asks RPC endpoints for chain ids the name does not reveal
	Probe bool
}

// ImportFoundryResult contains the written project record
type ImportFoundryResult struct {
	Path   string
	Config *config.ProjectConfig
	// Probed maps network names to chain ids learned from their RPC
	Probed map[string]uint64
	// Unresolved lists networks whose chain id is still unknown
	Unresolved []string
}

// ImportFoundry builds a project record from foundry.toml
type ImportFoundry struct {
	cfg      *config.RuntimeConfig
	writer   ProjectFileWriter
	prober   ChainProber
	progress ProgressSink
}

// NewImportFoundry creates a new ImportFoundry use case
func NewImportFoundry(cfg *config.RuntimeConfig, writer ProjectFileWriter, prober ChainProber, progress ProgressSink) *ImportFoundry {
	return &ImportFoundry{
		cfg:      cfg,
		writer:   writer,
		prober:   prober,
		progress: progress,
	}
}

// Run executes the use case
func (uc *ImportFoundry) Run(ctx context.Context, params ImportFoundryParams) (*ImportFoundryResult, error) {
	format := params.Format
	if format == "" {
		format = config.FormatTOML
	}
	path := filepath.Join(uc.cfg.ProjectRoot, internalconfig.FileNameFor(format))

	exists, err := uc.writer.FileExists(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to check for %s: %w", filepath.Base(path), err)
	}
	if exists && !params.Force {
		return nil, fmt.Errorf("%s: %w (use --force to overwrite)", filepath.Base(path), domain.ErrAlreadyExists)
	}

	foundry, err := internalconfig.LoadFoundryConfig(uc.cfg.ProjectRoot)
	if err != nil {
		return nil, err
	}
	cfg, unknown, err := internalconfig.FromFoundry(foundry, params.Profile)
	if err != nil {
		return nil, err
	}

	result := &ImportFoundryResult{
		Path:   path,
		Config: cfg,
		Probed: map[string]uint64{},
	}

	for _, name := range unknown {
		if !params.Probe {
			result.Unresolved = append(result.Unresolved, name)
			continue
		}
		uc.progress.Info(fmt.Sprintf("🔍 Probing chain id for '%s'...", name))
		network := cfg.Networks[name]
		chainID, err := uc.prober.ChainID(ctx, os.ExpandEnv(network.URL))
		if err != nil {
			uc.progress.Error(fmt.Sprintf("could not probe '%s': %v", name, err))
			result.Unresolved = append(result.Unresolved, name)
			continue
		}
		network.ChainID = chainID
		cfg.Networks[name] = network
		result.Probed[name] = chainID
	}

	if err := uc.writer.WriteProject(ctx, path, cfg); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}

	return result, nil
}
