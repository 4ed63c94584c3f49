package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	internalconfig "github.com/trebuchet-org/solconf/internal/config"
	"github.com/trebuchet-org/solconf/internal/domain"
	"github.com/trebuchet-org/solconf/internal/domain/config"
)

// ExportFoundryParams contains parameters for exporting foundry.toml
type ExportFoundryParams struct {
	Compiler string
	Profile  string
	Force    bool
}

// ExportFoundryResult contains the written document
type ExportFoundryResult struct {
	Path     string
	Profile  string
	Compiler string
	Foundry  *config.FoundryConfig
}

// ExportFoundry writes a foundry.toml derived from the project record
type ExportFoundry struct {
	cfg    *config.RuntimeConfig
	writer ProjectFileWriter
}

// NewExportFoundry creates a new ExportFoundry use case
func NewExportFoundry(cfg *config.RuntimeConfig, writer ProjectFileWriter) *ExportFoundry {
	return &ExportFoundry{
		cfg:    cfg,
		writer: writer,
	}
}

// Run executes the use case
func (uc *ExportFoundry) Run(ctx context.Context, params ExportFoundryParams) (*ExportFoundryResult, error) {
	project, err := requireValidProject(uc.cfg)
	if err != nil {
		return nil, err
	}

	compiler := params.Compiler
	if compiler == "" {
		compiler = uc.cfg.Compiler
	}
	idx, err := defaultCompiler(project.Config, compiler)
	if err != nil {
		return nil, err
	}

	profile := params.Profile
	if profile == "" {
		profile = "default"
	}

	path := filepath.Join(uc.cfg.ProjectRoot, internalconfig.FoundryFileName)
	exists, err := uc.writer.FileExists(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to check for %s: %w", internalconfig.FoundryFileName, err)
	}
	if exists && !params.Force {
		return nil, fmt.Errorf("%s: %w (use --force to overwrite)", internalconfig.FoundryFileName, domain.ErrAlreadyExists)
	}

	foundry, err := internalconfig.ToFoundry(project.Config, idx, profile)
	if err != nil {
		return nil, err
	}
	if err := uc.writer.WriteFoundry(ctx, path, foundry); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", internalconfig.FoundryFileName, err)
	}

	return &ExportFoundryResult{
		Path:     path,
		Profile:  profile,
		Compiler: project.Config.Solidity.Compilers[idx].Version,
		Foundry:  foundry,
	}, nil
}
