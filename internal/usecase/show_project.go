package usecase

import (
	"context"

	"github.com/trebuchet-org/solconf/internal/domain/config"
)

// ShowProjectResult contains the loaded project record
type ShowProjectResult struct {
	Path      string
	Format    config.Format
	Config    *config.ProjectConfig
	Compilers []CompilerView
	Network   string
	Warnings  []string
}

// ShowProject is a use case for displaying the project record
type ShowProject struct {
	cfg *config.RuntimeConfig
}

// NewShowProject creates a new ShowProject use case
func NewShowProject(cfg *config.RuntimeConfig) *ShowProject {
	return &ShowProject{cfg: cfg}
}

// Run executes the use case
func (uc *ShowProject) Run(ctx context.Context) (*ShowProjectResult, error) {
	project, err := requireProject(uc.cfg)
	if err != nil {
		return nil, err
	}

	return &ShowProjectResult{
		Path:      project.Path,
		Format:    project.Format,
		Config:    project.Config,
		Compilers: compilerViews(project.Config, uc.cfg.Compiler),
		Network:   uc.cfg.Network,
		Warnings:  project.Warnings,
	}, nil
}
