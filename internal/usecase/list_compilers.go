package usecase

import (
	"context"

	"github.com/trebuchet-org/solconf/internal/domain/config"
)

// ListCompilersResult contains the pinned compilers
type ListCompilersResult struct {
	Compilers []CompilerView
}

// ListCompilers is a use case for listing compiler pins
type ListCompilers struct {
	cfg *config.RuntimeConfig
}

// NewListCompilers creates a new ListCompilers use case
func NewListCompilers(cfg *config.RuntimeConfig) *ListCompilers {
	return &ListCompilers{cfg: cfg}
}

// Run executes the use case
func (uc *ListCompilers) Run(ctx context.Context) (*ListCompilersResult, error) {
	project, err := requireProject(uc.cfg)
	if err != nil {
		return nil, err
	}

	defaultVersion := uc.cfg.Compiler
	if defaultVersion == "" && len(project.Config.Solidity.Compilers) > 0 {
		defaultVersion = project.Config.Solidity.Compilers[0].Version
	}

	return &ListCompilersResult{
		Compilers: compilerViews(project.Config, defaultVersion),
	}, nil
}
