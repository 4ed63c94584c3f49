package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/samber/lo"
	internalconfig "github.com/trebuchet-org/solconf/internal/config"
	"github.com/trebuchet-org/solconf/internal/domain"
	"github.com/trebuchet-org/solconf/internal/domain/config"
)

// InitProjectParams contains parameters for project initialization
type InitProjectParams struct {
	Format config.Format
	Force  bool
}

// InitProjectResult contains the result of project initialization
type InitProjectResult struct {
	Path     string
	Format   config.Format
	Config   *config.ProjectConfig
	Replaced bool
	// Shadowing lists project files that are looked up before the new one
	Shadowing []string
}

// InitProject writes the default project record
type InitProject struct {
	cfg      *config.RuntimeConfig
	writer   ProjectFileWriter
	progress ProgressSink
}

// NewInitProject creates a new init project use case
func NewInitProject(cfg *config.RuntimeConfig, writer ProjectFileWriter, progress ProgressSink) *InitProject {
	return &InitProject{
		cfg:      cfg,
		writer:   writer,
		progress: progress,
	}
}

// Run executes the use case
func (uc *InitProject) Run(ctx context.Context, params InitProjectParams) (*InitProjectResult, error) {
	format := params.Format
	if format == "" {
		format = config.FormatTOML
	}
	fileName := internalconfig.FileNameFor(format)
	path := filepath.Join(uc.cfg.ProjectRoot, fileName)

	var existing []string
	for _, name := range internalconfig.ProjectFileNames {
		ok, err := uc.writer.FileExists(ctx, filepath.Join(uc.cfg.ProjectRoot, name))
		if err != nil {
			return nil, fmt.Errorf("failed to check for %s: %w", name, err)
		}
		if ok {
			existing = append(existing, name)
		}
	}
	if len(existing) > 0 && !params.Force {
		return nil, fmt.Errorf("%s: %w (use --force to overwrite)", existing[0], domain.ErrAlreadyExists)
	}

	result := &InitProjectResult{
		Path:   path,
		Format: format,
		Config: config.DefaultProjectConfig(),
	}
	position := lo.IndexOf(internalconfig.ProjectFileNames, fileName)
	for _, name := range existing {
		switch idx := lo.IndexOf(internalconfig.ProjectFileNames, name); {
		case name == fileName:
			result.Replaced = true
		case idx < position:
			result.Shadowing = append(result.Shadowing, name)
		}
	}

	uc.progress.Info(fmt.Sprintf("📝 Writing %s...", fileName))
	if err := uc.writer.WriteProject(ctx, path, result.Config); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", fileName, err)
	}

	return result, nil
}
