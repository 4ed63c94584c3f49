package usecase

import (
	"fmt"

	internalconfig "github.com/trebuchet-org/solconf/internal/config"
	"github.com/trebuchet-org/solconf/internal/domain"
	"github.com/trebuchet-org/solconf/internal/domain/config"
)

// CompilerView is a compiler pin with the settings that apply to it
type CompilerView struct {
	Index    int                   `json:"index"`
	Version  string                `json:"version"`
	Settings config.SettingsConfig `json:"settings"`
	Override bool                  `json:"override"`
	Default  bool                  `json:"default"`
}

func requireProject(cfg *config.RuntimeConfig) (*config.LoadedProject, error) {
	if cfg.Project == nil {
		return nil, domain.ErrNoProject
	}
	return cfg.Project, nil
}

// requireValidProject is requireProject for operations that hand the record
// to other tools; a record with issues is rejected
func requireValidProject(cfg *config.RuntimeConfig) (*config.LoadedProject, error) {
	project, err := requireProject(cfg)
	if err != nil {
		return nil, err
	}
	if err := internalconfig.ValidateRecord(project); err != nil {
		return nil, fmt.Errorf("%s: %w", project.Path, err)
	}
	return project, nil
}

func compilerViews(cfg *config.ProjectConfig, defaultVersion string) []CompilerView {
	views := make([]CompilerView, 0, len(cfg.Solidity.Compilers))
	for i, compiler := range cfg.Solidity.Compilers {
		views = append(views, CompilerView{
			Index:    i,
			Version:  compiler.Version,
			Settings: cfg.EffectiveSettings(i),
			Override: compiler.Settings != nil,
			Default:  compiler.Version == defaultVersion,
		})
	}
	return views
}

// defaultCompiler picks the requested pin, falling back to the first one
func defaultCompiler(cfg *config.ProjectConfig, requested string) (int, error) {
	if requested == "" {
		if len(cfg.Solidity.Compilers) == 0 {
			return -1, domain.ErrCompilerNotFound
		}
		return 0, nil
	}
	idx := cfg.CompilerIndex(requested)
	if idx < 0 {
		return -1, &compilerNotPinnedError{version: requested}
	}
	return idx, nil
}

type compilerNotPinnedError struct {
	version string
}

func (e *compilerNotPinnedError) Error() string {
	return "compiler " + e.version + " is not pinned in the project config"
}

func (e *compilerNotPinnedError) Unwrap() error {
	return domain.ErrCompilerNotFound
}
