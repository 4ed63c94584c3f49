package usecase

import (
	"context"
	"errors"
	"sort"

	internalconfig "github.com/trebuchet-org/solconf/internal/config"
	"github.com/trebuchet-org/solconf/internal/domain"
	"github.com/trebuchet-org/solconf/internal/domain/config"
)

// ValidateProjectParams contains parameters for validation
type ValidateProjectParams struct {
	// Strict fails on unknown keys as well
	Strict bool
}

// ValidateProjectResult contains the validation outcome
type ValidateProjectResult struct {
	Path     string
	Valid    bool
	Issues   []domain.Issue
	Warnings []string
}

// ValidateProject is a use case for validating the project record
type ValidateProject struct {
	cfg *config.RuntimeConfig
}

// NewValidateProject creates a new ValidateProject use case
func NewValidateProject(cfg *config.RuntimeConfig) *ValidateProject {
	return &ValidateProject{cfg: cfg}
}

// Run executes the use case. An invalid record is reported in the result,
// not as an error.
func (uc *ValidateProject) Run(ctx context.Context, params ValidateProjectParams) (*ValidateProjectResult, error) {
	project, err := requireProject(uc.cfg)
	if err != nil {
		return nil, err
	}

	result := &ValidateProjectResult{
		Path:     project.Path,
		Valid:    true,
		Warnings: project.Warnings,
	}

	err = internalconfig.ValidateLoaded(project, params.Strict)
	var verr *domain.ValidationError
	switch {
	case err == nil:
	case errors.As(err, &verr):
		result.Valid = false
		result.Issues = append([]domain.Issue(nil), verr.Issues...)
		sort.SliceStable(result.Issues, func(i, j int) bool {
			return result.Issues[i].Path < result.Issues[j].Path
		})
	default:
		return nil, err
	}

	return result, nil
}
