package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	internalconfig "github.com/trebuchet-org/solconf/internal/config"
	"github.com/trebuchet-org/solconf/internal/domain/config"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

// FileWriterAdapter writes project and foundry documents atomically
type FileWriterAdapter struct{}

// NewFileWriterAdapter creates a new file writer adapter
func NewFileWriterAdapter() *FileWriterAdapter {
	return &FileWriterAdapter{}
}

// FileExists checks if a file exists
func (f *FileWriterAdapter) FileExists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// WriteProject encodes cfg in the format implied by path
func (f *FileWriterAdapter) WriteProject(ctx context.Context, path string, cfg *config.ProjectConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return internalconfig.WriteProjectFile(path, cfg)
}

// WriteFoundry writes a foundry.toml document
func (f *FileWriterAdapter) WriteFoundry(ctx context.Context, path string, cfg *config.FoundryConfig) error {
	return internalconfig.WriteFoundryConfig(path, cfg)
}

// Ensure the adapter implements the interface
var _ usecase.ProjectFileWriter = (*FileWriterAdapter)(nil)
