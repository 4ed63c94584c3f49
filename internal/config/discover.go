package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/trebuchet-org/solconf/internal/domain/config"
)

// ProjectFileNames lists the recognised project file names in lookup order
var ProjectFileNames = []string{
	"solconf.toml",
	"solconf.yaml",
	"solconf.yml",
	"solconf.json",
}

// FindProjectRoot walks up from the current directory to find a project file
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return FindProjectRootFrom(dir)
}

// FindProjectRootFrom walks up from dir to find a project file
func FindProjectRootFrom(dir string) (string, error) {
	for {
		if _, ok := ProjectFile(dir); ok {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root without finding a project file
			return "", fmt.Errorf("not in a solconf project (none of %s found)", strings.Join(ProjectFileNames, ", "))
		}
		dir = parent
	}
}

// ProjectFile returns the project file inside root, if any
func ProjectFile(root string) (string, bool) {
	for _, name := range ProjectFileNames {
		path := filepath.Join(root, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// DetectFormat derives the encoding from a file extension
func DetectFormat(path string) (config.Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return config.FormatTOML, nil
	case ".yaml", ".yml":
		return config.FormatYAML, nil
	case ".json":
		return config.FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported config file extension %q", filepath.Ext(path))
	}
}

// ParseFormat parses a user supplied format name
func ParseFormat(name string) (config.Format, error) {
	switch strings.ToLower(name) {
	case "toml", "":
		return config.FormatTOML, nil
	case "yaml", "yml":
		return config.FormatYAML, nil
	case "json":
		return config.FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format %q (expected toml, yaml or json)", name)
	}
}

// FileNameFor returns the project file name for a format
func FileNameFor(format config.Format) string {
	switch format {
	case config.FormatYAML:
		return "solconf.yaml"
	case config.FormatJSON:
		return "solconf.json"
	default:
		return "solconf.toml"
	}
}
