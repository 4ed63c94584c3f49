package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/trebuchet-org/solconf/internal/domain/config"
)

// envVarPattern matches ${VAR_NAME} patterns in config values
var envVarPattern = regexp.MustCompile(`^\$\{([A-Za-z_][A-Za-z0-9_]*)\}$`)

// DetectEnvVar checks if a raw config value is a simple ${VAR_NAME} reference.
// Returns the variable name and true if the value is a pure env var reference.
func DetectEnvVar(rawValue string) (string, bool) {
	matches := envVarPattern.FindStringSubmatch(rawValue)
	if len(matches) == 2 {
		return matches[1], true
	}
	return "", false
}

// GenerateEnvVarName generates a conventional env var name for a network's RPC URL.
// Convention: uppercase, dashes/dots to underscores, append _RPC_URL.
// Examples: sepolia -> SEPOLIA_RPC_URL, celo-sepolia -> CELO_SEPOLIA_RPC_URL
func GenerateEnvVarName(networkName string) string {
	name := strings.ToUpper(networkName)
	name = strings.NewReplacer("-", "_", ".", "_").Replace(name)
	return name + "_RPC_URL"
}

// ReferencedEnvVars returns every variable a value references, in order of appearance
func ReferencedEnvVars(rawValue string) []string {
	var names []string
	seen := make(map[string]bool)
	os.Expand(rawValue, func(name string) string {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
		return ""
	})
	return names
}

// MissingEnvVars returns the referenced variables that are not set, sorted
func MissingEnvVars(rawValue string) []string {
	var missing []string
	for _, name := range ReferencedEnvVars(rawValue) {
		if _, ok := os.LookupEnv(name); !ok {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}

// MigrateNetworkURL replaces a hardcoded RPC URL in the project file with an
// env var reference and appends the assignment to .env. Returns the variable name.
func MigrateNetworkURL(projectRoot string, project *config.LoadedProject, networkName string) (string, error) {
	network, ok := project.Config.Networks[networkName]
	if !ok {
		return "", fmt.Errorf("network '%s' not found in %s", networkName, filepath.Base(project.Path))
	}
	if _, isVar := DetectEnvVar(network.URL); isVar {
		return "", fmt.Errorf("network '%s' already uses an env var reference", networkName)
	}

	envVarName := GenerateEnvVarName(networkName)
	rawURL := network.URL

	updated := project.Config.Clone()
	network.URL = "${" + envVarName + "}"
	updated.Networks[networkName] = network

	// .env first so the rewritten project file always resolves
	if err := appendToEnvFile(projectRoot, envVarName, rawURL); err != nil {
		return "", fmt.Errorf("failed to update .env: %w", err)
	}
	if err := WriteProjectFile(project.Path, updated); err != nil {
		return "", fmt.Errorf("failed to update %s: %w", filepath.Base(project.Path), err)
	}
	return envVarName, nil
}

// appendToEnvFile appends an env var assignment to the .env file.
func appendToEnvFile(projectRoot, envVarName, value string) error {
	envPath := filepath.Join(projectRoot, ".env")

	// Read existing content to check for duplicates and trailing newline
	existing, err := os.ReadFile(envPath) //nolint:gosec // internal path
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read .env: %w", err)
	}

	if len(existing) > 0 {
		vars, err := godotenv.Unmarshal(string(existing))
		if err != nil {
			return fmt.Errorf("failed to parse .env: %w", err)
		}
		if current, ok := vars[envVarName]; ok {
			if current == value {
				return nil
			}
			return fmt.Errorf("%s is already set to a different url in .env", envVarName)
		}
	}

	f, err := os.OpenFile(envPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600) //nolint:gosec // internal path
	if err != nil {
		return fmt.Errorf("failed to open .env: %w", err)
	}
	defer f.Close()

	// Ensure we start on a new line if file has content
	prefix := ""
	if len(existing) > 0 && existing[len(existing)-1] != '\n' {
		prefix = "\n"
	}

	if _, err := fmt.Fprintf(f, "%s%s=%s\n", prefix, envVarName, value); err != nil {
		return fmt.Errorf("failed to write to .env: %w", err)
	}
	return nil
}
