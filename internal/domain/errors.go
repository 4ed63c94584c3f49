package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested resource doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when trying to create a resource that already exists
	ErrAlreadyExists = errors.New("already exists")

	// ErrNoProject is returned when an operation needs a project file and none exists
	ErrNoProject = errors.New("no project config found, run 'solconf init' first")

	// ErrInvalidConfig is returned when the project file cannot be decoded
	ErrInvalidConfig = errors.New("invalid config")

	// ErrInvalidChainID is returned when a chain ID is invalid
	ErrInvalidChainID = errors.New("invalid chain ID")

	// ErrNetworkMismatch is returned when a node reports a different chain ID than declared
	ErrNetworkMismatch = errors.New("network mismatch")

	// ErrUnreachable is returned when an RPC endpoint cannot be reached
	ErrUnreachable = errors.New("rpc unreachable")

	// ErrCompilerNotFound is returned when a pinned compiler has no matching release
	ErrCompilerNotFound = errors.New("compiler not found")

	// ErrNodeRunning is returned when starting a node that is already running
	ErrNodeRunning = errors.New("node already running")

	// ErrNotLocal is returned when a node is requested for a non-local network
	ErrNotLocal = errors.New("network is not local")

	// ErrNonInteractive is returned when a prompt would be needed in non-interactive mode
	ErrNonInteractive = errors.New("interactive selection not available in non-interactive mode")
)

// Issue is a single validation finding
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return fmt.Sprintf("%s: %s", i.Path, i.Message)
}

// ValidationError collects every problem found in a project record
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	sorted := make([]Issue, len(e.Issues))
	copy(sorted, e.Issues)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Path < sorted[j].Path
	})

	lines := make([]string, 0, len(sorted))
	for _, issue := range sorted {
		lines = append(lines, "  - "+issue.String())
	}
	return fmt.Sprintf("config has %d problem(s):\n%s", len(sorted), strings.Join(lines, "\n"))
}

// Unwrap lets callers match invalid configs with errors.Is
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfig
}

// UnknownNetworkError is returned when a network name is not declared
type UnknownNetworkError struct {
	Name        string
	Suggestions []string
}

func (e UnknownNetworkError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("network '%s' is not declared in the project config", e.Name)
	}
	return fmt.Sprintf("network '%s' is not declared in the project config (did you mean: %s?)",
		e.Name, strings.Join(e.Suggestions, ", "))
}

func (e UnknownNetworkError) Unwrap() error {
	return ErrNotFound
}
