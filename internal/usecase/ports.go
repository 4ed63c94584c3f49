package usecase

import (
	"context"
	"io"

	"github.com/trebuchet-org/solconf/internal/domain"
	"github.com/trebuchet-org/solconf/internal/domain/config"
)

// LocalConfigStore manages local configuration persistence
type LocalConfigStore interface {
	Exists() bool
	Load(ctx context.Context) (*config.LocalConfig, error)
	Save(ctx context.Context, config *config.LocalConfig) error
	GetPath() string
}

// ProjectFileWriter persists project and foundry documents
type ProjectFileWriter interface {
	FileExists(ctx context.Context, path string) (bool, error)
	WriteProject(ctx context.Context, path string, cfg *config.ProjectConfig) error
	WriteFoundry(ctx context.Context, path string, cfg *config.FoundryConfig) error
}

// ChainProber asks an RPC endpoint for its chain id
type ChainProber interface {
	ChainID(ctx context.Context, rpcURL string) (uint64, error)
}

// ChainIDCache remembers the last chain id observed per network
type ChainIDCache interface {
	// Get returns the cached id only when it was observed at the same url
	Get(network, rpcURL string) (uint64, bool)
	Set(network, rpcURL string, chainID uint64) error
}

// SolcReleaseIndex exposes the published solc builds for a platform
type SolcReleaseIndex interface {
	Releases(ctx context.Context, platform string) (*domain.SolcReleaseList, error)
	BinaryURL(platform, path string) string
}

// NodeManager manages local anvil node instances
type NodeManager interface {
	Start(ctx context.Context, instance *domain.NodeInstance) error
	Stop(ctx context.Context, instance *domain.NodeInstance) error
	GetStatus(ctx context.Context, instance *domain.NodeInstance) (*domain.NodeStatus, error)
	StreamLogs(ctx context.Context, instance *domain.NodeInstance, writer io.Writer) error
}

// NetworkSelector handles interactive selection of networks
type NetworkSelector interface {
	SelectNetwork(ctx context.Context, names []string, prompt string) (string, error)
}

// ProjectWatcher calls onChange after the file at path settles following a write
type ProjectWatcher interface {
	Watch(ctx context.Context, path string, onChange func()) error
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Current int
	Total   int
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}
