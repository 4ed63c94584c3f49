package usecase_test

import (
	"context"
	"io"
	"sync"

	"github.com/stretchr/testify/mock"
	internalconfig "github.com/trebuchet-org/solconf/internal/config"
	"github.com/trebuchet-org/solconf/internal/domain"
	"github.com/trebuchet-org/solconf/internal/domain/config"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

// MockLocalConfigStore is a mock implementation of LocalConfigStore
type MockLocalConfigStore struct {
	mock.Mock
}

func (m *MockLocalConfigStore) Exists() bool {
	return m.Called().Bool(0)
}

func (m *MockLocalConfigStore) Load(ctx context.Context) (*config.LocalConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*config.LocalConfig), args.Error(1)
}

func (m *MockLocalConfigStore) Save(ctx context.Context, cfg *config.LocalConfig) error {
	return m.Called(ctx, cfg).Error(0)
}

func (m *MockLocalConfigStore) GetPath() string {
	return m.Called().String(0)
}

// MockFileWriter is a mock implementation of ProjectFileWriter
type MockFileWriter struct {
	mock.Mock
}

func (m *MockFileWriter) FileExists(ctx context.Context, path string) (bool, error) {
	args := m.Called(ctx, path)
	return args.Bool(0), args.Error(1)
}

func (m *MockFileWriter) WriteProject(ctx context.Context, path string, cfg *config.ProjectConfig) error {
	return m.Called(ctx, path, cfg).Error(0)
}

func (m *MockFileWriter) WriteFoundry(ctx context.Context, path string, cfg *config.FoundryConfig) error {
	return m.Called(ctx, path, cfg).Error(0)
}

// MockProber is a mock implementation of ChainProber
type MockProber struct {
	mock.Mock
}

func (m *MockProber) ChainID(ctx context.Context, rpcURL string) (uint64, error) {
	args := m.Called(ctx, rpcURL)
	return args.Get(0).(uint64), args.Error(1)
}

// memoryCache is an in-memory ChainIDCache
type memoryCache struct {
	mu      sync.Mutex
	entries map[string]uint64
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string]uint64{}}
}

func (c *memoryCache) Get(network, rpcURL string) (uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id, ok := c.entries[network+"|"+rpcURL]
	return id, ok
}

func (c *memoryCache) Set(network, rpcURL string, chainID uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[network+"|"+rpcURL] = chainID
	return nil
}

// MockSelector is a mock implementation of NetworkSelector
type MockSelector struct {
	mock.Mock
}

func (m *MockSelector) SelectNetwork(ctx context.Context, names []string, prompt string) (string, error) {
	args := m.Called(ctx, names, prompt)
	return args.String(0), args.Error(1)
}

// MockNodeManager is a mock implementation of NodeManager
type MockNodeManager struct {
	mock.Mock
}

func (m *MockNodeManager) Start(ctx context.Context, instance *domain.NodeInstance) error {
	return m.Called(ctx, instance).Error(0)
}

func (m *MockNodeManager) Stop(ctx context.Context, instance *domain.NodeInstance) error {
	return m.Called(ctx, instance).Error(0)
}

func (m *MockNodeManager) GetStatus(ctx context.Context, instance *domain.NodeInstance) (*domain.NodeStatus, error) {
	args := m.Called(ctx, instance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NodeStatus), args.Error(1)
}

func (m *MockNodeManager) StreamLogs(ctx context.Context, instance *domain.NodeInstance, w io.Writer) error {
	return m.Called(ctx, instance, w).Error(0)
}

// staticIndex serves a fixed release list
type staticIndex struct {
	list *domain.SolcReleaseList
	err  error
}

func (s *staticIndex) Releases(ctx context.Context, platform string) (*domain.SolcReleaseList, error) {
	return s.list, s.err
}

func (s *staticIndex) BinaryURL(platform, path string) string {
	return "https://mirror.test/" + platform + "/" + path
}

func runtimeWith(cfg *config.ProjectConfig) *config.RuntimeConfig {
	return &config.RuntimeConfig{
		ProjectRoot: "/project",
		DataDir:     "/project/.solconf",
		Project: &config.LoadedProject{
			Path:     "/project/solconf.toml",
			Format:   config.FormatTOML,
			Config:   cfg,
			Resolved: internalconfig.Resolve(cfg),
		},
	}
}

func multiNetworkProject() *config.ProjectConfig {
	cfg := config.DefaultProjectConfig()
	cfg.Networks["sepolia"] = config.NetworkConfig{URL: "https://rpc.sepolia.test", ChainID: 11155111}
	cfg.Networks["mainnet"] = config.NetworkConfig{URL: "https://rpc.mainnet.test", ChainID: 1}
	return cfg
}

var _ usecase.ProgressSink = usecase.NopProgress{}
