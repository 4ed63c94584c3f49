package usecase

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path/filepath"

	"github.com/trebuchet-org/solconf/internal/domain"
	"github.com/trebuchet-org/solconf/internal/domain/config"
)

// ManageNodeParams contains parameters for node operations
type ManageNodeParams struct {
	Operation string // start, stop, restart, status, logs
	Network   string
}

// ManageNodeResult contains the result of node operations
type ManageNodeResult struct {
	Operation string
	Instance  *domain.NodeInstance
	Status    *domain.NodeStatus
	Success   bool
	Message   string
}

// ManageNode handles local node management for a declared network
type ManageNode struct {
	cfg      *config.RuntimeConfig
	networks *ResolveNetwork
	manager  NodeManager
	progress ProgressSink
}

// NewManageNode creates a new node management use case
func NewManageNode(cfg *config.RuntimeConfig, networks *ResolveNetwork, manager NodeManager, progress ProgressSink) *ManageNode {
	return &ManageNode{
		cfg:      cfg,
		networks: networks,
		manager:  manager,
		progress: progress,
	}
}

var localHosts = map[string]bool{
	"localhost": true,
	"127.0.0.1": true,
	"0.0.0.0":   true,
	"::1":       true,
}

// NodeInstanceFor derives the node a local network is served by
func NodeInstanceFor(dataDir string, network *ResolvedNetwork) (*domain.NodeInstance, error) {
	u, err := url.Parse(network.Config.URL)
	if err != nil {
		return nil, fmt.Errorf("network '%s' has an invalid url: %w", network.Name, err)
	}
	if !localHosts[u.Hostname()] {
		return nil, fmt.Errorf("network '%s' (%s): %w", network.Name, u.Hostname(), domain.ErrNotLocal)
	}
	port := u.Port()
	if port == "" {
		port = "8545"
	}
	return &domain.NodeInstance{
		Network: network.Name,
		Host:    u.Hostname(),
		Port:    port,
		ChainID: network.Config.ChainID,
		PidFile: filepath.Join(dataDir, fmt.Sprintf("node-%s.pid", network.Name)),
		LogFile: filepath.Join(dataDir, fmt.Sprintf("node-%s.log", network.Name)),
	}, nil
}

// Execute performs the node management operation
func (m *ManageNode) Execute(ctx context.Context, params ManageNodeParams) (*ManageNodeResult, error) {
	if _, err := requireValidProject(m.cfg); err != nil {
		return nil, err
	}
	network, err := m.networks.Run(ctx, params.Network)
	if err != nil {
		return nil, err
	}
	instance, err := NodeInstanceFor(m.cfg.DataDir, network)
	if err != nil {
		return nil, err
	}

	switch params.Operation {
	case "start":
		return m.start(ctx, instance)
	case "stop":
		return m.stop(ctx, instance)
	case "restart":
		return m.restart(ctx, instance)
	case "status", "logs":
		return m.status(ctx, params.Operation, instance)
	default:
		return nil, fmt.Errorf("unknown operation: %s", params.Operation)
	}
}

// StreamLogs follows the node's log file until ctx is done
func (m *ManageNode) StreamLogs(ctx context.Context, instance *domain.NodeInstance, w io.Writer) error {
	return m.manager.StreamLogs(ctx, instance, w)
}

func (m *ManageNode) start(ctx context.Context, instance *domain.NodeInstance) (*ManageNodeResult, error) {
	m.progress.Info(fmt.Sprintf("🔨 Starting local node for '%s' on port %s (chain %d)...", instance.Network, instance.Port, instance.ChainID))

	status, err := m.manager.GetStatus(ctx, instance)
	if err == nil && status.Running {
		return nil, fmt.Errorf("node for '%s' (PID %d): %w", instance.Network, status.PID, domain.ErrNodeRunning)
	}

	if err := m.manager.Start(ctx, instance); err != nil {
		return nil, fmt.Errorf("failed to start node: %w", err)
	}

	status, err = m.manager.GetStatus(ctx, instance)
	if err != nil {
		return nil, fmt.Errorf("failed to get status after start: %w", err)
	}

	return &ManageNodeResult{
		Operation: "start",
		Instance:  instance,
		Status:    status,
		Success:   true,
		Message:   fmt.Sprintf("Node for '%s' started with PID %d", instance.Network, status.PID),
	}, nil
}

func (m *ManageNode) stop(ctx context.Context, instance *domain.NodeInstance) (*ManageNodeResult, error) {
	m.progress.Info(fmt.Sprintf("🛑 Stopping node for '%s'...", instance.Network))

	status, err := m.manager.GetStatus(ctx, instance)
	if err != nil || !status.Running {
		return &ManageNodeResult{
			Operation: "stop",
			Instance:  instance,
			Success:   true,
			Message:   fmt.Sprintf("Node for '%s' is not running", instance.Network),
		}, nil
	}

	if err := m.manager.Stop(ctx, instance); err != nil {
		return nil, fmt.Errorf("failed to stop node: %w", err)
	}

	return &ManageNodeResult{
		Operation: "stop",
		Instance:  instance,
		Success:   true,
		Message:   "Node stopped",
	}, nil
}

func (m *ManageNode) restart(ctx context.Context, instance *domain.NodeInstance) (*ManageNodeResult, error) {
	m.progress.Info(fmt.Sprintf("🔄 Restarting node for '%s'...", instance.Network))

	status, err := m.manager.GetStatus(ctx, instance)
	if err == nil && status.Running {
		if err := m.manager.Stop(ctx, instance); err != nil {
			return nil, fmt.Errorf("failed to stop node: %w", err)
		}
	}

	if err := m.manager.Start(ctx, instance); err != nil {
		return nil, fmt.Errorf("failed to start node: %w", err)
	}

	status, err = m.manager.GetStatus(ctx, instance)
	if err != nil {
		return nil, fmt.Errorf("failed to get status after restart: %w", err)
	}

	return &ManageNodeResult{
		Operation: "restart",
		Instance:  instance,
		Status:    status,
		Success:   true,
		Message:   fmt.Sprintf("Node for '%s' restarted with PID %d", instance.Network, status.PID),
	}, nil
}

func (m *ManageNode) status(ctx context.Context, operation string, instance *domain.NodeInstance) (*ManageNodeResult, error) {
	status, err := m.manager.GetStatus(ctx, instance)
	if err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}

	return &ManageNodeResult{
		Operation: operation,
		Instance:  instance,
		Status:    status,
		Success:   true,
	}, nil
}
