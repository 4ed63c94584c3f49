package anvil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/trebuchet-org/solconf/internal/domain"
	"github.com/trebuchet-org/solconf/internal/logging"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

const (
	// startupTimeout bounds how long Start waits for the RPC to answer
	startupTimeout = 10 * time.Second
	stopTimeout    = 5 * time.Second
	pollInterval   = 200 * time.Millisecond
)

// Manager runs anvil as a detached process tracked by pid and log files
type Manager struct {
	binary string
	prober usecase.ChainProber
}

// NewManager creates a new anvil manager adapter
func NewManager(prober usecase.ChainProber) *Manager {
	return &Manager{
		binary: "anvil",
		prober: prober,
	}
}

func buildAnvilArgs(instance *domain.NodeInstance) []string {
	host := instance.Host
	if host == "" || host == "localhost" {
		host = "127.0.0.1"
	}
	args := []string{"--port", instance.Port, "--host", host}
	if instance.ChainID != 0 {
		args = append(args, "--chain-id", strconv.FormatUint(instance.ChainID, 10))
	}
	return args
}

func rpcURL(instance *domain.NodeInstance) string {
	return fmt.Sprintf("http://127.0.0.1:%s", instance.Port)
}

// Start launches anvil and waits until its RPC reports the expected chain id
func (m *Manager) Start(ctx context.Context, instance *domain.NodeInstance) error {
	if err := os.MkdirAll(filepath.Dir(instance.PidFile), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	logFile, err := os.Create(instance.LogFile)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	defer logFile.Close()

	// not bound to ctx: the node outlives this command
	cmd := exec.Command(m.binary, buildAnvilArgs(instance)...) //nolint:gosec // fixed binary, validated args
	cmd.Stdout = logFile
	cmd.Stderr = logFile

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", m.binary, err)
	}

	if err := writePidFile(instance.PidFile, cmd.Process.Pid); err != nil {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		return fmt.Errorf("failed to write PID file: %w", err)
	}

	logger := logging.WithComponent("anvil")
	logger.Debug().
		Int("pid", cmd.Process.Pid).
		Strs("args", cmd.Args).
		Msg("node process started")

	if err := m.waitForRPC(ctx, instance); err != nil {
		// a node that never became usable is not left running
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		if rmErr := os.Remove(instance.PidFile); rmErr != nil && !os.IsNotExist(rmErr) {
			logger.Warn().Err(rmErr).Str("file", instance.PidFile).Msg("failed to remove PID file")
		}
		return err
	}
	_ = cmd.Process.Release()
	return nil
}

func (m *Manager) waitForRPC(ctx context.Context, instance *domain.NodeInstance) error {
	ctx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	var lastErr error
	for {
		chainID, err := m.prober.ChainID(ctx, rpcURL(instance))
		if err == nil {
			if instance.ChainID != 0 && chainID != instance.ChainID {
				return fmt.Errorf("%w: node reports chain %d, network declares %d", domain.ErrNetworkMismatch, chainID, instance.ChainID)
			}
			return nil
		}
		lastErr = err

		select {
		case <-ctx.Done():
			return fmt.Errorf("node did not become ready (see %s): %w", instance.LogFile, lastErr)
		case <-ticker.C:
		}
	}
}

// Stop sends SIGTERM and waits for the process to exit
func (m *Manager) Stop(ctx context.Context, instance *domain.NodeInstance) error {
	pid, err := readPidFile(instance.PidFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read PID file: %w", err)
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		return fmt.Errorf("failed to find process: %w", err)
	}

	if err := process.Signal(syscall.SIGTERM); err != nil && !errors.Is(err, os.ErrProcessDone) {
		if err := process.Kill(); err != nil {
			return fmt.Errorf("failed to kill process: %w", err)
		}
	}

	// the process is not our child after Release, so poll instead of Wait
	deadline := time.Now().Add(stopTimeout)
	for processAlive(pid) && time.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(pollInterval):
		}
	}
	if processAlive(pid) {
		_ = process.Kill()
	}

	if err := os.Remove(instance.PidFile); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove PID file: %w", err)
	}
	return nil
}

// GetStatus reports whether the node runs and whether its RPC answers
func (m *Manager) GetStatus(ctx context.Context, instance *domain.NodeInstance) (*domain.NodeStatus, error) {
	status := &domain.NodeStatus{
		LogFile: instance.LogFile,
		RPCURL:  rpcURL(instance),
	}

	pid, err := readPidFile(instance.PidFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return status, nil
		}
		return nil, fmt.Errorf("failed to read PID file: %w", err)
	}
	if !processAlive(pid) {
		// stale pid file from a node that died
		_ = os.Remove(instance.PidFile)
		return status, nil
	}

	status.Running = true
	status.PID = pid

	chainID, err := m.prober.ChainID(ctx, status.RPCURL)
	if err != nil {
		status.Error = err.Error()
		return status, nil
	}
	status.RPCHealthy = true
	status.ChainID = chainID
	return status, nil
}

// StreamLogs copies the log file to writer and keeps following it until ctx is done
func (m *Manager) StreamLogs(ctx context.Context, instance *domain.NodeInstance, writer io.Writer) error {
	f, err := os.Open(instance.LogFile)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer f.Close()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		if _, err := io.Copy(writer, f); err != nil {
			return fmt.Errorf("failed to read log file: %w", err)
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func processAlive(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return process.Signal(syscall.Signal(0)) == nil
}

func readPidFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("invalid PID in file: %s", string(data))
	}
	return pid, nil
}

func writePidFile(path string, pid int) error {
	return os.WriteFile(path, []byte(strconv.Itoa(pid)), 0644)
}

var _ usecase.NodeManager = (*Manager)(nil)
