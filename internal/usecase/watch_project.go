package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/samber/lo"
	internalconfig "github.com/trebuchet-org/solconf/internal/config"
	"github.com/trebuchet-org/solconf/internal/domain"
	"github.com/trebuchet-org/solconf/internal/domain/config"
	"github.com/trebuchet-org/solconf/internal/logging"
)

// WatchEvent reports one reload of the project file
type WatchEvent struct {
	Time   time.Time
	Path   string
	Valid  bool
	Err    error
	Issues []domain.Issue
	// Changes summarises what differs from the last good record
	Changes []string
	// Current is the record in effect after this event
	Current *config.LoadedProject
}

// WatchProjectParams contains parameters for watching the project file
type WatchProjectParams struct {
	Strict  bool
	OnEvent func(WatchEvent)
}

// WatchProject reloads and validates the project file whenever it changes.
// A record that fails to load or validate never replaces the last good one.
type WatchProject struct {
	cfg     *config.RuntimeConfig
	watcher ProjectWatcher
}

// NewWatchProject creates a new WatchProject use case
func NewWatchProject(cfg *config.RuntimeConfig, watcher ProjectWatcher) *WatchProject {
	return &WatchProject{
		cfg:     cfg,
		watcher: watcher,
	}
}

// Run blocks until ctx is done
func (uc *WatchProject) Run(ctx context.Context, params WatchProjectParams) error {
	project, err := requireProject(uc.cfg)
	if err != nil {
		return err
	}

	logger := logging.WithComponent("watch")
	current := project

	reload := func() {
		event := uc.reload(current, params.Strict)
		if event.Valid && len(event.Changes) > 0 {
			current = event.Current
			logger.Info().Str("path", current.Path).Strs("changes", event.Changes).Msg("project config reloaded")
		} else if !event.Valid {
			logger.Warn().Str("path", current.Path).Err(event.Err).Msg("keeping last good project config")
		}
		event.Current = current
		if params.OnEvent != nil {
			params.OnEvent(event)
		}
	}

	err = uc.watcher.Watch(ctx, project.Path, reload)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (uc *WatchProject) reload(current *config.LoadedProject, strict bool) WatchEvent {
	event := WatchEvent{Time: time.Now(), Path: current.Path}

	next, err := internalconfig.Load(current.Path)
	if err != nil {
		event.Err = err
		return event
	}

	if err := internalconfig.ValidateLoaded(next, strict); err != nil {
		event.Err = err
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			event.Issues = verr.Issues
		}
		return event
	}

	event.Valid = true
	event.Changes = DiffProjects(current.Config, next.Config)
	event.Current = next
	return event
}

// DiffProjects lists the differences between two records, one line per change
func DiffProjects(old, updated *config.ProjectConfig) []string {
	var changes []string

	oldNames, newNames := old.NetworkNames(), updated.NetworkNames()
	added, removed := lo.Difference(newNames, oldNames)
	for _, name := range added {
		changes = append(changes, fmt.Sprintf("+ network %s", name))
	}
	for _, name := range removed {
		changes = append(changes, fmt.Sprintf("- network %s", name))
	}
	for _, name := range lo.Intersect(oldNames, newNames) {
		before, after := old.Networks[name], updated.Networks[name]
		if before.URL != after.URL {
			changes = append(changes, fmt.Sprintf("~ networks.%s.url: %s -> %s", name, before.URL, after.URL))
		}
		if before.ChainID != after.ChainID {
			changes = append(changes, fmt.Sprintf("~ networks.%s.chainId: %d -> %d", name, before.ChainID, after.ChainID))
		}
		if !cmp.Equal(before.Accounts, after.Accounts) {
			changes = append(changes, fmt.Sprintf("~ networks.%s.accounts: %d -> %d entries", name, len(before.Accounts), len(after.Accounts)))
		}
	}

	if !cmp.Equal(old.Solidity, updated.Solidity) {
		versions := func(c *config.ProjectConfig) []string {
			return lo.Map(c.Solidity.Compilers, func(cc config.CompilerConfig, _ int) string { return cc.Version })
		}
		changes = append(changes, fmt.Sprintf("~ solidity.compilers: %v -> %v", versions(old), versions(updated)))
	}
	if !cmp.Equal(old.Settings, updated.Settings) {
		changes = append(changes, fmt.Sprintf("~ settings: %+v -> %+v", old.Settings, updated.Settings))
	}

	return changes
}
