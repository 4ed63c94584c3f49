package usecase

import (
	"context"
	"fmt"
	"strings"

	internalconfig "github.com/trebuchet-org/solconf/internal/config"
	"github.com/trebuchet-org/solconf/internal/domain"
	"github.com/trebuchet-org/solconf/internal/domain/config"
	"github.com/trebuchet-org/solconf/internal/logging"
	"golang.org/x/sync/errgroup"
)

// DefaultProbeConcurrency bounds simultaneous RPC probes
const DefaultProbeConcurrency = 4

// CheckNetworksParams contains parameters for checking networks
type CheckNetworksParams struct {
	// Network limits the check to one network; empty checks all
	Network     string
	Concurrency int
}

// CheckNetworksResult contains one probe per checked network
type CheckNetworksResult struct {
	Probes  []domain.NetworkProbe
	Healthy bool
}

// Failed returns the probes that did not match
func (r *CheckNetworksResult) Failed() []domain.NetworkProbe {
	var failed []domain.NetworkProbe
	for _, p := range r.Probes {
		if p.State != domain.NetworkOK {
			failed = append(failed, p)
		}
	}
	return failed
}

// CheckNetworks compares each network's declared chain id with what its node reports
type CheckNetworks struct {
	cfg      *config.RuntimeConfig
	prober   ChainProber
	cache    ChainIDCache
	progress ProgressSink
}

// NewCheckNetworks creates a new CheckNetworks use case
func NewCheckNetworks(cfg *config.RuntimeConfig, prober ChainProber, cache ChainIDCache, progress ProgressSink) *CheckNetworks {
	return &CheckNetworks{
		cfg:      cfg,
		prober:   prober,
		cache:    cache,
		progress: progress,
	}
}

// Run executes the use case
func (uc *CheckNetworks) Run(ctx context.Context, params CheckNetworksParams) (*CheckNetworksResult, error) {
	project, err := requireValidProject(uc.cfg)
	if err != nil {
		return nil, err
	}

	names := project.Config.NetworkNames()
	if params.Network != "" {
		if _, ok := project.Config.Networks[params.Network]; !ok {
			return nil, domain.UnknownNetworkError{Name: params.Network, Suggestions: SuggestNetworks(params.Network, names)}
		}
		names = []string{params.Network}
	}

	limit := params.Concurrency
	if limit <= 0 {
		limit = DefaultProbeConcurrency
	}

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   "Probing",
		Total:   len(names),
		Message: fmt.Sprintf("Checking %d network(s)...", len(names)),
		Spinner: true,
	})

	probes := make([]domain.NetworkProbe, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, name := range names {
		g.Go(func() error {
			probes[i] = uc.probe(gctx, name, project.Config.Networks[name], project.Resolved.Networks[name])
			return nil
		})
	}
	_ = g.Wait()

	result := &CheckNetworksResult{Probes: probes, Healthy: true}
	for _, p := range probes {
		if p.State != domain.NetworkOK {
			result.Healthy = false
		}
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "Completed", Current: len(names), Total: len(names)})
	return result, nil
}

func (uc *CheckNetworks) probe(ctx context.Context, name string, raw, resolved config.NetworkConfig) domain.NetworkProbe {
	probe := domain.NetworkProbe{
		Name:            name,
		URL:             raw.URL,
		DeclaredChainID: raw.ChainID,
	}

	if missing := internalconfig.MissingEnvVars(raw.URL); len(missing) > 0 {
		probe.State = domain.NetworkUnreachable
		probe.Error = "unset environment variable " + strings.Join(missing, ", ")
		return probe
	}

	observed, err := uc.prober.ChainID(ctx, resolved.URL)
	if err != nil {
		probe.State = domain.NetworkUnreachable
		probe.Error = err.Error()
		return probe
	}
	probe.ObservedChainID = observed

	if err := uc.cache.Set(name, resolved.URL, observed); err != nil {
		logging.WithComponent("networks").Debug().Err(err).Str("network", name).Msg("failed to update chain id cache")
	}

	if observed != raw.ChainID {
		probe.State = domain.NetworkMismatch
		probe.Error = fmt.Sprintf("%s: declared %d, node reports %d", domain.ErrNetworkMismatch, raw.ChainID, observed)
		return probe
	}
	probe.State = domain.NetworkOK
	return probe
}
