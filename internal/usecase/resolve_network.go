package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"github.com/trebuchet-org/solconf/internal/domain"
	"github.com/trebuchet-org/solconf/internal/domain/config"
)

const maxSuggestions = 3

// ResolvedNetwork is a declared network with its raw and expanded descriptor
type ResolvedNetwork struct {
	Name   string
	Raw    config.NetworkConfig
	Config config.NetworkConfig
}

// ResolveNetwork picks the network an operation targets
type ResolveNetwork struct {
	cfg      *config.RuntimeConfig
	selector NetworkSelector
}

// NewResolveNetwork creates a new ResolveNetwork use case
func NewResolveNetwork(cfg *config.RuntimeConfig, selector NetworkSelector) *ResolveNetwork {
	return &ResolveNetwork{
		cfg:      cfg,
		selector: selector,
	}
}

// Run resolves name, falling back to the configured default, the only
// declared network, or an interactive choice in that order.
func (uc *ResolveNetwork) Run(ctx context.Context, name string) (*ResolvedNetwork, error) {
	project, err := requireProject(uc.cfg)
	if err != nil {
		return nil, err
	}

	names := project.Config.NetworkNames()
	if name == "" {
		name = uc.cfg.Network
	}
	if name == "" {
		switch {
		case len(names) == 1:
			name = names[0]
		case uc.cfg.NonInteractive:
			return nil, fmt.Errorf("no network given and no default set (use --network or 'solconf config set network'): %w", domain.ErrNonInteractive)
		default:
			name, err = uc.selector.SelectNetwork(ctx, names, "Select network")
			if err != nil {
				return nil, fmt.Errorf("network selection failed: %w", err)
			}
		}
	}

	raw, ok := project.Config.Networks[name]
	if !ok {
		return nil, domain.UnknownNetworkError{Name: name, Suggestions: SuggestNetworks(name, names)}
	}

	return &ResolvedNetwork{
		Name:   name,
		Raw:    raw,
		Config: project.Resolved.Networks[name],
	}, nil
}

// SuggestNetworks returns up to three declared names close to name
func SuggestNetworks(name string, names []string) []string {
	var suggestions []string
	for _, match := range fuzzy.Find(name, names) {
		suggestions = append(suggestions, match.Str)
	}

	// typos the subsequence match misses, e.g. swapped letters
	near := lo.Filter(names, func(candidate string, _ int) bool {
		return editDistance(name, candidate) <= 2
	})
	sort.SliceStable(near, func(i, j int) bool {
		return editDistance(name, near[i]) < editDistance(name, near[j])
	})
	suggestions = lo.Uniq(append(suggestions, near...))
	if len(suggestions) == 0 {
		return nil
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
