package interactive

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
	"github.com/trebuchet-org/solconf/internal/domain"
	"github.com/trebuchet-org/solconf/internal/domain/config"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

// SelectorAdapter handles interactive selection
type SelectorAdapter struct {
	config *config.RuntimeConfig
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{config: cfg}
}

// SelectNetwork asks the user to pick one of names
func (s *SelectorAdapter) SelectNetwork(ctx context.Context, names []string, prompt string) (string, error) {
	if s.config.NonInteractive {
		return "", domain.ErrNonInteractive
	}
	if len(names) == 0 {
		return "", fmt.Errorf("no networks provided for selection")
	}
	if len(names) == 1 {
		return names[0], nil
	}

	options := formatNetworkOptions(s.config, names)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, Enter to select"),
	}

	promptSelect := promptui.Select{
		Label:             prompt,
		Items:             options,
		Templates:         templates,
		Size:              10,
		StartInSearchMode: true,
		Searcher:          createFuzzySearchFunc(names),
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return "", fmt.Errorf("selection cancelled: %w", err)
	}

	return names[index], nil
}

// formatNetworkOptions renders "name (chain 1)" lines
func formatNetworkOptions(cfg *config.RuntimeConfig, names []string) []string {
	options := make([]string, len(names))
	for i, name := range names {
		label := color.New(color.FgWhite, color.Bold).Sprint(name)
		if cfg.Project != nil {
			if network, ok := cfg.Project.Config.Networks[name]; ok {
				options[i] = fmt.Sprintf("%s %s", label, color.New(color.FgBlue).Sprintf("(chain %d)", network.ChainID))
				continue
			}
		}
		options[i] = label
	}
	return options
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if input == "" {
			return true
		}

		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		if strings.Contains(item, input) {
			return true
		}

		return len(fuzzy.Find(input, []string{item})) > 0
	}
}

// Ensure the adapter implements the interface
var _ usecase.NetworkSelector = (*SelectorAdapter)(nil)
