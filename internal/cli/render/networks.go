package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/solconf/internal/domain"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out io.Writer
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer) *NetworksRenderer {
	return &NetworksRenderer{out: out}
}

// RenderNetworksList renders the declared networks
func (r *NetworksRenderer) RenderNetworksList(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks declared in the project file")
		return nil
	}

	fmt.Fprintln(r.out, "🌐 Networks:")
	fmt.Fprintln(r.out)

	t := newTable(r.out)
	t.AppendHeader(table.Row{"", "NAME", "CHAIN", "LAST SEEN", "URL", "ACCOUNTS"})
	for _, network := range result.Networks {
		marker := ""
		if network.Default {
			marker = "*"
		}
		lastSeen := "-"
		if network.LastSeenChainID != 0 {
			lastSeen = fmt.Sprintf("%d", network.LastSeenChainID)
			if network.LastSeenChainID != network.ChainID {
				lastSeen = color.New(color.FgRed).Sprint(lastSeen)
			}
		}
		t.AppendRow(table.Row{
			marker,
			color.New(color.FgWhite, color.Bold).Sprint(network.Name),
			network.ChainID,
			lastSeen,
			color.New(color.FgBlue).Sprint(network.URL),
			network.Accounts,
		})
	}
	t.Render()
	return nil
}

// RenderCheck renders endpoint probe results
func (r *NetworksRenderer) RenderCheck(result *usecase.CheckNetworksResult) error {
	if len(result.Probes) == 0 {
		fmt.Fprintln(r.out, "No networks declared in the project file")
		return nil
	}

	t := newTable(r.out)
	t.AppendHeader(table.Row{"", "NAME", "DECLARED", "OBSERVED", "STATE", "DETAIL"})
	for _, probe := range result.Probes {
		observed := "-"
		if probe.ObservedChainID != 0 {
			observed = fmt.Sprintf("%d", probe.ObservedChainID)
		}
		t.AppendRow(table.Row{
			stateIcon(probe.State),
			probe.Name,
			probe.DeclaredChainID,
			observed,
			stateColor(probe.State).Sprint(title(string(probe.State))),
			orDash(probe.Error),
		})
	}
	t.Render()

	fmt.Fprintln(r.out)
	if result.Healthy {
		fmt.Fprintln(r.out, FormatSuccess("All networks match their declared chain id"))
	} else {
		failed := len(result.Failed())
		fmt.Fprintln(r.out, FormatError(fmt.Sprintf("%d %s failed", failed, plural(failed, "network", "networks"))))
	}
	return nil
}

// RenderMigrate renders a URL moved into .env
func (r *NetworksRenderer) RenderMigrate(result *usecase.MigrateNetworkEnvResult) error {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Moved %s RPC URL into .env as %s", result.Network, result.EnvVar)))
	fmt.Fprintf(r.out, "📁 updated: %s\n", getRelativePath(result.ConfigPath))
	return nil
}

func stateIcon(state domain.NetworkState) string {
	switch state {
	case domain.NetworkOK:
		return "✅"
	case domain.NetworkMismatch:
		return "⚠️"
	default:
		return "❌"
	}
}

func stateColor(state domain.NetworkState) *color.Color {
	switch state {
	case domain.NetworkOK:
		return color.New(color.FgGreen)
	case domain.NetworkMismatch:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}
