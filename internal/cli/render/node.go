package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

// NodeRenderer renders local node operation results
type NodeRenderer struct {
	out io.Writer
}

// NewNodeRenderer creates a new node renderer
func NewNodeRenderer(out io.Writer) *NodeRenderer {
	return &NodeRenderer{out: out}
}

// Render renders the node operation result
func (r *NodeRenderer) Render(result *usecase.ManageNodeResult) error {
	switch result.Operation {
	case "start", "restart":
		return r.renderStart(result)
	case "stop":
		return r.renderStop(result)
	case "status":
		return r.renderStatus(result)
	default:
		return fmt.Errorf("unknown operation: %s", result.Operation)
	}
}

// renderStart renders the start operation result
func (r *NodeRenderer) renderStart(result *usecase.ManageNodeResult) error {
	if result.Success {
		color.New(color.FgGreen).Fprintf(r.out, "✅ %s\n", result.Message)
		color.New(color.FgYellow).Fprintf(r.out, "📋 Logs: %s\n", result.Status.LogFile)
		color.New(color.FgBlue).Fprintf(r.out, "🌐 RPC URL: %s\n", result.Status.RPCURL)
	}
	return nil
}

// renderStop renders the stop operation result
func (r *NodeRenderer) renderStop(result *usecase.ManageNodeResult) error {
	if result.Success {
		color.New(color.FgGreen).Fprintf(r.out, "✅ %s\n", result.Message)
	}
	return nil
}

// renderStatus renders the status operation result
func (r *NodeRenderer) renderStatus(result *usecase.ManageNodeResult) error {
	color.New(color.FgCyan, color.Bold).Fprintf(r.out, "📊 Node Status ('%s', chain %d):\n", result.Instance.Network, result.Instance.ChainID)

	if result.Status.Running {
		color.New(color.FgGreen).Fprintf(r.out, "Status: 🟢 Running (PID %d)\n", result.Status.PID)
		color.New(color.FgBlue).Fprintf(r.out, "RPC URL: %s\n", result.Status.RPCURL)
		color.New(color.FgYellow).Fprintf(r.out, "Log file: %s\n", result.Status.LogFile)

		if result.Status.RPCHealthy {
			color.New(color.FgGreen).Fprintf(r.out, "RPC Health: ✅ Responding (chain %d)\n", result.Status.ChainID)
		} else {
			color.New(color.FgRed).Fprintln(r.out, "RPC Health: ❌ Not responding")
			if result.Status.Error != "" {
				color.New(color.FgHiBlack).Fprintf(r.out, "  %s\n", result.Status.Error)
			}
		}
	} else {
		color.New(color.FgRed).Fprintln(r.out, "Status: 🔴 Not running")
		color.New(color.FgHiBlack).Fprintf(r.out, "PID file: %s\n", result.Instance.PidFile)
		color.New(color.FgHiBlack).Fprintf(r.out, "Log file: %s\n", result.Instance.LogFile)
	}

	return nil
}

// RenderLogsHeader renders the header for logs streaming
func (r *NodeRenderer) RenderLogsHeader(result *usecase.ManageNodeResult) error {
	color.New(color.FgCyan, color.Bold).Fprintf(r.out, "📋 Showing node '%s' logs (Ctrl+C to exit):\n", result.Instance.Network)
	color.New(color.FgHiBlack).Fprintf(r.out, "Log file: %s\n\n", result.Instance.LogFile)
	return nil
}
