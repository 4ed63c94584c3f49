package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/solconf/internal/cli/render"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

// NewNodeCmd creates the node command with subcommands
func NewNodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "node",
		Short: "Manage a local anvil node for a declared network",
		Long: `Run anvil for a network whose URL points at this machine, listening on the
declared port and serving the declared chain id. Without an argument the
network is resolved the same way as other commands.`,
	}

	cmd.AddCommand(newNodeOpCmd("start", "Start the local node", "Start anvil for the network. Fails if already running."))
	cmd.AddCommand(newNodeOpCmd("stop", "Stop the local node", "Stop the node if running."))
	cmd.AddCommand(newNodeOpCmd("restart", "Restart the local node", "Stop the node if running, then start it again."))
	cmd.AddCommand(newNodeOpCmd("status", "Show local node status", "Show whether the node runs and answers RPC."))

	logsCmd := newNodeOpCmd("logs", "Follow local node logs", "Follow the node's log file until interrupted.")
	logsCmd.Annotations = map[string]string{longRunningAnnotation: "true"}
	cmd.AddCommand(logsCmd)

	return cmd
}

func newNodeOpCmd(operation, short, long string) *cobra.Command {
	return &cobra.Command{
		Use:   operation + " [network]",
		Short: short,
		Long:  long,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			network := ""
			if len(args) == 1 {
				network = args[0]
			}
			return runNodeCommand(cmd, operation, network)
		},
	}
}

// runNodeCommand executes a node management command
func runNodeCommand(cmd *cobra.Command, operation, network string) error {
	// Get app instance
	app, err := getApp(cmd)
	if err != nil {
		return err
	}

	result, err := app.ManageNode.Execute(cmd.Context(), usecase.ManageNodeParams{
		Operation: operation,
		Network:   network,
	})
	if err != nil {
		return err
	}

	renderer := render.NewNodeRenderer(cmd.OutOrStdout())

	// For logs operation, we need special handling
	if operation == "logs" {
		if err := renderer.RenderLogsHeader(result); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return app.ManageNode.StreamLogs(ctx, result.Instance, cmd.OutOrStdout())
	}

	return output(cmd, app, map[string]any{
		"operation": result.Operation,
		"instance":  result.Instance,
		"status":    result.Status,
		"message":   result.Message,
	}, func() error {
		return renderer.Render(result)
	})
}
