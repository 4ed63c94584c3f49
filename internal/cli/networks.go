package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/solconf/internal/cli/render"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List and check declared networks",
		Long: `List the networks declared in the project file.

Available subcommands:
  networks              List networks
  networks check        Ask each RPC endpoint for its chain id
  networks resolve      Show which network commands would use
  networks migrate-env  Move a literal RPC URL into .env`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listNetworks(cmd)
		},
	}

	cmd.AddCommand(newNetworksCheckCmd())
	cmd.AddCommand(newNetworksResolveCmd())
	cmd.AddCommand(newNetworksMigrateEnvCmd())

	return cmd
}

func listNetworks(cmd *cobra.Command) error {
	app, err := getApp(cmd)
	if err != nil {
		return err
	}

	result, err := app.ListNetworks.Run(cmd.Context())
	if err != nil {
		return err
	}

	return output(cmd, app, result.Networks, func() error {
		return render.NewNetworksRenderer(cmd.OutOrStdout()).RenderNetworksList(result)
	})
}

func newNetworksCheckCmd() *cobra.Command {
	var concurrency int

	cmd := &cobra.Command{
		Use:   "check [network]",
		Short: "Check that RPC endpoints serve the declared chain",
		Long: `Connect to each network's RPC endpoint and compare the chain id it reports
with the declared one. Exits non-zero when any network is unreachable or mismatched.

Examples:
  solconf networks check
  solconf networks check sepolia`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.CheckNetworksParams{Concurrency: concurrency}
			if len(args) == 1 {
				params.Network = args[0]
			}

			result, err := app.CheckNetworks.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			err = output(cmd, app, result.Probes, func() error {
				return render.NewNetworksRenderer(cmd.OutOrStdout()).RenderCheck(result)
			})
			if err != nil {
				return err
			}
			if !result.Healthy {
				return errors.New("network check failed")
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrency", usecase.DefaultProbeConcurrency, "Endpoints probed at once")

	return cmd
}

func newNetworksResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [network]",
		Short: "Show which network commands would use",
		Long: `Resolve a network the way other commands do: the given name, then --network
or the local default, then the only declared network, then an interactive prompt.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			name := ""
			if len(args) == 1 {
				name = args[0]
			}

			network, err := app.ResolveNetwork.Run(cmd.Context(), name)
			if err != nil {
				return err
			}

			return output(cmd, app, map[string]any{
				"name":    network.Name,
				"url":     network.Raw.URL,
				"chainId": network.Config.ChainID,
			}, func() error {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  chain %d  %s\n", network.Name, network.Config.ChainID, network.Raw.URL)
				return nil
			})
		},
	}
}

func newNetworksMigrateEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate-env <network>",
		Short: "Move a literal RPC URL into .env",
		Long: `Append the network's RPC URL to .env as <NAME>_RPC_URL and rewrite the
project file to reference it as ${<NAME>_RPC_URL}.

Examples:
  solconf networks migrate-env sepolia`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.MigrateNetworkEnv.Run(cmd.Context(), usecase.MigrateNetworkEnvParams{Network: args[0]})
			if err != nil {
				return err
			}

			return output(cmd, app, map[string]any{
				"network": result.Network,
				"envVar":  result.EnvVar,
				"path":    result.ConfigPath,
			}, func() error {
				return render.NewNetworksRenderer(cmd.OutOrStdout()).RenderMigrate(result)
			})
		},
	}
}
