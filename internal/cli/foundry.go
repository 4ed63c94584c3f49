package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/solconf/internal/cli/render"
	"github.com/trebuchet-org/solconf/internal/config"
	"github.com/trebuchet-org/solconf/internal/domain"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

// NewFoundryCmd creates the foundry command
func NewFoundryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "foundry",
		Short: "Convert between the project file and foundry.toml",
	}

	cmd.AddCommand(newFoundryExportCmd())
	cmd.AddCommand(newFoundryImportCmd())

	return cmd
}

func newFoundryExportCmd() *cobra.Command {
	var profile string
	var force bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write foundry.toml from the project file",
		Long: `Write foundry.toml with one profile built from a pinned compiler and an
[rpc_endpoints] entry per network. RPC URLs keep their ${VAR} references.

Examples:
  solconf foundry export
  solconf foundry export -c 0.8.20 --profile legacy --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ExportFoundry.Run(cmd.Context(), usecase.ExportFoundryParams{
				Compiler: app.Config.Compiler,
				Profile:  profile,
				Force:    force,
			})
			if err != nil {
				if errors.Is(err, domain.ErrAlreadyExists) {
					return fmt.Errorf("%w (use --force to replace it)", err)
				}
				return err
			}

			return output(cmd, app, map[string]any{
				"path":     result.Path,
				"profile":  result.Profile,
				"compiler": result.Compiler,
			}, func() error {
				return render.NewFoundryRenderer(cmd.OutOrStdout()).RenderExport(result)
			})
		},
	}

	cmd.Flags().StringVar(&profile, "profile", "default", "Foundry profile to write")
	cmd.Flags().BoolVar(&force, "force", false, "Replace an existing foundry.toml")

	return cmd
}

func newFoundryImportCmd() *cobra.Command {
	var profile string
	var format string
	var force bool
	var noProbe bool

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Write a project file from foundry.toml",
		Long: `Build a project file from a foundry.toml profile. Chain ids come from
[etherscan] chain entries or well-known network names; the rest are asked
from their RPC endpoint unless --no-probe is given.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{replacesProjectAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			f, err := config.ParseFormat(format)
			if err != nil {
				return err
			}

			result, err := app.ImportFoundry.Run(cmd.Context(), usecase.ImportFoundryParams{
				Profile: profile,
				Format:  f,
				Force:   force,
				Probe:   !noProbe,
			})
			if err != nil {
				if errors.Is(err, domain.ErrAlreadyExists) {
					return fmt.Errorf("%w (use --force to replace it)", err)
				}
				return err
			}

			return output(cmd, app, map[string]any{
				"path":       result.Path,
				"config":     result.Config,
				"probed":     result.Probed,
				"unresolved": result.Unresolved,
			}, func() error {
				return render.NewFoundryRenderer(cmd.OutOrStdout()).RenderImport(result)
			})
		},
	}

	cmd.Flags().StringVar(&profile, "profile", "default", "Foundry profile to read")
	cmd.Flags().StringVar(&format, "format", "toml", "Project file format: toml, yaml or json")
	cmd.Flags().BoolVar(&force, "force", false, "Replace an existing project file")
	cmd.Flags().BoolVar(&noProbe, "no-probe", false, "Do not contact RPC endpoints for unknown chain ids")

	return cmd
}
