package cli

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/solconf/internal/cli/render"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

// NewCompilersCmd creates the compilers command
func NewCompilersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compilers",
		Short: "List pinned compilers and their settings",
		Long: `List the solc versions pinned in the project file with the settings each
one compiles with. A compiler's own settings replace the top-level defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListCompilers.Run(cmd.Context())
			if err != nil {
				return err
			}

			return output(cmd, app, result.Compilers, func() error {
				return render.NewCompilersRenderer(cmd.OutOrStdout()).RenderList(result)
			})
		},
	}

	cmd.AddCommand(newCompilersResolveCmd())
	cmd.AddCommand(newCompilersSettingsCmd())

	return cmd
}

func newCompilersResolveCmd() *cobra.Command {
	var platform string

	cmd := &cobra.Command{
		Use:   "resolve [version]",
		Short: "Look up pinned compilers in the solc release index",
		Long: `Fetch the solc release list for a platform and report the download URL of
each pinned compiler. Exits non-zero when a pin has no published binary.

Examples:
  solconf compilers resolve
  solconf compilers resolve 0.8.24 --platform macosx-amd64`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ResolveCompilersParams{Platform: platform}
			if len(args) == 1 {
				params.Version = args[0]
			}

			result, err := app.ResolveCompilers.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			err = output(cmd, app, result.Compilers, func() error {
				return render.NewCompilersRenderer(cmd.OutOrStdout()).RenderResolve(result)
			})
			if err != nil {
				return err
			}
			if !result.AllAvailable {
				return errors.New("some pinned compilers are not published for " + result.Platform)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&platform, "platform", "", "Release platform (linux-amd64, macosx-amd64, windows-amd64)")

	return cmd
}

func newCompilersSettingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "settings [version]",
		Short: "Print standard JSON settings for a compiler",
		Long: `Print the "settings" object of a solc standard JSON input for a pinned
compiler. Defaults to --compiler, the local default, or the first pin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.CompilerSettingsParams{}
			if len(args) == 1 {
				params.Version = args[0]
			}

			result, err := app.CompilerSettings.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			// Always JSON, it is meant to be piped into solc
			return render.RenderJSON(cmd.OutOrStdout(), result.Settings)
		},
	}
}
