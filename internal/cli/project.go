package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/solconf/internal/cli/render"
	"github.com/trebuchet-org/solconf/internal/config"
	"github.com/trebuchet-org/solconf/internal/domain"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

// errValidationFailed is returned after issues have been rendered
var errValidationFailed = errors.New("project config is invalid")

// NewInitCmd creates the init command
func NewInitCmd() *cobra.Command {
	var format string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default project file",
		Long: `Write a default project file declaring a localhost network and one pinned
compiler. Fails if a project file already exists unless --force is given.

Examples:
  solconf init
  solconf init --format yaml`,
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

			result, err := app.InitProject.Run(cmd.Context(), usecase.InitProjectParams{Format: f, Force: force})
			if err != nil {
				return err
			}

			return output(cmd, app, map[string]any{
				"path":     result.Path,
				"format":   result.Format,
				"replaced": result.Replaced,
				"config":   result.Config,
			}, func() error {
				return render.NewProjectRenderer(cmd.OutOrStdout()).RenderInit(result)
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "toml", "File format: toml, yaml or json")
	cmd.Flags().BoolVar(&force, "force", false, "Replace an existing project file")

	return cmd
}

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the loaded project file",
		Long: `Show the networks and compilers declared in the project file, with the
effective settings of every pinned compiler. RPC URLs are shown as written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ShowProject.Run(cmd.Context())
			if err != nil {
				return err
			}

			return output(cmd, app, map[string]any{
				"path":      result.Path,
				"format":    result.Format,
				"network":   result.Network,
				"config":    result.Config,
				"compilers": result.Compilers,
				"warnings":  result.Warnings,
			}, func() error {
				return render.NewProjectRenderer(cmd.OutOrStdout()).RenderShow(result)
			})
		},
	}
}

// NewValidateCmd creates the validate command
func NewValidateCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the project file",
		Long: `Check the project file and report every problem found. Values that
reference unset environment variables are reported and not checked further.
With --strict, unknown keys are problems too.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ValidateProject.Run(cmd.Context(), usecase.ValidateProjectParams{Strict: strict})
			if err != nil {
				return err
			}

			err = output(cmd, app, map[string]any{
				"path":     result.Path,
				"valid":    result.Valid,
				"issues":   result.Issues,
				"warnings": result.Warnings,
			}, func() error {
				return render.NewProjectRenderer(cmd.OutOrStdout()).RenderValidate(result)
			})
			if err != nil {
				return err
			}
			if !result.Valid {
				return errValidationFailed
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Treat unknown keys as errors")

	return cmd
}

// NewWatchCmd creates the watch command
func NewWatchCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Revalidate the project file on every change",
		Long: `Watch the project file and reload it whenever it changes. Invalid edits
are reported and the last valid config stays in effect. Stop with Ctrl+C.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{longRunningAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			renderer := render.NewProjectRenderer(cmd.OutOrStdout())
			onEvent := func(event usecase.WatchEvent) {
				if !app.Config.JSON {
					renderer.RenderWatchEvent(event)
					return
				}
				line := map[string]any{
					"time":    event.Time,
					"path":    event.Path,
					"valid":   event.Valid,
					"issues":  event.Issues,
					"changes": event.Changes,
				}
				if event.Err != nil {
					line["error"] = event.Err.Error()
				}
				_ = render.RenderJSON(cmd.OutOrStdout(), line)
			}

			if app.Config.Project == nil {
				return domain.ErrNoProject
			}
			if !app.Config.JSON {
				fmt.Fprintf(cmd.OutOrStdout(), "👀 Watching %s (Ctrl+C to exit)\n", app.Config.Project.Path)
			}
			return app.WatchProject.Run(ctx, usecase.WatchProjectParams{Strict: strict, OnEvent: onEvent})
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Treat unknown keys as errors")

	return cmd
}
