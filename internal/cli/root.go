package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/solconf/internal/adapters/progress"
	"github.com/trebuchet-org/solconf/internal/app"
	"github.com/trebuchet-org/solconf/internal/cli/render"
	"github.com/trebuchet-org/solconf/internal/config"
	domainconfig "github.com/trebuchet-org/solconf/internal/domain/config"
	"github.com/trebuchet-org/solconf/internal/logging"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"

	// longRunningAnnotation marks commands that run until interrupted
	longRunningAnnotation = "solconf/long-running"
	// replacesProjectAnnotation marks commands that write a project file without reading the existing one
	replacesProjectAnnotation = "solconf/replaces-project"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "solconf",
		Short: "Project configuration for Solidity toolchains",
		Long: `solconf reads a single project file (solconf.toml, .yaml or .json) that
declares the networks a project deploys to and the solc compilers it builds with,
validates it, and keeps foundry and local nodes in line with it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			// Find project root, falling back to the working directory for init and import
			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				if projectRoot, err = os.Getwd(); err != nil {
					return err
				}
			}

			// Set up viper
			v := config.SetupViper(projectRoot)

			// Bind global flags that have been set
			bindGlobalFlags(v, cmd.Flags())
			if cmd.Annotations[replacesProjectAnnotation] != "" {
				v.Set("skip_project_load", true)
			}

			logging.NewLogger(&domainconfig.RuntimeConfig{Debug: v.GetBool("debug")})

			// Initialize app with DI
			appInstance, err := app.InitApp(v, newProgressSink(v))
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			// Store app in context
			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			// Add timeout if configured
			if appInstance.Config.Timeout > 0 && cmd.Annotations[longRunningAnnotation] == "" {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				// Store cancel func to be called on command completion
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Bool("json", false, "Output JSON")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to use (e.g., localhost, sepolia)")
	rootCmd.PersistentFlags().StringP("compiler", "c", "", "Pinned compiler version to use (e.g., 0.8.24)")
	rootCmd.PersistentFlags().String("config", "", "Project file to read instead of the discovered one")

	// Add command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "project",
		Title: "Project Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "toolchain",
		Title: "Toolchain Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	// Project commands
	for _, cmd := range []*cobra.Command{NewInitCmd(), NewShowCmd(), NewValidateCmd(), NewWatchCmd()} {
		cmd.GroupID = "project"
		rootCmd.AddCommand(cmd)
	}

	// Toolchain commands
	for _, cmd := range []*cobra.Command{NewNetworksCmd(), NewCompilersCmd(), NewFoundryCmd(), NewNodeCmd()} {
		cmd.GroupID = "toolchain"
		rootCmd.AddCommand(cmd)
	}

	// Management commands
	configCmd := NewConfigCmd()
	configCmd.GroupID = "management"
	rootCmd.AddCommand(configCmd)

	// Version command
	versionCmd := NewVersionCmd()
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

// bindGlobalFlags binds command flags to viper
func bindGlobalFlags(v *viper.Viper, flags *pflag.FlagSet) {
	// Only bind flags that exist and have been changed
	keys := map[string]string{
		"debug":           "debug",
		"non-interactive": "non_interactive",
		"json":            "json",
		"network":         "network",
		"compiler":        "compiler",
		"config":          "config",
	}
	for flag, key := range keys {
		if f := flags.Lookup(flag); f != nil && f.Changed {
			v.Set(key, f.Value.String())
		}
	}
}

// newProgressSink picks a spinner for terminals and a no-op sink for scripted use
func newProgressSink(v *viper.Viper) usecase.ProgressSink {
	if v.GetBool("json") || v.GetBool("non_interactive") {
		return progress.NewNopSink()
	}
	return progress.NewSpinnerProgressReporter()
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}

// output writes v as JSON when --json is set and calls human otherwise
func output(cmd *cobra.Command, app *app.App, v any, human func() error) error {
	if app.Config.JSON {
		return render.RenderJSON(cmd.OutOrStdout(), v)
	}
	return human()
}
