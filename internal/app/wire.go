//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/solconf/internal/adapters"
	"github.com/trebuchet-org/solconf/internal/config"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		// Runtime configuration
		config.Provider,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewInitProject,
		usecase.NewShowProject,
		usecase.NewValidateProject,
		usecase.NewWatchProject,
		usecase.NewResolveNetwork,
		usecase.NewListNetworks,
		usecase.NewCheckNetworks,
		usecase.NewMigrateNetworkEnv,
		usecase.NewListCompilers,
		usecase.NewResolveCompilers,
		usecase.NewCompilerSettings,
		usecase.NewExportFoundry,
		usecase.NewImportFoundry,
		usecase.NewShowConfig,
		usecase.NewSetConfig,
		usecase.NewRemoveConfig,
		usecase.NewManageNode,

		// App
		NewApp,
	)
	return nil, nil
}
