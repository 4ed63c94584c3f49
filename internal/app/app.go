package app

import (
	"github.com/trebuchet-org/solconf/internal/domain/config"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Project use cases
	InitProject     *usecase.InitProject
	ShowProject     *usecase.ShowProject
	ValidateProject *usecase.ValidateProject
	WatchProject    *usecase.WatchProject

	// Network use cases
	ResolveNetwork    *usecase.ResolveNetwork
	ListNetworks      *usecase.ListNetworks
	CheckNetworks     *usecase.CheckNetworks
	MigrateNetworkEnv *usecase.MigrateNetworkEnv

	// Compiler use cases
	ListCompilers    *usecase.ListCompilers
	ResolveCompilers *usecase.ResolveCompilers
	CompilerSettings *usecase.CompilerSettings

	// Foundry interop
	ExportFoundry *usecase.ExportFoundry
	ImportFoundry *usecase.ImportFoundry

	// Local defaults
	ShowConfig   *usecase.ShowConfig
	SetConfig    *usecase.SetConfig
	RemoveConfig *usecase.RemoveConfig

	// Local node
	ManageNode *usecase.ManageNode
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	initProject *usecase.InitProject,
	showProject *usecase.ShowProject,
	validateProject *usecase.ValidateProject,
	watchProject *usecase.WatchProject,
	resolveNetwork *usecase.ResolveNetwork,
	listNetworks *usecase.ListNetworks,
	checkNetworks *usecase.CheckNetworks,
	migrateNetworkEnv *usecase.MigrateNetworkEnv,
	listCompilers *usecase.ListCompilers,
	resolveCompilers *usecase.ResolveCompilers,
	compilerSettings *usecase.CompilerSettings,
	exportFoundry *usecase.ExportFoundry,
	importFoundry *usecase.ImportFoundry,
	showConfig *usecase.ShowConfig,
	setConfig *usecase.SetConfig,
	removeConfig *usecase.RemoveConfig,
	manageNode *usecase.ManageNode,
) (*App, error) {
	return &App{
		Config:            cfg,
		InitProject:       initProject,
		ShowProject:       showProject,
		ValidateProject:   validateProject,
		WatchProject:      watchProject,
		ResolveNetwork:    resolveNetwork,
		ListNetworks:      listNetworks,
		CheckNetworks:     checkNetworks,
		MigrateNetworkEnv: migrateNetworkEnv,
		ListCompilers:     listCompilers,
		ResolveCompilers:  resolveCompilers,
		CompilerSettings:  compilerSettings,
		ExportFoundry:     exportFoundry,
		ImportFoundry:     importFoundry,
		ShowConfig:        showConfig,
		SetConfig:         setConfig,
		RemoveConfig:      removeConfig,
		ManageNode:        manageNode,
	}, nil
}
