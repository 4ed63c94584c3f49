package adapters

import (
	"github.com/google/wire"
	"github.com/trebuchet-org/solconf/internal/adapters/anvil"
	"github.com/trebuchet-org/solconf/internal/adapters/fs"
	"github.com/trebuchet-org/solconf/internal/adapters/interactive"
	"github.com/trebuchet-org/solconf/internal/adapters/network"
	"github.com/trebuchet-org/solconf/internal/adapters/solc"
	"github.com/trebuchet-org/solconf/internal/adapters/watch"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewFileWriterAdapter,
	wire.Bind(new(usecase.ProjectFileWriter), new(*fs.FileWriterAdapter)),

	fs.NewLocalConfigStoreAdapter,
	wire.Bind(new(usecase.LocalConfigStore), new(*fs.LocalConfigStoreAdapter)),
)

// NetworkSet provides RPC-backed implementations
var NetworkSet = wire.NewSet(
	network.NewChainProberAdapter,
	wire.Bind(new(usecase.ChainProber), new(*network.ChainProberAdapter)),

	network.NewChainIDCacheAdapter,
	wire.Bind(new(usecase.ChainIDCache), new(*network.ChainIDCacheAdapter)),
)

// SolcSet provides the compiler release index
var SolcSet = wire.NewSet(
	solc.NewReleaseIndexAdapter,
	wire.Bind(new(usecase.SolcReleaseIndex), new(*solc.ReleaseIndexAdapter)),
)

// NodeSet provides the local node manager
var NodeSet = wire.NewSet(
	anvil.NewManager,
	wire.Bind(new(usecase.NodeManager), new(*anvil.Manager)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.NetworkSelector), new(*interactive.SelectorAdapter)),
)

// WatchSet provides the file watcher
var WatchSet = wire.NewSet(
	watch.NewFileWatcherAdapter,
	wire.Bind(new(usecase.ProjectWatcher), new(*watch.FileWatcherAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	NetworkSet,
	SolcSet,
	NodeSet,
	InteractiveSet,
	WatchSet,
)
