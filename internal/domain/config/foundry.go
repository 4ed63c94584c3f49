package config

// FoundryConfig represents the subset of foundry.toml solconf reads and writes
type FoundryConfig struct {
	Profile      map[string]FoundryProfile  `toml:"profile"`
	RpcEndpoints map[string]string          `toml:"rpc_endpoints,omitempty"`
	Etherscan    map[string]EtherscanConfig `toml:"etherscan,omitempty"`
}

// EtherscanConfig represents Etherscan configuration for a network
type EtherscanConfig struct {
	Key   string `toml:"key,omitempty"`
	URL   string `toml:"url,omitempty"`
	Chain uint64 `toml:"chain,omitempty"`
}

// FoundryProfile represents a profile's compiler settings
type FoundryProfile struct {
	SrcPath       string   `toml:"src,omitempty"`
	OutPath       string   `toml:"out,omitempty"`
	LibPaths      []string `toml:"libs,omitempty"`
	SolcVersion   string   `toml:"solc_version,omitempty"`
	Optimizer     bool     `toml:"optimizer"`
	OptimizerRuns uint32   `toml:"optimizer_runs,omitempty"`
	EVMVersion    string   `toml:"evm_version,omitempty"`
}
