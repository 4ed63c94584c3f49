package domain

// NetworkState is the outcome of probing a network's RPC endpoint
type NetworkState string

const (
	NetworkOK          NetworkState = "ok"
	NetworkMismatch    NetworkState = "mismatch"
	NetworkUnreachable NetworkState = "unreachable"
)

// NetworkProbe is the result of checking one declared network against its node
type NetworkProbe struct {
	Name            string       `json:"name"`
	URL             string       `json:"url"`
	DeclaredChainID uint64       `json:"chainId"`
	ObservedChainID uint64       `json:"observedChainId,omitempty"`
	State           NetworkState `json:"state"`
	Error           string       `json:"error,omitempty"`
}

// KnownNetwork is a well-known chain with its conventional name
type KnownNetwork struct {
	Name        string
	ChainID     uint64
	ExplorerURL string
}

// KnownNetworks lists chains whose IDs can be inferred from their name
var KnownNetworks = []KnownNetwork{
	{Name: "mainnet", ChainID: 1, ExplorerURL: "https://etherscan.io"},
	{Name: "sepolia", ChainID: 11155111, ExplorerURL: "https://sepolia.etherscan.io"},
	{Name: "holesky", ChainID: 17000, ExplorerURL: "https://holesky.etherscan.io"},
	{Name: "optimism", ChainID: 10, ExplorerURL: "https://optimistic.etherscan.io"},
	{Name: "arbitrum", ChainID: 42161, ExplorerURL: "https://arbiscan.io"},
	{Name: "polygon", ChainID: 137, ExplorerURL: "https://polygonscan.com"},
	{Name: "base", ChainID: 8453, ExplorerURL: "https://basescan.org"},
	{Name: "avalanche", ChainID: 43114, ExplorerURL: "https://snowtrace.io"},
	{Name: "bsc", ChainID: 56, ExplorerURL: "https://bscscan.com"},
	{Name: "celo", ChainID: 42220, ExplorerURL: "https://celoscan.io"},
	{Name: "localhost", ChainID: 31337},
	{Name: "anvil", ChainID: 31337},
	{Name: "hardhat", ChainID: 31337},
}

// LookupKnownNetwork finds a well-known network by name
func LookupKnownNetwork(name string) (KnownNetwork, bool) {
	for _, n := range KnownNetworks {
		if n.Name == name {
			return n, true
		}
	}
	return KnownNetwork{}, false
}
