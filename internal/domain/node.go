package domain

// NodeInstance represents a local development node serving a declared network
type NodeInstance struct {
	Network string `json:"network"`
	Host    string `json:"host"`
	Port    string `json:"port"`
	ChainID uint64 `json:"chainId"`
	PidFile string `json:"pidFile"`
	LogFile string `json:"logFile"`
}

// NodeStatus represents the status of a node instance
type NodeStatus struct {
	Running    bool   `json:"running"`
	PID        int    `json:"pid,omitempty"`
	RPCURL     string `json:"rpcUrl,omitempty"`
	LogFile    string `json:"logFile"`
	RPCHealthy bool   `json:"rpcHealthy"`
	ChainID    uint64 `json:"chainId,omitempty"`
	Error      string `json:"error,omitempty"`
}
