package network

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/trebuchet-org/solconf/internal/domain"
	"github.com/trebuchet-org/solconf/internal/domain/config"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

// defaultProbeTimeout bounds one eth_chainId round trip
const defaultProbeTimeout = 10 * time.Second

// ChainProberAdapter implements ChainProber using ethclient
type ChainProberAdapter struct {
	timeout time.Duration
}

// NewChainProberAdapter creates a new chain id prober
func NewChainProberAdapter(cfg *config.RuntimeConfig) *ChainProberAdapter {
	timeout := defaultProbeTimeout
	if cfg.Timeout > 0 && cfg.Timeout < timeout {
		timeout = cfg.Timeout
	}
	return &ChainProberAdapter{timeout: timeout}
}

// ChainID dials rpcURL and asks for eth_chainId
func (p *ChainProberAdapter) ChainID(ctx context.Context, rpcURL string) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to connect: %v", domain.ErrUnreachable, err)
	}
	defer client.Close()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to get chain ID: %v", domain.ErrUnreachable, err)
	}
	if !chainID.IsUint64() || chainID.Sign() == 0 {
		return 0, fmt.Errorf("%w: node reported %s", domain.ErrInvalidChainID, chainID)
	}
	return chainID.Uint64(), nil
}

var _ usecase.ChainProber = (*ChainProberAdapter)(nil)
