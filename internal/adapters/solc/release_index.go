package solc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/trebuchet-org/solconf/internal/domain"
	"github.com/trebuchet-org/solconf/internal/domain/config"
	"github.com/trebuchet-org/solconf/internal/logging"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

// ReleaseIndexAdapter fetches {mirror}/{platform}/list.json
type ReleaseIndexAdapter struct {
	mirror     string
	httpClient *http.Client

	mu    sync.Mutex
	lists map[string]*domain.SolcReleaseList
}

// NewReleaseIndexAdapter creates a release index reading from the configured mirror
func NewReleaseIndexAdapter(cfg *config.RuntimeConfig) *ReleaseIndexAdapter {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ReleaseIndexAdapter{
		mirror:     strings.TrimRight(cfg.SolcMirror, "/"),
		httpClient: &http.Client{Timeout: timeout},
		lists:      make(map[string]*domain.SolcReleaseList),
	}
}

// Releases returns the release list for platform, fetched once per process
func (a *ReleaseIndexAdapter) Releases(ctx context.Context, platform string) (*domain.SolcReleaseList, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if list, ok := a.lists[platform]; ok {
		return list, nil
	}

	url := fmt.Sprintf("%s/%s/list.json", a.mirror, platform)
	logging.WithComponent("solc").Debug().Str("url", url).Msg("fetching release list")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s: HTTP %d", url, resp.StatusCode)
	}

	var list domain.SolcReleaseList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("failed to decode release list: %w", err)
	}

	a.lists[platform] = &list
	return &list, nil
}

// BinaryURL returns where a build's binary is downloaded from
func (a *ReleaseIndexAdapter) BinaryURL(platform, path string) string {
	return fmt.Sprintf("%s/%s/%s", a.mirror, platform, path)
}

var _ usecase.SolcReleaseIndex = (*ReleaseIndexAdapter)(nil)
