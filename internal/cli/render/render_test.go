package render

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/solconf/internal/domain"
	"github.com/trebuchet-org/solconf/internal/domain/config"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

func init() {
	color.NoColor = true
}

func TestRenderNetworksList(t *testing.T) {
	var buf bytes.Buffer
	err := NewNetworksRenderer(&buf).RenderNetworksList(&usecase.ListNetworksResult{
		Networks: []usecase.NetworkInfo{
			{Name: "localhost", URL: "http://127.0.0.1:8545", ChainID: 31337, Default: true},
			{Name: "sepolia", URL: "${SEPOLIA_RPC_URL}", ChainID: 11155111, LastSeenChainID: 11155111, Accounts: 1},
		},
		Default: "localhost",
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "🌐 Networks:")
	assert.Contains(t, out, "localhost")
	assert.Contains(t, out, "${SEPOLIA_RPC_URL}")
	assert.Contains(t, out, "11155111")
}

func TestRenderNetworksListEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewNetworksRenderer(&buf).RenderNetworksList(&usecase.ListNetworksResult{}))
	assert.Equal(t, "No networks declared in the project file\n", buf.String())
}

func TestRenderCheck(t *testing.T) {
	tests := []struct {
		name     string
		result   *usecase.CheckNetworksResult
		contains []string
	}{
		{
			name: "healthy",
			result: &usecase.CheckNetworksResult{
				Probes:  []domain.NetworkProbe{{Name: "localhost", DeclaredChainID: 31337, ObservedChainID: 31337, State: domain.NetworkOK}},
				Healthy: true,
			},
			contains: []string{"Ok", "All networks match"},
		},
		{
			name: "mismatch and unreachable",
			result: &usecase.CheckNetworksResult{
				Probes: []domain.NetworkProbe{
					{Name: "mainnet", DeclaredChainID: 1, ObservedChainID: 5, State: domain.NetworkMismatch, Error: "network mismatch: declared 1, node reports 5"},
					{Name: "sepolia", DeclaredChainID: 11155111, State: domain.NetworkUnreachable, Error: "connection refused"},
				},
			},
			contains: []string{"Mismatch", "Unreachable", "connection refused", "2 networks failed"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewNetworksRenderer(&buf).RenderCheck(tt.result))
			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestRenderValidate(t *testing.T) {
	var buf bytes.Buffer
	r := NewProjectRenderer(&buf)

	require.NoError(t, r.RenderValidate(&usecase.ValidateProjectResult{Path: "/tmp/solconf.toml", Valid: true}))
	assert.Contains(t, buf.String(), "is valid")

	buf.Reset()
	require.NoError(t, r.RenderValidate(&usecase.ValidateProjectResult{
		Path: "/tmp/solconf.toml",
		Issues: []domain.Issue{
			{Path: "networks.mainnet.url", Message: "must not be empty"},
		},
		Warnings: []string{`unknown key "extra"`},
	}))
	out := buf.String()
	assert.Contains(t, out, "1 issue:")
	assert.Contains(t, out, "networks.mainnet.url: must not be empty")
	assert.Contains(t, out, `unknown key "extra"`)
}

func TestRenderWatchEvent(t *testing.T) {
	at := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	tests := []struct {
		name  string
		event usecase.WatchEvent
		want  []string
	}{
		{
			name:  "parse error",
			event: usecase.WatchEvent{Time: at, Err: errors.New("bad toml")},
			want:  []string{"15:04:05", "Bad toml, keeping previous config"},
		},
		{
			name:  "invalid",
			event: usecase.WatchEvent{Time: at, Issues: []domain.Issue{{Path: "networks", Message: "x"}}},
			want:  []string{"keeping previous config", "networks: x"},
		},
		{
			name:  "unchanged",
			event: usecase.WatchEvent{Time: at, Valid: true},
			want:  []string{"no changes"},
		},
		{
			name:  "changed",
			event: usecase.WatchEvent{Time: at, Valid: true, Changes: []string{"+ network base"}},
			want:  []string{"reloaded", "+ network base"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewProjectRenderer(&buf).RenderWatchEvent(tt.event)
			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestRenderShow(t *testing.T) {
	cfg := config.DefaultProjectConfig()
	var buf bytes.Buffer
	err := NewProjectRenderer(&buf).RenderShow(&usecase.ShowProjectResult{
		Path:   "/tmp/solconf.toml",
		Format: config.FormatTOML,
		Config: cfg,
		Compilers: []usecase.CompilerView{
			{Version: "0.8.24", Settings: config.SettingsConfig{Optimizer: config.OptimizerConfig{Enabled: true, Runs: 200}, EVMVersion: "cancun"}, Default: true},
		},
		Network: "localhost",
	})
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "(toml)")
	assert.Contains(t, out, "* solc 0.8.24  optimizer 200 runs, evm cancun  [defaults]")
}

func TestRenderResolve(t *testing.T) {
	var buf bytes.Buffer
	err := NewCompilersRenderer(&buf).RenderResolve(&usecase.ResolveCompilersResult{
		Platform:      "linux-amd64",
		LatestRelease: "0.8.30",
		Compilers: []domain.CompilerResolution{
			{Version: "0.8.24", Platform: "linux-amd64", Available: true, DownloadURL: "https://mirror.test/linux-amd64/solc-0.8.24", Build: &domain.SolcBuild{LongVersion: "0.8.24+commit.e11b9ed9"}},
			{Version: "0.4.0", Platform: "linux-amd64"},
		},
	})
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "0.8.24+commit.e11b9ed9")
	assert.Contains(t, out, "not published for linux-amd64")
	assert.Contains(t, out, "some pinned compilers have no binary")
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderJSON(&buf, map[string]int{"a": 1}))
	assert.Equal(t, "{\n  \"a\": 1\n}\n", buf.String())
}

func TestRenderNodeStatus(t *testing.T) {
	var buf bytes.Buffer
	err := NewNodeRenderer(&buf).Render(&usecase.ManageNodeResult{
		Operation: "status",
		Instance:  &domain.NodeInstance{Network: "localhost", ChainID: 31337, PidFile: "/p/node-localhost.pid", LogFile: "/p/node-localhost.log"},
		Status:    &domain.NodeStatus{},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Not running")
	assert.Contains(t, buf.String(), "node-localhost.pid")

	assert.Error(t, NewNodeRenderer(&buf).Render(&usecase.ManageNodeResult{Operation: "explode"}))
}
