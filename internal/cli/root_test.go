package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/solconf/internal/domain"
)

func init() {
	color.NoColor = true
}

// execute runs the root command in dir and returns stdout
func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	t.Chdir(dir)

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--non-interactive"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestBindGlobalFlags(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Bool("debug", false, "")
	flags.Bool("json", false, "")
	flags.StringP("network", "n", "", "")
	flags.String("compiler", "", "")
	require.NoError(t, flags.Parse([]string{"--json", "-n", "sepolia"}))

	v := viper.New()
	v.SetDefault("compiler", "0.8.20")
	bindGlobalFlags(v, flags)

	assert.True(t, v.GetBool("json"))
	assert.Equal(t, "sepolia", v.GetString("network"))
	assert.False(t, v.GetBool("debug"))
	assert.Equal(t, "0.8.20", v.GetString("compiler"), "unchanged flags keep lower precedence values")
}

func TestCommandTree(t *testing.T) {
	root := NewRootCmd()

	for _, path := range [][]string{
		{"init"}, {"show"}, {"validate"}, {"watch"},
		{"networks", "check"}, {"networks", "resolve"}, {"networks", "migrate-env"},
		{"compilers", "resolve"}, {"compilers", "settings"},
		{"foundry", "export"}, {"foundry", "import"},
		{"node", "start"}, {"node", "logs"},
		{"config", "set"}, {"config", "remove"},
		{"version"},
	} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, strings.Join(path, " "))
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}

	watch, _, _ := root.Find([]string{"watch"})
	assert.Equal(t, "true", watch.Annotations[longRunningAnnotation])
}

func TestVersionSkipsProjectLoading(t *testing.T) {
	out, err := execute(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "solconf version dev")
}

func TestInitValidateShow(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, dir, "show")
	assert.ErrorIs(t, err, domain.ErrNoProject)
	assert.Empty(t, out)

	out, err = execute(t, dir, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Created solconf.toml")
	assert.FileExists(t, filepath.Join(dir, "solconf.toml"))

	_, err = execute(t, dir, "init")
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	out, err = execute(t, dir, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "solconf.toml is valid")

	out, err = execute(t, dir, "show", "--json")
	require.NoError(t, err)
	var shown struct {
		Format string `json:"format"`
		Config struct {
			Networks map[string]struct {
				ChainID uint64 `json:"chainId"`
			} `json:"networks"`
		} `json:"config"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &shown))
	assert.Equal(t, "toml", shown.Format)
	assert.Equal(t, uint64(31337), shown.Config.Networks["localhost"].ChainID)
}

func TestInitForceReplacesUnreadableProject(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "solconf.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[networks.localhost]
url = "http://127.0.0.1:8545"
chainId = "abc"
`), 0o644))

	_, err := execute(t, dir, "show")
	require.Error(t, err)

	_, err = execute(t, dir, "init")
	require.ErrorIs(t, err, domain.ErrAlreadyExists)
	assert.Equal(t, 1, strings.Count(err.Error(), "--force"))

	out, err := execute(t, dir, "init", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "solconf.toml")

	out, err = execute(t, dir, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "solconf.toml is valid")
}

func TestValidateFailsOnIssues(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "solconf.toml"), []byte(`
[networks.mainnet]
url = "ftp://example.com"
chainId = 1

[solidity]
compilers = [{ version = "0.8" }]
`), 0o644))

	out, err := execute(t, dir, "validate")
	assert.ErrorIs(t, err, errValidationFailed)
	assert.Contains(t, out, "networks.mainnet.url")
	assert.Contains(t, out, "solidity.compilers[0].version")
}

func TestConfigSetAndResolve(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "solconf.toml"), []byte(`
[networks.localhost]
url = "http://127.0.0.1:8545"
chainId = 31337

[networks.sepolia]
url = "https://rpc.sepolia.test"
chainId = 11155111

[solidity]
compilers = [{ version = "0.8.24" }]
`), 0o644))

	_, err := execute(t, dir, "networks", "resolve")
	assert.ErrorIs(t, err, domain.ErrNonInteractive)

	_, err = execute(t, dir, "config", "set", "network", "sepolai")
	var unknown domain.UnknownNetworkError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, []string{"sepolia"}, unknown.Suggestions)

	_, err = execute(t, dir, "config", "set", "net", "sepolia")
	require.NoError(t, err)

	out, err := execute(t, dir, "networks", "resolve")
	require.NoError(t, err)
	assert.Contains(t, out, "sepolia  chain 11155111")

	out, err = execute(t, dir, "networks", "resolve", "-n", "localhost")
	require.NoError(t, err)
	assert.Contains(t, out, "localhost  chain 31337")
}
