package render

import (
	"fmt"
	"io"

	"github.com/trebuchet-org/solconf/internal/usecase"
)

// FoundryRenderer renders foundry.toml interop results
type FoundryRenderer struct {
	out io.Writer
}

// NewFoundryRenderer creates a new foundry renderer
func NewFoundryRenderer(out io.Writer) *FoundryRenderer {
	return &FoundryRenderer{out: out}
}

// RenderExport renders a written foundry.toml
func (r *FoundryRenderer) RenderExport(result *usecase.ExportFoundryResult) error {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Wrote %s (profile %s, solc %s)", getRelativePath(result.Path), result.Profile, result.Compiler)))
	fmt.Fprintf(r.out, "   %d rpc %s\n", len(result.Foundry.RpcEndpoints), plural(len(result.Foundry.RpcEndpoints), "endpoint", "endpoints"))
	return nil
}

// RenderImport renders a project file built from foundry.toml
func (r *FoundryRenderer) RenderImport(result *usecase.ImportFoundryResult) error {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Wrote %s with %d %s", getRelativePath(result.Path), len(result.Config.Networks), plural(len(result.Config.Networks), "network", "networks"))))
	for _, name := range sortedKeys(result.Probed) {
		fmt.Fprintf(r.out, "   %s: chain %d (from rpc)\n", name, result.Probed[name])
	}
	for _, name := range result.Unresolved {
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("%s: chain id unknown, set chainId by hand", name)))
	}
	return nil
}
