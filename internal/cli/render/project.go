package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/trebuchet-org/solconf/internal/domain/config"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

// ProjectRenderer renders project file commands
type ProjectRenderer struct {
	out io.Writer
}

// NewProjectRenderer creates a new project renderer
func NewProjectRenderer(out io.Writer) *ProjectRenderer {
	return &ProjectRenderer{out: out}
}

// RenderInit renders the result of writing a default project file
func (r *ProjectRenderer) RenderInit(result *usecase.InitProjectResult) error {
	if result.Replaced {
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Replaced %s", getRelativePath(result.Path))))
	} else {
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Created %s", getRelativePath(result.Path))))
	}
	for _, other := range result.Shadowing {
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("%s is read before %s and will take precedence", getRelativePath(other), getRelativePath(result.Path))))
	}

	fmt.Fprintln(r.out)
	color.New(color.FgCyan, color.Bold).Fprintln(r.out, "📋 Next steps:")
	fmt.Fprintln(r.out, "1. Declare the networks you deploy to, keeping RPC secrets in .env:")
	color.New(color.FgHiBlack).Fprintln(r.out, "   url = \"${SEPOLIA_RPC_URL}\"")
	fmt.Fprintln(r.out, "2. Check the file and your endpoints:")
	color.New(color.FgHiBlack).Fprintln(r.out, "   solconf validate")
	color.New(color.FgHiBlack).Fprintln(r.out, "   solconf networks check")
	return nil
}

// RenderShow renders the loaded project record
func (r *ProjectRenderer) RenderShow(result *usecase.ShowProjectResult) error {
	color.New(color.FgCyan, color.Bold).Fprintf(r.out, "📦 %s (%s)\n", getRelativePath(result.Path), result.Format)
	fmt.Fprintln(r.out)

	fmt.Fprintln(r.out, color.New(color.Bold).Sprint("Networks:"))
	names := result.Config.NetworkNames()
	if len(names) == 0 {
		fmt.Fprintln(r.out, "  (none)")
	}
	for _, name := range names {
		network := result.Config.Networks[name]
		marker := "  "
		if name == result.Network {
			marker = "* "
		}
		fmt.Fprintf(r.out, "%s%s  chain %d  %s\n", marker, color.New(color.FgWhite, color.Bold).Sprint(name), network.ChainID, color.New(color.FgBlue).Sprint(network.URL))
		if len(network.Accounts) > 0 {
			fmt.Fprintf(r.out, "    accounts: %d\n", len(network.Accounts))
		}
	}

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, color.New(color.Bold).Sprint("Compilers:"))
	r.renderCompilers(result.Compilers)

	for _, w := range result.Warnings {
		fmt.Fprintln(r.out, FormatWarning(w))
	}
	return nil
}

func (r *ProjectRenderer) renderCompilers(compilers []usecase.CompilerView) {
	if len(compilers) == 0 {
		fmt.Fprintln(r.out, "  (none)")
		return
	}
	for _, c := range compilers {
		marker := "  "
		if c.Default {
			marker = "* "
		}
		source := "defaults"
		if c.Override {
			source = "override"
		}
		fmt.Fprintf(r.out, "%ssolc %s  %s  [%s]\n", marker, color.New(color.FgGreen).Sprint(c.Version), formatSettings(c.Settings), source)
	}
}

// RenderValidate renders validation findings
func (r *ProjectRenderer) RenderValidate(result *usecase.ValidateProjectResult) error {
	for _, w := range result.Warnings {
		fmt.Fprintln(r.out, FormatWarning(w))
	}
	if result.Valid {
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("%s is valid", getRelativePath(result.Path))))
		return nil
	}

	fmt.Fprintln(r.out, FormatError(fmt.Sprintf("%s has %d %s:", getRelativePath(result.Path), len(result.Issues), plural(len(result.Issues), "issue", "issues"))))
	for _, issue := range result.Issues {
		fmt.Fprintf(r.out, "  - %s\n", issue.String())
	}
	return nil
}

// RenderWatchEvent renders one reload attempt
func (r *ProjectRenderer) RenderWatchEvent(event usecase.WatchEvent) {
	stamp := color.New(color.FgHiBlack).Sprint(event.Time.Format("15:04:05"))
	switch {
	case len(event.Issues) > 0:
		fmt.Fprintf(r.out, "%s %s\n", stamp, FormatError(fmt.Sprintf("%d %s, keeping previous config", len(event.Issues), plural(len(event.Issues), "issue", "issues"))))
		for _, issue := range event.Issues {
			fmt.Fprintf(r.out, "    - %s\n", issue.String())
		}
	case !event.Valid:
		fmt.Fprintf(r.out, "%s %s\n", stamp, FormatError(fmt.Sprintf("%v, keeping previous config", event.Err)))
	case len(event.Changes) == 0:
		fmt.Fprintf(r.out, "%s %s\n", stamp, FormatSuccess("reloaded, no changes"))
	default:
		fmt.Fprintf(r.out, "%s %s\n", stamp, FormatSuccess("reloaded"))
		for _, change := range event.Changes {
			fmt.Fprintf(r.out, "    %s\n", colorChange(change))
		}
	}
}

func colorChange(change string) string {
	switch {
	case strings.HasPrefix(change, "+"):
		return color.New(color.FgGreen).Sprint(change)
	case strings.HasPrefix(change, "-"):
		return color.New(color.FgRed).Sprint(change)
	default:
		return color.New(color.FgYellow).Sprint(change)
	}
}

func formatSettings(s config.SettingsConfig) string {
	parts := []string{"optimizer off"}
	if s.Optimizer.Enabled {
		parts[0] = fmt.Sprintf("optimizer %d runs", s.Optimizer.Runs)
	}
	if s.EVMVersion != "" {
		parts = append(parts, "evm "+s.EVMVersion)
	}
	return strings.Join(parts, ", ")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// sortedKeys returns map keys in order
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
