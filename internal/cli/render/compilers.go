package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

// CompilersRenderer renders compiler pins and their releases
type CompilersRenderer struct {
	out io.Writer
}

// NewCompilersRenderer creates a new compilers renderer
func NewCompilersRenderer(out io.Writer) *CompilersRenderer {
	return &CompilersRenderer{out: out}
}

// RenderList renders pinned compilers with their effective settings
func (r *CompilersRenderer) RenderList(result *usecase.ListCompilersResult) error {
	if len(result.Compilers) == 0 {
		fmt.Fprintln(r.out, "No compilers pinned in the project file")
		return nil
	}

	t := newTable(r.out)
	t.AppendHeader(table.Row{"", "VERSION", "OPTIMIZER", "EVM", "SOURCE"})
	for _, c := range result.Compilers {
		marker := ""
		if c.Default {
			marker = "*"
		}
		optimizer := "off"
		if c.Settings.Optimizer.Enabled {
			optimizer = fmt.Sprintf("%d runs", c.Settings.Optimizer.Runs)
		}
		source := "defaults"
		if c.Override {
			source = "override"
		}
		t.AppendRow(table.Row{marker, color.New(color.FgGreen).Sprint(c.Version), optimizer, orDash(c.Settings.EVMVersion), source})
	}
	t.Render()
	return nil
}

// RenderResolve renders release index lookups
func (r *CompilersRenderer) RenderResolve(result *usecase.ResolveCompilersResult) error {
	color.New(color.FgCyan, color.Bold).Fprintf(r.out, "🔎 solc releases for %s (latest %s)\n\n", result.Platform, result.LatestRelease)

	t := newTable(r.out)
	t.AppendHeader(table.Row{"", "VERSION", "BUILD", "DOWNLOAD"})
	for _, c := range result.Compilers {
		if !c.Available {
			t.AppendRow(table.Row{"❌", c.Version, "-", color.New(color.FgRed).Sprint("not published for " + c.Platform)})
			continue
		}
		t.AppendRow(table.Row{"✅", c.Version, c.Build.LongVersion, color.New(color.FgBlue).Sprint(c.DownloadURL)})
	}
	t.Render()

	if !result.AllAvailable {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, FormatWarning("some pinned compilers have no binary for this platform"))
	}
	return nil
}
