package usecase

import (
	"context"
	"fmt"
	"runtime"

	"github.com/samber/lo"
	"github.com/trebuchet-org/solconf/internal/domain"
	"github.com/trebuchet-org/solconf/internal/domain/config"
)

// ResolveCompilersParams contains parameters for compiler resolution
type ResolveCompilersParams struct {
	// Platform overrides the host platform, e.g. linux-amd64
	Platform string
	// Version limits resolution to one pin
	Version string
}

// ResolveCompilersResult contains one resolution per pin
type ResolveCompilersResult struct {
	Platform      string
	LatestRelease string
	Compilers     []domain.CompilerResolution
	AllAvailable  bool
}

// ResolveCompilers looks compiler pins up in the solc release index
type ResolveCompilers struct {
	cfg      *config.RuntimeConfig
	index    SolcReleaseIndex
	progress ProgressSink
}

// NewResolveCompilers creates a new ResolveCompilers use case
func NewResolveCompilers(cfg *config.RuntimeConfig, index SolcReleaseIndex, progress ProgressSink) *ResolveCompilers {
	return &ResolveCompilers{
		cfg:      cfg,
		index:    index,
		progress: progress,
	}
}

// HostPlatform maps a GOOS/GOARCH pair to the solc binary platform name
func HostPlatform(goos, goarch string) (string, error) {
	switch {
	case goos == "linux" && goarch == "amd64":
		return "linux-amd64", nil
	case goos == "darwin":
		// universal binaries are published under the amd64 name
		return "macosx-amd64", nil
	case goos == "windows" && goarch == "amd64":
		return "windows-amd64", nil
	default:
		return "", fmt.Errorf("no solc builds are published for %s/%s", goos, goarch)
	}
}

// Run executes the use case
func (uc *ResolveCompilers) Run(ctx context.Context, params ResolveCompilersParams) (*ResolveCompilersResult, error) {
	project, err := requireValidProject(uc.cfg)
	if err != nil {
		return nil, err
	}

	platform := params.Platform
	if platform == "" {
		platform, err = HostPlatform(runtime.GOOS, runtime.GOARCH)
		if err != nil {
			return nil, err
		}
	}

	versions := lo.Map(project.Config.Solidity.Compilers, func(c config.CompilerConfig, _ int) string {
		return c.Version
	})
	if params.Version != "" {
		if _, err := defaultCompiler(project.Config, params.Version); err != nil {
			return nil, err
		}
		versions = []string{params.Version}
	}

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   "Resolving",
		Message: fmt.Sprintf("Fetching solc release list for %s...", platform),
		Spinner: true,
	})
	list, err := uc.index.Releases(ctx, platform)
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "Completed"})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch solc release list: %w", err)
	}

	builds := lo.SliceToMap(list.Builds, func(b domain.SolcBuild) (string, domain.SolcBuild) {
		return b.Path, b
	})

	result := &ResolveCompilersResult{
		Platform:      platform,
		LatestRelease: list.LatestRelease,
		AllAvailable:  true,
	}
	for _, version := range versions {
		resolution := domain.CompilerResolution{
			Version:  version,
			Platform: platform,
		}
		if path, ok := list.Releases[version]; ok {
			if build, ok := builds[path]; ok {
				resolution.Available = true
				resolution.Build = &build
				resolution.DownloadURL = uc.index.BinaryURL(platform, build.Path)
			}
		}
		if !resolution.Available {
			result.AllAvailable = false
		}
		result.Compilers = append(result.Compilers, resolution)
	}

	return result, nil
}
