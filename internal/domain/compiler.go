package domain

// SolcBuild describes one published solc binary for a platform
type SolcBuild struct {
	Path        string   `json:"path"`
	Version     string   `json:"version"`
	Build       string   `json:"build"`
	LongVersion string   `json:"longVersion"`
	Keccak256   string   `json:"keccak256"`
	SHA256      string   `json:"sha256"`
	URLs        []string `json:"urls"`
}

// SolcReleaseList is the release index published per platform
type SolcReleaseList struct {
	Builds        []SolcBuild       `json:"builds"`
	Releases      map[string]string `json:"releases"`
	LatestRelease string            `json:"latestRelease"`
}

// CompilerResolution is the lookup result of one pinned compiler version
type CompilerResolution struct {
	Version     string     `json:"version"`
	Platform    string     `json:"platform"`
	Available   bool       `json:"available"`
	DownloadURL string     `json:"downloadUrl,omitempty"`
	Build       *SolcBuild `json:"build,omitempty"`
}
