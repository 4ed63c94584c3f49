package config

import (
	"fmt"
	"regexp"
	"sort"

	"golang.org/x/mod/semver"
)

// compilerVersionPattern accepts only fully specified releases such as 0.8.13
var compilerVersionPattern = regexp.MustCompile(`^(0|[1-9][0-9]*)\.(0|[1-9][0-9]*)\.(0|[1-9][0-9]*)$`)

// ParseCompilerVersion checks a compiler pin and returns its canonical semver form (v0.8.13)
func ParseCompilerVersion(version string) (string, error) {
	if !compilerVersionPattern.MatchString(version) {
		return "", fmt.Errorf("%q is not a MAJOR.MINOR.PATCH version", version)
	}
	canonical := "v" + version
	if !semver.IsValid(canonical) {
		return "", fmt.Errorf("%q is not a valid semantic version", version)
	}
	return canonical, nil
}

// CompareCompilerVersions orders two valid compiler pins
func CompareCompilerVersions(a, b string) int {
	return semver.Compare("v"+a, "v"+b)
}

// SortCompilerVersions sorts pins from oldest to newest
func SortCompilerVersions(versions []string) {
	sort.SliceStable(versions, func(i, j int) bool {
		return CompareCompilerVersions(versions[i], versions[j]) < 0
	})
}

// SupportsEVMVersion reports whether a compiler release understands the evmVersion name
func SupportsEVMVersion(compiler, evmVersion string) bool {
	minimum, ok := evmVersionSince[evmVersion]
	if !ok {
		return false
	}
	return CompareCompilerVersions(compiler, minimum) >= 0
}

// evmVersionSince maps hardfork names to the first compiler that accepts them
var evmVersionSince = map[string]string{
	"homestead":        "0.4.21",
	"tangerineWhistle": "0.4.21",
	"spuriousDragon":   "0.4.21",
	"byzantium":        "0.4.21",
	"constantinople":   "0.4.21",
	"petersburg":       "0.5.5",
	"istanbul":         "0.5.14",
	"berlin":           "0.8.5",
	"london":           "0.8.7",
	"paris":            "0.8.18",
	"shanghai":         "0.8.20",
	"cancun":           "0.8.24",
	"prague":           "0.8.27",
	"osaka":            "0.8.29",
}

// IsKnownEVMVersion reports whether name is a hardfork solc understands
func IsKnownEVMVersion(name string) bool {
	_, ok := evmVersionSince[name]
	return ok
}
