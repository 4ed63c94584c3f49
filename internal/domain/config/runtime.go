package config

import (
	"time"
)

// Format is an on-disk encoding of the project record
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	DataDir     string

	// Context settings
	Network  string // requested or default network name, may be empty
	Compiler string // requested or default compiler version, may be empty

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool
	Timeout        time.Duration
	SolcMirror     string

	// Loaded project, nil until a project file exists
	Project *LoadedProject
}

// LoadedProject is the result of reading a project file
type LoadedProject struct {
	Path     string
	Format   Format
	Config   *ProjectConfig // as written, ${VAR} references intact
	Resolved *ProjectConfig // environment references expanded
	Warnings []string       // keys the decoder did not recognise
}
