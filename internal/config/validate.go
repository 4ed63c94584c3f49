package config

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/trebuchet-org/solconf/internal/domain"
	"github.com/trebuchet-org/solconf/internal/domain/config"
)

var networkNamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

var allowedURLSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"ws":    true,
	"wss":   true,
}

// Validate checks a resolved project record and reports every problem at once
func Validate(cfg *config.ProjectConfig) error {
	v := &validator{}
	v.project(cfg, nil)
	return v.err()
}

// ValidateLoaded validates a loaded project. Environment references that are
// still unset are reported against the raw value. In strict mode unknown keys fail too.
func ValidateLoaded(p *config.LoadedProject, strict bool) error {
	v := &validator{}
	unresolved := v.unresolvedReferences(p.Config)
	v.project(p.Resolved, unresolved)
	if strict {
		for _, w := range p.Warnings {
			v.add("", "%s", w)
		}
	}
	return v.err()
}

// ValidateRecord checks what can be checked now. Fields that reference unset
// variables are skipped without being reported.
func ValidateRecord(p *config.LoadedProject) error {
	skip := (&validator{}).unresolvedReferences(p.Config)
	v := &validator{}
	v.project(p.Resolved, skip)
	return v.err()
}

type validator struct {
	issues []domain.Issue
}

func (v *validator) add(path, format string, args ...any) {
	v.issues = append(v.issues, domain.Issue{Path: path, Message: fmt.Sprintf(format, args...)})
}

func (v *validator) err() error {
	if len(v.issues) == 0 {
		return nil
	}
	return &domain.ValidationError{Issues: v.issues}
}

// unresolvedReferences flags ${VAR} references whose variable is unset
func (v *validator) unresolvedReferences(cfg *config.ProjectConfig) map[string]bool {
	skip := make(map[string]bool)
	for _, name := range cfg.NetworkNames() {
		network := cfg.Networks[name]
		path := "networks." + name + ".url"
		if missing := MissingEnvVars(network.URL); len(missing) > 0 {
			v.add(path, "references unset variable(s) %s", strings.Join(missing, ", "))
			skip[path] = true
		}
		for i, account := range network.Accounts {
			path := fmt.Sprintf("networks.%s.accounts[%d]", name, i)
			if missing := MissingEnvVars(account); len(missing) > 0 {
				v.add(path, "references unset variable(s) %s", strings.Join(missing, ", "))
				skip[path] = true
			}
		}
	}
	return skip
}

func (v *validator) project(cfg *config.ProjectConfig, skip map[string]bool) {
	if cfg == nil {
		v.add("", "project config is empty")
		return
	}

	if len(cfg.Networks) == 0 {
		v.add("networks", "at least one network must be declared")
	}
	chainByURL := make(map[string]string)
	for _, name := range cfg.NetworkNames() {
		v.network(name, cfg.Networks[name], skip)

		network := cfg.Networks[name]
		if network.URL == "" || network.ChainID == 0 || skip["networks."+name+".url"] {
			continue
		}
		if other, ok := chainByURL[network.URL]; ok && cfg.Networks[other].ChainID != network.ChainID {
			v.add("networks."+name+".chainId", "declares chain %d but network %s uses the same url with chain %d",
				network.ChainID, other, cfg.Networks[other].ChainID)
		} else if !ok {
			chainByURL[network.URL] = name
		}
	}

	if len(cfg.Solidity.Compilers) == 0 {
		v.add("solidity.compilers", "at least one compiler version must be declared")
	}
	seen := make(map[string]bool)
	for i, compiler := range cfg.Solidity.Compilers {
		path := fmt.Sprintf("solidity.compilers[%d]", i)
		validVersion := true
		if _, err := ParseCompilerVersion(compiler.Version); err != nil {
			v.add(path+".version", "%v", err)
			validVersion = false
		} else if seen[compiler.Version] {
			v.add(path+".version", "version %s is declared more than once", compiler.Version)
		}
		seen[compiler.Version] = true

		settings := cfg.EffectiveSettings(i)
		if compiler.Settings != nil {
			v.settings(path+".settings", *compiler.Settings)
		}
		if validVersion && settings.EVMVersion != "" && IsKnownEVMVersion(settings.EVMVersion) &&
			!SupportsEVMVersion(compiler.Version, settings.EVMVersion) {
			v.add(path+".version", "solc %s does not support evmVersion %q", compiler.Version, settings.EVMVersion)
		}
	}

	v.settings("settings", cfg.Settings)
}

func (v *validator) network(name string, network config.NetworkConfig, skip map[string]bool) {
	path := "networks." + name
	if !networkNamePattern.MatchString(name) {
		v.add(path, "network name may only contain letters, digits, '.', '_' and '-'")
	}

	if !skip[path+".url"] {
		if err := checkRPCURL(network.URL); err != nil {
			v.add(path+".url", "%v", err)
		}
	}

	if network.ChainID == 0 {
		v.add(path+".chainId", "chainId must be a positive integer")
	}

	for i, account := range network.Accounts {
		accountPath := fmt.Sprintf("%s.accounts[%d]", path, i)
		if skip[accountPath] {
			continue
		}
		if _, err := crypto.HexToECDSA(strings.TrimPrefix(account, "0x")); err != nil {
			// never echo the key itself
			v.add(accountPath, "not a valid 32-byte hex private key")
		}
	}
}

func (v *validator) settings(path string, settings config.SettingsConfig) {
	if settings.Optimizer.Enabled && settings.Optimizer.Runs == 0 {
		v.add(path+".optimizer.runs", "runs must be at least 1 when the optimizer is enabled")
	}
	if settings.EVMVersion != "" && !IsKnownEVMVersion(settings.EVMVersion) {
		v.add(path+".evmVersion", "unknown evmVersion %q", settings.EVMVersion)
	}
}

func checkRPCURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("url is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("malformed url: %v", err)
	}
	if !allowedURLSchemes[strings.ToLower(u.Scheme)] {
		return fmt.Errorf("url scheme must be http, https, ws or wss (got %q)", u.Scheme)
	}
	if u.Hostname() == "" {
		return fmt.Errorf("url has no host")
	}
	return nil
}
