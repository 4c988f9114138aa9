// Package config resolves where the profile lives and how the finder is
// tuned. Sources, lowest precedence first: defaults, an optional HCL file,
// DISABLED_EFFECTS_* environment variables, then command-line flags passed to
// Load as options.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/hashicorp/hcl/v2/hclsimple"
)

// DefaultCacheTTL matches the scan result lifetime the host expects.
const DefaultCacheTTL = time.Second

// Environment variables read by ApplyEnv.
const (
	EnvProfileDir    = "DISABLED_EFFECTS_PROFILE_DIR"
	EnvScriptsDir    = "DISABLED_EFFECTS_SCRIPTS_DIR"
	EnvCacheTTL      = "DISABLED_EFFECTS_CACHE_TTL"
	EnvEffectCatalog = "DISABLED_EFFECTS_EFFECT_CATALOG"
	EnvVerbose       = "DISABLED_EFFECTS_VERBOSE"
)

// Config holds the finder's settings.
type Config struct {
	// ProfileDir is the profile directory holding the stores. When empty it
	// is derived from ScriptsDir, then from the user config directory.
	ProfileDir string

	// ScriptsDir is the profile's scripts directory. The profile is its
	// parent.
	ScriptsDir string

	// CacheTTL is how long scan results and parsed stores stay fresh.
	// Default: 1s. Must be positive.
	CacheTTL time.Duration

	// EffectCatalog is an optional YAML file adding or renaming effect types.
	EffectCatalog string

	// Verbose enables debug logging.
	Verbose bool
}

// fileConfig is the HCL form of Config. Unset attributes stay nil so they do
// not override defaults.
type fileConfig struct {
	ProfileDir    *string `hcl:"profile_dir,optional"`
	ScriptsDir    *string `hcl:"scripts_dir,optional"`
	CacheTTL      *string `hcl:"cache_ttl,optional"`
	EffectCatalog *string `hcl:"effect_catalog,optional"`
	Verbose       *bool   `hcl:"verbose,optional"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{CacheTTL: DefaultCacheTTL}
}

// Option overrides settings after the file and environment are applied.
// Command-line flags are passed as options.
type Option func(*Config)

// Load builds the configuration from defaults, the HCL file at path (skipped
// when path is empty), the environment and opts, then validates it.
func Load(path string, opts ...Option) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return cfg, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// LoadFile overlays the attributes set in the HCL file at path. Relative
// paths in the file are resolved against the file's directory.
func (c *Config) LoadFile(path string) error {
	var fc fileConfig
	if err := hclsimple.DecodeFile(path, nil, &fc); err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}

	base := filepath.Dir(path)
	if fc.ProfileDir != nil {
		c.ProfileDir = resolve(base, *fc.ProfileDir)
	}
	if fc.ScriptsDir != nil {
		c.ScriptsDir = resolve(base, *fc.ScriptsDir)
	}
	if fc.CacheTTL != nil {
		ttl, err := time.ParseDuration(*fc.CacheTTL)
		if err != nil {
			return fmt.Errorf("load config %s: cache_ttl: %w", path, err)
		}
		c.CacheTTL = ttl
	}
	if fc.EffectCatalog != nil {
		c.EffectCatalog = resolve(base, *fc.EffectCatalog)
	}
	if fc.Verbose != nil {
		c.Verbose = *fc.Verbose
	}
	return nil
}

// ApplyEnv overlays the DISABLED_EFFECTS_* environment variables that are
// set.
//
// Environment variables:
//   - DISABLED_EFFECTS_PROFILE_DIR: profile directory
//   - DISABLED_EFFECTS_SCRIPTS_DIR: scripts directory, the profile is its parent
//   - DISABLED_EFFECTS_CACHE_TTL: result lifetime as a Go duration (default: 1s)
//   - DISABLED_EFFECTS_EFFECT_CATALOG: YAML effect catalog overlay
//   - DISABLED_EFFECTS_VERBOSE: enable debug logging (default: false)
func (c *Config) ApplyEnv() error {
	parseEnvString(EnvProfileDir, &c.ProfileDir)
	parseEnvString(EnvScriptsDir, &c.ScriptsDir)
	parseEnvString(EnvEffectCatalog, &c.EffectCatalog)
	if err := parseEnvDuration(EnvCacheTTL, &c.CacheTTL); err != nil {
		return err
	}
	return parseEnvBool(EnvVerbose, &c.Verbose)
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.CacheTTL <= 0 {
		return fmt.Errorf("cache_ttl must be positive (got %s)", c.CacheTTL)
	}
	if c.Profile() == "" {
		return fmt.Errorf("no profile directory: set profile_dir or scripts_dir")
	}
	return nil
}

// Profile returns the profile directory the stores are read from.
func (c Config) Profile() string {
	switch {
	case c.ProfileDir != "":
		return c.ProfileDir
	case c.ScriptsDir != "":
		return filepath.Dir(filepath.Clean(c.ScriptsDir))
	default:
		return DefaultProfileDir()
	}
}

func (c Config) String() string {
	return fmt.Sprintf("Config{Profile: %s, CacheTTL: %s, EffectCatalog: %q, Verbose: %t}",
		c.Profile(), c.CacheTTL, c.EffectCatalog, c.Verbose)
}

// DefaultProfileDir is the host's main profile under the user config
// directory, or "" when that directory is unknown.
func DefaultProfileDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "Firebot", "v5", "profiles", "Main Profile")
}

func resolve(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

func parseEnvString(key string, dest *string) {
	if value := os.Getenv(key); value != "" {
		*dest = value
	}
}

func parseEnvBool(key string, dest *bool) error {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	*dest = parsed
	return nil
}

func parseEnvDuration(key string, dest *time.Duration) error {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	*dest = parsed
	return nil
}
