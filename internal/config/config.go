// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/vmunix/jellyscrape/pkg/jellyfin"
)

// Config is the root configuration structure.
type Config struct {
	Jellyfin JellyfinConfig `toml:"jellyfin"`
	Scraper  ScraperConfig  `toml:"scraper"`
	Log      LogConfig      `toml:"log"`
}

// JellyfinConfig holds the media server connection settings.
type JellyfinConfig struct {
	URL       string `toml:"url"`
	Username  string `toml:"username"`
	Password  string `toml:"password"`
	LibraryID string `toml:"library_id"` // "", "none", "0" etc. search every library
}

// ScraperConfig controls how catalog items become sources.
type ScraperConfig struct {
	FilterByName bool   `toml:"filter_by_name"`
	TempDir      string `toml:"temp_dir"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
}

// DefaultTempDir is where downloaded subtitles go when temp_dir is unset.
func DefaultTempDir() string {
	return filepath.Join(os.TempDir(), "jellyscrape")
}

// Default returns a configuration with every default applied.
func Default() *Config {
	return &Config{
		Scraper: ScraperConfig{
			FilterByName: true,
			TempDir:      DefaultTempDir(),
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads, parses and validates the configuration file.
// Unresolved environment variables and validation failures are reported
// together in a *ConfigError.
func Load(path string) (*Config, error) {
	cfg, missing, err := load(path)
	if err != nil {
		return nil, err
	}

	cfgErr := &ConfigError{
		Path:    path,
		Missing: missing,
		Errors:  cfg.Validate(),
	}
	if cfgErr.HasErrors() {
		return nil, cfgErr
	}
	return cfg, nil
}

// LoadWithoutValidation reads and parses the configuration file, applying
// defaults but skipping validation and the unresolved variable check.
func LoadWithoutValidation(path string) (*Config, error) {
	cfg, _, err := load(path)
	return cfg, err
}

func load(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))

	cfg := Default()
	// Keys absent from the file keep their Default() values.
	if _, err := toml.Decode(content, cfg); err != nil {
		return nil, nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Scraper.TempDir == "" {
		cfg.Scraper.TempDir = DefaultTempDir()
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	cfg.Jellyfin.URL = strings.TrimRight(strings.TrimSpace(cfg.Jellyfin.URL), "/")
	cfg.Jellyfin.LibraryID = jellyfin.NormalizeLibraryID(cfg.Jellyfin.LibraryID)

	return cfg, missing, nil
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?:(:-|:\?)([^}]*))?\}`)

// substituteEnvVars replaces environment variable references. Unset
// variables without a default are left in place and returned in missing.
// An empty variable counts as unset for the :- and :? forms. Comment lines
// are copied unchanged.
func substituteEnvVars(content string) (string, []string) {
	var missing []string

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		lines[i] = envVarPattern.ReplaceAllStringFunc(line, func(match string) string {
			parts := envVarPattern.FindStringSubmatch(match)
			name, op, arg := parts[1], parts[2], parts[3]
			value, ok := os.LookupEnv(name)

			switch op {
			case ":-":
				if !ok || value == "" {
					return arg
				}
				return value
			case ":?":
				if !ok || value == "" {
					missing = append(missing, fmt.Sprintf("%s: %s", name, arg))
					return match
				}
				return value
			default:
				if !ok {
					missing = append(missing, name)
					return match
				}
				return value
			}
		})
	}

	return strings.Join(lines, "\n"), missing
}
