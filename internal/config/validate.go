package config

import (
	"fmt"
	"net/url"
	"strings"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	switch u, err := url.Parse(c.Jellyfin.URL); {
	case c.Jellyfin.URL == "":
		errs = append(errs, "jellyfin.url: required")
	case err != nil:
		errs = append(errs, fmt.Sprintf("jellyfin.url: %v", err))
	case u.Scheme != "http" && u.Scheme != "https":
		errs = append(errs, fmt.Sprintf("jellyfin.url: scheme must be http or https, got %q", u.Scheme))
	case u.Host == "":
		errs = append(errs, "jellyfin.url: missing host")
	}

	if c.Jellyfin.Username == "" {
		errs = append(errs, "jellyfin.username: required")
	}
	if c.Jellyfin.Password == "" {
		errs = append(errs, "jellyfin.password: required")
	}

	if strings.TrimSpace(c.Scraper.TempDir) == "" {
		errs = append(errs, "scraper.temp_dir: required")
	}

	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}

	return errs
}
