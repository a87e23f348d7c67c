package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vmunix/jellyscrape/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configTestCmd = &cobra.Command{
	Use:   "test [path]",
	Short: "Validate configuration file",
	Long:  "Validates config.toml syntax, required fields, and environment variable substitution without contacting the server.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigTest,
}

var configShowCmd = &cobra.Command{
	Use:   "show [path]",
	Short: "Print the effective configuration",
	Long:  "Prints the configuration after variable substitution and defaults, with the password masked.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configTestCmd, configShowCmd)
}

// resolveConfigPath picks the positional path, then --config, then discovery.
func resolveConfigPath(args []string) (string, error) {
	switch {
	case len(args) > 0:
		return args[0], nil
	case configPath != "":
		return configPath, nil
	default:
		return config.Discover()
	}
}

func runConfigTest(cmd *cobra.Command, args []string) error {
	path, err := resolveConfigPath(args)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	_, _ = fmt.Fprintf(out, "Validating %s...\n\n", path)

	cfg, err := config.Load(path)
	if err != nil {
		var configErr *config.ConfigError
		if errors.As(err, &configErr) {
			printConfigErrors(out, configErr)
			return errors.New("configuration invalid")
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	printConfigSummary(out, cfg)
	_, _ = fmt.Fprintln(out, "\nConfiguration valid!")
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	path, err := resolveConfigPath(args)
	if err != nil {
		return err
	}

	cfg, err := config.LoadWithoutValidation(path)
	if err != nil {
		return err
	}
	return cfg.Redacted().Encode(cmd.OutOrStdout())
}

func printConfigErrors(w io.Writer, e *config.ConfigError) {
	if len(e.Missing) > 0 {
		_, _ = fmt.Fprintln(w, "Missing environment variables:")
		for _, m := range e.Missing {
			_, _ = fmt.Fprintf(w, "  - %s\n", m)
		}
		_, _ = fmt.Fprintln(w)
	}

	if len(e.Errors) > 0 {
		_, _ = fmt.Fprintln(w, "Validation errors:")
		for _, err := range e.Errors {
			_, _ = fmt.Fprintf(w, "  - %s\n", err)
		}
		_, _ = fmt.Fprintln(w)
	}
}

func printConfigSummary(w io.Writer, cfg *config.Config) {
	library := cfg.Jellyfin.LibraryID
	if library == "" {
		library = "all"
	}
	filter := "off"
	if cfg.Scraper.FilterByName {
		filter = "on"
	}

	_, _ = fmt.Fprintln(w, "Configuration Summary:")
	_, _ = fmt.Fprintf(w, "  Server:     %s (user: %s)\n", cfg.Jellyfin.URL, cfg.Jellyfin.Username)
	_, _ = fmt.Fprintf(w, "  Library:    %s\n", library)
	_, _ = fmt.Fprintf(w, "  Filter:     %s\n", filter)
	_, _ = fmt.Fprintf(w, "  Temp dir:   %s\n", cfg.Scraper.TempDir)
	_, _ = fmt.Fprintf(w, "  Log level:  %s\n", cfg.Log.Level)
}
