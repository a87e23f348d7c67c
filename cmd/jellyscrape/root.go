package main

import (
	"context"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	configPath string
	jsonOutput bool
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "jellyscrape",
	Short: "Find playable sources on a Jellyfin or Emby server",
	Long: `jellyscrape - source scraper for Jellyfin and Emby media servers

Searches the server catalog for a movie or TV episode and prints the
matching files as source records: quality, size and a direct stream URL.

Configuration is read from --config, $JELLYSCRAPE_CONFIG, ./config.toml,
$XDG_CONFIG_HOME/jellyscrape/config.toml or /etc/jellyscrape/config.toml.
Run 'jellyscrape init' to write an example config.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context) int {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		return 1
	}
	return 0
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides config")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("jellyscrape {{.Version}}\n")
}
