package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/jellyscrape/internal/scraper"
	"github.com/vmunix/jellyscrape/pkg/jellyfin"
	"github.com/vmunix/jellyscrape/pkg/release"
)

var movieCmd = &cobra.Command{
	Use:   "movie [flags] <title>...",
	Short: "Find sources for a movie",
	Long: `Search the server for a movie and print the matching sources.

Examples:
  jellyscrape movie "Heat" --year 1995
  jellyscrape movie --alias "La Haine" Hate
  jellyscrape movie --json "Blade Runner 2049"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMovieCmd,
}

var episodeCmd = &cobra.Command{
	Use:   "episode [flags] <show>...",
	Short: "Find sources for a TV episode",
	Long: `Search the server for one episode of a show and print the matching sources.

Examples:
  jellyscrape episode "The Office" --season 2 --episode 5
  jellyscrape episode -s 1 -e 1 Severance`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEpisodeCmd,
}

func init() {
	rootCmd.AddCommand(movieCmd, episodeCmd)

	movieCmd.Flags().IntP("year", "y", 0, "Release year (exact match)")

	episodeCmd.Flags().IntP("season", "s", 0, "Season number")
	episodeCmd.Flags().IntP("episode", "e", 0, "Episode number")
	_ = episodeCmd.MarkFlagRequired("season")
	_ = episodeCmd.MarkFlagRequired("episode")

	for _, c := range []*cobra.Command{movieCmd, episodeCmd} {
		c.Flags().StringArray("alias", nil, "Alternative title accepted by name matching (repeatable)")
		c.Flags().Bool("no-filter", false, "Keep files whose name does not match the title")
		c.Flags().BoolP("verbose", "v", false, "Show item ids and stream URLs")
	}
}

func runMovieCmd(cmd *cobra.Command, args []string) error {
	year, _ := cmd.Flags().GetInt("year")
	return runResults(cmd, newMovieInfo(strings.Join(args, " "), year))
}

func runEpisodeCmd(cmd *cobra.Command, args []string) error {
	season, _ := cmd.Flags().GetInt("season")
	episode, _ := cmd.Flags().GetInt("episode")
	return runResults(cmd, newEpisodeInfo(strings.Join(args, " "), season, episode))
}

// newMovieInfo builds the search metadata for a movie. A year of 0 means any.
func newMovieInfo(title string, year int) scraper.Info {
	info := scraper.Info{
		MediaType: scraper.MediaTypeMovie,
		Title:     title,
	}
	if year > 0 {
		info.Year = jellyfin.IntScalar(year)
	}
	return info
}

func newEpisodeInfo(show string, season, episode int) scraper.Info {
	return scraper.Info{
		MediaType:   "episode",
		Title:       show,
		TVShowTitle: show,
		Season:      jellyfin.IntScalar(season),
		Episode:     jellyfin.IntScalar(episode),
	}
}

// runResults runs the scraper; the print sink writes the output.
func runResults(cmd *cobra.Command, info scraper.Info) error {
	aliases, _ := cmd.Flags().GetStringArray("alias")
	for _, a := range aliases {
		info.Aliases = append(info.Aliases, release.Alias{Title: a})
	}

	a, err := setup(cmd)
	if err != nil {
		return err
	}
	if noFilter, _ := cmd.Flags().GetBool("no-filter"); noFilter {
		a.scraper = a.newScraper(false)
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		a.sink.verbose = true
	}

	_, err = a.scraper.Results(cmd.Context(), info)
	return err
}
