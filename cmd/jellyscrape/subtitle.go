package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var subtitleCmd = &cobra.Command{
	Use:   "subtitle <item-id>",
	Short: "Download the first external subtitle of an item",
	Long: `Download an item's subtitle as SRT into scraper.temp_dir and print the
local path. External subtitle files are preferred over embedded tracks.`,
	Args: cobra.ExactArgs(1),
	RunE: runSubtitleCmd,
}

func init() {
	rootCmd.AddCommand(subtitleCmd)
}

func runSubtitleCmd(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}

	path, err := a.client.DownloadFirstExternalSubtitle(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), map[string]string{"item_id": args[0], "path": path})
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
	return err
}
