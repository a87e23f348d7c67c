package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/jellyscrape/pkg/jellyfin"
)

var librariesCmd = &cobra.Command{
	Use:   "libraries",
	Short: "List the libraries visible to the configured user",
	Long: `List the server libraries. Use an id from this list as
jellyfin.library_id to restrict searches to one library.`,
	Args: cobra.NoArgs,
	RunE: runLibrariesCmd,
}

func init() {
	rootCmd.AddCommand(librariesCmd)
}

func runLibrariesCmd(cmd *cobra.Command, _ []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}

	libs, err := a.client.Libraries(cmd.Context())
	if err != nil {
		return err
	}

	if jsonOutput {
		if libs == nil {
			libs = []jellyfin.Library{}
		}
		return printJSON(cmd.OutOrStdout(), libs)
	}
	return printLibraries(cmd.OutOrStdout(), libs, a.cfg.Jellyfin.LibraryID)
}

// printLibraries renders libs as a table, marking the configured one.
func printLibraries(w io.Writer, libs []jellyfin.Library, selected string) error {
	if len(libs) == 0 {
		_, err := fmt.Fprintln(w, "No libraries found.")
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  %-32s │ %-10s │ %s\n", "ID", "TYPE", "NAME")
	fmt.Fprintf(&b, "──%s─┼────────────┼──────────────────────\n", strings.Repeat("─", 32))
	for _, lib := range libs {
		mark := " "
		if selected != "" && lib.ID == selected {
			mark = "*"
		}
		kind := lib.CollectionType
		if kind == "" {
			kind = "-"
		}
		fmt.Fprintf(&b, "%s %-32s │ %-10s │ %s\n", mark, lib.ID, kind, lib.Name)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
