package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/jellyscrape/pkg/release"
)

// parseResult is the JSON form of one parsed file name.
type parseResult struct {
	Input      string `json:"input"`
	FileName   string `json:"file_name"`
	Title      string `json:"title"`
	Year       int    `json:"year,omitempty"`
	Season     int    `json:"season,omitempty"`
	Episode    int    `json:"episode,omitempty"`
	Resolution string `json:"resolution"`
	Source     string `json:"source"`
	Codec      string `json:"codec"`
	HDR        string `json:"hdr,omitempty"`
	Audio      string `json:"audio,omitempty"`
	Channels   string `json:"channels,omitempty"`
	IsRemux    bool   `json:"remux"`
	Edition    string `json:"edition,omitempty"`
	Group      string `json:"group,omitempty"`
	Proper     bool   `json:"proper,omitempty"`
	Repack     bool   `json:"repack,omitempty"`
	CleanTitle string `json:"clean_title"`
	Quality    string `json:"quality"`
	ExtraInfo  string `json:"extra_info"`
}

func newParseResult(input string) parseResult {
	fileName := release.CleanFileName(input)
	info := release.Parse(fileName)
	quality, extra := release.Classify(fileName)

	r := parseResult{
		Input:      input,
		FileName:   fileName,
		Title:      info.Title,
		Year:       info.Year,
		Season:     info.Season,
		Episode:    info.Episode,
		Resolution: info.Resolution.String(),
		Source:     info.Source.String(),
		Codec:      info.Codec.String(),
		Channels:   info.Channels,
		IsRemux:    info.IsRemux,
		Edition:    info.Edition,
		Group:      info.Group,
		Proper:     info.Proper,
		Repack:     info.Repack,
		CleanTitle: info.CleanTitle,
		Quality:    quality,
		ExtraInfo:  extra,
	}
	if info.HDR != release.HDRNone {
		r.HDR = info.HDR.String()
	}
	if info.Audio != release.AudioUnknown {
		r.Audio = info.Audio.String()
	}
	return r
}

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file-name>...",
	Short: "Parse a media file name (local, no server needed)",
	Long: `Show how a file name is cleaned, parsed and classified, exactly as the
scraper does for catalog items.

Examples:
  jellyscrape parse "/media/movies/Heat.1995.2160p.UHD.BluRay.x265.DV.TrueHD.7.1-GRP.mkv"
  jellyscrape parse --file names.txt --json`,
	RunE: runParseCmd,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringP("file", "f", "", "Read file names from file (one per line)")
}

func runParseCmd(cmd *cobra.Command, args []string) error {
	inputFile, _ := cmd.Flags().GetString("file")

	names := args
	if inputFile != "" {
		fromFile, err := readReleaseFile(inputFile)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
		names = append(names, fromFile...)
	}
	if len(names) == 0 {
		return errors.New("usage: jellyscrape parse <file-name> or jellyscrape parse --file <path>")
	}

	results := make([]parseResult, 0, len(names))
	for _, name := range names {
		results = append(results, newParseResult(name))
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), results)
	}
	for i, r := range results {
		if i > 0 {
			_, _ = fmt.Fprintln(cmd.OutOrStdout())
		}
		if err := printParseResult(cmd.OutOrStdout(), r); err != nil {
			return err
		}
	}
	return nil
}

// readReleaseFile reads names from a file, one per line. Blank lines and
// lines starting with # are skipped.
func readReleaseFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && !strings.HasPrefix(line, "#") {
			names = append(names, line)
		}
	}
	return names, scanner.Err()
}

func printParseResult(w io.Writer, r parseResult) error {
	var b strings.Builder
	field := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&b, "  %-11s %s\n", label+":", value)
		}
	}

	fmt.Fprintf(&b, "%s\n", r.FileName)
	field("Title", r.Title)
	if r.Year > 0 {
		field("Year", fmt.Sprint(r.Year))
	}
	if r.Season > 0 || r.Episode > 0 {
		field("Episode", fmt.Sprintf("S%02dE%02d", r.Season, r.Episode))
	}
	field("Resolution", r.Resolution)
	field("Source", r.Source)
	field("Codec", r.Codec)
	field("HDR", r.HDR)
	field("Audio", strings.TrimSpace(r.Audio+" "+r.Channels))
	if r.IsRemux {
		field("Remux", "yes")
	}
	field("Edition", r.Edition)
	field("Group", r.Group)
	field("Clean", r.CleanTitle)
	field("Quality", r.Quality)
	field("Info", r.ExtraInfo)

	_, err := io.WriteString(w, b.String())
	return err
}
