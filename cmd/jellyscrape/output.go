package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/goccy/go-json"

	"github.com/vmunix/jellyscrape/internal/scraper"
)

const nameWidth = 48

// printSink renders the scraper's final source list.
type printSink struct {
	out     io.Writer
	json    bool
	verbose bool
	log     *slog.Logger
}

// InternalResults implements scraper.Sink.
func (p *printSink) InternalResults(provider string, sources []scraper.Source) {
	p.log.Debug("results received", "provider", provider, "sources", len(sources))

	var err error
	if p.json {
		err = printJSON(p.out, sources)
	} else {
		err = printSources(p.out, sources, p.verbose)
	}
	if err != nil {
		p.log.Error("writing results", "error", err)
	}
}

func printSources(w io.Writer, sources []scraper.Source, verbose bool) error {
	if len(sources) == 0 {
		_, err := fmt.Fprintln(w, "No sources found.")
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d sources:\n\n", len(sources))
	fmt.Fprintf(&b, "  # │ %-7s │ %-*s │ %9s\n", "QUALITY", nameWidth, "NAME", "SIZE")
	fmt.Fprintf(&b, "────┼─────────┼─%s─┼──────────\n", strings.Repeat("─", nameWidth))

	for i, src := range sources {
		fmt.Fprintf(&b, " %2d │ %-7s │ %-*s │ %9s\n",
			i+1, src.Quality, nameWidth, truncate(src.DisplayName, nameWidth), formatSize(src.Size))
		if src.ExtraInfo != "" {
			fmt.Fprintf(&b, "    │         │ %s\n", src.ExtraInfo)
		}
		if verbose {
			fmt.Fprintf(&b, "    │         │ id: %s\n", src.JellyfinID)
			fmt.Fprintf(&b, "    │         │ url: %s\n", src.URLDL)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// formatSize renders a size in GB as a binary byte count ("1.5 GiB").
func formatSize(gb float64) string {
	if gb <= 0 {
		return "-"
	}
	return humanize.IBytes(uint64(math.Round(gb * (1 << 30))))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
