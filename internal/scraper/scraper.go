// Package scraper turns media server catalog items into source records for
// the host player.
package scraper

//go:generate mockgen -destination=mocks/mocks.go -package=mocks . MediaServer,Sink,TitleMatcher,Classifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/vmunix/jellyscrape/pkg/jellyfin"
	"github.com/vmunix/jellyscrape/pkg/release"
)

// Provider is the name the scraper reports its sources under.
const Provider = "jellyfin"

// MediaTypeMovie selects a movie search. Every other media type is an episode.
const MediaTypeMovie = "movie"

// ErrMissingItemID is returned for catalog items without an id.
var ErrMissingItemID = errors.New("catalog item has no id")

// MediaServer is the catalog the scraper searches.
type MediaServer interface {
	SearchMovie(ctx context.Context, title, year string) ([]jellyfin.Item, error)
	SearchEpisode(ctx context.Context, show, season, episode string) ([]jellyfin.Item, error)
	StreamURL(itemID string) string
}

// Sink receives the final source list of every Results call.
type Sink interface {
	InternalResults(provider string, sources []Source)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(provider string, sources []Source)

// InternalResults calls f.
func (f SinkFunc) InternalResults(provider string, sources []Source) { f(provider, sources) }

// TitleMatcher decides whether a file name belongs to the requested title.
type TitleMatcher interface {
	Match(title, candidate string, aliases []string, year, season, episode string) bool
}

// TitleMatcherFunc adapts a function to TitleMatcher.
type TitleMatcherFunc func(title, candidate string, aliases []string, year, season, episode string) bool

// Match calls f.
func (f TitleMatcherFunc) Match(title, candidate string, aliases []string, year, season, episode string) bool {
	return f(title, candidate, aliases, year, season, episode)
}

// Classifier derives the quality label and detail tags of a file name.
type Classifier interface {
	Classify(name string) (quality, details string)
}

// ClassifierFunc adapts a function to Classifier.
type ClassifierFunc func(name string) (quality, details string)

// Classify calls f.
func (f ClassifierFunc) Classify(name string) (quality, details string) { return f(name) }

// Info is the search metadata supplied by the host.
type Info struct {
	MediaType   string          `json:"media_type"`
	Title       string          `json:"title"`
	TVShowTitle string          `json:"tvshowtitle,omitempty"`
	Year        jellyfin.Scalar `json:"year"`
	Season      jellyfin.Scalar `json:"season"`
	Episode     jellyfin.Scalar `json:"episode"`
	Aliases     []release.Alias `json:"aliases,omitempty"`
}

// IsMovie reports whether the host asked for a movie.
func (i Info) IsMovie() bool {
	return i.MediaType == MediaTypeMovie
}

// ShowTitle returns the series title used for episode searches.
func (i Info) ShowTitle() string {
	if i.TVShowTitle != "" {
		return i.TVShowTitle
	}
	return i.Title
}

// SearchTitle is the title searched for and matched against file names.
func (i Info) SearchTitle() string {
	if i.IsMovie() {
		return i.Title
	}
	return i.ShowTitle()
}

// Source is one playable catalog item in the shape the host consumes.
type Source struct {
	Name             string  `json:"name"`
	DisplayName      string  `json:"display_name"`
	Quality          string  `json:"quality"`
	Size             float64 `json:"size"`
	SizeLabel        string  `json:"size_label"`
	ExtraInfo        string  `json:"extraInfo"`
	URLDL            string  `json:"url_dl"`
	ID               string  `json:"id"`
	Downloads        bool    `json:"downloads"`
	Direct           bool    `json:"direct"`
	Source           string  `json:"source"`
	Debrid           string  `json:"debrid"`
	ScrapeProvider   string  `json:"scrape_provider"`
	DirectDebridLink bool    `json:"direct_debrid_link"`
	FolderID         string  `json:"folder_id"`
	CacheType        string  `json:"cache_type"`
	JellyfinID       string  `json:"jellyfin_id"`
}

// Scraper searches a MediaServer and reports the matches to a Sink.
type Scraper struct {
	api          MediaServer
	sink         Sink
	matcher      TitleMatcher
	classifier   Classifier
	filterByName bool
	log          *slog.Logger
}

// Option configures a Scraper.
type Option func(*Scraper)

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Scraper) {
		if log != nil {
			s.log = log.With("component", "scraper")
		}
	}
}

// WithFilterByName enables or disables the title check on file names.
func WithFilterByName(enabled bool) Option {
	return func(s *Scraper) {
		s.filterByName = enabled
	}
}

// WithMatcher replaces the default release.CheckTitle matcher.
func WithMatcher(m TitleMatcher) Option {
	return func(s *Scraper) {
		if m != nil {
			s.matcher = m
		}
	}
}

// WithClassifier replaces the default release.Classify classifier.
func WithClassifier(c Classifier) Option {
	return func(s *Scraper) {
		if c != nil {
			s.classifier = c
		}
	}
}

// New creates a Scraper. The name filter is on by default.
func New(api MediaServer, sink Sink, opts ...Option) *Scraper {
	s := &Scraper{
		api:          api,
		sink:         sink,
		matcher:      TitleMatcherFunc(release.CheckTitle),
		classifier:   ClassifierFunc(release.Classify),
		filterByName: true,
		log:          slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Results searches for the movie or episode described by info and returns
// the matching sources. The sink is notified with the returned list on every
// call, including failures. Search and per-item failures are logged and
// yield fewer sources; only jellyfin.ErrNotConfigured is returned.
func (s *Scraper) Results(ctx context.Context, info Info) ([]Source, error) {
	start := time.Now()
	sources, err := s.collect(ctx, info)

	s.log.Info("results complete", "media_type", info.MediaType, "title", info.Title,
		"sources", len(sources), "duration_ms", time.Since(start).Milliseconds())
	if s.sink != nil {
		s.sink.InternalResults(Provider, sources)
	}

	if errors.Is(err, jellyfin.ErrNotConfigured) {
		return sources, err
	}
	return sources, nil
}

func (s *Scraper) collect(ctx context.Context, info Info) ([]Source, error) {
	sources := []Source{}
	aliases := release.AliasTitles(info.Aliases)
	year, season, episode := info.Year.String(), info.Season.String(), info.Episode.String()

	s.log.Debug("search started", "media_type", info.MediaType, "title", info.Title,
		"year", year, "season", season, "episode", episode, "aliases", len(aliases))

	var (
		items []jellyfin.Item
		err   error
	)
	if info.IsMovie() {
		items, err = s.api.SearchMovie(ctx, info.Title, year)
	} else {
		items, err = s.api.SearchEpisode(ctx, info.SearchTitle(), season, episode)
	}
	if err != nil {
		s.log.Error("search failed", "title", info.Title, "error", err)
		return sources, err
	}
	if len(items) == 0 {
		s.log.Debug("no items returned", "title", info.Title)
		return sources, nil
	}

	for i, item := range items {
		if err := ctx.Err(); err != nil {
			s.log.Warn("results aborted", "processed", i, "items", len(items), "error", err)
			return sources, err
		}

		src, ok, err := s.buildSource(item, info, aliases)
		if err != nil {
			s.log.Warn("skipping item", "index", i, "name", item.Name, "error", err)
			continue
		}
		if !ok {
			s.log.Debug("title check failed", "index", i, "name", src.Name)
			continue
		}
		sources = append(sources, src)
	}

	return sources, nil
}

// buildSource maps one catalog item to a Source. ok is false when the
// name filter rejects the item; src.Name is still set in that case.
func (s *Scraper) buildSource(item jellyfin.Item, info Info, aliases []string) (src Source, ok bool, err error) {
	fileName := release.CleanFileName(displayName(item, info.Title))
	normalized := release.Normalize(fileName)
	src.Name = normalized

	if s.filterByName && !s.matcher.Match(info.SearchTitle(), normalized, aliases,
		info.Year.String(), info.Season.String(), info.Episode.String()) {
		return src, false, nil
	}

	if item.ID == "" {
		return src, false, fmt.Errorf("%q: %w", fileName, ErrMissingItemID)
	}

	streamURL := s.api.StreamURL(item.ID)
	quality, details := s.classifier.Classify(fileName)
	size := item.Size().GB()

	return Source{
		Name:             normalized,
		DisplayName:      fileName,
		Quality:          quality,
		Size:             size,
		SizeLabel:        fmt.Sprintf("%.2f GB", size),
		ExtraInfo:        details,
		URLDL:            streamURL,
		ID:               streamURL,
		Downloads:        false,
		Direct:           true,
		Source:           Provider,
		Debrid:           Provider,
		ScrapeProvider:   Provider,
		DirectDebridLink: true,
		FolderID:         "",
		CacheType:        Provider,
		JellyfinID:       item.ID,
	}, true, nil
}

// displayName is the last "/" element of the item's file path, else the
// item name, else fallback.
func displayName(item jellyfin.Item, fallback string) string {
	if p := item.FilePath(); p != "" {
		if name := p[strings.LastIndex(p, "/")+1:]; name != "" {
			return name
		}
	}
	if item.Name != "" {
		return item.Name
	}
	return fallback
}
