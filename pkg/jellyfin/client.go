package jellyfin

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

const (
	requestTimeout  = 10 * time.Second
	subtitleTimeout = 15 * time.Second

	// searchLimit caps the number of items returned per library query.
	searchLimit = "50"

	// DefaultClientHeader identifies this client to the server.
	DefaultClientHeader = `MediaBrowser Client="Fenlight", Device="Kodi", DeviceId="fenlight-jellyfin", Version="1.0.0"`
)

// Sentinel errors for Jellyfin API responses.
var (
	ErrNotConfigured       = errors.New("jellyfin base URL not configured")
	ErrMissingCredentials  = errors.New("missing username or password")
	ErrInvalidAuthResponse = errors.New("auth response missing token or user id")
	ErrUnauthorized        = errors.New("unauthorized: invalid credentials or token")
	ErrNotFound            = errors.New("not found")
	ErrNoSubtitle          = errors.New("item has no subtitle stream")
	ErrNoTempDir           = errors.New("temp directory not configured")
)

// StatusError is returned for non-2xx responses without a sentinel mapping.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %s", e.Method, e.Path, e.Status)
}

// librarySentinels are setting values that mean "no library filter".
var librarySentinels = map[string]bool{
	"": true, "none": true, "null": true, "0": true, "empty_setting": true,
}

// NormalizeLibraryID trims a configured library id and maps the "unset"
// sentinels to "".
func NormalizeLibraryID(raw string) string {
	id := strings.TrimSpace(raw)
	if librarySentinels[strings.ToLower(id)] {
		return ""
	}
	return id
}

// Client is a Jellyfin API client. It is not safe for concurrent use.
type Client struct {
	session      Session
	clientHeader string
	tempDir      string
	httpClient   *http.Client
	log          *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLibraryID restricts searches to one library. Sentinel values are ignored.
func WithLibraryID(id string) Option {
	return func(c *Client) {
		c.session.LibraryID = NormalizeLibraryID(id)
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log.With("component", "jellyfin")
		}
	}
}

// WithTempDir sets the directory subtitle downloads are written to.
func WithTempDir(dir string) Option {
	return func(c *Client) {
		c.tempDir = dir
	}
}

// WithClientHeader overrides the X-Emby-Authorization identity header.
func WithClientHeader(header string) Option {
	return func(c *Client) {
		c.clientHeader = header
	}
}

// New creates a new Jellyfin client.
func New(baseURL, username, password string, opts ...Option) *Client {
	c := &Client{
		session: Session{
			BaseURL:  strings.TrimRight(strings.TrimSpace(baseURL), "/"),
			Username: username,
			Password: password,
		},
		clientHeader: DefaultClientHeader,
		httpClient:   &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.log != nil {
		c.log.Debug("configured", "base_url", c.session.BaseURL, "library_id", c.session.LibraryID)
	}
	return c
}

// Session returns a copy of the client's session state.
func (c *Client) Session() Session {
	return c.session
}

// Authenticated reports whether a token and user id are held.
func (c *Client) Authenticated() bool {
	return c.session.Token != "" && c.session.UserID != ""
}

// Authenticate logs in with the configured credentials. It is a no-op when the
// session already holds a token and user id.
func (c *Client) Authenticate(ctx context.Context) error {
	if c.Authenticated() {
		return nil
	}
	if c.session.Username == "" || c.session.Password == "" {
		if c.log != nil {
			c.log.Warn("missing username or password")
		}
		return ErrMissingCredentials
	}

	if c.log != nil {
		c.log.Debug("authenticating", "base_url", c.session.BaseURL, "username", c.session.Username)
	}

	var resp authResponse
	body := authRequest{Username: c.session.Username, Pw: c.session.Password}
	if err := c.do(ctx, http.MethodPost, "/Users/AuthenticateByName", nil, body, false, &resp); err != nil {
		if c.log != nil {
			c.log.Warn("authentication failed", "error", err)
		}
		return fmt.Errorf("authenticate: %w", err)
	}
	if resp.AccessToken == "" || resp.User.ID == "" {
		if c.log != nil {
			c.log.Warn("authentication failed", "error", ErrInvalidAuthResponse)
		}
		return ErrInvalidAuthResponse
	}

	c.session.Token = resp.AccessToken
	c.session.UserID = resp.User.ID

	if c.log != nil {
		c.log.Debug("authenticated", "user_id", c.session.UserID)
	}
	return nil
}

// Libraries returns the views (libraries) visible to the user.
func (c *Client) Libraries(ctx context.Context) ([]Library, error) {
	if err := c.Authenticate(ctx); err != nil {
		return nil, err
	}

	var resp viewsResponse
	if err := c.do(ctx, http.MethodGet, "/Users/"+url.PathEscape(c.session.UserID)+"/Views", nil, nil, true, &resp); err != nil {
		return nil, fmt.Errorf("list libraries: %w", err)
	}

	if c.log != nil {
		c.log.Debug("libraries found", "count", len(resp.Items))
	}
	return resp.Items, nil
}

// SearchMovie searches movies by title. A non-empty year keeps only items whose
// ProductionYear has the same string form.
func (c *Client) SearchMovie(ctx context.Context, title, year string) ([]Item, error) {
	start := time.Now()
	if err := c.Authenticate(ctx); err != nil {
		return nil, err
	}

	items, err := c.searchLibraries(ctx, searchParams("Movie", title))
	if err != nil {
		return nil, fmt.Errorf("search movie %q: %w", title, err)
	}
	total := len(items)

	if year != "" {
		filtered := make([]Item, 0, len(items))
		for _, item := range items {
			if item.ProductionYear.Equal(year) {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	if c.log != nil {
		c.log.Debug("search movie completed", "title", title, "year", year, "total", total, "matched", len(items),
			"duration_ms", time.Since(start).Milliseconds())
	}
	return items, nil
}

// SearchEpisode finds every series matching show, then keeps the episodes of
// the given season whose IndexNumber equals episode. Results from all matching
// series are concatenated.
func (c *Client) SearchEpisode(ctx context.Context, show, season, episode string) ([]Item, error) {
	start := time.Now()
	if err := c.Authenticate(ctx); err != nil {
		return nil, err
	}

	shows, err := c.searchLibraries(ctx, searchParams("Series", show))
	if err != nil {
		return nil, fmt.Errorf("search series %q: %w", show, err)
	}
	if len(shows) == 0 {
		if c.log != nil {
			c.log.Debug("no series found", "show", show)
		}
		return nil, nil
	}

	var matches []Item
	for _, s := range shows {
		episodes, err := c.seasonEpisodes(ctx, s.ID, season)
		if err != nil {
			return nil, fmt.Errorf("episodes of %q: %w", s.Name, err)
		}

		n := 0
		for _, ep := range episodes {
			if ep.IndexNumber.Equal(episode) {
				matches = append(matches, ep)
				n++
			}
		}

		if c.log != nil {
			c.log.Debug("season episodes", "series", s.Name, "series_id", s.ID, "season", season,
				"episodes", len(episodes), "matched", n)
		}
	}

	if c.log != nil {
		c.log.Debug("search episode completed", "show", show, "season", season, "episode", episode,
			"series", len(shows), "matched", len(matches), "duration_ms", time.Since(start).Milliseconds())
	}
	return matches, nil
}

// Item fetches one catalog item with its media sources and streams.
func (c *Client) Item(ctx context.Context, id string) (*Item, error) {
	if err := c.Authenticate(ctx); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("UserId", c.session.UserID)
	q.Set("Fields", "MediaSources,MediaStreams")

	var item Item
	if err := c.do(ctx, http.MethodGet, "/Items/"+url.PathEscape(id), q, nil, true, &item); err != nil {
		return nil, fmt.Errorf("get item %s: %w", id, err)
	}
	return &item, nil
}

// StreamURL returns a direct playback URL for an item. The token is appended
// as api_key because players cannot send the auth header.
func (c *Client) StreamURL(itemID string) string {
	if c.session.BaseURL == "" {
		return ""
	}
	u := c.session.BaseURL + "/Videos/" + url.PathEscape(itemID) + "/stream?static=true"
	if c.session.Token != "" {
		u += "&api_key=" + url.QueryEscape(c.session.Token)
	}
	return u
}

// SubtitleURL returns the SRT download URL for one subtitle stream.
func (c *Client) SubtitleURL(itemID, sourceID string, index int) string {
	if c.session.BaseURL == "" {
		return ""
	}
	u := fmt.Sprintf("%s/Videos/%s/%s/Subtitles/%d/0/Stream.srt",
		c.session.BaseURL, url.PathEscape(itemID), url.PathEscape(sourceID), index)
	if c.session.Token != "" {
		u += "?api_key=" + url.QueryEscape(c.session.Token)
	}
	return u
}

// FirstExternalSubtitle picks the first external subtitle stream of an item,
// falling back to the first subtitle stream of any kind.
func FirstExternalSubtitle(item Item) (MediaStream, bool) {
	streams := item.MediaStreams
	if len(streams) == 0 && len(item.MediaSources) > 0 {
		streams = item.MediaSources[0].MediaStreams
	}

	var first *MediaStream
	for i := range streams {
		if !streams[i].IsSubtitle() {
			continue
		}
		if streams[i].IsExternal {
			return streams[i], true
		}
		if first == nil {
			first = &streams[i]
		}
	}
	if first == nil {
		return MediaStream{}, false
	}
	return *first, true
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// SubtitleFileName returns the deterministic file name used for an item's subtitle.
func SubtitleFileName(itemID string) string {
	return "jellyfin_" + unsafeFileChars.ReplaceAllString(itemID, "_") + ".srt"
}

// DownloadFirstExternalSubtitle downloads the item's preferred subtitle stream
// into the temp directory and returns the local path. An existing file for the
// same item is overwritten.
func (c *Client) DownloadFirstExternalSubtitle(ctx context.Context, itemID string) (string, error) {
	if c.tempDir == "" {
		return "", ErrNoTempDir
	}

	item, err := c.Item(ctx, itemID)
	if err != nil {
		return "", err
	}

	stream, ok := FirstExternalSubtitle(*item)
	if !ok {
		return "", ErrNoSubtitle
	}

	sourceID := itemID
	if len(item.MediaSources) > 0 && item.MediaSources[0].ID != "" {
		sourceID = item.MediaSources[0].ID
	}

	subURL := c.SubtitleURL(itemID, sourceID, stream.Index)
	data, err := c.download(ctx, subURL)
	if err != nil {
		return "", fmt.Errorf("download subtitle: %w", err)
	}

	if err := os.MkdirAll(c.tempDir, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	path := filepath.Join(c.tempDir, SubtitleFileName(itemID))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write subtitle: %w", err)
	}

	if c.log != nil {
		c.log.Debug("subtitle downloaded", "item_id", itemID, "stream", stream.Index,
			"external", stream.IsExternal, "path", path, "bytes", len(data))
	}
	return path, nil
}

// searchParams returns the query shared by movie and series searches.
func searchParams(itemType, term string) url.Values {
	q := url.Values{}
	q.Set("IncludeItemTypes", itemType)
	q.Set("SearchTerm", term)
	q.Set("Recursive", "true")
	q.Set("Limit", searchLimit)
	q.Set("Fields", "MediaSources")
	return q
}

// searchLibraries runs an item query against the configured library, or
// against every library in turn when none is configured.
func (c *Client) searchLibraries(ctx context.Context, params url.Values) ([]Item, error) {
	if c.session.LibraryID != "" {
		q := maps.Clone(params)
		q.Set("ParentId", c.session.LibraryID)
		return c.userItems(ctx, q)
	}

	libs, err := c.Libraries(ctx)
	if err != nil {
		return nil, err
	}

	var items []Item
	for _, lib := range libs {
		q := maps.Clone(params)
		q.Set("ParentId", lib.ID)
		libItems, err := c.userItems(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("library %s: %w", lib.Name, err)
		}
		if c.log != nil {
			c.log.Debug("library searched", "library", lib.Name, "library_id", lib.ID,
				"type", params.Get("IncludeItemTypes"), "items", len(libItems))
		}
		items = append(items, libItems...)
	}
	return items, nil
}

func (c *Client) userItems(ctx context.Context, q url.Values) ([]Item, error) {
	var resp itemsResponse
	path := "/Users/" + url.PathEscape(c.session.UserID) + "/Items"
	if err := c.do(ctx, http.MethodGet, path, q, nil, true, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *Client) seasonEpisodes(ctx context.Context, seriesID, season string) ([]Item, error) {
	q := url.Values{}
	q.Set("UserId", c.session.UserID)
	q.Set("Season", season)
	q.Set("Fields", "MediaSources")

	var resp itemsResponse
	if err := c.do(ctx, http.MethodGet, "/Shows/"+url.PathEscape(seriesID)+"/Episodes", q, nil, true, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// do performs one JSON request. An empty response body leaves out untouched.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, withToken bool, out any) error {
	if c.session.BaseURL == "" {
		if c.log != nil {
			c.log.Error("base URL not configured")
		}
		return ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	reqURL := c.session.BaseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reader io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req, withToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.log != nil {
		c.log.Debug("request", "method", method, "url", reqURL)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.log != nil {
			c.log.Warn("request failed", "method", method, "url", reqURL, "error", err)
		}
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkResponse(resp, method, path); err != nil {
		if c.log != nil {
			c.log.Warn("request failed", "method", method, "url", reqURL, "status", resp.StatusCode)
		}
		return err
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// download fetches a raw body with the subtitle deadline.
func (c *Client) download(ctx context.Context, rawURL string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, subtitleTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req, true)
	req.Header.Set("Accept", "*/*")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkResponse(resp, http.MethodGet, req.URL.Path); err != nil {
		return nil, err
	}
	return io.ReadAll(resp.Body)
}

func (c *Client) setHeaders(req *http.Request, withToken bool) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Emby-Authorization", c.clientHeader)
	if withToken && c.session.Token != "" {
		req.Header.Set("X-Emby-Token", c.session.Token)
	}
}

// checkResponse maps HTTP status codes to errors.
func checkResponse(resp *http.Response, method, path string) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%s %s: %w", method, path, ErrUnauthorized)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s %s: %w", method, path, ErrNotFound)
	default:
		return &StatusError{Method: method, Path: path, StatusCode: resp.StatusCode, Status: resp.Status}
	}
}
