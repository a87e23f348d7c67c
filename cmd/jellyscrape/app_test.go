package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/jellyscrape/internal/config"
	"github.com/vmunix/jellyscrape/internal/scraper"
	"github.com/vmunix/jellyscrape/pkg/jellyfin"
)

const fakeLibraryID = "lib-movies"

// newFakeJellyfin serves just enough of the Jellyfin API for a movie search.
func newFakeJellyfin(t *testing.T, items []jellyfin.Item) *httptest.Server {
	t.Helper()

	writeJSON := func(w http.ResponseWriter, v any) {
		w.Header().Set("Content-Type", "application/json")
		assert.NoError(t, json.NewEncoder(w).Encode(v))
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /Users/AuthenticateByName", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]any{"AccessToken": "tok", "User": map[string]string{"Id": "u1"}})
	})
	mux.HandleFunc("GET /Users/u1/Views", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]any{"Items": []jellyfin.Library{{ID: fakeLibraryID, Name: "Movies", CollectionType: "movies"}}})
	})
	mux.HandleFunc("GET /Users/u1/Items", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Movie", r.URL.Query().Get("IncludeItemTypes"))
		assert.Equal(t, fakeLibraryID, r.URL.Query().Get("ParentId"))
		writeJSON(w, map[string]any{"Items": items, "TotalRecordCount": len(items)})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(serverURL string) *config.Config {
	cfg := config.Default()
	cfg.Jellyfin.URL = serverURL
	cfg.Jellyfin.Username = "alice"
	cfg.Jellyfin.Password = "secret"
	return cfg
}

func TestApp_MovieResults(t *testing.T) {
	srv := newFakeJellyfin(t, []jellyfin.Item{
		{
			ID:             "m1",
			Name:           "Heat",
			ProductionYear: "1995",
			Path:           "/media/movies/Heat.1995.1080p.BluRay.x264-GRP.mkv",
			MediaSources:   []jellyfin.MediaSource{{ID: "m1", Size: "3221225472"}},
		},
		{
			ID:             "m2",
			Name:           "Heat",
			ProductionYear: "1995",
			Path:           "/media/movies/Unrelated.Film.1995.720p.WEB-DL.mkv",
		},
	})

	var out bytes.Buffer
	sink := &printSink{out: &out, json: true, log: discardLogger()}
	a := newApp(testConfig(srv.URL), discardLogger(), sink)

	sources, err := a.scraper.Results(t.Context(), scraper.Info{
		MediaType: scraper.MediaTypeMovie,
		Title:     "Heat",
		Year:      "1995",
	})
	require.NoError(t, err)
	require.Len(t, sources, 1)

	src := sources[0]
	assert.Equal(t, "Heat.1995.1080p.BluRay.x264-GRP", src.DisplayName)
	assert.Equal(t, "1080p", src.Quality)
	assert.Equal(t, "BLURAY | AVC", src.ExtraInfo)
	assert.InDelta(t, 3.0, src.Size, 0.001)
	assert.Equal(t, srv.URL+"/Videos/m1/stream?static=true&api_key=tok", src.URLDL)
	assert.Equal(t, "m1", src.JellyfinID)

	var printed []scraper.Source
	require.NoError(t, json.Unmarshal(out.Bytes(), &printed))
	assert.Equal(t, sources, printed)
}

func TestApp_NoFilterKeepsEveryItem(t *testing.T) {
	srv := newFakeJellyfin(t, []jellyfin.Item{
		{ID: "m1", Path: "/media/Heat.1995.1080p.BluRay.x264-GRP.mkv"},
		{ID: "m2", Path: "/media/Unrelated.Film.1995.720p.WEB-DL.mkv"},
	})

	var out bytes.Buffer
	a := newApp(testConfig(srv.URL), discardLogger(), &printSink{out: &out, log: discardLogger()})
	a.scraper = a.newScraper(false)

	sources, err := a.scraper.Results(t.Context(), scraper.Info{MediaType: scraper.MediaTypeMovie, Title: "Heat"})
	require.NoError(t, err)
	assert.Len(t, sources, 2)
	assert.Contains(t, out.String(), "Found 2 sources:")
}

func TestApp_ServerUnreachable(t *testing.T) {
	srv := newFakeJellyfin(t, nil)
	url := srv.URL
	srv.Close()

	var out bytes.Buffer
	a := newApp(testConfig(url), discardLogger(), &printSink{out: &out, log: discardLogger()})

	sources, err := a.scraper.Results(t.Context(), scraper.Info{MediaType: scraper.MediaTypeMovie, Title: "Heat"})
	require.NoError(t, err)
	assert.Empty(t, sources)
	assert.Equal(t, "No sources found.\n", out.String())
}

func TestApp_Libraries(t *testing.T) {
	srv := newFakeJellyfin(t, nil)
	cfg := testConfig(srv.URL)
	cfg.Jellyfin.LibraryID = fakeLibraryID

	a := newApp(cfg, discardLogger(), &printSink{out: &bytes.Buffer{}, log: discardLogger()})
	libs, err := a.client.Libraries(t.Context())
	require.NoError(t, err)
	require.Len(t, libs, 1)

	var buf bytes.Buffer
	require.NoError(t, printLibraries(&buf, libs, a.cfg.Jellyfin.LibraryID))
	assert.Contains(t, buf.String(), "* "+fakeLibraryID)
}

func TestSetup_LoadsConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[jellyfin]
url = "http://jellyfin.local:8096/"
username = "alice"
password = "secret"
library_id = "none"

[scraper]
temp_dir = "`+filepath.ToSlash(dir)+`"

[log]
level = "warn"
`), 0o600))

	prev := configPath
	configPath = path
	t.Cleanup(func() { configPath = prev })

	cmd := movieCmd
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	a, err := setup(cmd)
	require.NoError(t, err)
	assert.Equal(t, "http://jellyfin.local:8096", a.cfg.Jellyfin.URL)
	assert.Empty(t, a.cfg.Jellyfin.LibraryID)
	assert.True(t, a.cfg.Scraper.FilterByName)
	assert.Equal(t, "http://jellyfin.local:8096", a.client.Session().BaseURL)
	assert.NotNil(t, a.scraper)
}

func TestSetup_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[jellyfin]\nurl = \"ftp://x\"\n"), 0o600))

	prev := configPath
	configPath = path
	t.Cleanup(func() { configPath = prev })

	_, err := setup(movieCmd)
	var cfgErr *config.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.NotEmpty(t, cfgErr.Errors)
}
