package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadReleaseFile(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "names.txt")
	content := `Movie.2024.1080p.BluRay.x264-GROUP.mkv
# This is a comment
/media/tv/Show.S01E02.720p.WEB-DL.mkv

  Spaced.Movie.2022.2160p.UHD.BluRay.x265-RELEASE
`
	require.NoError(t, os.WriteFile(testFile, []byte(content), 0o644))

	names, err := readReleaseFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Movie.2024.1080p.BluRay.x264-GROUP.mkv",
		"/media/tv/Show.S01E02.720p.WEB-DL.mkv",
		"Spaced.Movie.2022.2160p.UHD.BluRay.x265-RELEASE",
	}, names)
}

func TestReadReleaseFile_NotFound(t *testing.T) {
	_, err := readReleaseFile("/nonexistent/file.txt")
	assert.Error(t, err)
}

func TestReadReleaseFile_Empty(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(testFile, nil, 0o644))

	names, err := readReleaseFile(testFile)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestNewParseResult(t *testing.T) {
	r := newParseResult("/media/movies/Movie.Name.2020.1080p.BluRay.REMUX.AVC.TrueHD.Atmos.7.1-FGT.mkv")

	assert.Equal(t, "Movie.Name.2020.1080p.BluRay.REMUX.AVC.TrueHD.Atmos.7.1-FGT", r.FileName)
	assert.Equal(t, "Movie Name", r.Title)
	assert.Equal(t, 2020, r.Year)
	assert.Equal(t, "1080p", r.Resolution)
	assert.Equal(t, "bluray", r.Source)
	assert.Equal(t, "x264", r.Codec)
	assert.Equal(t, "Atmos", r.Audio)
	assert.Equal(t, "7.1", r.Channels)
	assert.True(t, r.IsRemux)
	assert.Equal(t, "FGT", r.Group)
	assert.Empty(t, r.HDR)
	assert.Equal(t, "1080p", r.Quality)
	assert.Equal(t, "BLURAY | REMUX | AVC | ATMOS | 7.1", r.ExtraInfo)
}

func TestParseResult_JSON(t *testing.T) {
	r := newParseResult("Home Video.mkv")

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, "Home Video", got["file_name"])
	assert.Equal(t, "SD", got["quality"])
	assert.Equal(t, "", got["extra_info"])
	assert.Equal(t, false, got["remux"])
	assert.NotContains(t, got, "hdr")
	assert.NotContains(t, got, "audio")
	assert.NotContains(t, got, "year")
}

func TestPrintParseResult(t *testing.T) {
	r := newParseResult("The.Office.US.S02E05.720p.WEB-DL.DDP5.1.H.264-NTb.mkv")

	var buf bytes.Buffer
	require.NoError(t, printParseResult(&buf, r))
	out := buf.String()

	assert.Contains(t, out, "The.Office.US.S02E05.720p.WEB-DL.DDP5.1.H.264-NTb\n")
	assert.Contains(t, out, "Title:      The Office US")
	assert.Contains(t, out, "Episode:    S02E05")
	assert.Contains(t, out, "Audio:      DD+ 5.1")
	assert.Contains(t, out, "Quality:    720p")
	assert.NotContains(t, out, "Year:")
	assert.NotContains(t, out, "Remux:")
}
