// Package jellyfin provides a client for the Jellyfin (and Emby) REST API.
package jellyfin

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Session holds the connection and authentication state of one client.
// Token and UserID are populated by a successful Authenticate and never cleared.
type Session struct {
	BaseURL   string
	Username  string
	Password  string
	Token     string
	UserID    string
	LibraryID string // "" searches every library the user can see
}

// Scalar is the string form of a JSON scalar whose type varies between
// servers (ProductionYear may arrive as 2020 or "2020"). null and absent
// fields decode to "".
type Scalar string

// UnmarshalJSON implements json.Unmarshaler.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")):
		*s = ""
	case data[0] == '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = Scalar(v)
	default:
		*s = Scalar(data)
	}
	return nil
}

// IntScalar returns the Scalar form of n.
func IntScalar(n int) Scalar {
	return Scalar(strconv.Itoa(n))
}

// String returns the scalar text.
func (s Scalar) String() string {
	return string(s)
}

// Equal reports whether two scalars have the same string form.
func (s Scalar) Equal(other string) bool {
	return string(s) == other
}

// Int returns the scalar as an integer, or false if it is not one.
func (s Scalar) Int() (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(string(s)))
	if err != nil {
		return 0, false
	}
	return n, true
}

// bytesPerGB is the divisor used for size labels (GiB, reported as GB).
const bytesPerGB = 1 << 30

// GB converts a byte count to gigabytes rounded to two decimals.
// Values that are not numeric report 0.
func (s Scalar) GB() float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(string(s)), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return math.Round(n/bytesPerGB*100) / 100
}

// Library is a top-level user view such as "Movies" or "Shows".
type Library struct {
	ID             string `json:"Id"`
	Name           string `json:"Name"`
	CollectionType string `json:"CollectionType,omitempty"`
}

// MediaStream is one audio, video or subtitle stream of a media source.
type MediaStream struct {
	Index                int    `json:"Index"`
	Type                 string `json:"Type"` // Video, Audio, Subtitle
	Codec                string `json:"Codec,omitempty"`
	Language             string `json:"Language,omitempty"`
	DisplayTitle         string `json:"DisplayTitle,omitempty"`
	IsExternal           bool   `json:"IsExternal"`
	IsTextSubtitleStream bool   `json:"IsTextSubtitleStream"`
}

// IsSubtitle reports whether the stream carries subtitles.
func (m MediaStream) IsSubtitle() bool {
	return strings.EqualFold(m.Type, "Subtitle")
}

// MediaSource is a physical file or stream backing a catalog item.
type MediaSource struct {
	ID           string        `json:"Id"`
	Path         string        `json:"Path,omitempty"`
	Container    string        `json:"Container,omitempty"`
	Size         Scalar        `json:"Size"`
	MediaStreams []MediaStream `json:"MediaStreams,omitempty"`
}

// Item is a catalog entry: a movie, series or episode.
type Item struct {
	ID                string        `json:"Id"`
	Name              string        `json:"Name"`
	Type              string        `json:"Type,omitempty"`
	Path              string        `json:"Path,omitempty"`
	SeriesName        string        `json:"SeriesName,omitempty"`
	ProductionYear    Scalar        `json:"ProductionYear"`
	IndexNumber       Scalar        `json:"IndexNumber"`
	ParentIndexNumber Scalar        `json:"ParentIndexNumber"`
	MediaSources      []MediaSource `json:"MediaSources,omitempty"`
	MediaStreams      []MediaStream `json:"MediaStreams,omitempty"`
}

// FilePath returns the path of the first media source, falling back to the
// item's own path.
func (i Item) FilePath() string {
	if len(i.MediaSources) > 0 && i.MediaSources[0].Path != "" {
		return i.MediaSources[0].Path
	}
	return i.Path
}

// Size returns the byte count of the first media source, or "" if there is none.
func (i Item) Size() Scalar {
	if len(i.MediaSources) == 0 {
		return ""
	}
	return i.MediaSources[0].Size
}

// authRequest is the AuthenticateByName request body.
type authRequest struct {
	Username string `json:"Username"`
	Pw       string `json:"Pw"`
}

// authResponse is the AuthenticateByName response.
type authResponse struct {
	AccessToken string `json:"AccessToken"`
	User        struct {
		ID   string `json:"Id"`
		Name string `json:"Name"`
	} `json:"User"`
}

// itemsResponse is the envelope used by the Items, Views and Episodes endpoints.
type itemsResponse struct {
	Items            []Item `json:"Items"`
	TotalRecordCount int    `json:"TotalRecordCount"`
}

// viewsResponse is the Views endpoint response.
type viewsResponse struct {
	Items []Library `json:"Items"`
}
