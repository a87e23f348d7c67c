// Package release parses media file and release names: resolution, source,
// codec and HDR detection, title cleaning and fuzzy title matching.
package release

// Resolution represents the video resolution of a file.
type Resolution int

const (
	ResolutionUnknown Resolution = iota
	Resolution480p
	Resolution720p
	Resolution1080p
	Resolution2160p
)

// unknownStr is the string representation for unknown values.
const unknownStr = "unknown"

func (r Resolution) String() string {
	switch r {
	case Resolution480p:
		return "480p"
	case Resolution720p:
		return "720p"
	case Resolution1080p:
		return "1080p"
	case Resolution2160p:
		return "2160p"
	default:
		return unknownStr
	}
}

// Source represents where the video was captured or ripped from.
type Source int

const (
	SourceUnknown Source = iota
	SourceBluRay
	SourceWEBDL
	SourceWEBRip
	SourceHDTV
	SourceDVD
	SourceScreener
	SourceCAM
	SourceTelesync
)

func (s Source) String() string {
	switch s {
	case SourceBluRay:
		return "bluray"
	case SourceWEBDL:
		return "webdl"
	case SourceWEBRip:
		return "webrip"
	case SourceHDTV:
		return "hdtv"
	case SourceDVD:
		return "dvd"
	case SourceScreener:
		return "screener"
	case SourceCAM:
		return "cam"
	case SourceTelesync:
		return "telesync"
	default:
		return unknownStr
	}
}

// Codec represents the video codec.
type Codec int

const (
	CodecUnknown Codec = iota
	CodecX264
	CodecX265
	CodecAV1
	CodecXviD
)

func (c Codec) String() string {
	switch c {
	case CodecX264:
		return "x264"
	case CodecX265:
		return "x265"
	case CodecAV1:
		return "av1"
	case CodecXviD:
		return "xvid"
	default:
		return unknownStr
	}
}

// HDRFormat represents HDR/Dolby Vision formats.
type HDRFormat int

const (
	HDRNone    HDRFormat = iota
	HDRGeneric           // "HDR" without specific version
	HDR10
	HDR10Plus
	DolbyVision
	HLG
)

func (h HDRFormat) String() string {
	switch h {
	case HDRGeneric:
		return "HDR"
	case HDR10:
		return "HDR10"
	case HDR10Plus:
		return "HDR10+"
	case DolbyVision:
		return "DV"
	case HLG:
		return "HLG"
	default:
		return ""
	}
}

// AudioCodec represents the audio format.
type AudioCodec int

const (
	AudioUnknown AudioCodec = iota
	AudioAAC
	AudioAC3  // Dolby Digital
	AudioEAC3 // DD+, DDP
	AudioDTS
	AudioDTSHD // DTS-HD MA
	AudioTrueHD
	AudioAtmos // TrueHD Atmos or DD+ Atmos
	AudioFLAC
	AudioOpus
)

func (a AudioCodec) String() string {
	switch a {
	case AudioAAC:
		return "AAC"
	case AudioAC3:
		return "DD"
	case AudioEAC3:
		return "DD+"
	case AudioDTS:
		return "DTS"
	case AudioDTSHD:
		return "DTS-HD MA"
	case AudioTrueHD:
		return "TrueHD"
	case AudioAtmos:
		return "Atmos"
	case AudioFLAC:
		return "FLAC"
	case AudioOpus:
		return "Opus"
	default:
		return ""
	}
}

// Info contains information parsed from a file or release name.
type Info struct {
	Title      string
	Year       int
	Season     int
	Episode    int
	Resolution Resolution
	Source     Source
	Codec      Codec
	HDR        HDRFormat
	Audio      AudioCodec
	Channels   string // "5.1", "7.1", "2.0"
	IsRemux    bool
	Is3D       bool
	Proper     bool
	Repack     bool
	Edition    string // "Directors Cut", "Extended", "IMAX", etc.
	Group      string

	// Normalized title for matching
	CleanTitle string
}

// HasEpisode reports whether an SxxEyy marker was found.
func (i *Info) HasEpisode() bool {
	return i.Season > 0 || i.Episode > 0
}
