package release

import "strings"

// Quality labels reported by Classify.
const (
	Quality4K    = "4K"
	Quality1080p = "1080p"
	Quality720p  = "720p"
	QualitySD    = "SD"
	QualityCAM   = "CAM"
	QualitySCR   = "SCR"
	QualityTELE  = "TELE"
)

// DetailSeparator joins the tags returned by Classify.
const DetailSeparator = " | "

// Quality maps the parsed source and resolution to a quality label.
// Pre-release sources win over resolution: a 1080p CAM is still a CAM.
func (i *Info) Quality() string {
	switch i.Source {
	case SourceCAM:
		return QualityCAM
	case SourceScreener:
		return QualitySCR
	case SourceTelesync:
		return QualityTELE
	}
	switch i.Resolution {
	case Resolution2160p:
		return Quality4K
	case Resolution1080p:
		return Quality1080p
	case Resolution720p:
		return Quality720p
	default:
		return QualitySD
	}
}

// Details returns the upper-case tags describing the release, e.g.
// ["BLURAY", "REMUX", "HEVC", "HDR", "ATMOS", "7.1"].
func (i *Info) Details() []string {
	var tags []string

	switch i.Source {
	case SourceBluRay:
		tags = append(tags, "BLURAY")
	case SourceWEBDL:
		tags = append(tags, "WEB")
	case SourceWEBRip:
		tags = append(tags, "WEBRIP")
	case SourceHDTV:
		tags = append(tags, "HDTV")
	case SourceDVD:
		tags = append(tags, "DVD")
	}
	if i.IsRemux {
		tags = append(tags, "REMUX")
	}

	switch i.Codec {
	case CodecX265:
		tags = append(tags, "HEVC")
	case CodecX264:
		tags = append(tags, "AVC")
	case CodecAV1:
		tags = append(tags, "AV1")
	case CodecXviD:
		tags = append(tags, "XVID")
	}

	switch i.HDR {
	case DolbyVision:
		tags = append(tags, "DOLBY VISION")
	case HDRNone:
	default:
		tags = append(tags, "HDR")
	}
	if i.Is3D {
		tags = append(tags, "3D")
	}

	if a := i.Audio.String(); a != "" {
		tags = append(tags, strings.ToUpper(a))
	}
	if i.Channels != "" {
		tags = append(tags, i.Channels)
	}

	if i.Proper {
		tags = append(tags, "PROPER")
	}
	if i.Repack {
		tags = append(tags, "REPACK")
	}
	if i.Edition != "" {
		tags = append(tags, strings.ToUpper(i.Edition))
	}

	return tags
}

// Classify parses a file name and returns its quality label and the
// DetailSeparator-joined detail tags.
func Classify(name string) (quality, details string) {
	info := Parse(name)
	return info.Quality(), strings.Join(info.Details(), DetailSeparator)
}
