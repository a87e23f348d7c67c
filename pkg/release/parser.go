package release

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// separatorRegex matches the characters file names use between words.
	separatorRegex = regexp.MustCompile(`[\s._\-\[\]()]+`)

	yearRegex          = regexp.MustCompile(`^(19|20)\d{2}$`)
	seasonEpisodeRegex = regexp.MustCompile(`(?i)^s(\d{1,2})e(\d{1,3})$`)
	crossEpisodeRegex  = regexp.MustCompile(`(?i)^(\d{1,2})x(\d{2,3})$`)
	channelsRegex      = regexp.MustCompile(`(?:^|[^0-9])([2578]) ([01])\b`)
	groupRegex         = regexp.MustCompile(`-([A-Za-z0-9]{2,20})$`)
)

// markerTokens end the title part of a name.
var markerTokens = map[string]bool{
	"2160p": true, "4k": true, "1080p": true, "1080i": true, "720p": true,
	"576p": true, "480p": true, "bluray": true, "bdrip": true, "brrip": true, "bdremux": true,
	"webdl": true, "webrip": true, "hdtv": true, "pdtv": true, "dvdrip": true,
	"x264": true, "x265": true, "h264": true, "h265": true, "hevc": true,
	"hdcam": true, "camrip": true, "hdts": true, "dvdscr": true,
}

// weakMarkers are markers that are also ordinary words ("Charlotte's Web",
// "Cam", "Extended Family"). Inside the title they only end it when another
// marker follows.
var weakMarkers = map[string]bool{
	"web": true, "uhd": true, "dvd": true, "remux": true, "hdr": true, "cam": true,
	"ts": true, "telesync": true, "screener": true, "proper": true, "repack": true,
	"extended": true, "unrated": true, "imax": true,
}

func isMarker(field string) bool {
	lf := strings.ToLower(field)
	return markerTokens[lf] || weakMarkers[lf]
}

var editions = []struct {
	phrase string
	name   string
}{
	{"directors cut", "Directors Cut"},
	{"director s cut", "Directors Cut"},
	{"extended", "Extended"},
	{"unrated", "Unrated"},
	{"imax", "IMAX"},
	{"theatrical", "Theatrical"},
	{"remastered", "Remastered"},
	{"criterion", "Criterion"},
}

// Parse extracts information from a file or release name. Directory
// components and a trailing video extension are ignored. Quality markers are
// only read after the title, so a title word such as "Web" is not a source.
func Parse(name string) *Info {
	base := TrimVideoExt(baseName(name))
	fields := strings.Fields(separatorRegex.ReplaceAllString(base, " "))

	info := &Info{}
	end := parseTitle(fields, info)
	info.CleanTitle = CleanTitle(info.Title)

	tail := fields[end:]
	lower := strings.ToLower(strings.Join(tail, " "))
	tokens := make(map[string]bool, len(tail))
	for _, f := range tail {
		tokens[strings.ToLower(f)] = true
	}
	padded := " " + lower + " "

	info.Resolution = parseResolution(tokens)
	info.Source = parseSource(tokens, padded)
	info.Codec = parseCodec(tokens, padded)
	info.HDR = parseHDR(tokens, padded)
	info.Audio = parseAudio(tokens, padded)
	info.IsRemux = tokens["remux"] || tokens["bdremux"]
	info.Is3D = tokens["3d"] || tokens["hsbs"] || tokens["sbs"]
	info.Proper = tokens["proper"]
	info.Repack = tokens["repack"] || tokens["rerip"]

	if m := channelsRegex.FindStringSubmatch(lower); m != nil {
		info.Channels = m[1] + "." + m[2]
	}

	for _, e := range editions {
		if strings.Contains(padded, " "+e.phrase+" ") {
			info.Edition = e.name
			break
		}
	}

	if m := groupRegex.FindStringSubmatch(base); m != nil && hasQualityMarker(info) {
		info.Group = m[1]
	}

	return info
}

// parseTitle takes the words before the first year, episode marker or
// quality token as the title and returns the index where the title ends.
// The first word always belongs to the title.
func parseTitle(fields []string, info *Info) int {
	end := len(fields)
	for i, f := range fields {
		if i == 0 {
			continue
		}
		lf := strings.ToLower(f)

		if m := seasonEpisodeRegex.FindStringSubmatch(f); m != nil {
			info.Season, _ = strconv.Atoi(m[1])
			info.Episode, _ = strconv.Atoi(m[2])
			end = i
			break
		}
		if m := crossEpisodeRegex.FindStringSubmatch(f); m != nil {
			info.Season, _ = strconv.Atoi(m[1])
			info.Episode, _ = strconv.Atoi(m[2])
			end = i
			break
		}
		// A year is part of the title when another year follows it
		// ("Blade Runner 2049 2017") or when it is the first word ("1917").
		if yearRegex.MatchString(f) {
			if i+1 < len(fields) && yearRegex.MatchString(fields[i+1]) {
				continue
			}
			info.Year, _ = strconv.Atoi(f)
			end = i
			break
		}
		if markerTokens[lf] {
			end = i
			break
		}
		if weakMarkers[lf] && i+1 < len(fields) && isMarker(fields[i+1]) {
			end = i
			break
		}
	}

	info.Title = strings.Join(fields[:end], " ")

	// An episode marker may follow the year ("Show 2019 S01E02").
	if info.Season == 0 && info.Episode == 0 {
		for _, f := range fields[end:] {
			if m := seasonEpisodeRegex.FindStringSubmatch(f); m != nil {
				info.Season, _ = strconv.Atoi(m[1])
				info.Episode, _ = strconv.Atoi(m[2])
				break
			}
		}
	}
	return end
}

func parseResolution(tokens map[string]bool) Resolution {
	switch {
	case tokens["2160p"], tokens["4k"], tokens["uhd"]:
		return Resolution2160p
	case tokens["1080p"], tokens["1080i"]:
		return Resolution1080p
	case tokens["720p"]:
		return Resolution720p
	case tokens["576p"], tokens["480p"]:
		return Resolution480p
	default:
		return ResolutionUnknown
	}
}

func parseSource(tokens map[string]bool, padded string) Source {
	switch {
	case tokens["cam"], tokens["hdcam"], tokens["camrip"]:
		return SourceCAM
	case tokens["ts"], tokens["hdts"], tokens["telesync"], tokens["tc"], tokens["telecine"]:
		return SourceTelesync
	case tokens["scr"], tokens["dvdscr"], tokens["bdscr"], tokens["screener"], tokens["r5"]:
		return SourceScreener
	case tokens["bluray"], tokens["bdrip"], tokens["brrip"], tokens["bdremux"], strings.Contains(padded, " blu ray "):
		return SourceBluRay
	case tokens["webrip"], strings.Contains(padded, " web rip "):
		return SourceWEBRip
	case tokens["webdl"], tokens["web"], strings.Contains(padded, " web dl "):
		return SourceWEBDL
	case tokens["hdtv"], tokens["pdtv"]:
		return SourceHDTV
	case tokens["dvdrip"], tokens["dvd"], tokens["dvd5"], tokens["dvd9"], tokens["dvdr"]:
		return SourceDVD
	default:
		return SourceUnknown
	}
}

func parseCodec(tokens map[string]bool, padded string) Codec {
	switch {
	case tokens["x265"], tokens["h265"], tokens["hevc"], strings.Contains(padded, " h 265 "):
		return CodecX265
	case tokens["x264"], tokens["h264"], tokens["avc"], strings.Contains(padded, " h 264 "):
		return CodecX264
	case tokens["av1"]:
		return CodecAV1
	case tokens["xvid"], tokens["divx"]:
		return CodecXviD
	default:
		return CodecUnknown
	}
}

func parseHDR(tokens map[string]bool, padded string) HDRFormat {
	switch {
	case tokens["dv"], tokens["dovi"], tokens["dolbyvision"], strings.Contains(padded, " dolby vision "):
		return DolbyVision
	case tokens["hdr10+"], tokens["hdr10plus"]:
		return HDR10Plus
	case tokens["hdr10"]:
		return HDR10
	case tokens["hlg"]:
		return HLG
	case tokens["hdr"]:
		return HDRGeneric
	default:
		return HDRNone
	}
}

func parseAudio(tokens map[string]bool, padded string) AudioCodec {
	switch {
	case tokens["atmos"]:
		return AudioAtmos
	case tokens["truehd"]:
		return AudioTrueHD
	case tokens["dtshd"], strings.Contains(padded, " dts hd "), tokens["dtsma"], strings.Contains(padded, " dts x "):
		return AudioDTSHD
	case tokens["dts"]:
		return AudioDTS
	case hasTokenPrefix(tokens, "ddp"), hasTokenPrefix(tokens, "dd+"), tokens["eac3"]:
		return AudioEAC3
	case tokens["ac3"], tokens["dd"], hasTokenPrefix(tokens, "dd5"), hasTokenPrefix(tokens, "dd2"):
		return AudioAC3
	case hasTokenPrefix(tokens, "aac"):
		return AudioAAC
	case tokens["flac"]:
		return AudioFLAC
	case tokens["opus"]:
		return AudioOpus
	default:
		return AudioUnknown
	}
}

func hasTokenPrefix(tokens map[string]bool, prefix string) bool {
	for t := range tokens {
		if strings.HasPrefix(t, prefix) {
			return true
		}
	}
	return false
}

func hasQualityMarker(info *Info) bool {
	return info.Resolution != ResolutionUnknown || info.Source != SourceUnknown || info.Codec != CodecUnknown
}

// baseName returns the last path element of a Unix or Windows path.
func baseName(name string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		return name[i+1:]
	}
	return name
}
