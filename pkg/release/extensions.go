package release

import (
	"path/filepath"
	"slices"
	"strings"
)

// VideoExtensions lists the container extensions treated as video files.
var VideoExtensions = []string{
	".mkv", ".mp4", ".m4v", ".avi", ".mov", ".wmv", ".mpg", ".mpeg",
	".ts", ".m2ts", ".webm", ".flv", ".iso", ".vob", ".divx", ".ogm", ".strm",
}

// IsVideoFile reports whether name ends in a known video extension.
func IsVideoFile(name string) bool {
	return slices.Contains(VideoExtensions, strings.ToLower(filepath.Ext(name)))
}

// TrimVideoExt removes a trailing video extension. Other extensions are kept,
// so "Mr.Robot.S01E01" is not cut at ".S01E01".
func TrimVideoExt(name string) string {
	if IsVideoFile(name) {
		return name[:len(name)-len(filepath.Ext(name))]
	}
	return name
}
