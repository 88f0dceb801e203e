package media

import (
	"path/filepath"
	"strings"

	"github.com/edupipe/edupipe/pkg/errors"
)

// Kind classifies a pipeline input by file extension.
type Kind string

const (
	KindVideo    Kind = "video"
	KindDocument Kind = "document"
)

var videoExtensions = map[string]bool{
	".mp4": true,
	".mov": true,
	".avi": true,
	".mkv": true,
}

// Detect classifies a path as video or document. Case-insensitive,
// no filesystem access.
func Detect(path string) (Kind, error) {
	ext := strings.ToLower(filepath.Ext(path))

	if videoExtensions[ext] {
		return KindVideo, nil
	}
	if ext == ".pdf" {
		return KindDocument, nil
	}

	return "", errors.UnsupportedFormat(ext)
}
