package constants

import (
	"path/filepath"
	"strings"
)

// AssetKind tells the browser how to show a question file.
type AssetKind string

const (
	AssetImage   AssetKind = "image"
	AssetPDF     AssetKind = "pdf"
	AssetAudio   AssetKind = "audio"
	AssetUnknown AssetKind = "unknown"
)

func DetectAssetKind(filename string) AssetKind {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".jpg", ".jpeg", ".webp", ".gif", ".svg":
		return AssetImage
	case ".pdf":
		return AssetPDF
	case ".mp3", ".wav":
		return AssetAudio
	default:
		return AssetUnknown
	}
}
