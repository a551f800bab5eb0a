package constants

import (
	"path/filepath"
	"strings"
)

// MIME type yang diterima untuk upload poster event.
var AllowedPosterTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
}

// MIME type yang diterima untuk upload video life bulletin.
var AllowedVideoTypes = map[string]struct{}{
	"video/mp4":       {},
	"video/webm":      {},
	"video/quicktime": {},
}

var posterExts = map[string]struct{}{".jpg": {}, ".jpeg": {}, ".png": {}, ".webp": {}}
var videoExts = map[string]struct{}{".mp4": {}, ".webm": {}, ".mov": {}}

// NormalizePosterExt mengembalikan ekstensi lowercase; fallback .jpg
// kalau ekstensi tidak dikenali.
func NormalizePosterExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := posterExts[ext]; !ok {
		return ".jpg"
	}
	return ext
}

// NormalizeVideoExt mengembalikan ekstensi lowercase; fallback .mp4.
func NormalizeVideoExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := videoExts[ext]; !ok {
		return ".mp4"
	}
	return ext
}
