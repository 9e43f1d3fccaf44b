package storage

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"
)

// Extension is the lower-cased suffix of a supported Android package.
type Extension string

const (
	ExtensionAPK Extension = ".apk"
	ExtensionAAB Extension = ".aab"
)

const bytesPerMiB = 1024 * 1024

// SupportedExtensions is ordered; custom names are cleaned in this order.
var SupportedExtensions = []Extension{ExtensionAPK, ExtensionAAB}

// FileType is the upper-case name reported to clients, e.g. "APK".
func (e Extension) FileType() string {
	return strings.ToUpper(strings.TrimPrefix(string(e), "."))
}

func SupportedFormats() []string {
	formats := make([]string, 0, len(SupportedExtensions))
	for _, ext := range SupportedExtensions {
		formats = append(formats, ext.FileType())
	}
	return formats
}

func supportedList() string {
	exts := make([]string, 0, len(SupportedExtensions))
	for _, ext := range SupportedExtensions {
		exts = append(exts, string(ext))
	}
	return strings.Join(exts, ", ")
}

// HasSupportedSuffix is the cheap pre-check done on the raw upload filename.
func HasSupportedSuffix(filename string) bool {
	lower := strings.ToLower(filename)
	for _, ext := range SupportedExtensions {
		if strings.HasSuffix(lower, string(ext)) {
			return true
		}
	}
	return false
}

// ParseExtension validates filename and returns its package extension.
// A dot-file such as ".apk" has no extension.
func ParseExtension(filename string) (Extension, error) {
	base := filepath.Base(filename)
	ext := strings.ToLower(filepath.Ext(base))
	if ext == strings.ToLower(base) {
		ext = ""
	}

	for _, supported := range SupportedExtensions {
		if Extension(ext) == supported {
			return supported, nil
		}
	}

	return "", NewError(KindUnsupportedFileType,
		fmt.Sprintf("File must be an Android package (%s), got: %s", supportedList(), filename))
}

// ObjectKey builds "<prefix>/<name>". A custom name has every supported extension
// substring removed and the validated extension of the original file appended.
func ObjectKey(prefix, filename, customName string, ext Extension) string {
	if customName == "" {
		return prefix + "/" + filename
	}

	for _, supported := range SupportedExtensions {
		customName = strings.ReplaceAll(customName, string(supported), "")
	}
	return prefix + "/" + customName + string(ext)
}

// MiB converts a byte count to mebibytes without rounding.
func MiB(n int64) float64 {
	return float64(n) / bytesPerMiB
}

// SizeMB is MiB rounded to two decimals.
func SizeMB(n int64) float64 {
	return math.Round(MiB(n)*100) / 100
}

// CheckSize rejects payloads above maxSize first, then empty ones.
func CheckSize(size, maxSize int64) error {
	if size > maxSize {
		return NewError(KindFileTooLarge,
			fmt.Sprintf("File too large. Maximum size: %.2fMB, Got: %.2fMB", MiB(maxSize), MiB(size)))
	}
	if size == 0 {
		return NewError(KindEmptyFile, "Empty file uploaded")
	}
	return nil
}
