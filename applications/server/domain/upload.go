package domain

import (
	"path/filepath"
	"strings"
)

// UploadRequest holds one incoming file fully buffered in memory.
// It lives for the duration of a single request and is never written to disk.
type UploadRequest struct {
	Content  []byte
	Name     string
	MimeType string
	Size     int64
}

// Extension returns the lowercased extension of the original filename,
// including the leading dot, or "" when the name has none.
func (r UploadRequest) Extension() string {
	return strings.ToLower(filepath.Ext(r.Name))
}

// UploadResult is built only after the upstream returned a non-empty URL.
type UploadResult struct {
	URL       string
	Filename  string
	Size      int64
	MimeType  string
	Extension string
}

// FileInfo is the derived metadata of an upload, no relay involved.
type FileInfo struct {
	Name      string
	Size      int64
	MimeType  string
	Extension string
}
