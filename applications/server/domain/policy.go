package domain

// MaxUploadBytes is the hard cap on a single upload.
const MaxUploadBytes = 100 * 1024 * 1024 // 100 MiB

// ValidationPolicy is built once at startup and shared read-only by handlers.
type ValidationPolicy struct {
	AllowedMimeTypes []string
	MaxSizeBytes     int64
}

func DefaultPolicy() ValidationPolicy {
	return ValidationPolicy{
		AllowedMimeTypes: []string{"image/gif", "image/webp", "video/mp4", "video/webm"},
		MaxSizeBytes:     MaxUploadBytes,
	}
}

func (p ValidationPolicy) Allowed(mimeType string) bool {
	for _, m := range p.AllowedMimeTypes {
		if m == mimeType {
			return true
		}
	}

	return false
}
