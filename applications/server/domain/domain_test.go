package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{size: 0, want: "0 B"},
		{size: 512, want: "512 B"},
		{size: 2048, want: "2.00 KB"},
		{size: 2097152, want: "2.00 MB"},
		{size: 110100480, want: "105.00 MB"},
		{size: 3 << 30, want: "3.00 GB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatSize(tt.size))
	}
}

func TestUploadRequestExtension(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "clip.mp4", want: ".mp4"},
		{name: "CLIP.MP4", want: ".mp4"},
		{name: "archive.tar.gz", want: ".gz"},
		{name: "noext", want: ""},
		{name: "", want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, UploadRequest{Name: tt.name}.Extension())
	}
}

func TestDefaultPolicyAllowed(t *testing.T) {
	p := DefaultPolicy()

	assert.True(t, p.Allowed("image/gif"))
	assert.True(t, p.Allowed("video/webm"))
	assert.False(t, p.Allowed("image/png"))
	assert.False(t, p.Allowed(""))
	assert.Equal(t, int64(100*1024*1024), p.MaxSizeBytes)
}

func TestErrTooLargeMessage(t *testing.T) {
	err := ErrTooLarge(110100480, MaxUploadBytes)

	assert.Equal(t, KindPayloadTooLarge, err.Kind)
	assert.Equal(t, "File too large: 105.00 MB. Maximum file size is 100 MB", err.Message)
}

func TestErrorUnwrap(t *testing.T) {
	cause := assert.AnError
	err := Wrap(KindUpstream, "upload request failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "upload request failed")
	assert.Contains(t, err.Error(), cause.Error())
}
