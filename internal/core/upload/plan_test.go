package upload

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var (
	pngHeader  = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")
	gifHeader  = []byte("GIF89a\x01\x00\x01\x00\x80\x00\x00")
	jpegHeader = []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00\x01\x01\x00\x00\x01\x00\x01\x00\x00")
)

func TestPlan_Accepts(t *testing.T) {
	at := time.UnixMilli(1700000000123)

	tests := []struct {
		name      string
		original  string
		mediaType string
		want      string
	}{
		{"png", "avatar.png", "image/png", "image-1700000000123.png"},
		{"jpg declared as jpeg", "me.jpg", "image/jpeg", "image-1700000000123.jpg"},
		{"jpeg", "me.jpeg", "image/jpeg", "image-1700000000123.jpeg"},
		{"gif", "anim.gif", "image/gif", "image-1700000000123.gif"},
		{"upper-case extension kept", "PHOTO.PNG", "image/png", "image-1700000000123.PNG"},
		{"media type parameters ignored", "a.png", "image/png; charset=binary", "image-1700000000123.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Plan(tt.original, tt.mediaType, at, DefaultAllowed)
			assert.True(t, d.Accepted)
			assert.Equal(t, tt.want, d.Filename)
		})
	}
}

func TestPlan_Rejects(t *testing.T) {
	at := time.Now()

	tests := []struct {
		name      string
		original  string
		mediaType string
	}{
		{"no extension", "avatar", "image/png"},
		{"wrong extension", "avatar.bmp", "image/png"},
		{"wrong media type", "avatar.png", "image/bmp"},
		{"not an image", "avatar.png", "application/octet-stream"},
		{"empty media type", "avatar.png", ""},
		{"pdf", "doc.pdf", "application/pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Plan(tt.original, tt.mediaType, at, DefaultAllowed)
			assert.False(t, d.Accepted)
			assert.Empty(t, d.Filename)
		})
	}
}

func TestContentAllowed(t *testing.T) {
	assert.True(t, ContentAllowed(pngHeader, DefaultAllowed))
	assert.True(t, ContentAllowed(gifHeader, DefaultAllowed))
	assert.True(t, ContentAllowed(jpegHeader, DefaultAllowed))
	assert.False(t, ContentAllowed([]byte("plain text pretending to be an image"), DefaultAllowed))
	assert.False(t, ContentAllowed([]byte("%PDF-1.7\n"), DefaultAllowed))
	assert.False(t, ContentAllowed(pngHeader, []string{"gif"}))
}
