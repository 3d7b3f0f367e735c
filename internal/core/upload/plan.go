// Package upload decides whether an incoming profile image is acceptable and
// what it is called on disk. Nothing here performs I/O.
package upload

import (
	"fmt"
	"mime"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// FieldName is the multipart field carrying the image. It also prefixes every
// generated file name.
const FieldName = "image"

// DefaultAllowed lists the accepted image kinds, matched against both the file
// extension and the subtype of the declared media type.
var DefaultAllowed = []string{"jpeg", "jpg", "png", "gif"}

// Decision is the outcome of Plan.
type Decision struct {
	Accepted bool
	// Filename is "<FieldName>-<epochMillis><ext>", set only when Accepted.
	Filename string
}

// Plan checks the original file name and declared media type against allowed
// and, when both match, names the file after the upload time. The extension
// keeps the caller's spelling.
func Plan(originalName, mediaType string, at time.Time, allowed []string) Decision {
	ext := filepath.Ext(originalName)
	if !slices.Contains(allowed, strings.ToLower(strings.TrimPrefix(ext, "."))) {
		return Decision{}
	}
	if !declaredTypeAllowed(mediaType, allowed) {
		return Decision{}
	}

	return Decision{
		Accepted: true,
		Filename: fmt.Sprintf("%s-%d%s", FieldName, at.UnixMilli(), ext),
	}
}

func declaredTypeAllowed(mediaType string, allowed []string) bool {
	mt, _, err := mime.ParseMediaType(mediaType)
	if err != nil {
		return false
	}
	kind, sub, ok := strings.Cut(mt, "/")
	return ok && kind == "image" && slices.Contains(allowed, sub)
}

// ContentAllowed sniffs the leading bytes of a file and reports whether they
// belong to one of the allowed image kinds, regardless of what the client
// declared.
func ContentAllowed(head []byte, allowed []string) bool {
	detected := mimetype.Detect(head)
	kind, sub, ok := strings.Cut(detected.String(), "/")
	return ok && kind == "image" && slices.Contains(allowed, sub)
}
