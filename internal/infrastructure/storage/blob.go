// Package storage persists uploaded images through gocloud.dev/blob. The
// service uses a fileblob bucket rooted at the public image directory so
// stored objects are plain files that can be served statically.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"

	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/gcerrors"

	"github.com/99minutos/user-service/internal/core/ports"
)

// ImageStore implements ports.ImageStore on a blob bucket.
type ImageStore struct {
	bucket *blob.Bucket
}

// NewImageStore wraps an already opened bucket.
func NewImageStore(bucket *blob.Bucket) *ImageStore {
	return &ImageStore{bucket: bucket}
}

// OpenDir opens a file-backed store writing directly into dir, creating it
// when missing. No sidecar metadata files are written next to the images.
func OpenDir(dir string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create image dir: %w", err)
	}

	bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{
		Metadata: fileblob.MetadataDontWrite,
	})
	if err != nil {
		return nil, fmt.Errorf("open image dir: %w", err)
	}
	return NewImageStore(bucket), nil
}

// Save streams r into a new object called name. An existing object is never
// replaced; Save fails with ports.ErrImageNameTaken instead.
func (s *ImageStore) Save(ctx context.Context, name, contentType string, r io.Reader) error {
	// Cancelling the writer context before Close aborts the write.
	wctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w, err := s.bucket.NewWriter(wctx, name, &blob.WriterOptions{
		ContentType: contentType,
		IfNotExist:  true,
	})
	if err != nil {
		return writeError("open writer", name, err)
	}
	if _, err := io.Copy(w, r); err != nil {
		cancel()
		_ = w.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return writeError("close", name, err)
	}
	return nil
}

// Depending on the driver the existence check fires when the writer is
// opened (fileblob) or when it is closed (memblob).
func writeError(op, name string, err error) error {
	if gcerrors.Code(err) == gcerrors.FailedPrecondition {
		return fmt.Errorf("%s %s: %w", op, name, ports.ErrImageNameTaken)
	}
	return fmt.Errorf("%s %s: %w", op, name, err)
}

// Delete removes name. Deleting a missing object is not an error.
func (s *ImageStore) Delete(ctx context.Context, name string) error {
	err := s.bucket.Delete(ctx, name)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return fmt.Errorf("delete %s: %w", name, err)
	}
	return nil
}

// Close releases the bucket.
func (s *ImageStore) Close() error {
	return s.bucket.Close()
}
