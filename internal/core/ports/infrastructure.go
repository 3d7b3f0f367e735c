package ports

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrImageNameTaken is returned by ImageStore.Save when an object with the
// requested name already exists. Existing objects are never overwritten.
var ErrImageNameTaken = errors.New("image name already taken")

// PasswordHasher converts plaintext passwords to storable digests. Hash
// returns domain.ErrPasswordTooLong for input the algorithm cannot digest.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// ImageStore persists image bytes under a flat file name. Save fails with
// ErrImageNameTaken instead of replacing an existing object.
type ImageStore interface {
	Save(ctx context.Context, name, contentType string, r io.Reader) error
	Delete(ctx context.Context, name string) error
}

// UploadLocker serialises uploads for the same account.
type UploadLocker interface {
	// Acquire reports false when another upload for email holds the lock.
	Acquire(ctx context.Context, email string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, email string) error
}
