package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// UploadLock serialises image uploads per account using SET NX.
// Key format: upload-lock:<email>
type UploadLock struct {
	client *redis.Client
}

// NewUploadLock creates an UploadLock wrapping the given Redis client.
func NewUploadLock(client *redis.Client) *UploadLock {
	return &UploadLock{client: client}
}

// Acquire takes the lock for email. It expires after ttl so a crashed request
// cannot block the account forever.
func (l *UploadLock) Acquire(ctx context.Context, email string, ttl time.Duration) (bool, error) {
	ok, err := l.client.SetNX(ctx, l.key(email), "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("upload lock: %w", err)
	}
	return ok, nil
}

// Release drops the lock for email.
func (l *UploadLock) Release(ctx context.Context, email string) error {
	if err := l.client.Del(ctx, l.key(email)).Err(); err != nil {
		return fmt.Errorf("upload unlock: %w", err)
	}
	return nil
}

func (l *UploadLock) key(email string) string {
	return "upload-lock:" + email
}
