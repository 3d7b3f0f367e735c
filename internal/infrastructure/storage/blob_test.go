package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"

	"github.com/99minutos/user-service/internal/core/ports"
)

func TestImageStore_SaveAndDelete(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	store := NewImageStore(bucket)
	t.Cleanup(func() { _ = store.Close() })
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "image-1.png", "image/png", strings.NewReader("png-bytes")))

	got, err := bucket.ReadAll(ctx, "image-1.png")
	require.NoError(t, err)
	require.Equal(t, "png-bytes", string(got))

	attrs, err := bucket.Attributes(ctx, "image-1.png")
	require.NoError(t, err)
	require.Equal(t, "image/png", attrs.ContentType)

	require.NoError(t, store.Delete(ctx, "image-1.png"))
	exists, err := bucket.Exists(ctx, "image-1.png")
	require.NoError(t, err)
	require.False(t, exists)

	require.NoError(t, store.Delete(ctx, "image-1.png"), "deleting a missing image is not an error")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestImageStore_SaveReaderError(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	store := NewImageStore(bucket)
	t.Cleanup(func() { _ = store.Close() })
	ctx := context.Background()

	err := store.Save(ctx, "image-2.png", "image/png", failingReader{})
	require.Error(t, err)

	exists, err := bucket.Exists(ctx, "image-2.png")
	require.NoError(t, err)
	require.False(t, exists, "a failed write must not leave an object behind")
}

func TestOpenDir_WritesPlainFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images")

	store, err := OpenDir(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Save(context.Background(), "image-3.gif", "image/gif", strings.NewReader("GIF89a")))

	b, err := os.ReadFile(filepath.Join(dir, "image-3.gif"))
	require.NoError(t, err)
	require.Equal(t, "GIF89a", string(b))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no sidecar metadata files expected")
}

func TestImageStore_SaveNeverOverwrites(t *testing.T) {
	fileStore, err := OpenDir(t.TempDir())
	require.NoError(t, err)

	stores := map[string]*ImageStore{
		"memblob":  NewImageStore(memblob.OpenBucket(nil)),
		"fileblob": fileStore,
	}
	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			t.Cleanup(func() { _ = store.Close() })
			ctx := context.Background()

			require.NoError(t, store.Save(ctx, "image-4.png", "image/png", strings.NewReader("alice")))

			err := store.Save(ctx, "image-4.png", "image/png", strings.NewReader("bob"))
			require.ErrorIs(t, err, ports.ErrImageNameTaken)

			got, err := store.bucket.ReadAll(ctx, "image-4.png")
			require.NoError(t, err)
			require.Equal(t, "alice", string(got))
		})
	}
}
