package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func newTestLock(t *testing.T) *UploadLock {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping Redis integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	endpoint, err := container.PortEndpoint(ctx, "6379/tcp", "")
	require.NoError(t, err)

	client, err := Connect(ctx, Config{Addr: endpoint})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return NewUploadLock(client)
}

func TestUploadLock_AcquireRelease(t *testing.T) {
	lock := newTestLock(t)
	ctx := context.Background()

	ok, err := lock.Acquire(ctx, "alice@example.com", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = lock.Acquire(ctx, "alice@example.com", time.Minute)
	require.NoError(t, err)
	require.False(t, ok, "second acquire must fail while the lock is held")

	ok, err = lock.Acquire(ctx, "bob@example.com", time.Minute)
	require.NoError(t, err)
	require.True(t, ok, "locks are per account")

	require.NoError(t, lock.Release(ctx, "alice@example.com"))

	ok, err = lock.Acquire(ctx, "alice@example.com", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestUploadLock_Expires(t *testing.T) {
	lock := newTestLock(t)
	ctx := context.Background()

	ok, err := lock.Acquire(ctx, "alice@example.com", 100*time.Millisecond)
	require.NoError(t, err)
	require.True(t, ok)

	require.Eventually(t, func() bool {
		ok, err := lock.Acquire(ctx, "alice@example.com", time.Minute)
		return err == nil && ok
	}, 5*time.Second, 50*time.Millisecond)
}

func TestUploadLock_Key(t *testing.T) {
	require.Equal(t, "upload-lock:alice@example.com", (&UploadLock{}).key("alice@example.com"))
}
