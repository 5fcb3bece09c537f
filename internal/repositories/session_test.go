package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedisContainer(t *testing.T) *redis.Client {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	t.Cleanup(func() { client.Close() })

	require.NoError(t, client.Ping(ctx).Err())
	return client
}

func TestSessionRepository_SaveAndGet(t *testing.T) {
	client := setupRedisContainer(t)
	repo := NewSessionRepository(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "sess-1", 42))

	userID, found, err := repo.GetUserID(ctx, "sess-1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(42), userID)
}

func TestSessionRepository_GetMissing(t *testing.T) {
	client := setupRedisContainer(t)
	repo := NewSessionRepository(client, time.Minute)

	userID, found, err := repo.GetUserID(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Zero(t, userID)
}

func TestSessionRepository_DeleteIsIdempotent(t *testing.T) {
	client := setupRedisContainer(t)
	repo := NewSessionRepository(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "sess-2", 7))
	require.NoError(t, repo.Delete(ctx, "sess-2"))

	_, found, err := repo.GetUserID(ctx, "sess-2")
	require.NoError(t, err)
	assert.False(t, found)

	// a second delete of the same session is still fine
	require.NoError(t, repo.Delete(ctx, "sess-2"))
}

func TestSessionRepository_Expiry(t *testing.T) {
	client := setupRedisContainer(t)
	repo := NewSessionRepository(client, time.Second)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "sess-3", 9))

	time.Sleep(1500 * time.Millisecond)

	_, found, err := repo.GetUserID(ctx, "sess-3")
	require.NoError(t, err)
	assert.False(t, found)
}
