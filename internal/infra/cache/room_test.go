//go:build unit

package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"classroom-reservations/internal/infra/cache"
	"classroom-reservations/internal/usecase/shared"
	"classroom-reservations/tests/common/builder"
	sharedmock "classroom-reservations/tests/mock/shared"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRoomCache_WithoutRedis(t *testing.T) {
	ctx := context.Background()

	t.Run("every read reaches the source", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := sharedmock.NewMockRoomDirectory(ctrl)
		room := builder.NewRoomBuilder().BuildSnapshot()
		source.EXPECT().GetRoom(ctx, int64(1)).Return(room, nil).Times(2)

		c := cache.NewRoomCache(source, nil, time.Minute)

		for range 2 {
			actual, err := c.GetRoom(ctx, 1)
			require.NoError(t, err)
			assert.Equal(t, room, actual)
		}
	})

	t.Run("missing room is reported as absent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := sharedmock.NewMockRoomDirectory(ctrl)
		source.EXPECT().GetRoom(ctx, int64(42)).Return(nil, nil)

		exists, err := cache.NewRoomCache(source, nil, time.Minute).RoomExists(ctx, 42)

		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("source errors are returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := sharedmock.NewMockRoomDirectory(ctrl)
		dbErr := errors.New("pool closed")
		source.EXPECT().ListRooms(ctx).Return(nil, dbErr)

		_, err := cache.NewRoomCache(source, nil, time.Minute).ListRooms(ctx)

		assert.ErrorIs(t, err, dbErr)
	})
}

func TestRoomCache_UnreachableRedis(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	source := sharedmock.NewMockRoomDirectory(ctrl)
	rooms := []*shared.RoomSnapshot{builder.NewRoomBuilder().BuildSnapshot()}
	source.EXPECT().ListRooms(ctx).Return(rooms, nil)

	// Nothing listens on this port; the cache degrades to the source.
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	actual, err := cache.NewRoomCache(source, client, time.Minute).ListRooms(ctx)

	require.NoError(t, err)
	assert.Equal(t, rooms, actual)
}
