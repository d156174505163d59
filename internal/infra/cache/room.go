package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"classroom-reservations/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

const (
	roomKeyPrefix = "room:"
	roomsListKey  = "rooms:all"
)

// RoomCache is a read-through cache in front of a room directory.
// A nil client turns it into a pass-through; Redis failures fall back to the source.
type RoomCache struct {
	source shared.RoomDirectory
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRoomCache(source shared.RoomDirectory, client redis.UniversalClient, ttl time.Duration) *RoomCache {
	return &RoomCache{
		source: source,
		client: client,
		ttl:    ttl,
	}
}

func (c *RoomCache) RoomExists(ctx context.Context, id int64) (bool, error) {
	r, err := c.GetRoom(ctx, id)
	if err != nil {
		return false, err
	}
	return r != nil, nil
}

func (c *RoomCache) GetRoom(ctx context.Context, id int64) (*shared.RoomSnapshot, error) {
	key := roomKeyPrefix + strconv.FormatInt(id, 10)

	var cached shared.RoomSnapshot
	if c.get(ctx, key, &cached) {
		return &cached, nil
	}

	r, err := c.source.GetRoom(ctx, id)
	if err != nil || r == nil {
		return r, err
	}
	c.set(ctx, key, r)
	return r, nil
}

func (c *RoomCache) ListRooms(ctx context.Context) ([]*shared.RoomSnapshot, error) {
	var cached []*shared.RoomSnapshot
	if c.get(ctx, roomsListKey, &cached) {
		return cached, nil
	}

	rooms, err := c.source.ListRooms(ctx)
	if err != nil {
		return nil, err
	}
	c.set(ctx, roomsListKey, rooms)
	return rooms, nil
}

func (c *RoomCache) get(ctx context.Context, key string, dst any) bool {
	if c.client == nil {
		return false
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("room cache read failed", "key", key, "error", err.Error())
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		slog.Warn("room cache entry is corrupt", "key", key, "error", err.Error())
		return false
	}
	return true
}

func (c *RoomCache) set(ctx context.Context, key string, v any) {
	if c.client == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		slog.Warn("room cache write failed", "key", key, "error", err.Error())
	}
}
