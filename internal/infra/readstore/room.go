package readstore

import (
	"context"

	"classroom-reservations/internal/domain/room"
	"classroom-reservations/internal/infra"
	sqlc "classroom-reservations/internal/infra/sqlc/generated"
	"classroom-reservations/internal/pkg/pgconv"
	"classroom-reservations/internal/usecase/shared"
)

type RoomReadQueries interface {
	GetRoomByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Room, error)
	ListRooms(ctx context.Context, db sqlc.DBTX) ([]sqlc.Room, error)
	RoomExists(ctx context.Context, db sqlc.DBTX, id int64) (bool, error)
}

// RoomReadStore is the Postgres-backed room directory.
type RoomReadStore struct {
	queries RoomReadQueries
	db      sqlc.DBTX
}

func NewRoomReadStore(queries RoomReadQueries, db sqlc.DBTX) *RoomReadStore {
	return &RoomReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RoomReadStore) RoomExists(ctx context.Context, id int64) (bool, error) {
	ok, err := r.queries.RoomExists(ctx, r.db, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check room existence", err)
	}
	return ok, nil
}

func (r *RoomReadStore) GetRoom(ctx context.Context, id int64) (*shared.RoomSnapshot, error) {
	row, err := r.queries.GetRoomByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}
	return toRoomSnapshot(row), nil
}

func (r *RoomReadStore) ListRooms(ctx context.Context) ([]*shared.RoomSnapshot, error) {
	rows, err := r.queries.ListRooms(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	result := make([]*shared.RoomSnapshot, len(rows))
	for i, row := range rows {
		result[i] = toRoomSnapshot(row)
	}
	return result, nil
}

func toRoomSnapshot(row sqlc.Room) *shared.RoomSnapshot {
	return &shared.RoomSnapshot{
		ID:           row.ID,
		Number:       row.Number,
		Location:     row.Location,
		Capacity:     int(row.Capacity),
		Computers:    int(row.Computers),
		HasProjector: row.HasProjector,
		Status:       room.Status(row.Status),
	}
}
