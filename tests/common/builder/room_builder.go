//go:build unit || e2e

package builder

import (
	"classroom-reservations/internal/domain/room"
	sqlc "classroom-reservations/internal/infra/sqlc/generated"
	"classroom-reservations/internal/usecase/shared"
)

type RoomBuilder struct {
	ID           int64
	Number       string
	Location     string
	Capacity     int
	Computers    int
	HasProjector bool
	Status       room.Status
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:           1,
		Number:       "101",
		Location:     "Edificio A",
		Capacity:     30,
		Computers:    0,
		HasProjector: true,
		Status:       room.StatusAvailable,
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

func (b *RoomBuilder) BuildSnapshot() *shared.RoomSnapshot {
	return &shared.RoomSnapshot{
		ID:           b.ID,
		Number:       b.Number,
		Location:     b.Location,
		Capacity:     b.Capacity,
		Computers:    b.Computers,
		HasProjector: b.HasProjector,
		Status:       b.Status,
	}
}

func (b *RoomBuilder) BuildInfra() sqlc.Room {
	return sqlc.Room{
		ID:           b.ID,
		Number:       b.Number,
		Location:     b.Location,
		Capacity:     int32(b.Capacity),  // #nosec G115 -- test data
		Computers:    int32(b.Computers), // #nosec G115 -- test data
		HasProjector: b.HasProjector,
		Status:       b.Status.String(),
	}
}
