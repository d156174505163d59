package queries

import (
	"context"

	"classroom-reservations/internal/pkg/errs"
	"classroom-reservations/internal/usecase/shared"
)

var ErrRoomNotFound = errs.Kind(errs.ErrRoomNotFound, "room not found")

type RoomQueries interface {
	ListRooms(ctx context.Context) ([]*RoomView, error)
	GetRoom(ctx context.Context, id int64) (*RoomView, error)
}

type roomQueriesImpl struct {
	rooms shared.RoomDirectory
}

func NewRoomQueries(rooms shared.RoomDirectory) RoomQueries {
	return &roomQueriesImpl{rooms: rooms}
}

func (q *roomQueriesImpl) ListRooms(ctx context.Context) ([]*RoomView, error) {
	rooms, err := q.rooms.ListRooms(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]*RoomView, len(rooms))
	for i, r := range rooms {
		views[i] = roomView(r)
	}
	return views, nil
}

func (q *roomQueriesImpl) GetRoom(ctx context.Context, id int64) (*RoomView, error) {
	r, err := q.rooms.GetRoom(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ErrRoomNotFound
	}
	return roomView(r), nil
}

func roomView(r *shared.RoomSnapshot) *RoomView {
	return &RoomView{
		ID:           r.ID,
		Number:       r.Number,
		Location:     r.Location,
		Capacity:     r.Capacity,
		Computers:    r.Computers,
		HasProjector: r.HasProjector,
		Status:       r.Status.String(),
	}
}
