package shared

import (
	"context"
	"time"

	"classroom-reservations/internal/domain/reservation"
	sqlc "classroom-reservations/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in a read-committed transaction, retrying serialization failures and deadlocks.
	// Reads go through the read stores on the pool and need no unit of work.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Reservations(kind reservation.Kind) ReservationRepository
	Events() EventRepository
	Locks() SlotLocker
	DB() sqlc.DBTX
}

// ReservationRepository is implemented once per reservation kind.
type ReservationRepository interface {
	Create(ctx context.Context, db sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	FindByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	// FindApprovedOverlapping returns APPROVED rows overlapping q ordered by start time.
	FindApprovedOverlapping(ctx context.Context, db sqlc.DBTX, q reservation.SlotQuery) ([]*reservation.Reservation, error)
	FindPendingDuplicates(ctx context.Context, db sqlc.DBTX, requesterID uuid.UUID, q reservation.SlotQuery) ([]*reservation.Reservation, error)
	CountCreatedBetween(ctx context.Context, db sqlc.DBTX, requesterID uuid.UUID, from, to time.Time) (int64, error)
	Update(ctx context.Context, db sqlc.DBTX, res *reservation.Reservation) error
}

type EventRepository interface {
	Append(ctx context.Context, db sqlc.DBTX, ev ReservationEvent) error
	ClaimUnpublished(ctx context.Context, db sqlc.DBTX, limit int32) ([]PendingEvent, error)
	MarkPublished(ctx context.Context, db sqlc.DBTX, id uuid.UUID, at time.Time) error
}

// SlotLocker serialises writers contending for the same room and day, or the same requester quota.
// Locks are transaction scoped and released on commit or rollback.
type SlotLocker interface {
	LockSlot(ctx context.Context, db sqlc.DBTX, q reservation.SlotQuery) error
	LockRequester(ctx context.Context, db sqlc.DBTX, requesterID uuid.UUID) error
}

// RoomDirectory reports a missing room as (false, nil) or (nil, nil).
type RoomDirectory interface {
	RoomExists(ctx context.Context, id int64) (bool, error)
	GetRoom(ctx context.Context, id int64) (*RoomSnapshot, error)
	ListRooms(ctx context.Context) ([]*RoomSnapshot, error)
}
