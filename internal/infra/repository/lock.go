package repository

import (
	"context"
	"hash/fnv"
	"strconv"

	"classroom-reservations/internal/domain/reservation"
	"classroom-reservations/internal/infra"
	sqlc "classroom-reservations/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type LockQueries interface {
	AcquireSlotLock(ctx context.Context, db sqlc.DBTX, lockKey int64) error
}

// AdvisoryLocker takes pg_advisory_xact_lock on keys derived from the slot day or the requester.
type AdvisoryLocker struct {
	queries LockQueries
}

func NewAdvisoryLocker(queries LockQueries) *AdvisoryLocker {
	return &AdvisoryLocker{queries: queries}
}

func (l *AdvisoryLocker) LockSlot(ctx context.Context, tx sqlc.DBTX, q reservation.SlotQuery) error {
	if err := l.queries.AcquireSlotLock(ctx, tx, SlotLockKey(q)); err != nil {
		return infra.WrapRepoErr("failed to acquire slot lock", err)
	}
	return nil
}

func (l *AdvisoryLocker) LockRequester(ctx context.Context, tx sqlc.DBTX, requesterID uuid.UUID) error {
	if err := l.queries.AcquireSlotLock(ctx, tx, hashKey("requester:"+requesterID.String())); err != nil {
		return infra.WrapRepoErr("failed to acquire requester lock", err)
	}
	return nil
}

// SlotLockKey is stable for every query that targets the same kind, room and day.
func SlotLockKey(q reservation.SlotQuery) int64 {
	day := "dow:" + strconv.Itoa(q.DayOfWeek.Int())
	if q.Kind == reservation.KindExam && q.Date != nil {
		day = "date:" + q.Date.Format(reservation.DateLayout)
	}
	return hashKey("slot:" + q.Kind.String() + ":" + strconv.FormatInt(q.RoomID, 10) + ":" + day)
}

func hashKey(s string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	// #nosec G115 -- any bit pattern is a valid advisory lock key
	return int64(h.Sum64())
}
