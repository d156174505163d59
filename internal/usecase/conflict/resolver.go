// Package conflict answers whether a candidate slot collides with stored
// reservations or with its siblings in a batch. It never writes.
package conflict

import (
	"context"

	"classroom-reservations/internal/domain/reservation"
	sqlc "classroom-reservations/internal/infra/sqlc/generated"
	"classroom-reservations/internal/usecase/shared"

	"github.com/google/uuid"
)

// CheckOverlap returns the APPROVED reservations of the same kind that intersect q,
// ordered by start time. q.ExcludeID, when set, is left out.
func CheckOverlap(ctx context.Context, db sqlc.DBTX, store shared.ReservationRepository, q reservation.SlotQuery) ([]*reservation.Reservation, error) {
	return store.FindApprovedOverlapping(ctx, db, q)
}

// CheckDuplicate reports whether requesterID already has a PENDING reservation for the identical slot.
func CheckDuplicate(ctx context.Context, db sqlc.DBTX, store shared.ReservationRepository, requesterID uuid.UUID, q reservation.SlotQuery) (bool, error) {
	dups, err := store.FindPendingDuplicates(ctx, db, requesterID, q)
	if err != nil {
		return false, err
	}
	return len(dups) > 0, nil
}

// FindBatchConflict returns the first pair of items that share a day and overlap.
func FindBatchConflict(items []reservation.SlotQuery) (int, int, bool) {
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if items[i].SameDay(items[j]) && items[i].Slot.Overlaps(items[j].Slot) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}
