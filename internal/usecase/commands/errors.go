package commands

import (
	"fmt"
	"strings"

	"classroom-reservations/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMissingFields       = errs.Kind(errs.ErrValidation, "roomId, day or date, startTime and endTime are required")
	ErrEmptyBatch          = errs.Kind(errs.ErrValidation, "batch must contain at least one reservation")
	ErrRoomNotFound        = errs.Kind(errs.ErrRoomNotFound, "room not found")
	ErrReservationNotFound = errs.Kind(errs.ErrNotFound, "reservation not found")
	ErrQuotaExceeded       = errs.Kind(errs.ErrQuotaExceeded, "daily reservation limit reached")
	ErrDuplicatePending    = errs.Kind(errs.ErrDuplicatePending, "an identical reservation is already pending")
)

// ConflictSlot is an approved reservation that blocks a request.
type ConflictSlot struct {
	ID        uuid.UUID `json:"id"`
	DayOfWeek int       `json:"dayOfWeek"`
	Date      *string   `json:"date,omitempty"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
}

type ConflictError struct {
	RoomNumber string
	Conflicts  []ConflictSlot
	// OnApproval is set when the slot was taken after the request was created.
	OnApproval bool
}

func (e *ConflictError) Error() string {
	intervals := make([]string, len(e.Conflicts))
	for i, c := range e.Conflicts {
		intervals[i] = c.StartTime + " - " + c.EndTime
	}
	if e.OnApproval {
		return "conflict detected on approval: slot already taken at " + strings.Join(intervals, ", ")
	}
	return fmt.Sprintf("conflict: room %s is already reserved at %s", e.RoomNumber, strings.Join(intervals, ", "))
}

func (e *ConflictError) Is(target error) bool {
	return target == errs.ErrConflict
}

// BatchConflictError names the first two batch items (zero based) that overlap each other.
type BatchConflictError struct {
	First  int
	Second int
}

func (e *BatchConflictError) Error() string {
	return fmt.Sprintf("internal batch conflict: items %d and %d overlap", e.First, e.Second)
}

func (e *BatchConflictError) Is(target error) bool {
	return target == errs.ErrInternalBatchConflict
}
