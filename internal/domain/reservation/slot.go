package reservation

import (
	"time"

	"github.com/google/uuid"
)

// SlotQuery identifies a candidate slot for overlap and duplicate lookups.
// Regular reservations compare on DayOfWeek; exam reservations on the exact Date.
type SlotQuery struct {
	Kind      Kind
	RoomID    int64
	DayOfWeek DayOfWeek
	Date      *time.Time
	Slot      TimeSlot
	ExcludeID *uuid.UUID
}

// SameDay reports whether two queries target the same effective day.
func (q SlotQuery) SameDay(other SlotQuery) bool {
	if q.Kind != other.Kind || q.RoomID != other.RoomID {
		return false
	}
	if q.Kind == KindExam {
		return q.Date != nil && other.Date != nil && q.Date.Equal(*other.Date)
	}
	return q.DayOfWeek == other.DayOfWeek
}

func (q SlotQuery) WithoutExclusion() SlotQuery {
	q.ExcludeID = nil
	return q
}
