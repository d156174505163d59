package queries

import (
	"time"

	"github.com/google/uuid"
)

// ReservationView is the read model shared by regular and exam reservations.
// Date, Subject and DeskGroup are only set for exams.
type ReservationView struct {
	ID          uuid.UUID  `json:"id"`
	Kind        string     `json:"kind"`
	RoomID      int64      `json:"roomId"`
	RoomNumber  string     `json:"roomNumber"`
	RequesterID uuid.UUID  `json:"requesterId"`
	ApproverID  *uuid.UUID `json:"approverId,omitempty"`
	DayOfWeek   int        `json:"dayOfWeek"`
	Date        *string    `json:"date,omitempty"`
	StartTime   string     `json:"startTime"`
	EndTime     string     `json:"endTime"`
	Status      string     `json:"status"`
	Notes       *string    `json:"notes,omitempty"`
	Subject     *string    `json:"subject,omitempty"`
	DeskGroup   *string    `json:"deskGroup,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type RoomView struct {
	ID           int64  `json:"id"`
	Number       string `json:"number"`
	Location     string `json:"location"`
	Capacity     int    `json:"capacity"`
	Computers    int    `json:"computers"`
	HasProjector bool   `json:"hasProjector"`
	Status       string `json:"status"`
}

type AvailabilityInput struct {
	RoomID    int64
	DayOfWeek int
	// Date switches the check to exam reservations on that day.
	Date      *string
	StartTime string
	EndTime   string
	ExcludeID *uuid.UUID
}

type AvailabilityView struct {
	Available bool               `json:"available"`
	Conflicts []*ReservationView `json:"conflicts"`
}
