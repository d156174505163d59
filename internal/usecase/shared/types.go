package shared

import (
	"time"

	"classroom-reservations/internal/domain/reservation"
	"classroom-reservations/internal/domain/room"

	"github.com/google/uuid"
)

// RoomSnapshot is the room data the engine and the room endpoints need.
type RoomSnapshot struct {
	ID           int64       `json:"id"`
	Number       string      `json:"number"`
	Location     string      `json:"location"`
	Capacity     int         `json:"capacity"`
	Computers    int         `json:"computers"`
	HasProjector bool        `json:"has_projector"`
	Status       room.Status `json:"status"`
}

type EventType string

const (
	EventCreated  EventType = "reservation.created"
	EventApproved EventType = "reservation.approved"
	EventRejected EventType = "reservation.rejected"
	EventCanceled EventType = "reservation.canceled"
	EventReleased EventType = "reservation.released"
	EventEdited   EventType = "reservation.edited"
)

// ReservationEvent is written to the outbox in the same transaction as the change it describes.
type ReservationEvent struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	Kind          reservation.Kind
	Type          EventType
	OccurredAt    time.Time
	Payload       EventPayload
}

type EventPayload struct {
	ReservationID uuid.UUID  `json:"reservation_id"`
	Kind          string     `json:"kind"`
	RoomID        int64      `json:"room_id"`
	RequesterID   uuid.UUID  `json:"requester_id"`
	ApproverID    *uuid.UUID `json:"approver_id,omitempty"`
	ActorID       *uuid.UUID `json:"actor_id,omitempty"`
	DayOfWeek     int        `json:"day_of_week"`
	Date          *string    `json:"date,omitempty"`
	StartTime     string     `json:"start_time"`
	EndTime       string     `json:"end_time"`
	Status        string     `json:"status"`
	Notes         *string    `json:"notes,omitempty"`
}

// PendingEvent is an outbox row claimed by the relay.
type PendingEvent struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	Kind          string
	Type          string
	Payload       []byte
	CreatedAt     time.Time
}
