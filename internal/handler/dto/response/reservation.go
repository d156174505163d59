package response

import (
	"time"

	"classroom-reservations/internal/usecase/commands"
	"classroom-reservations/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
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

type TransitionResponse struct {
	ID     uuid.UUID `json:"id"`
	Kind   string    `json:"kind"`
	Status string    `json:"status"`
}

type AvailabilityResponse struct {
	Available bool                   `json:"available"`
	Conflicts []*ReservationResponse `json:"conflicts"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	res := &ReservationResponse{}
	if err := copier.Copy(res, v); err != nil {
		panic("FromReservationView: " + err.Error())
	}
	return res
}

func FromReservationViews(vs []*queries.ReservationView) []*ReservationResponse {
	res := make([]*ReservationResponse, len(vs))
	for i, v := range vs {
		res[i] = FromReservationView(v)
	}
	return res
}

func FromResult(r *commands.Result) *TransitionResponse {
	return &TransitionResponse{
		ID:     r.ID,
		Kind:   r.Kind.String(),
		Status: r.Status.String(),
	}
}

func FromAvailability(v *queries.AvailabilityView) *AvailabilityResponse {
	return &AvailabilityResponse{
		Available: v.Available,
		Conflicts: FromReservationViews(v.Conflicts),
	}
}
