package request

import (
	"strings"

	"classroom-reservations/internal/usecase/commands"
	"classroom-reservations/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	RoomID    int64   `json:"roomId" binding:"required,gt=0"`
	DayOfWeek int     `json:"dayOfWeek" binding:"required"`
	StartTime string  `json:"startTime" binding:"required"`
	EndTime   string  `json:"endTime" binding:"required"`
	Notes     *string `json:"notes,omitempty" binding:"omitempty,max=500"`
}

func (r CreateReservationRequest) ToInput() commands.CreateRegularInput {
	return commands.CreateRegularInput{
		RoomID:    r.RoomID,
		DayOfWeek: r.DayOfWeek,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Notes:     trimmed(r.Notes),
	}
}

type BatchItemRequest struct {
	DayOfWeek int     `json:"dayOfWeek" binding:"required"`
	StartTime string  `json:"startTime" binding:"required"`
	EndTime   string  `json:"endTime" binding:"required"`
	Notes     *string `json:"notes,omitempty" binding:"omitempty,max=500"`
}

type CreateBatchRequest struct {
	RoomID       int64              `json:"roomId" binding:"required,gt=0"`
	Reservations []BatchItemRequest `json:"reservations" binding:"required,dive"`
}

func (r CreateBatchRequest) ToInput() commands.CreateBatchInput {
	items := make([]commands.BatchItem, len(r.Reservations))
	for i, it := range r.Reservations {
		items[i] = commands.BatchItem{
			DayOfWeek: it.DayOfWeek,
			StartTime: it.StartTime,
			EndTime:   it.EndTime,
			Notes:     trimmed(it.Notes),
		}
	}
	return commands.CreateBatchInput{RoomID: r.RoomID, Items: items}
}

type EditReservationRequest struct {
	DayOfWeek int     `json:"dayOfWeek" binding:"required"`
	StartTime string  `json:"startTime" binding:"required"`
	EndTime   string  `json:"endTime" binding:"required"`
	Notes     *string `json:"notes,omitempty" binding:"omitempty,max=500"`
}

func (r EditReservationRequest) ToInput() commands.EditRegularInput {
	return commands.EditRegularInput{
		DayOfWeek: r.DayOfWeek,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Notes:     trimmed(r.Notes),
	}
}

type CreateExamRequest struct {
	RoomID    int64   `json:"roomId" binding:"required,gt=0"`
	Date      string  `json:"date" binding:"required"`
	StartTime string  `json:"startTime" binding:"required"`
	EndTime   string  `json:"endTime" binding:"required"`
	Subject   *string `json:"subject,omitempty" binding:"omitempty,max=200"`
	DeskGroup *string `json:"deskGroup,omitempty" binding:"omitempty,max=100"`
	Notes     *string `json:"notes,omitempty" binding:"omitempty,max=500"`
}

func (r CreateExamRequest) ToInput() commands.CreateExamInput {
	return commands.CreateExamInput{
		RoomID:    r.RoomID,
		Date:      r.Date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Subject:   trimmed(r.Subject),
		DeskGroup: trimmed(r.DeskGroup),
		Notes:     trimmed(r.Notes),
	}
}

type EditExamRequest struct {
	Date      string  `json:"date" binding:"required"`
	StartTime string  `json:"startTime" binding:"required"`
	EndTime   string  `json:"endTime" binding:"required"`
	Subject   *string `json:"subject,omitempty" binding:"omitempty,max=200"`
	DeskGroup *string `json:"deskGroup,omitempty" binding:"omitempty,max=100"`
	Notes     *string `json:"notes,omitempty" binding:"omitempty,max=500"`
}

func (r EditExamRequest) ToInput() commands.EditExamInput {
	return commands.EditExamInput{
		Date:      r.Date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Subject:   trimmed(r.Subject),
		DeskGroup: trimmed(r.DeskGroup),
		Notes:     trimmed(r.Notes),
	}
}

// RejectRequest is optional: an empty body rejects without a motive.
type RejectRequest struct {
	Motive *string `json:"motivo,omitempty" binding:"omitempty,max=500"`
}

func (r RejectRequest) GetMotive() *string {
	return trimmed(r.Motive)
}

type AvailabilityQuery struct {
	RoomID    int64   `form:"roomId" binding:"required,gt=0"`
	DayOfWeek int     `form:"dayOfWeek"`
	Date      *string `form:"date"`
	StartTime string  `form:"startTime" binding:"required"`
	EndTime   string  `form:"endTime" binding:"required"`
	ExcludeID *string `form:"excludeId" binding:"omitempty,uuid"`
}

func (q AvailabilityQuery) ToInput() queries.AvailabilityInput {
	in := queries.AvailabilityInput{
		RoomID:    q.RoomID,
		DayOfWeek: q.DayOfWeek,
		Date:      trimmed(q.Date),
		StartTime: q.StartTime,
		EndTime:   q.EndTime,
	}
	if q.ExcludeID != nil {
		if id, err := uuid.Parse(*q.ExcludeID); err == nil {
			in.ExcludeID = &id
		}
	}
	return in
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
