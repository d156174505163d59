//go:build unit || e2e

package builder

import (
	reqdto "classroom-reservations/internal/handler/dto/request"
)

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		RoomID:    b.RoomID,
		DayOfWeek: b.DayOfWeek,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Notes:     b.Notes,
	}
}

func (b *ReservationBuilder) BuildEditRequestDTO() reqdto.EditReservationRequest {
	return reqdto.EditReservationRequest{
		DayOfWeek: b.DayOfWeek,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Notes:     b.Notes,
	}
}

func (b *ReservationBuilder) BuildBatchItemDTO() reqdto.BatchItemRequest {
	return reqdto.BatchItemRequest{
		DayOfWeek: b.DayOfWeek,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Notes:     b.Notes,
	}
}

// BuildBatchRequestDTO puts the receiver first, followed by the extra items.
func (b *ReservationBuilder) BuildBatchRequestDTO(more ...*ReservationBuilder) reqdto.CreateBatchRequest {
	items := []reqdto.BatchItemRequest{b.BuildBatchItemDTO()}
	for _, m := range more {
		items = append(items, m.BuildBatchItemDTO())
	}
	return reqdto.CreateBatchRequest{RoomID: b.RoomID, Reservations: items}
}

func (b *ReservationBuilder) BuildCreateExamRequestDTO() reqdto.CreateExamRequest {
	return reqdto.CreateExamRequest{
		RoomID:    b.RoomID,
		Date:      b.Date,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Subject:   b.Subject,
		DeskGroup: b.DeskGroup,
		Notes:     b.Notes,
	}
}

func (b *ReservationBuilder) BuildEditExamRequestDTO() reqdto.EditExamRequest {
	return reqdto.EditExamRequest{
		Date:      b.Date,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Subject:   b.Subject,
		DeskGroup: b.DeskGroup,
		Notes:     b.Notes,
	}
}
