package converter

import (
	"classroom-reservations/internal/domain/reservation"
	sqlc "classroom-reservations/internal/infra/sqlc/generated"
	"classroom-reservations/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func RegularFromRow(row sqlc.Reservation) *reservation.Reservation {
	return reservation.Reconstruct(reservation.ReconstructParams{
		ID:          row.ID,
		Kind:        reservation.KindRegular,
		RoomID:      row.RoomID,
		RequesterID: row.RequesterID,
		ApproverID:  pgconv.UUIDPtrFromPgtype(row.ApproverID),
		DayOfWeek:   reservation.DayOfWeek(row.DayOfWeek),
		Slot:        slotFromPgtime(row.StartTime, row.EndTime),
		Status:      reservation.Status(row.Status),
		Notes:       pgconv.StringPtrFromPgtype(row.Notes),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	})
}

func ExamFromRow(row sqlc.ExamReservation) *reservation.Reservation {
	return reservation.Reconstruct(reservation.ReconstructParams{
		ID:          row.ID,
		Kind:        reservation.KindExam,
		RoomID:      row.RoomID,
		RequesterID: row.RequesterID,
		ApproverID:  pgconv.UUIDPtrFromPgtype(row.ApproverID),
		DayOfWeek:   reservation.DayOfWeek(row.DayOfWeek),
		Date:        pgconv.DatePtrFromPgtype(row.ExamDate),
		Slot:        slotFromPgtime(row.StartTime, row.EndTime),
		Status:      reservation.Status(row.Status),
		Notes:       pgconv.StringPtrFromPgtype(row.Notes),
		Subject:     pgconv.StringPtrFromPgtype(row.Subject),
		DeskGroup:   pgconv.StringPtrFromPgtype(row.DeskGroup),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	})
}

func RegularToCreateParams(res *reservation.Reservation) sqlc.CreateReservationParams {
	return sqlc.CreateReservationParams{
		ID:          res.ID(),
		RoomID:      res.RoomID(),
		RequesterID: res.RequesterID(),
		DayOfWeek:   dayToInt16(res.DayOfWeek()),
		StartTime:   pgconv.SecondsToPgtime(res.Slot().Start().Seconds()),
		EndTime:     pgconv.SecondsToPgtime(res.Slot().End().Seconds()),
		Status:      res.Status().String(),
		Notes:       pgconv.StringPtrToPgtype(res.Notes()),
		CreatedAt:   pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func RegularToUpdateParams(res *reservation.Reservation) sqlc.UpdateReservationParams {
	return sqlc.UpdateReservationParams{
		ID:         res.ID(),
		DayOfWeek:  dayToInt16(res.DayOfWeek()),
		StartTime:  pgconv.SecondsToPgtime(res.Slot().Start().Seconds()),
		EndTime:    pgconv.SecondsToPgtime(res.Slot().End().Seconds()),
		Status:     res.Status().String(),
		ApproverID: pgconv.UUIDPtrToPgtype(res.ApproverID()),
		Notes:      pgconv.StringPtrToPgtype(res.Notes()),
		UpdatedAt:  pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ExamToCreateParams(res *reservation.Reservation) sqlc.CreateExamReservationParams {
	return sqlc.CreateExamReservationParams{
		ID:          res.ID(),
		RoomID:      res.RoomID(),
		RequesterID: res.RequesterID(),
		ExamDate:    examDate(res),
		DayOfWeek:   dayToInt16(res.DayOfWeek()),
		StartTime:   pgconv.SecondsToPgtime(res.Slot().Start().Seconds()),
		EndTime:     pgconv.SecondsToPgtime(res.Slot().End().Seconds()),
		Status:      res.Status().String(),
		Subject:     pgconv.StringPtrToPgtype(res.Subject()),
		DeskGroup:   pgconv.StringPtrToPgtype(res.DeskGroup()),
		Notes:       pgconv.StringPtrToPgtype(res.Notes()),
		CreatedAt:   pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ExamToUpdateParams(res *reservation.Reservation) sqlc.UpdateExamReservationParams {
	return sqlc.UpdateExamReservationParams{
		ID:         res.ID(),
		ExamDate:   examDate(res),
		DayOfWeek:  dayToInt16(res.DayOfWeek()),
		StartTime:  pgconv.SecondsToPgtime(res.Slot().Start().Seconds()),
		EndTime:    pgconv.SecondsToPgtime(res.Slot().End().Seconds()),
		Status:     res.Status().String(),
		ApproverID: pgconv.UUIDPtrToPgtype(res.ApproverID()),
		Subject:    pgconv.StringPtrToPgtype(res.Subject()),
		DeskGroup:  pgconv.StringPtrToPgtype(res.DeskGroup()),
		Notes:      pgconv.StringPtrToPgtype(res.Notes()),
		UpdatedAt:  pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func slotFromPgtime(start, end pgtype.Time) reservation.TimeSlot {
	return reservation.ReconstructTimeSlot(pgconv.SecondsFromPgtime(start), pgconv.SecondsFromPgtime(end))
}

func examDate(res *reservation.Reservation) pgtype.Date {
	if res.Date() == nil {
		return pgtype.Date{Valid: false}
	}
	return pgconv.DateToPgtype(*res.Date())
}

func dayToInt16(d reservation.DayOfWeek) int16 {
	// #nosec G115 -- DayOfWeek is validated to 1..7
	return int16(d.Int())
}
