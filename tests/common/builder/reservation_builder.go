//go:build unit || e2e

package builder

import (
	"time"

	"classroom-reservations/internal/domain/reservation"
	sqlc "classroom-reservations/internal/infra/sqlc/generated"
	"classroom-reservations/internal/pkg/pgconv"
	"classroom-reservations/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID          uuid.UUID
	Kind        reservation.Kind
	RoomID      int64
	RoomNumber  string
	RequesterID uuid.UUID
	ApproverID  *uuid.UUID
	DayOfWeek   int
	Date        string
	StartTime   string
	EndTime     string
	Status      reservation.Status
	Notes       *string
	Subject     *string
	DeskGroup   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:          uuid.New(),
		Kind:        reservation.KindRegular,
		RoomID:      1,
		RoomNumber:  "101",
		RequesterID: uuid.New(),
		DayOfWeek:   1,
		StartTime:   "16:00",
		EndTime:     "18:00",
		Status:      reservation.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// NewExamBuilder starts from a Monday exam so the derived day of week matches DayOfWeek.
func NewExamBuilder() *ReservationBuilder {
	b := NewReservationBuilder()
	b.Kind = reservation.KindExam
	b.Date = "2025-03-17"
	b.StartTime = "09:00"
	b.EndTime = "11:00"
	subject := "Matemática"
	b.Subject = &subject
	return b
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithStatus(s reservation.Status) *ReservationBuilder {
	b.Status = s
	return b
}

func (b *ReservationBuilder) WithSlot(start, end string) *ReservationBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *ReservationBuilder) WithRequester(id uuid.UUID) *ReservationBuilder {
	b.RequesterID = id
	return b
}

func (b *ReservationBuilder) WithDay(day int) *ReservationBuilder {
	b.DayOfWeek = day
	return b
}

func (b *ReservationBuilder) WithNotes(notes string) *ReservationBuilder {
	b.Notes = &notes
	return b
}

func (b *ReservationBuilder) slot() reservation.TimeSlot {
	slot, err := reservation.ParseTimeSlot(b.StartTime, b.EndTime)
	if err != nil {
		panic(err)
	}
	return slot
}

func (b *ReservationBuilder) date() *time.Time {
	if b.Kind != reservation.KindExam {
		return nil
	}
	d, err := reservation.ParseExamDate(b.Date)
	if err != nil {
		panic(err)
	}
	return &d
}

// Build methods
func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	day := reservation.DayOfWeek(b.DayOfWeek)
	date := b.date()
	if date != nil {
		day = reservation.ISOWeekday(*date)
	}
	return reservation.Reconstruct(reservation.ReconstructParams{
		ID:          b.ID,
		Kind:        b.Kind,
		RoomID:      b.RoomID,
		RequesterID: b.RequesterID,
		ApproverID:  b.ApproverID,
		DayOfWeek:   day,
		Date:        date,
		Slot:        b.slot(),
		Status:      b.Status,
		Notes:       b.Notes,
		Subject:     b.Subject,
		DeskGroup:   b.DeskGroup,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	})
}

func (b *ReservationBuilder) BuildRegularRow() sqlc.Reservation {
	slot := b.slot()
	return sqlc.Reservation{
		ID:          b.ID,
		RoomID:      b.RoomID,
		RequesterID: b.RequesterID,
		ApproverID:  pgconv.UUIDPtrToPgtype(b.ApproverID),
		DayOfWeek:   int16(b.DayOfWeek), // #nosec G115 -- test data
		StartTime:   pgconv.SecondsToPgtime(slot.Start().Seconds()),
		EndTime:     pgconv.SecondsToPgtime(slot.End().Seconds()),
		Status:      b.Status.String(),
		Notes:       pgconv.StringPtrToPgtype(b.Notes),
		CreatedAt:   pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:   pgconv.TimeToPgtype(b.UpdatedAt),
	}
}

func (b *ReservationBuilder) BuildExamRow() sqlc.ExamReservation {
	slot := b.slot()
	date := b.date()
	return sqlc.ExamReservation{
		ID:          b.ID,
		RoomID:      b.RoomID,
		RequesterID: b.RequesterID,
		ApproverID:  pgconv.UUIDPtrToPgtype(b.ApproverID),
		ExamDate:    pgconv.DateToPgtype(*date),
		DayOfWeek:   int16(reservation.ISOWeekday(*date)), // #nosec G115 -- test data
		StartTime:   pgconv.SecondsToPgtime(slot.Start().Seconds()),
		EndTime:     pgconv.SecondsToPgtime(slot.End().Seconds()),
		Status:      b.Status.String(),
		Subject:     pgconv.StringPtrToPgtype(b.Subject),
		DeskGroup:   pgconv.StringPtrToPgtype(b.DeskGroup),
		Notes:       pgconv.StringPtrToPgtype(b.Notes),
		CreatedAt:   pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:   pgconv.TimeToPgtype(b.UpdatedAt),
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	res := b.BuildDomain()
	var date *string
	if d := res.Date(); d != nil {
		s := d.Format(reservation.DateLayout)
		date = &s
	}
	return &queries.ReservationView{
		ID:          res.ID(),
		Kind:        res.Kind().String(),
		RoomID:      res.RoomID(),
		RoomNumber:  b.RoomNumber,
		RequesterID: res.RequesterID(),
		ApproverID:  res.ApproverID(),
		DayOfWeek:   res.DayOfWeek().Int(),
		Date:        date,
		StartTime:   res.Slot().Start().String(),
		EndTime:     res.Slot().End().String(),
		Status:      res.Status().String(),
		Notes:       res.Notes(),
		Subject:     res.Subject(),
		DeskGroup:   res.DeskGroup(),
		CreatedAt:   res.CreatedAt(),
		UpdatedAt:   res.UpdatedAt(),
	}
}
