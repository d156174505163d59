package reservation

import (
	"time"

	"classroom-reservations/internal/pkg/errs"

	"github.com/google/uuid"
)

const rejectionPrefix = "Motivo rechazo: "

var (
	ErrNotPending  = errs.Kind(errs.ErrInvalidState, "only PENDING reservations can be approved or rejected")
	ErrNotApproved = errs.Kind(errs.ErrInvalidState, "only APPROVED reservations can be released")
	ErrNotActive   = errs.Kind(errs.ErrInvalidState, "only PENDING or APPROVED reservations can be changed")
	ErrNotOwner    = errs.Kind(errs.ErrForbidden, "reservation belongs to another requester")
	ErrInvalidRoom = errs.Kind(errs.ErrValidation, "room id is required")
)

type Reservation struct {
	id          uuid.UUID
	kind        Kind
	roomID      int64
	requesterID uuid.UUID
	approverID  *uuid.UUID
	dayOfWeek   DayOfWeek
	date        *time.Time
	slot        TimeSlot
	status      Status
	notes       *string
	subject     *string
	deskGroup   *string
	createdAt   time.Time
	updatedAt   time.Time
}

// ExamDetails carries the fields only exam bookings have.
type ExamDetails struct {
	Subject   *string
	DeskGroup *string
}

func NewRegular(roomID int64, requesterID uuid.UUID, day DayOfWeek, slot TimeSlot, notes *string, now time.Time) (*Reservation, error) {
	if roomID <= 0 {
		return nil, ErrInvalidRoom
	}
	if _, err := NewDayOfWeek(int(day)); err != nil {
		return nil, err
	}
	return &Reservation{
		id:          uuid.New(),
		kind:        KindRegular,
		roomID:      roomID,
		requesterID: requesterID,
		dayOfWeek:   day,
		slot:        slot,
		status:      StatusPending,
		notes:       notes,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// NewExam derives the day of week from date so both kinds share one comparison shape.
func NewExam(roomID int64, requesterID uuid.UUID, date time.Time, slot TimeSlot, details ExamDetails, notes *string, now time.Time) (*Reservation, error) {
	if roomID <= 0 {
		return nil, ErrInvalidRoom
	}
	d := truncateDate(date)
	return &Reservation{
		id:          uuid.New(),
		kind:        KindExam,
		roomID:      roomID,
		requesterID: requesterID,
		dayOfWeek:   ISOWeekday(d),
		date:        &d,
		slot:        slot,
		status:      StatusPending,
		notes:       notes,
		subject:     details.Subject,
		deskGroup:   details.DeskGroup,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

type ReconstructParams struct {
	ID          uuid.UUID
	Kind        Kind
	RoomID      int64
	RequesterID uuid.UUID
	ApproverID  *uuid.UUID
	DayOfWeek   DayOfWeek
	Date        *time.Time
	Slot        TimeSlot
	Status      Status
	Notes       *string
	Subject     *string
	DeskGroup   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func Reconstruct(p ReconstructParams) *Reservation {
	return &Reservation{
		id:          p.ID,
		kind:        p.Kind,
		roomID:      p.RoomID,
		requesterID: p.RequesterID,
		approverID:  p.ApproverID,
		dayOfWeek:   p.DayOfWeek,
		date:        p.Date,
		slot:        p.Slot,
		status:      p.Status,
		notes:       p.Notes,
		subject:     p.Subject,
		deskGroup:   p.DeskGroup,
		createdAt:   p.CreatedAt,
		updatedAt:   p.UpdatedAt,
	}
}

func (r *Reservation) Approve(approverID uuid.UUID, now time.Time) error {
	if r.status != StatusPending {
		return ErrNotPending
	}
	r.status = StatusApproved
	r.approverID = &approverID
	r.updatedAt = now
	return nil
}

// Reject appends the motive to existing notes as "<prior> | Motivo rechazo: <motive>".
func (r *Reservation) Reject(approverID uuid.UUID, motive *string, now time.Time) error {
	if r.status != StatusPending {
		return ErrNotPending
	}
	r.status = StatusRejected
	r.approverID = &approverID
	if motive != nil && *motive != "" {
		note := rejectionPrefix + *motive
		if r.notes != nil && *r.notes != "" {
			note = *r.notes + " | " + note
		}
		r.notes = &note
	}
	r.updatedAt = now
	return nil
}

func (r *Reservation) Cancel(requesterID uuid.UUID, now time.Time) error {
	if r.requesterID != requesterID {
		return ErrNotOwner
	}
	if !r.status.IsActive() {
		return ErrNotActive
	}
	r.status = StatusCanceled
	r.updatedAt = now
	return nil
}

// Release frees an approved slot on behalf of an approver.
func (r *Reservation) Release(now time.Time) error {
	if r.status != StatusApproved {
		return ErrNotApproved
	}
	r.status = StatusCanceled
	r.updatedAt = now
	return nil
}

// CheckEditable verifies ownership and state before a new slot is validated.
func (r *Reservation) CheckEditable(requesterID uuid.UUID) error {
	if r.requesterID != requesterID {
		return ErrNotOwner
	}
	if !r.status.IsActive() {
		return ErrNotActive
	}
	return nil
}

type Changes struct {
	DayOfWeek DayOfWeek
	Date      *time.Time
	Slot      TimeSlot
	Notes     *string
	Exam      ExamDetails
}

// Reschedule applies an edit and sends the reservation back to PENDING.
func (r *Reservation) Reschedule(requesterID uuid.UUID, c Changes, now time.Time) error {
	if err := r.CheckEditable(requesterID); err != nil {
		return err
	}
	if r.kind == KindExam {
		if c.Date == nil {
			return ErrInvalidDate
		}
		d := truncateDate(*c.Date)
		r.date = &d
		r.dayOfWeek = ISOWeekday(d)
		r.subject = c.Exam.Subject
		r.deskGroup = c.Exam.DeskGroup
	} else {
		if _, err := NewDayOfWeek(int(c.DayOfWeek)); err != nil {
			return err
		}
		r.dayOfWeek = c.DayOfWeek
	}
	r.slot = c.Slot
	r.notes = c.Notes
	r.status = StatusPending
	r.approverID = nil
	r.updatedAt = now
	return nil
}

// SlotQuery describes the slot this reservation occupies, excluding itself.
func (r *Reservation) SlotQuery() SlotQuery {
	id := r.id
	return SlotQuery{
		Kind:      r.kind,
		RoomID:    r.roomID,
		DayOfWeek: r.dayOfWeek,
		Date:      r.date,
		Slot:      r.slot,
		ExcludeID: &id,
	}
}

func (r *Reservation) ID() uuid.UUID          { return r.id }
func (r *Reservation) Kind() Kind             { return r.kind }
func (r *Reservation) RoomID() int64          { return r.roomID }
func (r *Reservation) RequesterID() uuid.UUID { return r.requesterID }
func (r *Reservation) ApproverID() *uuid.UUID { return r.approverID }
func (r *Reservation) DayOfWeek() DayOfWeek   { return r.dayOfWeek }
func (r *Reservation) Date() *time.Time       { return r.date }
func (r *Reservation) Slot() TimeSlot         { return r.slot }
func (r *Reservation) Status() Status         { return r.status }
func (r *Reservation) Notes() *string         { return r.notes }
func (r *Reservation) Subject() *string       { return r.subject }
func (r *Reservation) DeskGroup() *string     { return r.deskGroup }
func (r *Reservation) CreatedAt() time.Time   { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time   { return r.updatedAt }

func truncateDate(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}
