package commands

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"classroom-reservations/internal/domain/reservation"
	"classroom-reservations/internal/infra"
	"classroom-reservations/internal/pkg/clock"
	"classroom-reservations/internal/pkg/errs"
	"classroom-reservations/internal/usecase/conflict"
	"classroom-reservations/internal/usecase/shared"

	"github.com/google/uuid"
)

type EngineConfig struct {
	MaxPerDay     int
	QuotaDisabled bool
	// QuotaLocation defines the calendar day the quota is counted in.
	QuotaLocation *time.Location
	Regular       reservation.Policy
	Exam          reservation.Policy
}

func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		MaxPerDay:     5,
		QuotaLocation: time.UTC,
		Regular:       reservation.DefaultPolicy(reservation.KindRegular),
		Exam:          reservation.DefaultPolicy(reservation.KindExam),
	}
}

func (c EngineConfig) policy(kind reservation.Kind) reservation.Policy {
	if kind == reservation.KindExam {
		return c.Exam
	}
	return c.Regular
}

type CreateRegularInput struct {
	RoomID    int64
	DayOfWeek int
	StartTime string
	EndTime   string
	Notes     *string
}

type BatchItem struct {
	DayOfWeek int
	StartTime string
	EndTime   string
	Notes     *string
}

type CreateBatchInput struct {
	RoomID int64
	Items  []BatchItem
}

type CreateExamInput struct {
	RoomID    int64
	Date      string
	StartTime string
	EndTime   string
	Subject   *string
	DeskGroup *string
	Notes     *string
}

type EditRegularInput struct {
	DayOfWeek int
	StartTime string
	EndTime   string
	Notes     *string
}

type EditExamInput struct {
	Date      string
	StartTime string
	EndTime   string
	Subject   *string
	DeskGroup *string
	Notes     *string
}

type Result struct {
	ID     uuid.UUID
	Kind   reservation.Kind
	Status reservation.Status
}

type ReservationCommands interface {
	Create(ctx context.Context, requesterID uuid.UUID, in CreateRegularInput) (*Result, error)
	CreateBatch(ctx context.Context, requesterID uuid.UUID, in CreateBatchInput) ([]Result, error)
	CreateExam(ctx context.Context, requesterID uuid.UUID, in CreateExamInput) (*Result, error)
	Approve(ctx context.Context, id, approverID uuid.UUID) (*Result, error)
	Reject(ctx context.Context, id, approverID uuid.UUID, motive *string) (*Result, error)
	Cancel(ctx context.Context, id, requesterID uuid.UUID) (*Result, error)
	Release(ctx context.Context, id uuid.UUID) (*Result, error)
	Edit(ctx context.Context, id, requesterID uuid.UUID, in EditRegularInput) (*Result, error)
	EditExam(ctx context.Context, id, requesterID uuid.UUID, in EditExamInput) (*Result, error)
}

type reservationEngine struct {
	uow   shared.UnitOfWork
	rooms shared.RoomDirectory
	clock clock.Clock
	cfg   EngineConfig
}

func NewReservationEngine(uow shared.UnitOfWork, rooms shared.RoomDirectory, clk clock.Clock, cfg EngineConfig) ReservationCommands {
	if cfg.QuotaLocation == nil {
		cfg.QuotaLocation = time.UTC
	}
	return &reservationEngine{
		uow:   uow,
		rooms: rooms,
		clock: clk,
		cfg:   cfg,
	}
}

func (e *reservationEngine) Create(ctx context.Context, requesterID uuid.UUID, in CreateRegularInput) (*Result, error) {
	day, slot, err := e.parseRegular(in.RoomID, in.DayOfWeek, in.StartTime, in.EndTime)
	if err != nil {
		return nil, err
	}
	room, err := e.requireRoom(ctx, in.RoomID)
	if err != nil {
		return nil, err
	}

	var created *reservation.Reservation
	err = e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := e.clock.Now()
		if err := e.checkQuota(ctx, tx, requesterID, 1, now); err != nil {
			return err
		}
		res, err := reservation.NewRegular(in.RoomID, requesterID, day, slot, in.Notes, now)
		if err != nil {
			return err
		}
		if err := tx.Locks().LockSlot(ctx, tx.DB(), res.SlotQuery()); err != nil {
			return err
		}
		if err := e.insert(ctx, tx, res, room); err != nil {
			return err
		}
		created = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	logTransition("Reservation created", created, requesterID)
	return resultOf(created), nil
}

// CreateBatch persists every item or none of them.
func (e *reservationEngine) CreateBatch(ctx context.Context, requesterID uuid.UUID, in CreateBatchInput) ([]Result, error) {
	if len(in.Items) == 0 {
		return nil, ErrEmptyBatch
	}

	type parsed struct {
		day  reservation.DayOfWeek
		slot reservation.TimeSlot
	}
	items := make([]parsed, len(in.Items))
	for i, it := range in.Items {
		day, slot, err := e.parseRegular(in.RoomID, it.DayOfWeek, it.StartTime, it.EndTime)
		if err != nil {
			return nil, errs.Wrap(err, fmt.Sprintf("item %d", i))
		}
		items[i] = parsed{day: day, slot: slot}
	}

	room, err := e.requireRoom(ctx, in.RoomID)
	if err != nil {
		return nil, err
	}

	var created []*reservation.Reservation
	err = e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created = created[:0]
		now := e.clock.Now()
		if err := e.checkQuota(ctx, tx, requesterID, len(in.Items), now); err != nil {
			return err
		}

		batch := make([]*reservation.Reservation, len(items))
		queries := make([]reservation.SlotQuery, len(items))
		for i, it := range items {
			res, err := reservation.NewRegular(in.RoomID, requesterID, it.day, it.slot, in.Items[i].Notes, now)
			if err != nil {
				return err
			}
			batch[i] = res
			queries[i] = res.SlotQuery()
		}

		if i, j, found := conflict.FindBatchConflict(queries); found {
			return &BatchConflictError{First: i, Second: j}
		}

		if err := lockDistinctDays(ctx, tx, queries); err != nil {
			return err
		}

		for _, res := range batch {
			if err := e.insert(ctx, tx, res, room); err != nil {
				return err
			}
			created = append(created, res)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(created))
	for i, res := range created {
		results[i] = *resultOf(res)
	}
	slog.Info("Reservation batch created",
		"room_id", in.RoomID,
		"count", len(results),
		"actor_id", requesterID.String())
	return results, nil
}

func (e *reservationEngine) CreateExam(ctx context.Context, requesterID uuid.UUID, in CreateExamInput) (*Result, error) {
	date, slot, err := e.parseExam(in.RoomID, in.Date, in.StartTime, in.EndTime)
	if err != nil {
		return nil, err
	}
	room, err := e.requireRoom(ctx, in.RoomID)
	if err != nil {
		return nil, err
	}

	var created *reservation.Reservation
	err = e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := e.clock.Now()
		if err := e.checkQuota(ctx, tx, requesterID, 1, now); err != nil {
			return err
		}
		details := reservation.ExamDetails{Subject: in.Subject, DeskGroup: in.DeskGroup}
		res, err := reservation.NewExam(in.RoomID, requesterID, date, slot, details, in.Notes, now)
		if err != nil {
			return err
		}
		if err := tx.Locks().LockSlot(ctx, tx.DB(), res.SlotQuery()); err != nil {
			return err
		}
		if err := e.insert(ctx, tx, res, room); err != nil {
			return err
		}
		created = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	logTransition("Exam reservation created", created, requesterID)
	return resultOf(created), nil
}

// Approve re-validates the slot under the row lock and the slot lock, so a
// reservation approved in the meantime turns this approval into a Conflict.
func (e *reservationEngine) Approve(ctx context.Context, id, approverID uuid.UUID) (*Result, error) {
	var approved *reservation.Reservation
	err := e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, repo, err := locateForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		if res.Status() != reservation.StatusPending {
			return reservation.ErrNotPending
		}

		q := res.SlotQuery()
		if err := tx.Locks().LockSlot(ctx, tx.DB(), q); err != nil {
			return err
		}
		overlaps, err := conflict.CheckOverlap(ctx, tx.DB(), repo, q)
		if err != nil {
			return err
		}
		if len(overlaps) > 0 {
			return newConflictError("", overlaps, true)
		}

		now := e.clock.Now()
		if err := res.Approve(approverID, now); err != nil {
			return err
		}
		if err := repo.Update(ctx, tx.DB(), res); err != nil {
			return err
		}
		approved = res
		return appendEvent(ctx, tx, res, shared.EventApproved, &approverID, now)
	})
	if err != nil {
		return nil, err
	}

	logTransition("Reservation approved", approved, approverID)
	return resultOf(approved), nil
}

func (e *reservationEngine) Reject(ctx context.Context, id, approverID uuid.UUID, motive *string) (*Result, error) {
	return e.transition(ctx, id, approverID, shared.EventRejected, func(res *reservation.Reservation, now time.Time) error {
		return res.Reject(approverID, motive, now)
	})
}

func (e *reservationEngine) Cancel(ctx context.Context, id, requesterID uuid.UUID) (*Result, error) {
	return e.transition(ctx, id, requesterID, shared.EventCanceled, func(res *reservation.Reservation, now time.Time) error {
		return res.Cancel(requesterID, now)
	})
}

func (e *reservationEngine) Release(ctx context.Context, id uuid.UUID) (*Result, error) {
	// Release is an administrative action; the actor is not recorded on the row.
	return e.transition(ctx, id, uuid.Nil, shared.EventReleased, func(res *reservation.Reservation, now time.Time) error {
		return res.Release(now)
	})
}

func (e *reservationEngine) Edit(ctx context.Context, id, requesterID uuid.UUID, in EditRegularInput) (*Result, error) {
	return e.edit(ctx, reservation.KindRegular, id, requesterID, func(res *reservation.Reservation) (reservation.Changes, error) {
		day, slot, err := e.parseRegular(res.RoomID(), in.DayOfWeek, in.StartTime, in.EndTime)
		if err != nil {
			return reservation.Changes{}, err
		}
		return reservation.Changes{DayOfWeek: day, Slot: slot, Notes: in.Notes}, nil
	})
}

func (e *reservationEngine) EditExam(ctx context.Context, id, requesterID uuid.UUID, in EditExamInput) (*Result, error) {
	return e.edit(ctx, reservation.KindExam, id, requesterID, func(res *reservation.Reservation) (reservation.Changes, error) {
		date, slot, err := e.parseExam(res.RoomID(), in.Date, in.StartTime, in.EndTime)
		if err != nil {
			return reservation.Changes{}, err
		}
		return reservation.Changes{
			Date:  &date,
			Slot:  slot,
			Notes: in.Notes,
			Exam:  reservation.ExamDetails{Subject: in.Subject, DeskGroup: in.DeskGroup},
		}, nil
	})
}

// edit only looks at the table of the given kind. Edits never count against the quota.
func (e *reservationEngine) edit(ctx context.Context, kind reservation.Kind, id, requesterID uuid.UUID, changes func(*reservation.Reservation) (reservation.Changes, error)) (*Result, error) {
	var edited *reservation.Reservation
	err := e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		repo := tx.Reservations(kind)
		res, err := repo.FindByIDForUpdate(ctx, tx.DB(), id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return err
		}
		if err := res.CheckEditable(requesterID); err != nil {
			return err
		}

		c, err := changes(res)
		if err != nil {
			return err
		}
		now := e.clock.Now()
		if err := res.Reschedule(requesterID, c, now); err != nil {
			return err
		}

		q := res.SlotQuery()
		if err := tx.Locks().LockSlot(ctx, tx.DB(), q); err != nil {
			return err
		}
		if err := e.admit(ctx, tx, res, q, ""); err != nil {
			return err
		}
		if err := repo.Update(ctx, tx.DB(), res); err != nil {
			return err
		}
		edited = res
		return appendEvent(ctx, tx, res, shared.EventEdited, &requesterID, now)
	})
	if err != nil {
		return nil, err
	}

	logTransition("Reservation edited", edited, requesterID)
	return resultOf(edited), nil
}

func (e *reservationEngine) transition(ctx context.Context, id, actorID uuid.UUID, event shared.EventType, apply func(*reservation.Reservation, time.Time) error) (*Result, error) {
	var changed *reservation.Reservation
	err := e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, repo, err := locateForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		now := e.clock.Now()
		if err := apply(res, now); err != nil {
			return err
		}
		if err := repo.Update(ctx, tx.DB(), res); err != nil {
			return err
		}
		changed = res

		var actor *uuid.UUID
		if actorID != uuid.Nil {
			actor = &actorID
		}
		return appendEvent(ctx, tx, res, event, actor, now)
	})
	if err != nil {
		return nil, err
	}

	logTransition("Reservation "+strings.TrimPrefix(string(event), "reservation."), changed, actorID)
	return resultOf(changed), nil
}

// insert runs the duplicate and overlap checks for a new reservation and stores it.
func (e *reservationEngine) insert(ctx context.Context, tx shared.Tx, res *reservation.Reservation, room *shared.RoomSnapshot) error {
	if err := e.admit(ctx, tx, res, res.SlotQuery(), room.Number); err != nil {
		return err
	}
	if _, err := tx.Reservations(res.Kind()).Create(ctx, tx.DB(), res); err != nil {
		return err
	}
	return appendEvent(ctx, tx, res, shared.EventCreated, nil, res.CreatedAt())
}

// admit rejects a slot that duplicates one of the requester's pending requests
// or, when the kind's policy asks for it, overlaps an approved reservation.
func (e *reservationEngine) admit(ctx context.Context, tx shared.Tx, res *reservation.Reservation, q reservation.SlotQuery, roomNumber string) error {
	repo := tx.Reservations(res.Kind())

	dup, err := conflict.CheckDuplicate(ctx, tx.DB(), repo, res.RequesterID(), q)
	if err != nil {
		return err
	}
	if dup {
		return ErrDuplicatePending
	}

	if !e.cfg.policy(res.Kind()).CheckOverlapOnCreate {
		return nil
	}
	overlaps, err := conflict.CheckOverlap(ctx, tx.DB(), repo, q)
	if err != nil {
		return err
	}
	if len(overlaps) > 0 {
		if roomNumber == "" {
			roomNumber = e.roomNumber(ctx, res.RoomID())
		}
		return newConflictError(roomNumber, overlaps, false)
	}
	return nil
}

func (e *reservationEngine) checkQuota(ctx context.Context, tx shared.Tx, requesterID uuid.UUID, n int, now time.Time) error {
	if e.cfg.QuotaDisabled || e.cfg.MaxPerDay <= 0 {
		return nil
	}
	if err := tx.Locks().LockRequester(ctx, tx.DB(), requesterID); err != nil {
		return err
	}

	from, to := clock.DayBounds(now, e.cfg.QuotaLocation)
	var total int64
	for _, kind := range []reservation.Kind{reservation.KindRegular, reservation.KindExam} {
		count, err := tx.Reservations(kind).CountCreatedBetween(ctx, tx.DB(), requesterID, from, to)
		if err != nil {
			return err
		}
		total += count
	}

	if total+int64(n) > int64(e.cfg.MaxPerDay) {
		return errs.Wrap(ErrQuotaExceeded, fmt.Sprintf("maximum %d reservations per day", e.cfg.MaxPerDay))
	}
	return nil
}

func (e *reservationEngine) parseRegular(roomID int64, dayOfWeek int, start, end string) (reservation.DayOfWeek, reservation.TimeSlot, error) {
	if roomID <= 0 || dayOfWeek == 0 || start == "" || end == "" {
		return 0, reservation.TimeSlot{}, ErrMissingFields
	}
	day, err := reservation.NewDayOfWeek(dayOfWeek)
	if err != nil {
		return 0, reservation.TimeSlot{}, err
	}
	slot, err := reservation.ParseTimeSlot(start, end)
	if err != nil {
		return 0, reservation.TimeSlot{}, err
	}
	if err := e.cfg.Regular.ValidateDuration(slot); err != nil {
		return 0, reservation.TimeSlot{}, err
	}
	return day, slot, nil
}

func (e *reservationEngine) parseExam(roomID int64, date, start, end string) (time.Time, reservation.TimeSlot, error) {
	if roomID <= 0 || date == "" || start == "" || end == "" {
		return time.Time{}, reservation.TimeSlot{}, ErrMissingFields
	}
	d, err := reservation.ParseExamDate(date)
	if err != nil {
		return time.Time{}, reservation.TimeSlot{}, err
	}
	slot, err := reservation.ParseTimeSlot(start, end)
	if err != nil {
		return time.Time{}, reservation.TimeSlot{}, err
	}
	if err := e.cfg.Exam.ValidateDuration(slot); err != nil {
		return time.Time{}, reservation.TimeSlot{}, err
	}
	return d, slot, nil
}

func (e *reservationEngine) requireRoom(ctx context.Context, roomID int64) (*shared.RoomSnapshot, error) {
	room, err := e.rooms.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

func (e *reservationEngine) roomNumber(ctx context.Context, roomID int64) string {
	room, err := e.rooms.GetRoom(ctx, roomID)
	if err != nil || room == nil {
		return fmt.Sprintf("%d", roomID)
	}
	return room.Number
}

// locateForUpdate resolves an id against regular reservations first, then exams.
func locateForUpdate(ctx context.Context, tx shared.Tx, id uuid.UUID) (*reservation.Reservation, shared.ReservationRepository, error) {
	for _, kind := range []reservation.Kind{reservation.KindRegular, reservation.KindExam} {
		repo := tx.Reservations(kind)
		res, err := repo.FindByIDForUpdate(ctx, tx.DB(), id)
		if err == nil {
			return res, repo, nil
		}
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, err
		}
	}
	return nil, nil, ErrReservationNotFound
}

// lockDistinctDays locks each day once, in ascending order, so concurrent batches cannot deadlock.
func lockDistinctDays(ctx context.Context, tx shared.Tx, queries []reservation.SlotQuery) error {
	sorted := make([]reservation.SlotQuery, len(queries))
	copy(sorted, queries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].DayOfWeek < sorted[j].DayOfWeek })

	for i, q := range sorted {
		if i > 0 && q.SameDay(sorted[i-1]) {
			continue
		}
		if err := tx.Locks().LockSlot(ctx, tx.DB(), q); err != nil {
			return err
		}
	}
	return nil
}

func newConflictError(roomNumber string, overlaps []*reservation.Reservation, onApproval bool) *ConflictError {
	slots := make([]ConflictSlot, len(overlaps))
	for i, o := range overlaps {
		slots[i] = ConflictSlot{
			ID:        o.ID(),
			DayOfWeek: o.DayOfWeek().Int(),
			Date:      formatDate(o.Date()),
			StartTime: o.Slot().Start().String(),
			EndTime:   o.Slot().End().String(),
		}
	}
	return &ConflictError{RoomNumber: roomNumber, Conflicts: slots, OnApproval: onApproval}
}

func appendEvent(ctx context.Context, tx shared.Tx, res *reservation.Reservation, typ shared.EventType, actorID *uuid.UUID, at time.Time) error {
	return tx.Events().Append(ctx, tx.DB(), shared.ReservationEvent{
		ID:            uuid.New(),
		ReservationID: res.ID(),
		Kind:          res.Kind(),
		Type:          typ,
		OccurredAt:    at,
		Payload: shared.EventPayload{
			ReservationID: res.ID(),
			Kind:          res.Kind().String(),
			RoomID:        res.RoomID(),
			RequesterID:   res.RequesterID(),
			ApproverID:    res.ApproverID(),
			ActorID:       actorID,
			DayOfWeek:     res.DayOfWeek().Int(),
			Date:          formatDate(res.Date()),
			StartTime:     res.Slot().Start().String(),
			EndTime:       res.Slot().End().String(),
			Status:        res.Status().String(),
			Notes:         res.Notes(),
		},
	})
}

func formatDate(d *time.Time) *string {
	if d == nil {
		return nil
	}
	s := d.Format(reservation.DateLayout)
	return &s
}

func resultOf(res *reservation.Reservation) *Result {
	return &Result{ID: res.ID(), Kind: res.Kind(), Status: res.Status()}
}

func logTransition(msg string, res *reservation.Reservation, actorID uuid.UUID) {
	slog.Info(msg,
		"reservation_id", res.ID().String(),
		"kind", res.Kind().String(),
		"room_id", res.RoomID(),
		"status", res.Status().String(),
		"actor_id", actorID.String())
}
