package queries

import (
	"context"
	"slices"
	"sort"
	"strconv"
	"strings"

	"classroom-reservations/internal/domain/reservation"
	"classroom-reservations/internal/infra"
	"classroom-reservations/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.Kind(errs.ErrNotFound, "reservation not found")
	ErrRoomIDRequired      = errs.Kind(errs.ErrValidation, "roomId is required")
	ErrRoomIDInvalid       = errs.Kind(errs.ErrValidation, "roomId must be numeric")
)

// ReservationReadStore is implemented once per reservation kind.
type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByStatus(ctx context.Context, status reservation.Status) ([]*ReservationView, error)
	ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*ReservationView, error)
	ListApprovedByRoom(ctx context.Context, roomID int64) ([]*ReservationView, error)
	ListApprovedOverlapping(ctx context.Context, q reservation.SlotQuery) ([]*ReservationView, error)
}

type ReservationQueries interface {
	ListPending(ctx context.Context) ([]*ReservationView, error)
	ListMine(ctx context.Context, requesterID uuid.UUID) ([]*ReservationView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListApprovedByRoom(ctx context.Context, roomID string) ([]*ReservationView, error)
	ListApprovedExamsByRoom(ctx context.Context, roomID string) ([]*ReservationView, error)
	CheckAvailability(ctx context.Context, in AvailabilityInput) (*AvailabilityView, error)
}

type ReadStores struct {
	Regular ReservationReadStore
	Exam    ReservationReadStore
}

type reservationQueriesImpl struct {
	regular ReservationReadStore
	exam    ReservationReadStore
}

func NewReservationQueries(stores ReadStores) ReservationQueries {
	return &reservationQueriesImpl{
		regular: stores.Regular,
		exam:    stores.Exam,
	}
}

// ListPending merges both kinds, oldest request first.
func (q *reservationQueriesImpl) ListPending(ctx context.Context) ([]*ReservationView, error) {
	regular, err := q.regular.ListByStatus(ctx, reservation.StatusPending)
	if err != nil {
		return nil, err
	}
	exams, err := q.exam.ListByStatus(ctx, reservation.StatusPending)
	if err != nil {
		return nil, err
	}

	merged := slices.Concat(regular, exams)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.Before(merged[j].CreatedAt)
	})
	return merged, nil
}

// ListMine merges both kinds, newest request first.
func (q *reservationQueriesImpl) ListMine(ctx context.Context, requesterID uuid.UUID) ([]*ReservationView, error) {
	regular, err := q.regular.ListByRequester(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	exams, err := q.exam.ListByRequester(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	merged := slices.Concat(regular, exams)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})
	return merged, nil
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	for _, store := range []ReservationReadStore{q.regular, q.exam} {
		view, err := store.FindByID(ctx, id)
		if err == nil {
			return view, nil
		}
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, err
		}
	}
	return nil, ErrReservationNotFound
}

func (q *reservationQueriesImpl) ListApprovedByRoom(ctx context.Context, roomID string) ([]*ReservationView, error) {
	id, err := parseRoomID(roomID)
	if err != nil {
		return nil, err
	}
	return q.regular.ListApprovedByRoom(ctx, id)
}

func (q *reservationQueriesImpl) ListApprovedExamsByRoom(ctx context.Context, roomID string) ([]*ReservationView, error) {
	id, err := parseRoomID(roomID)
	if err != nil {
		return nil, err
	}
	return q.exam.ListApprovedByRoom(ctx, id)
}

func (q *reservationQueriesImpl) CheckAvailability(ctx context.Context, in AvailabilityInput) (*AvailabilityView, error) {
	if in.RoomID <= 0 {
		return nil, ErrRoomIDRequired
	}
	slot, err := reservation.ParseTimeSlot(in.StartTime, in.EndTime)
	if err != nil {
		return nil, err
	}

	sq := reservation.SlotQuery{
		Kind:      reservation.KindRegular,
		RoomID:    in.RoomID,
		Slot:      slot,
		ExcludeID: in.ExcludeID,
	}
	store := q.regular
	if in.Date != nil {
		date, err := reservation.ParseExamDate(*in.Date)
		if err != nil {
			return nil, err
		}
		sq.Kind = reservation.KindExam
		sq.Date = &date
		sq.DayOfWeek = reservation.ISOWeekday(date)
		store = q.exam
	} else {
		day, err := reservation.NewDayOfWeek(in.DayOfWeek)
		if err != nil {
			return nil, err
		}
		sq.DayOfWeek = day
	}

	conflicts, err := store.ListApprovedOverlapping(ctx, sq)
	if err != nil {
		return nil, err
	}
	if conflicts == nil {
		conflicts = []*ReservationView{}
	}
	return &AvailabilityView{Available: len(conflicts) == 0, Conflicts: conflicts}, nil
}

func parseRoomID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrRoomIDRequired
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.Wrap(ErrRoomIDInvalid, raw)
	}
	return id, nil
}
