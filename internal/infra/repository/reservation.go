package repository

import (
	"context"
	"time"

	"classroom-reservations/internal/domain/reservation"
	"classroom-reservations/internal/infra"
	"classroom-reservations/internal/infra/repository/converter"
	sqlc "classroom-reservations/internal/infra/sqlc/generated"
	"classroom-reservations/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RegularWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (uuid.UUID, error)
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservation, error)
	GetReservationByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservation, error)
	FindApprovedReservationOverlaps(ctx context.Context, db sqlc.DBTX, arg sqlc.FindApprovedReservationOverlapsParams) ([]sqlc.Reservation, error)
	FindPendingReservationDuplicates(ctx context.Context, db sqlc.DBTX, arg sqlc.FindPendingReservationDuplicatesParams) ([]sqlc.Reservation, error)
	CountReservationsCreatedBetween(ctx context.Context, db sqlc.DBTX, arg sqlc.CountReservationsCreatedBetweenParams) (int64, error)
	UpdateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationParams) (int64, error)
}

// RegularRepository stores weekly recurring reservations.
type RegularRepository struct {
	queries RegularWriteQueries
}

func NewRegularRepository(queries RegularWriteQueries) *RegularRepository {
	return &RegularRepository{queries: queries}
}

func (r *RegularRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	id, err := r.queries.CreateReservation(ctx, tx, converter.RegularToCreateParams(res))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}
	return id, nil
}

func (r *RegularRepository) FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return converter.RegularFromRow(row), nil
}

func (r *RegularRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByIDForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}
	return converter.RegularFromRow(row), nil
}

func (r *RegularRepository) FindApprovedOverlapping(ctx context.Context, db sqlc.DBTX, q reservation.SlotQuery) ([]*reservation.Reservation, error) {
	rows, err := r.queries.FindApprovedReservationOverlaps(ctx, db, sqlc.FindApprovedReservationOverlapsParams{
		RoomID:    q.RoomID,
		DayOfWeek: int16(q.DayOfWeek.Int()), // #nosec G115 -- validated 1..7
		EndTime:   pgconv.SecondsToPgtime(q.Slot.End().Seconds()),
		StartTime: pgconv.SecondsToPgtime(q.Slot.Start().Seconds()),
		ExcludeID: pgconv.UUIDPtrToPgtype(q.ExcludeID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find overlapping reservations", err)
	}
	return regularRows(rows), nil
}

func (r *RegularRepository) FindPendingDuplicates(ctx context.Context, db sqlc.DBTX, requesterID uuid.UUID, q reservation.SlotQuery) ([]*reservation.Reservation, error) {
	rows, err := r.queries.FindPendingReservationDuplicates(ctx, db, sqlc.FindPendingReservationDuplicatesParams{
		RequesterID: requesterID,
		RoomID:      q.RoomID,
		DayOfWeek:   int16(q.DayOfWeek.Int()), // #nosec G115 -- validated 1..7
		StartTime:   pgconv.SecondsToPgtime(q.Slot.Start().Seconds()),
		EndTime:     pgconv.SecondsToPgtime(q.Slot.End().Seconds()),
		ExcludeID:   pgconv.UUIDPtrToPgtype(q.ExcludeID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find pending duplicates", err)
	}
	return regularRows(rows), nil
}

func (r *RegularRepository) CountCreatedBetween(ctx context.Context, db sqlc.DBTX, requesterID uuid.UUID, from, to time.Time) (int64, error) {
	n, err := r.queries.CountReservationsCreatedBetween(ctx, db, sqlc.CountReservationsCreatedBetweenParams{
		RequesterID: requesterID,
		FromTime:    pgconv.TimeToPgtype(from),
		ToTime:      pgconv.TimeToPgtype(to),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count reservations", err)
	}
	return n, nil
}

func (r *RegularRepository) Update(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	n, err := r.queries.UpdateReservation(ctx, tx, converter.RegularToUpdateParams(res))
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func regularRows(rows []sqlc.Reservation) []*reservation.Reservation {
	result := make([]*reservation.Reservation, len(rows))
	for i, row := range rows {
		result[i] = converter.RegularFromRow(row)
	}
	return result
}
