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
	"github.com/jackc/pgx/v5/pgtype"
)

type ExamWriteQueries interface {
	CreateExamReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateExamReservationParams) (uuid.UUID, error)
	GetExamReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ExamReservation, error)
	GetExamReservationByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ExamReservation, error)
	FindApprovedExamOverlaps(ctx context.Context, db sqlc.DBTX, arg sqlc.FindApprovedExamOverlapsParams) ([]sqlc.ExamReservation, error)
	FindPendingExamDuplicates(ctx context.Context, db sqlc.DBTX, arg sqlc.FindPendingExamDuplicatesParams) ([]sqlc.ExamReservation, error)
	CountExamReservationsCreatedBetween(ctx context.Context, db sqlc.DBTX, arg sqlc.CountExamReservationsCreatedBetweenParams) (int64, error)
	UpdateExamReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateExamReservationParams) (int64, error)
}

// ExamRepository stores one-off exam reservations. Lookups key on the exact exam date.
type ExamRepository struct {
	queries ExamWriteQueries
}

func NewExamRepository(queries ExamWriteQueries) *ExamRepository {
	return &ExamRepository{queries: queries}
}

func (r *ExamRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	id, err := r.queries.CreateExamReservation(ctx, tx, converter.ExamToCreateParams(res))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create exam reservation", err)
	}
	return id, nil
}

func (r *ExamRepository) FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetExamReservationByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("exam reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find exam reservation by ID", err)
	}
	return converter.ExamFromRow(row), nil
}

func (r *ExamRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetExamReservationByIDForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("exam reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock exam reservation", err)
	}
	return converter.ExamFromRow(row), nil
}

func (r *ExamRepository) FindApprovedOverlapping(ctx context.Context, db sqlc.DBTX, q reservation.SlotQuery) ([]*reservation.Reservation, error) {
	rows, err := r.queries.FindApprovedExamOverlaps(ctx, db, sqlc.FindApprovedExamOverlapsParams{
		RoomID:    q.RoomID,
		ExamDate:  queryDate(q),
		EndTime:   pgconv.SecondsToPgtime(q.Slot.End().Seconds()),
		StartTime: pgconv.SecondsToPgtime(q.Slot.Start().Seconds()),
		ExcludeID: pgconv.UUIDPtrToPgtype(q.ExcludeID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find overlapping exam reservations", err)
	}
	return examRows(rows), nil
}

func (r *ExamRepository) FindPendingDuplicates(ctx context.Context, db sqlc.DBTX, requesterID uuid.UUID, q reservation.SlotQuery) ([]*reservation.Reservation, error) {
	rows, err := r.queries.FindPendingExamDuplicates(ctx, db, sqlc.FindPendingExamDuplicatesParams{
		RequesterID: requesterID,
		RoomID:      q.RoomID,
		ExamDate:    queryDate(q),
		StartTime:   pgconv.SecondsToPgtime(q.Slot.Start().Seconds()),
		EndTime:     pgconv.SecondsToPgtime(q.Slot.End().Seconds()),
		ExcludeID:   pgconv.UUIDPtrToPgtype(q.ExcludeID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find pending exam duplicates", err)
	}
	return examRows(rows), nil
}

func (r *ExamRepository) CountCreatedBetween(ctx context.Context, db sqlc.DBTX, requesterID uuid.UUID, from, to time.Time) (int64, error) {
	n, err := r.queries.CountExamReservationsCreatedBetween(ctx, db, sqlc.CountExamReservationsCreatedBetweenParams{
		RequesterID: requesterID,
		FromTime:    pgconv.TimeToPgtype(from),
		ToTime:      pgconv.TimeToPgtype(to),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count exam reservations", err)
	}
	return n, nil
}

func (r *ExamRepository) Update(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	n, err := r.queries.UpdateExamReservation(ctx, tx, converter.ExamToUpdateParams(res))
	if err != nil {
		return infra.WrapRepoErr("failed to update exam reservation", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("exam reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func queryDate(q reservation.SlotQuery) pgtype.Date {
	if q.Date == nil {
		return pgtype.Date{Valid: false}
	}
	return pgconv.DateToPgtype(*q.Date)
}

func examRows(rows []sqlc.ExamReservation) []*reservation.Reservation {
	result := make([]*reservation.Reservation, len(rows))
	for i, row := range rows {
		result[i] = converter.ExamFromRow(row)
	}
	return result
}
