package readstore

import (
	"context"

	"classroom-reservations/internal/domain/reservation"
	"classroom-reservations/internal/infra"
	sqlc "classroom-reservations/internal/infra/sqlc/generated"
	"classroom-reservations/internal/pkg/pgconv"
	"classroom-reservations/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ExamViewQueries interface {
	GetExamReservationViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetExamReservationViewByIDRow, error)
	ListExamReservationViewsByStatus(ctx context.Context, db sqlc.DBTX, status string) ([]sqlc.ListExamReservationViewsByStatusRow, error)
	ListExamReservationViewsByRequester(ctx context.Context, db sqlc.DBTX, requesterID uuid.UUID) ([]sqlc.ListExamReservationViewsByRequesterRow, error)
	ListApprovedExamReservationViewsByRoom(ctx context.Context, db sqlc.DBTX, roomID int64) ([]sqlc.ListApprovedExamReservationViewsByRoomRow, error)
	ListApprovedExamReservationViewOverlaps(ctx context.Context, db sqlc.DBTX, arg sqlc.ListApprovedExamReservationViewOverlapsParams) ([]sqlc.ListApprovedExamReservationViewOverlapsRow, error)
}

type ExamReadStore struct {
	queries ExamViewQueries
	db      sqlc.DBTX
}

func NewExamReadStore(queries ExamViewQueries, db sqlc.DBTX) *ExamReadStore {
	return &ExamReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ExamReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetExamReservationViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("exam reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find exam reservation by ID", err)
	}
	return examView(row), nil
}

func (r *ExamReadStore) ListByStatus(ctx context.Context, status reservation.Status) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListExamReservationViewsByStatus(ctx, r.db, status.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list exam reservations by status", err)
	}
	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = examView(sqlc.GetExamReservationViewByIDRow(row))
	}
	return result, nil
}

func (r *ExamReadStore) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListExamReservationViewsByRequester(ctx, r.db, requesterID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list exam reservations by requester", err)
	}
	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = examView(sqlc.GetExamReservationViewByIDRow(row))
	}
	return result, nil
}

// ListApprovedByRoom is ordered by exam date, then start time.
func (r *ExamReadStore) ListApprovedByRoom(ctx context.Context, roomID int64) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListApprovedExamReservationViewsByRoom(ctx, r.db, roomID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list approved exam reservations by room", err)
	}
	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = examView(sqlc.GetExamReservationViewByIDRow(row))
	}
	return result, nil
}

func (r *ExamReadStore) ListApprovedOverlapping(ctx context.Context, q reservation.SlotQuery) ([]*queries.ReservationView, error) {
	date := pgtype.Date{Valid: false}
	if q.Date != nil {
		date = pgconv.DateToPgtype(*q.Date)
	}
	rows, err := r.queries.ListApprovedExamReservationViewOverlaps(ctx, r.db, sqlc.ListApprovedExamReservationViewOverlapsParams{
		RoomID:    q.RoomID,
		ExamDate:  date,
		EndTime:   pgconv.SecondsToPgtime(q.Slot.End().Seconds()),
		StartTime: pgconv.SecondsToPgtime(q.Slot.Start().Seconds()),
		ExcludeID: pgconv.UUIDPtrToPgtype(q.ExcludeID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overlapping exam reservations", err)
	}
	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = examView(sqlc.GetExamReservationViewByIDRow(row))
	}
	return result, nil
}

func examView(row sqlc.GetExamReservationViewByIDRow) *queries.ReservationView {
	return &queries.ReservationView{
		ID:          row.ID,
		Kind:        reservation.KindExam.String(),
		RoomID:      row.RoomID,
		RoomNumber:  row.RoomNumber,
		RequesterID: row.RequesterID,
		ApproverID:  pgconv.UUIDPtrFromPgtype(row.ApproverID),
		DayOfWeek:   int(row.DayOfWeek),
		Date:        dateString(row.ExamDate),
		StartTime:   timeOfDay(row.StartTime),
		EndTime:     timeOfDay(row.EndTime),
		Status:      row.Status,
		Notes:       pgconv.StringPtrFromPgtype(row.Notes),
		Subject:     pgconv.StringPtrFromPgtype(row.Subject),
		DeskGroup:   pgconv.StringPtrFromPgtype(row.DeskGroup),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
