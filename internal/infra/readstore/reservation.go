package readstore

import (
	"context"

	"classroom-reservations/internal/domain/reservation"
	"classroom-reservations/internal/infra"
	sqlc "classroom-reservations/internal/infra/sqlc/generated"
	"classroom-reservations/internal/pkg/pgconv"
	"classroom-reservations/internal/usecase/queries"

	"github.com/google/uuid"
)

type RegularViewQueries interface {
	GetReservationViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationViewByIDRow, error)
	ListReservationViewsByStatus(ctx context.Context, db sqlc.DBTX, status string) ([]sqlc.ListReservationViewsByStatusRow, error)
	ListReservationViewsByRequester(ctx context.Context, db sqlc.DBTX, requesterID uuid.UUID) ([]sqlc.ListReservationViewsByRequesterRow, error)
	ListApprovedReservationViewsByRoom(ctx context.Context, db sqlc.DBTX, roomID int64) ([]sqlc.ListApprovedReservationViewsByRoomRow, error)
	ListApprovedReservationViewOverlaps(ctx context.Context, db sqlc.DBTX, arg sqlc.ListApprovedReservationViewOverlapsParams) ([]sqlc.ListApprovedReservationViewOverlapsRow, error)
}

type RegularReadStore struct {
	queries RegularViewQueries
	db      sqlc.DBTX
}

func NewRegularReadStore(queries RegularViewQueries, db sqlc.DBTX) *RegularReadStore {
	return &RegularReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RegularReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return regularView(row), nil
}

func (r *RegularReadStore) ListByStatus(ctx context.Context, status reservation.Status) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationViewsByStatus(ctx, r.db, status.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by status", err)
	}
	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = regularView(sqlc.GetReservationViewByIDRow(row))
	}
	return result, nil
}

func (r *RegularReadStore) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationViewsByRequester(ctx, r.db, requesterID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by requester", err)
	}
	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = regularView(sqlc.GetReservationViewByIDRow(row))
	}
	return result, nil
}

// ListApprovedByRoom is ordered by day of week, then start time.
func (r *RegularReadStore) ListApprovedByRoom(ctx context.Context, roomID int64) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListApprovedReservationViewsByRoom(ctx, r.db, roomID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list approved reservations by room", err)
	}
	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = regularView(sqlc.GetReservationViewByIDRow(row))
	}
	return result, nil
}

func (r *RegularReadStore) ListApprovedOverlapping(ctx context.Context, q reservation.SlotQuery) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListApprovedReservationViewOverlaps(ctx, r.db, sqlc.ListApprovedReservationViewOverlapsParams{
		RoomID:    q.RoomID,
		DayOfWeek: int16(q.DayOfWeek.Int()), // #nosec G115 -- validated 1..7
		EndTime:   pgconv.SecondsToPgtime(q.Slot.End().Seconds()),
		StartTime: pgconv.SecondsToPgtime(q.Slot.Start().Seconds()),
		ExcludeID: pgconv.UUIDPtrToPgtype(q.ExcludeID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overlapping reservations", err)
	}
	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = regularView(sqlc.GetReservationViewByIDRow(row))
	}
	return result, nil
}

func regularView(row sqlc.GetReservationViewByIDRow) *queries.ReservationView {
	return &queries.ReservationView{
		ID:          row.ID,
		Kind:        reservation.KindRegular.String(),
		RoomID:      row.RoomID,
		RoomNumber:  row.RoomNumber,
		RequesterID: row.RequesterID,
		ApproverID:  pgconv.UUIDPtrFromPgtype(row.ApproverID),
		DayOfWeek:   int(row.DayOfWeek),
		StartTime:   timeOfDay(row.StartTime),
		EndTime:     timeOfDay(row.EndTime),
		Status:      row.Status,
		Notes:       pgconv.StringPtrFromPgtype(row.Notes),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
