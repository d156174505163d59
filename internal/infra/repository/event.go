package repository

import (
	"context"
	"encoding/json"
	"time"

	"classroom-reservations/internal/infra"
	sqlc "classroom-reservations/internal/infra/sqlc/generated"
	"classroom-reservations/internal/pkg/errs"
	"classroom-reservations/internal/pkg/pgconv"
	"classroom-reservations/internal/usecase/shared"

	"github.com/google/uuid"
)

type EventQueries interface {
	InsertReservationEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertReservationEventParams) error
	ClaimUnpublishedEvents(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.ReservationEvent, error)
	MarkEventPublished(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkEventPublishedParams) error
}

// EventRepository is the reservation_events outbox.
type EventRepository struct {
	queries EventQueries
}

func NewEventRepository(queries EventQueries) *EventRepository {
	return &EventRepository{queries: queries}
}

func (r *EventRepository) Append(ctx context.Context, tx sqlc.DBTX, ev shared.ReservationEvent) error {
	payload, err := json.Marshal(ev.Payload)
	if err != nil {
		return errs.Wrap(err, "failed to encode reservation event payload")
	}

	id := ev.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	params := sqlc.InsertReservationEventParams{
		ID:              id,
		ReservationID:   ev.ReservationID,
		ReservationKind: ev.Kind.String(),
		EventType:       string(ev.Type),
		Payload:         payload,
		CreatedAt:       pgconv.TimeToPgtype(ev.OccurredAt),
	}
	if err := r.queries.InsertReservationEvent(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to append reservation event", err)
	}
	return nil
}

// ClaimUnpublished locks up to limit unpublished rows; concurrent relays skip each other's rows.
func (r *EventRepository) ClaimUnpublished(ctx context.Context, tx sqlc.DBTX, limit int32) ([]shared.PendingEvent, error) {
	rows, err := r.queries.ClaimUnpublishedEvents(ctx, tx, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim reservation events", err)
	}

	result := make([]shared.PendingEvent, len(rows))
	for i, row := range rows {
		result[i] = shared.PendingEvent{
			ID:            row.ID,
			ReservationID: row.ReservationID,
			Kind:          row.ReservationKind,
			Type:          row.EventType,
			Payload:       row.Payload,
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func (r *EventRepository) MarkPublished(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) error {
	params := sqlc.MarkEventPublishedParams{
		ID:          id,
		PublishedAt: pgconv.TimeToPgtype(at),
	}
	if err := r.queries.MarkEventPublished(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to mark reservation event published", err)
	}
	return nil
}
