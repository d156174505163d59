package broker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"classroom-reservations/internal/pkg/clock"
	"classroom-reservations/internal/pkg/errs"
	"classroom-reservations/internal/usecase/shared"
)

type Publisher interface {
	Publish(ctx context.Context, msg Message) error
}

type RelayConfig struct {
	PollInterval time.Duration
	BatchSize    int32
}

// Relay moves committed outbox rows to the broker. Rows are only stamped
// published after the broker accepted them, so delivery is at least once.
type Relay struct {
	uow       shared.UnitOfWork
	publisher Publisher
	clock     clock.Clock
	cfg       RelayConfig

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewRelay(uow shared.UnitOfWork, publisher Publisher, clk clock.Clock, cfg RelayConfig) *Relay {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 2 * time.Second
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	return &Relay{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
		cfg:       cfg,
	}
}

func (r *Relay) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.wg.Add(1)

	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(r.cfg.PollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := r.RunOnce(ctx); err != nil && ctx.Err() == nil {
					slog.Warn("event relay iteration failed", "error", err.Error())
				}
			}
		}
	}()

	slog.Info("event relay started", "interval", r.cfg.PollInterval.String(), "batch_size", r.cfg.BatchSize)
}

func (r *Relay) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	r.wg.Wait()
	slog.Info("event relay stopped")
}

// RunOnce publishes one batch and returns how many events were stamped.
// A publish failure ends the batch; the events already sent stay stamped.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	published := 0
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		published = 0
		events, err := tx.Events().ClaimUnpublished(ctx, tx.DB(), r.cfg.BatchSize)
		if err != nil {
			return err
		}

		for _, ev := range events {
			msg := Message{
				ID:         ev.ID.String(),
				RoutingKey: ev.Type,
				Timestamp:  ev.CreatedAt,
				Body:       ev.Payload,
			}
			if err := r.publisher.Publish(ctx, msg); err != nil {
				if errs.Is(err, ErrNotConnected) {
					slog.Debug("broker not connected, events deferred", "claimed", len(events))
					break
				}
				slog.Warn("failed to publish reservation event",
					"event_id", ev.ID.String(),
					"event_type", ev.Type,
					"error", err.Error())
				break
			}
			if err := tx.Events().MarkPublished(ctx, tx.DB(), ev.ID, r.clock.Now()); err != nil {
				return err
			}
			published++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return published, nil
}
