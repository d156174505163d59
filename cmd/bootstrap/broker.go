package bootstrap

import (
	"context"
	"log/slog"

	"classroom-reservations/internal/infra/broker"
	"classroom-reservations/internal/pkg/clock"
	"classroom-reservations/internal/pkg/config"
	"classroom-reservations/internal/usecase/shared"

	"go.uber.org/fx"
)

var BrokerModule = fx.Module("broker",
	fx.Invoke(
		StartEventRelay,
	),
)

// StartEventRelay ships outbox rows to AMQP. Without BROKER_URL, or while the broker is down, the events stay in the table.
func StartEventRelay(lc fx.Lifecycle, cfg config.Config, uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) {
	if cfg.Broker.URL == "" {
		logger.Info("broker not configured, event relay disabled")
		return
	}

	var (
		publisher *broker.AMQPPublisher
		relay     *broker.Relay
	)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			publisher = broker.NewAMQPPublisher(cfg.Broker.URL, cfg.Broker.Exchange)
			publisher.Start()
			relay = broker.NewRelay(uow, publisher, clk, broker.RelayConfig{
				PollInterval: cfg.Broker.PollInterval,
				BatchSize:    cfg.Broker.BatchSize,
			})
			relay.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			if relay != nil {
				relay.Stop()
			}
			if publisher != nil {
				return publisher.Close()
			}
			return nil
		},
	})
}
