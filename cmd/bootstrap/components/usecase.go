package components

import (
	"classroom-reservations/internal/domain/reservation"
	"classroom-reservations/internal/pkg/clock"
	"classroom-reservations/internal/pkg/config"
	"classroom-reservations/internal/usecase"
	"classroom-reservations/internal/usecase/commands"
	"classroom-reservations/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewEngineConfig,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationEngine,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewRoomQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewEngineConfig(cfg config.Config) commands.EngineConfig {
	rc := cfg.Reservation
	return commands.EngineConfig{
		MaxPerDay:     rc.MaxPerDay,
		QuotaDisabled: rc.QuotaDisabled,
		QuotaLocation: rc.Location(),
		Regular: reservation.Policy{
			MinDuration:          rc.RegularMinDuration,
			MaxDuration:          rc.RegularMaxDuration,
			CheckOverlapOnCreate: true,
		},
		Exam: reservation.Policy{
			MinDuration: rc.ExamMinDuration,
			MaxDuration: rc.ExamMaxDuration,
		},
	}
}
