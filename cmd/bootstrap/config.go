package bootstrap

import (
	"fmt"
	"time"

	"classroom-reservations/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		LoadConfig,
	),
)

// LoadConfig fails start-up on settings that would otherwise only break at the first request.
func LoadConfig() (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, err
	}

	if _, err := time.ParseDuration(cfg.JWT.Duration); err != nil {
		return config.Config{}, fmt.Errorf("invalid JWT_DURATION %q: %w", cfg.JWT.Duration, err)
	}
	if _, err := time.LoadLocation(cfg.Reservation.QuotaTimeZone); err != nil {
		return config.Config{}, fmt.Errorf("invalid RESERVATION_QUOTA_TIMEZONE %q: %w", cfg.Reservation.QuotaTimeZone, err)
	}
	if !cfg.Reservation.QuotaDisabled && cfg.Reservation.MaxPerDay <= 0 {
		return config.Config{}, fmt.Errorf("RESERVATION_MAX_PER_DAY must be positive when the quota is enabled")
	}

	return cfg, nil
}
