package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	DB          DBConfig
	CORS        CORSConfig
	Log         LogConfig
	JWT         JWTConfig
	Reservation ReservationConfig
	Redis       RedisConfig
	Broker      BrokerConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"America/Argentina/Buenos_Aires"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Argentina/Buenos_Aires"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-10800"` // -3*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// ReservationConfig drives quota and duration rules of the lifecycle engine.
type ReservationConfig struct {
	MaxPerDay          int           `envconfig:"RESERVATION_MAX_PER_DAY" default:"5"`
	QuotaDisabled      bool          `envconfig:"RESERVATION_QUOTA_DISABLED" default:"false"`
	QuotaTimeZone      string        `envconfig:"RESERVATION_QUOTA_TIMEZONE" default:"America/Argentina/Buenos_Aires"`
	RegularMinDuration time.Duration `envconfig:"RESERVATION_REGULAR_MIN_DURATION" default:"30m"`
	RegularMaxDuration time.Duration `envconfig:"RESERVATION_REGULAR_MAX_DURATION" default:"8h"`
	ExamMinDuration    time.Duration `envconfig:"RESERVATION_EXAM_MIN_DURATION" default:"30m"`
	ExamMaxDuration    time.Duration `envconfig:"RESERVATION_EXAM_MAX_DURATION" default:"6h"`
}

// RedisConfig is optional: an empty Addr disables the room cache.
type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	RoomTTL  time.Duration `envconfig:"REDIS_ROOM_TTL" default:"5m"`
}

// BrokerConfig is optional: an empty URL keeps events in the outbox table.
type BrokerConfig struct {
	URL          string        `envconfig:"BROKER_URL"`
	Exchange     string        `envconfig:"BROKER_EXCHANGE" default:"reservations"`
	PollInterval time.Duration `envconfig:"BROKER_POLL_INTERVAL" default:"2s"`
	BatchSize    int32         `envconfig:"BROKER_BATCH_SIZE" default:"50"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c ReservationConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.QuotaTimeZone)
	if err != nil {
		return time.Local
	}
	return loc
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "America/Argentina/Buenos_Aires",
			MaxConns: 10,
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8080"},
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Argentina/Buenos_Aires",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -10800,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-e2e-only",
			Duration: "1h",
		},
		Reservation: ReservationConfig{
			MaxPerDay:          5,
			QuotaDisabled:      true,
			QuotaTimeZone:      "America/Argentina/Buenos_Aires",
			RegularMinDuration: 30 * time.Minute,
			RegularMaxDuration: 8 * time.Hour,
			ExamMinDuration:    30 * time.Minute,
			ExamMaxDuration:    6 * time.Hour,
		},
		Broker: BrokerConfig{
			Exchange:     "reservations",
			PollInterval: time.Second,
			BatchSize:    10,
		},
	}
}
