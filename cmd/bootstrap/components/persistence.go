package components

import (
	"classroom-reservations/internal/infra/cache"
	"classroom-reservations/internal/infra/readstore"
	sqlc "classroom-reservations/internal/infra/sqlc/generated"
	"classroom-reservations/internal/infra/uow"
	"classroom-reservations/internal/pkg/config"
	"classroom-reservations/internal/usecase/queries"
	"classroom-reservations/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Regular reservations
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RegularViewQueries)),
		),
		readstore.NewRegularReadStore,
		// Exam reservations
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ExamViewQueries)),
		),
		readstore.NewExamReadStore,
		NewReadStores,
		// Rooms
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RoomReadQueries)),
		),
		readstore.NewRoomReadStore,
		NewRoomDirectory,
	),
)

// Write-side repositories are created per transaction by the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		NewUnitOfWork,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

func NewUnitOfWork(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return uow.NewPostgresUoW(pool, q)
}

func NewReadStores(regular *readstore.RegularReadStore, exam *readstore.ExamReadStore) queries.ReadStores {
	return queries.ReadStores{Regular: regular, Exam: exam}
}

// NewRoomDirectory puts the Redis cache in front of the rooms table when a client is configured.
func NewRoomDirectory(store *readstore.RoomReadStore, client *redis.Client, cfg config.Config) shared.RoomDirectory {
	if client == nil {
		return cache.NewRoomCache(store, nil, cfg.Redis.RoomTTL)
	}
	return cache.NewRoomCache(store, client, cfg.Redis.RoomTTL)
}
