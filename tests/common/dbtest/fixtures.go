//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTestRoom inserts a room and returns its id. An existing room with the same number is reused.
func CreateTestRoom(t *testing.T, db DBLike, number string, capacity int, status string) int64 {
	t.Helper()

	ctx := context.Background()
	var id int64
	err := db.QueryRow(ctx, `
		INSERT INTO rooms (number, location, capacity, has_projector, status)
		VALUES ($1, 'Edificio A', $2, true, $3)
		ON CONFLICT (number) DO UPDATE SET status = EXCLUDED.status
		RETURNING id`,
		number, capacity, status).Scan(&id)
	require.NoError(t, err)

	return id
}

// CountRows is a shortcut for asserting how many rows a table holds.
func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

// CountReservationsOf counts the rows one requester holds in a reservation table.
func CountReservationsOf(t *testing.T, db DBLike, table string, requesterID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM "+table+" WHERE requester_id = $1", requesterID).Scan(&n)
	require.NoError(t, err)
	return n
}

// EventTypes lists the outbox event types recorded for one reservation, oldest first.
func EventTypes(t *testing.T, db DBLike, reservationID uuid.UUID) []string {
	t.Helper()

	rows, err := db.Query(context.Background(),
		"SELECT event_type FROM reservation_events WHERE reservation_id = $1 ORDER BY created_at, event_type",
		reservationID)
	require.NoError(t, err)

	types, err := pgx.CollectRows(rows, pgx.RowTo[string])
	require.NoError(t, err)
	return types
}

// inserts the rooms every test can rely on: 101 and 102 available, 201 under maintenance
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO rooms (number, location, capacity, computers, has_projector, status) VALUES
		    ('101', 'Edificio A', 30, 0, true, 'available'),
		    ('102', 'Edificio A', 40, 20, false, 'available'),
		    ('201', 'Edificio B', 25, 0, true, 'maintenance')
		ON CONFLICT (number) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
