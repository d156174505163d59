package readstore

import (
	"classroom-reservations/internal/domain/reservation"
	"classroom-reservations/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func timeOfDay(t pgtype.Time) string {
	return reservation.TimeOfDay(pgconv.SecondsFromPgtime(t)).String()
}

func dateString(d pgtype.Date) *string {
	if !d.Valid {
		return nil
	}
	s := d.Time.Format(reservation.DateLayout)
	return &s
}
