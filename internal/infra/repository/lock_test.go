//go:build unit

package repository_test

import (
	"context"
	"testing"

	"classroom-reservations/internal/infra/repository"
	"classroom-reservations/tests/common/builder"
	repositorymock "classroom-reservations/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSlotLockKey(t *testing.T) {
	base := builder.NewReservationBuilder().BuildDomain().SlotQuery()

	t.Run("same day shares a key regardless of interval and exclusion", func(t *testing.T) {
		other := builder.NewReservationBuilder().WithSlot("07:00", "08:00").BuildDomain().SlotQuery()
		other.ExcludeID = nil
		assert.Equal(t, repository.SlotLockKey(base), repository.SlotLockKey(other))
	})

	t.Run("different day, room or kind gives a different key", func(t *testing.T) {
		otherDay := builder.NewReservationBuilder().WithDay(2).BuildDomain().SlotQuery()
		otherRoom := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.RoomID = 2 }).BuildDomain().SlotQuery()
		exam := builder.NewExamBuilder().BuildDomain().SlotQuery()

		assert.NotEqual(t, repository.SlotLockKey(base), repository.SlotLockKey(otherDay))
		assert.NotEqual(t, repository.SlotLockKey(base), repository.SlotLockKey(otherRoom))
		assert.NotEqual(t, repository.SlotLockKey(base), repository.SlotLockKey(exam))
	})

	t.Run("exams on the same weekday but different dates do not share a key", func(t *testing.T) {
		a := builder.NewExamBuilder().BuildDomain().SlotQuery()
		b := builder.NewExamBuilder().With(func(b *builder.ReservationBuilder) { b.Date = "2025-03-24" }).BuildDomain().SlotQuery()
		require.Equal(t, a.DayOfWeek, b.DayOfWeek)
		assert.NotEqual(t, repository.SlotLockKey(a), repository.SlotLockKey(b))
	})
}

func TestAdvisoryLocker(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockLockQueries(ctrl)
	mockDB := &mockDBTX{}
	locker := repository.NewAdvisoryLocker(mockQueries)

	q := builder.NewReservationBuilder().BuildDomain().SlotQuery()
	mockQueries.EXPECT().AcquireSlotLock(ctx, mockDB, repository.SlotLockKey(q)).Return(nil)
	require.NoError(t, locker.LockSlot(ctx, mockDB, q))

	requester := uuid.New()
	mockQueries.EXPECT().AcquireSlotLock(ctx, mockDB, gomock.Not(repository.SlotLockKey(q))).Return(nil)
	require.NoError(t, locker.LockRequester(ctx, mockDB, requester))
}
