//go:build unit

package queries_test

import (
	"context"
	"testing"

	"classroom-reservations/internal/pkg/errs"
	"classroom-reservations/internal/usecase/queries"
	"classroom-reservations/internal/usecase/shared"
	"classroom-reservations/tests/common/builder"
	sharedmock "classroom-reservations/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRoomQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("list maps every room", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dir := sharedmock.NewMockRoomDirectory(ctrl)
		lab := builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) {
			b.ID = 2
			b.Number = "Lab 1"
			b.Computers = 20
		}).BuildSnapshot()
		dir.EXPECT().ListRooms(ctx).Return([]*shared.RoomSnapshot{builder.NewRoomBuilder().BuildSnapshot(), lab}, nil)

		actual, err := queries.NewRoomQueries(dir).ListRooms(ctx)

		require.NoError(t, err)
		require.Len(t, actual, 2)
		assert.Equal(t, "Lab 1", actual[1].Number)
		assert.Equal(t, 20, actual[1].Computers)
		assert.Equal(t, "available", actual[0].Status)
	})

	t.Run("missing room", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dir := sharedmock.NewMockRoomDirectory(ctrl)
		dir.EXPECT().GetRoom(ctx, int64(99)).Return(nil, nil)

		_, err := queries.NewRoomQueries(dir).GetRoom(ctx, 99)

		assert.True(t, errs.Is(err, errs.ErrRoomNotFound))
	})
}
