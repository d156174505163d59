//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"classroom-reservations/internal/domain/reservation"
	"classroom-reservations/internal/infra"
	"classroom-reservations/internal/infra/repository"
	sqlc "classroom-reservations/internal/infra/sqlc/generated"
	"classroom-reservations/tests/common/builder"
	repositorymock "classroom-reservations/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestExamRepository_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success: exam fields mapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockExamWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewExamRepository(mockQueries)

		b := builder.NewExamBuilder()
		mockQueries.EXPECT().GetExamReservationByID(ctx, mockDB, b.ID).Return(b.BuildExamRow(), nil)

		actual, err := repo.FindByID(ctx, mockDB, b.ID)

		require.NoError(t, err)
		assert.Equal(t, reservation.KindExam, actual.Kind())
		require.NotNil(t, actual.Date())
		assert.Equal(t, "2025-03-17", actual.Date().Format(reservation.DateLayout))
		require.NotNil(t, actual.Subject())
		assert.Equal(t, *b.Subject, *actual.Subject())
	})

	t.Run("error: no rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockExamWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewExamRepository(mockQueries)

		b := builder.NewExamBuilder()
		mockQueries.EXPECT().GetExamReservationByID(ctx, mockDB, b.ID).Return(sqlc.ExamReservation{}, pgx.ErrNoRows)

		_, err := repo.FindByID(ctx, mockDB, b.ID)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestExamRepository_QueriesKeyOnDate(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockExamWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewExamRepository(mockQueries)

	candidate := builder.NewExamBuilder().BuildDomain()
	q := candidate.SlotQuery()
	expectedDate := time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)

	mockQueries.EXPECT().FindApprovedExamOverlaps(ctx, mockDB, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ sqlc.DBTX, arg sqlc.FindApprovedExamOverlapsParams) ([]sqlc.ExamReservation, error) {
			assert.True(t, arg.ExamDate.Valid)
			assert.True(t, expectedDate.Equal(arg.ExamDate.Time))
			assert.True(t, arg.ExcludeID.Valid)
			return nil, nil
		})
	mockQueries.EXPECT().FindPendingExamDuplicates(ctx, mockDB, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ sqlc.DBTX, arg sqlc.FindPendingExamDuplicatesParams) ([]sqlc.ExamReservation, error) {
			assert.True(t, expectedDate.Equal(arg.ExamDate.Time))
			assert.Equal(t, candidate.RequesterID(), arg.RequesterID)
			return []sqlc.ExamReservation{builder.NewExamBuilder().BuildExamRow()}, nil
		})

	overlaps, err := repo.FindApprovedOverlapping(ctx, mockDB, q)
	require.NoError(t, err)
	assert.Empty(t, overlaps)

	dups, err := repo.FindPendingDuplicates(ctx, mockDB, candidate.RequesterID(), q)
	require.NoError(t, err)
	assert.Len(t, dups, 1)
}
