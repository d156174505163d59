//go:build unit

package broker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"classroom-reservations/internal/infra/broker"
	"classroom-reservations/internal/pkg/clock"
	"classroom-reservations/internal/usecase/shared"
	brokermock "classroom-reservations/tests/mock/broker"
	sharedmock "classroom-reservations/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type relayFixture struct {
	events    *sharedmock.MockEventRepository
	publisher *brokermock.MockPublisher
	relay     *broker.Relay
	now       time.Time
}

func newRelayFixture(t *testing.T) *relayFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	tx := sharedmock.NewMockTx(ctrl)
	f := &relayFixture{
		events:    sharedmock.NewMockEventRepository(ctrl),
		publisher: brokermock.NewMockPublisher(ctrl),
		now:       time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
	}

	uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, tx)
		}).AnyTimes()
	tx.EXPECT().DB().Return(nil).AnyTimes()
	tx.EXPECT().Events().Return(f.events).AnyTimes()

	f.relay = broker.NewRelay(uow, f.publisher, clock.NewMockClock(f.now), broker.RelayConfig{BatchSize: 10})
	return f
}

func pendingEvent(typ shared.EventType) shared.PendingEvent {
	return shared.PendingEvent{
		ID:            uuid.New(),
		ReservationID: uuid.New(),
		Kind:          "regular",
		Type:          string(typ),
		Payload:       []byte(`{"status":"APPROVED"}`),
		CreatedAt:     time.Date(2025, 3, 10, 11, 59, 0, 0, time.UTC),
	}
}

func TestRelay_RunOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes and stamps every claimed event", func(t *testing.T) {
		f := newRelayFixture(t)
		first := pendingEvent(shared.EventCreated)
		second := pendingEvent(shared.EventApproved)
		f.events.EXPECT().ClaimUnpublished(gomock.Any(), gomock.Any(), int32(10)).Return([]shared.PendingEvent{first, second}, nil)
		gomock.InOrder(
			f.publisher.EXPECT().Publish(gomock.Any(), broker.Message{
				ID:         first.ID.String(),
				RoutingKey: "reservation.created",
				Timestamp:  first.CreatedAt,
				Body:       first.Payload,
			}).Return(nil),
			f.events.EXPECT().MarkPublished(gomock.Any(), gomock.Any(), first.ID, f.now).Return(nil),
			f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil),
			f.events.EXPECT().MarkPublished(gomock.Any(), gomock.Any(), second.ID, f.now).Return(nil),
		)

		n, err := f.relay.RunOnce(ctx)

		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("publish failure leaves the rest of the batch unstamped", func(t *testing.T) {
		f := newRelayFixture(t)
		first := pendingEvent(shared.EventCreated)
		second := pendingEvent(shared.EventCanceled)
		third := pendingEvent(shared.EventEdited)
		f.events.EXPECT().ClaimUnpublished(gomock.Any(), gomock.Any(), int32(10)).Return([]shared.PendingEvent{first, second, third}, nil)
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
		f.events.EXPECT().MarkPublished(gomock.Any(), gomock.Any(), first.ID, f.now).Return(nil)
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("channel closed"))

		n, err := f.relay.RunOnce(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("disconnected broker defers the whole batch", func(t *testing.T) {
		f := newRelayFixture(t)
		f.events.EXPECT().ClaimUnpublished(gomock.Any(), gomock.Any(), int32(10)).
			Return([]shared.PendingEvent{pendingEvent(shared.EventCreated), pendingEvent(shared.EventApproved)}, nil)
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(broker.ErrNotConnected)
		f.events.EXPECT().MarkPublished(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		n, err := f.relay.RunOnce(ctx)

		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("claim failure is returned", func(t *testing.T) {
		f := newRelayFixture(t)
		dbErr := errors.New("connection refused")
		f.events.EXPECT().ClaimUnpublished(gomock.Any(), gomock.Any(), int32(10)).Return(nil, dbErr)

		n, err := f.relay.RunOnce(ctx)

		assert.ErrorIs(t, err, dbErr)
		assert.Zero(t, n)
	})
}

func TestRelay_StartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	tx := sharedmock.NewMockTx(ctrl)
	events := sharedmock.NewMockEventRepository(ctrl)
	polled := make(chan struct{}, 1)

	uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, tx)
		}).AnyTimes()
	tx.EXPECT().DB().Return(nil).AnyTimes()
	tx.EXPECT().Events().Return(events).AnyTimes()
	events.EXPECT().ClaimUnpublished(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, any, int32) ([]shared.PendingEvent, error) {
			select {
			case polled <- struct{}{}:
			default:
			}
			return nil, nil
		}).MinTimes(1)

	relay := broker.NewRelay(uow, brokermock.NewMockPublisher(ctrl), clock.NewRealClock(), broker.RelayConfig{PollInterval: 10 * time.Millisecond})
	relay.Start()

	select {
	case <-polled:
	case <-time.After(2 * time.Second):
		t.Fatal("relay never polled the outbox")
	}
	relay.Stop()
}
