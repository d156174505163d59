//go:build unit

package broker_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"classroom-reservations/internal/infra/broker"
	brokermock "classroom-reservations/tests/mock/broker"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeSession struct {
	channel *brokermock.MockChannel
	closed  chan *amqp.Error
	shut    atomic.Bool
}

func newFakeSession(ctrl *gomock.Controller) *fakeSession {
	return &fakeSession{
		channel: brokermock.NewMockChannel(ctrl),
		closed:  make(chan *amqp.Error, 1),
	}
}

func (f *fakeSession) session() *broker.Session {
	return &broker.Session{
		Channel: f.channel,
		Closed:  f.closed,
		Close: func() error {
			f.shut.Store(true)
			return nil
		},
	}
}

// scriptedDialer hands out the given outcomes in order and keeps failing once they run out.
func scriptedDialer(outcomes ...*fakeSession) (broker.Dialer, *atomic.Int32) {
	var calls atomic.Int32
	return func(string, string) (*broker.Session, error) {
		i := int(calls.Add(1)) - 1
		if i >= len(outcomes) || outcomes[i] == nil {
			return nil, errors.New("connection refused")
		}
		return outcomes[i].session(), nil
	}, &calls
}

func approvedMessage() broker.Message {
	return broker.Message{
		ID:         "5f0c6a4e-8d4b-4c41-9a51-2b1f3c2d9e10",
		RoutingKey: "reservation.approved",
		Timestamp:  time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
		Body:       []byte(`{"status":"APPROVED"}`),
	}
}

func TestAMQPPublisher(t *testing.T) {
	ctx := context.Background()

	t.Run("unreachable broker does not block start and defers publishing", func(t *testing.T) {
		dial, calls := scriptedDialer()
		p := broker.NewAMQPPublisher("amqp://nowhere", "reservations",
			broker.WithDialer(dial), broker.WithBackoff(time.Millisecond, 5*time.Millisecond))

		p.Start()

		assert.Eventually(t, func() bool { return calls.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)
		assert.False(t, p.Connected())
		assert.ErrorIs(t, p.Publish(ctx, approvedMessage()), broker.ErrNotConnected)
		require.NoError(t, p.Close())
	})

	t.Run("publish before start reports not connected", func(t *testing.T) {
		p := broker.NewAMQPPublisher("amqp://nowhere", "reservations")

		assert.ErrorIs(t, p.Publish(ctx, approvedMessage()), broker.ErrNotConnected)
		require.NoError(t, p.Close())
	})

	t.Run("publishes a persistent message to the exchange", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		live := newFakeSession(ctrl)
		dial, _ := scriptedDialer(nil, live)
		p := broker.NewAMQPPublisher("amqp://broker", "reservations",
			broker.WithDialer(dial), broker.WithBackoff(time.Millisecond, time.Millisecond))
		msg := approvedMessage()

		live.channel.EXPECT().PublishWithContext(gomock.Any(), "reservations", "reservation.approved", false, false,
			gomock.Cond(func(pub amqp.Publishing) bool {
				return pub.DeliveryMode == amqp.Persistent &&
					pub.ContentType == "application/json" &&
					pub.MessageId == msg.ID &&
					pub.Type == "reservation.approved" &&
					pub.Timestamp.Equal(msg.Timestamp) &&
					string(pub.Body) == string(msg.Body)
			})).Return(nil)

		p.Start()
		require.Eventually(t, p.Connected, 2*time.Second, time.Millisecond)

		require.NoError(t, p.Publish(ctx, msg))
		require.NoError(t, p.Close())
		assert.True(t, live.shut.Load())
	})

	t.Run("redials after the connection is lost", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		first := newFakeSession(ctrl)
		second := newFakeSession(ctrl)
		dial, calls := scriptedDialer(first, nil, second)
		p := broker.NewAMQPPublisher("amqp://broker", "reservations",
			broker.WithDialer(dial), broker.WithBackoff(time.Millisecond, time.Millisecond))

		first.channel.EXPECT().PublishWithContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).MinTimes(1)
		var reachedSecond atomic.Bool
		second.channel.EXPECT().PublishWithContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, string, string, bool, bool, amqp.Publishing) error {
				reachedSecond.Store(true)
				return nil
			}).MinTimes(1)

		p.Start()
		require.Eventually(t, p.Connected, 2*time.Second, time.Millisecond)
		require.NoError(t, p.Publish(ctx, approvedMessage()))

		first.closed <- amqp.ErrClosed

		require.Eventually(t, func() bool {
			_ = p.Publish(ctx, approvedMessage())
			return reachedSecond.Load()
		}, 2*time.Second, time.Millisecond)
		assert.True(t, first.shut.Load())
		assert.GreaterOrEqual(t, calls.Load(), int32(3))

		require.NoError(t, p.Close())
		assert.True(t, second.shut.Load())
	})
}

func TestAMQPPublisher_CloseWhileRetrying(t *testing.T) {
	dial, _ := scriptedDialer()
	p := broker.NewAMQPPublisher("amqp://nowhere", "reservations",
		broker.WithDialer(dial), broker.WithBackoff(time.Hour, time.Hour))
	p.Start()

	done := make(chan struct{})
	go func() {
		_ = p.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not interrupt the retry backoff")
	}
}
