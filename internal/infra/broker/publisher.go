package broker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"classroom-reservations/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ErrNotConnected is returned while the publisher has no live channel. The relay leaves the event unpublished.
var ErrNotConnected = errs.New("broker not connected")

const (
	defaultMinBackoff = time.Second
	defaultMaxBackoff = 30 * time.Second
)

type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// Session is one live connection. Closed yields once when either the connection or the channel goes away.
type Session struct {
	Channel Channel
	Closed  <-chan *amqp.Error
	Close   func() error
}

type Dialer func(url, exchange string) (*Session, error)

// DialAMQP connects, opens a channel and declares the durable topic exchange.
func DialAMQP(url, exchange string) (*Session, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errs.Wrap(err, "dial rabbitmq")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "open channel")
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrap(err, "declare exchange")
	}

	connClosed := conn.NotifyClose(make(chan *amqp.Error, 1))
	chClosed := ch.NotifyClose(make(chan *amqp.Error, 1))
	closed := make(chan *amqp.Error, 1)
	go func() {
		select {
		case e := <-connClosed:
			closed <- e
		case e := <-chClosed:
			closed <- e
		}
	}()

	return &Session{
		Channel: ch,
		Closed:  closed,
		Close: func() error {
			_ = ch.Close()
			return conn.Close()
		},
	}, nil
}

type PublisherOption func(*AMQPPublisher)

func WithDialer(d Dialer) PublisherOption {
	return func(p *AMQPPublisher) { p.dial = d }
}

func WithBackoff(minBackoff, maxBackoff time.Duration) PublisherOption {
	return func(p *AMQPPublisher) {
		p.minBackoff = minBackoff
		p.maxBackoff = maxBackoff
	}
}

// AMQPPublisher publishes persistent JSON messages to a durable topic exchange
// and keeps redialing in the background whenever the connection drops.
type AMQPPublisher struct {
	url        string
	exchange   string
	dial       Dialer
	minBackoff time.Duration
	maxBackoff time.Duration

	mu      sync.RWMutex
	session *Session

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewAMQPPublisher(url, exchange string, opts ...PublisherOption) *AMQPPublisher {
	p := &AMQPPublisher{
		url:        url,
		exchange:   exchange,
		dial:       DialAMQP,
		minBackoff: defaultMinBackoff,
		maxBackoff: defaultMaxBackoff,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start returns immediately. A broker that is down only delays delivery.
func (p *AMQPPublisher) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.wg.Add(1)
	go p.maintain(ctx)
}

func (p *AMQPPublisher) maintain(ctx context.Context) {
	defer p.wg.Done()

	backoff := p.minBackoff
	for {
		session, err := p.dial(p.url, p.exchange)
		if err != nil {
			slog.Warn("broker unavailable", "error", err.Error(), "retry_in", backoff.String())
			select {
			case <-ctx.Done():
				return
			case <-time.After(backoff):
			}
			backoff = nextBackoff(backoff, p.maxBackoff)
			continue
		}

		backoff = p.minBackoff
		p.swap(session)
		slog.Info("broker connected", "exchange", p.exchange)

		select {
		case <-ctx.Done():
			return
		case reason := <-session.Closed:
			p.swap(nil)
			_ = session.Close()
			if reason != nil {
				slog.Warn("broker connection lost", "error", reason.Error())
			} else {
				slog.Warn("broker connection lost")
			}
		}
	}
}

func nextBackoff(current, limit time.Duration) time.Duration {
	return min(current*2, limit)
}

func (p *AMQPPublisher) swap(s *Session) {
	p.mu.Lock()
	p.session = s
	p.mu.Unlock()
}

func (p *AMQPPublisher) Connected() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.session != nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, msg Message) error {
	p.mu.RLock()
	s := p.session
	p.mu.RUnlock()
	if s == nil {
		return ErrNotConnected
	}

	return s.Channel.PublishWithContext(ctx, p.exchange, msg.RoutingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    msg.ID,
		Timestamp:    msg.Timestamp.UTC(),
		Type:         msg.RoutingKey,
		Body:         msg.Body,
	})
}

// Close stops redialing and closes the live session, if any.
func (p *AMQPPublisher) Close() error {
	if p.cancel != nil {
		p.cancel()
		p.wg.Wait()
	}

	p.mu.Lock()
	s := p.session
	p.session = nil
	p.mu.Unlock()
	if s != nil {
		return s.Close()
	}
	return nil
}

type Message struct {
	ID         string
	RoutingKey string
	Timestamp  time.Time
	Body       []byte
}
