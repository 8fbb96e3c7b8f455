package notify

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"

	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/commands"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// Channel is the part of *amqp.Channel the publisher needs.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// DialFunc opens a connection and channel with the exchange declared. closed receives
// the reason when the broker drops the channel; a nil closed is never watched.
type DialFunc func() (ch Channel, conn io.Closer, closed <-chan *amqp.Error, err error)

var errPublisherClosed = errs.New("publisher is closed")

// Publisher sends booking events to a topic exchange, one message per event,
// routed by "booking.<event>". A dropped connection is redialed on the next Notify.
type Publisher struct {
	mu       sync.Mutex
	dial     DialFunc
	ch       Channel
	conn     io.Closer
	gen      uint64
	stopped  bool
	exchange string
	logger   *slog.Logger
}

func NewPublisher(url, exchange string, logger *slog.Logger) (*Publisher, error) {
	p := &Publisher{dial: AMQPDialer(url, exchange), exchange: exchange, logger: logger}
	if _, err := p.channel(); err != nil {
		return nil, err
	}
	return p, nil
}

// NewPublisherWithDialer is NewPublisher with a custom connection source.
func NewPublisherWithDialer(dial DialFunc, exchange string, logger *slog.Logger) (*Publisher, error) {
	p := &Publisher{dial: dial, exchange: exchange, logger: logger}
	if _, err := p.channel(); err != nil {
		return nil, err
	}
	return p, nil
}

// NewPublisherWithChannel publishes on an already prepared channel and never redials.
func NewPublisherWithChannel(ch Channel, exchange string) *Publisher {
	return &Publisher{ch: ch, exchange: exchange, logger: slog.Default()}
}

func AMQPDialer(url, exchange string) DialFunc {
	return func() (Channel, io.Closer, <-chan *amqp.Error, error) {
		conn, err := amqp.Dial(url)
		if err != nil {
			return nil, nil, nil, errs.Wrap(err, "dial rabbitmq")
		}
		ch, err := conn.Channel()
		if err != nil {
			_ = conn.Close()
			return nil, nil, nil, errs.Wrap(err, "open channel")
		}
		if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return nil, nil, nil, errs.Wrapf(err, "declare exchange %s", exchange)
		}
		// channel listeners also fire when the whole connection goes away
		closed := ch.NotifyClose(make(chan *amqp.Error, 1))
		return ch, conn, closed, nil
	}
}

func (p *Publisher) Notify(ctx context.Context, event commands.BookingEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "marshal booking event")
	}

	ch, err := p.channel()
	if err != nil {
		return errs.Wrapf(err, "publish %s", event.RoutingKey())
	}

	headers := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, headers)
	table := amqp.Table{}
	for k, v := range headers {
		table[k] = v
	}

	err = ch.PublishWithContext(ctx, p.exchange, event.RoutingKey(), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    event.OccurredAt,
		Type:         event.RoutingKey(),
		Headers:      table,
		Body:         body,
	})
	if err != nil {
		if errs.Is(err, amqp.ErrClosed) {
			p.drop(ch)
		}
		return errs.Wrapf(err, "publish %s", event.RoutingKey())
	}
	return nil
}

// Connected reports whether a channel is currently open.
func (p *Publisher) Connected() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ch != nil
}

func (p *Publisher) channel() (Channel, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped {
		return nil, errPublisherClosed
	}
	if p.ch != nil {
		return p.ch, nil
	}
	if p.dial == nil {
		return nil, errs.New("rabbitmq channel is closed")
	}

	ch, conn, closed, err := p.dial()
	if err != nil {
		return nil, err
	}
	p.gen++
	p.ch, p.conn = ch, conn
	if p.gen > 1 {
		p.logger.Info("RabbitMQに再接続しました", "exchange", p.exchange, "generation", p.gen)
	}
	if closed != nil {
		go p.watch(p.gen, closed)
	}
	return ch, nil
}

func (p *Publisher) watch(gen uint64, closed <-chan *amqp.Error) {
	reason, ok := <-closed

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stopped || gen != p.gen {
		return
	}
	if ok && reason != nil {
		p.logger.Error("RabbitMQとの接続が切断されました。次の通知で再接続します",
			"exchange", p.exchange, "code", reason.Code, "reason", reason.Reason, "server", reason.Server)
	} else {
		p.logger.Error("RabbitMQのチャネルが閉じられました。次の通知で再接続します", "exchange", p.exchange)
	}
	p.closeSession()
}

func (p *Publisher) drop(ch Channel) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch == ch {
		p.logger.Error("RabbitMQのチャネルが使用できません。次の通知で再接続します", "exchange", p.exchange)
		p.closeSession()
	}
}

// closeSession must be called with mu held.
func (p *Publisher) closeSession() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
	p.ch, p.conn = nil, nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopped = true

	var err error
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		err = p.conn.Close()
	}
	p.ch, p.conn = nil, nil
	return err
}
