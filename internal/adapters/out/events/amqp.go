package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"dispatch/internal/adapters/out/metrics"
	"dispatch/internal/core/domain/model/history"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const publishTimeout = 5 * time.Second

var ErrPublisherClosed = errors.New("amqp publisher is closed")

// AMQPPublisher puts one persistent JSON message per transition on a topic
// exchange, routed by event type (e.g. "delivery.failed"). A channel closed
// by the broker is reopened on the next publish.
type AMQPPublisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	closed   bool
	exchange string
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewAMQPPublisher opens a channel on conn and declares exchange as a durable
// topic exchange.
func NewAMQPPublisher(conn *amqp.Connection, exchange string, m *metrics.Metrics, logger *zap.Logger) (*AMQPPublisher, error) {
	p := &AMQPPublisher{
		conn:     conn,
		exchange: exchange,
		metrics:  m,
		logger:   logger.With(zap.String("component", "amqp-publisher")),
	}
	if err := p.open(); err != nil {
		return nil, err
	}
	return p, nil
}

// open must be called with p.mu held or before p is shared.
func (p *AMQPPublisher) open() error {
	ch, err := p.conn.Channel()
	if err != nil {
		return err
	}
	if err := ch.ExchangeDeclare(p.exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return err
	}
	p.ch = ch
	return nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, entries []history.Entry) {
	// the request context may be cancelled right after the response is written
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	for _, e := range entries {
		if err := p.publish(ctx, e); err != nil {
			p.metrics.PublishFailures.WithLabelValues(e.EventType()).Inc()
			p.logger.Warn("event not published",
				zap.String("event", e.EventType()),
				zap.Stringer("entityId", e.EntityID),
				zap.Error(err),
			)
		}
	}
}

func (p *AMQPPublisher) publish(ctx context.Context, e history.Entry) error {
	msg, err := newMessage(e)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrPublisherClosed
	}
	if p.ch == nil || p.ch.IsClosed() {
		if err := p.open(); err != nil {
			return fmt.Errorf("reopen amqp channel: %w", err)
		}
		p.logger.Info("amqp channel reopened")
	}
	return p.ch.PublishWithContext(ctx, p.exchange, e.EventType(), false, false, msg)
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	if p.ch == nil {
		return nil
	}
	err := p.ch.Close()
	p.ch = nil
	return err
}

func newMessage(e history.Entry) (amqp.Publishing, error) {
	body, err := json.Marshal(FromEntry(e))
	if err != nil {
		return amqp.Publishing{}, err
	}
	return amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Type:         e.EventType(),
		Timestamp:    e.At.UTC(),
		Headers: amqp.Table{
			"entity_type": string(e.EntityType),
			"entity_id":   e.EntityID.String(),
		},
		Body: body,
	}, nil
}
