// Package events publishes dashboard-invalidation messages over AMQP.
//
// Writers never wait on readers: after a successful period or transaction
// create, the service publishes an invalidation message and consumers
// re-fetch on their own schedule. Publishing is best-effort; a broker
// outage must never fail the write that triggered it.
package events

import (
	"context"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"cofrinho/internal/logger"
)

// Publisher is the write-side contract services depend on.
type Publisher interface {
	PeriodCreated(ctx context.Context, periodID, userID string) error
	TransactionCreated(ctx context.Context, transactionID, userID string) error
	Close() error
}

// Client is an AMQP-backed Publisher that can also consume its queue.
type Client struct {
	conn         *amqp091.Connection
	channel      *amqp091.Channel
	exchangeName string
	queueName    string
}

var _ Publisher = (*Client)(nil)

// NewClient dials the broker and declares the exchange, queue, and binding.
func NewClient(url, exchangeName, queueName string) (*Client, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	client := &Client{
		conn:         conn,
		channel:      channel,
		exchangeName: exchangeName,
		queueName:    queueName,
	}

	if err := client.setup(); err != nil {
		client.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}

	return client, nil
}

func (c *Client) setup() error {
	err := c.channel.ExchangeDeclare(
		c.exchangeName, // name
		"direct",       // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	_, err = c.channel.QueueDeclare(
		c.queueName, // name
		true,        // durable
		false,       // delete when unused
		false,       // exclusive
		false,       // no-wait
		nil,         // arguments
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	err = c.channel.QueueBind(
		c.queueName,    // queue name
		c.queueName,    // routing key (same as queue name for direct exchange)
		c.exchangeName, // exchange
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	return nil
}

// PeriodCreated publishes an invalidation message for a new period.
func (c *Client) PeriodCreated(ctx context.Context, periodID, userID string) error {
	return c.publish(ctx, NewInvalidationMessage(EntityPeriod, periodID, userID))
}

// TransactionCreated publishes an invalidation message for a new transaction.
func (c *Client) TransactionCreated(ctx context.Context, transactionID, userID string) error {
	return c.publish(ctx, NewInvalidationMessage(EntityTransaction, transactionID, userID))
}

func (c *Client) publish(ctx context.Context, msg *InvalidationMessage) error {
	body, err := msg.ToJSON()
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = c.channel.PublishWithContext(
		ctx,
		c.exchangeName, // exchange
		c.queueName,    // routing key
		false,          // mandatory
		false,          // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	logger.Get().Infow("published invalidation message",
		"entity", msg.Entity,
		"id", msg.ID,
		"user_id", msg.UserID,
		"exchange", c.exchangeName,
		"queue", c.queueName,
	)
	return nil
}

// Consume delivers invalidation messages to handler until ctx is done.
// Messages are acked only after the handler succeeds; failed messages are
// nacked and requeued once.
func (c *Client) Consume(ctx context.Context, handler func(*InvalidationMessage) error) error {
	msgs, err := c.channel.Consume(
		c.queueName, // queue
		"",          // consumer
		false,       // auto-ack (we want manual ack)
		false,       // exclusive
		false,       // no-local
		false,       // no-wait
		nil,         // args
	)
	if err != nil {
		return fmt.Errorf("start consuming: %w", err)
	}

	logger.Get().Infow("started consuming invalidation messages", "queue", c.queueName)

	for {
		select {
		case <-ctx.Done():
			logger.Get().Infow("stopping message consumption", "reason", ctx.Err())
			return ctx.Err()
		case delivery, ok := <-msgs:
			if !ok {
				return fmt.Errorf("message channel closed")
			}

			msg, err := InvalidationMessageFromJSON(delivery.Body)
			if err != nil {
				logger.Get().Errorw("discarding malformed message", "error", err)
				_ = delivery.Nack(false, false)
				continue
			}

			if err := handler(msg); err != nil {
				logger.Get().Errorw("handler failed, requeueing",
					"entity", msg.Entity, "id", msg.ID, "error", err)
				_ = delivery.Nack(false, !delivery.Redelivered)
				continue
			}

			_ = delivery.Ack(false)
		}
	}
}

// Close releases the channel and connection.
func (c *Client) Close() error {
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			logger.Get().Warnf("close AMQP channel: %v", err)
		}
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// NoopPublisher is used when no AMQP broker is configured.
type NoopPublisher struct{}

var _ Publisher = NoopPublisher{}

func (NoopPublisher) PeriodCreated(context.Context, string, string) error      { return nil }
func (NoopPublisher) TransactionCreated(context.Context, string, string) error { return nil }
func (NoopPublisher) Close() error                                             { return nil }
