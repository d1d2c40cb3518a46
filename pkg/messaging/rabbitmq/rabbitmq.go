package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	"github.com/jwalitptl/doctor-channel/pkg/messaging"
)

type Config struct {
	URL string
}

// Broker publishes to and consumes from durable queues named after the channel.
type Broker struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	logger  zerolog.Logger

	mu       sync.Mutex
	declared map[string]bool
}

func NewBroker(config Config, logger zerolog.Logger) (messaging.Broker, error) {
	conn, err := amqp091.Dial(config.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	logger.Info().Msg("connected to RabbitMQ")
	return &Broker{
		conn:     conn,
		channel:  ch,
		logger:   logger,
		declared: make(map[string]bool),
	}, nil
}

func (b *Broker) declare(queue string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.declared[queue] {
		return nil
	}
	if _, err := b.channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", queue, err)
	}
	b.declared[queue] = true
	return nil
}

func (b *Broker) Publish(ctx context.Context, channel string, message interface{}) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}
	if err := b.declare(channel); err != nil {
		return err
	}

	msg := amqp091.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp091.Persistent,
	}
	if err := b.channel.PublishWithContext(ctx, "", channel, false, false, msg); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

func (b *Broker) Subscribe(ctx context.Context, channel string) (<-chan []byte, error) {
	if err := b.declare(channel); err != nil {
		return nil, err
	}

	deliveries, err := b.channel.ConsumeWithContext(ctx, channel, "", false, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to consume %s: %w", channel, err)
	}

	msgChan := make(chan []byte, 100)
	go func() {
		defer close(msgChan)
		for {
			select {
			case <-ctx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					b.logger.Warn().Str("queue", channel).Msg("delivery channel closed")
					return
				}
				select {
				case msgChan <- d.Body:
					if err := d.Ack(false); err != nil {
						b.logger.Error().Err(err).Str("queue", channel).Msg("failed to ack delivery")
					}
				case <-ctx.Done():
					_ = d.Nack(false, true)
					return
				}
			}
		}
	}()
	return msgChan, nil
}

func (b *Broker) Close() error {
	if err := b.channel.Close(); err != nil {
		b.logger.Error().Err(err).Msg("failed to close channel")
	}
	return b.conn.Close()
}
