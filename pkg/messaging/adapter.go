package messaging

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Handler processes one raw message.
type Handler func(ctx context.Context, payload []byte) error

// Consume subscribes to channel and feeds every message to handler until ctx is done.
// Handler errors are logged and processing continues.
func Consume(ctx context.Context, broker Broker, channel string, handler Handler) error {
	msgChan, err := broker.Subscribe(ctx, channel)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgChan:
			if !ok {
				return nil
			}
			if err := handler(ctx, msg); err != nil {
				log.Error().Err(err).Str("channel", channel).Msg("failed to handle message")
			}
		}
	}
}
