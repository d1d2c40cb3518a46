package event

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jwalitptl/doctor-channel/internal/config"
	"github.com/jwalitptl/doctor-channel/pkg/messaging"
	"github.com/jwalitptl/doctor-channel/pkg/messaging/rabbitmq"
	"github.com/jwalitptl/doctor-channel/pkg/messaging/redis"
)

// NewBroker connects the event transport selected by cfg.Events.Broker.
func NewBroker(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (messaging.Broker, error) {
	switch strings.ToLower(cfg.Events.Broker) {
	case "", "none":
		return messaging.NoopBroker{}, nil
	case "redis":
		return redis.NewRedisBroker(ctx, cfg.Redis.ToBrokerConfig(), logger)
	case "rabbitmq":
		return rabbitmq.NewBroker(cfg.RabbitMQ.ToBrokerConfig(), logger)
	default:
		return nil, fmt.Errorf("unsupported events broker %q", cfg.Events.Broker)
	}
}
