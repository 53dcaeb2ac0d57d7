package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/tuanvumaihuynh/product-catalog/internal/storage/mq"
)

// Service is the event service.
type Service struct {
	logger     *slog.Logger
	mqConsumer mq.Consumer
}

// New creates a new event service.
func New(
	logger *slog.Logger,
	mqConsumer mq.Consumer,
) *Service {
	return &Service{
		logger:     logger.With(slog.String("service", "event")),
		mqConsumer: mqConsumer,
	}
}

type CleanupFunc func()

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	if err := s.RegisterHandlers(); err != nil {
		return nil, err
	}

	mqCleanup, err := s.mqConsumer.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("run mq consumer: %w", err)
	}

	return CleanupFunc(mqCleanup), nil
}

// RegisterHandlers subscribes the product topics on the consumer.
func (s *Service) RegisterHandlers() error {
	handlers := map[string]mq.HandlerFunc{
		TopicProductCreated: decodeWith(s.handleProductCreatedEvent),
		TopicProductUpdated: decodeWith(s.handleProductUpdatedEvent),
		TopicProductDeleted: decodeWith(s.handleProductDeletedEvent),
	}

	for topic, handler := range handlers {
		if err := s.mqConsumer.RegisterHandler(topic, handler); err != nil {
			return fmt.Errorf("register %s event handler: %w", topic, err)
		}
	}

	return nil
}

func decodeWith[E any](handle func(context.Context, E) error) mq.HandlerFunc {
	return func(ctx context.Context, topic string, payload []byte) error {
		var ev E
		if err := json.Unmarshal(payload, &ev); err != nil {
			return fmt.Errorf("unmarshal %s event: %w", topic, err)
		}

		if err := handle(ctx, ev); err != nil {
			return fmt.Errorf("handle %s event: %w", topic, err)
		}

		return nil
	}
}
