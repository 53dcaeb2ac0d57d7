package event_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/product-catalog/internal/event"
	"github.com/tuanvumaihuynh/product-catalog/internal/storage/mq"
)

type fakeConsumer struct {
	handlers map[string]mq.HandlerFunc
}

func (c *fakeConsumer) RegisterHandler(topic string, handler mq.HandlerFunc) error {
	c.handlers[topic] = handler
	return nil
}

func (c *fakeConsumer) Run(context.Context) (mq.CleanupFunc, error) {
	return func() {}, nil
}

func TestService(t *testing.T) {
	var buf bytes.Buffer
	consumer := &fakeConsumer{handlers: map[string]mq.HandlerFunc{}}
	svc := event.New(slog.New(slog.NewTextHandler(&buf, nil)), consumer)

	cleanup, err := svc.Run(context.Background())
	require.NoError(t, err)
	defer cleanup()

	require.Len(t, consumer.handlers, 3)

	t.Run("Should handle product created", func(t *testing.T) {
		payload, err := json.Marshal(event.ProductEvent{ProductID: 1, Title: "mouse", Total: decimal.NewFromInt(9)})
		require.NoError(t, err)

		err = consumer.handlers[event.TopicProductCreated](context.Background(), event.TopicProductCreated, payload)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "product created")
	})

	t.Run("Should warn on delete without match", func(t *testing.T) {
		payload, err := json.Marshal(event.ProductDeletedEvent{ProductID: 42})
		require.NoError(t, err)

		err = consumer.handlers[event.TopicProductDeleted](context.Background(), event.TopicProductDeleted, payload)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "product delete matched no row")
	})

	t.Run("Should reject malformed payload", func(t *testing.T) {
		err := consumer.handlers[event.TopicProductUpdated](context.Background(), event.TopicProductUpdated, []byte("{"))
		assert.Error(t, err)
	})
}
