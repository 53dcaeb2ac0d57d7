package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/product-catalog/internal/config"
)

func TestRelayConfig(t *testing.T) {
	t.Setenv("RELAY_BATCH_SIZE", "25")
	t.Setenv("RELAY_INTERVAL", "250ms")

	cfg, err := config.New[relayConfig]()
	require.NoError(t, err)

	assert.Equal(t, uint32(25), cfg.Relay.BatchSize)
	assert.Equal(t, 250*time.Millisecond, cfg.Relay.Interval)
}
