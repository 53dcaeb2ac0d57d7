package correlationid_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tuanvumaihuynh/product-catalog/pkg/correlationid"
)

func TestContext(t *testing.T) {
	t.Run("Should return false when missing", func(t *testing.T) {
		_, ok := correlationid.FromContext(context.Background())
		assert.False(t, ok)
	})

	t.Run("Should round trip through context", func(t *testing.T) {
		id := correlationid.New()
		ctx := correlationid.NewContext(context.Background(), id)

		got, ok := correlationid.FromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, id, got)
	})

	t.Run("Should ignore empty id", func(t *testing.T) {
		ctx := correlationid.NewContext(context.Background(), "")
		_, ok := correlationid.FromContext(ctx)
		assert.False(t, ok)
	})
}
