package form_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/product-catalog/internal/form"
	"github.com/tuanvumaihuynh/product-catalog/internal/model"
)

func draftOf(t *testing.T, values map[form.Field]string) form.Draft {
	t.Helper()

	var d form.Draft
	for field, value := range values {
		var err error
		d, err = d.With(field, value)
		require.NoError(t, err)
	}
	return d
}

func TestDraftTotal(t *testing.T) {
	tests := []struct {
		name     string
		values   map[form.Field]string
		expected string
	}{
		{
			name:     "all inputs",
			values:   map[form.Field]string{form.FieldPrice: "10", form.FieldTaxes: "1", form.FieldAds: "0", form.FieldDiscount: "2"},
			expected: "9",
		},
		{
			name:     "fractions",
			values:   map[form.Field]string{form.FieldPrice: "10.25", form.FieldTaxes: "0.5", form.FieldDiscount: "0.75"},
			expected: "10",
		},
		{
			name:     "blank and unparseable read as zero",
			values:   map[form.Field]string{form.FieldPrice: "7", form.FieldTaxes: "", form.FieldAds: "abc", form.FieldDiscount: " "},
			expected: "7",
		},
		{
			name:     "discount above price",
			values:   map[form.Field]string{form.FieldPrice: "1", form.FieldDiscount: "3"},
			expected: "-2",
		},
		{
			name:     "empty draft",
			values:   nil,
			expected: "0",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := draftOf(t, tc.values)
			assert.True(t, decimal.RequireFromString(tc.expected).Equal(d.Total()), "got %s", d.Total())
		})
	}
}

func TestDraftWith(t *testing.T) {
	t.Run("Should leave the original untouched", func(t *testing.T) {
		original := draftOf(t, map[form.Field]string{form.FieldPrice: "10"})

		changed, err := original.With(form.FieldPrice, "20")
		require.NoError(t, err)

		assert.Equal(t, "10", original.Price())
		assert.Equal(t, "20", changed.Price())
		assert.True(t, decimal.NewFromInt(10).Equal(original.Total()))
		assert.True(t, decimal.NewFromInt(20).Equal(changed.Total()))
	})

	t.Run("Should reject unknown fields", func(t *testing.T) {
		_, err := form.Draft{}.With(form.Field("total"), "5")
		assert.Error(t, err)
	})

	t.Run("Should round trip every field", func(t *testing.T) {
		for _, field := range form.Fields {
			d, err := form.Draft{}.With(field, "x")
			require.NoError(t, err)
			assert.Equal(t, "x", d.Get(field), field)
		}
	})
}

func TestParseField(t *testing.T) {
	f, err := form.ParseField(" Price ")
	require.NoError(t, err)
	assert.Equal(t, form.FieldPrice, f)

	_, err = form.ParseField("total")
	assert.Error(t, err)
}

func TestDraftFromProduct(t *testing.T) {
	d := form.DraftFromProduct(model.Product{
		ID:       3,
		Title:    "mouse",
		Price:    decimal.RequireFromString("10.50"),
		Taxes:    decimal.NewFromInt(1),
		Ads:      decimal.Zero,
		Discount: decimal.NewFromInt(2),
		Total:    decimal.NewFromInt(100),
		Category: "electronics",
	})

	assert.Equal(t, "mouse", d.Title())
	assert.Equal(t, "10.5", d.Price())
	assert.Equal(t, "", d.Count())
	assert.Equal(t, "electronics", d.Category())
	assert.True(t, decimal.RequireFromString("9.5").Equal(d.Total()))
}

func TestMode(t *testing.T) {
	_, ok := form.Create().ID()
	assert.False(t, ok)
	assert.Equal(t, "create", form.Create().String())
	assert.Equal(t, form.Create(), form.Mode{})

	id, ok := form.Editing(4).ID()
	assert.True(t, ok)
	assert.Equal(t, int64(4), id)
	assert.Equal(t, "editing(4)", form.Editing(4).String())
}
