package http_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpsvc "github.com/tuanvumaihuynh/product-catalog/internal/http"
)

func TestMoneyUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "number", input: `12.5`, expected: "12.5"},
		{name: "string", input: `"12.50"`, expected: "12.5"},
		{name: "blank string", input: `""`, expected: "0"},
		{name: "whitespace string", input: `"  "`, expected: "0"},
		{name: "null", input: `null`, expected: "0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var m httpsvc.Money
			require.NoError(t, json.Unmarshal([]byte(tc.input), &m))
			assert.True(t, decimal.RequireFromString(tc.expected).Equal(m.Decimal), "got %s", m.Decimal)
		})
	}

	t.Run("Should reject text that is not a number", func(t *testing.T) {
		var m httpsvc.Money
		assert.Error(t, json.Unmarshal([]byte(`"abc"`), &m))
	})
}
