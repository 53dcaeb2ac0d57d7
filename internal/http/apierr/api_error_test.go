package apierr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tuanvumaihuynh/product-catalog/internal/apperr"
	"github.com/tuanvumaihuynh/product-catalog/internal/http/apierr"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "query failure keeps static message",
			err:        fmt.Errorf("handler: %w", apperr.ProductSaveErr.WrapParent(errors.New("duplicate key"))),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Failed to save product",
		},
		{
			name:       "bad path id",
			err:        apperr.InvalidProductIDErr,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "invalid product id",
		},
		{
			name:       "database down",
			err:        apperr.DatabaseUnavailableErr,
			wantStatus: http.StatusServiceUnavailable,
			wantMsg:    "database unavailable",
		},
		{
			name:       "unknown error hides detail",
			err:        errors.New("pq: password authentication failed"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "an unknown error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := apierr.New(tt.err)
			assert.Equal(t, tt.wantStatus, res.StatusCode)
			assert.Equal(t, tt.wantMsg, res.Error)
		})
	}
}
