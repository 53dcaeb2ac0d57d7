package event

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"
)

const (
	TopicProductCreated = "product.created"
	TopicProductUpdated = "product.updated"
	TopicProductDeleted = "product.deleted"
)

// ProductEvent is the payload of product.created and product.updated.
type ProductEvent struct {
	ProductID int64           `json:"product_id"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Taxes     decimal.Decimal `json:"taxes"`
	Ads       decimal.Decimal `json:"ads"`
	Discount  decimal.Decimal `json:"discount"`
	Total     decimal.Decimal `json:"total"`
	Category  string          `json:"category"`
}

// ProductDeletedEvent is the payload of product.deleted.
type ProductDeletedEvent struct {
	ProductID    int64 `json:"product_id"`
	AffectedRows int64 `json:"affected_rows"`
}

func (s *Service) handleProductCreatedEvent(ctx context.Context, ev ProductEvent) error {
	s.logger.InfoContext(ctx, "product created",
		slog.Int64("product_id", ev.ProductID),
		slog.String("title", ev.Title),
		slog.String("total", ev.Total.String()))
	return nil
}

func (s *Service) handleProductUpdatedEvent(ctx context.Context, ev ProductEvent) error {
	s.logger.InfoContext(ctx, "product updated",
		slog.Int64("product_id", ev.ProductID),
		slog.String("title", ev.Title),
		slog.String("total", ev.Total.String()))
	return nil
}

func (s *Service) handleProductDeletedEvent(ctx context.Context, ev ProductDeletedEvent) error {
	if ev.AffectedRows == 0 {
		s.logger.WarnContext(ctx, "product delete matched no row", slog.Int64("product_id", ev.ProductID))
		return nil
	}

	s.logger.InfoContext(ctx, "product deleted", slog.Int64("product_id", ev.ProductID))
	return nil
}
