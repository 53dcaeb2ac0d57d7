package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/tuanvumaihuynh/product-catalog/internal/apperr"
	"github.com/tuanvumaihuynh/product-catalog/internal/config"
	"github.com/tuanvumaihuynh/product-catalog/internal/event"
	"github.com/tuanvumaihuynh/product-catalog/internal/model"
	"github.com/tuanvumaihuynh/product-catalog/internal/repository"
	"github.com/tuanvumaihuynh/product-catalog/internal/storage/db"
	"github.com/tuanvumaihuynh/product-catalog/pkg/outbox"
	"github.com/tuanvumaihuynh/product-catalog/pkg/ptr"
)

type ProductFields struct {
	Title    string
	Price    decimal.Decimal
	Taxes    decimal.Decimal
	Ads      decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
	Category string
}

type CreateProductParams struct {
	ProductFields
}

type UpdateProductParams struct {
	ID int64
	ProductFields
}

// ProductService maps each catalog operation to one statement on the product
// table. Fields are stored as given: no validation, no total check.
type ProductService interface {
	ListAllProducts(ctx context.Context) ([]model.Product, error)
	CreateProduct(ctx context.Context, params CreateProductParams) (model.WriteResult, error)
	// UpdateProduct succeeds with zero affected rows when the id is unknown.
	UpdateProduct(ctx context.Context, params UpdateProductParams) (model.WriteResult, error)
	// DeleteProduct succeeds with zero affected rows when the id is unknown.
	DeleteProduct(ctx context.Context, id int64) (model.WriteResult, error)
}

type productService struct {
	cfg           config.Outbox
	db            db.DB
	productRepo   repository.ProductRepository
	outboxMsgRepo repository.OutboxMsgRepository
}

func NewProductService(
	cfg config.Outbox,
	db db.DB,
	productRepo repository.ProductRepository,
	outboxMsgRepo repository.OutboxMsgRepository,
) ProductService {
	return &productService{
		cfg:           cfg,
		db:            db,
		productRepo:   productRepo,
		outboxMsgRepo: outboxMsgRepo,
	}
}

func (s *productService) ListAllProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.ListAllProducts(ctx)
	if err != nil {
		return nil, apperr.ProductListErr.WrapParent(
			fmt.Errorf("product repository list all products: %w", err))
	}

	return products, nil
}

func (s *productService) CreateProduct(ctx context.Context, params CreateProductParams) (model.WriteResult, error) {
	product := params.toProduct(0)

	var res model.WriteResult
	err := s.write(ctx, func(ctx context.Context, dbtx db.DB) (outboxEvent, error) {
		id, err := s.productRepo.WithDB(dbtx).CreateProduct(ctx, product)
		if err != nil {
			return outboxEvent{}, fmt.Errorf("product repository create product: %w", err)
		}

		product.ID = id
		res = model.WriteResult{AffectedRows: 1, InsertID: id}
		return outboxEvent{topic: event.TopicProductCreated, productID: id, payload: productEvent(product)}, nil
	})
	if err != nil {
		return model.WriteResult{}, apperr.ProductSaveErr.WrapParent(err)
	}

	return res, nil
}

func (s *productService) UpdateProduct(ctx context.Context, params UpdateProductParams) (model.WriteResult, error) {
	product := params.toProduct(params.ID)

	var res model.WriteResult
	err := s.write(ctx, func(ctx context.Context, dbtx db.DB) (outboxEvent, error) {
		affected, err := s.productRepo.WithDB(dbtx).UpdateProduct(ctx, product)
		if err != nil {
			return outboxEvent{}, fmt.Errorf("product repository update product: %w", err)
		}

		res = model.WriteResult{AffectedRows: affected}
		if affected == 0 {
			return outboxEvent{}, nil
		}
		return outboxEvent{topic: event.TopicProductUpdated, productID: product.ID, payload: productEvent(product)}, nil
	})
	if err != nil {
		return model.WriteResult{}, apperr.ProductUpdateErr.WrapParent(err)
	}

	return res, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id int64) (model.WriteResult, error) {
	var res model.WriteResult
	err := s.write(ctx, func(ctx context.Context, dbtx db.DB) (outboxEvent, error) {
		affected, err := s.productRepo.WithDB(dbtx).DeleteProduct(ctx, id)
		if err != nil {
			return outboxEvent{}, fmt.Errorf("product repository delete product: %w", err)
		}

		res = model.WriteResult{AffectedRows: affected}
		return outboxEvent{
			topic:     event.TopicProductDeleted,
			productID: id,
			payload:   event.ProductDeletedEvent{ProductID: id, AffectedRows: affected},
		}, nil
	})
	if err != nil {
		return model.WriteResult{}, apperr.ProductDeleteErr.WrapParent(err)
	}

	return res, nil
}

// outboxEvent is the change a write wants published. A zero value publishes
// nothing.
type outboxEvent struct {
	topic     string
	productID int64
	payload   any
}

type writeFunc func(ctx context.Context, dbtx db.DB) (outboxEvent, error)

// write runs fn as a single statement on the pool, or, with the outbox
// enabled, in a transaction together with the outbox message it returns.
func (s *productService) write(ctx context.Context, fn writeFunc) error {
	if !s.cfg.Enabled {
		_, err := fn(ctx, s.db)
		return err
	}

	if err := s.db.WithTx(ctx, func(tx db.DB) error {
		ev, err := fn(ctx, tx)
		if err != nil {
			return err
		}
		if ev.topic == "" {
			return nil
		}

		payload, err := json.Marshal(ev.payload)
		if err != nil {
			return fmt.Errorf("marshal %s event: %w", ev.topic, err)
		}

		if err := s.outboxMsgRepo.
			WithDB(tx).
			CreateOutboxMsg(ctx, repository.CreateOutboxMsgParams{
				Topic:        ev.topic,
				Headers:      outbox.BuildHeaders(ctx),
				Payload:      payload,
				PartitionKey: ptr.New(strconv.FormatInt(ev.productID, 10)),
			}); err != nil {
			return fmt.Errorf("outbox msg repository create outbox msg: %w", err)
		}

		return nil
	}); err != nil {
		return fmt.Errorf("db with tx: %w", err)
	}

	return nil
}

func (p ProductFields) toProduct(id int64) model.Product {
	return model.Product{
		ID:       id,
		Title:    p.Title,
		Price:    p.Price,
		Taxes:    p.Taxes,
		Ads:      p.Ads,
		Discount: p.Discount,
		Total:    p.Total,
		Category: p.Category,
	}
}

func productEvent(p model.Product) event.ProductEvent {
	return event.ProductEvent{
		ProductID: p.ID,
		Title:     p.Title,
		Price:     p.Price,
		Taxes:     p.Taxes,
		Ads:       p.Ads,
		Discount:  p.Discount,
		Total:     p.Total,
		Category:  p.Category,
	}
}
