package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/tuanvumaihuynh/product-catalog/internal/model"
	"github.com/tuanvumaihuynh/product-catalog/internal/storage/db"
	"github.com/tuanvumaihuynh/product-catalog/internal/storage/db/sqlc"
)

type ProductRepository interface {
	WithDB(db db.DB) ProductRepository
	ListAllProducts(ctx context.Context) ([]model.Product, error)
	// CreateProduct inserts the product ignoring its ID and returns the
	// generated one.
	CreateProduct(ctx context.Context, product model.Product) (int64, error)
	// UpdateProduct overwrites the row with product.ID and returns the number
	// of rows affected, zero when no such row exists.
	UpdateProduct(ctx context.Context, product model.Product) (int64, error)
	// DeleteProduct removes the row with id and returns the number of rows
	// affected, zero when no such row exists.
	DeleteProduct(ctx context.Context, id int64) (int64, error)
}

type productRepository struct {
	db      db.DB
	queries sqlc.Queries
}

func NewProductRepository(db db.DB, queries sqlc.Queries) ProductRepository {
	return &productRepository{
		db:      db,
		queries: queries,
	}
}

func (r productRepository) WithDB(db db.DB) ProductRepository {
	return &productRepository{
		db:      db,
		queries: r.queries,
	}
}

func (r productRepository) ListAllProducts(ctx context.Context) ([]model.Product, error) {
	products, err := r.queries.ProductListAll(ctx, r.db)
	if err != nil {
		return nil, fmt.Errorf("list all products: %w", err)
	}

	modelProducts := make([]model.Product, 0, len(products))
	for _, product := range products {
		modelProduct, err := sqlcProductToModelProduct(product)
		if err != nil {
			return nil, fmt.Errorf("convert product %d to model product: %w", product.ID, err)
		}
		modelProducts = append(modelProducts, modelProduct)
	}

	return modelProducts, nil
}

func (r productRepository) CreateProduct(ctx context.Context, product model.Product) (int64, error) {
	id, err := r.queries.ProductCreate(ctx, r.db, sqlc.ProductCreateParams{
		Title:    product.Title,
		Price:    decimalToNumeric(product.Price),
		Taxes:    decimalToNumeric(product.Taxes),
		Ads:      decimalToNumeric(product.Ads),
		Discount: decimalToNumeric(product.Discount),
		Total:    decimalToNumeric(product.Total),
		Category: product.Category,
	})
	if err != nil {
		return 0, fmt.Errorf("create product: %w", err)
	}

	return id, nil
}

func (r productRepository) UpdateProduct(ctx context.Context, product model.Product) (int64, error) {
	tag, err := r.queries.ProductUpdate(ctx, r.db, sqlc.ProductUpdateParams{
		Title:    product.Title,
		Price:    decimalToNumeric(product.Price),
		Taxes:    decimalToNumeric(product.Taxes),
		Ads:      decimalToNumeric(product.Ads),
		Discount: decimalToNumeric(product.Discount),
		Total:    decimalToNumeric(product.Total),
		Category: product.Category,
		ID:       product.ID,
	})
	if err != nil {
		return 0, fmt.Errorf("update product: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r productRepository) DeleteProduct(ctx context.Context, id int64) (int64, error) {
	tag, err := r.queries.ProductDelete(ctx, r.db, id)
	if err != nil {
		return 0, fmt.Errorf("delete product: %w", err)
	}

	return tag.RowsAffected(), nil
}

func sqlcProductToModelProduct(product sqlc.Product) (model.Product, error) {
	var (
		p   = model.Product{ID: product.ID, Title: product.Title, Category: product.Category}
		err error
	)

	fields := []struct {
		name string
		src  pgtype.Numeric
		dst  *decimal.Decimal
	}{
		{"price", product.Price, &p.Price},
		{"taxes", product.Taxes, &p.Taxes},
		{"ads", product.Ads, &p.Ads},
		{"discount", product.Discount, &p.Discount},
		{"total", product.Total, &p.Total},
	}
	for _, f := range fields {
		if *f.dst, err = numericToDecimal(f.src); err != nil {
			return model.Product{}, fmt.Errorf("convert %s: %w", f.name, err)
		}
	}

	return p, nil
}

var errNonFiniteNumeric = errors.New("numeric is not finite")

func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{
		Int:   d.Coefficient(),
		Exp:   d.Exponent(),
		Valid: true,
	}
}

func numericToDecimal(n pgtype.Numeric) (decimal.Decimal, error) {
	if !n.Valid || n.Int == nil {
		return decimal.Zero, nil
	}
	if n.NaN || n.InfinityModifier != pgtype.Finite {
		return decimal.Zero, errNonFiniteNumeric
	}

	return decimal.NewFromBigInt(n.Int, n.Exp), nil
}
