package form

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/tuanvumaihuynh/product-catalog/internal/client"
	"github.com/tuanvumaihuynh/product-catalog/internal/model"
	"github.com/tuanvumaihuynh/product-catalog/pkg/validator"
)

// ErrNoSuchRow is returned when a row index is outside the fetched list.
var ErrNoSuchRow = errors.New("no such row")

// API is the part of the product API the form uses.
type API interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	CreateProduct(ctx context.Context, payload client.ProductPayload) (model.WriteResult, error)
	UpdateProduct(ctx context.Context, id int64, payload client.ProductPayload) (model.WriteResult, error)
	DeleteProduct(ctx context.Context, id int64) (model.WriteResult, error)
}

// Form mirrors the stored products and edits one draft at a time. The API
// is the single source of truth: every write is followed by a re-fetch.
// A Form is not safe for concurrent use.
type Form struct {
	api       API
	validator validator.Validator

	draft Draft
	mode  Mode
	rows  []model.Product
}

func New(api API, v validator.Validator) *Form {
	return &Form{
		api:       api,
		validator: v,
	}
}

func (f *Form) Draft() Draft {
	return f.draft
}

func (f *Form) Mode() Mode {
	return f.mode
}

// Rows returns the products from the last fetch.
func (f *Form) Rows() []model.Product {
	return slices.Clone(f.rows)
}

// Load replaces the rows with the current API listing.
func (f *Form) Load(ctx context.Context) error {
	rows, err := f.api.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("api list products: %w", err)
	}

	f.rows = rows
	return nil
}

// Set replaces the draft with one where field holds value.
func (f *Form) Set(field Field, value string) error {
	draft, err := f.draft.With(field, value)
	if err != nil {
		return err
	}

	f.draft = draft
	return nil
}

// Edit preloads the draft from the row at index and starts editing it.
func (f *Form) Edit(index int) error {
	row, err := f.row(index)
	if err != nil {
		return err
	}

	f.draft = DraftFromProduct(row)
	f.mode = Editing(row.ID)
	return nil
}

// Clear resets the draft. The mode is kept.
func (f *Form) Clear() {
	f.draft = Draft{}
}

// Submit sends the draft when it passes the gate. It reports false with a
// nil error when the gate blocks it. On failure the draft and mode are kept.
func (f *Form) Submit(ctx context.Context) (bool, error) {
	if err := checkGate(f.validator, f.draft); err != nil {
		if validator.IsValidationError(err) {
			return false, nil
		}
		return false, fmt.Errorf("check submit gate: %w", err)
	}

	payload := f.payload()
	if id, ok := f.mode.ID(); ok {
		if _, err := f.api.UpdateProduct(ctx, id, payload); err != nil {
			return false, fmt.Errorf("api update product: %w", err)
		}
	} else {
		if _, err := f.api.CreateProduct(ctx, payload); err != nil {
			return false, fmt.Errorf("api create product: %w", err)
		}
	}

	if err := f.Load(ctx); err != nil {
		return false, err
	}

	f.draft = Draft{}
	f.mode = Create()
	return true, nil
}

// Delete removes the row at index through the API and re-fetches.
func (f *Form) Delete(ctx context.Context, index int) error {
	row, err := f.row(index)
	if err != nil {
		return err
	}

	if _, err := f.api.DeleteProduct(ctx, row.ID); err != nil {
		return fmt.Errorf("api delete product: %w", err)
	}
	f.forget(row.ID)

	return f.Load(ctx)
}

// DeleteAll removes every fetched row through the API, stopping at the first
// failure, then re-fetches.
func (f *Form) DeleteAll(ctx context.Context) error {
	var deleteErr error
	for _, row := range f.rows {
		if _, err := f.api.DeleteProduct(ctx, row.ID); err != nil {
			deleteErr = fmt.Errorf("api delete product %d: %w", row.ID, err)
			break
		}
		f.forget(row.ID)
	}

	return errors.Join(deleteErr, f.Load(ctx))
}

func (f *Form) row(index int) (model.Product, error) {
	if index < 0 || index >= len(f.rows) {
		return model.Product{}, fmt.Errorf("row %d: %w", index+1, ErrNoSuchRow)
	}
	return f.rows[index], nil
}

// forget leaves editing mode when the edited product is gone.
func (f *Form) forget(id int64) {
	if editing, ok := f.mode.ID(); ok && editing == id {
		f.mode = Create()
	}
}

func (f *Form) payload() client.ProductPayload {
	return client.ProductPayload{
		Title:    strings.ToLower(f.draft.title),
		Price:    money(f.draft.price),
		Taxes:    money(f.draft.taxes),
		Ads:      money(f.draft.ads),
		Discount: money(f.draft.discount),
		Total:    f.draft.Total(),
		Count:    f.draft.count,
		Category: strings.ToLower(f.draft.category),
	}
}
