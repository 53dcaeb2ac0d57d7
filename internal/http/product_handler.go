package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	"github.com/shopspring/decimal"

	"github.com/tuanvumaihuynh/product-catalog/internal/apperr"
	"github.com/tuanvumaihuynh/product-catalog/internal/model"
	"github.com/tuanvumaihuynh/product-catalog/internal/service"
)

// ProductRequest is the create/update body. Money fields accept JSON numbers
// or strings, blank or null as zero. Extra fields such as the form's count
// are ignored.
type ProductRequest struct {
	Title    string `json:"title"`
	Price    Money  `json:"price"`
	Taxes    Money  `json:"taxes"`
	Ads      Money  `json:"ads"`
	Discount Money  `json:"discount"`
	Total    Money  `json:"total"`
	Category string `json:"category"`
}

type ProductResponse struct {
	ID       int64           `json:"id"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Taxes    decimal.Decimal `json:"taxes"`
	Ads      decimal.Decimal `json:"ads"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
	Category string          `json:"category"`
}

type WriteResponse struct {
	Message string            `json:"message"`
	Result  model.WriteResult `json:"result"`
}

type productHandler struct {
	productSvc service.ProductService
}

func newProductHandler(productSvc service.ProductService) *productHandler {
	return &productHandler{
		productSvc: productSvc,
	}
}

func (h *productHandler) ListProducts(w http.ResponseWriter, r *http.Request) error {
	products, err := h.productSvc.ListAllProducts(r.Context())
	if err != nil {
		return fmt.Errorf("product service list all products: %w", err)
	}

	items := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		items = append(items, ProductResponse{
			ID:       product.ID,
			Title:    product.Title,
			Price:    product.Price,
			Taxes:    product.Taxes,
			Ads:      product.Ads,
			Discount: product.Discount,
			Total:    product.Total,
			Category: product.Category,
		})
	}

	return writeJSON(w, http.StatusOK, items)
}

func (h *productHandler) CreateProduct(w http.ResponseWriter, r *http.Request) error {
	body, err := decodeProductRequest(r)
	if err != nil {
		return err
	}

	res, err := h.productSvc.CreateProduct(r.Context(), service.CreateProductParams{
		ProductFields: body.fields(),
	})
	if err != nil {
		return fmt.Errorf("product service create product: %w", err)
	}

	return writeJSON(w, http.StatusCreated, WriteResponse{
		Message: "Product saved successfully",
		Result:  res,
	})
}

func (h *productHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) error {
	id, err := productIDParam(r)
	if err != nil {
		return err
	}

	body, err := decodeProductRequest(r)
	if err != nil {
		return err
	}

	res, err := h.productSvc.UpdateProduct(r.Context(), service.UpdateProductParams{
		ID:            id,
		ProductFields: body.fields(),
	})
	if err != nil {
		return fmt.Errorf("product service update product: %w", err)
	}

	return writeJSON(w, http.StatusOK, WriteResponse{
		Message: "Product updated successfully",
		Result:  res,
	})
}

func (h *productHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) error {
	id, err := productIDParam(r)
	if err != nil {
		return err
	}

	res, err := h.productSvc.DeleteProduct(r.Context(), id)
	if err != nil {
		return fmt.Errorf("product service delete product: %w", err)
	}

	return writeJSON(w, http.StatusOK, WriteResponse{
		Message: "Product deleted successfully",
		Result:  res,
	})
}

func productIDParam(r *http.Request) (int64, error) {
	var id int64
	if err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		}); err != nil {
		return 0, apperr.InvalidProductIDErr.WrapParent(err)
	}
	return id, nil
}

func decodeProductRequest(r *http.Request) (ProductRequest, error) {
	var body ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return ProductRequest{}, apperr.InvalidRequestBodyErr.WrapParent(err)
	}
	return body, nil
}

func (b ProductRequest) fields() service.ProductFields {
	return service.ProductFields{
		Title:    b.Title,
		Price:    b.Price.Decimal,
		Taxes:    b.Taxes.Decimal,
		Ads:      b.Ads.Decimal,
		Discount: b.Discount.Decimal,
		Total:    b.Total.Decimal,
		Category: b.Category,
	}
}
