package apperr

import "github.com/tuanvumaihuynh/product-catalog/pkg/zerror"

const (
	InvalidProductIDCode    = "INVALID_PRODUCT_ID"
	InvalidRequestBodyCode  = "INVALID_REQUEST_BODY"
	ProductListFailedCode   = "PRODUCT_LIST_FAILED"
	ProductSaveFailedCode   = "PRODUCT_SAVE_FAILED"
	ProductUpdateFailedCode = "PRODUCT_UPDATE_FAILED"
	ProductDeleteFailedCode = "PRODUCT_DELETE_FAILED"
	DatabaseUnavailableCode = "DATABASE_UNAVAILABLE"
	RouteNotFoundCode       = "ROUTE_NOT_FOUND"
)

var (
	InvalidProductIDErr    = zerror.NewBadRequest(InvalidProductIDCode, "invalid product id")
	InvalidRequestBodyErr  = zerror.NewBadRequest(InvalidRequestBodyCode, "invalid request body")
	RouteNotFoundErr       = zerror.NewNotFound(RouteNotFoundCode, "route not found")
	DatabaseUnavailableErr = zerror.NewServiceUnavailable(DatabaseUnavailableCode, "database unavailable")

	// Query failures surface with a fixed message and no detail.
	ProductListErr   = zerror.NewInternalServerError(ProductListFailedCode, "Failed to fetch products")
	ProductSaveErr   = zerror.NewInternalServerError(ProductSaveFailedCode, "Failed to save product")
	ProductUpdateErr = zerror.NewInternalServerError(ProductUpdateFailedCode, "Failed to update product")
	ProductDeleteErr = zerror.NewInternalServerError(ProductDeleteFailedCode, "Failed to delete product")
)
