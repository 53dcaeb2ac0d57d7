package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apicontract "github.com/tuanvumaihuynh/product-catalog/api-contract"
	"github.com/tuanvumaihuynh/product-catalog/internal/apperr"
	"github.com/tuanvumaihuynh/product-catalog/internal/config"
	httpsvc "github.com/tuanvumaihuynh/product-catalog/internal/http"
	"github.com/tuanvumaihuynh/product-catalog/internal/model"
	"github.com/tuanvumaihuynh/product-catalog/internal/service"
)

type fakeProductService struct {
	products []model.Product
	err      error

	created service.CreateProductParams
	updated service.UpdateProductParams
	deleted int64
}

func (f *fakeProductService) ListAllProducts(context.Context) ([]model.Product, error) {
	if f.err != nil {
		return nil, apperr.ProductListErr.WrapParent(f.err)
	}
	return f.products, nil
}

func (f *fakeProductService) CreateProduct(_ context.Context, params service.CreateProductParams) (model.WriteResult, error) {
	if f.err != nil {
		return model.WriteResult{}, apperr.ProductSaveErr.WrapParent(f.err)
	}
	f.created = params
	return model.WriteResult{AffectedRows: 1, InsertID: 7}, nil
}

func (f *fakeProductService) UpdateProduct(_ context.Context, params service.UpdateProductParams) (model.WriteResult, error) {
	if f.err != nil {
		return model.WriteResult{}, apperr.ProductUpdateErr.WrapParent(f.err)
	}
	f.updated = params
	return model.WriteResult{AffectedRows: 1}, nil
}

func (f *fakeProductService) DeleteProduct(_ context.Context, id int64) (model.WriteResult, error) {
	if f.err != nil {
		return model.WriteResult{}, apperr.ProductDeleteErr.WrapParent(f.err)
	}
	f.deleted = id
	return model.WriteResult{AffectedRows: 0}, nil
}

type fakeHealth struct {
	err error
}

func (f fakeHealth) IsHealthy(context.Context) (bool, error) {
	return f.err == nil, f.err
}

type testServer struct {
	handler http.Handler
	router  routers.Router
}

func newTestServer(t *testing.T, productSvc service.ProductService, health fakeHealth) *testServer {
	t.Helper()

	doc, err := apicontract.Load(context.Background())
	require.NoError(t, err)
	router, err := legacy.NewRouter(doc)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := httpsvc.New(config.HTTP{Swagger: true}, logger, productSvc, health)

	return &testServer{handler: svc.Router(), router: router}
}

// do serves the request and checks the response against the API contract.
func (s *testServer) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	route, params, err := s.router.FindRoute(httptest.NewRequest(method, target, nil))
	if err != nil {
		return rec
	}

	err = openapi3filter.ValidateResponse(context.Background(), &openapi3filter.ResponseValidationInput{
		RequestValidationInput: &openapi3filter.RequestValidationInput{
			Request:    req,
			PathParams: params,
			Route:      route,
		},
		Status: rec.Code,
		Header: rec.Header(),
		Body:   io.NopCloser(bytes.NewReader(rec.Body.Bytes())),
		Options: &openapi3filter.Options{
			IncludeResponseStatus: true,
		},
	})
	require.NoError(t, err, "response does not match contract: %s", rec.Body.String())

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealthRoutes(t *testing.T) {
	t.Run("Should report backend is running", func(t *testing.T) {
		srv := newTestServer(t, &fakeProductService{}, fakeHealth{})

		rec := srv.do(t, http.MethodGet, "/", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Backend is running", decodeBody(t, rec)["message"])
	})

	t.Run("Should report ready when the database answers", func(t *testing.T) {
		srv := newTestServer(t, &fakeProductService{}, fakeHealth{})

		rec := srv.do(t, http.MethodGet, "/readyz", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ready", decodeBody(t, rec)["message"])
	})

	t.Run("Should report unavailable when the ping fails", func(t *testing.T) {
		srv := newTestServer(t, &fakeProductService{}, fakeHealth{err: errors.New("connection refused")})

		rec := srv.do(t, http.MethodGet, "/readyz", "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "database unavailable", decodeBody(t, rec)["error"])
	})
}

func TestProductRoutes(t *testing.T) {
	t.Run("Should list products with money as decimal strings", func(t *testing.T) {
		productSvc := &fakeProductService{products: []model.Product{{
			ID:       1,
			Title:    "mouse",
			Price:    decimal.RequireFromString("10.50"),
			Taxes:    decimal.NewFromInt(1),
			Ads:      decimal.Zero,
			Discount: decimal.NewFromInt(2),
			Total:    decimal.RequireFromString("9.50"),
			Category: "electronics",
		}}}
		srv := newTestServer(t, productSvc, fakeHealth{})

		rec := srv.do(t, http.MethodGet, "/product", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var rows []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
		require.Len(t, rows, 1)
		assert.Equal(t, float64(1), rows[0]["id"])
		assert.Equal(t, "10.5", rows[0]["price"])
		assert.Equal(t, "9.5", rows[0]["total"])
	})

	t.Run("Should list an empty catalog as an empty array", func(t *testing.T) {
		srv := newTestServer(t, &fakeProductService{}, fakeHealth{})

		rec := srv.do(t, http.MethodGet, "/product", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("Should create from numbers or strings and ignore count", func(t *testing.T) {
		productSvc := &fakeProductService{}
		srv := newTestServer(t, productSvc, fakeHealth{})

		rec := srv.do(t, http.MethodPost, "/product",
			`{"title":"mouse","price":10,"taxes":"1","ads":0,"discount":2,"total":9,"count":"3","category":"electronics"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Product saved successfully", body["message"])
		assert.Equal(t, float64(7), body["result"].(map[string]any)["insertId"])

		assert.Equal(t, "mouse", productSvc.created.Title)
		assert.True(t, decimal.NewFromInt(10).Equal(productSvc.created.Price))
		assert.True(t, decimal.NewFromInt(1).Equal(productSvc.created.Taxes))
		assert.True(t, decimal.NewFromInt(9).Equal(productSvc.created.Total))
	})

	t.Run("Should create with blank or null money fields as zero", func(t *testing.T) {
		productSvc := &fakeProductService{}
		srv := newTestServer(t, productSvc, fakeHealth{})

		rec := srv.do(t, http.MethodPost, "/product",
			`{"title":"mouse","price":"10","taxes":"","ads":" ","discount":null,"total":"10","count":"","category":"electronics"}`)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.True(t, decimal.NewFromInt(10).Equal(productSvc.created.Price))
		assert.True(t, productSvc.created.Taxes.IsZero())
		assert.True(t, productSvc.created.Ads.IsZero())
		assert.True(t, productSvc.created.Discount.IsZero())
		assert.True(t, decimal.NewFromInt(10).Equal(productSvc.created.Total))
	})

	t.Run("Should update the product named by the path", func(t *testing.T) {
		productSvc := &fakeProductService{}
		srv := newTestServer(t, productSvc, fakeHealth{})

		rec := srv.do(t, http.MethodPut, "/product/42",
			`{"title":"keyboard","price":"20","taxes":0,"ads":0,"discount":0,"total":20,"category":"electronics"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Product updated successfully", decodeBody(t, rec)["message"])
		assert.Equal(t, int64(42), productSvc.updated.ID)
		assert.Equal(t, "keyboard", productSvc.updated.Title)
	})

	t.Run("Should acknowledge deletes of unknown ids", func(t *testing.T) {
		productSvc := &fakeProductService{}
		srv := newTestServer(t, productSvc, fakeHealth{})

		rec := srv.do(t, http.MethodDelete, "/product/99", "")

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Product deleted successfully", body["message"])
		assert.Equal(t, float64(0), body["result"].(map[string]any)["affectedRows"])
		assert.Equal(t, int64(99), productSvc.deleted)
	})

	t.Run("Should reject a non-integer id", func(t *testing.T) {
		srv := newTestServer(t, &fakeProductService{}, fakeHealth{})

		rec := srv.do(t, http.MethodDelete, "/product/abc", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid product id", decodeBody(t, rec)["error"])
	})

	t.Run("Should reject a body that is not JSON", func(t *testing.T) {
		srv := newTestServer(t, &fakeProductService{}, fakeHealth{})

		rec := srv.do(t, http.MethodPost, "/product", `title=mouse`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid request body", decodeBody(t, rec)["error"])
	})

	t.Run("Should surface store failures as static messages", func(t *testing.T) {
		srv := newTestServer(t, &fakeProductService{err: errors.New("connection refused")}, fakeHealth{})

		cases := []struct {
			method, target, body, msg string
		}{
			{http.MethodGet, "/product", "", "Failed to fetch products"},
			{http.MethodPost, "/product", `{"title":"mouse"}`, "Failed to save product"},
			{http.MethodPut, "/product/1", `{"title":"mouse"}`, "Failed to update product"},
			{http.MethodDelete, "/product/1", "", "Failed to delete product"},
		}
		for _, tc := range cases {
			rec := srv.do(t, tc.method, tc.target, tc.body)

			assert.Equal(t, http.StatusInternalServerError, rec.Code, tc.target)
			assert.Equal(t, tc.msg, decodeBody(t, rec)["error"])
			assert.NotContains(t, rec.Body.String(), "connection refused")
		}
	})
}

func TestServiceRoutes(t *testing.T) {
	srv := newTestServer(t, &fakeProductService{}, fakeHealth{})

	t.Run("Should answer unknown routes with JSON", func(t *testing.T) {
		rec := srv.do(t, http.MethodGet, "/nope", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "route not found", decodeBody(t, rec)["error"])
	})

	t.Run("Should allow any origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/product", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		srv.handler.ServeHTTP(rec, req)

		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Should expose request metrics", func(t *testing.T) {
		srv.do(t, http.MethodGet, "/", "")

		rec := srv.do(t, http.MethodGet, "/metrics", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "product_catalog_http_requests_total")
	})

	t.Run("Should serve the contract", func(t *testing.T) {
		rec := srv.do(t, http.MethodGet, "/docs/openapi.yml", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Product Catalog API")
	})
}
