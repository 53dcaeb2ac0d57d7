package swagger_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/tuanvumaihuynh/product-catalog/internal/http/swagger"
)

func TestSwaggerDocsRoute(t *testing.T) {
	r := chi.NewRouter()
	swagger.Register(r)

	t.Run("Should get docs successfully", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, swagger.DocsPath, nil)
		resp := httptest.NewRecorder()

		r.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, resp.Body.String(), "<title>Product Catalog API</title>")
		assert.Contains(t, resp.Body.String(), "url: '/docs/openapi.yml'")
	})

	t.Run("Should get openapi.yml successfully", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, swagger.SpecPath, nil)
		resp := httptest.NewRecorder()

		r.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Header().Get("Content-Type"), "application/yaml")
		assert.Contains(t, resp.Body.String(), "/product/{id}")
	})
}

func TestRegisterSpec(t *testing.T) {
	r := chi.NewRouter()
	swagger.RegisterSpec(r, "<b>Catalog</b>", []byte("openapi: 3.0.3\n"))

	req := httptest.NewRequest(http.MethodGet, swagger.DocsPath, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Contains(t, resp.Body.String(), "&lt;b&gt;Catalog&lt;/b&gt;")

	req = httptest.NewRequest(http.MethodGet, swagger.SpecPath, nil)
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, "openapi: 3.0.3\n", resp.Body.String())
}
