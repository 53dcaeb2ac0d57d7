package apicontract_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apicontract "github.com/tuanvumaihuynh/product-catalog/api-contract"
)

func TestLoad(t *testing.T) {
	doc, err := apicontract.Load(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, apicontract.GetSpecBytes())
	for _, path := range []string{"/", "/readyz", "/product", "/product/{id}"} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}

	item := doc.Paths.Find("/product/{id}")
	require.NotNil(t, item)
	assert.NotNil(t, item.Put)
	assert.NotNil(t, item.Delete)
}
