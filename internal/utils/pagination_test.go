// internal/utils/pagination_test.go
package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paramsForQuery(t *testing.T, query string) PaginationParams {
	t.Helper()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/v1/products?"+query, nil)

	return GetPaginationParams(c)
}

func TestGetPaginationParamsDefaults(t *testing.T) {
	params := paramsForQuery(t, "")

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 20, params.Limit)
	assert.Equal(t, "created_at", params.Sort)
	assert.Equal(t, "desc", params.Order)
	assert.Empty(t, params.Search)
}

func TestGetPaginationParamsClampsPage(t *testing.T) {
	params := paramsForQuery(t, "page=-3")
	assert.Equal(t, 1, params.Page)

	params = paramsForQuery(t, "page=0")
	assert.Equal(t, 1, params.Page)
}

func TestGetPaginationParamsClampsLimit(t *testing.T) {
	params := paramsForQuery(t, "limit=500")
	assert.Equal(t, 20, params.Limit)

	params = paramsForQuery(t, "limit=0")
	assert.Equal(t, 20, params.Limit)

	params = paramsForQuery(t, "limit=100")
	assert.Equal(t, 100, params.Limit)
}

func TestGetPaginationParamsNormalizesOrder(t *testing.T) {
	params := paramsForQuery(t, "order=sideways")
	assert.Equal(t, "desc", params.Order)

	params = paramsForQuery(t, "order=asc")
	assert.Equal(t, "asc", params.Order)
}

func TestGetPaginationParamsPassesSearch(t *testing.T) {
	params := paramsForQuery(t, "search=denim+jacket")
	assert.Equal(t, "denim jacket", params.Search)
}

func TestCreatePaginationResult(t *testing.T) {
	params := PaginationParams{Page: 2, Limit: 10}
	data := []string{"a", "b"}

	result := CreatePaginationResult(data, 25, params)

	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 10, result.Limit)
	assert.Equal(t, int64(25), result.Total)
	assert.Equal(t, 3, result.TotalPages)
	assert.Equal(t, data, result.Data)
}

func TestCreatePaginationResultExactPages(t *testing.T) {
	params := PaginationParams{Page: 1, Limit: 10}

	result := CreatePaginationResult(nil, 30, params)
	assert.Equal(t, 3, result.TotalPages)

	result = CreatePaginationResult(nil, 0, params)
	assert.Equal(t, 0, result.TotalPages)
}
