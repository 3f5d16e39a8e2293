package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saifFast/anaya-ecommerce-website/internal/domain"
)

func TestCategoryList(t *testing.T) {
	router := setupRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/category", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var categories []domain.Category
	decodeBody(t, rec, &categories)
	assert.Len(t, categories, 7)
}

func TestCategoryGetByID(t *testing.T) {
	router := setupRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/category/3", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var category domain.Category
	decodeBody(t, rec, &category)
	assert.Equal(t, "Audio", category.Name)
}

func TestCategoryGetByID_NotFound(t *testing.T) {
	router := setupRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/category/99", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var errResp ErrorResponse
	decodeBody(t, rec, &errResp)
	assert.Equal(t, "category not found", errResp.Message)
}

func TestCategoryCreate(t *testing.T) {
	router := setupRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/category", domain.Category{
		Name:        "Storage",
		Description: "External drives and NAS gear",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created domain.Category
	decodeBody(t, rec, &created)
	assert.Equal(t, int64(8), created.ID)
	assert.False(t, created.CreatedOn.IsZero())
	assert.Equal(t, "/api/category/8", rec.Header().Get("Location"))
}

func TestCategoryCreate_BlankName(t *testing.T) {
	router := setupRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/category", domain.Category{Name: ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCategoryUpdate(t *testing.T) {
	router := setupRouter(t)

	rec := doRequest(t, router, http.MethodPut, "/api/category/3", domain.Category{
		Name:        "Audio & Video",
		Description: "Sound and video equipment",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated domain.Category
	decodeBody(t, rec, &updated)
	assert.Equal(t, "Audio & Video", updated.Name)
	assert.False(t, updated.CreatedOn.IsZero(), "CreatedOn must survive an update")
}

func TestCategoryDelete(t *testing.T) {
	router := setupRouter(t)

	rec := doRequest(t, router, http.MethodDelete, "/api/category/7", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/category/7", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCategorySearch(t *testing.T) {
	router := setupRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/category/search?searchTerm=audio", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var categories []domain.Category
	decodeBody(t, rec, &categories)
	require.Len(t, categories, 1)
	assert.Equal(t, "Audio", categories[0].Name)
}

func TestCategorySortedByDate(t *testing.T) {
	router := setupRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/category/sorted?ascending=true", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var asc []domain.Category
	decodeBody(t, rec, &asc)
	require.Len(t, asc, 7)
	assert.Equal(t, "Electronics", asc[0].Name, "oldest category first when ascending")

	rec = doRequest(t, router, http.MethodGet, "/api/category/sorted", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var desc []domain.Category
	decodeBody(t, rec, &desc)
	require.Len(t, desc, 7)
	assert.Equal(t, "Cables & Connectivity", desc[0].Name, "newest category first by default")
}
