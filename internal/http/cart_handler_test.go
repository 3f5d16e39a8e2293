package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saifFast/anaya-ecommerce-website/internal/domain"
)

func TestCartGet_AutoCreates(t *testing.T) {
	router := setupRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/cart/42", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var cart domain.Cart
	decodeBody(t, rec, &cart)
	assert.Equal(t, int64(42), cart.ID)
	assert.Empty(t, cart.Lines)
}

func TestCartCreate(t *testing.T) {
	router := setupRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/cart/create", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var cart domain.Cart
	decodeBody(t, rec, &cart)
	assert.Equal(t, int64(2), cart.ID)
	assert.Equal(t, "/api/cart/2", rec.Header().Get("Location"))
}

func TestCartAddProduct(t *testing.T) {
	router := setupRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/cart/1/add", AddToCartRequest{
		Product:  domain.Product{ID: 6, Name: "Logitech MX Master 3S", Price: 99},
		Quantity: 2,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var cart domain.Cart
	decodeBody(t, rec, &cart)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
}

func TestCartAddProduct_Invalid(t *testing.T) {
	router := setupRouter(t)

	// Non-positive quantity is rejected at the transport edge
	rec := doRequest(t, router, http.MethodPost, "/api/cart/1/add", AddToCartRequest{
		Product:  domain.Product{ID: 6, Price: 99},
		Quantity: 0,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// So is a product without an id
	rec = doRequest(t, router, http.MethodPost, "/api/cart/1/add", AddToCartRequest{
		Product:  domain.Product{Price: 99},
		Quantity: 1,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartTotalAndCount(t *testing.T) {
	router := setupRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/cart/1/add", AddToCartRequest{
		Product:  domain.Product{ID: 6, Price: 99},
		Quantity: 2,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/cart/1/total", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var total CartTotalResponse
	decodeBody(t, rec, &total)
	assert.Equal(t, int64(198), total.Total)

	rec = doRequest(t, router, http.MethodGet, "/api/cart/1/count", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var count CartCountResponse
	decodeBody(t, rec, &count)
	assert.Equal(t, 2, count.ItemsCount)
}

func TestCartUpdateQuantity(t *testing.T) {
	router := setupRouter(t)

	doRequest(t, router, http.MethodPost, "/api/cart/1/add", AddToCartRequest{
		Product:  domain.Product{ID: 6, Price: 99},
		Quantity: 2,
	})

	rec := doRequest(t, router, http.MethodPut, "/api/cart/1/update/6", QuantityUpdateRequest{Quantity: 5})
	require.Equal(t, http.StatusOK, rec.Code)

	var cart domain.Cart
	decodeBody(t, rec, &cart)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 5, cart.Lines[0].Quantity)

	// The transport rejects non-positive quantities; removal goes through DELETE
	rec = doRequest(t, router, http.MethodPut, "/api/cart/1/update/6", QuantityUpdateRequest{Quantity: 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartRemoveProduct(t *testing.T) {
	router := setupRouter(t)

	doRequest(t, router, http.MethodPost, "/api/cart/1/add", AddToCartRequest{
		Product:  domain.Product{ID: 6, Price: 99},
		Quantity: 2,
	})

	rec := doRequest(t, router, http.MethodDelete, "/api/cart/1/remove/6", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var cart domain.Cart
	decodeBody(t, rec, &cart)
	assert.Empty(t, cart.Lines)
}

func TestCartClear(t *testing.T) {
	router := setupRouter(t)

	doRequest(t, router, http.MethodPost, "/api/cart/1/add", AddToCartRequest{
		Product:  domain.Product{ID: 6, Price: 99},
		Quantity: 2,
	})
	doRequest(t, router, http.MethodPost, "/api/cart/1/customer", domain.Customer{Name: "Ada"})

	rec := doRequest(t, router, http.MethodDelete, "/api/cart/1/clear", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var cart domain.Cart
	decodeBody(t, rec, &cart)
	assert.Empty(t, cart.Lines)
	require.NotNil(t, cart.Customer)
	assert.Equal(t, "Ada", cart.Customer.Name)
}

func TestCartSetCustomer(t *testing.T) {
	router := setupRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/cart/1/customer", domain.Customer{
		Name:  "Grace",
		Email: "grace@example.com",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var cart domain.Cart
	decodeBody(t, rec, &cart)
	require.NotNil(t, cart.Customer)
	assert.Equal(t, "Grace", cart.Customer.Name)
}

func TestCartGetAll(t *testing.T) {
	router := setupRouter(t)

	doRequest(t, router, http.MethodPost, "/api/cart/create", nil)
	doRequest(t, router, http.MethodGet, "/api/cart/9", nil)

	rec := doRequest(t, router, http.MethodGet, "/api/cart/all", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var carts []domain.Cart
	decodeBody(t, rec, &carts)
	assert.Len(t, carts, 3)
}
