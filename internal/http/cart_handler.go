package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/saifFast/anaya-ecommerce-website/internal/domain"
	"github.com/saifFast/anaya-ecommerce-website/internal/service"
)

type CartHandler struct {
	carts *service.CartService
}

func NewCartHandler(carts *service.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

type AddToCartRequest struct {
	Product  domain.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

type QuantityUpdateRequest struct {
	Quantity int `json:"quantity"`
}

type CartTotalResponse struct {
	Total int64 `json:"total"`
}

type CartCountResponse struct {
	ItemsCount int `json:"items_count"`
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	cartID, ok := parseID(w, r, "cartId")
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, h.carts.GetCart(cartID))
}

func (h *CartHandler) Create(w http.ResponseWriter, r *http.Request) {
	cart := h.carts.CreateCart()
	w.Header().Set("Location", fmt.Sprintf("/api/cart/%d", cart.ID))
	respondJSON(w, http.StatusCreated, cart)
}

func (h *CartHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.carts.ListCarts())
}

func (h *CartHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	cartID, ok := parseID(w, r, "cartId")
	if !ok {
		return
	}

	var req AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body", err.Error())
		return
	}
	if req.Product.ID <= 0 {
		respondError(w, http.StatusBadRequest, "product id must be a positive integer", "")
		return
	}
	if req.Quantity < 1 {
		respondError(w, http.StatusBadRequest, "quantity must be greater than 0", "")
		return
	}

	cart, err := h.carts.AddLine(cartID, req.Product, req.Quantity)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, cart)
}

func (h *CartHandler) RemoveProduct(w http.ResponseWriter, r *http.Request) {
	cartID, ok := parseID(w, r, "cartId")
	if !ok {
		return
	}
	productID, ok := parseID(w, r, "productId")
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, h.carts.RemoveLine(cartID, productID))
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	cartID, ok := parseID(w, r, "cartId")
	if !ok {
		return
	}
	productID, ok := parseID(w, r, "productId")
	if !ok {
		return
	}

	var req QuantityUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body", err.Error())
		return
	}
	if req.Quantity < 1 {
		respondError(w, http.StatusBadRequest, "quantity must be greater than 0", "")
		return
	}

	respondJSON(w, http.StatusOK, h.carts.SetLineQuantity(cartID, productID, req.Quantity))
}

func (h *CartHandler) Total(w http.ResponseWriter, r *http.Request) {
	cartID, ok := parseID(w, r, "cartId")
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, CartTotalResponse{Total: h.carts.Total(cartID)})
}

func (h *CartHandler) Count(w http.ResponseWriter, r *http.Request) {
	cartID, ok := parseID(w, r, "cartId")
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, CartCountResponse{ItemsCount: h.carts.ItemCount(cartID)})
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	cartID, ok := parseID(w, r, "cartId")
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, h.carts.Clear(cartID))
}

func (h *CartHandler) SetCustomer(w http.ResponseWriter, r *http.Request) {
	cartID, ok := parseID(w, r, "cartId")
	if !ok {
		return
	}

	var customer domain.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body", err.Error())
		return
	}

	cart, err := h.carts.SetCustomer(cartID, &customer)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, cart)
}
