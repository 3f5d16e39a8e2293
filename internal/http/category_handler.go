package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/saifFast/anaya-ecommerce-website/internal/domain"
	"github.com/saifFast/anaya-ecommerce-website/internal/store"
)

type CategoryHandler struct {
	store store.CatalogStore
}

func NewCategoryHandler(store store.CatalogStore) *CategoryHandler {
	return &CategoryHandler{store: store}
}

func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.Categories())
}

func (h *CategoryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	category, err := h.store.Category(id)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var category domain.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body", err.Error())
		return
	}

	created, err := h.store.CreateCategory(category)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/category/%d", created.ID))
	respondJSON(w, http.StatusCreated, created)
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	var category domain.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body", err.Error())
		return
	}

	updated, err := h.store.UpdateCategory(id, category)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	if err := h.store.DeleteCategory(id); err != nil {
		handleDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CategoryHandler) Search(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("searchTerm")
	respondJSON(w, http.StatusOK, h.store.SearchCategories(term))
}

// GetSortedByDate returns categories ordered by creation date, newest first
// unless ascending=true is passed
func (h *CategoryHandler) GetSortedByDate(w http.ResponseWriter, r *http.Request) {
	ascending := r.URL.Query().Get("ascending") == "true"
	respondJSON(w, http.StatusOK, h.store.CategoriesByDate(ascending))
}
