package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires all handlers under /api with the standard middleware stack
func NewRouter(products *ProductHandler, categories *CategoryHandler, carts *CartHandler, requestTimeout time.Duration) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestIDMiddleware)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Compress(5))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/product", func(r chi.Router) {
			r.Get("/", products.Get)
			r.Get("/search", products.Search)
			r.Get("/category/{categoryId}", products.GetByCategory)
			r.Get("/{id}", products.GetByID)
			r.Post("/", products.Create)
			r.Put("/{id}", products.Update)
			r.Delete("/{id}", products.Delete)
		})

		r.Route("/category", func(r chi.Router) {
			r.Get("/", categories.Get)
			r.Get("/search", categories.Search)
			r.Get("/sorted", categories.GetSortedByDate)
			r.Get("/{id}", categories.GetByID)
			r.Post("/", categories.Create)
			r.Put("/{id}", categories.Update)
			r.Delete("/{id}", categories.Delete)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Post("/create", carts.Create)
			r.Get("/all", carts.GetAll)
			r.Get("/{cartId}", carts.Get)
			r.Post("/{cartId}/add", carts.AddProduct)
			r.Delete("/{cartId}/remove/{productId}", carts.RemoveProduct)
			r.Put("/{cartId}/update/{productId}", carts.UpdateQuantity)
			r.Get("/{cartId}/total", carts.Total)
			r.Get("/{cartId}/count", carts.Count)
			r.Delete("/{cartId}/clear", carts.Clear)
			r.Post("/{cartId}/customer", carts.SetCustomer)
		})
	})

	return r
}
