package router

import (
	"net/http"

	"dealmap/internal/handler"
	"dealmap/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	catalogHandler *handler.CatalogHandler,
	orderHandler *handler.OrderHandler,
	partnerAPIKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Customer routes
	mux.HandleFunc("GET /api/venues", catalogHandler.ListVenues)
	mux.HandleFunc("GET /api/venues/{id}/products", catalogHandler.ListProducts)
	mux.HandleFunc("POST /api/orders", orderHandler.Create)
	mux.HandleFunc("GET /api/orders/{id}", orderHandler.GetByID)
	mux.HandleFunc("PATCH /api/orders/{id}/status", orderHandler.UpdateStatus)

	// Partner routes
	mux.HandleFunc("GET /api/partner/orders", orderHandler.List)
	mux.HandleFunc("GET /api/partner/products", catalogHandler.ListAllProducts)
	mux.HandleFunc("POST /api/partner/venues", catalogHandler.CreateVenue)
	mux.HandleFunc("POST /api/partner/products", catalogHandler.CreateProduct)
	mux.HandleFunc("PUT /api/partner/products/{id}", catalogHandler.UpdateProduct)
	mux.HandleFunc("DELETE /api/partner/products/{id}", catalogHandler.DeleteProduct)

	// Apply middleware in order: Recovery -> Logging -> CORS -> PartnerAuth
	var h http.Handler = mux
	h = middleware.PartnerAuth(partnerAPIKey, logger)(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
