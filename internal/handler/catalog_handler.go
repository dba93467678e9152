package handler

import (
	"encoding/json"
	"net/http"

	"dealmap/internal/model"
	"dealmap/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CatalogHandler handles venue and product HTTP requests.
type CatalogHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(service service.CatalogService, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger.With().Str("handler", "catalog").Logger(),
	}
}

// ListVenues handles GET /api/venues requests.
func (h *CatalogHandler) ListVenues(w http.ResponseWriter, r *http.Request) {
	venues, err := h.service.ListVenues(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, venues)
}

// ListProducts handles GET /api/venues/{id}/products requests.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	venueID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "invalid venue ID format", h.logger)
		return
	}

	products, err := h.service.ListProducts(r.Context(), venueID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// ListAllProducts handles GET /api/partner/products requests.
func (h *CatalogHandler) ListAllProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListAllProducts(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// CreateVenue handles POST /api/partner/venues requests.
func (h *CatalogHandler) CreateVenue(w http.ResponseWriter, r *http.Request) {
	var req model.VenueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	venue, err := h.service.CreateVenue(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, venue)
}

// CreateProduct handles POST /api/partner/products requests.
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req model.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	product, err := h.service.CreateProduct(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

// UpdateProduct handles PUT /api/partner/products/{id} requests.
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "invalid product ID format", h.logger)
		return
	}

	var req model.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	product, err := h.service.UpdateProduct(r.Context(), productID, &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// DeleteProduct handles DELETE /api/partner/products/{id} requests.
func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "invalid product ID format", h.logger)
		return
	}

	if err := h.service.DeleteProduct(r.Context(), productID); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
