package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dealmap/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCatalogService is a mock implementation of CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListVenues(ctx context.Context) ([]model.Venue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Venue), args.Error(1)
}

func (m *MockCatalogService) ListProducts(ctx context.Context, venueID uuid.UUID) ([]model.Product, error) {
	args := m.Called(ctx, venueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockCatalogService) ListAllProducts(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockCatalogService) CreateVenue(ctx context.Context, req *model.VenueRequest) (*model.Venue, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Venue), args.Error(1)
}

func (m *MockCatalogService) CreateProduct(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockCatalogService) UpdateProduct(ctx context.Context, id uuid.UUID, req *model.ProductRequest) (*model.Product, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockCatalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCatalogHandler_ListVenues(t *testing.T) {
	logger := zerolog.Nop()
	stored := []model.Venue{
		{ID: uuid.New(), Name: "Cafe Aurora", Deal: "-30% pastries"},
	}

	svc := new(MockCatalogService)
	svc.On("ListVenues", mock.Anything).Return(stored, nil)

	h := NewCatalogHandler(svc, logger)

	req := httptest.NewRequest(http.MethodGet, "/api/venues", nil)
	w := httptest.NewRecorder()

	h.ListVenues(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got []model.Venue
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, stored[0].ID, got[0].ID)
}

func TestCatalogHandler_ListProducts(t *testing.T) {
	logger := zerolog.Nop()
	venueID := uuid.New()

	tests := []struct {
		name           string
		venueID        string
		mockReturn     []model.Product
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:    "Success",
			venueID: venueID.String(),
			mockReturn: []model.Product{
				{ID: uuid.New(), VenueID: venueID, Name: "Croissant", Price: 150},
			},
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Empty catalogue",
			venueID:        venueID.String(),
			mockReturn:     []model.Product{},
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Unknown venue",
			venueID:        uuid.New().String(),
			mockError:      model.ErrVenueNotFound,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
		{
			name:           "Invalid venue ID",
			venueID:        "abc",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockCatalogService)
			if tt.expectService {
				svc.On("ListProducts", mock.Anything, mock.AnythingOfType("uuid.UUID")).
					Return(tt.mockReturn, tt.mockError)
			}

			h := NewCatalogHandler(svc, logger)

			req := httptest.NewRequest(http.MethodGet, "/api/venues/"+tt.venueID+"/products", nil)
			req.SetPathValue("id", tt.venueID)
			w := httptest.NewRecorder()

			h.ListProducts(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var got []model.Product
				require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
				assert.Len(t, got, len(tt.mockReturn))
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestCatalogHandler_CreateVenue(t *testing.T) {
	logger := zerolog.Nop()
	created := &model.Venue{ID: uuid.New(), Name: "Cafe Aurora", Deal: "-30%"}

	tests := []struct {
		name           string
		body           string
		mockReturn     *model.Venue
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			body:           `{"name": "Cafe Aurora", "city": "Almaty", "deal": "-30%"}`,
			mockReturn:     created,
			expectedStatus: http.StatusCreated,
			expectService:  true,
		},
		{
			name:           "Missing name",
			body:           `{"deal": "-30%"}`,
			mockError:      model.NewDomainError(model.ErrCodeMissingField, "venue name is required"),
			expectedStatus: http.StatusBadRequest,
			expectService:  true,
		},
		{
			name:           "Invalid JSON",
			body:           `{name}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockCatalogService)
			if tt.expectService {
				svc.On("CreateVenue", mock.Anything, mock.AnythingOfType("*model.VenueRequest")).
					Return(tt.mockReturn, tt.mockError)
			}

			h := NewCatalogHandler(svc, logger)

			req := httptest.NewRequest(http.MethodPost, "/api/partner/venues", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			h.CreateVenue(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestCatalogHandler_CreateProduct(t *testing.T) {
	logger := zerolog.Nop()
	venueID := uuid.New()
	created := &model.Product{ID: uuid.New(), VenueID: venueID, Name: "Croissant", Price: 150}

	tests := []struct {
		name           string
		body           string
		mockReturn     *model.Product
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			body:           `{"venueId": "` + venueID.String() + `", "name": "Croissant", "price": 150}`,
			mockReturn:     created,
			expectedStatus: http.StatusCreated,
			expectService:  true,
		},
		{
			name:           "Unknown venue",
			body:           `{"venueId": "` + uuid.New().String() + `", "name": "Croissant", "price": 150}`,
			mockError:      model.ErrVenueNotFound,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
		{
			name:           "Negative price",
			body:           `{"venueId": "` + venueID.String() + `", "name": "Croissant", "price": -5}`,
			mockError:      model.ErrInvalidPrice,
			expectedStatus: http.StatusBadRequest,
			expectService:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockCatalogService)
			if tt.expectService {
				svc.On("CreateProduct", mock.Anything, mock.AnythingOfType("*model.ProductRequest")).
					Return(tt.mockReturn, tt.mockError)
			}

			h := NewCatalogHandler(svc, logger)

			req := httptest.NewRequest(http.MethodPost, "/api/partner/products", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			h.CreateProduct(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestCatalogHandler_UpdateProduct(t *testing.T) {
	logger := zerolog.Nop()
	productID := uuid.New()
	updated := &model.Product{ID: productID, Name: "Croissant XL", Price: 180}

	svc := new(MockCatalogService)
	svc.On("UpdateProduct", mock.Anything, productID, mock.AnythingOfType("*model.ProductRequest")).
		Return(updated, nil)

	h := NewCatalogHandler(svc, logger)

	req := httptest.NewRequest(http.MethodPut, "/api/partner/products/"+productID.String(),
		bytes.NewBufferString(`{"name": "Croissant XL", "price": 180}`))
	req.SetPathValue("id", productID.String())
	w := httptest.NewRecorder()

	h.UpdateProduct(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got model.Product
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, "Croissant XL", got.Name)
}

func TestCatalogHandler_DeleteProduct(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		productID      string
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			productID:      uuid.New().String(),
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Not found",
			productID:      uuid.New().String(),
			mockError:      model.ErrProductNotFound,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
		{
			name:           "Invalid ID",
			productID:      "7",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockCatalogService)
			if tt.expectService {
				svc.On("DeleteProduct", mock.Anything, mock.AnythingOfType("uuid.UUID")).
					Return(tt.mockError)
			}

			h := NewCatalogHandler(svc, logger)

			req := httptest.NewRequest(http.MethodDelete, "/api/partner/products/"+tt.productID, nil)
			req.SetPathValue("id", tt.productID)
			w := httptest.NewRecorder()

			h.DeleteProduct(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}
