package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Santy01/gestion-viajes-api/internal/dto"
	"github.com/Santy01/gestion-viajes-api/internal/models"
	"github.com/Santy01/gestion-viajes-api/internal/service"
)

// --- Mock DestinationService ---

type mockDestinationService struct {
	listFn        func(ctx context.Context) ([]models.Destination, error)
	getFn         func(ctx context.Context, id uint) (*models.Destination, error)
	createFn      func(ctx context.Context, in service.DestinationInput) (*models.Destination, error)
	updateFn      func(ctx context.Context, id uint, in service.DestinationInput) (*models.Destination, error)
	deleteFn      func(ctx context.Context, id uint) (bool, error)
	existsFn      func(ctx context.Context, id uint) (bool, error)
	byCountryFn   func(ctx context.Context, country string) ([]models.Destination, error)
	byCostRangeFn func(ctx context.Context, min, max decimal.Decimal) ([]models.Destination, error)
	searchFn      func(ctx context.Context, term string) ([]models.Destination, error)
}

func (m *mockDestinationService) List(ctx context.Context) ([]models.Destination, error) {
	return m.listFn(ctx)
}
func (m *mockDestinationService) Get(ctx context.Context, id uint) (*models.Destination, error) {
	return m.getFn(ctx, id)
}
func (m *mockDestinationService) Create(ctx context.Context, in service.DestinationInput) (*models.Destination, error) {
	return m.createFn(ctx, in)
}
func (m *mockDestinationService) Update(ctx context.Context, id uint, in service.DestinationInput) (*models.Destination, error) {
	return m.updateFn(ctx, id, in)
}
func (m *mockDestinationService) Delete(ctx context.Context, id uint) (bool, error) {
	return m.deleteFn(ctx, id)
}
func (m *mockDestinationService) Exists(ctx context.Context, id uint) (bool, error) {
	return m.existsFn(ctx, id)
}
func (m *mockDestinationService) ListByCountry(ctx context.Context, country string) ([]models.Destination, error) {
	return m.byCountryFn(ctx, country)
}
func (m *mockDestinationService) ListByCostRange(ctx context.Context, min, max decimal.Decimal) ([]models.Destination, error) {
	return m.byCostRangeFn(ctx, min, max)
}
func (m *mockDestinationService) Search(ctx context.Context, term string) ([]models.Destination, error) {
	return m.searchFn(ctx, term)
}

func sampleDestination() *models.Destination {
	return &models.Destination{ID: 1, Name: "Machu Picchu", Country: "Perú", Cost: decimal.RequireFromString("250.00"), CreatedAt: time.Now().UTC()}
}

// --- Tests ---

func TestCreateDestination_Handler(t *testing.T) {
	var got service.DestinationInput
	svc := &mockDestinationService{
		createFn: func(ctx context.Context, in service.DestinationInput) (*models.Destination, error) {
			got = in
			return sampleDestination(), nil
		},
	}
	e := newEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/", `{"name":"Machu Picchu","country":"Perú","cost":250}`), rec)

	require.NoError(t, NewDestinationHandler(svc).Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, got.Cost.Equal(decimal.NewFromInt(250)))

	var resp dto.DestinationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 250.0, resp.Cost)
}

func TestCreateDestination_Handler_Errors(t *testing.T) {
	svc := &mockDestinationService{
		createFn: func(ctx context.Context, in service.DestinationInput) (*models.Destination, error) {
			return nil, service.ErrDuplicateDestination
		},
	}
	e := newEcho()
	h := NewDestinationHandler(svc)

	c := e.NewContext(jsonRequest(http.MethodPost, "/", `{"name":"Machu Picchu","country":"Perú","cost":250}`), httptest.NewRecorder())
	assert.Equal(t, http.StatusConflict, httpCode(t, h.Create(c)))

	c = e.NewContext(jsonRequest(http.MethodPost, "/", `{"name":"Machu Picchu","country":"Perú","cost":-5}`), httptest.NewRecorder())
	assert.Equal(t, http.StatusBadRequest, httpCode(t, h.Create(c)))

	c = e.NewContext(jsonRequest(http.MethodPost, "/", `{"country":"Perú","cost":5}`), httptest.NewRecorder())
	assert.Equal(t, http.StatusBadRequest, httpCode(t, h.Create(c)))
}

func TestDeleteDestination_Handler_InUse(t *testing.T) {
	svc := &mockDestinationService{
		deleteFn: func(ctx context.Context, id uint) (bool, error) { return false, service.ErrDestinationInUse },
	}
	e := newEcho()
	c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/", nil), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("1")

	assert.Equal(t, http.StatusConflict, httpCode(t, NewDestinationHandler(svc).Delete(c)))
}

func TestListByCostRange_Handler(t *testing.T) {
	svc := &mockDestinationService{
		byCostRangeFn: func(ctx context.Context, min, max decimal.Decimal) ([]models.Destination, error) {
			if min.GreaterThan(max) {
				return nil, service.ErrInvalidCostRange
			}
			return []models.Destination{*sampleDestination()}, nil
		},
	}
	e := newEcho()
	h := NewDestinationHandler(svc)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/?min=100&max=300", nil), rec)
	require.NoError(t, h.ListByCostRange(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/?min=300&max=100", nil), httptest.NewRecorder())
	assert.Equal(t, http.StatusBadRequest, httpCode(t, h.ListByCostRange(c)))

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/?min=abc&max=100", nil), httptest.NewRecorder())
	assert.Equal(t, http.StatusBadRequest, httpCode(t, h.ListByCostRange(c)))
}

func TestDestinationRoutes_SearchAndCountry(t *testing.T) {
	var term, country string
	svc := &mockDestinationService{
		searchFn: func(ctx context.Context, q string) ([]models.Destination, error) {
			term = q
			return []models.Destination{}, nil
		},
		byCountryFn: func(ctx context.Context, c string) ([]models.Destination, error) {
			country = c
			return []models.Destination{}, nil
		},
	}
	e := newEcho()
	NewDestinationHandler(svc).RegisterRoutes(e.Group("/api/v1/destinations"))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/destinations/search?q=paine", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "paine", term)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/destinations/country/Chile", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Chile", country)
}
