package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"tienda/internal/domain/entity"
	"tienda/internal/domain/repository"
	mockUC "tienda/internal/mocks/usecase"
	"tienda/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalogHandler(catalogUC usecase.CatalogUsecase) *CatalogHandler {
	return NewCatalogHandler(CatalogHandlerParams{
		CatalogUC: catalogUC,
		ProductUC: &mockUC.MockProductUsecase{},
		Config:    newTestConfig(),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func catalogPageFixture() *usecase.CatalogPage {
	discount := decimal.RequireFromString("50.00")

	return &usecase.CatalogPage{
		Products: []*entity.CatalogProduct{
			{
				Product: entity.Product{
					ID:            1,
					Name:          "Camiseta azul",
					Slug:          "camiseta-azul",
					Price:         decimal.RequireFromString("100.00"),
					DiscountPrice: &discount,
					Stock:         3,
					Active:        true,
					Category:      &entity.Category{Name: "Ropa"},
				},
				AverageRating: 4.5,
				ReviewCount:   2,
				PrimaryImage:  "productos/camiseta.jpg",
			},
			{
				Product: entity.Product{
					ID:     2,
					Name:   "Pantalón",
					Slug:   "pantalon",
					Price:  decimal.RequireFromString("60.00"),
					Active: true,
				},
			},
		},
		Pagination: usecase.NewPagination(2, 12, 1),
	}
}

func TestCatalogHandler_List_JSONBranch(t *testing.T) {
	catalogUC := &mockUC.MockCatalogUsecase{}
	h := newCatalogHandler(catalogUC)

	catalogUC.On("List", mock.Anything, mock.MatchedBy(func(q repository.CatalogQuery) bool {
		return len(q.CategoryIDs) == 2 && q.CategoryIDs[0] == 1 && q.CategoryIDs[1] == 2 &&
			q.Sort == repository.SortPriceAsc &&
			q.Page == 2 &&
			q.Availability.OnSale
	})).Return(catalogPageFixture(), nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet,
		"/catalogo/?categoria=1&categoria=2&sort=price_asc&page=2&disponibilidad=ofertas", nil)
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, float64(2), resp["total"])

	products, ok := resp["products"].([]any)
	require.True(t, ok)
	require.Len(t, products, 2)

	first, ok := products[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Camiseta azul", first["nombre"])
	assert.Equal(t, "100.00", first["precio"])
	assert.Equal(t, "50.00", first["precio_final"])
	assert.Equal(t, true, first["tiene_descuento"])
	assert.Equal(t, float64(50), first["porcentaje_descuento"])
	assert.Equal(t, true, first["en_stock"])
	assert.Equal(t, "/media/productos/camiseta.jpg", first["imagen"])
	assert.Equal(t, "Ropa", first["categoria"])
	assert.Equal(t, float64(4.5), first["rating_promedio"])
	assert.Equal(t, "/producto/camiseta-azul/", first["url"])

	// A product without a category serializes it as null, not "".
	second, ok := products[1].(map[string]any)
	require.True(t, ok)
	assert.Nil(t, second["categoria"])

	pagination, ok := resp["pagination"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), pagination["number"])
	assert.Equal(t, float64(1), pagination["num_pages"])
	assert.Equal(t, false, pagination["has_next"])
	// Absent page neighbors serialize as null, not 0.
	assert.Nil(t, pagination["previous_page_number"])
	assert.Nil(t, pagination["next_page_number"])

	catalogUC.AssertExpectations(t)
}

func TestCatalogHandler_List_TolerantParamParsing(t *testing.T) {
	catalogUC := &mockUC.MockCatalogUsecase{}
	h := newCatalogHandler(catalogUC)

	// Bad ids, negative price and an unknown sort all degrade silently.
	catalogUC.On("List", mock.Anything, mock.MatchedBy(func(q repository.CatalogQuery) bool {
		return q.CategoryIDs == nil &&
			q.PriceMin == nil &&
			q.Sort == repository.SortDefault &&
			q.ItemsPerPage == 12 &&
			q.MaxItemsPerPage == 96
	})).Return(catalogPageFixture(), nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet,
		"/catalogo/?categoria=abc&precio_min=-5&sort=bogus&items_per_page=zero", nil)
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	catalogUC.AssertExpectations(t)
}
