package view

import (
	"testing"

	"tienda/internal/domain/entity"
	"tienda/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)

	return &d
}

func discountedProduct() *entity.CatalogProduct {
	return &entity.CatalogProduct{
		Product: entity.Product{
			ID:            1,
			Name:          "Teclado mecánico",
			Slug:          "teclado-mecanico",
			Price:         dec("100.00"),
			DiscountPrice: decPtr("75.50"),
			Stock:         4,
			IsNew:         true,
			Featured:      true,
			Active:        true,
			Category:      &entity.Category{ID: 3, Name: "Periféricos"},
		},
		AverageRating: 4.5,
		ReviewCount:   12,
		PrimaryImage:  "productos/teclado.jpg",
	}
}

func TestFromCatalogProduct_DerivedFields(t *testing.T) {
	p := FromCatalogProduct(discountedProduct(), "/media/")

	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, "100.00", p.Precio)
	assert.Equal(t, "75.50", p.PrecioFinal)
	assert.True(t, p.TieneDescuento)
	assert.Equal(t, 24, p.PorcentajeDescuento)
	assert.True(t, p.EnStock)
	assert.Equal(t, "/media/productos/teclado.jpg", p.Imagen)
	require.NotNil(t, p.Categoria)
	assert.Equal(t, "Periféricos", *p.Categoria)
	assert.True(t, p.Nuevo)
	assert.True(t, p.Destacado)
	assert.Equal(t, "/producto/teclado-mecanico/", p.URL)
}

func TestFromCatalogProduct_NullCategory(t *testing.T) {
	cp := discountedProduct()
	cp.Category = nil

	p := FromCatalogProduct(cp, "/media/")

	assert.Nil(t, p.Categoria)
}

func TestFromCatalogProducts_NeverNil(t *testing.T) {
	products := FromCatalogProducts(nil, "/media/")

	require.NotNil(t, products)
	assert.Empty(t, products)
}

func TestNewCatalogResponse(t *testing.T) {
	page := &usecase.CatalogPage{
		Products:   []*entity.CatalogProduct{discountedProduct()},
		Pagination: usecase.NewPagination(1, 12, 1),
	}

	resp := NewCatalogResponse(page, "/media/")

	assert.True(t, resp.Success)
	require.Len(t, resp.Products, 1)
	assert.Equal(t, int64(1), resp.Total)
	assert.Equal(t, 1, resp.Pagination.Number)
}

func TestNewCartMutationResponse(t *testing.T) {
	resp := NewCartMutationResponse("Carrito actualizado correctamente", &usecase.CartSummary{
		Count:    3,
		Subtotal: dec("226.5"),
	})

	assert.True(t, resp.Success)
	assert.Equal(t, "Carrito actualizado correctamente", resp.Message)
	assert.Equal(t, 3, resp.CartCount)
	assert.Equal(t, "226.50", resp.Subtotal)
}

func TestFromCartLines_InactiveProductStillPriced(t *testing.T) {
	inactive := discountedProduct().Product
	inactive.Active = false

	lines := FromCartLines([]*entity.CartLine{
		{
			Item:         entity.CartItem{ProductID: 1, Quantity: 2},
			Product:      inactive,
			PrimaryImage: "productos/teclado.jpg",
		},
	}, "/media/")

	require.Len(t, lines, 1)
	assert.False(t, lines[0].Activo)
	assert.Equal(t, 2, lines[0].Cantidad)
	assert.Equal(t, "151.00", lines[0].Subtotal)
	assert.Equal(t, "/media/productos/teclado.jpg", lines[0].Product.Imagen)
}

func TestMediaURL(t *testing.T) {
	tests := []struct {
		name    string
		prefix  string
		locator string
		want    string
	}{
		{name: "relative locator", prefix: "/media/", locator: "productos/a.jpg", want: "/media/productos/a.jpg"},
		{name: "leading slash locator", prefix: "/media", locator: "/productos/a.jpg", want: "/media/productos/a.jpg"},
		{name: "absolute http", prefix: "/media/", locator: "http://cdn.example.com/a.jpg", want: "http://cdn.example.com/a.jpg"},
		{name: "absolute https", prefix: "/media/", locator: "https://cdn.example.com/a.jpg", want: "https://cdn.example.com/a.jpg"},
		{name: "empty locator", prefix: "/media/", locator: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MediaURL(tt.prefix, tt.locator))
		})
	}
}
