package repository

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseSort(t *testing.T) {
	tests := []struct {
		raw  string
		want Sort
	}{
		{"name_asc", SortNameAsc},
		{"price_desc", SortPriceDesc},
		{"rating_desc", SortRatingDesc},
		{"popular", SortPopular},
		{"default", SortDefault},
		{"", SortDefault},
		{"garbage", SortDefault},
		{"PRICE_ASC", SortDefault},
		// Surrounding whitespace is stripped and the canonical constant
		// comes back, never the padded raw value.
		{"  price_asc ", SortPriceAsc},
		{"newest\n", SortNewest},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseSort(tt.raw), "raw=%q", tt.raw)
	}
}

func TestParseAvailability(t *testing.T) {
	a := ParseAvailability([]string{"disponible", "ofertas", "bogus"})
	assert.True(t, a.Available)
	assert.True(t, a.OnSale)
	assert.False(t, a.New)

	a = ParseAvailability([]string{"available", "on_sale", "new"})
	assert.True(t, a.Available)
	assert.True(t, a.OnSale)
	assert.True(t, a.New)

	a = ParseAvailability(nil)
	assert.Equal(t, Availability{}, a)
}

func TestCatalogQuery_Normalize(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var q CatalogQuery
		q.Normalize()
		assert.Equal(t, DefaultItemsPerPage, q.ItemsPerPage)
		assert.Equal(t, 1, q.Page)
		assert.Equal(t, SortDefault, q.Sort)
	})

	t.Run("clamps items per page", func(t *testing.T) {
		q := CatalogQuery{ItemsPerPage: 1000}
		q.Normalize()
		assert.Equal(t, MaxItemsPerPage, q.ItemsPerPage)

		q = CatalogQuery{ItemsPerPage: -4}
		q.Normalize()
		assert.Equal(t, DefaultItemsPerPage, q.ItemsPerPage)
	})

	t.Run("configured cap overrides the package cap", func(t *testing.T) {
		q := CatalogQuery{ItemsPerPage: 60, MaxItemsPerPage: 24}
		q.Normalize()
		assert.Equal(t, 24, q.ItemsPerPage)

		q = CatalogQuery{ItemsPerPage: 20, MaxItemsPerPage: 24}
		q.Normalize()
		assert.Equal(t, 20, q.ItemsPerPage)
	})

	t.Run("clamps rating", func(t *testing.T) {
		q := CatalogQuery{RatingMin: 9}
		q.Normalize()
		assert.Equal(t, 5, q.RatingMin)

		q = CatalogQuery{RatingMin: -1}
		q.Normalize()
		assert.Equal(t, 0, q.RatingMin)
	})

	t.Run("trims search", func(t *testing.T) {
		q := CatalogQuery{Search: "  camiseta  "}
		q.Normalize()
		assert.Equal(t, "camiseta", q.Search)
	})

	t.Run("drops inverted price window", func(t *testing.T) {
		minPrice := decimal.RequireFromString("50")
		maxPrice := decimal.RequireFromString("10")
		q := CatalogQuery{PriceMin: &minPrice, PriceMax: &maxPrice}
		q.Normalize()
		assert.Nil(t, q.PriceMin)
		assert.Nil(t, q.PriceMax)
	})

	t.Run("keeps valid price window", func(t *testing.T) {
		minPrice := decimal.RequireFromString("10")
		maxPrice := decimal.RequireFromString("50")
		q := CatalogQuery{PriceMin: &minPrice, PriceMax: &maxPrice}
		q.Normalize()
		assert.NotNil(t, q.PriceMin)
		assert.NotNil(t, q.PriceMax)
	})
}
