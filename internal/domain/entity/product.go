// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a sellable item in the catalog. Prices are fixed-point with two
// fractional digits; DiscountPrice is nil when the product has no discount set.
type Product struct {
	ID               int64
	Name             string
	Slug             string
	Description      string
	ShortDescription string
	Price            decimal.Decimal
	DiscountPrice    *decimal.Decimal
	Stock            int
	IsNew            bool
	Featured         bool
	Active           bool
	Sales            int
	Views            int
	CreatedAt        time.Time
	CategoryID       *int64
	BrandID          *int64
	Category         *Category // Populated by joined reads; nil when the product has no category.
	Brand            *Brand    // Populated by joined reads; nil when the product has no brand.
}

// EffectivePrice is the price a customer pays: the discounted price when one
// is set, otherwise the base price. The sign relationship between the two is
// deliberately not checked here; a discount only counts as a discount in
// HasDiscount.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}

	return p.Price
}

// HasDiscount reports whether a discounted price is set and strictly below
// the base price.
func (p *Product) HasDiscount() bool {
	return p.DiscountPrice != nil && p.DiscountPrice.LessThan(p.Price)
}

// DiscountPercent is floor(100 * (1 - discounted/base)), or 0 when the
// product has no honored discount or a zero base price.
func (p *Product) DiscountPercent() int {
	if !p.HasDiscount() || p.Price.IsZero() {
		return 0
	}

	ratio := p.DiscountPrice.Div(p.Price)

	return int(decimal.NewFromInt(1).Sub(ratio).Mul(decimal.NewFromInt(100)).IntPart())
}

// InStock reports whether any units remain.
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// URL is the canonical detail page path for the product.
func (p *Product) URL() string {
	return "/producto/" + p.Slug + "/"
}

// ProductImage is an image owned by exactly one product.
type ProductImage struct {
	ID        int64
	ProductID int64
	Image     string // Locator relative to the media URL prefix.
}

// ProductAttribute is a (name, value) pair owned by one product; a product
// may carry many.
type ProductAttribute struct {
	ID        int64
	ProductID int64
	Name      string
	Value     string
}
