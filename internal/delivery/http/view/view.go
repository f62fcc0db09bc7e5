// Package view maps domain entities to the presentation shapes shared by the
// JSON envelopes and the HTML template contexts. Handlers never re-filter or
// re-sort; they only translate through this package.
package view

import (
	"strings"

	"tienda/internal/domain/entity"
	"tienda/internal/usecase"
)

// Product is the annotated product representation. Field names follow the
// storefront's public JSON contract.
type Product struct {
	ID                  int64   `json:"id"`
	Nombre              string  `json:"nombre"`
	Precio              string  `json:"precio"`
	PrecioFinal         string  `json:"precio_final"`
	TieneDescuento      bool    `json:"tiene_descuento"`
	PorcentajeDescuento int     `json:"porcentaje_descuento"`
	Stock               int     `json:"stock"`
	EnStock             bool    `json:"en_stock"`
	Imagen              string  `json:"imagen"`
	Categoria           *string `json:"categoria"`
	RatingPromedio      float64 `json:"rating_promedio"`
	TotalReviews        int     `json:"total_reviews"`
	Nuevo               bool    `json:"nuevo"`
	Destacado           bool    `json:"destacado"`
	URL                 string  `json:"url"`
}

// FromCatalogProduct builds the shared product representation. mediaPrefix is
// prepended to the stored image locator; a product without images gets an
// empty Imagen. Categoria is null when the product has no category.
func FromCatalogProduct(p *entity.CatalogProduct, mediaPrefix string) Product {
	var categoria *string
	if p.Category != nil {
		categoria = &p.Category.Name
	}

	return Product{
		ID:                  p.ID,
		Nombre:              p.Name,
		Precio:              p.Price.StringFixed(2),
		PrecioFinal:         p.EffectivePrice().StringFixed(2),
		TieneDescuento:      p.HasDiscount(),
		PorcentajeDescuento: p.DiscountPercent(),
		Stock:               p.Stock,
		EnStock:             p.InStock(),
		Imagen:              MediaURL(mediaPrefix, p.PrimaryImage),
		Categoria:           categoria,
		RatingPromedio:      p.AverageRating,
		TotalReviews:        p.ReviewCount,
		Nuevo:               p.IsNew,
		Destacado:           p.Featured,
		URL:                 p.URL(),
	}
}

// FromCatalogProducts maps a page of products, never returning nil so the
// JSON field is always an array.
func FromCatalogProducts(products []*entity.CatalogProduct, mediaPrefix string) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		out = append(out, FromCatalogProduct(p, mediaPrefix))
	}

	return out
}

// ProductInfo is the reduced shape returned by the bulk lookup endpoint.
type ProductInfo struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	PrecioFinal string `json:"precio_final"`
	Imagen      string `json:"imagen"`
	EnStock     bool   `json:"en_stock"`
	Stock       int    `json:"stock"`
}

// FromCatalogProductInfo builds the bulk lookup shape.
func FromCatalogProductInfo(p *entity.CatalogProduct, mediaPrefix string) ProductInfo {
	return ProductInfo{
		ID:          p.ID,
		Nombre:      p.Name,
		PrecioFinal: p.EffectivePrice().StringFixed(2),
		Imagen:      MediaURL(mediaPrefix, p.PrimaryImage),
		EnStock:     p.InStock(),
		Stock:       p.Stock,
	}
}

// CatalogResponse is the catalog JSON envelope.
type CatalogResponse struct {
	Success    bool               `json:"success"`
	Products   []Product          `json:"products"`
	Pagination usecase.Pagination `json:"pagination"`
	Total      int64              `json:"total"`
}

// NewCatalogResponse assembles the catalog envelope from a listing result.
func NewCatalogResponse(page *usecase.CatalogPage, mediaPrefix string) CatalogResponse {
	return CatalogResponse{
		Success:    true,
		Products:   FromCatalogProducts(page.Products, mediaPrefix),
		Pagination: page.Pagination,
		Total:      page.Pagination.Total,
	}
}

// CartMutationResponse is the envelope returned after every cart mutation.
type CartMutationResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	CartCount int    `json:"cart_count"`
	Subtotal  string `json:"subtotal"`
}

// NewCartMutationResponse builds the cart mutation envelope.
func NewCartMutationResponse(message string, summary *usecase.CartSummary) CartMutationResponse {
	return CartMutationResponse{
		Success:   true,
		Message:   message,
		CartCount: summary.Count,
		Subtotal:  summary.Subtotal.StringFixed(2),
	}
}

// CartLine is a cart row for the cart page context.
type CartLine struct {
	Product  Product
	Cantidad int
	Subtotal string
	// Activo gates presentation; the subtotal above still counts inactive
	// products.
	Activo bool
}

// FromCartLines maps stored cart lines for the cart page.
func FromCartLines(lines []*entity.CartLine, mediaPrefix string) []CartLine {
	out := make([]CartLine, 0, len(lines))
	for _, line := range lines {
		annotated := &entity.CatalogProduct{Product: line.Product, PrimaryImage: line.PrimaryImage}
		out = append(out, CartLine{
			Product:  FromCatalogProduct(annotated, mediaPrefix),
			Cantidad: line.Item.Quantity,
			Subtotal: line.Subtotal().StringFixed(2),
			Activo:   line.Product.Active,
		})
	}

	return out
}

// WishlistLine is a saved product for the wishlist page context.
type WishlistLine struct {
	Product Product
	Activo  bool
}

// FromWishlistLines maps wishlist entries for the wishlist page.
func FromWishlistLines(lines []*entity.WishlistLine, mediaPrefix string) []WishlistLine {
	out := make([]WishlistLine, 0, len(lines))
	for _, line := range lines {
		annotated := &entity.CatalogProduct{Product: line.Product, PrimaryImage: line.PrimaryImage}
		out = append(out, WishlistLine{
			Product: FromCatalogProduct(annotated, mediaPrefix),
			Activo:  line.Product.Active,
		})
	}

	return out
}

// MediaURL resolves a stored image locator against the media URL prefix.
// Absolute locators and empty values pass through untouched.
func MediaURL(prefix, locator string) string {
	if locator == "" || strings.HasPrefix(locator, "http://") || strings.HasPrefix(locator, "https://") {
		return locator
	}

	return strings.TrimSuffix(prefix, "/") + "/" + strings.TrimPrefix(locator, "/")
}
