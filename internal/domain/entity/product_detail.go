package entity

// ProductDetail is the full product view for the detail page: the annotated
// product plus its owned collections and active reviews (newest first).
type ProductDetail struct {
	CatalogProduct
	Images     []*ProductImage
	Attributes []*ProductAttribute
	Reviews    []*Review
}
