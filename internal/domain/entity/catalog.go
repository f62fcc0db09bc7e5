package entity

// CatalogProduct is a product annotated with the aggregates the catalog and
// cart surfaces need: review statistics and the primary image locator. The
// aggregates come from the store's main query, never from loading reviews
// into memory.
type CatalogProduct struct {
	Product
	AverageRating float64
	ReviewCount   int
	PrimaryImage  string
}
