package entity

// Category groups products for navigation. Inactive categories are hidden
// from presentation but never deleted.
type Category struct {
	ID     int64
	Name   string
	Slug   string
	Active bool
	Rank   int // Ordering rank used for facet display.
}

// CategoryFacet is a category annotated with its count of active products,
// used to build the catalog filter sidebar.
type CategoryFacet struct {
	Category
	ProductCount int
}

// Brand identifies a product manufacturer.
type Brand struct {
	ID   int64
	Name string
	Slug string
}
