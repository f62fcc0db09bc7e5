package repository

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Sort is the catalog ordering dialect. Every ordering carries a final
// ascending product-id tiebreak so pagination is deterministic.
type Sort string

const (
	SortDefault    Sort = "default" // featured desc, created desc
	SortNameAsc    Sort = "name_asc"
	SortNameDesc   Sort = "name_desc"
	SortPriceAsc   Sort = "price_asc"  // by effective price
	SortPriceDesc  Sort = "price_desc" // by effective price
	SortRatingDesc Sort = "rating_desc"
	SortNewest     Sort = "newest"
	SortPopular    Sort = "popular" // sales desc, views desc
)

// ParseSort maps a raw token to a Sort; unknown tokens fall back to the
// default ordering rather than failing.
func ParseSort(raw string) Sort {
	sort := Sort(strings.TrimSpace(raw))
	switch sort {
	case SortNameAsc, SortNameDesc, SortPriceAsc, SortPriceDesc,
		SortRatingDesc, SortNewest, SortPopular:
		return sort
	default:
		return SortDefault
	}
}

// Availability is the set of stock/offer filters. All false means the
// predicate group is not applied.
type Availability struct {
	Available bool // stock > 0
	OnSale    bool // discount price present
	New       bool // new flag set
}

// ParseAvailability folds raw tokens into an Availability set, ignoring
// unknown tokens.
func ParseAvailability(tokens []string) Availability {
	var a Availability
	for _, token := range tokens {
		switch strings.TrimSpace(token) {
		case "available", "disponible":
			a.Available = true
		case "on_sale", "ofertas":
			a.OnSale = true
		case "new", "nuevos":
			a.New = true
		}
	}

	return a
}

const (
	// DefaultItemsPerPage is used when the caller does not specify a page size.
	DefaultItemsPerPage = 12
	// MaxItemsPerPage caps the page size.
	MaxItemsPerPage = 96
)

// CatalogQuery is a normalized catalog listing request. Zero-valued fields
// mean "predicate not applied". Id sets combine with OR internally and AND
// across groups.
type CatalogQuery struct {
	CategoryIDs  []int64
	BrandIDs     []int64
	PriceMin     *decimal.Decimal // compared against effective price
	PriceMax     *decimal.Decimal // compared against effective price
	Availability Availability
	RatingMin    int    // 1..5; 0 means not applied
	Search       string // trimmed; case-insensitive substring disjunction
	Sort         Sort
	ItemsPerPage int
	// MaxItemsPerPage overrides the package cap when positive; the handler
	// sets it from configuration.
	MaxItemsPerPage int
	Page            int
}

// Normalize clamps paging values and defaults the sort so any parsed query
// becomes executable. Filter parsing is tolerant by construction; this never
// fails.
func (q *CatalogQuery) Normalize() {
	if q.ItemsPerPage <= 0 {
		q.ItemsPerPage = DefaultItemsPerPage
	}
	maxPerPage := q.MaxItemsPerPage
	if maxPerPage <= 0 {
		maxPerPage = MaxItemsPerPage
	}
	if q.ItemsPerPage > maxPerPage {
		q.ItemsPerPage = maxPerPage
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Sort == "" {
		q.Sort = SortDefault
	}
	if q.RatingMin < 0 {
		q.RatingMin = 0
	}
	if q.RatingMin > 5 {
		q.RatingMin = 5
	}
	q.Search = strings.TrimSpace(q.Search)

	// Drop an inverted price window instead of failing the request.
	if q.PriceMin != nil && q.PriceMax != nil && q.PriceMin.GreaterThan(*q.PriceMax) {
		q.PriceMin = nil
		q.PriceMax = nil
	}
}
