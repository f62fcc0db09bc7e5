// Package usecase defines the application's use case interfaces and their
// shared data transfer types.
package usecase

import (
	"context"

	"tienda/internal/domain/entity"
	"tienda/internal/domain/repository"
)

// Pagination describes one page of a listing.
type Pagination struct {
	Number       int   `json:"number"`
	NumPages     int   `json:"num_pages"`
	Total        int64 `json:"total"`
	HasPrevious  bool  `json:"has_previous"`
	HasNext      bool  `json:"has_next"`
	PreviousPage *int  `json:"previous_page_number"` // null when there is no previous page
	NextPage     *int  `json:"next_page_number"`     // null when there is no next page
}

// NewPagination computes page metadata for a total and an effective page
// number. NumPages is at least 1 even for empty result sets.
func NewPagination(total int64, perPage, page int) Pagination {
	numPages := int((total + int64(perPage) - 1) / int64(perPage))
	if numPages < 1 {
		numPages = 1
	}

	p := Pagination{
		Number:   page,
		NumPages: numPages,
		Total:    total,
	}
	if page > 1 {
		p.HasPrevious = true
		prev := page - 1
		p.PreviousPage = &prev
	}
	if page < numPages {
		p.HasNext = true
		next := page + 1
		p.NextPage = &next
	}

	return p
}

// CatalogPage is the full catalog listing result: the page of annotated
// products plus the facet universe for the filter sidebar.
type CatalogPage struct {
	Products   []*entity.CatalogProduct
	Pagination Pagination
	Categories []*entity.CategoryFacet
	Brands     []*entity.Brand
}

// CatalogUsecase defines the catalog listing use case.
type CatalogUsecase interface {
	// List executes a normalized catalog query and returns the page with
	// facets. Query parsing is tolerant; List never fails on bad filter
	// values, only on store errors.
	List(ctx context.Context, query repository.CatalogQuery) (*CatalogPage, error)
}
