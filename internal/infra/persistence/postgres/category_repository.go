package postgres

import (
	"context"

	"tienda/internal/domain/entity"
	"tienda/internal/domain/repository"
	"tienda/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// categoryRepository implements the repository.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// FindActiveWithCounts retrieves active categories with their active-product
// counts, ordered by rank then name. The counts ignore any other catalog
// filters: they describe the facet universe, not the current result set.
func (repo *categoryRepository) FindActiveWithCounts(ctx context.Context, limit int) ([]*entity.CategoryFacet, error) {
	var rows []*model.CategoryCountRow

	q := repo.db.WithContext(ctx).
		Table("categories").
		Select("categories.*, COUNT(products.id) AS product_count").
		Joins("LEFT JOIN products ON products.category_id = categories.id AND products.active").
		Where("categories.active").
		Group("categories.id").
		Order("categories.rank ASC, categories.name ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	if err := q.Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load category facets")
	}

	facets := make([]*entity.CategoryFacet, 0, len(rows))
	for _, row := range rows {
		facets = append(facets, &entity.CategoryFacet{
			Category:     *toCategoryDomain(&row.CategoryModel),
			ProductCount: int(row.ProductCount),
		})
	}

	return facets, nil
}

// brandRepository implements the repository.BrandRepository interface.
type brandRepository struct {
	db *gorm.DB
}

// NewBrandRepository is the constructor for brandRepository.
func NewBrandRepository(db *gorm.DB) repository.BrandRepository {
	return &brandRepository{
		db: db,
	}
}

// FindWithActiveProducts retrieves brands having at least one active product.
func (repo *brandRepository) FindWithActiveProducts(ctx context.Context) ([]*entity.Brand, error) {
	var brandModels []*model.BrandModel

	if err := repo.db.WithContext(ctx).
		Table("brands").
		Select("DISTINCT brands.*").
		Joins("JOIN products ON products.brand_id = brands.id AND products.active").
		Order("brands.name ASC").
		Scan(&brandModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load brands with active products")
	}

	brands := make([]*entity.Brand, 0, len(brandModels))
	for _, brandM := range brandModels {
		brands = append(brands, toBrandDomain(brandM))
	}

	return brands, nil
}

// --- Mapper Functions ---

// toCategoryDomain converts a GORM CategoryModel to a domain Category entity.
func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:     data.ID,
		Name:   data.Name,
		Slug:   data.Slug,
		Active: data.Active,
		Rank:   data.Rank,
	}
}

// toBrandDomain converts a GORM BrandModel to a domain Brand entity.
func toBrandDomain(data *model.BrandModel) *entity.Brand {
	if data == nil {
		return nil
	}

	return &entity.Brand{
		ID:   data.ID,
		Name: data.Name,
		Slug: data.Slug,
	}
}
