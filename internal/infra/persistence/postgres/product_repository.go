package postgres

import (
	"context"

	"tienda/internal/domain/entity"
	"tienda/internal/domain/repository"
	"tienda/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// annotatedSelect surfaces the derived columns the catalog depends on as
// first-class SQL expressions. Effective price is COALESCE(discount, base)
// so price filters and sorts honor discounts; review aggregates come from a
// grouped subquery so rating sorts never load reviews into memory.
const annotatedSelect = `products.*, ` +
	`COALESCE(products.discount_price, products.price) AS effective_price, ` +
	`r.avg_rating AS avg_rating, ` +
	`COALESCE(r.review_count, 0) AS review_count, ` +
	`categories.name AS category_name, categories.slug AS category_slug, ` +
	`brands.name AS brand_name, brands.slug AS brand_slug`

const reviewAggregateJoin = `LEFT JOIN (` +
	`SELECT product_id, AVG(rating)::float8 AS avg_rating, COUNT(*) AS review_count ` +
	`FROM reviews WHERE active GROUP BY product_id` +
	`) r ON r.product_id = products.id`

// annotatedProducts builds the base query every catalog read shares.
func annotatedProducts(db *gorm.DB) *gorm.DB {
	return db.
		Table("products").
		Select(annotatedSelect).
		Joins(reviewAggregateJoin).
		Joins("LEFT JOIN categories ON categories.id = products.category_id").
		Joins("LEFT JOIN brands ON brands.id = products.brand_id")
}

// catalogJoins mirrors annotatedProducts without the select list, for count
// queries over the same predicate.
func catalogJoins(db *gorm.DB) *gorm.DB {
	return db.
		Table("products").
		Joins(reviewAggregateJoin).
		Joins("LEFT JOIN categories ON categories.id = products.category_id").
		Joins("LEFT JOIN brands ON brands.id = products.brand_id")
}

// applyCatalogFilters translates a normalized catalog query into SQL
// predicates. Absent filters are not applied; groups combine with AND.
func applyCatalogFilters(db *gorm.DB, query repository.CatalogQuery) *gorm.DB {
	db = db.Where("products.active")

	if len(query.CategoryIDs) > 0 {
		db = db.Where("products.category_id IN ?", query.CategoryIDs)
	}
	if len(query.BrandIDs) > 0 {
		db = db.Where("products.brand_id IN ?", query.BrandIDs)
	}
	if query.PriceMin != nil {
		db = db.Where("COALESCE(products.discount_price, products.price) >= ?", *query.PriceMin)
	}
	if query.PriceMax != nil {
		db = db.Where("COALESCE(products.discount_price, products.price) <= ?", *query.PriceMax)
	}
	if query.Availability.Available {
		db = db.Where("products.stock > 0")
	}
	if query.Availability.OnSale {
		db = db.Where("products.discount_price IS NOT NULL")
	}
	if query.Availability.New {
		db = db.Where("products.is_new")
	}
	if query.RatingMin > 0 {
		db = db.Where("COALESCE(r.avg_rating, 0) >= ?", query.RatingMin)
	}
	if query.Search != "" {
		like := "%" + query.Search + "%"
		db = db.Where(
			"products.name ILIKE ? OR products.description ILIKE ? OR products.short_description ILIKE ? OR categories.name ILIKE ? OR brands.name ILIKE ?",
			like, like, like, like, like,
		)
	}

	return db
}

// orderClause maps the sort dialect to SQL. Every ordering ends on the
// product id so pagination is deterministic.
func orderClause(sort repository.Sort) string {
	switch sort {
	case repository.SortNameAsc:
		return "products.name ASC, products.id ASC"
	case repository.SortNameDesc:
		return "products.name DESC, products.id ASC"
	case repository.SortPriceAsc:
		return "effective_price ASC, products.id ASC"
	case repository.SortPriceDesc:
		return "effective_price DESC, products.id ASC"
	case repository.SortRatingDesc:
		return "r.avg_rating DESC NULLS LAST, products.id ASC"
	case repository.SortNewest:
		return "products.created_at DESC, products.id ASC"
	case repository.SortPopular:
		return "products.sales DESC, products.views DESC, products.id ASC"
	default:
		return "products.featured DESC, products.created_at DESC, products.id ASC"
	}
}

// FindPage runs the catalog query: count, page coercion, annotated fetch,
// then an O(page) primary image lookup.
func (repo *productRepository) FindPage(ctx context.Context, query repository.CatalogQuery) (*repository.ProductPage, error) {
	query.Normalize()

	var total int64
	countQ := applyCatalogFilters(catalogJoins(repo.db.WithContext(ctx)), query)
	if err := countQ.Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count catalog products")
	}

	page := coercePage(query.Page, total, query.ItemsPerPage)

	var rows []*model.ProductRow
	listQ := applyCatalogFilters(annotatedProducts(repo.db.WithContext(ctx)), query).
		Order(orderClause(query.Sort)).
		Limit(query.ItemsPerPage).
		Offset((page - 1) * query.ItemsPerPage)
	if err := listQ.Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query catalog page")
	}

	products, err := repo.attachPrimaryImages(ctx, rows)
	if err != nil {
		return nil, err
	}

	return &repository.ProductPage{
		Products: products,
		Total:    total,
		Page:     page,
	}, nil
}

// coercePage clamps an out-of-range page number to the nearest valid page.
func coercePage(page int, total int64, perPage int) int {
	numPages := int((total + int64(perPage) - 1) / int64(perPage))
	if numPages < 1 {
		numPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > numPages {
		return numPages
	}

	return page
}

// FindByID retrieves a product by primary key.
func (repo *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindDetailBySlug retrieves an active product with its owned collections
// and active reviews for the detail page.
func (repo *productRepository) FindDetailBySlug(ctx context.Context, slug string) (*entity.ProductDetail, error) {
	var row model.ProductRow

	result := annotatedProducts(repo.db.WithContext(ctx)).
		Where("products.active AND products.slug = ?", slug).
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to find product by slug")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrProductNotFound
	}

	var imageModels []*model.ProductImageModel
	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", row.ID).
		Order("id ASC").
		Find(&imageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load product images")
	}

	var attributeModels []*model.ProductAttributeModel
	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", row.ID).
		Order("id ASC").
		Find(&attributeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load product attributes")
	}

	var reviewModels []*model.ReviewModel
	if err := repo.db.WithContext(ctx).
		Where("product_id = ? AND active", row.ID).
		Order("created_at DESC, id DESC").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load product reviews")
	}

	primaryImage := ""
	if len(imageModels) > 0 {
		primaryImage = imageModels[0].Image
	}

	detail := &entity.ProductDetail{
		CatalogProduct: *rowToCatalogDomain(&row, primaryImage),
		Images:         make([]*entity.ProductImage, 0, len(imageModels)),
		Attributes:     make([]*entity.ProductAttribute, 0, len(attributeModels)),
		Reviews:        make([]*entity.Review, 0, len(reviewModels)),
	}
	for _, imageM := range imageModels {
		detail.Images = append(detail.Images, toImageDomain(imageM))
	}
	for _, attributeM := range attributeModels {
		detail.Attributes = append(detail.Attributes, toAttributeDomain(attributeM))
	}
	for _, reviewM := range reviewModels {
		detail.Reviews = append(detail.Reviews, toReviewDomain(reviewM))
	}

	return detail, nil
}

// FindAnnotatedByID retrieves a single active product with aggregates and
// primary image.
func (repo *productRepository) FindAnnotatedByID(ctx context.Context, id int64) (*entity.CatalogProduct, error) {
	var row model.ProductRow

	result := annotatedProducts(repo.db.WithContext(ctx)).
		Where("products.active AND products.id = ?", id).
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to find product by ID")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrProductNotFound
	}

	products, err := repo.attachPrimaryImages(ctx, []*model.ProductRow{&row})
	if err != nil {
		return nil, err
	}

	return products[0], nil
}

// FindActiveByIDs retrieves active products by id list; missing and inactive
// ids are silently skipped.
func (repo *productRepository) FindActiveByIDs(ctx context.Context, ids []int64) ([]*entity.CatalogProduct, error) {
	if len(ids) == 0 {
		return []*entity.CatalogProduct{}, nil
	}

	var rows []*model.ProductRow
	if err := annotatedProducts(repo.db.WithContext(ctx)).
		Where("products.active AND products.id IN ?", ids).
		Order("products.id ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by IDs")
	}

	return repo.attachPrimaryImages(ctx, rows)
}

// FindFeatured retrieves up to limit active featured products.
func (repo *productRepository) FindFeatured(ctx context.Context, limit int) ([]*entity.CatalogProduct, error) {
	var rows []*model.ProductRow
	if err := annotatedProducts(repo.db.WithContext(ctx)).
		Where("products.active AND products.featured").
		Order("products.created_at DESC, products.id ASC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find featured products")
	}

	return repo.attachPrimaryImages(ctx, rows)
}

// FindRelated retrieves up to limit active products in the same category,
// excluding the given one.
func (repo *productRepository) FindRelated(ctx context.Context, categoryID int64, excludeID int64, limit int) ([]*entity.CatalogProduct, error) {
	var rows []*model.ProductRow
	if err := annotatedProducts(repo.db.WithContext(ctx)).
		Where("products.active AND products.category_id = ? AND products.id <> ?", categoryID, excludeID).
		Order("products.featured DESC, products.created_at DESC, products.id ASC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find related products")
	}

	return repo.attachPrimaryImages(ctx, rows)
}

// IncrementViews bumps the view counter. Lost increments are acceptable.
func (repo *productRepository) IncrementViews(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		return errors.Wrap(err, "failed to increment product views")
	}

	return nil
}

// attachPrimaryImages loads the first image per product for a page of rows
// and maps the rows to domain entities.
func (repo *productRepository) attachPrimaryImages(ctx context.Context, rows []*model.ProductRow) ([]*entity.CatalogProduct, error) {
	images, err := loadPrimaryImages(ctx, repo.db, rows)
	if err != nil {
		return nil, err
	}

	products := make([]*entity.CatalogProduct, 0, len(rows))
	for _, row := range rows {
		products = append(products, rowToCatalogDomain(row, images[row.ID]))
	}

	return products, nil
}

// loadPrimaryImages fetches the lowest-id image per product in one query.
func loadPrimaryImages(ctx context.Context, db *gorm.DB, rows []*model.ProductRow) (map[int64]string, error) {
	if len(rows) == 0 {
		return map[int64]string{}, nil
	}

	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	var imageRows []struct {
		ProductID int64
		Image     string
	}
	if err := db.WithContext(ctx).
		Raw(`SELECT DISTINCT ON (product_id) product_id, image FROM product_images WHERE product_id IN ? ORDER BY product_id, id`, ids).
		Scan(&imageRows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load primary images")
	}

	images := make(map[int64]string, len(imageRows))
	for _, imageRow := range imageRows {
		images[imageRow.ProductID] = imageRow.Image
	}

	return images, nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:               data.ID,
		Name:             data.Name,
		Slug:             data.Slug,
		Description:      data.Description,
		ShortDescription: data.ShortDescription,
		Price:            data.Price,
		DiscountPrice:    data.DiscountPrice,
		Stock:            data.Stock,
		IsNew:            data.IsNew,
		Featured:         data.Featured,
		Active:           data.Active,
		Sales:            data.Sales,
		Views:            data.Views,
		CreatedAt:        data.CreatedAt,
		CategoryID:       data.CategoryID,
		BrandID:          data.BrandID,
	}
}

// rowToCatalogDomain converts an annotated ProductRow to a domain
// CatalogProduct, folding the joined display names into related entities.
func rowToCatalogDomain(row *model.ProductRow, primaryImage string) *entity.CatalogProduct {
	if row == nil {
		return nil
	}

	product := toProductDomain(&row.ProductModel)
	if row.CategoryID != nil && row.CategoryName != nil {
		product.Category = &entity.Category{
			ID:     *row.CategoryID,
			Name:   *row.CategoryName,
			Slug:   derefString(row.CategorySlug),
			Active: true,
		}
	}
	if row.BrandID != nil && row.BrandName != nil {
		product.Brand = &entity.Brand{
			ID:   *row.BrandID,
			Name: *row.BrandName,
			Slug: derefString(row.BrandSlug),
		}
	}

	avgRating := 0.0
	if row.AvgRating != nil {
		avgRating = *row.AvgRating
	}

	return &entity.CatalogProduct{
		Product:       *product,
		AverageRating: avgRating,
		ReviewCount:   int(row.ReviewCount),
		PrimaryImage:  primaryImage,
	}
}

func toImageDomain(data *model.ProductImageModel) *entity.ProductImage {
	return &entity.ProductImage{
		ID:        data.ID,
		ProductID: data.ProductID,
		Image:     data.Image,
	}
}

func toAttributeDomain(data *model.ProductAttributeModel) *entity.ProductAttribute {
	return &entity.ProductAttribute{
		ID:        data.ID,
		ProductID: data.ProductID,
		Name:      data.Name,
		Value:     data.Value,
	}
}

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	return &entity.Review{
		ID:        data.ID,
		ProductID: data.ProductID,
		UserID:    data.UserID,
		Rating:    data.Rating,
		Comment:   data.Comment,
		Active:    data.Active,
		CreatedAt: data.CreatedAt,
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
