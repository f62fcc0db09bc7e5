package impl

import (
	"context"
	"log/slog"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	homeFeaturedCount   = 8
	homeCategoriesCount = 6
	relatedCount        = 4
)

type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	wishlistRepo repository.WishlistRepository
	logger       *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	WishlistRepo repository.WishlistRepository
	Logger       *slog.Logger
}

// NewProductService creates a new product service instance
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		wishlistRepo: params.WishlistRepo,
		logger:       params.Logger,
	}
}

func (s *productService) Home(ctx context.Context) (*usecase.HomeData, error) {
	featured, err := s.productRepo.FindFeatured(ctx, homeFeaturedCount)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load featured products")
	}

	categories, err := s.categoryRepo.FindActiveWithCounts(ctx, homeCategoriesCount)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load home categories")
	}

	return &usecase.HomeData{
		Featured:      featured,
		TopCategories: categories,
	}, nil
}

func (s *productService) Detail(ctx context.Context, slug string, viewer *uuid.UUID) (*usecase.ProductDetailData, error) {
	detail, err := s.productRepo.FindDetailBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product detail")
	}

	// The view counter is best effort. A failed bump never breaks the page.
	if err := s.productRepo.IncrementViews(ctx, detail.ID); err != nil {
		s.logger.WarnContext(ctx, "failed to increment product views",
			slog.Int64("product_id", detail.ID),
			slog.String("error", err.Error()))
	}

	data := &usecase.ProductDetailData{Product: detail}

	if detail.CategoryID != nil {
		related, err := s.productRepo.FindRelated(ctx, *detail.CategoryID, detail.ID, relatedCount)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load related products")
		}
		data.Related = related
	}

	if viewer != nil {
		inWishlist, err := s.wishlistRepo.Contains(ctx, *viewer, detail.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check wishlist membership")
		}
		data.InWishlist = inWishlist
	}

	return data, nil
}

func (s *productService) QuickView(ctx context.Context, id int64) (*entity.CatalogProduct, error) {
	product, err := s.productRepo.FindAnnotatedByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load quick view product")
	}
	if !product.Active {
		return nil, domainerrors.ErrProductNotFound
	}

	return product, nil
}

func (s *productService) BulkInfo(ctx context.Context, ids []int64) ([]*entity.CatalogProduct, error) {
	if len(ids) == 0 {
		return []*entity.CatalogProduct{}, nil
	}

	products, err := s.productRepo.FindActiveByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load products info")
	}

	return products, nil
}
