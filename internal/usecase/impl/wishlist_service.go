package impl

import (
	"context"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
}

// WishlistServiceParams holds dependencies for WishlistService, injected by Fx.
type WishlistServiceParams struct {
	fx.In

	WishlistRepo repository.WishlistRepository
	ProductRepo  repository.ProductRepository
}

// NewWishlistService creates a new wishlist service instance
func NewWishlistService(params WishlistServiceParams) usecase.WishlistUsecase {
	return &wishlistService{
		wishlistRepo: params.WishlistRepo,
		productRepo:  params.ProductRepo,
	}
}

// Add saves a product for later. Unlike the cart, an inactive product can be
// saved: the wishlist is a bookmark, not a purchase intent.
func (s *wishlistService) Add(ctx context.Context, userID uuid.UUID, productID int64) (bool, error) {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return false, domainerrors.ErrProductNotFound
		}

		return false, errors.Wrap(err, "failed to load product for wishlist")
	}

	created, err := s.wishlistRepo.Add(ctx, userID, productID)
	if err != nil {
		return false, errors.Wrap(err, "failed to add wishlist entry")
	}

	return created, nil
}

func (s *wishlistService) Remove(ctx context.Context, userID uuid.UUID, productID int64) error {
	if err := s.wishlistRepo.Remove(ctx, userID, productID); err != nil {
		return errors.Wrap(err, "failed to remove wishlist entry")
	}

	return nil
}

func (s *wishlistService) Contains(ctx context.Context, userID uuid.UUID, productID int64) (bool, error) {
	found, err := s.wishlistRepo.Contains(ctx, userID, productID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check wishlist entry")
	}

	return found, nil
}

func (s *wishlistService) List(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistLine, error) {
	lines, err := s.wishlistRepo.ListLines(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wishlist")
	}

	return lines, nil
}
