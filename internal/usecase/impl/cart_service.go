package impl

import (
	"context"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	txManager   repository.TransactionManager
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	TxManager   repository.TransactionManager
}

// NewCartService creates a new cart service instance
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		txManager:   params.TxManager,
	}
}

// checkPurchasable verifies the product exists and is active before any cart
// write that adds or keeps it.
func (s *cartService) checkPurchasable(ctx context.Context, productID int64) error {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to load product for cart")
	}
	if !product.Active {
		return domainerrors.ErrProductUnavailable
	}

	return nil
}

func (s *cartService) Add(ctx context.Context, owner entity.CartOwner, productID int64, qty int) (*usecase.CartSummary, error) {
	if qty <= 0 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	if err := s.checkPurchasable(ctx, productID); err != nil {
		return nil, err
	}

	if err := s.cartRepo.AddQuantity(ctx, owner, productID, qty); err != nil {
		return nil, errors.Wrap(err, "failed to add cart item")
	}

	return s.summary(ctx, owner)
}

func (s *cartService) Update(ctx context.Context, owner entity.CartOwner, productID int64, qty int) (*usecase.CartSummary, error) {
	// Setting a quantity below one is a removal, matching the storefront's
	// stepper behavior.
	if qty < 1 {
		return s.Remove(ctx, owner, productID)
	}

	if err := s.checkPurchasable(ctx, productID); err != nil {
		return nil, err
	}

	if err := s.cartRepo.SetQuantity(ctx, owner, productID, qty); err != nil {
		return nil, errors.Wrap(err, "failed to update cart item")
	}

	return s.summary(ctx, owner)
}

func (s *cartService) Remove(ctx context.Context, owner entity.CartOwner, productID int64) (*usecase.CartSummary, error) {
	if err := s.cartRepo.Remove(ctx, owner, productID); err != nil {
		return nil, errors.Wrap(err, "failed to remove cart item")
	}

	return s.summary(ctx, owner)
}

func (s *cartService) List(ctx context.Context, owner entity.CartOwner) (*usecase.CartView, error) {
	lines, err := s.cartRepo.ListLines(ctx, owner)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart")
	}

	return &usecase.CartView{
		Lines:    lines,
		Subtotal: sumSubtotals(lines),
	}, nil
}

func (s *cartService) Count(ctx context.Context, owner entity.CartOwner) (int, error) {
	count, err := s.cartRepo.CountItems(ctx, owner)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count cart items")
	}

	return count, nil
}

func (s *cartService) Merge(ctx context.Context, sessionKey string, userID uuid.UUID) error {
	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		return txRepoFactory.NewCartRepository().MergeAnonymous(ctx, sessionKey, userID)
	})
	if err != nil {
		return errors.Wrap(err, "failed to merge anonymous cart")
	}

	return nil
}

// summary recomputes the aggregate from the stored lines after a mutation so
// the response always reflects store state, not the request.
func (s *cartService) summary(ctx context.Context, owner entity.CartOwner) (*usecase.CartSummary, error) {
	lines, err := s.cartRepo.ListLines(ctx, owner)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize cart")
	}

	count := 0
	for _, line := range lines {
		count += line.Item.Quantity
	}

	return &usecase.CartSummary{
		Count:    count,
		Subtotal: sumSubtotals(lines),
	}, nil
}

func sumSubtotals(lines []*entity.CartLine) decimal.Decimal {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.Subtotal())
	}

	return subtotal
}
