package postgres

import (
	"context"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db: db,
	}
}

// The upserts target the partial unique index matching the owner kind, so
// two concurrent adds of the same product by the same identity compose into
// one row instead of racing.
const (
	addUserItemSQL = `INSERT INTO cart_items (user_id, product_id, quantity, created_at)
VALUES (?, ?, ?, NOW())
ON CONFLICT (user_id, product_id) WHERE user_id IS NOT NULL
DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity`

	addSessionItemSQL = `INSERT INTO cart_items (session_key, product_id, quantity, created_at)
VALUES (?, ?, ?, NOW())
ON CONFLICT (session_key, product_id) WHERE session_key IS NOT NULL
DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity`

	setUserItemSQL = `INSERT INTO cart_items (user_id, product_id, quantity, created_at)
VALUES (?, ?, ?, NOW())
ON CONFLICT (user_id, product_id) WHERE user_id IS NOT NULL
DO UPDATE SET quantity = EXCLUDED.quantity`

	setSessionItemSQL = `INSERT INTO cart_items (session_key, product_id, quantity, created_at)
VALUES (?, ?, ?, NOW())
ON CONFLICT (session_key, product_id) WHERE session_key IS NOT NULL
DO UPDATE SET quantity = EXCLUDED.quantity`
)

// AddQuantity upserts a cart item, adding qty on conflict.
func (repo *cartRepository) AddQuantity(ctx context.Context, owner entity.CartOwner, productID int64, qty int) error {
	return repo.upsert(ctx, owner, productID, qty, addUserItemSQL, addSessionItemSQL)
}

// SetQuantity upserts a cart item, replacing the quantity on conflict.
func (repo *cartRepository) SetQuantity(ctx context.Context, owner entity.CartOwner, productID int64, qty int) error {
	return repo.upsert(ctx, owner, productID, qty, setUserItemSQL, setSessionItemSQL)
}

func (repo *cartRepository) upsert(ctx context.Context, owner entity.CartOwner, productID int64, qty int, userSQL, sessionSQL string) error {
	var result *gorm.DB
	if userID, ok := owner.UserID(); ok {
		result = repo.db.WithContext(ctx).Exec(userSQL, userID, productID, qty)
	} else if sessionKey, ok := owner.SessionKey(); ok {
		result = repo.db.WithContext(ctx).Exec(sessionSQL, sessionKey, productID, qty)
	} else {
		return errors.New("cart owner is not set")
	}

	if err := result.Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidQuantity
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert cart item")
	}

	return nil
}

// Remove deletes the item if present; absence is not an error.
func (repo *cartRepository) Remove(ctx context.Context, owner entity.CartOwner, productID int64) error {
	q := repo.db.WithContext(ctx).Where("product_id = ?", productID)
	q = scopeByOwner(q, owner)

	if err := q.Delete(&model.CartItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to remove cart item")
	}

	return nil
}

// ListLines retrieves the owner's cart items joined with their products and
// primary images. Products are loaded regardless of activity so subtotals
// stay correct for carts holding deactivated products.
func (repo *cartRepository) ListLines(ctx context.Context, owner entity.CartOwner) ([]*entity.CartLine, error) {
	var itemModels []*model.CartItemModel

	q := scopeByOwner(repo.db.WithContext(ctx), owner)
	if err := q.Order("created_at ASC, id ASC").Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load cart items")
	}
	if len(itemModels) == 0 {
		return []*entity.CartLine{}, nil
	}

	ids := make([]int64, 0, len(itemModels))
	for _, itemM := range itemModels {
		ids = append(ids, itemM.ProductID)
	}

	var rows []*model.ProductRow
	if err := annotatedProducts(repo.db.WithContext(ctx)).
		Where("products.id IN ?", ids).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load cart products")
	}

	images, err := loadPrimaryImages(ctx, repo.db, rows)
	if err != nil {
		return nil, err
	}

	productsByID := make(map[int64]*entity.CatalogProduct, len(rows))
	for _, row := range rows {
		productsByID[row.ID] = rowToCatalogDomain(row, images[row.ID])
	}

	lines := make([]*entity.CartLine, 0, len(itemModels))
	for _, itemM := range itemModels {
		product, ok := productsByID[itemM.ProductID]
		if !ok {
			// Product row vanished between the two reads; skip the orphan.
			continue
		}

		lines = append(lines, &entity.CartLine{
			Item:         *toCartItemDomain(itemM),
			Product:      product.Product,
			PrimaryImage: product.PrimaryImage,
		})
	}

	return lines, nil
}

// CountItems returns the sum of quantities across the owner's items.
func (repo *cartRepository) CountItems(ctx context.Context, owner entity.CartOwner) (int, error) {
	var count *int64

	q := scopeByOwner(repo.db.WithContext(ctx), owner).
		Model(&model.CartItemModel{}).
		Select("SUM(quantity)")
	if err := q.Scan(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count cart items")
	}
	if count == nil {
		return 0, nil
	}

	return int(*count), nil
}

// MergeAnonymous folds an anonymous cart into the user's cart by summing
// quantities per product, then drops the anonymous rows. Runs as one
// statement pair; callers wanting atomicity run it inside a transaction.
func (repo *cartRepository) MergeAnonymous(ctx context.Context, sessionKey string, userID uuid.UUID) error {
	mergeSQL := `INSERT INTO cart_items (user_id, product_id, quantity, created_at)
SELECT ?, product_id, quantity, created_at FROM cart_items WHERE session_key = ?
ON CONFLICT (user_id, product_id) WHERE user_id IS NOT NULL
DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity`

	if err := repo.db.WithContext(ctx).Exec(mergeSQL, userID, sessionKey).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to merge anonymous cart")
	}

	if err := repo.db.WithContext(ctx).
		Where("session_key = ?", sessionKey).
		Delete(&model.CartItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear anonymous cart")
	}

	return nil
}

// scopeByOwner narrows a cart query to the rows of one identity key.
func scopeByOwner(db *gorm.DB, owner entity.CartOwner) *gorm.DB {
	if userID, ok := owner.UserID(); ok {
		return db.Where("user_id = ?", userID)
	}
	if sessionKey, ok := owner.SessionKey(); ok {
		return db.Where("session_key = ?", sessionKey)
	}

	// An unset owner matches nothing rather than everything.
	return db.Where("1 = 0")
}

// --- Mapper Functions ---

// toCartItemDomain converts a GORM CartItemModel to a domain CartItem entity.
func toCartItemDomain(data *model.CartItemModel) *entity.CartItem {
	if data == nil {
		return nil
	}

	var owner entity.CartOwner
	switch {
	case data.UserID != nil:
		owner = entity.UserOwner(*data.UserID)
	case data.SessionKey != nil:
		owner = entity.AnonymousOwner(*data.SessionKey)
	}

	return &entity.CartItem{
		ID:        data.ID,
		Owner:     owner,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		CreatedAt: data.CreatedAt,
	}
}
