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

// wishlistRepository implements the repository.WishlistRepository interface.
type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository is the constructor for wishlistRepository.
func NewWishlistRepository(db *gorm.DB) repository.WishlistRepository {
	return &wishlistRepository{
		db: db,
	}
}

// Add inserts the (user, product) entry; the unique index makes duplicate
// adds a no-op.
func (repo *wishlistRepository) Add(ctx context.Context, userID uuid.UUID, productID int64) (bool, error) {
	result := repo.db.WithContext(ctx).Exec(
		`INSERT INTO wishlist_entries (user_id, product_id, created_at)
VALUES (?, ?, NOW())
ON CONFLICT (user_id, product_id) DO NOTHING`,
		userID, productID,
	)
	if err := result.Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return false, repository.ErrProductNotFound
		}

		return false, domainerrors.NewDatabaseExecuteError(err, "failed to add wishlist entry")
	}

	return result.RowsAffected > 0, nil
}

// Remove deletes the entry if present; absence is not an error.
func (repo *wishlistRepository) Remove(ctx context.Context, userID uuid.UUID, productID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.WishlistEntryModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to remove wishlist entry")
	}

	return nil
}

// Contains reports whether the entry exists.
func (repo *wishlistRepository) Contains(ctx context.Context, userID uuid.UUID, productID int64) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.WishlistEntryModel{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check wishlist entry")
	}

	return count > 0, nil
}

// ListLines retrieves all entries with their products regardless of product
// activity, newest first.
func (repo *wishlistRepository) ListLines(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistLine, error) {
	var entryModels []*model.WishlistEntryModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load wishlist entries")
	}
	if len(entryModels) == 0 {
		return []*entity.WishlistLine{}, nil
	}

	ids := make([]int64, 0, len(entryModels))
	for _, entryM := range entryModels {
		ids = append(ids, entryM.ProductID)
	}

	var rows []*model.ProductRow
	if err := annotatedProducts(repo.db.WithContext(ctx)).
		Where("products.id IN ?", ids).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load wishlist products")
	}

	images, err := loadPrimaryImages(ctx, repo.db, rows)
	if err != nil {
		return nil, err
	}

	productsByID := make(map[int64]*entity.CatalogProduct, len(rows))
	for _, row := range rows {
		productsByID[row.ID] = rowToCatalogDomain(row, images[row.ID])
	}

	lines := make([]*entity.WishlistLine, 0, len(entryModels))
	for _, entryM := range entryModels {
		product, ok := productsByID[entryM.ProductID]
		if !ok {
			continue
		}

		lines = append(lines, &entity.WishlistLine{
			Entry:        *toWishlistEntryDomain(entryM),
			Product:      product.Product,
			PrimaryImage: product.PrimaryImage,
		})
	}

	return lines, nil
}

// --- Mapper Functions ---

// toWishlistEntryDomain converts a GORM WishlistEntryModel to a domain entity.
func toWishlistEntryDomain(data *model.WishlistEntryModel) *entity.WishlistEntry {
	if data == nil {
		return nil
	}

	return &entity.WishlistEntry{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		CreatedAt: data.CreatedAt,
	}
}
