package postgres

import (
	"tienda/internal/errors"
	"tienda/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// schemaStatements holds the DDL GORM tags cannot express. The two partial
// unique indexes are the ON CONFLICT targets of the cart upserts; the CHECK
// constraint enforces that exactly one identity key is set per row. The
// foreign keys back the not-found mapping in the cart and wishlist writes.
var schemaStatements = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_cart_items_user_product
ON cart_items (user_id, product_id) WHERE user_id IS NOT NULL`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_cart_items_session_product
ON cart_items (session_key, product_id) WHERE session_key IS NOT NULL`,

	`DO $$ BEGIN
IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_cart_items_owner_xor') THEN
	ALTER TABLE cart_items
		ADD CONSTRAINT chk_cart_items_owner_xor CHECK (num_nonnulls(user_id, session_key) = 1);
END IF;
END $$`,

	`DO $$ BEGIN
IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'fk_cart_items_product') THEN
	ALTER TABLE cart_items
		ADD CONSTRAINT fk_cart_items_product FOREIGN KEY (product_id) REFERENCES products (id) ON DELETE CASCADE;
END IF;
END $$`,

	`DO $$ BEGIN
IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'fk_wishlist_entries_product') THEN
	ALTER TABLE wishlist_entries
		ADD CONSTRAINT fk_wishlist_entries_product FOREIGN KEY (product_id) REFERENCES products (id) ON DELETE CASCADE;
END IF;
END $$`,

	`DO $$ BEGIN
IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'fk_product_images_product') THEN
	ALTER TABLE product_images
		ADD CONSTRAINT fk_product_images_product FOREIGN KEY (product_id) REFERENCES products (id) ON DELETE CASCADE;
END IF;
END $$`,

	`DO $$ BEGIN
IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'fk_product_attributes_product') THEN
	ALTER TABLE product_attributes
		ADD CONSTRAINT fk_product_attributes_product FOREIGN KEY (product_id) REFERENCES products (id) ON DELETE CASCADE;
END IF;
END $$`,

	`DO $$ BEGIN
IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'fk_reviews_product') THEN
	ALTER TABLE reviews
		ADD CONSTRAINT fk_reviews_product FOREIGN KEY (product_id) REFERENCES products (id) ON DELETE CASCADE;
END IF;
END $$`,
}

// migrateSchema creates or updates the store schema, then applies the
// statements above. Both halves are idempotent.
func migrateSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.CategoryModel{},
		&model.BrandModel{},
		&model.ProductModel{},
		&model.ProductImageModel{},
		&model.ProductAttributeModel{},
		&model.ReviewModel{},
		&model.CartItemModel{},
		&model.WishlistEntryModel{},
	); err != nil {
		return errors.Wrap(err, "failed to auto-migrate schema")
	}

	for _, stmt := range schemaStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return errors.Wrap(err, "failed to apply schema statement")
		}
	}

	return nil
}
