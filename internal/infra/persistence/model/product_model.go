// Package model contains the GORM-specific structs mapping domain entities
// to database tables.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID               int64            `gorm:"primaryKey;autoIncrement"`
	Name             string           `gorm:"size:255;not null"`
	Slug             string           `gorm:"size:255;not null;uniqueIndex"`
	Description      string           `gorm:"type:text"`
	ShortDescription string           `gorm:"size:255"`
	Price            decimal.Decimal  `gorm:"type:decimal(10,2);not null;default:0.00"`
	DiscountPrice    *decimal.Decimal `gorm:"type:decimal(10,2)"`
	Stock            int              `gorm:"not null;default:0;check:stock >= 0"`
	IsNew            bool             `gorm:"not null;default:false"`
	Featured         bool             `gorm:"not null;default:false"`
	Active           bool             `gorm:"not null;default:true;index"`
	Sales            int              `gorm:"not null;default:0"`
	Views            int              `gorm:"not null;default:0"`
	CreatedAt        time.Time
	CategoryID       *int64 `gorm:"index"`
	BrandID          *int64 `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductImageModel is the GORM-specific struct for the 'product_images'
// table. Rows cascade with their product.
type ProductImageModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	ProductID int64  `gorm:"not null;index;constraint:OnDelete:CASCADE"`
	Image     string `gorm:"size:500;not null"`
}

// TableName explicitly sets the table name for GORM.
func (ProductImageModel) TableName() string {
	return "product_images"
}

// ProductAttributeModel is the GORM-specific struct for the
// 'product_attributes' table.
type ProductAttributeModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	ProductID int64  `gorm:"not null;index;constraint:OnDelete:CASCADE"`
	Name      string `gorm:"size:100;not null"`
	Value     string `gorm:"size:255;not null"`
}

// TableName explicitly sets the table name for GORM.
func (ProductAttributeModel) TableName() string {
	return "product_attributes"
}

// ProductRow is the scan target for the catalog page query: the product
// columns plus the SQL-computed annotations (COALESCE effective price and
// review aggregates) and the joined display names.
type ProductRow struct {
	ProductModel   `gorm:"embedded"`
	EffectivePrice decimal.Decimal
	AvgRating      *float64
	ReviewCount    int64
	CategoryName   *string
	CategorySlug   *string
	BrandName      *string
	BrandSlug      *string
}
