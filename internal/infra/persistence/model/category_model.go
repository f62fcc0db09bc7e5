package model

// CategoryModel is the GORM-specific struct for the 'categories' table.
type CategoryModel struct {
	ID     int64  `gorm:"primaryKey;autoIncrement"`
	Name   string `gorm:"size:200;not null"`
	Slug   string `gorm:"size:200;not null;uniqueIndex"`
	Active bool   `gorm:"not null;default:true"`
	Rank   int    `gorm:"column:rank;not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// BrandModel is the GORM-specific struct for the 'brands' table.
type BrandModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"size:200;not null"`
	Slug string `gorm:"size:200;not null;uniqueIndex"`
}

// TableName explicitly sets the table name for GORM.
func (BrandModel) TableName() string {
	return "brands"
}

// CategoryCountRow is the scan target for the category facet query.
type CategoryCountRow struct {
	CategoryModel `gorm:"embedded"`
	ProductCount  int64
}
