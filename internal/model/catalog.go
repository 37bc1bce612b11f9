package model

import "github.com/shopspring/decimal"

type Supplier struct {
	ID           uint    `gorm:"primaryKey"`
	Name         string  `gorm:"size:100;not null"`
	ContactEmail *string `gorm:"size:255"`
	ContactPhone *string `gorm:"size:32"`
}

type Category struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"size:100;uniqueIndex;not null"`
	Description *string `gorm:"type:text"`
}

type Product struct {
	ID          uint            `gorm:"primaryKey"`
	SKU         string          `gorm:"size:64;uniqueIndex;not null"`
	Name        string          `gorm:"size:200;not null"`
	Description *string         `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	SupplierID  *uint           `gorm:"index"`
}

// ProductCategory links products and categories; the composite primary
// key allows at most one link per pair.
type ProductCategory struct {
	ProductID  uint `gorm:"primaryKey"`
	CategoryID uint `gorm:"primaryKey"`
}

// Inventory shares its primary key with the owning product (1:1).
type Inventory struct {
	ProductID        uint `gorm:"primaryKey"`
	QuantityInStock  int  `gorm:"not null;default:0"`
	ReservedQuantity int  `gorm:"not null;default:0"`
}
