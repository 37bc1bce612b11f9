package model

import "time"

// Review belongs to a product. CustomerID is cleared (not the review
// deleted) when the attributed customer is removed.
type Review struct {
	ID         uint    `gorm:"primaryKey"`
	ProductID  uint    `gorm:"index;not null"`
	CustomerID *uint   `gorm:"index"`
	Rating     int     `gorm:"not null"`
	Title      *string `gorm:"size:200"`
	Body       *string `gorm:"type:text"`
	CreatedAt  time.Time
}
