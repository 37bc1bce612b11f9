package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the closed set of order states.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
	OrderRefunded   OrderStatus = "refunded"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled, OrderRefunded:
		return true
	}
	return false
}

// PaymentMethod is the closed set of payment methods.
type PaymentMethod string

const (
	PaymentCard           PaymentMethod = "card"
	PaymentPaypal         PaymentMethod = "paypal"
	PaymentBankTransfer   PaymentMethod = "bank_transfer"
	PaymentCashOnDelivery PaymentMethod = "cash_on_delivery"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCard, PaymentPaypal, PaymentBankTransfer, PaymentCashOnDelivery:
		return true
	}
	return false
}

// PaymentStatus is the closed set of payment states.
type PaymentStatus string

const (
	PaymentInitiated PaymentStatus = "initiated"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentInitiated, PaymentCompleted, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

type Order struct {
	ID                uint            `gorm:"primaryKey"`
	CustomerID        uint            `gorm:"index;not null"`
	Status            OrderStatus     `gorm:"size:32;index;not null"`
	TotalAmount       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ShippingAddressID *uint           `gorm:"index"`
	BillingAddressID  *uint           `gorm:"index"`
	CreatedAt         time.Time
}

// OrderItem carries its own attributes on the order/product join; the
// composite primary key allows at most one line per product per order.
type OrderItem struct {
	OrderID   uint            `gorm:"primaryKey"`
	ProductID uint            `gorm:"primaryKey"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Discount  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
}

type Payment struct {
	ID            uint            `gorm:"primaryKey"`
	OrderID       uint            `gorm:"index;not null"`
	Method        PaymentMethod   `gorm:"size:32;not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status        PaymentStatus   `gorm:"size:32;index;not null"`
	ProviderTxnID *string         `gorm:"size:128"`
	CreatedAt     time.Time
}
