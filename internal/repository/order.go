package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"ecommerce-store/internal/model"
	"ecommerce-store/internal/validation"
)

// OrderUpdate carries the fields an order update may touch. The
// Clear flags detach the corresponding address reference.
type OrderUpdate struct {
	Status               *model.OrderStatus
	TotalAmount          *decimal.Decimal
	ShippingAddressID    *uint
	BillingAddressID     *uint
	ClearShippingAddress bool
	ClearBillingAddress  bool
}

type OrderFilter struct {
	CustomerID *uint
	Status     *model.OrderStatus
}

// OrderItemUpdate carries the fields an order line update may touch.
type OrderItemUpdate struct {
	Quantity  *int
	UnitPrice *decimal.Decimal
	Discount  *decimal.Decimal
}

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	Update(ctx context.Context, id uint, changes OrderUpdate) (*model.Order, error)
	Delete(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint) (*model.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]*model.Order, error)

	AddItem(ctx context.Context, item *model.OrderItem) error
	UpdateItem(ctx context.Context, orderID, productID uint, changes OrderItemUpdate) (*model.OrderItem, error)
	RemoveItem(ctx context.Context, orderID, productID uint) error
	ListItems(ctx context.Context, orderID uint) ([]*model.OrderItem, error)
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{
		db: db,
	}
}

// checkOrderAddress resolves an address reference and confirms it
// belongs to the order's customer.
func checkOrderAddress(tx *gorm.DB, customerID, addressID uint) error {
	var address model.Address
	err := tx.First(&address, addressID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: address %d", ErrReference, addressID)
		}
		return err
	}
	if address.CustomerID != customerID {
		return fmt.Errorf("%w: address %d belongs to customer %d, not %d",
			ErrReference, addressID, address.CustomerID, customerID)
	}
	return nil
}

func (r *orderRepoImpl) Create(ctx context.Context, order *model.Order) error {
	return inTx(ctx, r.db, func(tx *gorm.DB) error {
		if order.Status == "" {
			order.Status = model.OrderPending
		}
		if err := validation.Order(order); err != nil {
			return fmt.Errorf("%w: %v", ErrConstraint, err)
		}
		found, err := rowExists(tx, &model.Customer{}, "id = ?", order.CustomerID)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: customer %d", ErrReference, order.CustomerID)
		}
		if order.ShippingAddressID != nil {
			if err := checkOrderAddress(tx, order.CustomerID, *order.ShippingAddressID); err != nil {
				return err
			}
		}
		if order.BillingAddressID != nil {
			if err := checkOrderAddress(tx, order.CustomerID, *order.BillingAddressID); err != nil {
				return err
			}
		}
		return tx.Create(order).Error
	})
}

func (r *orderRepoImpl) Update(ctx context.Context, id uint, changes OrderUpdate) (*model.Order, error) {
	var updated model.Order
	err := inTx(ctx, r.db, func(tx *gorm.DB) error {
		var current model.Order
		if err := tx.First(&current, id).Error; err != nil {
			return err
		}
		if changes.Status != nil {
			current.Status = *changes.Status
		}
		if changes.TotalAmount != nil {
			current.TotalAmount = *changes.TotalAmount
		}
		if changes.ClearShippingAddress {
			current.ShippingAddressID = nil
		} else if changes.ShippingAddressID != nil {
			if err := checkOrderAddress(tx, current.CustomerID, *changes.ShippingAddressID); err != nil {
				return err
			}
			current.ShippingAddressID = changes.ShippingAddressID
		}
		if changes.ClearBillingAddress {
			current.BillingAddressID = nil
		} else if changes.BillingAddressID != nil {
			if err := checkOrderAddress(tx, current.CustomerID, *changes.BillingAddressID); err != nil {
				return err
			}
			current.BillingAddressID = changes.BillingAddressID
		}
		if err := validation.Order(&current); err != nil {
			return fmt.Errorf("%w: %v", ErrConstraint, err)
		}
		if err := tx.Save(&current).Error; err != nil {
			return err
		}
		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes an order together with its line items and payments.
func (r *orderRepoImpl) Delete(ctx context.Context, id uint) error {
	return inTx(ctx, r.db, func(tx *gorm.DB) error {
		found, err := rowExists(tx, &model.Order{}, "id = ?", id)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: order %d", ErrNotFound, id)
		}
		if err := tx.Where("order_id = ?", id).Delete(&model.OrderItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", id).Delete(&model.Payment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Order{}, id).Error
	})
}

func (r *orderRepoImpl) Get(ctx context.Context, id uint) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).First(&order, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

func (r *orderRepoImpl) List(ctx context.Context, filter OrderFilter) ([]*model.Order, error) {
	query := r.db.WithContext(ctx).Model(&model.Order{})
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var orders []*model.Order
	if err := query.Order("id").Find(&orders).Error; err != nil {
		return nil, translate(err)
	}
	return orders, nil
}

func (r *orderRepoImpl) AddItem(ctx context.Context, item *model.OrderItem) error {
	return inTx(ctx, r.db, func(tx *gorm.DB) error {
		if err := validation.OrderItem(item); err != nil {
			return fmt.Errorf("%w: %v", ErrConstraint, err)
		}
		found, err := rowExists(tx, &model.Order{}, "id = ?", item.OrderID)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: order %d", ErrReference, item.OrderID)
		}
		found, err = rowExists(tx, &model.Product{}, "id = ?", item.ProductID)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: product %d", ErrReference, item.ProductID)
		}
		present, err := rowExists(tx, &model.OrderItem{},
			"order_id = ? AND product_id = ?", item.OrderID, item.ProductID)
		if err != nil {
			return err
		}
		if present {
			return fmt.Errorf("%w: order %d already has a line for product %d",
				ErrUniqueness, item.OrderID, item.ProductID)
		}
		return tx.Create(item).Error
	})
}

func (r *orderRepoImpl) UpdateItem(ctx context.Context, orderID, productID uint, changes OrderItemUpdate) (*model.OrderItem, error) {
	var updated model.OrderItem
	err := inTx(ctx, r.db, func(tx *gorm.DB) error {
		var current model.OrderItem
		if err := tx.Where("order_id = ? AND product_id = ?", orderID, productID).
			First(&current).Error; err != nil {
			return err
		}
		if changes.Quantity != nil {
			current.Quantity = *changes.Quantity
		}
		if changes.UnitPrice != nil {
			current.UnitPrice = *changes.UnitPrice
		}
		if changes.Discount != nil {
			current.Discount = *changes.Discount
		}
		if err := validation.OrderItem(&current); err != nil {
			return fmt.Errorf("%w: %v", ErrConstraint, err)
		}
		if err := tx.Save(&current).Error; err != nil {
			return err
		}
		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *orderRepoImpl) RemoveItem(ctx context.Context, orderID, productID uint) error {
	return inTx(ctx, r.db, func(tx *gorm.DB) error {
		result := tx.Where("order_id = ? AND product_id = ?", orderID, productID).
			Delete(&model.OrderItem{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: order %d has no line for product %d", ErrNotFound, orderID, productID)
		}
		return nil
	})
}

func (r *orderRepoImpl) ListItems(ctx context.Context, orderID uint) ([]*model.OrderItem, error) {
	var items []*model.OrderItem
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("product_id").
		Find(&items).Error
	if err != nil {
		return nil, translate(err)
	}
	return items, nil
}
