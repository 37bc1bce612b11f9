package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ecommerce-store/internal/model"
	"ecommerce-store/internal/validation"
)

// SetInventory creates or replaces the inventory row for a product.
func (r *productRepoImpl) SetInventory(ctx context.Context, inventory *model.Inventory) error {
	return inTx(ctx, r.db, func(tx *gorm.DB) error {
		if err := validation.Inventory(inventory); err != nil {
			return fmt.Errorf("%w: %v", ErrConstraint, err)
		}
		found, err := rowExists(tx, &model.Product{}, "id = ?", inventory.ProductID)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: product %d", ErrReference, inventory.ProductID)
		}
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"quantity_in_stock", "reserved_quantity",
			}),
		}).Create(inventory).Error
	})
}

func (r *productRepoImpl) GetInventory(ctx context.Context, productID uint) (*model.Inventory, error) {
	var inventory model.Inventory
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		First(&inventory).Error
	if err != nil {
		return nil, translate(err)
	}
	return &inventory, nil
}

// AdjustInventory applies a relative stock change. The quantity may not
// drop below zero.
func (r *productRepoImpl) AdjustInventory(ctx context.Context, productID uint, delta int) (*model.Inventory, error) {
	var adjusted model.Inventory
	err := inTx(ctx, r.db, func(tx *gorm.DB) error {
		var current model.Inventory
		if err := tx.Where("product_id = ?", productID).First(&current).Error; err != nil {
			return err
		}
		next := current.QuantityInStock + delta
		if next < 0 {
			return fmt.Errorf("%w: quantity_in_stock: %d%+d drops below 0", ErrConstraint,
				current.QuantityInStock, delta)
		}
		current.QuantityInStock = next
		if err := tx.Save(&current).Error; err != nil {
			return err
		}
		adjusted = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &adjusted, nil
}
