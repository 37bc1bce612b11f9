package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"ecommerce-store/internal/model"
	"ecommerce-store/internal/validation"
)

type SupplierUpdate struct {
	Name              *string
	ContactEmail      *string
	ContactPhone      *string
	ClearContactEmail bool
	ClearContactPhone bool
}

type SupplierRepository interface {
	Create(ctx context.Context, supplier *model.Supplier) error
	Update(ctx context.Context, id uint, changes SupplierUpdate) (*model.Supplier, error)
	Delete(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint) (*model.Supplier, error)
	List(ctx context.Context) ([]*model.Supplier, error)
}

type supplierRepoImpl struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) SupplierRepository {
	return &supplierRepoImpl{
		db: db,
	}
}

func (r *supplierRepoImpl) Create(ctx context.Context, supplier *model.Supplier) error {
	return inTx(ctx, r.db, func(tx *gorm.DB) error {
		if err := validation.Supplier(supplier); err != nil {
			return fmt.Errorf("%w: %v", ErrConstraint, err)
		}
		return tx.Create(supplier).Error
	})
}

func (r *supplierRepoImpl) Update(ctx context.Context, id uint, changes SupplierUpdate) (*model.Supplier, error) {
	var updated model.Supplier
	err := inTx(ctx, r.db, func(tx *gorm.DB) error {
		var current model.Supplier
		if err := tx.First(&current, id).Error; err != nil {
			return err
		}
		if changes.Name != nil {
			current.Name = *changes.Name
		}
		if changes.ClearContactEmail {
			current.ContactEmail = nil
		} else if changes.ContactEmail != nil {
			current.ContactEmail = changes.ContactEmail
		}
		if changes.ClearContactPhone {
			current.ContactPhone = nil
		} else if changes.ContactPhone != nil {
			current.ContactPhone = changes.ContactPhone
		}
		if err := validation.Supplier(&current); err != nil {
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

// Delete removes a supplier. Its products survive with the supplier
// reference cleared.
func (r *supplierRepoImpl) Delete(ctx context.Context, id uint) error {
	return inTx(ctx, r.db, func(tx *gorm.DB) error {
		found, err := rowExists(tx, &model.Supplier{}, "id = ?", id)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: supplier %d", ErrNotFound, id)
		}
		if err := tx.Model(&model.Product{}).Where("supplier_id = ?", id).
			Update("supplier_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Supplier{}, id).Error
	})
}

func (r *supplierRepoImpl) Get(ctx context.Context, id uint) (*model.Supplier, error) {
	var supplier model.Supplier
	err := r.db.WithContext(ctx).First(&supplier, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &supplier, nil
}

func (r *supplierRepoImpl) List(ctx context.Context) ([]*model.Supplier, error) {
	var suppliers []*model.Supplier
	err := r.db.WithContext(ctx).Order("id").Find(&suppliers).Error
	if err != nil {
		return nil, translate(err)
	}
	return suppliers, nil
}
