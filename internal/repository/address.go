package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"ecommerce-store/internal/model"
	"ecommerce-store/internal/validation"
)

// AddressUpdate carries the fields an address update may touch. The
// owning customer is fixed at creation. The Clear flags drop the
// optional line2/state values.
type AddressUpdate struct {
	Type       *model.AddressType
	Line1      *string
	Line2      *string
	City       *string
	State      *string
	PostalCode *string
	Country    *string
	ClearLine2 bool
	ClearState bool
}

type AddressRepository interface {
	Create(ctx context.Context, address *model.Address) error
	Update(ctx context.Context, id uint, changes AddressUpdate) (*model.Address, error)
	Delete(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint) (*model.Address, error)
	ListByCustomer(ctx context.Context, customerID uint) ([]*model.Address, error)
}

type addressRepoImpl struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) AddressRepository {
	return &addressRepoImpl{
		db: db,
	}
}

func (r *addressRepoImpl) Create(ctx context.Context, address *model.Address) error {
	return inTx(ctx, r.db, func(tx *gorm.DB) error {
		if err := validation.Address(address); err != nil {
			return fmt.Errorf("%w: %v", ErrConstraint, err)
		}
		found, err := rowExists(tx, &model.Customer{}, "id = ?", address.CustomerID)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: customer %d", ErrReference, address.CustomerID)
		}
		return tx.Create(address).Error
	})
}

func (r *addressRepoImpl) Update(ctx context.Context, id uint, changes AddressUpdate) (*model.Address, error) {
	var updated model.Address
	err := inTx(ctx, r.db, func(tx *gorm.DB) error {
		var current model.Address
		if err := tx.First(&current, id).Error; err != nil {
			return err
		}
		if changes.Type != nil {
			current.Type = *changes.Type
		}
		if changes.Line1 != nil {
			current.Line1 = *changes.Line1
		}
		if changes.ClearLine2 {
			current.Line2 = nil
		} else if changes.Line2 != nil {
			current.Line2 = changes.Line2
		}
		if changes.City != nil {
			current.City = *changes.City
		}
		if changes.ClearState {
			current.State = nil
		} else if changes.State != nil {
			current.State = changes.State
		}
		if changes.PostalCode != nil {
			current.PostalCode = *changes.PostalCode
		}
		if changes.Country != nil {
			current.Country = *changes.Country
		}
		if err := validation.Address(&current); err != nil {
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

// Delete removes an address. Orders that referenced it as shipping or
// billing address keep existing with the reference cleared.
func (r *addressRepoImpl) Delete(ctx context.Context, id uint) error {
	return inTx(ctx, r.db, func(tx *gorm.DB) error {
		found, err := rowExists(tx, &model.Address{}, "id = ?", id)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: address %d", ErrNotFound, id)
		}

		if err := tx.Model(&model.Order{}).Where("shipping_address_id = ?", id).
			Update("shipping_address_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Order{}).Where("billing_address_id = ?", id).
			Update("billing_address_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Address{}, id).Error
	})
}

func (r *addressRepoImpl) Get(ctx context.Context, id uint) (*model.Address, error) {
	var address model.Address
	err := r.db.WithContext(ctx).First(&address, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &address, nil
}

func (r *addressRepoImpl) ListByCustomer(ctx context.Context, customerID uint) ([]*model.Address, error) {
	var addresses []*model.Address
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("id").
		Find(&addresses).Error
	if err != nil {
		return nil, translate(err)
	}
	return addresses, nil
}
