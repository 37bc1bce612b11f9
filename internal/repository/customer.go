package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ecommerce-store/internal/model"
	"ecommerce-store/internal/validation"
)

// CustomerUpdate carries the fields a customer update may touch.
// Nil fields are left unchanged; ClearPhone drops the optional phone.
type CustomerUpdate struct {
	Email        *string
	PasswordHash *string
	Name         *string
	Phone        *string
	ClearPhone   bool
}

type CustomerFilter struct {
	Email *string
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *model.Customer) error
	Update(ctx context.Context, id uint, changes CustomerUpdate) (*model.Customer, error)
	Delete(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint) (*model.Customer, error)
	List(ctx context.Context, filter CustomerFilter) ([]*model.Customer, error)

	// The profile shares the customer's primary key, so it is managed
	// through the owning customer's repository.
	UpsertProfile(ctx context.Context, profile *model.CustomerProfile) error
	GetProfile(ctx context.Context, customerID uint) (*model.CustomerProfile, error)
	DeleteProfile(ctx context.Context, customerID uint) error
}

type customerRepoImpl struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepoImpl{
		db: db,
	}
}

func (r *customerRepoImpl) Create(ctx context.Context, customer *model.Customer) error {
	return inTx(ctx, r.db, func(tx *gorm.DB) error {
		if err := validation.Customer(customer); err != nil {
			return fmt.Errorf("%w: %v", ErrConstraint, err)
		}
		taken, err := rowExists(tx, &model.Customer{}, "email = ?", customer.Email)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%w: customer email %q", ErrUniqueness, customer.Email)
		}
		return tx.Create(customer).Error
	})
}

func (r *customerRepoImpl) Update(ctx context.Context, id uint, changes CustomerUpdate) (*model.Customer, error) {
	var updated model.Customer
	err := inTx(ctx, r.db, func(tx *gorm.DB) error {
		var current model.Customer
		if err := tx.First(&current, id).Error; err != nil {
			return err
		}
		if changes.Email != nil && *changes.Email != current.Email {
			taken, err := rowExists(tx, &model.Customer{}, "email = ? AND id <> ?", *changes.Email, id)
			if err != nil {
				return err
			}
			if taken {
				return fmt.Errorf("%w: customer email %q", ErrUniqueness, *changes.Email)
			}
			current.Email = *changes.Email
		}
		if changes.PasswordHash != nil {
			current.PasswordHash = *changes.PasswordHash
		}
		if changes.Name != nil {
			current.Name = *changes.Name
		}
		if changes.ClearPhone {
			current.Phone = nil
		} else if changes.Phone != nil {
			current.Phone = changes.Phone
		}
		if err := validation.Customer(&current); err != nil {
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

// Delete removes a customer together with its profile and addresses.
// Orders restrict the deletion; reviews keep their text but lose the
// customer attribution.
func (r *customerRepoImpl) Delete(ctx context.Context, id uint) error {
	return inTx(ctx, r.db, func(tx *gorm.DB) error {
		found, err := rowExists(tx, &model.Customer{}, "id = ?", id)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: customer %d", ErrNotFound, id)
		}

		var orders int64
		if err := tx.Model(&model.Order{}).Where("customer_id = ?", id).Count(&orders).Error; err != nil {
			return err
		}
		if orders > 0 {
			return fmt.Errorf("%w: customer %d has %d orders", ErrRestrictedDeletion, id, orders)
		}

		if err := tx.Where("customer_id = ?", id).Delete(&model.CustomerProfile{}).Error; err != nil {
			return err
		}
		if err := tx.Where("customer_id = ?", id).Delete(&model.Address{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Review{}).Where("customer_id = ?", id).
			Update("customer_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Customer{}, id).Error
	})
}

func (r *customerRepoImpl) Get(ctx context.Context, id uint) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.WithContext(ctx).First(&customer, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &customer, nil
}

func (r *customerRepoImpl) List(ctx context.Context, filter CustomerFilter) ([]*model.Customer, error) {
	query := r.db.WithContext(ctx).Model(&model.Customer{})
	if filter.Email != nil {
		query = query.Where("email = ?", *filter.Email)
	}

	var customers []*model.Customer
	if err := query.Order("id").Find(&customers).Error; err != nil {
		return nil, translate(err)
	}
	return customers, nil
}

func (r *customerRepoImpl) UpsertProfile(ctx context.Context, profile *model.CustomerProfile) error {
	return inTx(ctx, r.db, func(tx *gorm.DB) error {
		if err := validation.CustomerProfile(profile); err != nil {
			return fmt.Errorf("%w: %v", ErrConstraint, err)
		}
		found, err := rowExists(tx, &model.Customer{}, "id = ?", profile.CustomerID)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: customer %d", ErrReference, profile.CustomerID)
		}
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "customer_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"birth_date", "gender", "newsletter", "bio",
			}),
		}).Create(profile).Error
	})
}

func (r *customerRepoImpl) GetProfile(ctx context.Context, customerID uint) (*model.CustomerProfile, error) {
	var profile model.CustomerProfile
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		First(&profile).Error
	if err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

func (r *customerRepoImpl) DeleteProfile(ctx context.Context, customerID uint) error {
	return inTx(ctx, r.db, func(tx *gorm.DB) error {
		result := tx.Where("customer_id = ?", customerID).Delete(&model.CustomerProfile{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: profile for customer %d", ErrNotFound, customerID)
		}
		return nil
	})
}
