package repository

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"ecommerce-store/internal/model"
	"ecommerce-store/internal/validation"
)

type PaymentUpdate struct {
	Status             *model.PaymentStatus
	Amount             *decimal.Decimal
	ProviderTxnID      *string
	ClearProviderTxnID bool
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) error
	Update(ctx context.Context, id uint, changes PaymentUpdate) (*model.Payment, error)
	Delete(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint) (*model.Payment, error)
	ListByOrder(ctx context.Context, orderID uint) ([]*model.Payment, error)
}

type paymentRepoImpl struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepoImpl{
		db: db,
	}
}

func (r *paymentRepoImpl) Create(ctx context.Context, payment *model.Payment) error {
	return inTx(ctx, r.db, func(tx *gorm.DB) error {
		if payment.Status == "" {
			payment.Status = model.PaymentInitiated
		}
		if err := validation.Payment(payment); err != nil {
			return fmt.Errorf("%w: %v", ErrConstraint, err)
		}
		found, err := rowExists(tx, &model.Order{}, "id = ?", payment.OrderID)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: order %d", ErrReference, payment.OrderID)
		}
		return tx.Create(payment).Error
	})
}

func (r *paymentRepoImpl) Update(ctx context.Context, id uint, changes PaymentUpdate) (*model.Payment, error) {
	var updated model.Payment
	err := inTx(ctx, r.db, func(tx *gorm.DB) error {
		var current model.Payment
		if err := tx.First(&current, id).Error; err != nil {
			return err
		}
		if changes.Status != nil {
			current.Status = *changes.Status
		}
		if changes.Amount != nil {
			current.Amount = *changes.Amount
		}
		if changes.ClearProviderTxnID {
			current.ProviderTxnID = nil
		} else if changes.ProviderTxnID != nil {
			current.ProviderTxnID = changes.ProviderTxnID
		}
		if err := validation.Payment(&current); err != nil {
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

func (r *paymentRepoImpl) Delete(ctx context.Context, id uint) error {
	return inTx(ctx, r.db, func(tx *gorm.DB) error {
		result := tx.Delete(&model.Payment{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: payment %d", ErrNotFound, id)
		}
		return nil
	})
}

func (r *paymentRepoImpl) Get(ctx context.Context, id uint) (*model.Payment, error) {
	var payment model.Payment
	err := r.db.WithContext(ctx).First(&payment, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &payment, nil
}

func (r *paymentRepoImpl) ListByOrder(ctx context.Context, orderID uint) ([]*model.Payment, error) {
	var payments []*model.Payment
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id").
		Find(&payments).Error
	if err != nil {
		return nil, translate(err)
	}
	return payments, nil
}
