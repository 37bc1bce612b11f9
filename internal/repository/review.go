package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"ecommerce-store/internal/model"
	"ecommerce-store/internal/validation"
)

type ReviewUpdate struct {
	Rating     *int
	Title      *string
	Body       *string
	ClearTitle bool
	ClearBody  bool
}

type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	Update(ctx context.Context, id uint, changes ReviewUpdate) (*model.Review, error)
	Delete(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint) (*model.Review, error)
	ListByProduct(ctx context.Context, productID uint) ([]*model.Review, error)
}

type reviewRepoImpl struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepoImpl{
		db: db,
	}
}

func (r *reviewRepoImpl) Create(ctx context.Context, review *model.Review) error {
	return inTx(ctx, r.db, func(tx *gorm.DB) error {
		if err := validation.Review(review); err != nil {
			return fmt.Errorf("%w: %v", ErrConstraint, err)
		}
		found, err := rowExists(tx, &model.Product{}, "id = ?", review.ProductID)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: product %d", ErrReference, review.ProductID)
		}
		if review.CustomerID != nil {
			found, err := rowExists(tx, &model.Customer{}, "id = ?", *review.CustomerID)
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("%w: customer %d", ErrReference, *review.CustomerID)
			}
		}
		return tx.Create(review).Error
	})
}

func (r *reviewRepoImpl) Update(ctx context.Context, id uint, changes ReviewUpdate) (*model.Review, error) {
	var updated model.Review
	err := inTx(ctx, r.db, func(tx *gorm.DB) error {
		var current model.Review
		if err := tx.First(&current, id).Error; err != nil {
			return err
		}
		if changes.Rating != nil {
			current.Rating = *changes.Rating
		}
		if changes.ClearTitle {
			current.Title = nil
		} else if changes.Title != nil {
			current.Title = changes.Title
		}
		if changes.ClearBody {
			current.Body = nil
		} else if changes.Body != nil {
			current.Body = changes.Body
		}
		if err := validation.Review(&current); err != nil {
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

func (r *reviewRepoImpl) Delete(ctx context.Context, id uint) error {
	return inTx(ctx, r.db, func(tx *gorm.DB) error {
		result := tx.Delete(&model.Review{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: review %d", ErrNotFound, id)
		}
		return nil
	})
}

func (r *reviewRepoImpl) Get(ctx context.Context, id uint) (*model.Review, error) {
	var review model.Review
	err := r.db.WithContext(ctx).First(&review, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &review, nil
}

func (r *reviewRepoImpl) ListByProduct(ctx context.Context, productID uint) ([]*model.Review, error) {
	var reviews []*model.Review
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("id").
		Find(&reviews).Error
	if err != nil {
		return nil, translate(err)
	}
	return reviews, nil
}
