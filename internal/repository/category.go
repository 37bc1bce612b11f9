package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"ecommerce-store/internal/model"
	"ecommerce-store/internal/validation"
)

type CategoryUpdate struct {
	Name             *string
	Description      *string
	ClearDescription bool
}

type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	Update(ctx context.Context, id uint, changes CategoryUpdate) (*model.Category, error)
	Delete(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint) (*model.Category, error)
	List(ctx context.Context) ([]*model.Category, error)
}

type categoryRepoImpl struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepoImpl{
		db: db,
	}
}

func (r *categoryRepoImpl) Create(ctx context.Context, category *model.Category) error {
	return inTx(ctx, r.db, func(tx *gorm.DB) error {
		if err := validation.Category(category); err != nil {
			return fmt.Errorf("%w: %v", ErrConstraint, err)
		}
		taken, err := rowExists(tx, &model.Category{}, "name = ?", category.Name)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%w: category name %q", ErrUniqueness, category.Name)
		}
		return tx.Create(category).Error
	})
}

func (r *categoryRepoImpl) Update(ctx context.Context, id uint, changes CategoryUpdate) (*model.Category, error) {
	var updated model.Category
	err := inTx(ctx, r.db, func(tx *gorm.DB) error {
		var current model.Category
		if err := tx.First(&current, id).Error; err != nil {
			return err
		}
		if changes.Name != nil && *changes.Name != current.Name {
			taken, err := rowExists(tx, &model.Category{}, "name = ? AND id <> ?", *changes.Name, id)
			if err != nil {
				return err
			}
			if taken {
				return fmt.Errorf("%w: category name %q", ErrUniqueness, *changes.Name)
			}
			current.Name = *changes.Name
		}
		if changes.ClearDescription {
			current.Description = nil
		} else if changes.Description != nil {
			current.Description = changes.Description
		}
		if err := validation.Category(&current); err != nil {
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

// Delete removes a category and its product links.
func (r *categoryRepoImpl) Delete(ctx context.Context, id uint) error {
	return inTx(ctx, r.db, func(tx *gorm.DB) error {
		found, err := rowExists(tx, &model.Category{}, "id = ?", id)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: category %d", ErrNotFound, id)
		}
		if err := tx.Where("category_id = ?", id).Delete(&model.ProductCategory{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Category{}, id).Error
	})
}

func (r *categoryRepoImpl) Get(ctx context.Context, id uint) (*model.Category, error) {
	var category model.Category
	err := r.db.WithContext(ctx).First(&category, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

func (r *categoryRepoImpl) List(ctx context.Context) ([]*model.Category, error) {
	var categories []*model.Category
	err := r.db.WithContext(ctx).Order("id").Find(&categories).Error
	if err != nil {
		return nil, translate(err)
	}
	return categories, nil
}
