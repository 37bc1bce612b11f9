package repository

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"ecommerce-store/internal/model"
	"ecommerce-store/internal/validation"
)

// ProductUpdate carries the fields a product update may touch.
// ClearSupplier detaches the product from its supplier and
// ClearDescription drops the optional description.
type ProductUpdate struct {
	SKU              *string
	Name             *string
	Description      *string
	Price            *decimal.Decimal
	SupplierID       *uint
	ClearSupplier    bool
	ClearDescription bool
}

type ProductFilter struct {
	SKU        *string
	SupplierID *uint
	CategoryID *uint
}

type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	Update(ctx context.Context, id uint, changes ProductUpdate) (*model.Product, error)
	Delete(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint) (*model.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]*model.Product, error)

	AddCategory(ctx context.Context, productID, categoryID uint) error
	RemoveCategory(ctx context.Context, productID, categoryID uint) error
	ListCategories(ctx context.Context, productID uint) ([]*model.Category, error)

	// Inventory shares the product's primary key and is managed through
	// the owning product's repository.
	SetInventory(ctx context.Context, inventory *model.Inventory) error
	GetInventory(ctx context.Context, productID uint) (*model.Inventory, error)
	AdjustInventory(ctx context.Context, productID uint, delta int) (*model.Inventory, error)
}

type productRepoImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepoImpl{
		db: db,
	}
}

func (r *productRepoImpl) Create(ctx context.Context, product *model.Product) error {
	return inTx(ctx, r.db, func(tx *gorm.DB) error {
		if err := validation.Product(product); err != nil {
			return fmt.Errorf("%w: %v", ErrConstraint, err)
		}
		taken, err := rowExists(tx, &model.Product{}, "sku = ?", product.SKU)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%w: product sku %q", ErrUniqueness, product.SKU)
		}
		if product.SupplierID != nil {
			found, err := rowExists(tx, &model.Supplier{}, "id = ?", *product.SupplierID)
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("%w: supplier %d", ErrReference, *product.SupplierID)
			}
		}
		return tx.Create(product).Error
	})
}

func (r *productRepoImpl) Update(ctx context.Context, id uint, changes ProductUpdate) (*model.Product, error) {
	var updated model.Product
	err := inTx(ctx, r.db, func(tx *gorm.DB) error {
		var current model.Product
		if err := tx.First(&current, id).Error; err != nil {
			return err
		}
		if changes.SKU != nil && *changes.SKU != current.SKU {
			taken, err := rowExists(tx, &model.Product{}, "sku = ? AND id <> ?", *changes.SKU, id)
			if err != nil {
				return err
			}
			if taken {
				return fmt.Errorf("%w: product sku %q", ErrUniqueness, *changes.SKU)
			}
			current.SKU = *changes.SKU
		}
		if changes.Name != nil {
			current.Name = *changes.Name
		}
		if changes.ClearDescription {
			current.Description = nil
		} else if changes.Description != nil {
			current.Description = changes.Description
		}
		if changes.Price != nil {
			current.Price = *changes.Price
		}
		if changes.ClearSupplier {
			current.SupplierID = nil
		} else if changes.SupplierID != nil {
			found, err := rowExists(tx, &model.Supplier{}, "id = ?", *changes.SupplierID)
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("%w: supplier %d", ErrReference, *changes.SupplierID)
			}
			current.SupplierID = changes.SupplierID
		}
		if err := validation.Product(&current); err != nil {
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

// Delete removes a product together with its inventory, category links
// and reviews. Order items referencing the product restrict the delete.
func (r *productRepoImpl) Delete(ctx context.Context, id uint) error {
	return inTx(ctx, r.db, func(tx *gorm.DB) error {
		found, err := rowExists(tx, &model.Product{}, "id = ?", id)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: product %d", ErrNotFound, id)
		}

		var items int64
		if err := tx.Model(&model.OrderItem{}).Where("product_id = ?", id).Count(&items).Error; err != nil {
			return err
		}
		if items > 0 {
			return fmt.Errorf("%w: product %d referenced by %d order items", ErrRestrictedDeletion, id, items)
		}

		if err := tx.Where("product_id = ?", id).Delete(&model.Inventory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&model.ProductCategory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&model.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Product{}, id).Error
	})
}

func (r *productRepoImpl) Get(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).First(&product, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func (r *productRepoImpl) List(ctx context.Context, filter ProductFilter) ([]*model.Product, error) {
	query := r.db.WithContext(ctx).Model(&model.Product{})
	if filter.SKU != nil {
		query = query.Where("sku = ?", *filter.SKU)
	}
	if filter.SupplierID != nil {
		query = query.Where("supplier_id = ?", *filter.SupplierID)
	}
	if filter.CategoryID != nil {
		query = query.
			Joins("JOIN product_categories ON product_categories.product_id = products.id").
			Where("product_categories.category_id = ?", *filter.CategoryID)
	}

	var products []*model.Product
	if err := query.Order("products.id").Find(&products).Error; err != nil {
		return nil, translate(err)
	}
	return products, nil
}

func (r *productRepoImpl) AddCategory(ctx context.Context, productID, categoryID uint) error {
	return inTx(ctx, r.db, func(tx *gorm.DB) error {
		found, err := rowExists(tx, &model.Product{}, "id = ?", productID)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: product %d", ErrReference, productID)
		}
		found, err = rowExists(tx, &model.Category{}, "id = ?", categoryID)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: category %d", ErrReference, categoryID)
		}
		linked, err := rowExists(tx, &model.ProductCategory{},
			"product_id = ? AND category_id = ?", productID, categoryID)
		if err != nil {
			return err
		}
		if linked {
			return fmt.Errorf("%w: product %d already in category %d", ErrUniqueness, productID, categoryID)
		}
		return tx.Create(&model.ProductCategory{ProductID: productID, CategoryID: categoryID}).Error
	})
}

func (r *productRepoImpl) RemoveCategory(ctx context.Context, productID, categoryID uint) error {
	return inTx(ctx, r.db, func(tx *gorm.DB) error {
		result := tx.Where("product_id = ? AND category_id = ?", productID, categoryID).
			Delete(&model.ProductCategory{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: product %d not in category %d", ErrNotFound, productID, categoryID)
		}
		return nil
	})
}

func (r *productRepoImpl) ListCategories(ctx context.Context, productID uint) ([]*model.Category, error) {
	var categories []*model.Category
	err := r.db.WithContext(ctx).Model(&model.Category{}).
		Joins("JOIN product_categories ON product_categories.category_id = categories.id").
		Where("product_categories.product_id = ?", productID).
		Order("categories.id").
		Find(&categories).Error
	if err != nil {
		return nil, translate(err)
	}
	return categories, nil
}
