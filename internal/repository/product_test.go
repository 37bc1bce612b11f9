package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecommerce-store/internal/model"
)

func TestProductRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	suppliers := NewSupplierRepository(db)
	products := NewProductRepository(db)

	supplier := &model.Supplier{Name: "Acme"}
	require.NoError(t, suppliers.Create(ctx, supplier))

	product := &model.Product{
		SKU:         "SKU-1",
		Name:        "Widget",
		Description: strPtr("A widget"),
		Price:       decimal.RequireFromString("19.99"),
		SupplierID:  &supplier.ID,
	}
	require.NoError(t, products.Create(ctx, product))
	require.NotZero(t, product.ID)

	got, err := products.Get(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "SKU-1", got.SKU)
	assert.Equal(t, "Widget", got.Name)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("19.99")))
	require.NotNil(t, got.SupplierID)
	assert.Equal(t, supplier.ID, *got.SupplierID)
}

func TestProductInvalidRows(t *testing.T) {
	ctx := context.Background()
	products := NewProductRepository(newTestDB(t))

	err := products.Create(ctx, &model.Product{SKU: "S", Name: "N", Price: decimal.RequireFromString("-0.01")})
	assert.ErrorIs(t, err, ErrConstraint)

	err = products.Create(ctx, &model.Product{SKU: "", Name: "N", Price: decimal.Zero})
	assert.ErrorIs(t, err, ErrConstraint)

	err = products.Create(ctx, &model.Product{SKU: "S", Name: "N", Price: decimal.Zero, SupplierID: uintPtr(123)})
	assert.ErrorIs(t, err, ErrReference)
}

func TestProductUpdate(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	suppliers := NewSupplierRepository(db)
	products := NewProductRepository(db)

	supplier := &model.Supplier{Name: "Acme"}
	require.NoError(t, suppliers.Create(ctx, supplier))

	product := &model.Product{
		SKU:         "SKU-1",
		Name:        "Widget",
		Description: strPtr("A widget"),
		Price:       decimal.Zero,
		SupplierID:  &supplier.ID,
	}
	require.NoError(t, products.Create(ctx, product))
	require.NoError(t, products.Create(ctx, &model.Product{SKU: "SKU-2", Name: "Other", Price: decimal.Zero}))

	updated, err := products.Update(ctx, product.ID, ProductUpdate{Name: strPtr("Gadget")})
	require.NoError(t, err)
	assert.Equal(t, "Gadget", updated.Name)
	require.NotNil(t, updated.Description)

	updated, err = products.Update(ctx, product.ID, ProductUpdate{ClearDescription: true, ClearSupplier: true})
	require.NoError(t, err)
	assert.Nil(t, updated.Description)
	assert.Nil(t, updated.SupplierID)

	_, err = products.Update(ctx, product.ID, ProductUpdate{SKU: strPtr("SKU-2")})
	assert.ErrorIs(t, err, ErrUniqueness)
}

func TestProductSKUUniqueness(t *testing.T) {
	ctx := context.Background()
	products := NewProductRepository(newTestDB(t))

	require.NoError(t, products.Create(ctx, &model.Product{SKU: "DUP", Name: "A", Price: decimal.Zero}))
	err := products.Create(ctx, &model.Product{SKU: "DUP", Name: "B", Price: decimal.Zero})
	require.ErrorIs(t, err, ErrUniqueness)
}

func TestProductDeleteRestrictThenCascade(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	customers := NewCustomerRepository(db)
	categories := NewCategoryRepository(db)
	products := NewProductRepository(db)
	orders := NewOrderRepository(db)
	reviews := NewReviewRepository(db)

	customer := &model.Customer{Email: "a@x.com", PasswordHash: "h", Name: "A"}
	require.NoError(t, customers.Create(ctx, customer))
	category := &model.Category{Name: "Gadgets"}
	require.NoError(t, categories.Create(ctx, category))
	product := &model.Product{SKU: "P-1", Name: "Widget", Price: decimal.RequireFromString("5.99")}
	require.NoError(t, products.Create(ctx, product))

	require.NoError(t, products.AddCategory(ctx, product.ID, category.ID))
	require.NoError(t, products.SetInventory(ctx, &model.Inventory{ProductID: product.ID, QuantityInStock: 3}))
	review := &model.Review{ProductID: product.ID, Rating: 5}
	require.NoError(t, reviews.Create(ctx, review))

	order := &model.Order{CustomerID: customer.ID, TotalAmount: decimal.RequireFromString("5.99")}
	require.NoError(t, orders.Create(ctx, order))
	item := &model.OrderItem{OrderID: order.ID, ProductID: product.ID, Quantity: 1, UnitPrice: decimal.RequireFromString("5.99")}
	require.NoError(t, orders.AddItem(ctx, item))

	err := products.Delete(ctx, product.ID)
	require.ErrorIs(t, err, ErrRestrictedDeletion)

	// Dropping the referencing line lifts the restriction and the delete
	// takes inventory, links and reviews with it.
	require.NoError(t, orders.RemoveItem(ctx, order.ID, product.ID))
	require.NoError(t, products.Delete(ctx, product.ID))

	_, err = products.Get(ctx, product.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = products.GetInventory(ctx, product.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = reviews.Get(ctx, review.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// The category itself is untouched, only the link is gone.
	_, err = categories.Get(ctx, category.ID)
	require.NoError(t, err)
	linked, err := products.List(ctx, ProductFilter{CategoryID: &category.ID})
	require.NoError(t, err)
	assert.Empty(t, linked)
}

func TestSupplierDeleteDetachesProducts(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	suppliers := NewSupplierRepository(db)
	products := NewProductRepository(db)

	supplier := &model.Supplier{Name: "Acme"}
	require.NoError(t, suppliers.Create(ctx, supplier))
	product := &model.Product{SKU: "P-1", Name: "Widget", Price: decimal.Zero, SupplierID: &supplier.ID}
	require.NoError(t, products.Create(ctx, product))

	require.NoError(t, suppliers.Delete(ctx, supplier.ID))

	got, err := products.Get(ctx, product.ID)
	require.NoError(t, err)
	assert.Nil(t, got.SupplierID)
}

func TestCategoryNameUniqueness(t *testing.T) {
	ctx := context.Background()
	categories := NewCategoryRepository(newTestDB(t))

	require.NoError(t, categories.Create(ctx, &model.Category{Name: "Books"}))
	err := categories.Create(ctx, &model.Category{Name: "Books"})
	require.ErrorIs(t, err, ErrUniqueness)
}

func TestCategoryDeleteRemovesLinks(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	categories := NewCategoryRepository(db)
	products := NewProductRepository(db)

	category := &model.Category{Name: "Books"}
	require.NoError(t, categories.Create(ctx, category))
	product := &model.Product{SKU: "B-1", Name: "Novel", Price: decimal.Zero}
	require.NoError(t, products.Create(ctx, product))
	require.NoError(t, products.AddCategory(ctx, product.ID, category.ID))

	require.NoError(t, categories.Delete(ctx, category.ID))

	// The product survives; its link does not.
	_, err := products.Get(ctx, product.ID)
	require.NoError(t, err)
	linked, err := products.ListCategories(ctx, product.ID)
	require.NoError(t, err)
	assert.Empty(t, linked)
}

func TestProductCategoryLinks(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	categories := NewCategoryRepository(db)
	products := NewProductRepository(db)

	category := &model.Category{Name: "Books"}
	require.NoError(t, categories.Create(ctx, category))
	product := &model.Product{SKU: "B-1", Name: "Novel", Price: decimal.Zero}
	require.NoError(t, products.Create(ctx, product))

	err := products.AddCategory(ctx, product.ID, 999)
	assert.ErrorIs(t, err, ErrReference)
	err = products.AddCategory(ctx, 999, category.ID)
	assert.ErrorIs(t, err, ErrReference)

	require.NoError(t, products.AddCategory(ctx, product.ID, category.ID))
	err = products.AddCategory(ctx, product.ID, category.ID)
	assert.ErrorIs(t, err, ErrUniqueness)

	listed, err := products.ListCategories(ctx, product.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Books", listed[0].Name)

	require.NoError(t, products.RemoveCategory(ctx, product.ID, category.ID))
	err = products.RemoveCategory(ctx, product.ID, category.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInventory(t *testing.T) {
	ctx := context.Background()
	products := NewProductRepository(newTestDB(t))

	err := products.SetInventory(ctx, &model.Inventory{ProductID: 7})
	require.ErrorIs(t, err, ErrReference)

	product := &model.Product{SKU: "P-1", Name: "Widget", Price: decimal.Zero}
	require.NoError(t, products.Create(ctx, product))

	err = products.SetInventory(ctx, &model.Inventory{ProductID: product.ID, QuantityInStock: -1})
	require.ErrorIs(t, err, ErrConstraint)

	require.NoError(t, products.SetInventory(ctx, &model.Inventory{ProductID: product.ID, QuantityInStock: 5, ReservedQuantity: 1}))

	adjusted, err := products.AdjustInventory(ctx, product.ID, -2)
	require.NoError(t, err)
	assert.Equal(t, 3, adjusted.QuantityInStock)

	_, err = products.AdjustInventory(ctx, product.ID, -10)
	require.ErrorIs(t, err, ErrConstraint)

	inv, err := products.GetInventory(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, inv.QuantityInStock)
	assert.Equal(t, 1, inv.ReservedQuantity)
}
