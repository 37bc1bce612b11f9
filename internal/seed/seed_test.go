package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ecommerce-store/internal/model"
	"ecommerce-store/internal/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:seedtest?mode=memory&cache=shared&_busy_timeout=1000"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&model.Customer{},
		&model.CustomerProfile{},
		&model.Address{},
		&model.Supplier{},
		&model.Category{},
		&model.Product{},
		&model.ProductCategory{},
		&model.Inventory{},
		&model.Order{},
		&model.OrderItem{},
		&model.Payment{},
		&model.Review{},
	))
	return db
}

func TestRunSeedsAndIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repos := NewRepositories(db)

	require.NoError(t, Run(ctx, repos))
	require.NoError(t, Run(ctx, repos), "second run must be a no-op")

	customers, err := repos.Customers.List(ctx, repository.CustomerFilter{})
	require.NoError(t, err)
	require.Len(t, customers, 2)

	// Hashes are real bcrypt digests, not plaintext.
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(customers[0].PasswordHash), []byte("alice-secret")))

	suppliers, err := repos.Suppliers.List(ctx)
	require.NoError(t, err)
	assert.Len(t, suppliers, 2)

	categories, err := repos.Categories.List(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 2)

	products, err := repos.Products.List(ctx, repository.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, products, 2)

	for _, p := range products {
		inv, err := repos.Products.GetInventory(ctx, p.ID)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, inv.QuantityInStock, 0)

		linked, err := repos.Products.ListCategories(ctx, p.ID)
		require.NoError(t, err)
		assert.Len(t, linked, 1)
	}

	orders, err := repos.Orders.List(ctx, repository.OrderFilter{})
	require.NoError(t, err)
	require.Len(t, orders, 2)

	for _, o := range orders {
		items, err := repos.Orders.ListItems(ctx, o.ID)
		require.NoError(t, err)
		assert.Len(t, items, 1)

		payments, err := repos.Payments.ListByOrder(ctx, o.ID)
		require.NoError(t, err)
		assert.Len(t, payments, 1)
	}
}
