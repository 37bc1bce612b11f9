package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ecommerce-store/internal/model"
)

// newTestDB opens an in-memory SQLite database unique to the test. The
// shared-cache DSN keeps the database alive across pooled connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=1000", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
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

func strPtr(s string) *string { return &s }

func uintPtr(v uint) *uint { return &v }

func intPtr(v int) *int { return &v }
