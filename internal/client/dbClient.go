package client

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ecommerce-store/internal/model"
)

func gormConfig(logLevel string) *gorm.Config {
	level := logger.Warn
	switch logLevel {
	case "silent":
		level = logger.Silent
	case "error":
		level = logger.Error
	case "info", "debug":
		level = logger.Info
	}
	return &gorm.Config{
		// Surface duplicate-key and FK failures as gorm sentinel errors
		// regardless of driver.
		TranslateError: true,
		Logger:         logger.Default.LogMode(level),
	}
}

func InitSqliteClient(path string, busyTimeoutMS int, logLevel string) *gorm.DB {
	dsn := fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=%d", path, busyTimeoutMS)
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig(logLevel))
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	migrate(db)
	return db
}

func InitMysqlClient(databaseURL string, logLevel string) *gorm.DB {
	db, err := gorm.Open(mysql.Open(databaseURL), gormConfig(logLevel))
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal(err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	migrate(db)
	return db
}

// migrate creates the schema in dependency order.
func migrate(db *gorm.DB) {
	if err := db.AutoMigrate(
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
	); err != nil {
		log.Fatal(err)
	}
}
