package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"ecommerce-store/internal/client"
	"ecommerce-store/internal/config"
	"ecommerce-store/internal/seed"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	var db *gorm.DB
	if cfg.Database.URL != "" {
		db = client.InitMysqlClient(cfg.Database.URL, cfg.Log.Level)
	} else {
		db = client.InitSqliteClient(cfg.Database.SQLitePath, cfg.Database.BusyTimeoutMS, cfg.Log.Level)
	}

	repos := seed.NewRepositories(db)
	if err := seed.Run(context.Background(), repos); err != nil {
		log.Fatal("seed failed: ", err)
	}
	log.Println("seed completed")
}
