package main

import (
	"log"
	"os"

	"ai-study-notebook-be/internal/model"
	"ai-study-notebook-be/pkg/database"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	// 2. Connect to Database
	var db *gorm.DB
	var err error
	if os.Getenv("USE_LOCAL_DB") == "true" {
		path := os.Getenv("LOCAL_DB_PATH")
		if path == "" {
			path = "local.db"
		}
		db, err = database.NewLocalGormDB(path)
	} else {
		dsn := os.Getenv("DB_CONNECTION_STRING")
		if dsn == "" {
			log.Fatal("Error: DB_CONNECTION_STRING is not set")
		}
		db, err = database.NewGormDBFromDSN(dsn)
	}
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	// 3. Pre-Migration: extensions gorm cannot manage (postgres only)
	if db.Dialector.Name() == "postgres" {
		if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
			log.Printf("Warn: Failed to create pgcrypto extension: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models
	models := []interface{}{
		&model.User{},
		&model.Notebook{},
		&model.Note{},
		&model.File{},
		&model.Flashcard{},
		&model.Quiz{},
		&model.StudyPlan{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	log.Println("Migration completed successfully.")
}
