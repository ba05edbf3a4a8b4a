package main

import (
	"os"

	"motoservice-be/internal/model"
	"motoservice-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		color.Yellow("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn, false, database.DefaultPoolConfig())
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	color.Cyan("Starting GORM migration...")

	// 3. Pre-Migration: Extensions
	color.Yellow("Step 1: Setting up extensions...")
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		color.Yellow("Warn: Failed to create pgcrypto extension: %v. Continuing...", err)
	}

	// 4. AutoMigrate All Models
	models := model.All()
	color.Yellow("Step 2: Running AutoMigrate for %d tables...", len(models))
	if err := db.AutoMigrate(models...); err != nil {
		color.Red("Error: AutoMigrate failed: %v", err)
		os.Exit(1)
	}

	// 5. Post-Migration: Constraints GORM tags cannot express
	color.Yellow("Step 3: Adding check constraints...")
	postMigrationSQL := []string{
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_bookings_status') THEN
		   ALTER TABLE bookings ADD CONSTRAINT chk_bookings_status
		   CHECK (status IN ('pending', 'confirmed', 'assigned', 'started', 'completed', 'cancelled', 'no-show'));
		 END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_cancellation_tokens_non_negative') THEN
		   ALTER TABLE cancellation_tokens ADD CONSTRAINT chk_cancellation_tokens_non_negative
		   CHECK (tokens_available >= 0 AND tokens_used >= 0);
		 END IF; END $$;`,
	}
	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			color.Yellow("Warn: Failed to execute post-migration SQL: %v. Continuing...", err)
		}
	}

	color.Green("Migration completed successfully")
}
