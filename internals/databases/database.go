package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"requirements_backend/internals/configs"
	"requirements_backend/internals/features/requirements/model"
)

// ConnectDB opens the shared Postgres pool. The handle is passed down to the
// controllers explicitly; nothing reads it as a package global.
func ConnectDB() *gorm.DB {
	log.Println("[INFO] connecting to PostgreSQL...")

	sslmode := configs.GetEnv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=requirements_backend",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // works with PgBouncer transaction pooling
	}), &gorm.Config{
		Logger:         configs.NewGormLogger(),
		TranslateError: true, // unique violations surface as gorm.ErrDuplicatedKey
	})
	if err != nil {
		log.Fatalf("[ERROR] failed to connect DB: %v", err)
	}
	log.Println("[INFO] DB connected")
	return db
}

func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("[WARN] pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate creates the three tables when absent. Idempotent, runs at every
// boot; this is not a migration system and provides no rollback.
func Migrate(db *gorm.DB) {
	if err := db.AutoMigrate(
		&model.RequirementTypeModel{},
		&model.RequirementModel{},
		&model.CommentModel{},
	); err != nil {
		log.Fatalf("[ERROR] failed to migrate: %v", err)
	}
	log.Println("[INFO] schema ready")
}
