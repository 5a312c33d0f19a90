package database

import (
	"fmt"
	"log/slog" // use slog for structured logging

	"animehub/internal/config"
	"animehub/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func ConnectDB(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Verify the connection
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := migrate(db, logger); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Connected to the database successfully")
	return db, nil
}

// migrate brings the schema up to date with the model definitions.
func migrate(db *gorm.DB, logger *slog.Logger) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.AnimePost{},
		&models.AnimePostTag{},
		&models.Review{},
		&models.Favorite{},
		&models.Forum{},
		&models.ForumMembership{},
		&models.ForumPost{},
		&models.ForumReply{},
		&models.Message{},
	)
	if err != nil {
		return err
	}

	logger.Info("Database migrations applied successfully")
	return nil
}
