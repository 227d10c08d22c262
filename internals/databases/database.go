package database

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"schoolsite_backend/internals/configs"
)

// ConnectDB membuka pool ke PostgreSQL (Supabase). Pemilik lifecycle-nya main.
func ConnectDB(cfg configs.Config, log *zap.Logger) (*gorm.DB, error) {
	log.Info("🔌 Koneksi ke PostgreSQL...")

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseURL,
		PreferSimpleProtocol: true, // aman untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger:                 configs.NewGormLogger(log, cfg.DBSlowThreshold),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	TunePool(db, cfg, log)
	log.Info("✅ DB connected.")
	return db, nil
}

func TunePool(db *gorm.DB, cfg configs.Config, log *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Warn("pool tune err", zap.Error(err))
		return
	}
	// ⚖️ Sesuaikan dengan limit Supabase/PgBouncer
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Ping dipakai /health.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Migrate menjalankan AutoMigrate untuk model yang diberikan.
func Migrate(db *gorm.DB, models ...any) error {
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
