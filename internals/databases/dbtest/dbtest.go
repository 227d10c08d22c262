// Package dbtest: Record Store in-memory (SQLite) untuk test repository & service.
package dbtest

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open membuka database in-memory terisolasi per test dan menjalankan AutoMigrate.
func Open(t *testing.T, models ...any) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// satu koneksi: shared cache + write paralel di SQLite gampang "database is locked"
	sqlDB.SetMaxOpenConns(1)

	if len(models) > 0 {
		require.NoError(t, db.AutoMigrate(models...))
	}

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

// Closed: handle yang koneksinya sudah ditutup, untuk mensimulasikan store down.
func Closed(t *testing.T, models ...any) *gorm.DB {
	t.Helper()
	db := Open(t, models...)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
	return db
}
