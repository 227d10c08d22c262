// Command admin: tugas operator yang tidak lewat HTTP (migrate, seed, export snapshot berita).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"schoolsite_backend/internals/configs"
	database "schoolsite_backend/internals/databases"
)

var (
	cfg    configs.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "admin",
	Short: "Operator tasks for the school site content API",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configs.LoadEnv()
		cfg = configs.Load()
		l, err := configs.NewLogger(cfg)
		if err != nil {
			return fmt.Errorf("logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	SilenceUsage: true,
}

// openDB: koneksi + fungsi tutup, dipakai semua subcommand yang butuh DB.
func openDB() (*gorm.DB, func(), error) {
	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return db, func() {
		if err := database.Close(db); err != nil {
			logger.Warn("close db", zap.Error(err))
		}
	}, nil
}

func main() {
	rootCmd.AddCommand(migrateCmd, seedCmd, exportNewsCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
