package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	database "schoolsite_backend/internals/databases"
	"schoolsite_backend/internals/features/home"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the content tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, closeDB, err := openDB()
		if err != nil {
			return err
		}
		defer closeDB()

		if err := database.Migrate(db, home.Models()...); err != nil {
			return err
		}
		logger.Info("✅ migrate selesai", zap.Int("tables", len(home.Models())))
		return nil
	},
}
