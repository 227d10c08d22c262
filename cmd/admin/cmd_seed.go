package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"schoolsite_backend/internals/seeds"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load content from a JSON document into empty collections",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, closeDB, err := openDB()
		if err != nil {
			return err
		}
		defer closeDB()

		report, err := seeds.SeedFromJSON(cmd.Context(), db, seedFile, logger)
		if err != nil {
			return err
		}
		fields := make([]zap.Field, 0, len(report))
		for name, n := range report {
			fields = append(fields, zap.Int(name, n))
		}
		logger.Info("🌱 seed selesai", fields...)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "data/seed.json", "path to the seed document")
}
