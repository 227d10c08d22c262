package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	newsService "schoolsite_backend/internals/features/home/news/service"
)

var exportOut string

// Snapshot inilah yang dibaca FallbackReader saat DB tidak bisa dipakai.
var exportNewsCmd = &cobra.Command{
	Use:   "export-news-snapshot",
	Short: "Write every news record to the fallback snapshot file",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := exportOut
		if out == "" {
			out = cfg.NewsSnapshotPath
		}

		db, closeDB, err := openDB()
		if err != nil {
			return err
		}
		defer closeDB()

		items, err := newsService.NewNewsService(db).ListAll(cmd.Context(), newsService.NewsQuery{})
		if err != nil {
			return err
		}
		if err := newsService.WriteSnapshotFile(out, items); err != nil {
			return err
		}
		logger.Info("📰 snapshot berita ditulis", zap.String("path", out), zap.Int("count", len(items)))
		return nil
	},
}

func init() {
	exportNewsCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output path (default NEWS_SNAPSHOT_PATH)")
}
