package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"go.uber.org/zap"

	"schoolsite_backend/internals/configs"
	database "schoolsite_backend/internals/databases"
	"schoolsite_backend/internals/features/home"
	mediaController "schoolsite_backend/internals/features/home/media/controller"
	helper "schoolsite_backend/internals/helpers"
	helperOSS "schoolsite_backend/internals/helpers/oss"
	middlewares "schoolsite_backend/internals/middlewares"
	routes "schoolsite_backend/internals/route"
)

func main() {
	configs.LoadEnv()
	cfg := configs.Load()

	log, err := configs.NewLogger(cfg)
	if err != nil {
		stdlog.Fatalf("logger: %v", err)
	}
	defer func() { _ = log.Sync() }()

	// 🔌 DB connect + pool
	db, err := database.ConnectDB(cfg, log)
	if err != nil {
		log.Fatal("database", zap.Error(err))
	}
	if cfg.DBAutoMigrate {
		if err := database.Migrate(db, home.Models()...); err != nil {
			log.Fatal("migrate", zap.Error(err))
		}
		log.Info("✅ AutoMigrate selesai")
	}

	// 📤 media host opsional
	var uploader mediaController.Uploader
	if cfg.OSS.Enabled() {
		svc, err := helperOSS.NewOSSService(cfg.OSS, log)
		if err != nil {
			log.Warn("media upload disabled", zap.Error(err))
		} else {
			uploader = svc
		}
	} else {
		log.Info("media upload disabled: OSS_* not set")
	}

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		ErrorHandler:            helper.ErrorHandler(log),
		BodyLimit:               int(helperOSS.MaxUploadSize) + 1024*1024,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	// ⚙️ middleware dasar + performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching
	middlewares.SetupMiddlewares(app, cfg, log)

	// ✅ Routes
	routes.SetupRoutes(app, db, cfg, uploader, log)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	// Start server non-blocking
	go func() {
		log.Info("✅ Listening", zap.String("port", cfg.Port))
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if err := database.Close(db); err != nil {
		log.Warn("close db", zap.Error(err))
	}
}
