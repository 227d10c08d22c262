package configs

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config dibangun sekali di main lalu dianggap read-only.
type Config struct {
	AppEnv string
	Port   string

	DatabaseURL     string
	DBMaxOpenConns  int
	DBMaxIdleConns  int
	DBAutoMigrate   bool
	DBSlowThreshold time.Duration

	NewsSnapshotPath string

	CORSAllowOrigins string
	RateLimitMax     int
	RequestTimeout   time.Duration

	OSS OSSConfig
}

// OSSConfig: media host (Alibaba OSS).
type OSSConfig struct {
	Endpoint        string
	AccessKeyID     string
	AccessKeySecret string
	Bucket          string
	PublicBaseURL   string
	Prefix          string
}

// Enabled: uploader hanya dipasang kalau kredensial lengkap.
func (o OSSConfig) Enabled() bool {
	return o.Endpoint != "" && o.AccessKeyID != "" && o.AccessKeySecret != "" && o.Bucket != ""
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") != "" {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		return
	}
	log.Println("✅ .env file berhasil dimuat!")
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || strings.TrimSpace(value) == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return strings.TrimSpace(value)
}

func getEnvInt(key string, def int) int {
	if v := GetEnv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := GetEnv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := GetEnv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}

// Load membaca seluruh konfigurasi dari ENV. Panggil LoadEnv dulu kalau mau .env ikut terbaca.
func Load() Config {
	return Config{
		AppEnv: GetEnv("APP_ENV", "production"),
		Port:   GetEnv("PORT", "3000"),

		DatabaseURL:     buildDSN(),
		DBMaxOpenConns:  getEnvInt("DB_MAX_OPEN_CONNS", 20),
		DBMaxIdleConns:  getEnvInt("DB_MAX_IDLE_CONNS", 10),
		DBAutoMigrate:   getEnvBool("DB_AUTO_MIGRATE", false),
		DBSlowThreshold: getEnvDuration("DB_SLOW_THRESHOLD", 200*time.Millisecond),

		NewsSnapshotPath: GetEnv("NEWS_SNAPSHOT_PATH", "data/news.json"),

		CORSAllowOrigins: GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:5173"),
		RateLimitMax:     getEnvInt("RATE_LIMIT_MAX", 100),
		RequestTimeout:   getEnvDuration("HTTP_REQUEST_TIMEOUT", 5*time.Second),

		OSS: OSSConfig{
			Endpoint:        GetEnv("OSS_ENDPOINT"),
			AccessKeyID:     GetEnv("OSS_ACCESS_KEY_ID"),
			AccessKeySecret: GetEnv("OSS_ACCESS_KEY_SECRET"),
			Bucket:          GetEnv("OSS_BUCKET_NAME"),
			PublicBaseURL:   GetEnv("OSS_PUBLIC_BASE_URL"),
			Prefix:          GetEnv("OSS_PREFIX", "school-site"),
		},
	}
}

// DATABASE_URL menang; kalau kosong dirakit dari DB_* (format Supabase).
func buildDSN() string {
	if url := GetEnv("DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=school_site&options=-c statement_timeout=3000",
		GetEnv("DB_USER"),
		GetEnv("DB_PASSWORD"),
		GetEnv("DB_HOST", "localhost"),
		GetEnv("DB_PORT", "5432"),
		GetEnv("DB_NAME"),
		GetEnv("DB_SSLMODE", "require"),
	)
}

func (c Config) IsDevelopment() bool {
	return strings.EqualFold(c.AppEnv, "development") || strings.EqualFold(c.AppEnv, "dev")
}
