package infra

import (
	"gin-storefront/constants"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/gorm/logger"
)

const devSecretKey = "storefront-dev-secret"

type Config struct {
	Env    string
	Port   string
	DB     DatabaseConfig
	Server ServerConfig
	// 管理者ユーザーが存在しない場合の初期パスワード
	AdminPassword string
}

type DatabaseConfig struct {
	Driver        string
	Host          string
	User          string
	Password      string
	Name          string
	Port          string
	SQLitePath    string
	SessionDBPath string
	LogLevel      logger.LogLevel
}

type ServerConfig struct {
	SecretKey              string
	SessionTTL             time.Duration
	SessionCleanupInterval time.Duration
}

func LoadConfig() Config {
	cfg := Config{
		Env:           os.Getenv("ENV"),
		Port:          getenv("PORT", "8080"),
		AdminPassword: getenv("ADMIN_PASSWORD", constants.DefaultAdminPassword),
		DB: DatabaseConfig{
			Driver:        os.Getenv("DB_DRIVER"),
			Host:          os.Getenv("DB_HOST"),
			User:          os.Getenv("DB_USER"),
			Password:      os.Getenv("DB_PASSWORD"),
			Name:          os.Getenv("DB_NAME"),
			Port:          os.Getenv("DB_PORT"),
			SQLitePath:    getenv("SQLITE_PATH", "storefront.db"),
			SessionDBPath: getenv("SESSION_DB_PATH", "sessions.db"),
			LogLevel:      parseLogLevel(os.Getenv("GORM_LOG_LEVEL")),
		},
		Server: ServerConfig{
			SecretKey:              os.Getenv("SECRET_KEY"),
			SessionTTL:             getDuration("SESSION_TTL", 24*time.Hour),
			SessionCleanupInterval: getDuration("SESSION_CLEANUP_INTERVAL", 10*time.Minute),
		},
	}

	if cfg.DB.Driver == "" {
		cfg.DB.Driver = "sqlite"
		if cfg.DB.Name != "" {
			cfg.DB.Driver = "postgres"
		}
	}

	if cfg.Server.SecretKey == "" {
		if cfg.Env == "prod" {
			log.Fatal("SECRET_KEY is required in prod")
		}
		log.Println("SECRET_KEY not set; using development key")
		cfg.Server.SecretKey = devSecretKey
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("Invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
