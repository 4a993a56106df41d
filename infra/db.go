package infra

import (
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupDB(cfg Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(cfg.DB.LogLevel),
		TranslateError: true,
	}

	switch cfg.DB.Driver {
	case "postgres":
		// 本番環境ではsslmode=require、それ以外はsslmode=disable
		sslmode := "disable"
		if cfg.Env == "prod" {
			sslmode = "require"
		}

		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s connect_timeout=10",
			cfg.DB.Host,
			cfg.DB.User,
			cfg.DB.Password,
			cfg.DB.Name,
			cfg.DB.Port,
			sslmode,
		)

		db, err := gorm.Open(postgres.Open(dsn), gormConfig)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		log.Printf("Setup postgres database: host=%s, user=%s, dbname=%s, port=%s",
			cfg.DB.Host, cfg.DB.User, cfg.DB.Name, cfg.DB.Port)
		return db, nil

	case "mysql":
		dsn := fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.DB.User,
			cfg.DB.Password,
			cfg.DB.Host,
			cfg.DB.Port,
			cfg.DB.Name,
		)

		db, err := gorm.Open(mysql.Open(dsn), gormConfig)
		if err != nil {
			return nil, fmt.Errorf("connect mysql: %w", err)
		}
		log.Printf("Setup mysql database: host=%s, user=%s, dbname=%s, port=%s",
			cfg.DB.Host, cfg.DB.User, cfg.DB.Name, cfg.DB.Port)
		return db, nil

	case "sqlite":
		db, err := openSQLite(cfg.DB.SQLitePath, gormConfig)
		if err != nil {
			return nil, err
		}
		log.Printf("Setup sqlite database: %s", cfg.DB.SQLitePath)
		return db, nil
	}

	return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DB.Driver)
}

// SetupSessionDB セッション用のSQLiteデータベース接続を設定
func SetupSessionDB(cfg Config) (*gorm.DB, error) {
	db, err := openSQLite(cfg.DB.SessionDBPath, &gorm.Config{
		Logger: logger.Default.LogMode(cfg.DB.LogLevel),
	})
	if err != nil {
		return nil, err
	}
	log.Printf("Setup session SQLite database: %s", cfg.DB.SessionDBPath)
	return db, nil
}

// SetupTestDB テスト用のインメモリSQLiteデータベース（接続ごとに独立）
func SetupTestDB() (*gorm.DB, error) {
	return openSQLite(":memory:", &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
}

// openSQLite 外部キー制約を有効にしてON DELETE CASCADEを機能させる
// ":memory:"は接続ごとに別のDBになるため、接続数は1に固定する
func openSQLite(path string, gormConfig *gorm.Config) (*gorm.DB, error) {
	dsn := "file:" + path + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connect sqlite %s: %w", path, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}
