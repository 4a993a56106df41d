package main

import (
	"gin-storefront/infra"
	"gin-storefront/services"
	"log"
)

func main() {
	infra.Initialize()
	cfg := infra.LoadConfig()

	db, err := infra.SetupDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := infra.InitSchema(db, services.BcryptHasher{}, cfg.AdminPassword); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// セッション用のSQLiteデータベースのマイグレーション
	sessionDB, err := infra.SetupSessionDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to session database: %v", err)
	}
	if err := infra.InitSessionSchema(sessionDB); err != nil {
		log.Fatalf("Failed to migrate session database: %v", err)
	}
	log.Println("Migration complete")
}
