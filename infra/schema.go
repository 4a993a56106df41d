package infra

import (
	"errors"
	"fmt"
	"gin-storefront/constants"
	"gin-storefront/models"
	"log"

	"gorm.io/gorm"
)

type PasswordHasher interface {
	Hash(password []byte) ([]byte, error)
}

var sampleProducts = []models.Product{
	{Name: "Laptop", Price: 999.99, Stock: 10},
	{Name: "Smartphone", Price: 499.99, Stock: 15},
	{Name: "Headphones", Price: 99.99, Stock: 20},
	{Name: "Tablet", Price: 299.99, Stock: 8},
	{Name: "Smartwatch", Price: 199.99, Stock: 12},
}

// InitSchema テーブルを作成し、管理者ユーザーとサンプル商品を投入する（冪等）
func InitSchema(db *gorm.DB, hasher PasswordHasher, adminPassword string) error {
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	var admin models.User
	err := db.Where("username = ?", constants.AdminUsername).First(&admin).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		hashed, err := hasher.Hash([]byte(adminPassword))
		if err != nil {
			return fmt.Errorf("hash admin password: %w", err)
		}
		admin = models.User{Username: constants.AdminUsername, Password: string(hashed), IsAdmin: true}
		if err := db.Create(&admin).Error; err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
		log.Printf("Seeded admin user %q", constants.AdminUsername)
	case err != nil:
		return fmt.Errorf("lookup admin: %w", err)
	}

	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if count == 0 {
		products := make([]models.Product, len(sampleProducts))
		copy(products, sampleProducts)
		if err := db.CreateInBatches(&products, len(products)).Error; err != nil {
			return fmt.Errorf("seed products: %w", err)
		}
		log.Printf("Seeded %d sample products", len(products))
	}
	return nil
}

func InitSessionSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Session{}); err != nil {
		return fmt.Errorf("migrate sessions: %w", err)
	}
	return nil
}
