package repositories

import (
	"gin-storefront/dto"
	"gin-storefront/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IOrderRepository interface {
	CreateBatch(orders []models.Order) ([]models.Order, error)
	FindByUser(userID uint) (*[]dto.OrderHistoryEntry, error)
	Count() (int64, error)
}

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) IOrderRepository {
	return &OrderRepository{db: db}
}

// CreateBatch 全行を1トランザクションで登録する。1行でも失敗すれば全てロールバック
func (r *OrderRepository) CreateBatch(orders []models.Order) ([]models.Order, error) {
	created := make([]models.Order, 0, len(orders))
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, order := range orders {
			if err := tx.Omit(clause.Associations).Create(&order).Error; err != nil {
				return err
			}
			created = append(created, order)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *OrderRepository) FindByUser(userID uint) (*[]dto.OrderHistoryEntry, error) {
	entries := []dto.OrderHistoryEntry{}
	result := r.db.Table("orders").
		Select("orders.id, orders.user_id, orders.product_id, orders.quantity, orders.date, products.name AS product_name").
		Joins("JOIN products ON products.id = orders.product_id").
		Where("orders.user_id = ?", userID).
		Order("orders.date DESC").
		Order("orders.id DESC").
		Scan(&entries)
	if result.Error != nil {
		return nil, result.Error
	}
	return &entries, nil
}

func (r *OrderRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Order{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
