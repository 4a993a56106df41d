package mocks

import (
	"gin-storefront/dto"
	"gin-storefront/models"

	"github.com/stretchr/testify/mock"
)

type OrderRepository struct{ mock.Mock }

func (m *OrderRepository) CreateBatch(orders []models.Order) ([]models.Order, error) {
	args := m.Called(orders)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *OrderRepository) FindByUser(userID uint) (*[]dto.OrderHistoryEntry, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*[]dto.OrderHistoryEntry), args.Error(1)
}

func (m *OrderRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}
