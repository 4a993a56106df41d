package mocks

import (
	"gin-storefront/models"

	"github.com/stretchr/testify/mock"
)

type ProductRepository struct{ mock.Mock }

func (m *ProductRepository) FindAll() (*[]models.Product, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*[]models.Product), args.Error(1)
}

func (m *ProductRepository) FindById(productID uint) (*models.Product, error) {
	args := m.Called(productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *ProductRepository) FindByIds(productIDs []uint) (*[]models.Product, error) {
	args := m.Called(productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*[]models.Product), args.Error(1)
}

func (m *ProductRepository) Create(newProduct models.Product) (*models.Product, error) {
	args := m.Called(newProduct)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *ProductRepository) Update(productID uint, updates map[string]interface{}) (*models.Product, error) {
	args := m.Called(productID, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *ProductRepository) Delete(productID uint) error { return m.Called(productID).Error(0) }

func (m *ProductRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}
