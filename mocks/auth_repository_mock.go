package mocks

import (
	"gin-storefront/models"

	"github.com/stretchr/testify/mock"
)

type AuthRepository struct{ mock.Mock }

func (m *AuthRepository) CreateUser(user models.User) error { return m.Called(user).Error(0) }

func (m *AuthRepository) FindUser(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *AuthRepository) FindUserByID(userID uint) (*models.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *AuthRepository) CountUsers() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}
