package mocks

import (
	"gin-storefront/dto"

	"github.com/stretchr/testify/mock"
)

type UserRepository struct{ mock.Mock }

func (m *UserRepository) FindAllWithStats() (*[]dto.UserStats, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*[]dto.UserStats), args.Error(1)
}

func (m *UserRepository) Delete(userID uint) error { return m.Called(userID).Error(0) }
