package services

import (
	"gin-storefront/dto"
	"gin-storefront/repositories"
)

type IUserService interface {
	ListWithStats() (*[]dto.UserStats, error)
	Delete(userID uint) error
}

type UserService struct {
	repository repositories.IUserRepository
}

func NewUserService(repository repositories.IUserRepository) IUserService {
	return &UserService{repository: repository}
}

func (s *UserService) ListWithStats() (*[]dto.UserStats, error) {
	return s.repository.FindAllWithStats()
}

// Delete 自分自身の削除も妨げない
func (s *UserService) Delete(userID uint) error {
	return translateNotFound(s.repository.Delete(userID), ErrUserNotFound)
}
