package services

import (
	"gin-storefront/dto"
	"gin-storefront/repositories"
)

type IDashboardService interface {
	Counts() (*dto.DashboardCounts, error)
}

type DashboardService struct {
	productRepository repositories.IProductRepository
	orderRepository   repositories.IOrderRepository
	authRepository    repositories.IAuthRepository
}

func NewDashboardService(
	productRepository repositories.IProductRepository,
	orderRepository repositories.IOrderRepository,
	authRepository repositories.IAuthRepository,
) IDashboardService {
	return &DashboardService{
		productRepository: productRepository,
		orderRepository:   orderRepository,
		authRepository:    authRepository,
	}
}

func (s *DashboardService) Counts() (*dto.DashboardCounts, error) {
	productCount, err := s.productRepository.Count()
	if err != nil {
		return nil, err
	}
	orderCount, err := s.orderRepository.Count()
	if err != nil {
		return nil, err
	}
	userCount, err := s.authRepository.CountUsers()
	if err != nil {
		return nil, err
	}
	return &dto.DashboardCounts{
		ProductCount: productCount,
		OrderCount:   orderCount,
		UserCount:    userCount,
	}, nil
}
