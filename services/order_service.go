package services

import (
	"fmt"
	"gin-storefront/dto"
	"gin-storefront/models"
	"gin-storefront/repositories"
)

type IOrderService interface {
	Checkout(session *models.Session) ([]models.Order, error)
	History(userID uint) (*[]dto.OrderHistoryEntry, error)
}

type OrderService struct {
	repository repositories.IOrderRepository
}

func NewOrderService(repository repositories.IOrderRepository) IOrderService {
	return &OrderService{repository: repository}
}

// Checkout カートの各行を1件の注文として登録し、成功したらカートを空にする
// 在庫の検証・減算は行わない。二重チェックアウトの排他も行わない
func (s *OrderService) Checkout(session *models.Session) ([]models.Order, error) {
	if !session.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}
	if len(session.Cart) == 0 {
		return nil, ErrEmptyCart
	}

	productIDs, invalid := session.Cart.ProductIDs()
	if len(invalid) > 0 {
		return nil, fmt.Errorf("invalid product ids in cart: %v", invalid)
	}

	orders := make([]models.Order, 0, len(productIDs))
	for _, productID := range productIDs {
		orders = append(orders, models.Order{
			UserID:    *session.UserID,
			ProductID: productID,
			Quantity:  session.Cart.Quantity(productID),
		})
	}

	created, err := s.repository.CreateBatch(orders)
	if err != nil {
		return nil, err
	}

	session.Cart = nil
	return created, nil
}

func (s *OrderService) History(userID uint) (*[]dto.OrderHistoryEntry, error) {
	return s.repository.FindByUser(userID)
}
