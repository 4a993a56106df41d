package services

import (
	"gin-storefront/dto"
	"gin-storefront/models"
	"gin-storefront/repositories"
	"log"
)

type ICartService interface {
	AddToCart(session *models.Session, productID uint)
	ViewCart(session *models.Session) (*dto.CartView, error)
}

type CartService struct {
	repository repositories.IProductRepository
}

func NewCartService(repository repositories.IProductRepository) ICartService {
	return &CartService{repository: repository}
}

// AddToCart 商品の存在確認は行わない（表示時に存在しない商品は除外される）
func (s *CartService) AddToCart(session *models.Session, productID uint) {
	if session.Cart == nil {
		session.Cart = models.Cart{}
	}
	session.Cart.Add(productID)
}

// ViewCart 追加時ではなく現在の価格で小計・合計を計算する
func (s *CartService) ViewCart(session *models.Session) (*dto.CartView, error) {
	view := &dto.CartView{Items: []dto.CartLine{}}
	if len(session.Cart) == 0 {
		return view, nil
	}

	productIDs, invalid := session.Cart.ProductIDs()
	if len(invalid) > 0 {
		log.Printf("ViewCart: ignoring invalid cart keys %v", invalid)
	}

	products, err := s.repository.FindByIds(productIDs)
	if err != nil {
		return nil, err
	}

	for _, product := range *products {
		quantity := session.Cart.Quantity(product.ID)
		subtotal := product.Price * float64(quantity)
		view.Items = append(view.Items, dto.CartLine{
			Product:  product,
			Quantity: quantity,
			Subtotal: subtotal,
		})
		view.Total += subtotal
	}
	return view, nil
}
