package services

import (
	"gin-storefront/dto"
	"gin-storefront/models"
	"gin-storefront/repositories"
)

type IProductService interface {
	FindAll() (*[]models.Product, error)
	FindById(productID uint) (*models.Product, error)
	Create(input dto.ProductInput) (*models.Product, error)
	Update(productID uint, input dto.ProductInput) (*models.Product, error)
	Delete(productID uint) error
}

type ProductService struct {
	repository repositories.IProductRepository
}

func NewProductService(repository repositories.IProductRepository) IProductService {
	return &ProductService{repository: repository}
}

func (s *ProductService) FindAll() (*[]models.Product, error) {
	return s.repository.FindAll()
}

func (s *ProductService) FindById(productID uint) (*models.Product, error) {
	product, err := s.repository.FindById(productID)
	if err != nil {
		return nil, translateNotFound(err, ErrProductNotFound)
	}
	return product, nil
}

func (s *ProductService) Create(input dto.ProductInput) (*models.Product, error) {
	newProduct := models.Product{
		Name:  input.Name,
		Price: *input.Price,
		Stock: *input.Stock,
	}
	return s.repository.Create(newProduct)
}

// Update 名前・価格・在庫を全て上書きする
func (s *ProductService) Update(productID uint, input dto.ProductInput) (*models.Product, error) {
	updates := map[string]interface{}{
		"name":  input.Name,
		"price": *input.Price,
		"stock": *input.Stock,
	}
	product, err := s.repository.Update(productID, updates)
	if err != nil {
		return nil, translateNotFound(err, ErrProductNotFound)
	}
	return product, nil
}

func (s *ProductService) Delete(productID uint) error {
	return translateNotFound(s.repository.Delete(productID), ErrProductNotFound)
}
