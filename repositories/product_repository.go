package repositories

import (
	"gin-storefront/models"

	"gorm.io/gorm"
)

type IProductRepository interface {
	FindAll() (*[]models.Product, error)
	FindById(productID uint) (*models.Product, error)
	FindByIds(productIDs []uint) (*[]models.Product, error)
	Create(newProduct models.Product) (*models.Product, error)
	Update(productID uint, updates map[string]interface{}) (*models.Product, error)
	Delete(productID uint) error
	Count() (int64, error)
}

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) IProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(newProduct models.Product) (*models.Product, error) {
	result := r.db.Create(&newProduct)
	if result.Error != nil {
		return nil, result.Error
	}
	return &newProduct, nil
}

// Delete 参照している注文は外部キーのON DELETE CASCADEで削除される
func (r *ProductRepository) Delete(productID uint) error {
	result := r.db.Delete(&models.Product{}, "id = ?", productID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ProductRepository) FindAll() (*[]models.Product, error) {
	var products []models.Product
	result := r.db.Order("id").Find(&products)
	if result.Error != nil {
		return nil, result.Error
	}
	return &products, nil
}

func (r *ProductRepository) FindById(productID uint) (*models.Product, error) {
	var product models.Product
	result := r.db.First(&product, "id = ?", productID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &product, nil
}

func (r *ProductRepository) FindByIds(productIDs []uint) (*[]models.Product, error) {
	products := []models.Product{}
	if len(productIDs) == 0 {
		return &products, nil
	}
	result := r.db.Where("id IN ?", productIDs).Order("id").Find(&products)
	if result.Error != nil {
		return nil, result.Error
	}
	return &products, nil
}

func (r *ProductRepository) Update(productID uint, updates map[string]interface{}) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", productID).Error; err != nil {
		return nil, err
	}

	result := r.db.Model(&product).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}

	var updatedProduct models.Product
	if err := r.db.First(&updatedProduct, "id = ?", productID).Error; err != nil {
		return nil, err
	}

	return &updatedProduct, nil
}

func (r *ProductRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
