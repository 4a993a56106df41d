package services_test

import (
	"testing"

	"gin-storefront/mocks"
	"gin-storefront/models"
	"gin-storefront/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddToCart(t *testing.T) {
	service := services.NewCartService(new(mocks.ProductRepository))
	session := &models.Session{ID: "sid"}

	for i := 0; i < 4; i++ {
		service.AddToCart(session, 3)
	}
	service.AddToCart(session, 5)

	assert.Equal(t, models.Cart{"3": 4, "5": 1}, session.Cart)
}

func TestViewCart(t *testing.T) {
	t.Run("empty cart does not query products", func(t *testing.T) {
		repo := new(mocks.ProductRepository)

		view, err := services.NewCartService(repo).ViewCart(&models.Session{ID: "sid"})

		require.NoError(t, err)
		assert.Empty(t, view.Items)
		assert.Zero(t, view.Total)
		repo.AssertNotCalled(t, "FindByIds", mock.Anything)
	})

	t.Run("uses live prices and skips deleted products", func(t *testing.T) {
		repo := new(mocks.ProductRepository)
		// 商品2は削除済み
		repo.On("FindByIds", []uint{1, 2, 3}).Return(&[]models.Product{
			{ID: 1, Name: "Laptop", Price: 999.99},
			{ID: 3, Name: "Headphones", Price: 50},
		}, nil)
		session := &models.Session{ID: "sid", Cart: models.Cart{"1": 2, "2": 5, "3": 3}}

		view, err := services.NewCartService(repo).ViewCart(session)

		require.NoError(t, err)
		require.Len(t, view.Items, 2)
		assert.Equal(t, uint(1), view.Items[0].Product.ID)
		assert.Equal(t, 2, view.Items[0].Quantity)
		assert.InDelta(t, 1999.98, view.Items[0].Subtotal, 1e-9)
		assert.InDelta(t, 150.0, view.Items[1].Subtotal, 1e-9)
		assert.InDelta(t, 2149.98, view.Total, 1e-9)
	})

	t.Run("alice cart", func(t *testing.T) {
		repo := new(mocks.ProductRepository)
		repo.On("FindByIds", []uint{1, 2}).Return(&[]models.Product{
			{ID: 1, Name: "Laptop", Price: 999.99},
			{ID: 2, Name: "Smartphone", Price: 499.99},
		}, nil)
		service := services.NewCartService(repo)
		session := &models.Session{ID: "sid"}
		service.AddToCart(session, 1)
		service.AddToCart(session, 1)
		service.AddToCart(session, 2)

		view, err := service.ViewCart(session)

		require.NoError(t, err)
		assert.InDelta(t, 2499.97, view.Total, 1e-9)
	})
}
