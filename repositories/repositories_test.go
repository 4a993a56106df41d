package repositories_test

import (
	"testing"
	"time"

	"gin-storefront/infra"
	"gin-storefront/models"
	"gin-storefront/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := infra.SetupTestDB()
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}, &models.Session{}))
	return db
}

func seed(t *testing.T, db *gorm.DB) (models.User, models.User, models.Product, models.Product) {
	t.Helper()
	alice := models.User{Username: "alice", Password: "x"}
	bob := models.User{Username: "bob", Password: "x"}
	laptop := models.Product{Name: "Laptop", Price: 999.99, Stock: 10}
	phone := models.Product{Name: "Smartphone", Price: 499.99, Stock: 15}
	require.NoError(t, db.Create(&alice).Error)
	require.NoError(t, db.Create(&bob).Error)
	require.NoError(t, db.Create(&laptop).Error)
	require.NoError(t, db.Create(&phone).Error)
	return alice, bob, laptop, phone
}

func countOrders(t *testing.T, db *gorm.DB, where string, args ...interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.Order{}).Where(where, args...).Count(&count).Error)
	return count
}

func TestCreateBatch(t *testing.T) {
	db := setupDB(t)
	alice, _, laptop, phone := seed(t, db)
	repo := repositories.NewOrderRepository(db)

	created, err := repo.CreateBatch([]models.Order{
		{UserID: alice.ID, ProductID: laptop.ID, Quantity: 2},
		{UserID: alice.ID, ProductID: phone.ID, Quantity: 1},
	})

	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.NotZero(t, created[0].ID)
	assert.False(t, created[0].Date.IsZero())
	assert.Equal(t, int64(2), countOrders(t, db, "user_id = ?", alice.ID))
}

func TestCreateBatchRollsBackEveryRow(t *testing.T) {
	db := setupDB(t)
	alice, _, laptop, _ := seed(t, db)
	repo := repositories.NewOrderRepository(db)

	_, err := repo.CreateBatch([]models.Order{
		{UserID: alice.ID, ProductID: laptop.ID, Quantity: 1},
		{UserID: alice.ID, ProductID: 9999, Quantity: 1},
	})

	assert.Error(t, err)
	assert.Equal(t, int64(0), countOrders(t, db, "1 = 1"))
}

func TestFindByUser(t *testing.T) {
	db := setupDB(t)
	alice, bob, laptop, phone := seed(t, db)
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&models.Order{UserID: alice.ID, ProductID: laptop.ID, Quantity: 1, Date: base}).Error)
	require.NoError(t, db.Create(&models.Order{UserID: alice.ID, ProductID: phone.ID, Quantity: 3, Date: base.Add(time.Hour)}).Error)
	require.NoError(t, db.Create(&models.Order{UserID: bob.ID, ProductID: phone.ID, Quantity: 1, Date: base}).Error)

	entries, err := repositories.NewOrderRepository(db).FindByUser(alice.ID)

	require.NoError(t, err)
	require.Len(t, *entries, 2)
	assert.Equal(t, "Smartphone", (*entries)[0].ProductName)
	assert.Equal(t, 3, (*entries)[0].Quantity)
	assert.Equal(t, "Laptop", (*entries)[1].ProductName)
}

func TestDeleteProductCascadesOrders(t *testing.T) {
	db := setupDB(t)
	alice, bob, laptop, phone := seed(t, db)
	_, err := repositories.NewOrderRepository(db).CreateBatch([]models.Order{
		{UserID: alice.ID, ProductID: laptop.ID, Quantity: 1},
		{UserID: bob.ID, ProductID: laptop.ID, Quantity: 2},
		{UserID: bob.ID, ProductID: phone.ID, Quantity: 1},
	})
	require.NoError(t, err)
	repo := repositories.NewProductRepository(db)

	require.NoError(t, repo.Delete(laptop.ID))

	assert.Equal(t, int64(0), countOrders(t, db, "product_id = ?", laptop.ID))
	assert.Equal(t, int64(1), countOrders(t, db, "1 = 1"))
	assert.ErrorIs(t, repo.Delete(laptop.ID), gorm.ErrRecordNotFound)
}

func TestDeleteUserCascadesOrders(t *testing.T) {
	db := setupDB(t)
	alice, bob, laptop, _ := seed(t, db)
	_, err := repositories.NewOrderRepository(db).CreateBatch([]models.Order{
		{UserID: alice.ID, ProductID: laptop.ID, Quantity: 1},
		{UserID: bob.ID, ProductID: laptop.ID, Quantity: 2},
	})
	require.NoError(t, err)
	repo := repositories.NewUserRepository(db)

	require.NoError(t, repo.Delete(alice.ID))

	assert.Equal(t, int64(0), countOrders(t, db, "user_id = ?", alice.ID))
	assert.Equal(t, int64(1), countOrders(t, db, "user_id = ?", bob.ID))
	assert.ErrorIs(t, repo.Delete(alice.ID), gorm.ErrRecordNotFound)
}

func TestFindAllWithStats(t *testing.T) {
	db := setupDB(t)
	alice, bob, laptop, phone := seed(t, db)
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&models.Order{UserID: bob.ID, ProductID: laptop.ID, Quantity: 1, Date: base}).Error)
	require.NoError(t, db.Create(&models.Order{UserID: bob.ID, ProductID: phone.ID, Quantity: 1, Date: base.Add(48 * time.Hour)}).Error)

	stats, err := repositories.NewUserRepository(db).FindAllWithStats()

	require.NoError(t, err)
	require.Len(t, *stats, 2)
	assert.Equal(t, alice.ID, (*stats)[0].ID)
	assert.Equal(t, int64(0), (*stats)[0].OrderCount)
	assert.Nil(t, (*stats)[0].LastOrderDate)
	assert.Equal(t, bob.ID, (*stats)[1].ID)
	assert.Equal(t, int64(2), (*stats)[1].OrderCount)
	require.NotNil(t, (*stats)[1].LastOrderDate)
	assert.True(t, base.Add(48*time.Hour).Equal(*(*stats)[1].LastOrderDate))
}

func TestProductUpdate(t *testing.T) {
	db := setupDB(t)
	_, _, laptop, _ := seed(t, db)
	repo := repositories.NewProductRepository(db)

	updated, err := repo.Update(laptop.ID, map[string]interface{}{"name": "Notebook", "price": 0.0, "stock": 0})
	require.NoError(t, err)
	assert.Equal(t, "Notebook", updated.Name)
	assert.Zero(t, updated.Price)
	assert.Zero(t, updated.Stock)

	_, err = repo.Update(9999, map[string]interface{}{"name": "x"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFindByIdsSkipsMissing(t *testing.T) {
	db := setupDB(t)
	_, _, laptop, phone := seed(t, db)

	products, err := repositories.NewProductRepository(db).FindByIds([]uint{phone.ID, 9999, laptop.ID})

	require.NoError(t, err)
	require.Len(t, *products, 2)
	assert.Equal(t, laptop.ID, (*products)[0].ID)
}

func TestDuplicateUsernameIsTranslated(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewAuthRepository(db)
	require.NoError(t, repo.CreateUser(models.User{Username: "alice", Password: "x"}))

	err := repo.CreateUser(models.User{Username: "alice", Password: "y"})

	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	count, err := repo.CountUsers()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
