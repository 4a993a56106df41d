package infra_test

import (
	"testing"

	"gin-storefront/constants"
	"gin-storefront/infra"
	"gin-storefront/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type bcryptMinCost struct{}

func (bcryptMinCost) Hash(p []byte) ([]byte, error) {
	return bcrypt.GenerateFromPassword(p, bcrypt.MinCost)
}

func TestInitSchemaIsIdempotent(t *testing.T) {
	db, err := infra.SetupTestDB()
	require.NoError(t, err)

	require.NoError(t, infra.InitSchema(db, bcryptMinCost{}, "admin123"))
	require.NoError(t, infra.InitSchema(db, bcryptMinCost{}, "changed"))

	var admins []models.User
	require.NoError(t, db.Where("username = ?", constants.AdminUsername).Find(&admins).Error)
	require.Len(t, admins, 1)
	assert.True(t, admins[0].IsAdmin)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admins[0].Password), []byte("admin123")))

	var products []models.Product
	require.NoError(t, db.Order("id").Find(&products).Error)
	require.Len(t, products, 5)
	assert.Equal(t, "Laptop", products[0].Name)
	assert.Equal(t, 999.99, products[0].Price)
	assert.Equal(t, 10, products[0].Stock)
	assert.Equal(t, "Smartphone", products[1].Name)
	assert.Equal(t, 499.99, products[1].Price)
	assert.Equal(t, "Smartwatch", products[4].Name)
}

func TestInitSchemaKeepsExistingProducts(t *testing.T) {
	db, err := infra.SetupTestDB()
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}))
	require.NoError(t, db.Create(&models.Product{Name: "Only", Price: 1, Stock: 1}).Error)

	require.NoError(t, infra.InitSchema(db, bcryptMinCost{}, "admin123"))

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestInitSessionSchema(t *testing.T) {
	db, err := infra.SetupTestDB()
	require.NoError(t, err)

	require.NoError(t, infra.InitSessionSchema(db))

	assert.True(t, db.Migrator().HasTable(&models.Session{}))
}
