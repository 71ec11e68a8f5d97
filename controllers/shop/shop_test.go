package shopControllers

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/diaandrei/Flexiro-sub000/models"
	"github.com/diaandrei/Flexiro-sub000/response"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Shop{}, &models.Product{}, &models.Review{}))
	return db
}

func seedShop(t *testing.T, db *gorm.DB) *models.Shop {
	t.Helper()
	shop := models.Shop{
		OwnerID:      "seller-1",
		Name:         "Corner Shop",
		AdminStatus:  models.ShopAdminActive,
		SellerStatus: models.ShopSellerOpen,
		OpeningDay:   "Monday",
		ClosingDay:   "Friday",
		OpeningTime:  "09:00",
		ClosingTime:  "17:00",
	}
	require.NoError(t, db.Create(&shop).Error)
	return &shop
}

func TestUpdateSellerStatusPartialUpdate(t *testing.T) {
	db := testDB(t)
	seedShop(t, db)

	// Only ClosingDay is supplied; the other four fields must survive.
	shop, err := UpdateSellerStatus(db, "seller-1", SellerStatusInput{ClosingDay: "Saturday"})
	require.NoError(t, err)

	assert.Equal(t, "Saturday", shop.ClosingDay)
	assert.Equal(t, models.ShopSellerOpen, shop.SellerStatus)
	assert.Equal(t, "Monday", shop.OpeningDay)
	assert.Equal(t, "09:00", shop.OpeningTime)
	assert.Equal(t, "17:00", shop.ClosingTime)
}

func TestUpdateSellerStatusTogglesOpenClosed(t *testing.T) {
	db := testDB(t)
	seedShop(t, db)

	shop, err := UpdateSellerStatus(db, "seller-1", SellerStatusInput{SellerStatus: "closed"})
	require.NoError(t, err)
	assert.Equal(t, models.ShopSellerClosed, shop.SellerStatus)

	shop, err = UpdateSellerStatus(db, "seller-1", SellerStatusInput{SellerStatus: "Open"})
	require.NoError(t, err)
	assert.Equal(t, models.ShopSellerOpen, shop.SellerStatus)
}

func TestUpdateSellerStatusRejectsUnknownStatus(t *testing.T) {
	db := testDB(t)
	seedShop(t, db)

	_, err := UpdateSellerStatus(db, "seller-1", SellerStatusInput{SellerStatus: "hibernating"})
	var respErr *response.Error
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, "Invalid Status", respErr.Title)

	// The invalid request must not have touched the row.
	var shop models.Shop
	require.NoError(t, db.Where("owner_id = ?", "seller-1").First(&shop).Error)
	assert.Equal(t, models.ShopSellerOpen, shop.SellerStatus)
}

func TestUpdateSellerStatusUnknownSeller(t *testing.T) {
	db := testDB(t)

	_, err := UpdateSellerStatus(db, "nobody", SellerStatusInput{SellerStatus: "open"})
	var respErr *response.Error
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, response.KindNotFound, respErr.Kind)
}
