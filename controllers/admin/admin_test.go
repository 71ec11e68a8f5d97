package adminController

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
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Shop{}))
	return db
}

func TestUpdateShopAdminStatusTransitions(t *testing.T) {
	db := testDB(t)
	shop := models.Shop{OwnerID: "seller-1", Name: "Corner Shop"}
	require.NoError(t, db.Create(&shop).Error)

	// Any known status can be set from any other, including back to
	// pending after an approval.
	for _, status := range []string{"active", "inactive", "pending", "ACTIVE"} {
		updated, err := UpdateShopAdminStatus(db, shop.ID, status)
		require.NoError(t, err)
		assert.Equal(t, models.ShopAdminStatus(strings.ToLower(status)), updated.AdminStatus)

		var stored models.Shop
		require.NoError(t, db.First(&stored, shop.ID).Error)
		assert.Equal(t, updated.AdminStatus, stored.AdminStatus)
	}
}

func TestUpdateShopAdminStatusRejectsUnknownValue(t *testing.T) {
	db := testDB(t)
	shop := models.Shop{OwnerID: "seller-1", Name: "Corner Shop", AdminStatus: models.ShopAdminPending}
	require.NoError(t, db.Create(&shop).Error)

	_, err := UpdateShopAdminStatus(db, shop.ID, "approved")
	var respErr *response.Error
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, "Invalid Status", respErr.Title)

	var stored models.Shop
	require.NoError(t, db.First(&stored, shop.ID).Error)
	assert.Equal(t, models.ShopAdminPending, stored.AdminStatus)
}

func TestUpdateShopAdminStatusUnknownShop(t *testing.T) {
	db := testDB(t)

	_, err := UpdateShopAdminStatus(db, 42, "active")
	var respErr *response.Error
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, response.KindNotFound, respErr.Kind)
}
