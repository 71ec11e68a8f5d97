package cartControllers

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/diaandrei/Flexiro-sub000/config"
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
	require.NoError(t, db.AutoMigrate(
		&models.Shop{}, &models.Product{},
		&models.Cart{}, &models.CartItem{},
	))
	return db
}

func testConfig() *config.Config {
	return &config.Config{TaxRate: decimal.Zero, ShippingCost: decimal.Zero}
}

func seedProduct(t *testing.T, db *gorm.DB, price string, discount string, stock int) *models.Product {
	t.Helper()
	shop := models.Shop{OwnerID: "seller-" + t.Name(), Name: "Test Shop", AdminStatus: models.ShopAdminActive}
	require.NoError(t, db.Create(&shop).Error)

	product := models.Product{
		ShopID:             shop.ID,
		Name:               "Widget",
		PricePerItem:       decimal.RequireFromString(price),
		DiscountPercentage: decimal.RequireFromString(discount),
		StockQuantity:      stock,
		Status:             models.ProductStatusForSell,
		Availability:       models.AvailabilityForSale,
	}
	require.NoError(t, db.Create(&product).Error)
	return &product
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got),
		"want %s, got %s", want, got.String())
}

func TestAddOrUpdateItemFreezesLinePricing(t *testing.T) {
	db := testDB(t)
	product := seedProduct(t, db, "100", "10", 5)

	cart, err := AddOrUpdateItem(db, testConfig(), "user-1", CartItemInput{
		ProductID: product.ID, ShopID: product.ShopID, Quantity: 2,
	})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)

	item := cart.Items[0]
	assertDecimal(t, "100", item.PricePerUnit)
	assertDecimal(t, "20", item.DiscountAmount)
	assertDecimal(t, "180", item.TotalPrice)

	assertDecimal(t, "200", cart.ItemsTotal)
	assertDecimal(t, "20", cart.TotalDiscount)
	assertDecimal(t, "180", cart.TotalAmount)
}

func TestAddOrUpdateItemKeepsFrozenPriceUntilReadd(t *testing.T) {
	db := testDB(t)
	product := seedProduct(t, db, "100", "0", 10)
	cfg := testConfig()

	_, err := AddOrUpdateItem(db, cfg, "user-1", CartItemInput{
		ProductID: product.ID, ShopID: product.ShopID, Quantity: 1,
	})
	require.NoError(t, err)

	// A price change on the product leaves the existing line alone.
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", product.ID).
		Update("price_per_item", decimal.RequireFromString("150")).Error)

	var item models.CartItem
	require.NoError(t, db.Where("product_id = ?", product.ID).First(&item).Error)
	assertDecimal(t, "100", item.PricePerUnit)

	// Re-adding reprices from the current product.
	cart, err := AddOrUpdateItem(db, cfg, "user-1", CartItemInput{
		ProductID: product.ID, ShopID: product.ShopID, Quantity: 3,
	})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assertDecimal(t, "150", cart.Items[0].PricePerUnit)
	assertDecimal(t, "450", cart.TotalAmount)
}

func TestAddOrUpdateItemRejectsInvalidQuantity(t *testing.T) {
	db := testDB(t)
	product := seedProduct(t, db, "10", "0", 5)

	for _, quantity := range []int{0, -1} {
		_, err := AddOrUpdateItem(db, testConfig(), "user-1", CartItemInput{
			ProductID: product.ID, ShopID: product.ShopID, Quantity: quantity,
		})
		require.Error(t, err)
		var respErr *response.Error
		require.ErrorAs(t, err, &respErr)
		assert.Equal(t, "Invalid Quantity", respErr.Title)
	}

	var count int64
	require.NoError(t, db.Model(&models.Cart{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAddOrUpdateItemRejectsInsufficientStock(t *testing.T) {
	db := testDB(t)
	product := seedProduct(t, db, "10", "0", 2)
	cfg := testConfig()

	_, err := AddOrUpdateItem(db, cfg, "user-1", CartItemInput{
		ProductID: product.ID, ShopID: product.ShopID, Quantity: 3,
	})
	var respErr *response.Error
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, "Insufficient Stock", respErr.Title)

	// The rejection must not create a cart.
	var count int64
	require.NoError(t, db.Model(&models.Cart{}).Count(&count).Error)
	assert.Zero(t, count)

	// An existing cart stays untouched on a later rejection.
	cart, err := AddOrUpdateItem(db, cfg, "user-1", CartItemInput{
		ProductID: product.ID, ShopID: product.ShopID, Quantity: 2,
	})
	require.NoError(t, err)

	_, err = AddOrUpdateItem(db, cfg, "user-1", CartItemInput{
		ProductID: product.ID, ShopID: product.ShopID, Quantity: 5,
	})
	require.Error(t, err)

	var reloaded models.Cart
	require.NoError(t, db.Preload("Items").First(&reloaded, cart.ID).Error)
	require.Len(t, reloaded.Items, 1)
	assert.Equal(t, 2, reloaded.Items[0].Quantity)
	assertDecimal(t, "20", reloaded.TotalAmount)
}

func TestAddOrUpdateItemRejectsWrongShop(t *testing.T) {
	db := testDB(t)
	product := seedProduct(t, db, "10", "0", 5)

	_, err := AddOrUpdateItem(db, testConfig(), "user-1", CartItemInput{
		ProductID: product.ID, ShopID: product.ShopID + 99, Quantity: 1,
	})
	var respErr *response.Error
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, "Invalid Shop", respErr.Title)
}

func TestAddOrUpdateItemRejectsUnknownProduct(t *testing.T) {
	db := testDB(t)

	_, err := AddOrUpdateItem(db, testConfig(), "user-1", CartItemInput{
		ProductID: 42, ShopID: 1, Quantity: 1,
	})
	var respErr *response.Error
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, response.KindNotFound, respErr.Kind)
}

func TestRemoveLastItemDeletesCart(t *testing.T) {
	db := testDB(t)
	product := seedProduct(t, db, "10", "0", 5)
	cfg := testConfig()

	_, err := AddOrUpdateItem(db, cfg, "user-1", CartItemInput{
		ProductID: product.ID, ShopID: product.ShopID, Quantity: 1,
	})
	require.NoError(t, err)

	cart, err := RemoveItem(db, cfg, "user-1", product.ID)
	require.NoError(t, err)
	assert.Nil(t, cart)

	var count int64
	require.NoError(t, db.Model(&models.Cart{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&models.CartItem{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRemoveItemRecomputesTotals(t *testing.T) {
	db := testDB(t)
	cfg := testConfig()
	first := seedProduct(t, db, "10", "0", 5)
	second := models.Product{
		ShopID:        first.ShopID,
		Name:          "Gadget",
		PricePerItem:  decimal.RequireFromString("25"),
		StockQuantity: 5,
		Status:        models.ProductStatusForSell,
	}
	require.NoError(t, db.Create(&second).Error)

	for _, in := range []CartItemInput{
		{ProductID: first.ID, ShopID: first.ShopID, Quantity: 2},
		{ProductID: second.ID, ShopID: second.ShopID, Quantity: 1},
	} {
		_, err := AddOrUpdateItem(db, cfg, "user-1", in)
		require.NoError(t, err)
	}

	cart, err := RemoveItem(db, cfg, "user-1", first.ID)
	require.NoError(t, err)
	require.NotNil(t, cart)
	require.Len(t, cart.Items, 1)
	assertDecimal(t, "25", cart.ItemsTotal)
	assertDecimal(t, "25", cart.TotalAmount)
}

func TestRemoveItemMissingCartAndLine(t *testing.T) {
	db := testDB(t)
	cfg := testConfig()
	product := seedProduct(t, db, "10", "0", 5)

	_, err := RemoveItem(db, cfg, "user-1", product.ID)
	var respErr *response.Error
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, "Cart Not Found", respErr.Title)

	_, err = AddOrUpdateItem(db, cfg, "user-1", CartItemInput{
		ProductID: product.ID, ShopID: product.ShopID, Quantity: 1,
	})
	require.NoError(t, err)

	_, err = RemoveItem(db, cfg, "user-1", product.ID+99)
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, "Cart Item Not Found", respErr.Title)
}

func TestClearCartDiscardsEverything(t *testing.T) {
	db := testDB(t)
	product := seedProduct(t, db, "10", "0", 5)

	_, err := AddOrUpdateItem(db, testConfig(), "user-1", CartItemInput{
		ProductID: product.ID, ShopID: product.ShopID, Quantity: 2,
	})
	require.NoError(t, err)

	require.NoError(t, ClearCart(db, "user-1"))

	var count int64
	require.NoError(t, db.Model(&models.Cart{}).Count(&count).Error)
	assert.Zero(t, count)

	err = ClearCart(db, "user-1")
	var respErr *response.Error
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, response.KindNotFound, respErr.Kind)
}

func TestRecomputeTotalsAppliesTaxAndShipping(t *testing.T) {
	db := testDB(t)
	product := seedProduct(t, db, "100", "10", 5)
	cfg := &config.Config{
		TaxRate:      decimal.RequireFromString("0.2"),
		ShippingCost: decimal.RequireFromString("5"),
	}

	cart, err := AddOrUpdateItem(db, cfg, "user-1", CartItemInput{
		ProductID: product.ID, ShopID: product.ShopID, Quantity: 2,
	})
	require.NoError(t, err)

	// Tax applies to the discounted line sum, the same base checkout
	// charges on.
	assertDecimal(t, "200", cart.ItemsTotal)
	assertDecimal(t, "36", cart.Tax)
	assertDecimal(t, "5", cart.ShippingCost)
	assertDecimal(t, "221", cart.TotalAmount)
}

func TestMergeGuestCartRepricesAndClamps(t *testing.T) {
	db := testDB(t)
	cfg := testConfig()
	product := seedProduct(t, db, "100", "0", 3)

	guestCart := models.Cart{UserID: "guest-1"}
	require.NoError(t, db.Create(&guestCart).Error)
	require.NoError(t, db.Create(&models.CartItem{
		CartID:       guestCart.ID,
		ProductID:    product.ID,
		ShopID:       product.ShopID,
		ProductName:  product.Name,
		Quantity:     5, // beyond stock, must be clamped
		PricePerUnit: decimal.RequireFromString("80"),
		TotalPrice:   decimal.RequireFromString("400"),
	}).Error)

	merged, err := MergeGuestCart(db, cfg, "guest-1", "user-1")
	require.NoError(t, err)
	assert.True(t, merged)

	var userCart models.Cart
	require.NoError(t, db.Preload("Items").Where("user_id = ?", "user-1").First(&userCart).Error)
	require.Len(t, userCart.Items, 1)
	assert.Equal(t, 3, userCart.Items[0].Quantity)
	assertDecimal(t, "100", userCart.Items[0].PricePerUnit)
	assertDecimal(t, "300", userCart.TotalAmount)

	var count int64
	require.NoError(t, db.Model(&models.Cart{}).Where("user_id = ?", "guest-1").Count(&count).Error)
	assert.Zero(t, count)
}

func TestMergeGuestCartCombinesQuantities(t *testing.T) {
	db := testDB(t)
	cfg := testConfig()
	product := seedProduct(t, db, "10", "0", 10)

	_, err := AddOrUpdateItem(db, cfg, "user-1", CartItemInput{
		ProductID: product.ID, ShopID: product.ShopID, Quantity: 2,
	})
	require.NoError(t, err)
	_, err = AddOrUpdateItem(db, cfg, "guest-1", CartItemInput{
		ProductID: product.ID, ShopID: product.ShopID, Quantity: 3,
	})
	require.NoError(t, err)

	merged, err := MergeGuestCart(db, cfg, "guest-1", "user-1")
	require.NoError(t, err)
	assert.True(t, merged)

	var userCart models.Cart
	require.NoError(t, db.Preload("Items").Where("user_id = ?", "user-1").First(&userCart).Error)
	require.Len(t, userCart.Items, 1)
	assert.Equal(t, 5, userCart.Items[0].Quantity)
	assertDecimal(t, "50", userCart.TotalAmount)
}

func TestMergeGuestCartNothingToMerge(t *testing.T) {
	db := testDB(t)

	merged, err := MergeGuestCart(db, testConfig(), "guest-none", "user-1")
	require.NoError(t, err)
	assert.False(t, merged)
}
