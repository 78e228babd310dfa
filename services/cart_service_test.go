package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Rushikesh1Avachat/food-ordering-mains/entity"
	"github.com/Rushikesh1Avachat/food-ordering-mains/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.MenuItem{}, &entity.Customization{},
		&entity.Cart{}, &entity.CartItem{}, &entity.CartItemSelection{},
		&entity.CheckoutSession{},
		&entity.Order{}, &entity.OrderItem{}, &entity.OrderItemSelection{},
	))
	return db
}

type catalog struct {
	burger    entity.MenuItem // 800
	pizza     entity.MenuItem // 1200
	cheese    entity.Customization
	jalapenos entity.Customization
}

func seedCatalog(t *testing.T, db *gorm.DB) catalog {
	t.Helper()
	cat := entity.Category{Name: "Burgers"}
	require.NoError(t, db.Create(&cat).Error)

	fx := catalog{
		burger:    entity.MenuItem{Name: "Classic Cheeseburger", Price: 800, CategoryID: cat.ID},
		pizza:     entity.MenuItem{Name: "Pepperoni Pizza", Price: 1200, CategoryID: cat.ID},
		cheese:    entity.Customization{Name: "Extra Cheese", PriceDelta: 100, Type: "topping"},
		jalapenos: entity.Customization{Name: "Jalapenos", PriceDelta: 50, Type: "topping"},
	}
	require.NoError(t, db.Create(&fx.burger).Error)
	require.NoError(t, db.Create(&fx.pizza).Error)
	require.NoError(t, db.Create(&fx.cheese).Error)
	require.NoError(t, db.Create(&fx.jalapenos).Error)

	require.NoError(t, db.Model(&fx.burger).Association("Customizations").Append(&fx.cheese, &fx.jalapenos))
	require.NoError(t, db.Model(&fx.pizza).Association("Customizations").Append(&fx.cheese))
	return fx
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewMenuRepository(db))
}

func TestCartTotalsAccumulate(t *testing.T) {
	db := newTestDB(t)
	fx := seedCatalog(t, db)
	svc := newCartService(db)
	const userID = 1

	require.NoError(t, svc.Add(userID, &AddToCartIn{MenuItemID: fx.burger.ID, Qty: 1}))
	require.NoError(t, svc.Add(userID, &AddToCartIn{MenuItemID: fx.pizza.ID, Qty: 1}))

	_, sum, err := svc.Get(userID)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.TotalItems)
	assert.Equal(t, int64(2000), sum.Subtotal)
	assert.Equal(t, int64(500), sum.DeliveryFee)
	assert.Equal(t, int64(50), sum.Discount)
	assert.Equal(t, int64(2450), sum.Total)
}

func TestCartMergesEquivalentLines(t *testing.T) {
	db := newTestDB(t)
	fx := seedCatalog(t, db)
	svc := newCartService(db)
	const userID = 1

	// same item, same customization set in different order => one line
	require.NoError(t, svc.Add(userID, &AddToCartIn{
		MenuItemID: fx.burger.ID, Qty: 1,
		CustomizationIDs: []uint{fx.cheese.ID, fx.jalapenos.ID},
	}))
	require.NoError(t, svc.Add(userID, &AddToCartIn{
		MenuItemID: fx.burger.ID, Qty: 1,
		CustomizationIDs: []uint{fx.jalapenos.ID, fx.cheese.ID},
	}))

	cart, sum, err := svc.Get(userID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Qty)
	assert.Equal(t, int64(950), cart.Items[0].UnitPrice) // 800 + 100 + 50
	assert.Equal(t, int64(1900), sum.Subtotal)
}

func TestCartKeepsDistinctCustomizationSetsApart(t *testing.T) {
	db := newTestDB(t)
	fx := seedCatalog(t, db)
	svc := newCartService(db)
	const userID = 1

	require.NoError(t, svc.Add(userID, &AddToCartIn{MenuItemID: fx.burger.ID, Qty: 1}))
	require.NoError(t, svc.Add(userID, &AddToCartIn{
		MenuItemID: fx.burger.ID, Qty: 1,
		CustomizationIDs: []uint{fx.cheese.ID},
	}))

	cart, sum, err := svc.Get(userID)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
	assert.Equal(t, int64(800+900), sum.Subtotal)
}

func TestCartRejectsForeignCustomization(t *testing.T) {
	db := newTestDB(t)
	fx := seedCatalog(t, db)
	svc := newCartService(db)

	// jalapenos is not offered for the pizza
	err := svc.Add(1, &AddToCartIn{
		MenuItemID: fx.pizza.ID, Qty: 1,
		CustomizationIDs: []uint{fx.jalapenos.ID},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid customizations")
}

func TestCartClearYieldsZeroItems(t *testing.T) {
	db := newTestDB(t)
	fx := seedCatalog(t, db)
	svc := newCartService(db)
	const userID = 1

	require.NoError(t, svc.Add(userID, &AddToCartIn{MenuItemID: fx.burger.ID, Qty: 3}))
	require.NoError(t, svc.Clear(userID))

	n, err := svc.TotalItems(userID)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestCartUpdateQtyZeroRemovesLine(t *testing.T) {
	db := newTestDB(t)
	fx := seedCatalog(t, db)
	svc := newCartService(db)
	const userID = 1

	require.NoError(t, svc.Add(userID, &AddToCartIn{MenuItemID: fx.burger.ID, Qty: 2}))
	cart, _, err := svc.Get(userID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)

	require.NoError(t, svc.UpdateQty(userID, cart.Items[0].ID, 0))

	cart, sum, err := svc.Get(userID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0, sum.TotalItems)
}

func TestCartUpdateQtyRecomputesTotal(t *testing.T) {
	db := newTestDB(t)
	fx := seedCatalog(t, db)
	svc := newCartService(db)
	const userID = 1

	require.NoError(t, svc.Add(userID, &AddToCartIn{MenuItemID: fx.pizza.ID, Qty: 1}))
	cart, _, err := svc.Get(userID)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateQty(userID, cart.Items[0].ID, 3))

	_, sum, err := svc.Get(userID)
	require.NoError(t, err)
	assert.Equal(t, 3, sum.TotalItems)
	assert.Equal(t, int64(3600), sum.Subtotal)
}
