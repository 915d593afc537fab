package service

import (
	"testing"

	"github.com/foodiespot/foodiespot-backend/internal/app/model"
	"github.com/foodiespot/foodiespot-backend/internal/app/repository"
	"github.com/foodiespot/foodiespot-backend/internal/db"
	"github.com/foodiespot/foodiespot-backend/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupMenuServiceTest(t *testing.T) (MenuService, ShopService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	shopRepo := repository.NewShopRepository(testDB)
	itemRepo := repository.NewFoodItemRepository(testDB)

	return NewMenuService(itemRepo, shopRepo), NewShopService(shopRepo), testDB
}

func createMenuTestShop(t *testing.T, shopService ShopService, testDB *gorm.DB, email string) (*model.User, *model.Shop) {
	t.Helper()
	owner := createTestOwner(t, testDB, email)
	shop, err := shopService.CreateShop(owner.ID, ShopMutation{Name: "Nonna's Kitchen"})
	require.NoError(t, err)
	return owner, shop
}

func TestMenuService_CreateItem(t *testing.T) {
	menuService, shopService, testDB := setupMenuServiceTest(t)
	owner, shop := createMenuTestShop(t, shopService, testDB, "owner@example.com")

	item, err := menuService.CreateItem(owner.ID, shop.ID, MenuItemInput{
		Name:        "Margherita Pizza",
		Description: "Tomato, mozzarella, basil",
		Price:       "12.50",
	})
	require.NoError(t, err)
	assert.Equal(t, "Margherita Pizza", item.Name)
	assert.Equal(t, 12.5, item.Price)
	assert.True(t, item.InStock)
}

func TestMenuService_CreateItem_StoresOutOfStock(t *testing.T) {
	menuService, shopService, testDB := setupMenuServiceTest(t)
	owner, shop := createMenuTestShop(t, shopService, testDB, "owner@example.com")

	soldOut := false
	item, err := menuService.CreateItem(owner.ID, shop.ID, MenuItemInput{
		Name:    "Daily Special",
		Price:   "10.00",
		InStock: &soldOut,
	})
	require.NoError(t, err)
	assert.False(t, item.InStock)

	// Read back from the database: the stored row must match what the
	// create response claimed, not a column default
	var stored model.FoodItem
	require.NoError(t, testDB.First(&stored, item.ID).Error)
	assert.False(t, stored.InStock, "item created as out-of-stock must be stored out-of-stock")
}

func TestMenuService_CreateItem_PriceValidation(t *testing.T) {
	menuService, shopService, testDB := setupMenuServiceTest(t)
	owner, shop := createMenuTestShop(t, shopService, testDB, "owner@example.com")

	tests := []struct {
		name    string
		price   string
		wantErr error
	}{
		{name: "Empty price", price: "", wantErr: util.ErrInvalidPrice},
		{name: "Non-numeric price", price: "abc", wantErr: util.ErrInvalidPrice},
		{name: "Negative price", price: "-5", wantErr: util.ErrInvalidPrice},
		{name: "Zero price is allowed", price: "0", wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := menuService.CreateItem(owner.ID, shop.ID, MenuItemInput{
				Name:  "Test Item " + tt.name,
				Price: tt.price,
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, item)
			} else {
				require.NoError(t, err)
				assert.Equal(t, float64(0), item.Price)
			}
		})
	}
}

func TestMenuService_CreateItem_OwnershipChecks(t *testing.T) {
	menuService, shopService, testDB := setupMenuServiceTest(t)
	_, shop := createMenuTestShop(t, shopService, testDB, "owner@example.com")
	intruder := createTestOwner(t, testDB, "intruder@example.com")

	_, err := menuService.CreateItem(intruder.ID, shop.ID, MenuItemInput{
		Name:  "Sneaky Dish",
		Price: "9.99",
	})
	assert.ErrorIs(t, err, ErrShopAccessDenied)

	_, err = menuService.CreateItem(intruder.ID, 99999, MenuItemInput{
		Name:  "Ghost Dish",
		Price: "9.99",
	})
	assert.ErrorIs(t, err, ErrShopNotFound)
}

func TestMenuService_UpdateItem(t *testing.T) {
	menuService, shopService, testDB := setupMenuServiceTest(t)
	owner, shop := createMenuTestShop(t, shopService, testDB, "owner@example.com")
	intruder := createTestOwner(t, testDB, "intruder@example.com")

	item, err := menuService.CreateItem(owner.ID, shop.ID, MenuItemInput{
		Name:  "Margherita Pizza",
		Price: "12.50",
	})
	require.NoError(t, err)

	t.Run("Owner can update", func(t *testing.T) {
		updated, err := menuService.UpdateItem(owner.ID, item.ID, MenuItemInput{
			Name:  "Margherita Pizza (large)",
			Price: "15.00",
		})
		require.NoError(t, err)
		assert.Equal(t, "Margherita Pizza (large)", updated.Name)
		assert.Equal(t, 15.0, updated.Price)
	})

	t.Run("Non-owner is rejected", func(t *testing.T) {
		_, err := menuService.UpdateItem(intruder.ID, item.ID, MenuItemInput{
			Name:  "Hijacked",
			Price: "1.00",
		})
		assert.ErrorIs(t, err, ErrShopAccessDenied)
	})

	t.Run("Unknown item", func(t *testing.T) {
		_, err := menuService.UpdateItem(owner.ID, 99999, MenuItemInput{
			Name:  "Ghost",
			Price: "1.00",
		})
		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}

func TestMenuService_ToggleStock(t *testing.T) {
	menuService, shopService, testDB := setupMenuServiceTest(t)
	owner, shop := createMenuTestShop(t, shopService, testDB, "owner@example.com")

	item, err := menuService.CreateItem(owner.ID, shop.ID, MenuItemInput{
		Name:  "Margherita Pizza",
		Price: "12.50",
	})
	require.NoError(t, err)
	require.True(t, item.InStock)

	toggled, err := menuService.ToggleStock(owner.ID, item.ID)
	require.NoError(t, err)
	assert.False(t, toggled.InStock)

	toggled, err = menuService.ToggleStock(owner.ID, item.ID)
	require.NoError(t, err)
	assert.True(t, toggled.InStock)
}

func TestMenuService_DeleteItem(t *testing.T) {
	menuService, shopService, testDB := setupMenuServiceTest(t)
	owner, shop := createMenuTestShop(t, shopService, testDB, "owner@example.com")
	intruder := createTestOwner(t, testDB, "intruder@example.com")

	item, err := menuService.CreateItem(owner.ID, shop.ID, MenuItemInput{
		Name:  "Margherita Pizza",
		Price: "12.50",
	})
	require.NoError(t, err)

	assert.ErrorIs(t, menuService.DeleteItem(intruder.ID, item.ID), ErrShopAccessDenied)

	require.NoError(t, menuService.DeleteItem(owner.ID, item.ID))

	items, err := menuService.ListItems(shop.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestMenuService_ListItems_SortedByName(t *testing.T) {
	menuService, shopService, testDB := setupMenuServiceTest(t)
	owner, shop := createMenuTestShop(t, shopService, testDB, "owner@example.com")

	for _, name := range []string{"Tiramisu", "Bruschetta", "Lasagna"} {
		_, err := menuService.CreateItem(owner.ID, shop.ID, MenuItemInput{
			Name:  name,
			Price: "8.00",
		})
		require.NoError(t, err)
	}

	items, err := menuService.ListItems(shop.ID)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Bruschetta", items[0].Name)
	assert.Equal(t, "Lasagna", items[1].Name)
	assert.Equal(t, "Tiramisu", items[2].Name)
}
