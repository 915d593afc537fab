package service

import (
	"errors"
	"strings"

	"github.com/foodiespot/foodiespot-backend/internal/app/model"
	"github.com/foodiespot/foodiespot-backend/internal/app/repository"
	"github.com/foodiespot/foodiespot-backend/pkg/logger"
	"github.com/foodiespot/foodiespot-backend/pkg/util"
	"gorm.io/gorm"
)

var (
	ErrItemNotFound     = errors.New("menu item not found")
	ErrItemNameRequired = errors.New("item name is required")
)

// MenuItemInput carries a menu item form submission. Price arrives as the
// raw text the form held and is validated here.
type MenuItemInput struct {
	Name        string
	Description string
	Price       string
	ImageURL    string
	InStock     *bool
}

type MenuService interface {
	ListItems(shopID uint) ([]model.FoodItem, error)
	CreateItem(ownerID, shopID uint, input MenuItemInput) (*model.FoodItem, error)
	UpdateItem(ownerID, itemID uint, input MenuItemInput) (*model.FoodItem, error)
	DeleteItem(ownerID, itemID uint) error
	ToggleStock(ownerID, itemID uint) (*model.FoodItem, error)
}

type menuService struct {
	itemRepo *repository.FoodItemRepository
	shopRepo repository.ShopRepository
}

func NewMenuService(itemRepo *repository.FoodItemRepository, shopRepo repository.ShopRepository) MenuService {
	return &menuService{
		itemRepo: itemRepo,
		shopRepo: shopRepo,
	}
}

func (s *menuService) ListItems(shopID uint) ([]model.FoodItem, error) {
	if _, err := s.requireShop(shopID); err != nil {
		return nil, err
	}
	return s.itemRepo.FindByShopID(shopID)
}

func (s *menuService) CreateItem(ownerID, shopID uint, input MenuItemInput) (*model.FoodItem, error) {
	shop, err := s.requireShop(shopID)
	if err != nil {
		return nil, err
	}
	if shop.OwnerID != ownerID {
		return nil, ErrShopAccessDenied
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrItemNameRequired
	}

	price, err := util.ParsePrice(input.Price)
	if err != nil {
		return nil, err
	}

	inStock := true
	if input.InStock != nil {
		inStock = *input.InStock
	}

	item := &model.FoodItem{
		ShopID:      shopID,
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Price:       price,
		ImageURL:    strings.TrimSpace(input.ImageURL),
		InStock:     inStock,
	}

	if err := s.itemRepo.Create(item); err != nil {
		logger.Error("Failed to create menu item", err, map[string]interface{}{
			"shop_id": shopID,
			"name":    name,
		})
		return nil, err
	}

	logger.Info("Menu item created", map[string]interface{}{
		"item_id": item.ID,
		"shop_id": shopID,
	})
	return item, nil
}

func (s *menuService) UpdateItem(ownerID, itemID uint, input MenuItemInput) (*model.FoodItem, error) {
	item, err := s.requireOwnedItem(ownerID, itemID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrItemNameRequired
	}

	price, err := util.ParsePrice(input.Price)
	if err != nil {
		return nil, err
	}

	item.Name = name
	item.Description = strings.TrimSpace(input.Description)
	item.Price = price
	item.ImageURL = strings.TrimSpace(input.ImageURL)
	if input.InStock != nil {
		item.InStock = *input.InStock
	}

	if err := s.itemRepo.Update(item); err != nil {
		return nil, err
	}

	logger.Info("Menu item updated", map[string]interface{}{
		"item_id": item.ID,
	})
	return item, nil
}

func (s *menuService) DeleteItem(ownerID, itemID uint) error {
	item, err := s.requireOwnedItem(ownerID, itemID)
	if err != nil {
		return err
	}

	if err := s.itemRepo.Delete(item.ID); err != nil {
		return err
	}

	logger.Info("Menu item deleted", map[string]interface{}{
		"item_id": item.ID,
		"shop_id": item.ShopID,
	})
	return nil
}

// ToggleStock flips in_stock via a single-column update and returns the
// refreshed item
func (s *menuService) ToggleStock(ownerID, itemID uint) (*model.FoodItem, error) {
	item, err := s.requireOwnedItem(ownerID, itemID)
	if err != nil {
		return nil, err
	}

	if err := s.itemRepo.SetInStock(item.ID, !item.InStock); err != nil {
		return nil, err
	}

	updated, err := s.itemRepo.FindByID(item.ID)
	if err != nil {
		return nil, err
	}

	logger.Info("Menu item stock toggled", map[string]interface{}{
		"item_id":  updated.ID,
		"in_stock": updated.InStock,
	})
	return updated, nil
}

func (s *menuService) requireShop(shopID uint) (*model.Shop, error) {
	shop, err := s.shopRepo.FindByID(shopID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShopNotFound
		}
		return nil, err
	}
	return shop, nil
}

func (s *menuService) requireOwnedItem(ownerID, itemID uint) (*model.FoodItem, error) {
	item, err := s.itemRepo.FindByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	shop, err := s.requireShop(item.ShopID)
	if err != nil {
		return nil, err
	}
	if shop.OwnerID != ownerID {
		logger.Warn("Menu mutation rejected: not the shop owner", map[string]interface{}{
			"item_id": itemID,
			"shop_id": shop.ID,
			"user_id": ownerID,
		})
		return nil, ErrShopAccessDenied
	}

	return item, nil
}
