package service

import (
	"errors"
	"strings"

	"github.com/foodiespot/foodiespot-backend/internal/app/model"
	"github.com/foodiespot/foodiespot-backend/internal/app/repository"
	"github.com/foodiespot/foodiespot-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrShopNotFound      = errors.New("shop not found")
	ErrShopAccessDenied  = errors.New("you do not own this shop")
	ErrShopAlreadyExists = errors.New("you already have a shop")
	ErrShopNameRequired  = errors.New("shop name is required")
)

// ShopMutation carries the editable shop profile fields. Optional fields
// arrive as whatever the form held; blanks are trimmed to empty.
type ShopMutation struct {
	Name        string
	Description string
	Location    string
	ImageURL    string
}

type ShopService interface {
	ListShops(search string) ([]model.Shop, error)
	GetShopByID(id uint) (*model.Shop, error)
	GetShopDetail(id uint) (*model.Shop, error)
	GetShopByOwner(ownerID uint) (*model.Shop, error)
	CreateShop(ownerID uint, input ShopMutation) (*model.Shop, error)
	UpdateShop(ownerID, shopID uint, input ShopMutation) (*model.Shop, error)
}

type shopService struct {
	shopRepo repository.ShopRepository
}

func NewShopService(shopRepo repository.ShopRepository) ShopService {
	return &shopService{shopRepo: shopRepo}
}

func (s *shopService) ListShops(search string) ([]model.Shop, error) {
	logger.Debug("Listing shops", map[string]interface{}{
		"search": search,
	})

	shops, err := s.shopRepo.FindAll(repository.ShopFilter{Search: search})
	if err != nil {
		logger.Error("Failed to list shops", err)
		return nil, err
	}

	logger.Info("Shops fetched", map[string]interface{}{
		"count":  len(shops),
		"search": search,
	})
	return shops, nil
}

func (s *shopService) GetShopByID(id uint) (*model.Shop, error) {
	shop, err := s.shopRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShopNotFound
		}
		logger.Error("Failed to fetch shop", err, map[string]interface{}{
			"shop_id": id,
		})
		return nil, err
	}
	return shop, nil
}

// GetShopDetail returns the shop with its menu and reviews loaded, the
// single payload the shop detail page renders from
func (s *shopService) GetShopDetail(id uint) (*model.Shop, error) {
	shop, err := s.shopRepo.FindByIDWithDetails(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Shop not found", map[string]interface{}{
				"shop_id": id,
			})
			return nil, ErrShopNotFound
		}
		logger.Error("Failed to fetch shop detail", err, map[string]interface{}{
			"shop_id": id,
		})
		return nil, err
	}
	return shop, nil
}

// GetShopByOwner returns the owner's shop, or nil when none exists yet
// (the dashboard shows a "create your shop" state in that case)
func (s *shopService) GetShopByOwner(ownerID uint) (*model.Shop, error) {
	return s.shopRepo.FindByOwnerID(ownerID)
}

func (s *shopService) CreateShop(ownerID uint, input ShopMutation) (*model.Shop, error) {
	logger.Info("Creating shop", map[string]interface{}{
		"owner_id": ownerID,
		"name":     input.Name,
	})

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrShopNameRequired
	}

	existing, err := s.shopRepo.FindByOwnerID(ownerID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		logger.Warn("Shop creation rejected: owner already has a shop", map[string]interface{}{
			"owner_id": ownerID,
			"shop_id":  existing.ID,
		})
		return nil, ErrShopAlreadyExists
	}

	shop := &model.Shop{
		OwnerID:     ownerID,
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Location:    strings.TrimSpace(input.Location),
		ImageURL:    strings.TrimSpace(input.ImageURL),
	}

	if err := s.shopRepo.Create(shop); err != nil {
		return nil, err
	}

	logger.Info("Shop created", map[string]interface{}{
		"shop_id":  shop.ID,
		"owner_id": ownerID,
	})
	return shop, nil
}

func (s *shopService) UpdateShop(ownerID, shopID uint, input ShopMutation) (*model.Shop, error) {
	shop, err := s.GetShopByID(shopID)
	if err != nil {
		return nil, err
	}

	if shop.OwnerID != ownerID {
		logger.Warn("Shop update rejected: not the owner", map[string]interface{}{
			"shop_id":  shopID,
			"owner_id": shop.OwnerID,
			"user_id":  ownerID,
		})
		return nil, ErrShopAccessDenied
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrShopNameRequired
	}

	shop.Name = name
	shop.Description = strings.TrimSpace(input.Description)
	shop.Location = strings.TrimSpace(input.Location)
	shop.ImageURL = strings.TrimSpace(input.ImageURL)

	if err := s.shopRepo.Update(shop); err != nil {
		return nil, err
	}

	logger.Info("Shop updated", map[string]interface{}{
		"shop_id": shop.ID,
	})
	return shop, nil
}
