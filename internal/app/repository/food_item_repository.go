package repository

import (
	"github.com/foodiespot/foodiespot-backend/internal/app/model"
	"gorm.io/gorm"
)

type FoodItemRepository struct {
	db *gorm.DB
}

func NewFoodItemRepository(db *gorm.DB) *FoodItemRepository {
	return &FoodItemRepository{db: db}
}

func (r *FoodItemRepository) Create(item *model.FoodItem) error {
	return r.db.Create(item).Error
}

func (r *FoodItemRepository) FindByID(id uint) (*model.FoodItem, error) {
	var item model.FoodItem
	if err := r.db.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByShopID lists a shop's menu ordered by name ascending
func (r *FoodItemRepository) FindByShopID(shopID uint) ([]model.FoodItem, error) {
	var items []model.FoodItem
	err := r.db.Where("shop_id = ?", shopID).Order("name ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *FoodItemRepository) Update(item *model.FoodItem) error {
	return r.db.Save(item).Error
}

// SetInStock flips the stock flag without touching any other column, so the
// dashboard toggle never has to round-trip the full edit form
func (r *FoodItemRepository) SetInStock(id uint, inStock bool) error {
	return r.db.Model(&model.FoodItem{}).
		Where("id = ?", id).
		UpdateColumn("in_stock", inStock).Error
}

func (r *FoodItemRepository) Delete(id uint) error {
	return r.db.Delete(&model.FoodItem{}, id).Error
}
