package model

import (
	"time"

	"gorm.io/gorm"
)

// FoodItem is a single menu entry belonging to a shop
type FoodItem struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	ShopID      uint           `gorm:"not null;index" json:"shop_id"`
	Shop        Shop           `gorm:"foreignKey:ShopID" json:"-"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Price       float64        `gorm:"not null;check:price >= 0" json:"price"`
	ImageURL    string         `json:"image_url"`
	// No column default: the service always sets the flag explicitly, and a
	// default tag would make GORM drop in_stock=false from the INSERT
	InStock     bool           `json:"in_stock"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (FoodItem) TableName() string {
	return "food_items"
}
