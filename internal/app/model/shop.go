package model

import (
	"time"

	"gorm.io/gorm"
)

type Shop struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	OwnerID     uint           `gorm:"uniqueIndex;not null" json:"owner_id"` // one shop per owner
	Owner       User           `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"owner,omitempty"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Location    string         `gorm:"index" json:"location"`
	ImageURL    string         `json:"image_url"`

	// Derived from reviews. Recomputed inside the same transaction as every
	// review insert/delete; never written from request input.
	AverageRating float64 `gorm:"type:decimal(2,1);default:0;index" json:"average_rating"`
	TotalReviews  int     `gorm:"default:0" json:"total_reviews"`

	// "New" for unreviewed shops, otherwise the one-decimal average.
	RatingLabel string `gorm:"-" json:"rating_label"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Items   []FoodItem `gorm:"foreignKey:ShopID" json:"items,omitempty"`
	Reviews []Review   `gorm:"foreignKey:ShopID" json:"reviews,omitempty"`
}

func (Shop) TableName() string {
	return "shops"
}

// AfterFind fills the display label so every fetched shop carries it
func (s *Shop) AfterFind(tx *gorm.DB) error {
	s.RatingLabel = RatingLabel(s.AverageRating, s.TotalReviews)
	return nil
}
