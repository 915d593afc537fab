package model

import (
	"time"
)

// Review is a 1-5 star rating with an optional comment. Reviews are written
// once and never edited through the API, so there is no UpdatedAt and no
// soft delete.
type Review struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	ShopID    uint      `gorm:"not null;index" json:"shop_id"`
	Shop      Shop      `gorm:"foreignKey:ShopID" json:"-"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func (Review) TableName() string {
	return "reviews"
}
