package model

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleCustomer  UserRole = "customer"   // browses shops, writes reviews
	RoleShopOwner UserRole = "shop_owner" // manages a shop and its menu
)

// ValidRole reports whether s is one of the two supported roles.
// The role is fixed at registration and never changes afterwards.
func ValidRole(s string) bool {
	switch UserRole(s) {
	case RoleCustomer, RoleShopOwner:
		return true
	}
	return false
}

type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	FullName     string         `gorm:"not null" json:"full_name"`
	Role         UserRole       `gorm:"type:varchar(20);default:'customer'" json:"role"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Shop *Shop `gorm:"foreignKey:OwnerID" json:"shop,omitempty"` // owned shop (shop_owner only)
}

func (User) TableName() string {
	return "users"
}
