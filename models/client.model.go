package models

import (
	"gorm.io/gorm"
)

// Client is a brokerage customer owned by exactly one user.
type Client struct {
	gorm.Model
	Name      string `gorm:"not null" json:"name"`
	Email     string `gorm:"default:''" json:"email"`
	UserID    uint   `gorm:"not null;index" json:"userId"`
	IsDeleted bool   `gorm:"default:false" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
