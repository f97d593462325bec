package models

import (
	"gorm.io/gorm"
)

type Stock struct {
	gorm.Model        // Auto includes ID, CreatedAt, UpdatedAt, DeletedAt
	Symbol     string `gorm:"unique;not null" json:"symbol"`
	Name       string `gorm:"not null" json:"name"`
	Sector     string `gorm:"default:''" json:"sector"`
	IsDeleted  bool   `gorm:"default:false" json:"-"`
}
