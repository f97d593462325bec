package models

import (
	"gorm.io/gorm"
)

// Broker is an intermediary firm through which transactions are executed.
// IsActive gates visibility in selection lists.
type Broker struct {
	gorm.Model
	Name      string `gorm:"unique;not null" json:"name"`
	Code      string `gorm:"unique;not null" json:"code"`
	IsActive  bool   `gorm:"not null" json:"isActive"`
	IsDeleted bool   `gorm:"default:false" json:"-"`
}

// ActiveBroker is the projection of a broker used by selection widgets
type ActiveBroker struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}
