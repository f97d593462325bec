package models

import (
	"time"

	"gorm.io/gorm"
)

// TransactionType defines the economic direction of a transaction
type TransactionType string

const (
	TransactionTypeBuy  TransactionType = "BUY"
	TransactionTypeSell TransactionType = "SELL"
)

// Transaction is a buy or sell of a stock for a client through a broker.
// A SELL may reference the originating BUY via BuyTransactionID for
// lot-based realized gain tracking; a BUY never carries that link.
type Transaction struct {
	gorm.Model
	Reference string          `gorm:"uniqueIndex;not null" json:"reference"`
	Type      TransactionType `gorm:"type:varchar(10);not null;index" json:"type"`
	ClientID  uint            `gorm:"not null;index" json:"clientId"`
	StockID   uint            `gorm:"not null;index" json:"stockId"`
	BrokerID  uint            `gorm:"not null;index" json:"brokerId"`
	Quantity  float64         `gorm:"not null" json:"quantity"`
	Price     float64         `gorm:"not null" json:"price"`
	Date      time.Time       `gorm:"not null;index" json:"date"`

	BuyTransactionID *uint `gorm:"index" json:"buyTransactionId,omitempty"`

	IsDeleted bool `gorm:"default:false" json:"-"`

	// Relations - loaded only where the handler preloads them
	Client         Client       `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Stock          Stock        `gorm:"foreignKey:StockID" json:"stock,omitempty"`
	Broker         Broker       `gorm:"foreignKey:BrokerID" json:"broker,omitempty"`
	BuyTransaction *Transaction `gorm:"foreignKey:BuyTransactionID" json:"buyTransaction,omitempty"`
}

func (Transaction) TableName() string {
	return "transactions"
}
