package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Destination struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:100;not null;index" json:"name"`
	Country     string          `gorm:"size:50;not null;index" json:"country"`
	Description *string         `gorm:"size:500" json:"description,omitempty"`
	Cost        decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"cost"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   *time.Time      `gorm:"autoUpdateTime:false" json:"updated_at,omitempty"`
}
