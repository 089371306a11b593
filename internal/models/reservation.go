package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reservation is a tourist's stay at a destination over the half-open
// date range [StartDate, EndDate).
type Reservation struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	TouristID     uint            `gorm:"not null;index:idx_reservation_tourist_dates,priority:1" json:"tourist_id"`
	DestinationID uint            `gorm:"not null;index" json:"destination_id"`
	StartDate     time.Time       `gorm:"type:date;not null;index:idx_reservation_tourist_dates,priority:2" json:"start_date"`
	EndDate       time.Time       `gorm:"type:date;not null" json:"end_date"`
	PartySize     int             `gorm:"not null;default:1;check:party_size >= 1" json:"party_size"`
	Total         decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"total"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     *time.Time      `gorm:"autoUpdateTime:false" json:"updated_at,omitempty"`

	Tourist     *Tourist     `gorm:"foreignKey:TouristID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Destination *Destination `gorm:"foreignKey:DestinationID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

// Overlaps reports whether r intersects [start, end). Touching endpoints do not overlap.
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return r.StartDate.Before(end) && start.Before(r.EndDate)
}
