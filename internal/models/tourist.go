package models

import "time"

type Tourist struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	FirstName    string     `gorm:"size:50;not null" json:"first_name"`
	LastName     string     `gorm:"size:50;not null;index" json:"last_name"`
	Email        string     `gorm:"size:100;not null;uniqueIndex" json:"email"`
	Phone        *string    `gorm:"size:20" json:"phone,omitempty"`
	RegisteredAt time.Time  `gorm:"not null" json:"registered_at"`
	UpdatedAt    *time.Time `gorm:"autoUpdateTime:false" json:"updated_at,omitempty"`
}

func (t *Tourist) FullName() string {
	return t.FirstName + " " + t.LastName
}
