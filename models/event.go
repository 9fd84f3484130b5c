package models

import "time"

type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description *string   `gorm:"type:varchar(1024)" json:"description,omitempty"`
	Published   bool      `gorm:"not null;default:true" json:"published"`
	Image       *string   `gorm:"type:varchar(1024)" json:"image,omitempty"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}
