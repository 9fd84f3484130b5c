package models

import "time"

type Reservation struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	DateReservation time.Time `gorm:"not null;index" json:"date_reservation"`
	PeopleCount     int       `gorm:"not null" json:"people_count"`
	PhoneNumber     string    `gorm:"type:varchar(255);not null" json:"phone_number"`
	Email           *string   `gorm:"type:varchar(255)" json:"email,omitempty"`
	Comment         *string   `gorm:"type:varchar(1024)" json:"comment,omitempty"`
	AdminComment    *string   `gorm:"type:varchar(1024)" json:"admin_comment,omitempty"`
	Served          bool      `gorm:"not null;default:false" json:"served"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}
