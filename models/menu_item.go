package models

import "time"

// MenuCategory values mirror the categories shown in the admin console.
const (
	CategoryAlcoholDrinks    = "alcohol_drinks"
	CategoryNonAlcoholDrinks = "non_alcohol_drinks"
	CategorySnacks           = "snacks"
	CategoryPizza            = "pizza"
	CategorySushi            = "sushi"
)

// ValidMenuCategory reports whether category is one of the known values.
func ValidMenuCategory(category string) bool {
	switch category {
	case CategoryAlcoholDrinks, CategoryNonAlcoholDrinks, CategorySnacks, CategoryPizza, CategorySushi:
		return true
	}
	return false
}

type MenuItem struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Category       string    `gorm:"type:varchar(50);not null;index" json:"category"`
	SubCategory    string    `gorm:"type:varchar(1024)" json:"sub_category"`
	Name           string    `gorm:"type:varchar(1024);not null" json:"name"`
	SubName        *string   `gorm:"type:varchar(1024)" json:"sub_name,omitempty"`
	MainUnit       string    `gorm:"type:varchar(255)" json:"main_unit"`
	MainPrice      string    `gorm:"type:varchar(255)" json:"main_price"`
	SecondaryUnit  *string   `gorm:"type:varchar(255)" json:"secondary_unit,omitempty"`
	SecondaryPrice *string   `gorm:"type:varchar(255)" json:"secondary_price,omitempty"`
	Special        bool      `gorm:"not null;default:false" json:"special"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null" json:"updated_at"`
}
