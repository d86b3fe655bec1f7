package models

import "time"

const (
	CarSizeSmall  = "small"
	CarSizeMedium = "medium"
	CarSizeLarge  = "large"
)

type Car struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string  `gorm:"size:100;not null" json:"name"`
	Price float64 `gorm:"not null" json:"price"`
	Size  string  `gorm:"size:10;not null" json:"size"`
	Image string  `gorm:"size:255" json:"image"`

	Rentals []Rental `gorm:"foreignKey:CarID" json:"rentals,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
