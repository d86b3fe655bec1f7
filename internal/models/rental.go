package models

import "time"

type Rental struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CarID uint `gorm:"index;not null" json:"carId"`
	Car   Car  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	UserID uint `gorm:"index;not null" json:"userId"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	RentStartedAt time.Time `gorm:"not null" json:"rentStartedAt"`
	RentEndedAt   time.Time `gorm:"not null" json:"rentEndedAt"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
