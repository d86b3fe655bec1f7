package models

const (
	RoleAdmin    = "ADMIN"
	RoleCustomer = "CUSTOMER"
)

type Role struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:20;uniqueIndex;not null" json:"name"`
}
