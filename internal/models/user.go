package models

import "time"

type UserType string

const (
	UserTypeHouse UserType = "house"
	UserTypeShop  UserType = "shop"
)

// DefaultElectricityRate is the currency-per-kWh rate assigned at
// registration until the user sets their own in settings.
const DefaultElectricityRate = 0.12

type User struct {
	ID              uint     `gorm:"primaryKey"`
	Name            string   `gorm:"size:100;not null"`
	Email           string   `gorm:"size:100;uniqueIndex;not null"`
	PasswordHash    string   `gorm:"size:255;not null"`
	UserType        UserType `gorm:"size:10;not null"` // house / shop
	ElectricityRate float64  `gorm:"not null;default:0.12"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
