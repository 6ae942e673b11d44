package models

import (
	"time"
)

type MenuItem struct {
	ID       int     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string  `gorm:"not null"                 json:"name"`
	Recipe   string  `json:"recipe"`
	Image    string  `json:"image"`
	Category string  `gorm:"index"                    json:"category"`
	Price    float64 `gorm:"not null"                 json:"price"`
}

type User struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `json:"name"`
	Email    string `gorm:"uniqueIndex;not null"     json:"email"`
	Role     string `json:"role"`
	PhotoURL string `json:"photoURL"`
}

type Review struct {
	ID      uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string  `json:"name"`
	Details string  `json:"details"`
	Rating  float64 `json:"rating"`
}

type CartItem struct {
	ID         uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Email      string  `gorm:"index;not null"           json:"email"`
	MenuItemID int     `gorm:"not null"                 json:"menuItemId"`
	Name       string  `json:"name"`
	Image      string  `json:"image"`
	Price      float64 `json:"price"`
	Quantity   uint    `gorm:"default:1"                json:"quantity"`
}

type Payment struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email         string    `gorm:"index;not null"           json:"email"`
	Price         float64   `gorm:"not null"                 json:"price"`
	TransactionID string    `json:"transactionId"`
	ItemIDs       []uint    `gorm:"serializer:json"          json:"items"`
	MenuItemIDs   []int     `gorm:"serializer:json"          json:"menuItems"`
	Status        string    `json:"status"`
	Date          time.Time `json:"date"`
}
