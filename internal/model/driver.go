package model

import (
	"time"
)

type Driver struct {
	DriverID       uint   `gorm:"primarykey"`
	Name           string `gorm:"size:100;not null"`
	Phone          string `gorm:"size:15;uniqueIndex;not null"`
	Email          *string
	HashedPassword string `gorm:"size:255;not null"`
	IsActive       bool   `gorm:"default:true"`
	IsAdmin        bool   `gorm:"default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
