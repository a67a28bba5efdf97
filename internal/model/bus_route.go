package model

import "time"

// BusRoute is one row of the assignment roster linking a vehicle and its
// driver to a named route.
type BusRoute struct {
	RouteID     uint   `gorm:"primarykey"`
	SlNo        int    `gorm:"not null"`
	BusRoute    string `gorm:"not null"`
	RouteNo     string `gorm:"size:10;not null"`
	VehicleNo   string `gorm:"size:20;uniqueIndex;not null"`
	DriverID    *uint
	DriverName  string `gorm:"size:100;not null"`
	PhoneNumber string `gorm:"size:15;not null"`
	IsActive    bool   `gorm:"default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
