package model

import "time"

type Bus struct {
	BusID     uint      `gorm:"primarykey"`
	BusNumber string    `gorm:"size:10;uniqueIndex;not null"`
	Capacity  int       `gorm:"default:50"`
	Status    BusStatus `gorm:"size:20;not null;default:inactive"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
