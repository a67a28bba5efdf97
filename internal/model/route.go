package model

import (
	"time"

	"gorm.io/datatypes"
)

type Route struct {
	RouteID              uint           `gorm:"primarykey"`
	RouteName            string         `gorm:"size:100;index;not null"`
	CreatedByBus         string         `gorm:"size:10;not null"`
	Coordinates          datatypes.JSON `gorm:"not null"`
	TotalDistanceKm      *float64
	EstimatedDurationMin *int
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
