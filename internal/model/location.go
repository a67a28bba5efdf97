package model

import "time"

// BusLocationHistory is the append-only durable record of position samples.
// The live position lives in the expiring store; this table only backs
// history queries and the last-known-location fallback.
type BusLocationHistory struct {
	LocationID uint   `gorm:"primarykey"`
	BusNumber  string `gorm:"size:10;index:idx_bus_recorded_at;not null"`
	RouteID    *uint
	Latitude   float64 `gorm:"not null"`
	Longitude  float64 `gorm:"not null"`
	Speed      *float64
	Heading    *float64
	Accuracy   *float64
	RecordedAt time.Time `gorm:"index:idx_bus_recorded_at;autoCreateTime"`
}
