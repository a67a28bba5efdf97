package model

import (
	"time"

	"gorm.io/datatypes"
)

type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

type AuditLog struct {
	LogID      uint        `gorm:"primarykey"`
	AdminID    uint        `gorm:"not null"`
	ActionType AuditAction `gorm:"size:20;not null"`
	EntityType string      `gorm:"size:50;not null"`
	EntityID   uint        `gorm:"not null"`
	Changes    datatypes.JSON
	CreatedAt  time.Time
}
