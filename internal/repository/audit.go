package repository

import (
	"fmt"

	"github.com/skhavindev/sathyabama-bus-tracker/internal/dto"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/model"
	"gorm.io/gorm"
)

type AuditRepository interface {
	Create(entry model.AuditLog) (model.AuditLog, error)
	List(limit int) ([]model.AuditLog, error)
}

type audit struct {
	db *gorm.DB
}

func newAuditRepository(db *gorm.DB) AuditRepository {
	return &audit{
		db: db,
	}
}

func (a *audit) Create(entry model.AuditLog) (model.AuditLog, error) {
	result := a.db.Create(&entry)
	if result.Error != nil {
		return model.AuditLog{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return entry, nil
}

func (a *audit) List(limit int) ([]model.AuditLog, error) {
	var entries []model.AuditLog
	result := a.db.Order("created_at DESC").Limit(limit).Find(&entries)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return entries, nil
}
