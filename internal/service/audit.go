package service

import (
	"encoding/json"

	"github.com/sirupsen/logrus"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/model"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/repository"
)

type AuditService interface {
	Record(adminID uint, action model.AuditAction, entityType string, entityID uint, changes map[string]interface{})
	RecentEntries(limit int) ([]model.AuditLog, error)
}

type auditService struct {
	auditRepository repository.AuditRepository
}

func newAuditService(auditRepository repository.AuditRepository) AuditService {
	return &auditService{
		auditRepository: auditRepository,
	}
}

// Record appends an audit entry. Audit writes never fail the admin action
// they describe, failures are only logged.
func (a *auditService) Record(adminID uint, action model.AuditAction, entityType string, entityID uint, changes map[string]interface{}) {
	entry := model.AuditLog{
		AdminID:    adminID,
		ActionType: action,
		EntityType: entityType,
		EntityID:   entityID,
	}

	if changes != nil {
		encoded, err := json.Marshal(changes)
		if err != nil {
			logrus.Errorf("Error marshaling audit changes: %v", err)
		} else {
			entry.Changes = encoded
		}
	}

	if _, err := a.auditRepository.Create(entry); err != nil {
		logrus.Errorf("Error recording audit entry: %v", err)
	}
}

func (a *auditService) RecentEntries(limit int) ([]model.AuditLog, error) {
	if limit <= 0 {
		limit = 100
	}
	return a.auditRepository.List(limit)
}
