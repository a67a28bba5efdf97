package repository

import (
	"errors"
	"fmt"

	"github.com/skhavindev/sathyabama-bus-tracker/internal/dto"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/model"
	"gorm.io/gorm"
)

type LocationRepository interface {
	Append(location model.BusLocationHistory) (model.BusLocationHistory, error)
	LatestByBus(busNumber string) (model.BusLocationHistory, error)
}

type location struct {
	db *gorm.DB
}

func newLocationRepository(db *gorm.DB) LocationRepository {
	return &location{
		db: db,
	}
}

func (l *location) Append(location model.BusLocationHistory) (model.BusLocationHistory, error) {
	result := l.db.Create(&location)
	if result.Error != nil {
		return model.BusLocationHistory{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return location, nil
}

func (l *location) LatestByBus(busNumber string) (model.BusLocationHistory, error) {
	var found model.BusLocationHistory
	result := l.db.Where("bus_number = ?", busNumber).Order("recorded_at DESC").First(&found)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.BusLocationHistory{}, fmt.Errorf("%w: no locations for bus %s", dto.ErrNotFound, busNumber)
		}
		return model.BusLocationHistory{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return found, nil
}
