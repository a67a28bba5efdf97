package repository

import (
	"errors"
	"fmt"

	"github.com/skhavindev/sathyabama-bus-tracker/internal/dto"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/model"
	"gorm.io/gorm"
)

type BusRepository interface {
	Create(bus model.Bus) (model.Bus, error)
	GetByNumber(busNumber string) (model.Bus, error)
	List() ([]model.Bus, error)
	Save(bus model.Bus) (model.Bus, error)
}

type bus struct {
	db *gorm.DB
}

func newBusRepository(db *gorm.DB) BusRepository {
	return &bus{
		db: db,
	}
}

func (b *bus) Create(bus model.Bus) (model.Bus, error) {
	result := b.db.Create(&bus)
	if result.Error != nil {
		return model.Bus{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return bus, nil
}

func (b *bus) GetByNumber(busNumber string) (model.Bus, error) {
	var found model.Bus
	result := b.db.Where("bus_number = ?", busNumber).First(&found)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.Bus{}, fmt.Errorf("%w: bus %s", dto.ErrNotFound, busNumber)
		}
		return model.Bus{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return found, nil
}

func (b *bus) List() ([]model.Bus, error) {
	var buses []model.Bus
	result := b.db.Order("bus_number").Find(&buses)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return buses, nil
}

func (b *bus) Save(bus model.Bus) (model.Bus, error) {
	result := b.db.Save(&bus)
	if result.Error != nil {
		return model.Bus{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return bus, nil
}
