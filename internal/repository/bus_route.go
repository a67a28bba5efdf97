package repository

import (
	"errors"
	"fmt"

	"github.com/skhavindev/sathyabama-bus-tracker/internal/dto"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/model"
	"gorm.io/gorm"
)

type BusRouteRepository interface {
	Create(busRoute model.BusRoute) (model.BusRoute, error)
	GetByVehicle(vehicleNo string) (model.BusRoute, error)
	List() ([]model.BusRoute, error)
}

type busRoute struct {
	db *gorm.DB
}

func newBusRouteRepository(db *gorm.DB) BusRouteRepository {
	return &busRoute{
		db: db,
	}
}

func (b *busRoute) Create(busRoute model.BusRoute) (model.BusRoute, error) {
	result := b.db.Create(&busRoute)
	if result.Error != nil {
		return model.BusRoute{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return busRoute, nil
}

func (b *busRoute) GetByVehicle(vehicleNo string) (model.BusRoute, error) {
	var found model.BusRoute
	result := b.db.Where("vehicle_no = ?", vehicleNo).First(&found)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.BusRoute{}, fmt.Errorf("%w: vehicle %s", dto.ErrNotFound, vehicleNo)
		}
		return model.BusRoute{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return found, nil
}

func (b *busRoute) List() ([]model.BusRoute, error) {
	var busRoutes []model.BusRoute
	result := b.db.Order("sl_no").Find(&busRoutes)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return busRoutes, nil
}
