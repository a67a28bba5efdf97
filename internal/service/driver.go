package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/dto"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/model"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/repository"
)

type DriverService interface {
	StartShift(busNumber string, routeID *uint) (model.Bus, error)
	EndShift(ctx context.Context, busNumber string) error
	UpdateLocation(ctx context.Context, update dto.LocationUpdate) (bool, error)
}

type driverService struct {
	busRepository      repository.BusRepository
	locationRepository repository.LocationRepository
	trackerService     TrackerService
}

func newDriverService(busRepository repository.BusRepository, locationRepository repository.LocationRepository, trackerService TrackerService) DriverService {
	return &driverService{
		busRepository:      busRepository,
		locationRepository: locationRepository,
		trackerService:     trackerService,
	}
}

func (d *driverService) StartShift(busNumber string, routeID *uint) (model.Bus, error) {
	bus, err := d.busRepository.GetByNumber(busNumber)
	if err != nil {
		return model.Bus{}, err
	}

	bus.Status = model.BusStatusActive
	return d.busRepository.Save(bus)
}

func (d *driverService) EndShift(ctx context.Context, busNumber string) error {
	bus, err := d.busRepository.GetByNumber(busNumber)
	if err == nil {
		bus.Status = model.BusStatusInactive
		if _, err := d.busRepository.Save(bus); err != nil {
			return err
		}
	}

	d.trackerService.StopTracking(ctx, busNumber)
	return nil
}

// UpdateLocation publishes a position sample to the live cache and appends it
// to the durable history table. The history write is the fallback that keeps
// last-known positions available when the cache write failed or the record
// has expired.
func (d *driverService) UpdateLocation(ctx context.Context, update dto.LocationUpdate) (bool, error) {
	if update.BusNumber == "" {
		return false, fmt.Errorf("%w: bus_number is required", dto.ErrInvalidInput)
	}
	if update.Latitude < -90 || update.Latitude > 90 || update.Longitude < -180 || update.Longitude > 180 {
		return false, fmt.Errorf("%w: coordinates out of range", dto.ErrInvalidInput)
	}

	cached := d.trackerService.PublishLocation(ctx, update)
	if !cached {
		logrus.Warnf("Cache write failed for bus %s, durable history is the only copy", update.BusNumber)
	}

	_, err := d.locationRepository.Append(model.BusLocationHistory{
		BusNumber: update.BusNumber,
		RouteID:   update.RouteID,
		Latitude:  update.Latitude,
		Longitude: update.Longitude,
		Speed:     update.Speed,
		Heading:   update.Heading,
		Accuracy:  update.Accuracy,
	})
	if err != nil {
		return cached, err
	}

	return cached, nil
}
