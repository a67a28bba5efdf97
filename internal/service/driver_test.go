package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skhavindev/sathyabama-bus-tracker/internal/dto"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/model"
)

type fakeBusRepository struct {
	buses map[string]model.Bus
}

func (f *fakeBusRepository) Create(bus model.Bus) (model.Bus, error) {
	f.buses[bus.BusNumber] = bus
	return bus, nil
}

func (f *fakeBusRepository) GetByNumber(busNumber string) (model.Bus, error) {
	bus, exists := f.buses[busNumber]
	if !exists {
		return model.Bus{}, fmt.Errorf("%w: bus %s", dto.ErrNotFound, busNumber)
	}
	return bus, nil
}

func (f *fakeBusRepository) List() ([]model.Bus, error) {
	return nil, nil
}

func (f *fakeBusRepository) Save(bus model.Bus) (model.Bus, error) {
	f.buses[bus.BusNumber] = bus
	return bus, nil
}

func newTestDriverService(t *testing.T) (DriverService, *fakeBusRepository, *fakeLocationRepository, *trackerService) {
	t.Helper()
	tracker, _ := newTestTracker(t)
	buses := &fakeBusRepository{buses: make(map[string]model.Bus)}
	locations := &fakeLocationRepository{}
	driver := newDriverService(buses, locations, tracker)
	return driver, buses, locations, tracker
}

func TestStartAndEndShift(t *testing.T) {
	driver, buses, _, tracker := newTestDriverService(t)
	ctx := context.Background()

	buses.buses["TN10"] = model.Bus{BusNumber: "TN10", Status: model.BusStatusInactive}

	bus, err := driver.StartShift("TN10", nil)
	require.NoError(t, err)
	assert.Equal(t, model.BusStatusActive, bus.Status)

	tracker.PublishLocation(ctx, dto.LocationUpdate{BusNumber: "TN10", Latitude: 1, Longitude: 2})

	require.NoError(t, driver.EndShift(ctx, "TN10"))
	assert.Equal(t, model.BusStatusInactive, buses.buses["TN10"].Status)
	assert.Empty(t, tracker.ActiveBuses(ctx))
}

func TestStartShiftUnknownBus(t *testing.T) {
	driver, _, _, _ := newTestDriverService(t)

	_, err := driver.StartShift("missing", nil)
	assert.ErrorIs(t, err, dto.ErrNotFound)
}

func TestUpdateLocationValidatesCoordinates(t *testing.T) {
	driver, _, _, _ := newTestDriverService(t)
	ctx := context.Background()

	_, err := driver.UpdateLocation(ctx, dto.LocationUpdate{BusNumber: "TN11", Latitude: 91, Longitude: 0})
	assert.ErrorIs(t, err, dto.ErrInvalidInput)

	_, err = driver.UpdateLocation(ctx, dto.LocationUpdate{BusNumber: "TN11", Latitude: 0, Longitude: -181})
	assert.ErrorIs(t, err, dto.ErrInvalidInput)

	_, err = driver.UpdateLocation(ctx, dto.LocationUpdate{Latitude: 0, Longitude: 0})
	assert.ErrorIs(t, err, dto.ErrInvalidInput)
}

func TestUpdateLocationWritesCacheAndHistory(t *testing.T) {
	driver, _, locations, tracker := newTestDriverService(t)
	ctx := context.Background()

	cached, err := driver.UpdateLocation(ctx, dto.LocationUpdate{
		BusNumber: "TN12",
		Latitude:  12.97,
		Longitude: 80.24,
		Speed:     floatPtr(10),
	})
	require.NoError(t, err)
	assert.True(t, cached)

	require.Len(t, locations.history, 1)
	assert.Equal(t, "TN12", locations.history[0].BusNumber)

	record, exists := tracker.GetBusLocation(ctx, "TN12")
	require.True(t, exists)
	assert.Equal(t, dto.MotionStateMoving, record.Status)
}
