package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skhavindev/sathyabama-bus-tracker/internal/dto"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/model"
)

type fakeRouteRepository struct {
	routes map[uint]model.Route
}

func (f *fakeRouteRepository) Create(route model.Route) (model.Route, error) {
	f.routes[route.RouteID] = route
	return route, nil
}

func (f *fakeRouteRepository) GetByID(id uint) (model.Route, error) {
	route, exists := f.routes[id]
	if !exists {
		return model.Route{}, fmt.Errorf("%w: route %d", dto.ErrNotFound, id)
	}
	return route, nil
}

func (f *fakeRouteRepository) List() ([]model.Route, error) {
	return nil, nil
}

func (f *fakeRouteRepository) SearchByName(string) ([]model.Route, error) {
	return nil, nil
}

type fakeLocationRepository struct {
	history []model.BusLocationHistory
}

func (f *fakeLocationRepository) Append(location model.BusLocationHistory) (model.BusLocationHistory, error) {
	if location.RecordedAt.IsZero() {
		location.RecordedAt = time.Now().UTC()
	}
	f.history = append(f.history, location)
	return location, nil
}

func (f *fakeLocationRepository) LatestByBus(busNumber string) (model.BusLocationHistory, error) {
	for i := len(f.history) - 1; i >= 0; i-- {
		if f.history[i].BusNumber == busNumber {
			return f.history[i], nil
		}
	}
	return model.BusLocationHistory{}, fmt.Errorf("%w: no locations for bus %s", dto.ErrNotFound, busNumber)
}

func newTestStudentService(t *testing.T) (StudentService, *trackerService, *fakeRouteRepository, *fakeLocationRepository) {
	t.Helper()
	tracker, _ := newTestTracker(t)
	routes := &fakeRouteRepository{routes: make(map[uint]model.Route)}
	locations := &fakeLocationRepository{}
	student := newStudentService(routes, locations, tracker)
	return student, tracker, routes, locations
}

func TestActiveBusesResolvesRouteName(t *testing.T) {
	student, tracker, routes, _ := newTestStudentService(t)
	ctx := context.Background()

	routes.routes[7] = model.Route{RouteID: 7, RouteName: "Tambaram Express"}
	routeID := uint(7)
	tracker.PublishLocation(ctx, dto.LocationUpdate{
		BusNumber: "TN01",
		RouteID:   &routeID,
		Latitude:  12.9,
		Longitude: 80.1,
	})

	response := student.ActiveBuses(ctx, nil)
	require.Len(t, response.Buses, 1)
	require.NotNil(t, response.Buses[0].RouteName)
	assert.Equal(t, "Tambaram Express", *response.Buses[0].RouteName)
}

func TestActiveBusesViewportFilter(t *testing.T) {
	student, tracker, _, _ := newTestStudentService(t)
	ctx := context.Background()

	tracker.PublishLocation(ctx, dto.LocationUpdate{BusNumber: "inside", Latitude: 12.9, Longitude: 80.1})
	tracker.PublishLocation(ctx, dto.LocationUpdate{BusNumber: "outside", Latitude: 28.6, Longitude: 77.2})

	response := student.ActiveBuses(ctx, &ViewportBounds{Lat1: 12, Lng1: 79, Lat2: 13, Lng2: 81})
	require.Len(t, response.Buses, 1)
	assert.Equal(t, "inside", response.Buses[0].BusNumber)
}

func TestBusLocationFallsBackToHistory(t *testing.T) {
	student, _, _, locations := newTestStudentService(t)
	ctx := context.Background()

	speed := 20.0
	locations.Append(model.BusLocationHistory{
		BusNumber: "TN09",
		Latitude:  12.5,
		Longitude: 80.0,
		Speed:     &speed,
	})

	record, err := student.BusLocation(ctx, "TN09")
	require.NoError(t, err)
	assert.Equal(t, "TN09", record.BusNumber)
	// A record served from history is no longer fresh.
	assert.Equal(t, dto.MotionStateStopped, record.Status)
}

func TestBusLocationUnknownBus(t *testing.T) {
	student, _, _, _ := newTestStudentService(t)

	_, err := student.BusLocation(context.Background(), "unknown")
	assert.ErrorIs(t, err, dto.ErrNotFound)
}
