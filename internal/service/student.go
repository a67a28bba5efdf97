package service

import (
	"context"
	"time"

	"github.com/skhavindev/sathyabama-bus-tracker/internal/dto"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/repository"
)

// ViewportBounds is an optional map-viewport filter for the active-bus
// snapshot: lat1,lng1 is the south-west corner, lat2,lng2 the north-east.
type ViewportBounds struct {
	Lat1 float64
	Lng1 float64
	Lat2 float64
	Lng2 float64
}

func (b ViewportBounds) contains(lat, lng float64) bool {
	return b.Lat1 <= lat && lat <= b.Lat2 && b.Lng1 <= lng && lng <= b.Lng2
}

type StudentService interface {
	ActiveBuses(ctx context.Context, bounds *ViewportBounds) dto.ActiveBusesResponse
	BusLocation(ctx context.Context, busNumber string) (dto.BusLocation, error)
}

type studentService struct {
	routeRepository    repository.RouteRepository
	locationRepository repository.LocationRepository
	trackerService     TrackerService
}

func newStudentService(routeRepository repository.RouteRepository, locationRepository repository.LocationRepository, trackerService TrackerService) StudentService {
	return &studentService{
		routeRepository:    routeRepository,
		locationRepository: locationRepository,
		trackerService:     trackerService,
	}
}

func (s *studentService) ActiveBuses(ctx context.Context, bounds *ViewportBounds) dto.ActiveBusesResponse {
	snapshot := s.trackerService.ActiveBuses(ctx)

	buses := make([]dto.BusLocation, 0, len(snapshot))
	for _, bus := range snapshot {
		if bounds != nil && !bounds.contains(bus.Latitude, bus.Longitude) {
			continue
		}
		s.resolveRouteName(&bus)
		buses = append(buses, bus)
	}

	return dto.ActiveBusesResponse{
		Buses:     buses,
		Timestamp: time.Now().UTC(),
	}
}

// BusLocation reads the live cache first and falls back to the last durable
// history row, reported as stopped since the record is no longer fresh.
func (s *studentService) BusLocation(ctx context.Context, busNumber string) (dto.BusLocation, error) {
	if record, exists := s.trackerService.GetBusLocation(ctx, busNumber); exists {
		s.resolveRouteName(&record)
		return record, nil
	}

	last, err := s.locationRepository.LatestByBus(busNumber)
	if err != nil {
		return dto.BusLocation{}, err
	}

	record := dto.BusLocation{
		BusNumber:  last.BusNumber,
		RouteID:    last.RouteID,
		Latitude:   last.Latitude,
		Longitude:  last.Longitude,
		Speed:      last.Speed,
		Heading:    last.Heading,
		Accuracy:   last.Accuracy,
		Status:     dto.MotionStateStopped,
		LastUpdate: last.RecordedAt,
	}
	s.resolveRouteName(&record)
	return record, nil
}

func (s *studentService) resolveRouteName(bus *dto.BusLocation) {
	if bus.RouteID == nil {
		return
	}
	route, err := s.routeRepository.GetByID(*bus.RouteID)
	if err != nil {
		return
	}
	bus.RouteName = &route.RouteName
}
