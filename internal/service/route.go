package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/dto"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/model"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/repository"
)

const routeKeyBase = "route:"

type RouteService interface {
	CreateRoute(route model.Route) (model.Route, error)
	GetRoute(ctx context.Context, id uint) (model.Route, error)
	ListRoutes() ([]model.Route, error)
	SearchRoutes(query string) ([]model.Route, error)
	Roster() ([]model.BusRoute, error)
}

type routeService struct {
	routeRepository    repository.RouteRepository
	busRouteRepository repository.BusRouteRepository
	busRepository      repository.BusRepository
	store              ExpiringStore
	cacheTTL           time.Duration
}

func newRouteService(routeRepository repository.RouteRepository, busRouteRepository repository.BusRouteRepository, busRepository repository.BusRepository, store ExpiringStore, cacheTTL time.Duration) RouteService {
	return &routeService{
		routeRepository:    routeRepository,
		busRouteRepository: busRouteRepository,
		busRepository:      busRepository,
		store:              store,
		cacheTTL:           cacheTTL,
	}
}

func routeKey(id uint) string {
	return routeKeyBase + strconv.FormatUint(uint64(id), 10)
}

func (r *routeService) CreateRoute(route model.Route) (model.Route, error) {
	if route.RouteName == "" {
		return model.Route{}, fmt.Errorf("%w: route_name is required", dto.ErrInvalidInput)
	}

	if _, err := r.busRepository.GetByNumber(route.CreatedByBus); err != nil {
		return model.Route{}, err
	}

	return r.routeRepository.Create(route)
}

// GetRoute is a read-through cache: route coordinates change rarely but are
// fetched by every connected map, so hits skip Postgres entirely.
func (r *routeService) GetRoute(ctx context.Context, id uint) (model.Route, error) {
	if encoded, exists := r.store.Get(ctx, routeKey(id)); exists {
		var cached model.Route
		if err := json.Unmarshal(encoded, &cached); err == nil {
			return cached, nil
		}
		logrus.Errorf("Discarding corrupt cached route %d", id)
		r.store.Delete(ctx, routeKey(id))
	}

	route, err := r.routeRepository.GetByID(id)
	if err != nil {
		return model.Route{}, err
	}

	if encoded, err := json.Marshal(route); err == nil {
		r.store.Put(ctx, routeKey(id), encoded, r.cacheTTL)
	}

	return route, nil
}

func (r *routeService) ListRoutes() ([]model.Route, error) {
	return r.routeRepository.List()
}

func (r *routeService) SearchRoutes(query string) ([]model.Route, error) {
	return r.routeRepository.SearchByName(query)
}

// Roster lists the vehicle/driver assignment table maintained by admins.
func (r *routeService) Roster() ([]model.BusRoute, error) {
	return r.busRouteRepository.List()
}
