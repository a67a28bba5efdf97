package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skhavindev/sathyabama-bus-tracker/internal/dto"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/model"
)

func newTestRouteService(t *testing.T) (RouteService, *fakeRouteRepository, *time.Time) {
	t.Helper()
	store, clock := newTestMemoryStore(t)
	routes := &fakeRouteRepository{routes: make(map[uint]model.Route)}
	buses := &fakeBusRepository{buses: make(map[string]model.Bus)}
	service := newRouteService(routes, newFakeBusRouteRepository(), buses, store, time.Hour)
	return service, routes, clock
}

func TestGetRouteServesFromCacheAfterFirstRead(t *testing.T) {
	service, routes, _ := newTestRouteService(t)
	routes.routes[7] = model.Route{RouteID: 7, RouteName: "Tambaram Express"}

	first, err := service.GetRoute(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Tambaram Express", first.RouteName)

	// A repository change is invisible until the cache entry expires.
	routes.routes[7] = model.Route{RouteID: 7, RouteName: "Renamed"}

	second, err := service.GetRoute(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Tambaram Express", second.RouteName)
}

func TestGetRouteCacheExpires(t *testing.T) {
	service, routes, clock := newTestRouteService(t)
	routes.routes[7] = model.Route{RouteID: 7, RouteName: "Tambaram Express"}

	_, err := service.GetRoute(context.Background(), 7)
	require.NoError(t, err)

	routes.routes[7] = model.Route{RouteID: 7, RouteName: "Renamed"}
	*clock = clock.Add(time.Hour + time.Second)

	route, err := service.GetRoute(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", route.RouteName)
}

func TestGetRouteUnknown(t *testing.T) {
	service, _, _ := newTestRouteService(t)

	_, err := service.GetRoute(context.Background(), 404)
	assert.ErrorIs(t, err, dto.ErrNotFound)
}

func TestCreateRouteRequiresExistingBus(t *testing.T) {
	service, _, _ := newTestRouteService(t)

	_, err := service.CreateRoute(model.Route{RouteName: "Orphan", CreatedByBus: "TN99ZZ9999"})
	assert.ErrorIs(t, err, dto.ErrNotFound)
}
