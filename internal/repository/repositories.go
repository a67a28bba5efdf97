package repository

import (
	"github.com/sirupsen/logrus"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/model"
	"gorm.io/gorm"
)

type Repositories interface {
	Driver() DriverRepository
	Bus() BusRepository
	Route() RouteRepository
	BusRoute() BusRouteRepository
	Location() LocationRepository
	Audit() AuditRepository
}

type repositories struct {
	driverRepository   DriverRepository
	busRepository      BusRepository
	routeRepository    RouteRepository
	busRouteRepository BusRouteRepository
	locationRepository LocationRepository
	auditRepository    AuditRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	err := db.AutoMigrate(
		&model.Driver{},
		&model.Bus{},
		&model.Route{},
		&model.BusRoute{},
		&model.BusLocationHistory{},
		&model.AuditLog{},
	)
	if err != nil {
		logrus.Panic(err)
	}
	driverRepository := newDriverRepository(db)
	busRepository := newBusRepository(db)
	routeRepository := newRouteRepository(db)
	busRouteRepository := newBusRouteRepository(db)
	locationRepository := newLocationRepository(db)
	auditRepository := newAuditRepository(db)
	return &repositories{
		driverRepository:   driverRepository,
		busRepository:      busRepository,
		routeRepository:    routeRepository,
		busRouteRepository: busRouteRepository,
		locationRepository: locationRepository,
		auditRepository:    auditRepository,
	}
}

func (r repositories) Driver() DriverRepository {
	return r.driverRepository
}

func (r repositories) Bus() BusRepository {
	return r.busRepository
}

func (r repositories) Route() RouteRepository {
	return r.routeRepository
}

func (r repositories) BusRoute() BusRouteRepository {
	return r.busRouteRepository
}

func (r repositories) Location() LocationRepository {
	return r.locationRepository
}

func (r repositories) Audit() AuditRepository {
	return r.auditRepository
}
