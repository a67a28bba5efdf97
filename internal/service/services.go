package service

import (
	"github.com/skhavindev/sathyabama-bus-tracker/internal/client"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/dto"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/repository"
)

type Services interface {
	Auth() AuthService
	Driver() DriverService
	Student() StudentService
	Bus() BusService
	Route() RouteService
	Tracker() TrackerService
	Hub() Hub
	Admin() AdminService
	Audit() AuditService
}

type services struct {
	authService    AuthService
	driverService  DriverService
	studentService StudentService
	busService     BusService
	routeService   RouteService
	trackerService TrackerService
	hub            Hub
	adminService   AdminService
	auditService   AuditService
}

func NewServices(repositories repository.Repositories, config dto.Config, clients client.Clients) Services {
	store := newExpiringStore(clients.RedisClient())
	trackerService := newTrackerService(store, config.LocationTTL)
	auditService := newAuditService(repositories.Audit())
	return &services{
		authService:    newAuthService(repositories.Driver(), config),
		driverService:  newDriverService(repositories.Bus(), repositories.Location(), trackerService),
		studentService: newStudentService(repositories.Route(), repositories.Location(), trackerService),
		busService:     newBusService(repositories.Bus()),
		routeService:   newRouteService(repositories.Route(), repositories.BusRoute(), repositories.Bus(), store, config.RouteCacheTTL),
		trackerService: trackerService,
		hub:            newHub(trackerService),
		adminService:   newAdminService(repositories.Driver(), repositories.BusRoute(), auditService),
		auditService:   auditService,
	}
}

func (s services) Auth() AuthService {
	return s.authService
}

func (s services) Driver() DriverService {
	return s.driverService
}

func (s services) Student() StudentService {
	return s.studentService
}

func (s services) Bus() BusService {
	return s.busService
}

func (s services) Route() RouteService {
	return s.routeService
}

func (s services) Tracker() TrackerService {
	return s.trackerService
}

func (s services) Hub() Hub {
	return s.hub
}

func (s services) Admin() AdminService {
	return s.adminService
}

func (s services) Audit() AuditService {
	return s.auditService
}
