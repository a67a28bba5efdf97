package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/dto"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/service"
)

type Controllers interface {
	Auth() AuthController
	Driver() DriverController
	Student() StudentController
	Bus() BusController
	RouteInfo() RouteController
	Admin() AdminController
	Live() LiveController
	Info() InfoController

	Route(e *echo.Echo)
}

type controllers struct {
	authController    AuthController
	driverController  DriverController
	studentController StudentController
	busController     BusController
	routeController   RouteController
	adminController   AdminController
	liveController    LiveController
	infoController    InfoController

	authMiddleware  echo.MiddlewareFunc
	adminMiddleware echo.MiddlewareFunc
}

func NewControllers(services service.Services) Controllers {
	authController := newAuthController(services.Auth())
	driverController := newDriverController(services.Driver())
	studentController := newStudentController(services.Student())
	busController := newBusController(services.Bus())
	routeController := newRouteController(services.Route())
	adminController := newAdminController(services.Admin(), services.Audit())
	liveController := newLiveController(services.Hub())
	infoController := newInfoController()
	return &controllers{
		authController:    authController,
		driverController:  driverController,
		studentController: studentController,
		busController:     busController,
		routeController:   routeController,
		adminController:   adminController,
		liveController:    liveController,
		infoController:    infoController,
		authMiddleware:    AuthMiddleware(services.Auth()),
		adminMiddleware:   AdminMiddleware(),
	}
}

func (c controllers) Auth() AuthController {
	return c.authController
}

func (c controllers) Driver() DriverController {
	return c.driverController
}

func (c controllers) Student() StudentController {
	return c.studentController
}

func (c controllers) Bus() BusController {
	return c.busController
}

func (c controllers) RouteInfo() RouteController {
	return c.routeController
}

func (c controllers) Admin() AdminController {
	return c.adminController
}

func (c controllers) Live() LiveController {
	return c.liveController
}

func (c controllers) Info() InfoController {
	return c.infoController
}

func (c controllers) Route(e *echo.Echo) {
	e.GET("/", c.infoController.Info)
	e.GET("/health", c.infoController.Health)

	api := e.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/register", c.authController.Register)
	auth.POST("/login", c.authController.Login)
	auth.GET("/drivers", c.authController.ListDrivers)

	driver := api.Group("/driver", c.authMiddleware)
	driver.GET("/profile", c.driverController.Profile)
	driver.POST("/start-shift", c.driverController.StartShift)
	driver.POST("/end-shift", c.driverController.EndShift)
	driver.POST("/location/update", c.driverController.UpdateLocation)

	student := api.Group("/student")
	student.GET("/buses/active", c.studentController.ActiveBuses)
	student.GET("/buses/:busNumber", c.studentController.BusLocation)

	buses := api.Group("/buses")
	buses.GET("/list", c.busController.ListNumbers)
	buses.GET("", c.busController.List)
	buses.GET("/:busNumber", c.busController.Get)
	buses.POST("/create", c.busController.Create, c.authMiddleware, c.adminMiddleware)

	routes := api.Group("/routes")
	routes.GET("", c.routeController.List)
	routes.GET("/roster", c.routeController.Roster)
	routes.GET("/search/by-name", c.routeController.Search)
	routes.GET("/:id", c.routeController.Get)
	routes.POST("/create", c.routeController.Create, c.authMiddleware)

	admin := api.Group("/admin", c.authMiddleware, c.adminMiddleware)
	admin.GET("/drivers", c.adminController.ListDrivers)
	admin.GET("/drivers/export", c.adminController.ExportDrivers)
	admin.GET("/drivers/:id", c.adminController.GetDriver)
	admin.PATCH("/drivers/:id/approve", c.adminController.ApproveDriver)
	admin.PATCH("/drivers/:id/reject", c.adminController.RejectDriver)
	admin.PATCH("/drivers/:id", c.adminController.UpdateDriver)
	admin.DELETE("/drivers/:id", c.adminController.DeleteDriver)
	admin.POST("/bus-routes", c.adminController.CreateBusRoute)
	admin.GET("/stats", c.adminController.Stats)
	admin.GET("/audit-logs", c.adminController.AuditLogs)

	e.GET("/ws/live-updates", c.liveController.LiveUpdates)
}

// httpError maps the service error taxonomy onto HTTP statuses.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, dto.ErrInvalidInput):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, dto.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, dto.ErrAlreadyExists):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, dto.ErrNotAuthorized):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, dto.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
