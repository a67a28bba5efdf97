package controller

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	ctx "github.com/skhavindev/sathyabama-bus-tracker/internal/context"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/dto"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/model"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/service"
)

type AdminController interface {
	ListDrivers(c echo.Context) error
	GetDriver(c echo.Context) error
	ApproveDriver(c echo.Context) error
	RejectDriver(c echo.Context) error
	UpdateDriver(c echo.Context) error
	DeleteDriver(c echo.Context) error
	CreateBusRoute(c echo.Context) error
	Stats(c echo.Context) error
	ExportDrivers(c echo.Context) error
	AuditLogs(c echo.Context) error
}

type adminController struct {
	adminService service.AdminService
	auditService service.AuditService
}

func newAdminController(adminService service.AdminService, auditService service.AuditService) AdminController {
	return &adminController{
		adminService: adminService,
		auditService: auditService,
	}
}

func requireAdmin(c echo.Context) (model.Driver, error) {
	admin, ok := ctx.GetDriverFromContext(c.Request().Context())
	if !ok {
		return model.Driver{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return admin, nil
}

func driverIDParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid driver id")
	}
	return uint(id), nil
}

func (a *adminController) ListDrivers(c echo.Context) error {
	drivers, err := a.adminService.ListDrivers(c.QueryParam("status_filter"))
	if err != nil {
		return httpError(err)
	}

	responses := make([]dto.DriverResponse, 0, len(drivers))
	for _, driver := range drivers {
		responses = append(responses, driverResponse(driver))
	}
	return c.JSON(http.StatusOK, responses)
}

func (a *adminController) GetDriver(c echo.Context) error {
	id, err := driverIDParam(c)
	if err != nil {
		return err
	}

	driver, err := a.adminService.GetDriver(id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, driverResponse(driver))
}

func (a *adminController) ApproveDriver(c echo.Context) error {
	admin, err := requireAdmin(c)
	if err != nil {
		return err
	}
	id, err := driverIDParam(c)
	if err != nil {
		return err
	}

	driver, err := a.adminService.ApproveDriver(admin, id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": fmt.Sprintf("Driver %s approved successfully", driver.Name),
		"driver":  driverResponse(driver),
	})
}

func (a *adminController) RejectDriver(c echo.Context) error {
	admin, err := requireAdmin(c)
	if err != nil {
		return err
	}
	id, err := driverIDParam(c)
	if err != nil {
		return err
	}

	driver, err := a.adminService.RejectDriver(admin, id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": fmt.Sprintf("Driver %s deactivated", driver.Name),
		"driver":  driverResponse(driver),
	})
}

func (a *adminController) UpdateDriver(c echo.Context) error {
	admin, err := requireAdmin(c)
	if err != nil {
		return err
	}
	id, err := driverIDParam(c)
	if err != nil {
		return err
	}

	var request dto.DriverUpdateRequest
	if err := c.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	driver, err := a.adminService.UpdateDriver(admin, id, request)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Driver updated successfully",
		"driver":  driverResponse(driver),
	})
}

func (a *adminController) DeleteDriver(c echo.Context) error {
	admin, err := requireAdmin(c)
	if err != nil {
		return err
	}
	id, err := driverIDParam(c)
	if err != nil {
		return err
	}

	if err := a.adminService.DeleteDriver(admin, id); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Driver deleted successfully",
	})
}

type busRouteCreateRequest struct {
	SlNo        int    `json:"sl_no"`
	BusRoute    string `json:"bus_route"`
	RouteNo     string `json:"route_no"`
	VehicleNo   string `json:"vehicle_no"`
	DriverID    *uint  `json:"driver_id,omitempty"`
	DriverName  string `json:"driver_name"`
	PhoneNumber string `json:"phone_number"`
}

func (a *adminController) CreateBusRoute(c echo.Context) error {
	admin, err := requireAdmin(c)
	if err != nil {
		return err
	}

	var request busRouteCreateRequest
	if err := c.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := a.adminService.CreateBusRoute(admin, model.BusRoute{
		SlNo:        request.SlNo,
		BusRoute:    request.BusRoute,
		RouteNo:     request.RouteNo,
		VehicleNo:   request.VehicleNo,
		DriverID:    request.DriverID,
		DriverName:  request.DriverName,
		PhoneNumber: request.PhoneNumber,
		IsActive:    true,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, created)
}

func (a *adminController) Stats(c echo.Context) error {
	stats, err := a.adminService.Stats()
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (a *adminController) ExportDrivers(c echo.Context) error {
	csv, err := a.adminService.ExportDriversCSV()
	if err != nil {
		return httpError(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="drivers.csv"`)
	return c.Blob(http.StatusOK, "text/csv", []byte(csv))
}

func (a *adminController) AuditLogs(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		limit = parsed
	}

	entries, err := a.auditService.RecentEntries(limit)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, entries)
}
