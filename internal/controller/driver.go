package controller

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	ctx "github.com/skhavindev/sathyabama-bus-tracker/internal/context"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/dto"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/service"
)

type DriverController interface {
	Profile(c echo.Context) error
	StartShift(c echo.Context) error
	EndShift(c echo.Context) error
	UpdateLocation(c echo.Context) error
}

type driverController struct {
	driverService service.DriverService
}

func newDriverController(driverService service.DriverService) DriverController {
	return &driverController{
		driverService: driverService,
	}
}

func (d *driverController) Profile(c echo.Context) error {
	driver, ok := ctx.GetDriverFromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return c.JSON(http.StatusOK, driverResponse(driver))
}

func (d *driverController) StartShift(c echo.Context) error {
	busNumber := c.QueryParam("bus_number")
	if busNumber == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "bus_number is required")
	}

	var routeID *uint
	if raw := c.QueryParam("route_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid route_id")
		}
		value := uint(parsed)
		routeID = &value
	}

	if _, err := d.driverService.StartShift(busNumber, routeID); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":     "shift_started",
		"bus_number": busNumber,
		"route_id":   routeID,
	})
}

func (d *driverController) EndShift(c echo.Context) error {
	busNumber := c.QueryParam("bus_number")
	if busNumber == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "bus_number is required")
	}

	if err := d.driverService.EndShift(c.Request().Context(), busNumber); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":     "shift_ended",
		"bus_number": busNumber,
	})
}

func (d *driverController) UpdateLocation(c echo.Context) error {
	var update dto.LocationUpdate
	if err := c.Bind(&update); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cached, err := d.driverService.UpdateLocation(c.Request().Context(), update)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":     "location_updated",
		"bus_number": update.BusNumber,
		"cached":     cached,
	})
}
