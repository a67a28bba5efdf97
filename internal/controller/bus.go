package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/service"
)

type BusController interface {
	List(c echo.Context) error
	ListNumbers(c echo.Context) error
	Get(c echo.Context) error
	Create(c echo.Context) error
}

type busController struct {
	busService service.BusService
}

func newBusController(busService service.BusService) BusController {
	return &busController{
		busService: busService,
	}
}

type busCreateRequest struct {
	BusNumber string `json:"bus_number"`
	Capacity  int    `json:"capacity"`
}

func (b *busController) List(c echo.Context) error {
	buses, err := b.busService.ListBuses()
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, buses)
}

func (b *busController) ListNumbers(c echo.Context) error {
	numbers, err := b.busService.ListBusNumbers()
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string][]string{
		"buses": numbers,
	})
}

func (b *busController) Get(c echo.Context) error {
	bus, err := b.busService.GetBus(c.Param("busNumber"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, bus)
}

func (b *busController) Create(c echo.Context) error {
	var request busCreateRequest
	if err := c.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	bus, err := b.busService.CreateBus(request.BusNumber, request.Capacity)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, bus)
}
