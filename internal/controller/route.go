package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/model"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/service"
)

type RouteController interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	Create(c echo.Context) error
	Search(c echo.Context) error
	Roster(c echo.Context) error
}

type routeController struct {
	routeService service.RouteService
}

func newRouteController(routeService service.RouteService) RouteController {
	return &routeController{
		routeService: routeService,
	}
}

type routeCoordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
	Seq int     `json:"seq"`
}

type routeCreateRequest struct {
	RouteName            string            `json:"route_name"`
	BusNumber            string            `json:"bus_number"`
	Coordinates          []routeCoordinate `json:"coordinates"`
	TotalDistanceKm      *float64          `json:"total_distance_km,omitempty"`
	EstimatedDurationMin *int              `json:"estimated_duration_min,omitempty"`
}

func (r *routeController) List(c echo.Context) error {
	routes, err := r.routeService.ListRoutes()
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string][]model.Route{
		"routes": routes,
	})
}

func (r *routeController) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid route id")
	}

	route, err := r.routeService.GetRoute(c.Request().Context(), uint(id))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, route)
}

func (r *routeController) Create(c echo.Context) error {
	var request routeCreateRequest
	if err := c.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	coordinates, err := json.Marshal(request.Coordinates)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	route, err := r.routeService.CreateRoute(model.Route{
		RouteName:            request.RouteName,
		CreatedByBus:         request.BusNumber,
		Coordinates:          coordinates,
		TotalDistanceKm:      request.TotalDistanceKm,
		EstimatedDurationMin: request.EstimatedDurationMin,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, route)
}

type routeSearchResult struct {
	RouteID   uint   `json:"route_id"`
	RouteName string `json:"route_name"`
}

func (r *routeController) Roster(c echo.Context) error {
	roster, err := r.routeService.Roster()
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string][]model.BusRoute{
		"bus_routes": roster,
	})
}

func (r *routeController) Search(c echo.Context) error {
	query := c.QueryParam("q")

	routes, err := r.routeService.SearchRoutes(query)
	if err != nil {
		return httpError(err)
	}

	results := make([]routeSearchResult, 0, len(routes))
	for _, route := range routes {
		results = append(results, routeSearchResult{
			RouteID:   route.RouteID,
			RouteName: route.RouteName,
		})
	}
	return c.JSON(http.StatusOK, map[string][]routeSearchResult{
		"routes": results,
	})
}
