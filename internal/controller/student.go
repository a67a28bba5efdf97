package controller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/service"
)

type StudentController interface {
	ActiveBuses(c echo.Context) error
	BusLocation(c echo.Context) error
}

type studentController struct {
	studentService service.StudentService
}

func newStudentController(studentService service.StudentService) StudentController {
	return &studentController{
		studentService: studentService,
	}
}

// parseBounds parses "lat1,lng1,lat2,lng2". Invalid bounds are ignored
// rather than rejected so a misbehaving map client still gets the full
// snapshot.
func parseBounds(raw string) *service.ViewportBounds {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return nil
	}
	values := make([]float64, 4)
	for i, part := range parts {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil
		}
		values[i] = value
	}
	return &service.ViewportBounds{
		Lat1: values[0],
		Lng1: values[1],
		Lat2: values[2],
		Lng2: values[3],
	}
}

func (s *studentController) ActiveBuses(c echo.Context) error {
	bounds := parseBounds(c.QueryParam("bounds"))
	return c.JSON(http.StatusOK, s.studentService.ActiveBuses(c.Request().Context(), bounds))
}

func (s *studentController) BusLocation(c echo.Context) error {
	busNumber := c.Param("busNumber")

	location, err := s.studentService.BusLocation(c.Request().Context(), busNumber)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, location)
}
