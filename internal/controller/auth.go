package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/dto"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/model"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/service"
)

type AuthController interface {
	Register(c echo.Context) error
	Login(c echo.Context) error
	ListDrivers(c echo.Context) error
}

type authController struct {
	authService service.AuthService
}

func newAuthController(authService service.AuthService) AuthController {
	return &authController{
		authService: authService,
	}
}

func driverResponse(driver model.Driver) dto.DriverResponse {
	response := dto.DriverResponse{
		DriverID: driver.DriverID,
		Name:     driver.Name,
		Phone:    driver.Phone,
		IsActive: driver.IsActive,
		IsAdmin:  driver.IsAdmin,
	}
	if driver.Email != nil {
		response.Email = *driver.Email
	}
	return response
}

func (a *authController) Register(c echo.Context) error {
	var request dto.DriverCreateRequest
	if err := c.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	driver, err := a.authService.Register(request)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, driverResponse(driver))
}

func (a *authController) Login(c echo.Context) error {
	var request dto.DriverLoginRequest
	if err := c.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, driver, err := a.authService.Login(request)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Driver:      driverResponse(driver),
	})
}

func (a *authController) ListDrivers(c echo.Context) error {
	// Kept public for the dashboard, matching the deployed behaviour.
	drivers, err := a.authService.ListDrivers()
	if err != nil {
		return httpError(err)
	}

	responses := make([]dto.DriverResponse, 0, len(drivers))
	for _, driver := range drivers {
		responses = append(responses, driverResponse(driver))
	}
	return c.JSON(http.StatusOK, responses)
}
