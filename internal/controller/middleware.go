package controller

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	ctx "github.com/skhavindev/sathyabama-bus-tracker/internal/context"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/service"
)

// AuthMiddleware resolves the bearer token to a driver and stores it on the
// request context.
func AuthMiddleware(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			if token == authHeader {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization format")
			}

			driver, err := authService.ValidateToken(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			request := c.Request()
			c.SetRequest(request.WithContext(ctx.WithDriver(request.Context(), driver)))
			return next(c)
		}
	}
}

// AdminMiddleware must run after AuthMiddleware.
func AdminMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			driver, ok := ctx.GetDriverFromContext(c.Request().Context())
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if !driver.IsAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "admin access required")
			}
			return next(c)
		}
	}
}
