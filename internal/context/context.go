package ctx

import (
	"context"

	"github.com/skhavindev/sathyabama-bus-tracker/internal/model"
)

type contextKey string

const (
	DriverContextKey contextKey = "driver"
)

type Driver = model.Driver

func GetDriverFromContext(ctx context.Context) (Driver, bool) {
	driver, ok := ctx.Value(DriverContextKey).(Driver)
	return driver, ok
}

func WithDriver(parent context.Context, driver Driver) context.Context {
	return context.WithValue(parent, DriverContextKey, driver)
}
