package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skhavindev/sathyabama-bus-tracker/internal/dto"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/model"
)

func newTestBusService(t *testing.T) BusService {
	t.Helper()
	return newBusService(&fakeBusRepository{buses: make(map[string]model.Bus)})
}

func TestCreateBusDefaultsCapacity(t *testing.T) {
	service := newTestBusService(t)

	bus, err := service.CreateBus("TN01AB1234", 0)
	require.NoError(t, err)
	assert.Equal(t, 50, bus.Capacity)
	assert.Equal(t, model.BusStatusInactive, bus.Status)
}

func TestCreateBusRejectsDuplicateNumber(t *testing.T) {
	service := newTestBusService(t)

	_, err := service.CreateBus("TN01AB1234", 40)
	require.NoError(t, err)

	_, err = service.CreateBus("TN01AB1234", 40)
	assert.ErrorIs(t, err, dto.ErrAlreadyExists)
}

func TestGetBusUnknown(t *testing.T) {
	service := newTestBusService(t)

	_, err := service.GetBus("TN99ZZ9999")
	assert.ErrorIs(t, err, dto.ErrNotFound)
}
