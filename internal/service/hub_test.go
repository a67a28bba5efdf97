package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skhavindev/sathyabama-bus-tracker/internal/dto"
)

type fakeListener struct {
	received []interface{}
	failSend bool
}

func (f *fakeListener) WriteJSON(v interface{}) error {
	if f.failSend {
		return errors.New("send failed")
	}
	f.received = append(f.received, v)
	return nil
}

func newTestHub(t *testing.T) (*hub, *trackerService, *time.Time) {
	t.Helper()
	tracker, clock := newTestTracker(t)
	h := newHub(tracker).(*hub)
	h.now = tracker.now
	return h, tracker, clock
}

func TestRegisterUnregister(t *testing.T) {
	h, _, _ := newTestHub(t)
	listener := &fakeListener{}

	h.Register(listener)
	assert.Equal(t, 1, h.ListenerCount())

	h.Unregister(listener)
	assert.Equal(t, 0, h.ListenerCount())

	// Unregister is idempotent.
	h.Unregister(listener)
	assert.Equal(t, 0, h.ListenerCount())
}

func TestOnTickPushesSnapshotToTickingListenerOnly(t *testing.T) {
	h, tracker, _ := newTestHub(t)
	ctx := context.Background()

	ticking := &fakeListener{}
	idle := &fakeListener{}
	h.Register(ticking)
	h.Register(idle)

	tracker.PublishLocation(ctx, dto.LocationUpdate{
		BusNumber: "TN01AB1234",
		Latitude:  12.97,
		Longitude: 80.24,
		Speed:     floatPtr(10),
	})

	h.OnTick(ctx, ticking)

	require.Len(t, ticking.received, 1)
	assert.Empty(t, idle.received)

	message, ok := ticking.received[0].(dto.BusUpdateMessage)
	require.True(t, ok)
	assert.Equal(t, "bus_update", message.Type)
	assert.NotEmpty(t, message.Timestamp)
	require.Len(t, message.Buses, 1)
	assert.Equal(t, "TN01AB1234", message.Buses[0].BusNumber)
	assert.Equal(t, dto.MotionStateMoving, message.Buses[0].Status)
}

func TestOnTickAfterExpiryOmitsBus(t *testing.T) {
	h, tracker, clock := newTestHub(t)
	ctx := context.Background()

	listener := &fakeListener{}
	h.Register(listener)

	tracker.PublishLocation(ctx, dto.LocationUpdate{
		BusNumber: "TN01AB1234",
		Latitude:  12.97,
		Longitude: 80.24,
		Speed:     floatPtr(10),
	})

	h.OnTick(ctx, listener)
	require.Len(t, listener.received, 1)
	require.Len(t, listener.received[0].(dto.BusUpdateMessage).Buses, 1)

	*clock = clock.Add(61 * time.Second)

	h.OnTick(ctx, listener)
	require.Len(t, listener.received, 2)
	assert.Empty(t, listener.received[1].(dto.BusUpdateMessage).Buses)
}

func TestOnTickSendFailureUnregisters(t *testing.T) {
	h, _, _ := newTestHub(t)
	listener := &fakeListener{failSend: true}
	h.Register(listener)

	h.OnTick(context.Background(), listener)

	assert.Equal(t, 0, h.ListenerCount())
}

func TestBroadcastIsolatesFailingListener(t *testing.T) {
	h, _, _ := newTestHub(t)

	healthy1 := &fakeListener{}
	failing := &fakeListener{failSend: true}
	healthy2 := &fakeListener{}
	h.Register(healthy1)
	h.Register(failing)
	h.Register(healthy2)

	h.Broadcast(context.Background(), map[string]string{"type": "notice"})

	assert.Len(t, healthy1.received, 1)
	assert.Len(t, healthy2.received, 1)
	assert.Equal(t, 2, h.ListenerCount())
}
