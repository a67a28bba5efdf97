package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skhavindev/sathyabama-bus-tracker/internal/dto"
)

func newTestTracker(t *testing.T) (*trackerService, *time.Time) {
	t.Helper()
	store, clock := newTestMemoryStore(t)
	tracker := newTrackerService(store, 60*time.Second).(*trackerService)
	tracker.now = store.now
	return tracker, clock
}

func floatPtr(v float64) *float64 {
	return &v
}

func TestPublishLocationStoresRecord(t *testing.T) {
	tracker, _ := newTestTracker(t)
	ctx := context.Background()

	stored := tracker.PublishLocation(ctx, dto.LocationUpdate{
		BusNumber: "TN01AB1234",
		Latitude:  12.97,
		Longitude: 80.24,
		Speed:     floatPtr(10),
	})
	require.True(t, stored)

	record, exists := tracker.GetBusLocation(ctx, "TN01AB1234")
	require.True(t, exists)
	assert.Equal(t, "TN01AB1234", record.BusNumber)
	assert.Equal(t, 12.97, record.Latitude)
	assert.Equal(t, 80.24, record.Longitude)
	assert.Equal(t, dto.MotionStateMoving, record.Status)
	assert.False(t, record.LastUpdate.IsZero())
}

func TestPublishLocationMotionBoundaries(t *testing.T) {
	tracker, _ := newTestTracker(t)
	ctx := context.Background()

	tests := []struct {
		bus      string
		speed    *float64
		expected dto.MotionState
	}{
		{"B1", nil, dto.MotionStateStopped},
		{"B2", floatPtr(0.2), dto.MotionStateIdle},
		{"B3", floatPtr(1), dto.MotionStateStopped},
		{"B4", floatPtr(5), dto.MotionStateStopped},
		{"B5", floatPtr(5.5), dto.MotionStateMoving},
	}

	for _, tt := range tests {
		require.True(t, tracker.PublishLocation(ctx, dto.LocationUpdate{
			BusNumber: tt.bus,
			Latitude:  12.9,
			Longitude: 80.2,
			Speed:     tt.speed,
		}))
		record, exists := tracker.GetBusLocation(ctx, tt.bus)
		require.True(t, exists, "bus %s", tt.bus)
		assert.Equal(t, tt.expected, record.Status, "bus %s", tt.bus)
	}
}

func TestPublishMarksActive(t *testing.T) {
	tracker, _ := newTestTracker(t)
	ctx := context.Background()

	tracker.PublishLocation(ctx, dto.LocationUpdate{BusNumber: "TN01", Latitude: 1, Longitude: 2})

	active := tracker.ActiveBuses(ctx)
	require.Len(t, active, 1)
	assert.Equal(t, "TN01", active[0].BusNumber)
}

func TestStopTrackingIdempotent(t *testing.T) {
	tracker, _ := newTestTracker(t)
	ctx := context.Background()

	// Never published: still succeeds and the active set stays unchanged.
	assert.True(t, tracker.StopTracking(ctx, "ghost"))
	assert.Empty(t, tracker.ActiveBuses(ctx))

	tracker.PublishLocation(ctx, dto.LocationUpdate{BusNumber: "TN02", Latitude: 1, Longitude: 2})
	assert.True(t, tracker.StopTracking(ctx, "TN02"))
	assert.True(t, tracker.StopTracking(ctx, "TN02"))

	_, exists := tracker.GetBusLocation(ctx, "TN02")
	assert.False(t, exists)
	assert.Empty(t, tracker.ActiveBuses(ctx))
}

func TestActiveBusesPrunesExpiredMembers(t *testing.T) {
	tracker, clock := newTestTracker(t)
	store := tracker.store.(*memoryStore)
	ctx := context.Background()

	tracker.PublishLocation(ctx, dto.LocationUpdate{BusNumber: "TN03", Latitude: 1, Longitude: 2})
	require.Len(t, tracker.ActiveBuses(ctx), 1)

	*clock = clock.Add(61 * time.Second)

	// The record has expired; the membership entry self-heals on read.
	assert.Empty(t, tracker.ActiveBuses(ctx))
	assert.Empty(t, store.Members(ctx, activeBusSetKey))
}

func TestPublishRefreshesTTL(t *testing.T) {
	tracker, clock := newTestTracker(t)
	ctx := context.Background()

	tracker.PublishLocation(ctx, dto.LocationUpdate{BusNumber: "TN04", Latitude: 1, Longitude: 2})
	*clock = clock.Add(45 * time.Second)
	tracker.PublishLocation(ctx, dto.LocationUpdate{BusNumber: "TN04", Latitude: 1.1, Longitude: 2.1})
	*clock = clock.Add(45 * time.Second)

	record, exists := tracker.GetBusLocation(ctx, "TN04")
	require.True(t, exists)
	assert.Equal(t, 1.1, record.Latitude)
}

// The in-memory path must satisfy the same contract as redis so the system
// keeps working when the backend is unreachable at startup.
func TestFallbackStoreSatisfiesPublishContract(t *testing.T) {
	store := newExpiringStore(nil)
	tracker := newTrackerService(store, 60*time.Second)
	ctx := context.Background()

	stored := tracker.PublishLocation(ctx, dto.LocationUpdate{
		BusNumber: "TN05",
		Latitude:  12.5,
		Longitude: 80.1,
		Speed:     floatPtr(7),
	})
	require.True(t, stored)

	active := tracker.ActiveBuses(ctx)
	require.Len(t, active, 1)
	assert.Equal(t, "TN05", active[0].BusNumber)
	assert.Equal(t, dto.MotionStateMoving, active[0].Status)
}
