package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/dto"
)

const (
	activeBusSetKey    = "active_buses"
	busLocationKeyBase = "bus:location:"
)

// TrackerService owns the live position of every actively reporting bus:
// writes go to the expiring store with a TTL reset on every sample, and the
// active-bus set is a derived index pruned lazily against the store.
type TrackerService interface {
	PublishLocation(ctx context.Context, update dto.LocationUpdate) bool
	StopTracking(ctx context.Context, busNumber string) bool
	GetBusLocation(ctx context.Context, busNumber string) (dto.BusLocation, bool)
	ActiveBuses(ctx context.Context) []dto.BusLocation
}

type trackerService struct {
	store ExpiringStore
	ttl   time.Duration
	now   func() time.Time
}

func newTrackerService(store ExpiringStore, ttl time.Duration) TrackerService {
	return &trackerService{
		store: store,
		ttl:   ttl,
		now:   time.Now,
	}
}

func busLocationKey(busNumber string) string {
	return busLocationKeyBase + busNumber
}

// PublishLocation classifies motion from the reported speed, overwrites the
// cached record and marks the bus active. Returns whether the cache write
// succeeded; the caller decides on durable fallback, there are no retries
// here.
func (t *trackerService) PublishLocation(ctx context.Context, update dto.LocationUpdate) bool {
	record := dto.BusLocation{
		BusNumber:  update.BusNumber,
		RouteID:    update.RouteID,
		Latitude:   update.Latitude,
		Longitude:  update.Longitude,
		Speed:      update.Speed,
		Heading:    update.Heading,
		Accuracy:   update.Accuracy,
		Status:     dto.ClassifyMotion(update.Speed),
		LastUpdate: t.now().UTC(),
	}

	encoded, err := json.Marshal(record)
	if err != nil {
		logrus.Errorf("Error marshaling location for bus %s: %v", update.BusNumber, err)
		return false
	}

	if !t.store.Put(ctx, busLocationKey(update.BusNumber), encoded, t.ttl) {
		return false
	}

	t.store.AddMember(ctx, activeBusSetKey, update.BusNumber)
	return true
}

// StopTracking removes the bus from live tracking. Idempotent: stopping a bus
// that never published succeeds.
func (t *trackerService) StopTracking(ctx context.Context, busNumber string) bool {
	deleted := t.store.Delete(ctx, busLocationKey(busNumber))
	removed := t.store.RemoveMember(ctx, activeBusSetKey, busNumber)
	return deleted && removed
}

func (t *trackerService) GetBusLocation(ctx context.Context, busNumber string) (dto.BusLocation, bool) {
	encoded, exists := t.store.Get(ctx, busLocationKey(busNumber))
	if !exists {
		return dto.BusLocation{}, false
	}

	var record dto.BusLocation
	if err := json.Unmarshal(encoded, &record); err != nil {
		logrus.Errorf("Error unmarshaling location for bus %s: %v", busNumber, err)
		return dto.BusLocation{}, false
	}
	return record, true
}

// ActiveBuses resolves the membership set into full records, unmarking any
// member whose record has expired. Staleness heals here on read; there is no
// background sweep.
func (t *trackerService) ActiveBuses(ctx context.Context) []dto.BusLocation {
	members := t.store.Members(ctx, activeBusSetKey)

	locations := make([]dto.BusLocation, 0, len(members))
	for _, busNumber := range members {
		record, exists := t.GetBusLocation(ctx, busNumber)
		if !exists {
			t.store.RemoveMember(ctx, activeBusSetKey, busNumber)
			continue
		}
		locations = append(locations, record)
	}
	return locations
}
