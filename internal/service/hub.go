package service

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/dto"
)

// Listener is one connected subscriber. *websocket.Conn satisfies it.
type Listener interface {
	WriteJSON(v interface{}) error
}

// Hub maintains the set of connected listeners. Two delivery paths exist:
// OnTick pushes the current snapshot back to the listener that ticked, and
// Broadcast pushes a message to every listener. Either way a send failure
// only evicts the failing listener, never aborting delivery to the rest.
type Hub interface {
	Register(listener Listener)
	Unregister(listener Listener)
	OnTick(ctx context.Context, listener Listener)
	Broadcast(ctx context.Context, message interface{})
	ListenerCount() int
}

type hub struct {
	trackerService TrackerService
	listeners      map[Listener]struct{}
	listenerMutex  sync.RWMutex
	now            func() time.Time
}

func newHub(trackerService TrackerService) Hub {
	return &hub{
		trackerService: trackerService,
		listeners:      make(map[Listener]struct{}),
		now:            time.Now,
	}
}

func (h *hub) Register(listener Listener) {
	h.listenerMutex.Lock()
	defer h.listenerMutex.Unlock()

	h.listeners[listener] = struct{}{}
}

func (h *hub) Unregister(listener Listener) {
	h.listenerMutex.Lock()
	defer h.listenerMutex.Unlock()

	delete(h.listeners, listener)
}

// OnTick handles any inbound message from a listener. The payload is ignored,
// it acts purely as a pull signal: the current active-bus snapshot goes back
// to the same listener that ticked.
func (h *hub) OnTick(ctx context.Context, listener Listener) {
	message := dto.BusUpdateMessage{
		Type:      "bus_update",
		Buses:     h.trackerService.ActiveBuses(ctx),
		Timestamp: h.now().UTC().Format(time.RFC3339),
	}

	if err := listener.WriteJSON(message); err != nil {
		logrus.Errorf("Error sending bus update to listener: %v", err)
		h.Unregister(listener)
	}
}

// Broadcast pushes a message to every registered listener, best effort and
// at most once. Failed listeners are collected during the pass and removed
// after it, so the set is not mutated while being iterated.
func (h *hub) Broadcast(_ context.Context, message interface{}) {
	h.listenerMutex.RLock()
	var failed []Listener
	for listener := range h.listeners {
		if err := listener.WriteJSON(message); err != nil {
			logrus.Errorf("Error broadcasting to listener: %v", err)
			failed = append(failed, listener)
		}
	}
	h.listenerMutex.RUnlock()

	for _, listener := range failed {
		h.Unregister(listener)
	}
}

func (h *hub) ListenerCount() int {
	h.listenerMutex.RLock()
	defer h.listenerMutex.RUnlock()

	return len(h.listeners)
}
