package dto

import "time"

type MotionState string

const (
	MotionStateMoving  MotionState = "moving"
	MotionStateIdle    MotionState = "idle"
	MotionStateStopped MotionState = "stopped"
)

// ClassifyMotion buckets a reported speed into a coarse motion state.
// Speeds of 1-5 km/h inclusive fall through to stopped.
func ClassifyMotion(speed *float64) MotionState {
	if speed == nil {
		return MotionStateStopped
	}
	if *speed > 5 {
		return MotionStateMoving
	}
	if *speed < 1 {
		return MotionStateIdle
	}
	return MotionStateStopped
}

// LocationUpdate is the payload a driver app sends every few seconds.
type LocationUpdate struct {
	BusNumber string   `json:"bus_number"`
	RouteID   *uint    `json:"route_id,omitempty"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Speed     *float64 `json:"speed,omitempty"`
	Heading   *float64 `json:"heading,omitempty"`
	Accuracy  *float64 `json:"accuracy,omitempty"`
}

// BusLocation is the cached record for one actively reporting bus.
type BusLocation struct {
	BusNumber  string      `json:"bus_number"`
	RouteID    *uint       `json:"route_id,omitempty"`
	RouteName  *string     `json:"route_name,omitempty"`
	Latitude   float64     `json:"latitude"`
	Longitude  float64     `json:"longitude"`
	Speed      *float64    `json:"speed,omitempty"`
	Heading    *float64    `json:"heading,omitempty"`
	Accuracy   *float64    `json:"accuracy,omitempty"`
	Status     MotionState `json:"status"`
	LastUpdate time.Time   `json:"last_update"`
}

type ActiveBusesResponse struct {
	Buses     []BusLocation `json:"buses"`
	Timestamp time.Time     `json:"timestamp"`
}

// BusUpdateMessage is pushed to a websocket listener on every tick.
type BusUpdateMessage struct {
	Type      string        `json:"type"`
	Buses     []BusLocation `json:"buses"`
	Timestamp string        `json:"timestamp"`
}
