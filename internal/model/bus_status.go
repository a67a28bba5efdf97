package model

type BusStatus string

const (
	BusStatusActive      BusStatus = "active"
	BusStatusInactive    BusStatus = "inactive"
	BusStatusMaintenance BusStatus = "maintenance"
)

func (s BusStatus) Valid() bool {
	switch s {
	case BusStatusActive, BusStatusInactive, BusStatusMaintenance:
		return true
	default:
		return false
	}
}
