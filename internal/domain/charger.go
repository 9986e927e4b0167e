package domain

import "time"

type ChargerStatus string

const (
	ChargerAvailable ChargerStatus = "available"
	ChargerCharging  ChargerStatus = "charging"
	ChargerOffline   ChargerStatus = "offline"
	ChargerFaulted   ChargerStatus = "faulted"
)

func ParseChargerStatus(s string) (ChargerStatus, bool) {
	switch ChargerStatus(s) {
	case ChargerAvailable, ChargerCharging, ChargerOffline, ChargerFaulted:
		return ChargerStatus(s), true
	default:
		return "", false
	}
}

// Charger is a charge point owned by exactly one workspace. It exists so the
// tenant boundary has operational state to protect; all queries are scoped by
// the workspace's internal ID.
type Charger struct {
	ID          string
	WorkspaceID string
	Name        string
	Status      ChargerStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
