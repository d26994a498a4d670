// Package actions executes family-helper actions on a passenger's
// reservation: flight changes, cancellation, seat selection, baggage, and
// wheelchair assistance.
package actions

import "github.com/caretrip/concierge/internal/reservation"

// Action type identifiers.
const (
	TypeChangeFlight      = "change_flight"
	TypeCancelFlight      = "cancel_flight"
	TypeSelectSeat        = "select_seat"
	TypeAddBags           = "add_bags"
	TypeRequestWheelchair = "request_wheelchair"
)

// Info describes one action for the helper dashboard.
type Info struct {
	ActionType  string `json:"action_type"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Enabled     bool   `json:"enabled"`
}

// catalog is the fixed set of actions with their display metadata.
var catalog = []Info{
	{
		ActionType:  TypeChangeFlight,
		DisplayName: "Change Flight",
		Description: "Select a new flight from available alternatives",
		Icon:        "plane",
	},
	{
		ActionType:  TypeCancelFlight,
		DisplayName: "Cancel Flight",
		Description: "Cancel the reservation",
		Icon:        "x-circle",
	},
	{
		ActionType:  TypeSelectSeat,
		DisplayName: "Select Seat",
		Description: "Choose a seat from available options",
		Icon:        "armchair",
	},
	{
		ActionType:  TypeAddBags,
		DisplayName: "Add Baggage",
		Description: "Add checked bags to the reservation",
		Icon:        "briefcase",
	},
	{
		ActionType:  TypeRequestWheelchair,
		DisplayName: "Request Wheelchair",
		Description: "Request wheelchair assistance",
		Icon:        "accessibility",
	},
}

// DisplayName returns the human name for an action type, falling back to
// the raw type for unknown values.
func DisplayName(actionType string) string {
	for _, info := range catalog {
		if info.ActionType == actionType {
			return info.DisplayName
		}
	}
	return actionType
}

// Available returns the actions a helper may take for a reservation. A
// cancelled reservation offers nothing; a nil reservation likewise.
func Available(res *reservation.Reservation) []Info {
	if res == nil || res.Status == reservation.StatusCancelledRes {
		return []Info{}
	}

	out := make([]Info, len(catalog))
	for i, info := range catalog {
		info.Enabled = true
		out[i] = info
	}
	return out
}
