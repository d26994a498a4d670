package location

// Style is the visual treatment for one alert status.
type Style struct {
	Color string `json:"color"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// styles is the exhaustive status-to-treatment table. unknownStyle is the
// forward-compatibility bucket for values a newer server might send.
var styles = map[AlertStatus]Style{
	StatusSafe:    {Color: "green", Label: "On track", Icon: "check-circle"},
	StatusWarning: {Color: "amber", Label: "Running late", Icon: "alert-triangle"},
	StatusUrgent:  {Color: "red", Label: "May miss flight", Icon: "alert-octagon"},
	StatusArrived: {Color: "blue", Label: "At the gate", Icon: "map-pin"},
}

var unknownStyle = Style{Color: "gray", Label: "Status unknown", Icon: "help-circle"}

// StyleFor returns the visual treatment for a status. Statuses outside the
// known set get the neutral fallback rather than an error.
func StyleFor(status AlertStatus) Style {
	if s, ok := styles[status]; ok {
		return s
	}
	return unknownStyle
}
