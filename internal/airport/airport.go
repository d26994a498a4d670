// Package airport provides static gate, terminal, and geofence data for the
// airports the concierge product covers, plus simple walking directions.
package airport

import (
	"fmt"
	"math"
	"strings"
)

// Gate is the position of a single gate.
type Gate struct {
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Terminal    string  `json:"terminal"`
	Approximate bool    `json:"approximate,omitempty"`
}

// Terminal is the center point of a terminal building.
type Terminal struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Name string  `json:"name"`
}

// Geofence is an airport's detection circle.
type Geofence struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	RadiusKM float64 `json:"radius_km"`
	Name     string  `json:"name"`
}

// GateLocation resolves a gate's coordinates at an airport. It tries an
// exact match, then the gate id without leading zeros, then falls back to
// the terminal center (marked approximate) inferred from the gate's first
// character. Returns false when nothing matches.
func GateLocation(airportCode, gate string) (Gate, bool) {
	airportGates, ok := gates[strings.ToUpper(airportCode)]
	gate = strings.ToUpper(gate)
	if ok {
		if g, ok := airportGates[gate]; ok {
			return g, true
		}
		if g, ok := airportGates[strings.TrimLeft(gate, "0")]; ok {
			return g, true
		}
	}

	// Gate not in the table: use the terminal center if the leading
	// character identifies one.
	if gate != "" {
		term := string(gate[0])
		if t, ok := TerminalLocation(airportCode, term); ok {
			return Gate{Lat: t.Lat, Lng: t.Lng, Terminal: term, Approximate: true}, true
		}
	}
	return Gate{}, false
}

// TerminalLocation returns a terminal's center point.
func TerminalLocation(airportCode, terminal string) (Terminal, bool) {
	t, ok := terminals[strings.ToUpper(airportCode)][strings.ToUpper(terminal)]
	return t, ok
}

// AirportGeofence returns the geofence for an airport.
func AirportGeofence(airportCode string) (Geofence, bool) {
	g, ok := geofences[strings.ToUpper(airportCode)]
	return g, ok
}

// NearestAirport finds the closest known airport within 10 km of a point.
func NearestAirport(lat, lng float64) (code string, distanceKM float64, ok bool) {
	minDist := math.Inf(1)
	for c, g := range geofences {
		d := haversineKM(lat, lng, g.Lat, g.Lng)
		if d < minDist && d <= 10 {
			minDist = d
			code = c
		}
	}
	if code == "" {
		return "", 0, false
	}
	return code, minDist, true
}

// InAirport reports whether a point is inside an airport's geofence.
func InAirport(lat, lng float64, airportCode string) bool {
	g, ok := AirportGeofence(airportCode)
	if !ok {
		return false
	}
	return haversineKM(lat, lng, g.Lat, g.Lng) <= g.RadiusKM
}

// CityName returns the display city for an airport code, falling back to the
// code itself for airports not in the table.
func CityName(code string) string {
	if city, ok := cityNames[strings.ToUpper(code)]; ok {
		return city
	}
	return strings.ToUpper(code)
}

// Airports returns every airport code with a city name, for the airport
// listing endpoint.
func Airports() map[string]string {
	out := make(map[string]string, len(cityNames))
	for code, city := range cityNames {
		out[code] = city
	}
	return out
}

// WalkingSpeed returns meters per minute for a pace profile, defaulting to
// the elderly pace for unknown profiles.
func WalkingSpeed(pace string) float64 {
	if speed, ok := walkingSpeeds[pace]; ok {
		return speed
	}
	return walkingSpeeds["elderly"]
}

// SimpleDirections produces a one-line textual hint from a point toward a
// gate, in English or Spanish. It picks the dominant compass axis rather
// than attempting real routing.
func SimpleDirections(fromLat, fromLng float64, toGate, airportCode, language string) string {
	gate, ok := GateLocation(airportCode, toGate)
	if !ok {
		if language == "es" {
			return fmt.Sprintf("Dirijase a la puerta %s. Consulte las pantallas del aeropuerto.", toGate)
		}
		return fmt.Sprintf("Head towards gate %s. Check airport displays for directions.", toGate)
	}

	latDiff := gate.Lat - fromLat
	lngDiff := gate.Lng - fromLng

	var direction, directionES string
	if math.Abs(latDiff) > math.Abs(lngDiff) {
		direction, directionES = "north", "norte"
		if latDiff < 0 {
			direction, directionES = "south", "sur"
		}
	} else {
		direction, directionES = "east", "este"
		if lngDiff < 0 {
			direction, directionES = "west", "oeste"
		}
	}

	if language == "es" {
		if gate.Terminal != "" {
			return fmt.Sprintf("Dirijase hacia el %s hacia la Terminal %s. Su puerta %s esta en esa direccion.", directionES, gate.Terminal, toGate)
		}
		return fmt.Sprintf("Dirijase hacia el %s hacia la puerta %s.", directionES, toGate)
	}
	if gate.Terminal != "" {
		return fmt.Sprintf("Head %s towards Terminal %s. Gate %s is in that direction.", direction, gate.Terminal, toGate)
	}
	return fmt.Sprintf("Head %s towards gate %s.", direction, toGate)
}

// haversineKM is the great-circle distance between two points in kilometers.
func haversineKM(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadiusKM = 6371

	rlat1 := lat1 * math.Pi / 180
	rlat2 := lat2 * math.Pi / 180
	dlat := (lat2 - lat1) * math.Pi / 180
	dlng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(rlat1)*math.Cos(rlat2)*math.Sin(dlng/2)*math.Sin(dlng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKM * c
}
