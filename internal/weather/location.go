package weather

import (
	"strconv"
	"strings"
)

// Location is the saved-location string: a free-text place name, or a
// "lat,lon" pair captured from the terminal's geolocation prompt.
type Location string

const DefaultLocation Location = "東京"

// Coords parses the location as a latitude/longitude pair.
func (l Location) Coords() (lat, lon float64, ok bool) {
	parts := strings.SplitN(string(l), ",", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	lat, errLat := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lon, errLon := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errLat != nil || errLon != nil {
		return 0, 0, false
	}
	return lat, lon, true
}

func (l Location) IsEmpty() bool {
	return strings.TrimSpace(string(l)) == ""
}
