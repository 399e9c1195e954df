package weather

import (
	"math/rand"
)

type Icon string

const (
	IconSun   Icon = "sun"
	IconCloud Icon = "cloud"
	IconRain  Icon = "rain"
	IconWind  Icon = "wind"
)

type WindStrength string

const (
	WindCalm     WindStrength = "おだやか"
	WindModerate WindStrength = "やや強め"
	WindStrong   WindStrength = "強め"
)

const (
	recommendOutdoor     = "屋外の運動がオススメです"
	recommendOutdoorToo  = "屋外の運動もオススメです"
	recommendIndoor      = "屋内での運動がオススメです"
	recommendIndoorWindy = "風が強いので屋内での運動がオススメです"
)

// Report is the display record for current weather. It is always fully
// populated: either mapped from a provider payload or taken from Fallbacks.
type Report struct {
	Icon      Icon
	Text      string
	Wind      WindStrength
	Recommend string
}

type conditionCategory int

const (
	categoryClear conditionCategory = iota
	categoryOvercast
	categoryPrecipitation
)

// conditionCategories maps WeatherAPI condition codes to a category. The one
// table feeds both icon selection and the recommendation so the two can't
// drift apart. Codes not listed are treated as clear.
var conditionCategories = map[int]conditionCategory{
	// overcast, mist, fog
	1003: categoryOvercast, 1006: categoryOvercast, 1009: categoryOvercast,
	1030: categoryOvercast, 1135: categoryOvercast, 1147: categoryOvercast,
	// rain, drizzle, thunder, sleet
	1063: categoryPrecipitation, 1069: categoryPrecipitation, 1072: categoryPrecipitation,
	1087: categoryPrecipitation, 1150: categoryPrecipitation, 1153: categoryPrecipitation,
	1168: categoryPrecipitation, 1171: categoryPrecipitation, 1180: categoryPrecipitation,
	1183: categoryPrecipitation, 1186: categoryPrecipitation, 1189: categoryPrecipitation,
	1192: categoryPrecipitation, 1195: categoryPrecipitation, 1198: categoryPrecipitation,
	1201: categoryPrecipitation, 1240: categoryPrecipitation, 1243: categoryPrecipitation,
	1246: categoryPrecipitation, 1273: categoryPrecipitation, 1276: categoryPrecipitation,
}

// WindBucket maps a wind speed in km/h to its strength bucket.
func WindBucket(windKph float64) WindStrength {
	switch {
	case windKph > 20:
		return WindStrong
	case windKph > 10:
		return WindModerate
	default:
		return WindCalm
	}
}

// BuildReport maps a provider condition code, condition text and wind speed
// to a display record. Strong wind forces the indoor recommendation
// regardless of condition.
func BuildReport(conditionCode int, conditionText string, windKph float64) Report {
	wind := WindBucket(windKph)

	var icon Icon
	var recommend string
	switch conditionCategories[conditionCode] {
	case categoryPrecipitation:
		icon = IconRain
		recommend = recommendIndoor
	case categoryOvercast:
		icon = IconCloud
		recommend = recommendOutdoorToo
	default:
		icon = IconSun
		recommend = recommendOutdoor
	}
	if wind == WindStrong {
		recommend = recommendIndoorWindy
	}

	return Report{Icon: icon, Text: conditionText, Wind: wind, Recommend: recommend}
}

// Fallbacks is the fixed table substituted when the gateway is unavailable.
var Fallbacks = [4]Report{
	{Icon: IconSun, Text: "晴れ", Wind: WindCalm, Recommend: recommendOutdoor},
	{Icon: IconCloud, Text: "曇り", Wind: WindCalm, Recommend: recommendOutdoorToo},
	{Icon: IconRain, Text: "雨", Wind: WindModerate, Recommend: recommendIndoor},
	{Icon: IconWind, Text: "風", Wind: WindModerate, Recommend: recommendIndoor},
}

// RandomFallback picks one of the fixed fallback records.
func RandomFallback(rng *rand.Rand) Report {
	if rng == nil {
		return Fallbacks[rand.Intn(len(Fallbacks))]
	}
	return Fallbacks[rng.Intn(len(Fallbacks))]
}
