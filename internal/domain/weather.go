package domain

import "time"

// WeatherState represents the lifecycle state of the weather fetch.
// Ready and error are both terminal until the next fetch request, which
// re-enters loading.
type WeatherState string

const (
	WeatherIdle    WeatherState = "idle"
	WeatherLoading WeatherState = "loading"
	WeatherReady   WeatherState = "ready"
	WeatherError   WeatherState = "error"
)

// WeatherSnapshot holds the last successful weather fetch result.
type WeatherSnapshot struct {
	Temp        float64   `json:"temp"`
	ConditionID int       `json:"conditionId"`
	Condition   string    `json:"condition"`
	Place       string    `json:"place"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// ConditionCategory maps the upstream condition code to a coarse display
// category. Codes 2xx are thunderstorms and 800 and above are clear or
// lightly clouded skies; everything else reads as clouds.
func (s WeatherSnapshot) ConditionCategory() string {
	switch {
	case s.ConditionID >= 200 && s.ConditionID < 300:
		return "Thunderstorm"
	case s.ConditionID >= 800:
		return "Clear"
	default:
		return "Clouds"
	}
}

// Coordinates is a latitude/longitude pair. JSON tags match the persisted
// shape of the location cache.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
