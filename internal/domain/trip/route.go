package trip

import "time"

// Place is a geocoded location: the resolved coordinates and the provider's
// canonical formatted address. Constructed per request, never persisted on its own.
type Place struct {
	Latitude         float64 `json:"lat"`
	Longitude        float64 `json:"lng"`
	FormattedAddress string  `json:"formatted_address"`
}

// Fare is a single vehicle-class fare estimate.
type Fare struct {
	Amount   float64 `json:"fare"`
	Currency string  `json:"currency"`
}

// FareInfo maps vehicle-class keys ("personal_car", "personal_bike") to fare
// estimates for one route. Only the class matching the travel mode is populated.
type FareInfo struct {
	Fares      map[string]Fare `json:"fares"`
	DistanceKm float64         `json:"distance_km"`
}

// Route is one candidate route between the trip endpoints. The encoded
// polyline is transient: it is needed for map rendering and stripped
// before persistence.
type Route struct {
	Summary        string    `json:"summary"`
	DistanceMeters int       `json:"distance"`
	DurationSecs   int       `json:"duration"`
	DistanceText   string    `json:"distance_text"`
	DurationText   string    `json:"duration_text"`
	Polyline       string    `json:"polyline,omitempty"`
	Strategy       string    `json:"strategy"`
	FareInfo       *FareInfo `json:"fare_info,omitempty"`
	RouteNumber    int       `json:"route_number"`
}

// TripSummary is the trip-level metadata stored alongside the routes.
type TripSummary struct {
	Start       string    `json:"start"`
	End         string    `json:"end"`
	Mode        string    `json:"mode"`
	GeneratedAt time.Time `json:"generated_at"`
}

// TripRecord is the persisted form of a planned trip. Routes in a record
// never carry polyline data.
type TripRecord struct {
	Trip   TripSummary `json:"trip"`
	Routes []Route     `json:"routes"`
}

// NewTripRecord builds a persistable record from annotated routes,
// stripping polyline geometry from each.
func NewTripRecord(start, end string, mode TravelMode, routes []Route) TripRecord {
	cleaned := make([]Route, len(routes))
	for i, r := range routes {
		r.Polyline = ""
		cleaned[i] = r
	}
	return TripRecord{
		Trip: TripSummary{
			Start:       start,
			End:         end,
			Mode:        mode.String(),
			GeneratedAt: time.Now().UTC(),
		},
		Routes: cleaned,
	}
}
