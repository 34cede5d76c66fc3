package maps

// geocodeResponse is the wire shape of the Google Geocoding API response.
type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
	ErrorMessage string `json:"error_message"`
}

// directionsResponse is the wire shape of the Google Directions API response.
type directionsResponse struct {
	Status string `json:"status"`
	Routes []struct {
		Summary string `json:"summary"`
		Legs    []struct {
			Distance textValue `json:"distance"`
			Duration textValue `json:"duration"`
		} `json:"legs"`
		OverviewPolyline struct {
			Points string `json:"points"`
		} `json:"overview_polyline"`
	} `json:"routes"`
	ErrorMessage string `json:"error_message"`
}

// textValue is Google's paired numeric value and display text.
type textValue struct {
	Value int    `json:"value"`
	Text  string `json:"text"`
}
