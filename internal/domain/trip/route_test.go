package trip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTripRecord_StripsPolylines(t *testing.T) {
	routes := []Route{
		{DistanceMeters: 148000, Polyline: "gcneIpgxza@", Strategy: "Default", RouteNumber: 1},
		{DistanceMeters: 163000, Polyline: "abcdEfghij@", Strategy: "No Tolls", RouteNumber: 2},
	}

	record := NewTripRecord("Mumbai, Maharashtra, India", "Pune, Maharashtra, India", ModeDrive, routes)

	require.Len(t, record.Routes, 2)
	for _, r := range record.Routes {
		assert.Empty(t, r.Polyline)
	}
	// Originals are untouched.
	assert.NotEmpty(t, routes[0].Polyline)

	assert.Equal(t, "Mumbai, Maharashtra, India", record.Trip.Start)
	assert.Equal(t, "DRIVE", record.Trip.Mode)
	assert.False(t, record.Trip.GeneratedAt.IsZero())
}

func TestNewTripRecord_KeepsRouteFields(t *testing.T) {
	routes := []Route{{
		Summary:        "NH 48",
		DistanceMeters: 148000,
		DurationSecs:   9000,
		DistanceText:   "148 km",
		DurationText:   "2 hours 30 mins",
		Polyline:       "gcneIpgxza@",
		Strategy:       "Default",
		RouteNumber:    1,
		FareInfo: &FareInfo{
			Fares:      map[string]Fare{"personal_car": {Amount: 1036, Currency: "INR"}},
			DistanceKm: 148,
		},
	}}

	record := NewTripRecord("Mumbai", "Pune", ModeDrive, routes)

	got := record.Routes[0]
	assert.Equal(t, "NH 48", got.Summary)
	assert.Equal(t, "148 km", got.DistanceText)
	assert.Equal(t, "2 hours 30 mins", got.DurationText)
	assert.Equal(t, 1, got.RouteNumber)
	require.NotNil(t, got.FareInfo)
	assert.Equal(t, float64(1036), got.FareInfo.Fares["personal_car"].Amount)
}
