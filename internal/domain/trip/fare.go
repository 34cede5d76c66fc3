package trip

import "math"

// FareStrategy defines the interface for estimating route fares.
type FareStrategy interface {
	// Estimate returns the fare info for a route distance and travel mode.
	Estimate(distanceMeters int, mode TravelMode) FareInfo
}

// FlatRateFareStrategy implements the default per-kilometer fare table.
type FlatRateFareStrategy struct{}

// NewFlatRateFareStrategy creates a new FlatRateFareStrategy.
func NewFlatRateFareStrategy() *FlatRateFareStrategy {
	return &FlatRateFareStrategy{}
}

const fareCurrency = "INR"

// perKmRates is the flat rate table keyed by vehicle class, in INR per km.
var perKmRates = map[string]float64{
	"personal_car":  7,
	"personal_bike": 3,
}

// vehicleClassForMode maps a travel mode to its fare-bearing vehicle class.
// WALK, BICYCLE and TRANSIT carry no fare table and yield empty fares.
var vehicleClassForMode = map[TravelMode]string{
	ModeDrive:      "personal_car",
	ModeTwoWheeler: "personal_bike",
}

// Estimate computes the flat per-kilometer fare for a route.
//
// The amount is rounded to the nearest whole currency unit and the
// kilometer distance to two decimals.
func (s *FlatRateFareStrategy) Estimate(distanceMeters int, mode TravelMode) FareInfo {
	distanceKm := float64(distanceMeters) / 1000

	fares := make(map[string]Fare)
	if class, ok := vehicleClassForMode[mode]; ok {
		fares[class] = Fare{
			Amount:   math.Round(distanceKm * perKmRates[class]),
			Currency: fareCurrency,
		}
	}

	return FareInfo{
		Fares:      fares,
		DistanceKm: math.Round(distanceKm*100) / 100,
	}
}
