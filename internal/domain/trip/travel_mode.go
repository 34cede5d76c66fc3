package trip

import "github.com/yatrika/service-planner/internal/domain/apperr"

// TravelMode represents the mode of travel for a planned trip.
type TravelMode string

const (
	ModeDrive      TravelMode = "DRIVE"
	ModeWalk       TravelMode = "WALK"
	ModeBicycle    TravelMode = "BICYCLE"
	ModeTransit    TravelMode = "TRANSIT"
	ModeTwoWheeler TravelMode = "TWO_WHEELER"
)

// IsValid returns true if the travel mode is recognized.
func (m TravelMode) IsValid() bool {
	switch m {
	case ModeDrive, ModeWalk, ModeBicycle, ModeTransit, ModeTwoWheeler:
		return true
	}
	return false
}

// String returns the string representation of the mode.
func (m TravelMode) String() string {
	return string(m)
}

// ParseTravelMode converts a request string to a TravelMode. An empty string
// defaults to DRIVE; any other unrecognized value is rejected.
func ParseTravelMode(s string) (TravelMode, error) {
	if s == "" {
		return ModeDrive, nil
	}
	mode := TravelMode(s)
	if !mode.IsValid() {
		return "", apperr.NewValidationError("unknown transport mode: " + s)
	}
	return mode, nil
}

// Strategy is a named routing preference used to request distinct
// alternatives from the directions provider.
type Strategy struct {
	Name  string
	Avoid string
}

var (
	StrategyDefault    = Strategy{Name: "Default"}
	StrategyNoHighways = Strategy{Name: "No Highways", Avoid: "highways"}
	StrategyNoTolls    = Strategy{Name: "No Tolls", Avoid: "tolls"}
)

// strategiesByMode defines which avoidance strategies apply per travel mode.
// Avoidance preferences only make sense for driving; every other mode gets
// the single default query.
var strategiesByMode = map[TravelMode][]Strategy{
	ModeDrive:      {StrategyDefault, StrategyNoHighways, StrategyNoTolls},
	ModeWalk:       {StrategyDefault},
	ModeBicycle:    {StrategyDefault},
	ModeTransit:    {StrategyDefault},
	ModeTwoWheeler: {StrategyDefault},
}

// StrategiesFor returns the ordered list of routing strategies to query for a mode.
func StrategiesFor(mode TravelMode) []Strategy {
	if strategies, ok := strategiesByMode[mode]; ok {
		return strategies
	}
	return []Strategy{StrategyDefault}
}
