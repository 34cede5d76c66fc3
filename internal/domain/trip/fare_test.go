package trip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatRateFareStrategy_Drive(t *testing.T) {
	s := NewFlatRateFareStrategy()

	info := s.Estimate(148000, ModeDrive)

	require.Contains(t, info.Fares, "personal_car")
	assert.Equal(t, float64(1036), info.Fares["personal_car"].Amount) // 148 km * 7
	assert.Equal(t, "INR", info.Fares["personal_car"].Currency)
	assert.Equal(t, 148.0, info.DistanceKm)
	assert.Len(t, info.Fares, 1)
}

func TestFlatRateFareStrategy_TwoWheeler(t *testing.T) {
	s := NewFlatRateFareStrategy()

	info := s.Estimate(148000, ModeTwoWheeler)

	require.Contains(t, info.Fares, "personal_bike")
	assert.Equal(t, float64(444), info.Fares["personal_bike"].Amount) // 148 km * 3
	assert.Equal(t, "INR", info.Fares["personal_bike"].Currency)
}

func TestFlatRateFareStrategy_OtherModesYieldEmptyFares(t *testing.T) {
	s := NewFlatRateFareStrategy()

	for _, mode := range []TravelMode{ModeWalk, ModeBicycle, ModeTransit} {
		info := s.Estimate(50000, mode)
		assert.Empty(t, info.Fares, "mode %s should have no fares", mode)
		assert.Equal(t, 50.0, info.DistanceKm)
	}
}

func TestFlatRateFareStrategy_Rounding(t *testing.T) {
	s := NewFlatRateFareStrategy()

	// 12.345 km * 7 = 86.415 -> 86; distance rounds to 12.35
	info := s.Estimate(12345, ModeDrive)

	assert.Equal(t, float64(86), info.Fares["personal_car"].Amount)
	assert.Equal(t, 12.35, info.DistanceKm)
}

func TestFlatRateFareStrategy_ZeroDistance(t *testing.T) {
	s := NewFlatRateFareStrategy()

	info := s.Estimate(0, ModeDrive)

	assert.Equal(t, float64(0), info.Fares["personal_car"].Amount)
	assert.Equal(t, 0.0, info.DistanceKm)
}
