package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_CuratedPairs(t *testing.T) {
	testCases := []struct {
		name     string
		from, to string
		expected int
	}{
		{"domestic trunk route", "NBO", "MBA", 450},
		{"city hop", "NBO", "WIL", 15},
		{"regional", "NBO", "DAR", 650},
		{"long haul", "NBO", "LHR", 6850},
		{"non-Kenyan pair", "DXB", "SIN", 5800},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DistanceKm(tc.from, tc.to))
		})
	}
}

func TestDistanceKm_ReversedLookup(t *testing.T) {
	// MBA->ZNZ is curated but ZNZ->MBA is not; the reversed entry must win over the
	// bucket heuristic.
	assert.Equal(t, 150, DistanceKm("MBA", "ZNZ"))
	assert.Equal(t, 150, DistanceKm("ZNZ", "MBA"))

	// SIN->NBO only exists as NBO->SIN.
	assert.Equal(t, 7200, DistanceKm("SIN", "NBO"))
}

func TestDistanceKm_BucketHeuristic(t *testing.T) {
	testCases := []struct {
		name     string
		from, to string
		expected int
	}{
		{"domestic pair without entry", "UKA", "LAU", 400},
		{"kenyan to regional", "KIS", "ZNZ", 800},
		{"kenyan to middle east", "MBA", "DOH", 3400},
		{"kenyan to europe", "MBA", "CDG", 6500},
		{"kenyan to americas", "MBA", "JFK", 12000},
		{"kenyan to asia", "MBA", "SIN", 6000},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DistanceKm(tc.from, tc.to))
			// The heuristic tier is symmetric even though the curated table is not.
			assert.Equal(t, tc.expected, DistanceKm(tc.to, tc.from))
		})
	}
}

func TestDistanceKm_DefaultFallback(t *testing.T) {
	// Neither endpoint classifies into a Kenyan bucket pairing.
	assert.Equal(t, 5000, DistanceKm("CDG", "SYD"))
	// Unknown codes degrade to the default rather than failing.
	assert.Equal(t, 5000, DistanceKm("XXX", "YYY"))
}

func TestIsKenyan(t *testing.T) {
	assert.True(t, IsKenyan("NBO"))
	assert.True(t, IsKenyan("WIL"))
	assert.False(t, IsKenyan("DAR"))
	assert.False(t, IsKenyan(""))
}
