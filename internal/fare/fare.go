package fare

import (
	"fmt"

	"github.com/Kibe27/flightsasa/internal/domain"
)

// Per-kilometre rates in KES by cabin class.
var perKmRates = map[string]int{
	domain.CabinEconomy:        18,
	domain.CabinPremiumEconomy: 32,
	domain.CabinBusiness:       75,
	domain.CabinFirst:          140,
}

// Distance-band floors keep short routes from underpricing. Bands are in km,
// floors in KES per traveler.
var bandFloors = []struct {
	upTo  int
	floor int
}{
	{500, 6500},
	{1500, 15000},
	{4000, 45000},
	{7000, 75000},
}

const longHaulFloor = 120000

// BaseFare computes the per-traveler fare for a distance and cabin class: a linear
// per-km rate clamped up to the distance-band floor. Cabin classes outside the four
// recognized values are rejected rather than silently priced.
func BaseFare(distanceKm int, cabinClass string) (int, error) {
	rate, ok := perKmRates[cabinClass]
	if !ok {
		return 0, fmt.Errorf("unknown cabin class %q", cabinClass)
	}

	price := distanceKm * rate
	floor := longHaulFloor
	for _, band := range bandFloors {
		if distanceKm < band.upTo {
			floor = band.floor
			break
		}
	}
	if price < floor {
		price = floor
	}
	return price, nil
}

// Multiplier converts the operator-set pricing level (1..10) into the fare multiplier
// applied marketplace-wide. Level 5 is neutral; the range is [0.76, 1.30].
func Multiplier(level int) float64 {
	return 0.7 + float64(level)*0.06
}
