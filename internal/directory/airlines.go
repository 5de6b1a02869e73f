package directory

import "github.com/Kibe27/flightsasa/internal/domain"

// airlines is compiled-in reference data. Order matters: the generator samples pools
// from the front, so domestic carriers lead the list.
var airlines = []domain.Airline{
	// Kenyan airlines (domestic and regional)
	{Code: "KQ", Name: "Kenya Airways", OperatesDomestic: true, OperatesInternational: true},
	{Code: "JM", Name: "Jambojet", OperatesDomestic: true, OperatesInternational: false},
	{Code: "P2", Name: "Fly540", OperatesDomestic: true, OperatesInternational: false},
	{Code: "Z8", Name: "Safarilink Aviation", OperatesDomestic: true, OperatesInternational: false},
	{Code: "5Z", Name: "Silverstone Air Services", OperatesDomestic: true, OperatesInternational: false},
	{Code: "P5", Name: "African Express Airways", OperatesDomestic: true, OperatesInternational: false},

	// East African regional airlines
	{Code: "RW", Name: "RwandAir", OperatesDomestic: false, OperatesInternational: true},
	{Code: "PW", Name: "Precision Air", OperatesDomestic: false, OperatesInternational: true},
	{Code: "QU", Name: "East African Safari Air", OperatesDomestic: false, OperatesInternational: true},
	{Code: "8U", Name: "Fastjet", OperatesDomestic: false, OperatesInternational: true},
	{Code: "ET", Name: "Ethiopian Airlines", OperatesDomestic: false, OperatesInternational: true},

	// Other African airlines on international routes to/from Kenya
	{Code: "SA", Name: "South African Airways", OperatesDomestic: false, OperatesInternational: true},
	{Code: "MS", Name: "EgyptAir", OperatesDomestic: false, OperatesInternational: true},
	{Code: "AT", Name: "Royal Air Maroc", OperatesDomestic: false, OperatesInternational: true},

	// Major international airlines
	{Code: "EK", Name: "Emirates", OperatesDomestic: false, OperatesInternational: true},
	{Code: "QR", Name: "Qatar Airways", OperatesDomestic: false, OperatesInternational: true},
	{Code: "TK", Name: "Turkish Airlines", OperatesDomestic: false, OperatesInternational: true},
	{Code: "BA", Name: "British Airways", OperatesDomestic: false, OperatesInternational: true},
	{Code: "AF", Name: "Air France", OperatesDomestic: false, OperatesInternational: true},
	{Code: "LH", Name: "Lufthansa", OperatesDomestic: false, OperatesInternational: true},
	{Code: "EY", Name: "Etihad Airways", OperatesDomestic: false, OperatesInternational: true},
	{Code: "KL", Name: "KLM Royal Dutch Airlines", OperatesDomestic: false, OperatesInternational: true},
	{Code: "SN", Name: "Brussels Airlines", OperatesDomestic: false, OperatesInternational: true},
	{Code: "LX", Name: "Swiss International Air Lines", OperatesDomestic: false, OperatesInternational: true},
}

// AirlinePool returns the carriers participating in the given market segment,
// in table order.
func AirlinePool(domestic bool) []domain.Airline {
	pool := make([]domain.Airline, 0, len(airlines))
	for _, a := range airlines {
		if domestic && a.OperatesDomestic {
			pool = append(pool, a)
		}
		if !domestic && a.OperatesInternational {
			pool = append(pool, a)
		}
	}
	return pool
}
