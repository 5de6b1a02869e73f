package route

// Curated great-circle-ish distances in km. Directional, but looked up both ways.
// The table is illustrative, not exhaustive; absent pairs fall through to the
// geographic bucket heuristic below.
var routeDistances = map[string]map[string]int{
	"NBO": {
		"MBA": 450, "KIS": 350, "LAU": 500, "MYD": 520, "UKA": 280, "WIL": 15, "NYK": 580, "LOK": 650, "EYS": 300,
		"JRO": 280, "DAR": 650, "EBB": 550, "KGL": 750, "ADD": 1150, "JNB": 3050, "CPT": 3800, "CAI": 3500,
		"DXB": 3300, "DOH": 3600, "AUH": 3450, "IST": 4800, "LHR": 6850, "CDG": 6650, "AMS": 6800, "FRA": 6400,
		"BRU": 6700, "ZRH": 6300, "JFK": 11800, "LAX": 14500, "SIN": 7200, "BKK": 6500, "HKG": 8100, "DEL": 4500,
		"BOM": 4000, "CMB": 3700, "MRU": 2900, "GRU": 8500, "SYD": 11500,
	},
	"MBA": {"NBO": 450, "KIS": 800, "LAU": 100, "MYD": 80, "DAR": 250, "ZNZ": 150, "JRO": 320},
	"KIS": {"NBO": 350, "MBA": 800, "EBB": 450, "KGL": 500},
	"LHR": {"NBO": 6850, "JNB": 9000, "CPT": 9600, "CAI": 3500, "DXB": 5500, "JFK": 5500, "LAX": 8800},
	"DXB": {"NBO": 3300, "LHR": 5500, "JFK": 11000, "SIN": 5800, "BKK": 4800, "HKG": 5900},
	"JNB": {"NBO": 3050, "CPT": 1250, "LHR": 9000, "DXB": 6300, "JFK": 12800},
	"ADD": {"NBO": 1150, "JNB": 4000, "LHR": 5900, "DXB": 2300, "CAI": 2600},
}

// Geographic buckets used by the heuristic fallback. Membership is fixed.
var (
	kenyanAirports     = []string{"NBO", "MBA", "KIS", "UKA", "MYD", "LAU", "NYK", "LOK", "EYS", "WIL"}
	regionalAirports   = []string{"JRO", "DAR", "ZNZ", "EBB", "KGL", "ADD", "JNB", "CPT", "CAI"}
	middleEastAirports = []string{"DXB", "DOH", "AUH", "JED", "RUH"}
	europeanAirports   = []string{"LHR", "CDG", "AMS", "FRA", "BRU", "ZRH", "FCO", "MAD", "BCN", "MUC", "IST"}
	americanAirports   = []string{"JFK", "LAX", "ORD", "MIA", "ATL", "DFW", "SFO", "YYZ", "GRU", "EZE"}
	asianAirports      = []string{"SIN", "BKK", "HKG", "DEL", "BOM", "CMB", "PEK", "PVG", "NRT", "ICN", "SYD", "MEL"}
)

// Representative distances for bucket pairings involving a Kenyan endpoint.
const (
	distDomestic      = 400
	distRegional      = 800
	distMiddleEast    = 3400
	distEurope        = 6500
	distAmericas      = 12000
	distAsia          = 6000
	defaultDistanceKm = 5000
)

// DistanceKm resolves a route distance through an ordered chain: exact directed entry,
// reversed entry, bucket heuristic, default. It never fails; unknown codes land on the
// default distance.
func DistanceKm(origin, destination string) int {
	if d, ok := exactDistance(origin, destination); ok {
		return d
	}
	if d, ok := exactDistance(destination, origin); ok {
		return d
	}
	if d, ok := bucketDistance(origin, destination); ok {
		return d
	}
	return defaultDistanceKm
}

// IsKenyan reports whether the code belongs to the fixed Kenyan-airport set used for
// domestic-route classification.
func IsKenyan(code string) bool {
	return contains(kenyanAirports, code)
}

func exactDistance(from, to string) (int, bool) {
	d, ok := routeDistances[from][to]
	return d, ok
}

func bucketDistance(from, to string) (int, bool) {
	switch {
	case IsKenyan(from) && IsKenyan(to):
		return distDomestic, true
	case pairs(from, to, regionalAirports):
		return distRegional, true
	case pairs(from, to, middleEastAirports):
		return distMiddleEast, true
	case pairs(from, to, europeanAirports):
		return distEurope, true
	case pairs(from, to, americanAirports):
		return distAmericas, true
	case pairs(from, to, asianAirports):
		return distAsia, true
	}
	return 0, false
}

// pairs reports whether one endpoint is Kenyan and the other is in the given bucket,
// in either direction.
func pairs(from, to string, bucket []string) bool {
	return (IsKenyan(from) && contains(bucket, to)) || (contains(bucket, from) && IsKenyan(to))
}

func contains(codes []string, code string) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}
