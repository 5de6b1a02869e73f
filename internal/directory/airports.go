package directory

import (
	"strings"

	"github.com/Kibe27/flightsasa/internal/domain"
)

const maxSearchResults = 10

// airports is compiled-in reference data, never mutated after process start.
var airports = []domain.Airport{
	// Kenya
	{Code: "NBO", Name: "Jomo Kenyatta International Airport", City: "Nairobi", Country: "Kenya"},
	{Code: "MBA", Name: "Moi International Airport", City: "Mombasa", Country: "Kenya"},
	{Code: "KIS", Name: "Kisumu International Airport", City: "Kisumu", Country: "Kenya"},
	{Code: "UKA", Name: "Ukunda Airstrip", City: "Ukunda", Country: "Kenya"},
	{Code: "MYD", Name: "Malindi Airport", City: "Malindi", Country: "Kenya"},
	{Code: "EDL", Name: "Eldoret International Airport", City: "Eldoret", Country: "Kenya"},
	{Code: "LAU", Name: "Manda Airport", City: "Lamu", Country: "Kenya"},
	{Code: "NUU", Name: "Nakuru Airport", City: "Nakuru", Country: "Kenya"},
	{Code: "WIL", Name: "Wilson Airport", City: "Nairobi", Country: "Kenya"},

	// Tanzania
	{Code: "DAR", Name: "Julius Nyerere International Airport", City: "Dar es Salaam", Country: "Tanzania"},
	{Code: "JRO", Name: "Kilimanjaro International Airport", City: "Arusha", Country: "Tanzania"},
	{Code: "ZNZ", Name: "Abeid Amani Karume International Airport", City: "Zanzibar", Country: "Tanzania"},
	{Code: "MWZ", Name: "Mwanza Airport", City: "Mwanza", Country: "Tanzania"},
	{Code: "TBO", Name: "Tabora Airport", City: "Tabora", Country: "Tanzania"},
	{Code: "DOD", Name: "Dodoma Airport", City: "Dodoma", Country: "Tanzania"},

	// Rwanda
	{Code: "KGL", Name: "Kigali International Airport", City: "Kigali", Country: "Rwanda"},
	{Code: "KME", Name: "Kamembe Airport", City: "Kamembe", Country: "Rwanda"},

	// Uganda
	{Code: "EBB", Name: "Entebbe International Airport", City: "Entebbe", Country: "Uganda"},
	{Code: "ULU", Name: "Gulu Airport", City: "Gulu", Country: "Uganda"},
	{Code: "KSE", Name: "Kasese Airport", City: "Kasese", Country: "Uganda"},

	// Burundi
	{Code: "BJM", Name: "Bujumbura International Airport", City: "Bujumbura", Country: "Burundi"},

	// Congo (DRC)
	{Code: "FIH", Name: "N'djili International Airport", City: "Kinshasa", Country: "Democratic Republic of Congo"},
	{Code: "FBM", Name: "Lubumbashi International Airport", City: "Lubumbashi", Country: "Democratic Republic of Congo"},
	{Code: "GOM", Name: "Goma International Airport", City: "Goma", Country: "Democratic Republic of Congo"},
	{Code: "KND", Name: "Kindu Airport", City: "Kindu", Country: "Democratic Republic of Congo"},
	{Code: "BUX", Name: "Bunia Airport", City: "Bunia", Country: "Democratic Republic of Congo"},

	// South Sudan
	{Code: "JUB", Name: "Juba International Airport", City: "Juba", Country: "South Sudan"},

	// Ethiopia
	{Code: "ADD", Name: "Addis Ababa Bole International Airport", City: "Addis Ababa", Country: "Ethiopia"},
	{Code: "CMN", Name: "Mohammed V International Airport", City: "Casablanca", Country: "Morocco"},

	// United States
	{Code: "JFK", Name: "John F. Kennedy International Airport", City: "New York", Country: "United States"},
	{Code: "LAX", Name: "Los Angeles International Airport", City: "Los Angeles", Country: "United States"},
	{Code: "ORD", Name: "O'Hare International Airport", City: "Chicago", Country: "United States"},
	{Code: "MIA", Name: "Miami International Airport", City: "Miami", Country: "United States"},
	{Code: "SFO", Name: "San Francisco International Airport", City: "San Francisco", Country: "United States"},
	{Code: "ATL", Name: "Hartsfield-Jackson Atlanta International Airport", City: "Atlanta", Country: "United States"},
	{Code: "DFW", Name: "Dallas/Fort Worth International Airport", City: "Dallas", Country: "United States"},
	{Code: "SEA", Name: "Seattle-Tacoma International Airport", City: "Seattle", Country: "United States"},
	{Code: "LAS", Name: "Harry Reid International Airport", City: "Las Vegas", Country: "United States"},
	{Code: "BOS", Name: "Logan International Airport", City: "Boston", Country: "United States"},

	// United Kingdom
	{Code: "LHR", Name: "Heathrow Airport", City: "London", Country: "United Kingdom"},
	{Code: "LGW", Name: "Gatwick Airport", City: "London", Country: "United Kingdom"},
	{Code: "MAN", Name: "Manchester Airport", City: "Manchester", Country: "United Kingdom"},
	{Code: "EDI", Name: "Edinburgh Airport", City: "Edinburgh", Country: "United Kingdom"},

	// Europe
	{Code: "CDG", Name: "Charles de Gaulle Airport", City: "Paris", Country: "France"},
	{Code: "FRA", Name: "Frankfurt Airport", City: "Frankfurt", Country: "Germany"},
	{Code: "AMS", Name: "Amsterdam Airport Schiphol", City: "Amsterdam", Country: "Netherlands"},
	{Code: "MAD", Name: "Adolfo Suárez Madrid-Barajas Airport", City: "Madrid", Country: "Spain"},
	{Code: "BCN", Name: "Barcelona-El Prat Airport", City: "Barcelona", Country: "Spain"},
	{Code: "FCO", Name: "Leonardo da Vinci-Fiumicino Airport", City: "Rome", Country: "Italy"},
	{Code: "MXP", Name: "Malpensa Airport", City: "Milan", Country: "Italy"},
	{Code: "MUC", Name: "Munich Airport", City: "Munich", Country: "Germany"},
	{Code: "ZRH", Name: "Zurich Airport", City: "Zurich", Country: "Switzerland"},
	{Code: "VIE", Name: "Vienna International Airport", City: "Vienna", Country: "Austria"},
	{Code: "CPH", Name: "Copenhagen Airport", City: "Copenhagen", Country: "Denmark"},
	{Code: "ARN", Name: "Stockholm Arlanda Airport", City: "Stockholm", Country: "Sweden"},
	{Code: "OSL", Name: "Oslo Airport", City: "Oslo", Country: "Norway"},
	{Code: "LIS", Name: "Lisbon Portela Airport", City: "Lisbon", Country: "Portugal"},
	{Code: "DUB", Name: "Dublin Airport", City: "Dublin", Country: "Ireland"},
	{Code: "ATH", Name: "Athens International Airport", City: "Athens", Country: "Greece"},
	{Code: "IST", Name: "Istanbul Airport", City: "Istanbul", Country: "Turkey"},
	{Code: "PRG", Name: "Václav Havel Airport Prague", City: "Prague", Country: "Czech Republic"},
	{Code: "WAW", Name: "Warsaw Chopin Airport", City: "Warsaw", Country: "Poland"},
	{Code: "BUD", Name: "Budapest Ferenc Liszt International Airport", City: "Budapest", Country: "Hungary"},

	// Middle East
	{Code: "DXB", Name: "Dubai International Airport", City: "Dubai", Country: "United Arab Emirates"},
	{Code: "DOH", Name: "Hamad International Airport", City: "Doha", Country: "Qatar"},
	{Code: "AUH", Name: "Abu Dhabi International Airport", City: "Abu Dhabi", Country: "United Arab Emirates"},
	{Code: "TLV", Name: "Ben Gurion Airport", City: "Tel Aviv", Country: "Israel"},
	{Code: "CAI", Name: "Cairo International Airport", City: "Cairo", Country: "Egypt"},
	{Code: "RUH", Name: "King Khalid International Airport", City: "Riyadh", Country: "Saudi Arabia"},
	{Code: "JED", Name: "King Abdulaziz International Airport", City: "Jeddah", Country: "Saudi Arabia"},

	// Asia
	{Code: "HND", Name: "Tokyo Haneda Airport", City: "Tokyo", Country: "Japan"},
	{Code: "NRT", Name: "Narita International Airport", City: "Tokyo", Country: "Japan"},
	{Code: "PEK", Name: "Beijing Capital International Airport", City: "Beijing", Country: "China"},
	{Code: "PVG", Name: "Shanghai Pudong International Airport", City: "Shanghai", Country: "China"},
	{Code: "HKG", Name: "Hong Kong International Airport", City: "Hong Kong", Country: "Hong Kong"},
	{Code: "SIN", Name: "Singapore Changi Airport", City: "Singapore", Country: "Singapore"},
	{Code: "ICN", Name: "Incheon International Airport", City: "Seoul", Country: "South Korea"},
	{Code: "BKK", Name: "Suvarnabhumi Airport", City: "Bangkok", Country: "Thailand"},
	{Code: "KUL", Name: "Kuala Lumpur International Airport", City: "Kuala Lumpur", Country: "Malaysia"},
	{Code: "DEL", Name: "Indira Gandhi International Airport", City: "Delhi", Country: "India"},
	{Code: "BOM", Name: "Chhatrapati Shivaji Maharaj International Airport", City: "Mumbai", Country: "India"},
	{Code: "BLR", Name: "Kempegowda International Airport", City: "Bangalore", Country: "India"},
	{Code: "CGK", Name: "Soekarno-Hatta International Airport", City: "Jakarta", Country: "Indonesia"},
	{Code: "MNL", Name: "Ninoy Aquino International Airport", City: "Manila", Country: "Philippines"},

	// Africa
	{Code: "JNB", Name: "O.R. Tambo International Airport", City: "Johannesburg", Country: "South Africa"},
	{Code: "CPT", Name: "Cape Town International Airport", City: "Cape Town", Country: "South Africa"},
	{Code: "LOS", Name: "Murtala Muhammed International Airport", City: "Lagos", Country: "Nigeria"},

	// Oceania
	{Code: "SYD", Name: "Sydney Kingsford Smith Airport", City: "Sydney", Country: "Australia"},
	{Code: "MEL", Name: "Melbourne Airport", City: "Melbourne", Country: "Australia"},
	{Code: "BNE", Name: "Brisbane Airport", City: "Brisbane", Country: "Australia"},
	{Code: "PER", Name: "Perth Airport", City: "Perth", Country: "Australia"},
	{Code: "AKL", Name: "Auckland Airport", City: "Auckland", Country: "New Zealand"},

	// South America
	{Code: "GRU", Name: "São Paulo/Guarulhos International Airport", City: "São Paulo", Country: "Brazil"},
	{Code: "GIG", Name: "Rio de Janeiro/Galeão International Airport", City: "Rio de Janeiro", Country: "Brazil"},
	{Code: "EZE", Name: "Ministro Pistarini International Airport", City: "Buenos Aires", Country: "Argentina"},
	{Code: "BOG", Name: "El Dorado International Airport", City: "Bogotá", Country: "Colombia"},
	{Code: "LIM", Name: "Jorge Chávez International Airport", City: "Lima", Country: "Peru"},
	{Code: "SCL", Name: "Arturo Merino Benítez International Airport", City: "Santiago", Country: "Chile"},

	// Canada
	{Code: "YYZ", Name: "Toronto Pearson International Airport", City: "Toronto", Country: "Canada"},
	{Code: "YVR", Name: "Vancouver International Airport", City: "Vancouver", Country: "Canada"},
	{Code: "YUL", Name: "Montréal-Pierre Elliott Trudeau International Airport", City: "Montreal", Country: "Canada"},
	{Code: "YYC", Name: "Calgary International Airport", City: "Calgary", Country: "Canada"},
}

// SearchAirports returns up to 10 airports whose code, name, city or country contains
// the query, case-insensitively, in table order. Queries shorter than two characters
// match nothing to avoid flooding the autocomplete.
func SearchAirports(query string) []domain.Airport {
	if len([]rune(query)) < 2 {
		return nil
	}

	term := strings.ToLower(query)
	matches := make([]domain.Airport, 0, maxSearchResults)
	for _, a := range airports {
		if strings.Contains(strings.ToLower(a.Code), term) ||
			strings.Contains(strings.ToLower(a.Name), term) ||
			strings.Contains(strings.ToLower(a.City), term) ||
			strings.Contains(strings.ToLower(a.Country), term) {
			matches = append(matches, a)
			if len(matches) == maxSearchResults {
				break
			}
		}
	}
	return matches
}
