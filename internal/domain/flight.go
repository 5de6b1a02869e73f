package domain

const (
	CabinEconomy        = "Economy"
	CabinPremiumEconomy = "Premium Economy"
	CabinBusiness       = "Business"
	CabinFirst          = "First"
)

// Endpoint is one side of a flight leg. Time is local "HH:MM", Date is "YYYY-MM-DD".
type Endpoint struct {
	Airport string `json:"airport"`
	Time    string `json:"time"`
	Date    string `json:"date"`
}

// FlightOption is a synthetic search result. It lives for one search response only;
// the ID is unique per generation and is not a stable key for later lookup.
type FlightOption struct {
	ID             string   `json:"id"`
	Airline        Airline  `json:"airline"`
	FlightNumber   string   `json:"flight_number"`
	Departure      Endpoint `json:"departure"`
	Arrival        Endpoint `json:"arrival"`
	Duration       string   `json:"duration"`
	Stops          int      `json:"stops"`
	Price          float64  `json:"price"`
	Currency       string   `json:"currency"`
	CabinClass     string   `json:"cabin_class"`
	SeatsAvailable int      `json:"seats_available"`
}
