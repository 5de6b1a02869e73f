package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusExpired   BookingStatus = "EXPIRED"
)

// Booking is a persisted snapshot of a selected flight option. Options themselves are
// regenerated per search, so everything needed for the ticket is copied in here and a
// fresh reference is minted at creation time.
type Booking struct {
	ID            int64
	Reference     string
	AirlineName   string
	FlightNumber  string
	Origin        string
	Destination   string
	DepartureDate string
	DepartureTime string
	CabinClass    string
	Travelers     int
	TotalPrice    float64
	PassengerName string
	Email         string
	Status        BookingStatus
	ExpiresAt     time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
