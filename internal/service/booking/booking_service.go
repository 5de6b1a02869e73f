package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Kibe27/flightsasa/internal/domain"
	"github.com/Kibe27/flightsasa/internal/kafka"
	"github.com/Kibe27/flightsasa/internal/repository"
	"github.com/Kibe27/flightsasa/pkg/logger"
	"github.com/Kibe27/flightsasa/pkg/metrics"
	"github.com/google/uuid"
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	GetBooking(ctx context.Context, reference string) (*domain.Booking, error)
	ConfirmBooking(ctx context.Context, reference string) (*domain.Booking, error)
	CancelBooking(ctx context.Context, reference string) (*domain.Booking, error)
	ExpirePendingBookings(ctx context.Context) ([]domain.Booking, error)
}

type Cache interface {
	AcquireBookingLock(ctx context.Context, key string, ttl time.Duration) (bool, error)
	ReleaseBookingLock(ctx context.Context, key string) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	cache              Cache
	producer           Producer
	eventsTopic        string
	notificationsTopic string
	holdTTL            time.Duration
	confirmationTTL    time.Duration
	metrics            *metrics.Metrics
	log                logger.Logger
}

// CreateBookingInput carries the snapshot of the flight option the traveler selected.
// Options are regenerated per search, so everything needed for the ticket rides along
// here instead of a foreign key.
type CreateBookingInput struct {
	AirlineName   string  `json:"airline_name"`
	FlightNumber  string  `json:"flight_number"`
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DepartureDate string  `json:"departure_date"`
	DepartureTime string  `json:"departure_time"`
	CabinClass    string  `json:"cabin_class"`
	Travelers     int     `json:"travelers"`
	TotalPrice    float64 `json:"total_price"`
	PassengerName string  `json:"passenger_name"`
	Email         string  `json:"email"`
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) { s.notificationsTopic = topic }
}

func WithMetrics(m *metrics.Metrics) BookingServiceOption {
	return func(s *BookingService) { s.metrics = m }
}

func WithLogger(log logger.Logger) BookingServiceOption {
	return func(s *BookingService) { s.log = log }
}

func NewBookingService(
	bookings repository.BookingRepository,
	cache Cache,
	producer Producer,
	eventsTopic string,
	holdTTL, confirmationTTL time.Duration,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:        bookings,
		cache:           cache,
		producer:        producer,
		eventsTopic:     eventsTopic,
		holdTTL:         holdTTL,
		confirmationTTL: confirmationTTL,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if input.Travelers <= 0 {
		return nil, errors.New("travelers must be positive")
	}
	if input.Email == "" {
		return nil, errors.New("email is required")
	}
	if input.FlightNumber == "" || input.AirlineName == "" {
		return nil, errors.New("flight selection is required")
	}
	if input.TotalPrice <= 0 {
		return nil, errors.New("total price must be positive")
	}

	lockKey := submissionKey(input.FlightNumber, input.DepartureDate, input.Email)
	locked := false
	if s.cache != nil {
		ok, err := s.cache.AcquireBookingLock(ctx, lockKey, s.holdTTL)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errors.New("booking already in progress for this flight")
		}
		locked = true
	}

	expiresIn := s.confirmationTTL
	if expiresIn == 0 {
		expiresIn = s.holdTTL
	}

	booking := &domain.Booking{
		Reference:     uuid.NewString(),
		AirlineName:   input.AirlineName,
		FlightNumber:  input.FlightNumber,
		Origin:        input.Origin,
		Destination:   input.Destination,
		DepartureDate: input.DepartureDate,
		DepartureTime: input.DepartureTime,
		CabinClass:    input.CabinClass,
		Travelers:     input.Travelers,
		TotalPrice:    input.TotalPrice,
		PassengerName: input.PassengerName,
		Email:         input.Email,
		ExpiresAt:     time.Now().Add(expiresIn),
	}

	if err := s.bookings.CreatePending(ctx, booking); err != nil {
		if locked {
			_ = s.cache.ReleaseBookingLock(ctx, lockKey)
		}
		return nil, err
	}

	s.publish(ctx, "booking_created", booking)
	return booking, nil
}

func (s *BookingService) GetBooking(ctx context.Context, reference string) (*domain.Booking, error) {
	return s.bookings.GetByReference(ctx, reference)
}

func (s *BookingService) ConfirmBooking(ctx context.Context, reference string) (*domain.Booking, error) {
	current, err := s.bookings.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if current.Status != domain.BookingStatusPending {
		return nil, errors.New("booking is not pending")
	}

	updated, err := s.bookings.UpdateStatus(ctx, reference, domain.BookingStatusConfirmed)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, "booking_confirmed", updated)
	s.releaseLock(ctx, updated)
	return updated, nil
}

func (s *BookingService) CancelBooking(ctx context.Context, reference string) (*domain.Booking, error) {
	current, err := s.bookings.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if current.Status == domain.BookingStatusCancelled || current.Status == domain.BookingStatusExpired {
		return current, nil
	}

	updated, err := s.bookings.UpdateStatus(ctx, reference, domain.BookingStatusCancelled)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, "booking_cancelled", updated)
	s.releaseLock(ctx, updated)
	return updated, nil
}

func (s *BookingService) ExpirePendingBookings(ctx context.Context) ([]domain.Booking, error) {
	expired, err := s.bookings.ExpirePendingBefore(ctx, time.Now())
	if err != nil {
		return nil, err
	}
	for _, b := range expired {
		s.publish(ctx, "booking_expired", &b)
		s.releaseLock(ctx, &b)
	}
	return expired, nil
}

func (s *BookingService) releaseLock(ctx context.Context, b *domain.Booking) {
	if s.cache == nil {
		return
	}
	_ = s.cache.ReleaseBookingLock(ctx, submissionKey(b.FlightNumber, b.DepartureDate, b.Email))
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) {
	if s.metrics != nil {
		s.metrics.BookingEvents.WithLabelValues(eventType).Inc()
	}
	if s.producer == nil || s.eventsTopic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:          eventType,
		Reference:     booking.Reference,
		AirlineName:   booking.AirlineName,
		FlightNumber:  booking.FlightNumber,
		Origin:        booking.Origin,
		Destination:   booking.Destination,
		DepartureDate: booking.DepartureDate,
		Travelers:     booking.Travelers,
		TotalPrice:    booking.TotalPrice,
		Email:         booking.Email,
		Status:        string(booking.Status),
		ExpiresAt:     booking.ExpiresAt,
	}
	if err := s.producer.Publish(ctx, s.eventsTopic, booking.Reference, event); err != nil && s.log != nil {
		s.log.Warn("failed to publish booking event", "event", eventType, "reference", booking.Reference, "error", err)
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, booking.Reference, event); err != nil && s.log != nil {
			s.log.Warn("failed to publish notification", "event", eventType, "reference", booking.Reference, "error", err)
		}
	}
}

func submissionKey(flightNumber, departureDate, email string) string {
	return fmt.Sprintf("%s:%s:%s", flightNumber, departureDate, email)
}

var _ BookingUseCase = (*BookingService)(nil)
