package api

import (
	"net/http"
	"time"

	"github.com/Kibe27/flightsasa/internal/domain"
	"github.com/Kibe27/flightsasa/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	AirlineName   string  `json:"airline_name" binding:"required"`
	FlightNumber  string  `json:"flight_number" binding:"required"`
	Origin        string  `json:"origin" binding:"required,len=3"`
	Destination   string  `json:"destination" binding:"required,len=3"`
	DepartureDate string  `json:"departure_date" binding:"required,datetime=2006-01-02"`
	DepartureTime string  `json:"departure_time" binding:"required"`
	CabinClass    string  `json:"cabin_class" binding:"required,oneof='Economy' 'Premium Economy' 'Business' 'First'"`
	Travelers     int     `json:"travelers" binding:"required,min=1"`
	TotalPrice    float64 `json:"total_price" binding:"required,gt=0"`
	PassengerName string  `json:"passenger_name" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
}

type bookingResponse struct {
	Reference     string  `json:"reference"`
	Status        string  `json:"status"`
	ExpiresAt     string  `json:"expires_at"`
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

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/:reference", h.get)
	router.PUT("/:reference", h.confirm)
	router.DELETE("/:reference", h.cancel)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.service.CreateBooking(c.Request.Context(), booking.CreateBookingInput{
		AirlineName:   req.AirlineName,
		FlightNumber:  req.FlightNumber,
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
		DepartureTime: req.DepartureTime,
		CabinClass:    req.CabinClass,
		Travelers:     req.Travelers,
		TotalPrice:    req.TotalPrice,
		PassengerName: req.PassengerName,
		Email:         req.Email,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, toBookingResponse(created))
}

func (h *BookingHandler) get(c *gin.Context) {
	found, err := h.service.GetBooking(c.Request.Context(), c.Param("reference"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(found))
}

func (h *BookingHandler) confirm(c *gin.Context) {
	confirmed, err := h.service.ConfirmBooking(c.Request.Context(), c.Param("reference"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(confirmed))
}

func (h *BookingHandler) cancel(c *gin.Context) {
	cancelled, err := h.service.CancelBooking(c.Request.Context(), c.Param("reference"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(cancelled))
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		Reference:     b.Reference,
		Status:        string(b.Status),
		ExpiresAt:     b.ExpiresAt.Format(time.RFC3339),
		AirlineName:   b.AirlineName,
		FlightNumber:  b.FlightNumber,
		Origin:        b.Origin,
		Destination:   b.Destination,
		DepartureDate: b.DepartureDate,
		DepartureTime: b.DepartureTime,
		CabinClass:    b.CabinClass,
		Travelers:     b.Travelers,
		TotalPrice:    b.TotalPrice,
		PassengerName: b.PassengerName,
		Email:         b.Email,
	}
}
