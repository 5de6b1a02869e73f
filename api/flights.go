package api

import (
	"net/http"

	"github.com/Kibe27/flightsasa/internal/service/search"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service search.SearchUseCase
}

type searchRequest struct {
	Origin        string `json:"origin" binding:"required,len=3"`
	Destination   string `json:"destination" binding:"required,len=3"`
	DepartureDate string `json:"departure_date" binding:"required,datetime=2006-01-02"`
	ReturnDate    string `json:"return_date" binding:"omitempty,datetime=2006-01-02"`
	CabinClass    string `json:"cabin_class" binding:"required,oneof='Economy' 'Premium Economy' 'Business' 'First'"`
	Travelers     int    `json:"travelers" binding:"required,min=1"`
}

func NewFlightHandler(service search.SearchUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.POST("/search", h.search)
}

func (h *FlightHandler) search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	options, err := h.service.Search(c.Request.Context(), search.SearchInput{
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
		CabinClass:    req.CabinClass,
		Travelers:     req.Travelers,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, options)
}
