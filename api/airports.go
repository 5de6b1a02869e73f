package api

import (
	"net/http"

	"github.com/Kibe27/flightsasa/internal/directory"
	"github.com/gin-gonic/gin"
)

type AirportHandler struct{}

func NewAirportHandler() *AirportHandler {
	return &AirportHandler{}
}

func (h *AirportHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.search)
}

func (h *AirportHandler) search(c *gin.Context) {
	matches := directory.SearchAirports(c.Query("q"))
	c.JSON(http.StatusOK, matches)
}
