package api

import (
	"net/http"

	"github.com/Kibe27/flightsasa/internal/fare"
	"github.com/Kibe27/flightsasa/internal/service/settings"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	service settings.SettingsUseCase
}

type updatePricingRequest struct {
	Level int `json:"level" binding:"required,min=1,max=10"`
}

type pricingResponse struct {
	Level      int     `json:"current_pricing_level"`
	Multiplier float64 `json:"multiplier"`
}

func NewAdminHandler(service settings.SettingsUseCase) *AdminHandler {
	return &AdminHandler{service: service}
}

func (h *AdminHandler) Register(router *gin.RouterGroup) {
	router.GET("/pricing", h.getPricing)
	router.PUT("/pricing", h.updatePricing)
}

func (h *AdminHandler) getPricing(c *gin.Context) {
	level, err := h.service.CurrentPricingLevel(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pricingResponse{Level: level, Multiplier: fare.Multiplier(level)})
}

func (h *AdminHandler) updatePricing(c *gin.Context) {
	var req updatePricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.UpdatePricingLevel(c.Request.Context(), req.Level); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pricingResponse{Level: req.Level, Multiplier: fare.Multiplier(req.Level)})
}
