package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Kibe27/flightsasa/api"
	"github.com/Kibe27/flightsasa/config"
	"github.com/Kibe27/flightsasa/internal/service/booking"
	"github.com/Kibe27/flightsasa/internal/service/search"
	"github.com/Kibe27/flightsasa/internal/service/settings"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Run starts the HTTP server and blocks until the context is canceled or the server
// fails.
func Run(ctx context.Context, cfg *config.Config, searchSvc search.SearchUseCase, bookingSvc booking.BookingUseCase, settingsSvc settings.SettingsUseCase) error {
	router := newRouter(searchSvc, bookingSvc, settingsSvc)

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newRouter(searchSvc search.SearchUseCase, bookingSvc booking.BookingUseCase, settingsSvc settings.SettingsUseCase) *gin.Engine {
	router := gin.Default()

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api.NewAirportHandler().Register(router.Group("/airports"))
	api.NewFlightHandler(searchSvc).Register(router.Group("/flights"))
	api.NewBookingHandler(bookingSvc).Register(router.Group("/bookings"))
	api.NewAdminHandler(settingsSvc).Register(router.Group("/admin"))

	return router
}
