package main

import (
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hotelops/dashboard-service/config"
	"github.com/hotelops/dashboard-service/internal/auth"
	"github.com/hotelops/dashboard-service/internal/handler"
	"github.com/hotelops/dashboard-service/internal/middleware"
	"github.com/hotelops/dashboard-service/internal/service"
	"github.com/hotelops/dashboard-service/internal/upstream"
	"github.com/hotelops/dashboard-service/pkg/alert"
	"github.com/hotelops/dashboard-service/pkg/httpclient"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})

	cfg := config.Load()

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	// Upstream credential: one session token for every repository call,
	// owned here rather than read from global state by an interceptor.
	creds := auth.NewCredential(cfg.UpstreamAPIToken)
	api := httpclient.New(cfg.UpstreamBaseURL, creds)

	// Entity clients
	bookings := upstream.NewBookingClient(api)
	rooms := upstream.NewRoomClient(api)
	invoices := upstream.NewInvoiceClient(api)
	catalog := upstream.NewCatalogClient(api)
	site := upstream.NewSiteClient(api)
	countries := upstream.NewCountryClient(api)

	// Reconciliation alerts: RabbitMQ when configured, dropped otherwise.
	var alerts alert.Sink = alert.Nop{}
	if cfg.RabbitURL != "" {
		pub, err := alert.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to RabbitMQ")
		}
		defer pub.Close()
		alerts = pub
	}

	coord := service.NewCoordinator(bookings, rooms, invoices, alerts)

	// Echo
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Validator = handler.NewValidator()
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Info().Str("method", v.Method).Str("uri", v.URI).Int("status", v.Status).Msg("request")
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "dashboard-service"})
	})

	handler.NewBookingHandler(coord, bookings).RegisterRoutes(e)
	handler.NewPagesHandler(rooms, invoices, catalog, site, countries).RegisterRoutes(e)

	log.Info().Str("port", cfg.ServerPort).Msg("dashboard service starting")
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
