package server

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/refpay/earnings-be/internal/config"
	"github.com/refpay/earnings-be/internal/handler"
	"github.com/refpay/earnings-be/internal/middleware"
	"github.com/refpay/earnings-be/pkg/logger"
)

type Server struct {
	echo            *echo.Echo
	cfg             *config.Config
	logger          *logger.Logger
	earningsHandler *handler.EarningsHandler
	healthHandler   *handler.HealthHandler
}

func New(
	cfg *config.Config,
	log *logger.Logger,
	earningsHandler *handler.EarningsHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	return &Server{
		echo:            e,
		cfg:             cfg,
		logger:          log,
		earningsHandler: earningsHandler,
		healthHandler:   healthHandler,
	}
}

func (s *Server) Start() error {
	s.setupMiddleware()
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%s", s.cfg.Server.Host, s.cfg.Server.Port)
	s.logger.Info(context.Background(), "Starting HTTP server",
		"address", addr,
	)

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info(ctx, "Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupMiddleware() {
	s.echo.Use(echoMiddleware.Recover())
	s.echo.Use(echoMiddleware.CORS())
	s.echo.Use(middleware.RequestID())
	s.echo.Use(middleware.Logging(s.logger))
}

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthHandler.Check)

	api := s.echo.Group("/api/v1")
	api.POST("/earnings/bulk", s.earningsHandler.BulkUpload)
	api.POST("/earnings/bulk-approve", s.earningsHandler.BulkApprove)
	api.POST("/earnings/bulk-reject", s.earningsHandler.BulkReject)
	api.POST("/earnings/:id/approve", s.earningsHandler.Approve)
	api.POST("/earnings/:id/reject", s.earningsHandler.Reject)
	api.GET("/earnings", s.earningsHandler.List)
	api.GET("/earnings/template", s.earningsHandler.Template)
}

func (s *Server) Handler() *echo.Echo {
	s.setupMiddleware()
	s.setupRoutes()
	return s.echo
}
