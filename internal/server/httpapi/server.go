// Package httpapi exposes the REST surface of the server: account routes,
// token-protected fleet administration, and the device position ingestion
// endpoint.
package httpapi

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/rwandev/busfleet/internal/logging"
	"github.com/rwandev/busfleet/internal/server/config"
	"github.com/rwandev/busfleet/internal/server/services"
)

type Server struct {
	app            *fiber.App
	addr           string
	logger         logging.Logger
	users          *services.UserService
	fleet          *services.FleetService
	devices        *services.DeviceService
	requestTimeout time.Duration
}

func NewServer(cfg *config.Config, l logging.Logger, us *services.UserService, fs *services.FleetService, ds *services.DeviceService) *Server {
	s := &Server{
		addr:           cfg.EndpointAddr,
		logger:         l.With("module", "http_server"),
		users:          us,
		fleet:          fs,
		devices:        ds,
		requestTimeout: cfg.RequestTimeout,
	}
	s.app = fiber.New(fiber.Config{ErrorHandler: s.unhandledError})
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.app.Group("/api")

	// public
	api.Post("/register", s.register)
	api.Post("/login", s.login)

	// fleet administration, bearer token required; middleware runs first,
	// the terminal handler is only reached through c.Next()
	api.Post("/schools", s.requireAuth, s.createSchool)
	api.Get("/schools", s.requireAuth, s.listSchools)
	api.Get("/schools/count", s.requireAuth, s.countSchools)
	api.Post("/destinations", s.requireAuth, s.createDestination)
	api.Get("/destinations", s.requireAuth, s.listDestinations)
	api.Post("/buses", s.requireAuth, s.createBus)
	api.Get("/buses", s.requireAuth, s.listBuses)
	api.Get("/buses/count", s.requireAuth, s.countBuses)
	api.Post("/children", s.requireAuth, s.createChild)
	api.Get("/children/count", s.requireAuth, s.countChildren)
	api.Post("/drivers", s.requireAuth, s.createDriver)
	api.Get("/drivers", s.requireAuth, s.listDrivers)
	api.Post("/devices", s.requireAuth, s.registerDevice)
	api.Get("/devices", s.requireAuth, s.listDevices)

	// ingestion, device API key required
	api.Post("/gps-data", s.requireDeviceKey, s.recordPosition)
}

// opCtx derives a deadline-bound context for one store round-trip.
func (s *Server) opCtx(c fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Context(), s.requestTimeout)
}

// unhandledError catches errors returned outside the handlers' own mapping,
// including fiber's routing errors. Anything unexpected becomes a generic 500
// so internals never leak to clients.
func (s *Server) unhandledError(c fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	}
	s.logger.Error(c.Context(), "unhandled error", "path", c.Path(), "error", err.Error())
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.app.ShutdownWithContext(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.addr)
	return s.app.Listen(s.addr, fiber.ListenConfig{DisableStartupMessage: true})
}
