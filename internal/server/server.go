package server

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/balkashynov/learnlog/internal/logger"
	"github.com/balkashynov/learnlog/internal/models"
)

// SessionSource loads the full record set for one request
type SessionSource interface {
	Sessions(ctx context.Context) ([]models.Session, error)
}

// SourceFunc adapts a plain function, such as db.GetSessions, to SessionSource
type SourceFunc func(ctx context.Context) ([]models.Session, error)

func (f SourceFunc) Sessions(ctx context.Context) ([]models.Session, error) {
	return f(ctx)
}

// Server exposes the analytics over HTTP
type Server struct {
	app     *fiber.App
	source  SessionSource
	minDate time.Time
	now     func() time.Time
	log     *logger.Logger
}

type Option func(*Server)

// WithClock replaces time.Now, used to pin "today" in tests
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// New builds the fiber app with middleware and routes
func New(source SessionSource, minDate time.Time, log *logger.Logger, opts ...Option) *Server {
	s := &Server{
		source:  source,
		minDate: minDate,
		now:     time.Now,
		log:     log,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "learnlog",
		DisableStartupMessage: true,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		ErrorHandler:          errorHandler,
	})

	s.app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	s.app.Use(LoggingMiddleware(log))

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.app.Get("/health", s.health)

	api := s.app.Group("/api")
	api.Get("/report", s.report)
	api.Get("/calendar", s.calendar)
	api.Get("/sessions", s.sessions)
	api.Get("/options", s.options)
	api.Get("/streaks", s.streaks)
	api.Get("/heatmap", s.heatmap)
	api.Get("/summary", s.summary)
}

// App returns the underlying fiber app
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves until Shutdown is called
func (s *Server) Listen(addr string) error {
	s.log.Infof(logger.TypeHTTP, "listening on %s", addr)
	return s.app.Listen(addr)
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}
