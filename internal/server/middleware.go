package server

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/balkashynov/learnlog/internal/logger"
)

// LoggingMiddleware writes one line per request
func LoggingMiddleware(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		event := log.For(logger.TypeHTTP).Info()
		if status >= fiber.StatusInternalServerError {
			event = log.For(logger.TypeHTTP).Error()
		}
		event.
			Str("ip", c.IP()).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")

		return err
	}
}
