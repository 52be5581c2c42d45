package server

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/balkashynov/learnlog/internal/analytics"
	"github.com/balkashynov/learnlog/internal/logger"
)

// Summary is the headline numbers of a report
type Summary struct {
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	TotalDurationMin float64   `json:"total_duration_min"`
	TotalFormatted   string    `json:"total_formatted"`
	CurrentStreak    int       `json:"current_streak"`
	MaxStreak        int       `json:"max_streak"`
	SessionCount     int       `json:"session_count"`
}

// buildReport loads the records and runs the pipeline for the request's
// selection. Failures come back as *fiber.Error for errorHandler to render.
func (s *Server) buildReport(c *fiber.Ctx) (analytics.Report, error) {
	q, err := parseQuery(c)
	if err != nil {
		return analytics.Report{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	sessions, err := s.source.Sessions(c.UserContext())
	if err != nil {
		s.log.Errorf(logger.TypeHTTP, "failed to load sessions: %v", err)
		return analytics.Report{}, fiber.NewError(fiber.StatusInternalServerError, "failed to load sessions")
	}

	return analytics.BuildReport(sessions, s.minDate, s.now(), q), nil
}

func rangeMeta(r analytics.Report) fiber.Map {
	return fiber.Map{
		"start_date": r.StartDate.Format(time.DateOnly),
		"end_date":   r.EndDate.Format(time.DateOnly),
	}
}

func (s *Server) health(c *fiber.Ctx) error {
	return Success(c, fiber.StatusOK, fiber.Map{"status": "ok"})
}

func (s *Server) report(c *fiber.Ctx) error {
	r, err := s.buildReport(c)
	if err != nil {
		return err
	}
	// per-day activity is served by /api/streaks
	r.Streaks.Days = nil
	return Success(c, fiber.StatusOK, r)
}

func (s *Server) calendar(c *fiber.Ctx) error {
	r, err := s.buildReport(c)
	if err != nil {
		return err
	}
	meta := rangeMeta(r)
	meta["rows"] = len(r.Filtered)
	return Success(c, fiber.StatusOK, r.Filtered, meta)
}

func (s *Server) sessions(c *fiber.Ctx) error {
	r, err := s.buildReport(c)
	if err != nil {
		return err
	}
	meta := rangeMeta(r)
	meta["count"] = len(r.Sessions)
	return Success(c, fiber.StatusOK, r.Sessions, meta)
}

func (s *Server) options(c *fiber.Ctx) error {
	r, err := s.buildReport(c)
	if err != nil {
		return err
	}
	return Success(c, fiber.StatusOK, r.Options)
}

func (s *Server) streaks(c *fiber.Ctx) error {
	r, err := s.buildReport(c)
	if err != nil {
		return err
	}
	return Success(c, fiber.StatusOK, r.Streaks, rangeMeta(r))
}

func (s *Server) heatmap(c *fiber.Ctx) error {
	r, err := s.buildReport(c)
	if err != nil {
		return err
	}
	return Success(c, fiber.StatusOK, r.Heatmap, rangeMeta(r))
}

func (s *Server) summary(c *fiber.Ctx) error {
	r, err := s.buildReport(c)
	if err != nil {
		return err
	}
	return Success(c, fiber.StatusOK, Summary{
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		TotalDurationMin: r.TotalDurationMin,
		TotalFormatted:   r.TotalFormatted,
		CurrentStreak:    r.Streaks.Current,
		MaxStreak:        r.Streaks.Max,
		SessionCount:     len(r.Sessions),
	})
}
