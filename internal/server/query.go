package server

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/balkashynov/learnlog/internal/analytics"
	"github.com/balkashynov/learnlog/internal/parser"
)

// parseQuery reads the date range and filters from the query string. Filter
// parameters may be repeated or comma-separated. A reversed range is not an
// error; it selects nothing.
func parseQuery(c *fiber.Ctx) (analytics.Query, error) {
	var q analytics.Query

	from, err := parseDateParam(c, "start_date")
	if err != nil {
		return q, err
	}
	to, err := parseDateParam(c, "end_date")
	if err != nil {
		return q, err
	}
	q.From, q.To = from, to
	q.Media = multiParam(c, "medium")
	q.Titles = multiParam(c, "title")
	q.Teachers = multiParam(c, "teacher")
	q.Tags = multiParam(c, "tag")
	return q, nil
}

func parseDateParam(c *fiber.Ctx, key string) (*time.Time, error) {
	value := c.Query(key)
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s format. Use YYYY-MM-DD", key)
	}
	return &t, nil
}

func multiParam(c *fiber.Ctx, key string) []string {
	var values []string
	for _, raw := range c.Context().QueryArgs().PeekMulti(key) {
		values = append(values, string(raw))
	}
	return parser.SplitList(values...)
}
