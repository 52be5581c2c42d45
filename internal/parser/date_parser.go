package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	dmyRegex      = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	isoRegex      = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	relativeRegex = regexp.MustCompile(`^(\d+)\s+(day|days|week|weeks)\s+ago$`)
	clockRegex    = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
)

// ParseDate parses a calendar date typed on the command line
// Supported formats:
// - dd/mm/yyyy (e.g., "15/12/2024")
// - yyyy-mm-dd (e.g., "2024-12-15")
// - today, yesterday
// - X days ago, X weeks ago (e.g., "3 days ago")
//
// The result is midnight in now's location.
func ParseDate(input string, now time.Time) (time.Time, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch input {
	case "today":
		return today, nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}

	if m := dmyRegex.FindStringSubmatch(input); m != nil {
		return buildDate(m[3], m[2], m[1], now.Location())
	}
	if m := isoRegex.FindStringSubmatch(input); m != nil {
		return buildDate(m[1], m[2], m[3], now.Location())
	}
	if m := relativeRegex.FindStringSubmatch(input); m != nil {
		return parseRelativeDate(m[1], m[2], today)
	}

	return time.Time{}, fmt.Errorf("invalid date format %q. Use: dd/mm/yyyy, yyyy-mm-dd, today, yesterday, or X days ago", input)
}

// ParseDateTime parses a point in time: a date as accepted by ParseDate
// followed by HH:MM, or HH:MM alone for today.
func ParseDateTime(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)

	datePart, clockPart := "", input
	if i := strings.LastIndex(input, " "); i >= 0 {
		datePart, clockPart = input[:i], input[i+1:]
	}

	m := clockRegex.FindStringSubmatch(clockPart)
	if m == nil {
		return time.Time{}, fmt.Errorf("invalid time %q. Use: HH:MM or <date> HH:MM", input)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return time.Time{}, fmt.Errorf("invalid time of day %q", clockPart)
	}

	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if datePart != "" {
		parsed, err := ParseDate(datePart, now)
		if err != nil {
			return time.Time{}, err
		}
		day = parsed
	}

	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute), nil
}

// ParseMinutes parses a session length: plain minutes ("45") or a Go
// duration ("1h30m", "90m").
func ParseMinutes(input string) (time.Duration, error) {
	input = strings.TrimSpace(input)
	if n, err := strconv.Atoi(input); err == nil {
		if n <= 0 {
			return 0, fmt.Errorf("minutes must be positive")
		}
		return time.Duration(n) * time.Minute, nil
	}

	d, err := time.ParseDuration(input)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q. Use: 45, 90m, or 1h30m", input)
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive")
	}
	return d, nil
}

// buildDate validates the components and rejects impossible dates such as
// 31/02/2024.
func buildDate(yearStr, monthStr, dayStr string, loc *time.Location) (time.Time, error) {
	year, _ := strconv.Atoi(yearStr)
	month, _ := strconv.Atoi(monthStr)
	day, _ := strconv.Atoi(dayStr)

	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("month must be between 1 and 12")
	}
	if day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("day must be between 1 and 31")
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	if date.Day() != day || date.Month() != time.Month(month) || date.Year() != year {
		return time.Time{}, fmt.Errorf("invalid date")
	}
	return date, nil
}

func parseRelativeDate(amountStr, unit string, today time.Time) (time.Time, error) {
	amount, err := strconv.Atoi(amountStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid number")
	}

	switch unit {
	case "day", "days":
		return today.AddDate(0, 0, -amount), nil
	case "week", "weeks":
		return today.AddDate(0, 0, -7*amount), nil
	default:
		return time.Time{}, fmt.Errorf("unsupported time unit")
	}
}

// FormatDate formats a calendar day the way dates are shown in listings
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}
