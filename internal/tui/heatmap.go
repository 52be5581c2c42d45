package tui

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/learnlog/internal/analytics"
)

// MaxHeatmapWeeks caps how many week columns fit on a terminal
const MaxHeatmapWeeks = 53

// HeatmapGrid is the week x weekday layout of heatmap cells. Weeks start on
// Monday; Values[weekday][week] holds minutes, with Monday as row 0. Days
// outside [Start, End] are NaN.
type HeatmapGrid struct {
	Start  time.Time
	End    time.Time
	Weeks  []time.Time // Monday of each column
	Values [7][]float64
	Max    float64
}

// mondayOf returns the Monday starting the week of day
func mondayOf(day time.Time) time.Time {
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// BuildHeatmapGrid lays the cells out by calendar week. Cells carry the
// shifted presentation date; the grid places them on the day the sessions
// happened. Ranges longer than MaxHeatmapWeeks keep the most recent weeks.
func BuildHeatmapGrid(cells []analytics.HeatmapCell, start, end time.Time) HeatmapGrid {
	start, end = analytics.DayOf(start), analytics.DayOf(end)
	if earliest := mondayOf(end).AddDate(0, 0, -7*(MaxHeatmapWeeks-1)); start.Before(earliest) {
		start = earliest
	}

	g := HeatmapGrid{Start: start, End: end}
	if end.Before(start) {
		return g
	}

	byDay := make(map[string]float64, len(cells))
	for _, c := range cells {
		byDay[c.Date().Format(time.DateOnly)] += c.DurationMin
	}

	for week := mondayOf(start); !week.After(end); week = week.AddDate(0, 0, 7) {
		g.Weeks = append(g.Weeks, week)
		for wd := 0; wd < 7; wd++ {
			day := week.AddDate(0, 0, wd)
			v := math.NaN()
			if !day.Before(start) && !day.After(end) {
				v = byDay[day.Format(time.DateOnly)]
				if v > g.Max {
					g.Max = v
				}
			}
			g.Values[wd] = append(g.Values[wd], v)
		}
	}
	return g
}

// HeatmapLevel maps minutes to a shade index in [0, len(HeatmapShades)-1].
// Zero minutes is level 0; any activity is at least level 1.
func HeatmapLevel(minutes, max float64) int {
	if minutes <= 0 || max <= 0 {
		return 0
	}
	top := len(HeatmapShades) - 1
	level := int(math.Ceil(minutes / max * float64(top)))
	if level < 1 {
		return 1
	}
	if level > top {
		return top
	}
	return level
}

var weekdayLabels = [7]string{"Mon", "", "Wed", "", "Fri", "", "Sun"}

// RenderHeatmap draws the grid with month labels along the top
func RenderHeatmap(g HeatmapGrid) string {
	if len(g.Weeks) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Italic(true).
			Render("No days in range")
	}

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))
	var b strings.Builder

	// Month labels, placed on the first week column of each month
	months := []rune(strings.Repeat(" ", len(g.Weeks)*2))
	lastMonth := time.Month(0)
	for i, week := range g.Weeks {
		if week.Month() == lastMonth {
			continue
		}
		lastMonth = week.Month()
		label := week.Format("Jan")
		if i*2+len(label) <= len(months) {
			copy(months[i*2:], []rune(label))
		}
	}
	b.WriteString(labelStyle.Render("    " + string(months)))
	b.WriteString("\n")

	for wd := 0; wd < 7; wd++ {
		b.WriteString(labelStyle.Render(padRight(weekdayLabels[wd], 4)))
		for _, v := range g.Values[wd] {
			if math.IsNaN(v) {
				b.WriteString("  ")
				continue
			}
			shade := HeatmapShades[HeatmapLevel(v, g.Max)]
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(shade)).Render("■"))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	// Legend
	b.WriteString(labelStyle.Render("    Less "))
	for _, shade := range HeatmapShades {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(shade)).Render("■"))
		b.WriteString(" ")
	}
	b.WriteString(labelStyle.Render("More"))

	return b.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
