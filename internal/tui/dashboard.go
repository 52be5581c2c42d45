package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/learnlog/internal/analytics"
	"github.com/balkashynov/learnlog/internal/models"
)

// rangePreset is a date range ending today; days == 0 means everything
// since the calendar's first day
type rangePreset struct {
	label string
	days  int
}

var rangePresets = []rangePreset{
	{"All time", 0},
	{"Last 7 days", 7},
	{"Last 30 days", 30},
	{"Last 90 days", 90},
	{"Last 365 days", 365},
}

const allLabel = "All"

// DashboardModel shows the report for the current selection and recomputes
// it whenever a filter key cycles
type DashboardModel struct {
	width  int
	height int

	calendar analytics.Table
	minDate  time.Time
	today    time.Time

	// Choices exclude placeholder values; index 0 of each selector is "all"
	media     []string
	tags      []string
	rangeIdx  int
	mediumIdx int
	tagIdx    int

	report analytics.Report
	table  table.Model
}

// NewDashboardModel normalizes the sessions once and builds the first report
func NewDashboardModel(sessions []models.Session, minDate, today time.Time) DashboardModel {
	calendar := analytics.Normalize(sessions, minDate, today)
	opts := analytics.ListOptions(calendar)

	m := DashboardModel{
		calendar: calendar,
		minDate:  analytics.DayOf(minDate),
		today:    analytics.DayOf(today),
		media:    withoutNull(opts.Media),
		tags:     withoutNull(opts.Tags),
		table:    newSessionTable(),
	}
	m.refresh()
	return m
}

func withoutNull(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != analytics.NullMarker {
			out = append(out, v)
		}
	}
	return out
}

func newSessionTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "DATE", Width: 10},
			{Title: "START", Width: 5},
			{Title: "MIN", Width: 5},
			{Title: "MEDIUM", Width: 10},
			{Title: "TITLE", Width: 28},
			{Title: "TEACHER", Width: 14},
			{Title: "TAGS", Width: 20},
		}),
		table.WithFocused(true),
		table.WithHeight(8),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		BorderBottom(true).
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright))
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Background(lipgloss.Color(ColorAccentMain)).
		Bold(false)
	t.SetStyles(s)
	return t
}

// criteria resolves the selectors into a full selection
func (m DashboardModel) criteria() analytics.Criteria {
	c := analytics.DefaultCriteria(m.calendar, m.minDate, m.today)

	if days := rangePresets[m.rangeIdx].days; days > 0 {
		start := m.today.AddDate(0, 0, -(days - 1))
		if start.After(c.StartDate) {
			c.StartDate = start
		}
	}
	if m.mediumIdx > 0 {
		c.Media = analytics.NewSet(m.media[m.mediumIdx-1])
	}
	if m.tagIdx > 0 {
		c.Tags = analytics.NewSet(m.tags[m.tagIdx-1])
	}
	return c
}

// refresh recomputes the whole report for the current selection
func (m *DashboardModel) refresh() {
	m.report = analytics.BuildReportWithCriteria(m.calendar, m.criteria(), m.today)

	rows := make([]table.Row, 0, len(m.report.Sessions))
	for _, r := range m.report.Sessions {
		rows = append(rows, table.Row{
			r.Date.Format("02/01/2006"),
			r.SessionStartTime.Format("15:04"),
			fmt.Sprintf("%.0f", r.DurationMin),
			r.Medium,
			r.Title,
			r.Teacher,
			strings.ReplaceAll(r.Tags, analytics.TagSeparator, ", "),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Report returns the report currently on screen
func (m DashboardModel) Report() analytics.Report {
	return m.report
}

func (m DashboardModel) rangeLabel() string {
	return rangePresets[m.rangeIdx].label
}

func (m DashboardModel) mediumLabel() string {
	if m.mediumIdx == 0 {
		return allLabel
	}
	return m.media[m.mediumIdx-1]
}

func (m DashboardModel) tagLabel() string {
	if m.tagIdx == 0 {
		return allLabel
	}
	return m.tags[m.tagIdx-1]
}

// Init initializes the model
func (m DashboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Height - header(2) - metrics(4) - heatmap(11) - help(2) - table header(2)
		tableHeight := m.height - 21
		if tableHeight < 3 {
			tableHeight = 3
		}
		m.table.SetHeight(tableHeight)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit

		case "r":
			m.rangeIdx = (m.rangeIdx + 1) % len(rangePresets)
			m.refresh()
			return m, nil

		case "m":
			m.mediumIdx = (m.mediumIdx + 1) % (len(m.media) + 1)
			m.refresh()
			return m, nil

		case "t":
			m.tagIdx = (m.tagIdx + 1) % (len(m.tags) + 1)
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the TUI
func (m DashboardModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		"",
		m.renderMetrics(),
		m.renderHeatmapCard(),
		m.table.View(),
		"",
		m.renderHelpBar(),
	)
}

func (m DashboardModel) renderHeader() string {
	logo := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright)).
		Render("learnlog")

	label := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	value := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText)).Bold(true)
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))

	selection := fmt.Sprintf("%s %s  %s %s  %s %s  %s",
		label.Render("range"), value.Render(m.rangeLabel()),
		label.Render("medium"), value.Render(m.mediumLabel()),
		label.Render("tag"), value.Render(m.tagLabel()),
		muted.Render(fmt.Sprintf("(%s to %s)",
			m.report.StartDate.Format("02/01/2006"),
			m.report.EndDate.Format("02/01/2006"))),
	)
	return logo + "  " + selection
}

func (m DashboardModel) renderMetrics() string {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Background(lipgloss.Color(ColorCardBackground)).
		Padding(0, 1)
	label := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	value := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText)).Bold(true)

	metric := func(name string, v string, style lipgloss.Style) string {
		return card.Render(label.Render(name) + "\n" + style.Render(v))
	}
	streak := value.Foreground(lipgloss.Color(streakColor(m.report.Streaks.Current)))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		metric("Total time", m.report.TotalFormatted, value),
		" ",
		metric("Current streak", fmt.Sprintf("%d days", m.report.Streaks.Current), streak),
		" ",
		metric("Max streak", fmt.Sprintf("%d days", m.report.Streaks.Max), value),
		" ",
		metric("Sessions", fmt.Sprintf("%d", len(m.report.Sessions)), value),
	)
}

// streakColor is green while a streak is running and amber once it has lapsed
func streakColor(current int) string {
	if current > 0 {
		return ColorSuccess
	}
	return ColorWarning
}

func (m DashboardModel) renderHeatmapCard() string {
	grid := BuildHeatmapGrid(m.report.Heatmap, m.report.StartDate, m.report.EndDate)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 1).
		Render(RenderHeatmap(grid))
}

func (m DashboardModel) renderHelpBar() string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Render("r range • m medium • t tag • ↑/↓ scroll • q quit")
}
