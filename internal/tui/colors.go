package tui

// Color constants for the learnlog TUI theme
const (
	// Base Colors
	ColorCardBackground = "#12211A" // Dark green
	ColorBorder         = "#3A4F45" // Grey-green

	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Labels, values, titles
	ColorSecondaryText = "#B1C7B8" // Secondary text, green-tinted grey
	ColorDisabledText  = "#6D8375" // Muted text, placeholder days
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (Green theme)
	ColorAccentMain   = "#16A34A" // Logo, active borders
	ColorAccentBright = "#4ADE80" // Headers, highlights

	// State Colors
	ColorSuccess = "#22C55E"
	ColorWarning = "#F59E0B"
)

// HeatmapShades goes from an empty day to the busiest one
var HeatmapShades = [...]string{
	"#2D333B", // no activity
	"#0E4429",
	"#006D32",
	"#26A641",
	"#39D353",
}
