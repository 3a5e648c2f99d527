package tui

import "github.com/charmbracelet/lipgloss"

// Color palette for the scan viewer's single table-browsing screen.
var (
	ColorPrimary = lipgloss.Color("#00D4AA") // Teal/cyan - primary actions
	ColorSuccess = lipgloss.Color("#10B981") // Green - positive metrics
	ColorDanger  = lipgloss.Color("#EF4444") // Red - negative metrics
	ColorInfo    = lipgloss.Color("#3B82F6") // Blue - informational

	ColorForeground = lipgloss.Color("#C0CAF5") // Light text
	ColorMuted      = lipgloss.Color("#565F89") // Muted text
	ColorBorder     = lipgloss.Color("#414868") // Borders and dividers

	// ColorChartLine1 colors the ROI sparkline.
	ColorChartLine1 = lipgloss.Color("#00D4AA")
)

// Base styles
var (
	AppStyle = lipgloss.NewStyle().
			Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			PaddingBottom(1)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	// Metric cards
	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Bold(true)

	MetricValueStyle = lipgloss.NewStyle().
				Foreground(ColorForeground).
				Bold(true).
				MarginTop(1)

	MetricPositiveStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess).
				Bold(true)

	MetricNegativeStyle = lipgloss.NewStyle().
				Foreground(ColorDanger).
				Bold(true)

	// Help text
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo).
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorInfo)

	// Tables
	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(ColorBorder)

	TableCellStyle = lipgloss.NewStyle().
			Foreground(ColorForeground).
			Padding(0, 1)

	TableHighlightStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Background(ColorBorder).
				Padding(0, 1)
)

// MetricTrendStyle returns the style matching a trend's direction.
func MetricTrendStyle(isPositive bool) lipgloss.Style {
	if isPositive {
		return MetricPositiveStyle
	}
	return MetricNegativeStyle
}

// TrendIndicator returns an arrow indicator for a trend's direction.
func TrendIndicator(isPositive bool) string {
	if isPositive {
		return "↑"
	}
	return "↓"
}
