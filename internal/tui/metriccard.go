package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// MetricCard renders a labelled value with an optional trend, used for the
// scan viewer's summary header (baseline tax, selected-row savings, ROI).
type MetricCard struct {
	Label string
	Value string
	Trend *Trend
	Width int
}

type Trend struct {
	IsPositive bool
	Change     string
}

func NewMetricCard(label, value string) *MetricCard {
	return &MetricCard{Label: label, Value: value, Width: 28}
}

func (m *MetricCard) WithTrend(isPositive bool, change string) *MetricCard {
	m.Trend = &Trend{IsPositive: isPositive, Change: change}
	return m
}

func (m *MetricCard) Render() string {
	label := MetricLabelStyle.Render(m.Label)
	value := MetricValueStyle.Render(m.Value)
	content := label + "\n" + value
	if m.Trend != nil {
		arrow := TrendIndicator(m.Trend.IsPositive)
		content += "\n" + MetricTrendStyle(m.Trend.IsPositive).Render(fmt.Sprintf("%s %s", arrow, m.Trend.Change))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 2).
		Width(m.Width).
		Render(content)
}

// MetricRow renders metric cards side by side.
func MetricRow(cards ...*MetricCard) string {
	rendered := make([]string, len(cards))
	for i, c := range cards {
		rendered[i] = c.Render()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
