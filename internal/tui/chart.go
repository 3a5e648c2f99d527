package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// dataSeries is a single plotted line in an ASCIIChart.
type dataSeries struct {
	Name   string
	Points []float64
	Color  lipgloss.Color
}

// ASCIIChart renders a small line chart in the terminal, used by the scan
// viewer to plot ROI-per-100 across the deduction range.
type ASCIIChart struct {
	Title      string
	Series     []*dataSeries
	Labels     []string
	Width      int
	Height     int
	ShowLegend bool
	XAxisLabel string
}

// NewASCIIChart creates an empty chart of default size.
func NewASCIIChart(title string) *ASCIIChart {
	return &ASCIIChart{Title: title, Width: 60, Height: 15, ShowLegend: true}
}

func (c *ASCIIChart) AddSeries(name string, points []float64, color lipgloss.Color) *ASCIIChart {
	c.Series = append(c.Series, &dataSeries{Name: name, Points: points, Color: color})
	return c
}

func (c *ASCIIChart) WithLabels(labels []string) *ASCIIChart {
	c.Labels = labels
	return c
}

func (c *ASCIIChart) WithSize(width, height int) *ASCIIChart {
	c.Width = width
	c.Height = height
	return c
}

func (c *ASCIIChart) WithXAxisLabel(label string) *ASCIIChart {
	c.XAxisLabel = label
	return c
}

func (c *ASCIIChart) Render() string {
	if len(c.Series) == 0 {
		return InfoStyle.Render("no data to plot")
	}

	var content strings.Builder
	if c.Title != "" {
		content.WriteString(lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary).Render(c.Title))
		content.WriteString("\n\n")
	}

	minV, maxV := c.globalMinMax()
	content.WriteString(c.renderGrid(minV, maxV))

	if c.XAxisLabel != "" {
		content.WriteString("\n")
		content.WriteString(lipgloss.NewStyle().Foreground(ColorMuted).Italic(true).Render(c.XAxisLabel))
	}
	if c.ShowLegend && len(c.Series) > 1 {
		content.WriteString("\n\n")
		content.WriteString(c.renderLegend())
	}
	return content.String()
}

func (c *ASCIIChart) globalMinMax() (float64, float64) {
	min, max := math.Inf(1), math.Inf(-1)
	for _, s := range c.Series {
		for _, p := range s.Points {
			if p < min {
				min = p
			}
			if p > max {
				max = p
			}
		}
	}
	pad := (max - min) * 0.1
	return min - pad, max + pad
}

func (c *ASCIIChart) renderGrid(minVal, maxVal float64) string {
	yAxisWidth := 10
	chartWidth := c.Width - yAxisWidth
	if chartWidth < 1 {
		chartWidth = 1
	}

	grid := make([][]rune, c.Height)
	for i := range grid {
		grid[i] = make([]rune, chartWidth)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	for seriesIdx, series := range c.Series {
		if len(series.Points) < 2 {
			continue
		}
		ch := seriesChar(seriesIdx)
		for i, point := range series.Points {
			x := int(float64(i) / float64(len(series.Points)-1) * float64(chartWidth-1))
			y := c.Height - 1 - int((point-minVal)/(maxVal-minVal)*float64(c.Height-1))
			if x >= 0 && x < chartWidth && y >= 0 && y < c.Height {
				grid[y][x] = ch
			}
			if i > 0 {
				prevX := int(float64(i-1) / float64(len(series.Points)-1) * float64(chartWidth-1))
				prevY := c.Height - 1 - int((series.Points[i-1]-minVal)/(maxVal-minVal)*float64(c.Height-1))
				drawLine(grid, prevX, prevY, x, y, ch)
			}
		}
	}

	var out strings.Builder
	valueRange := maxVal - minVal
	yAxisStyle := lipgloss.NewStyle().Foreground(ColorMuted).Width(yAxisWidth).Align(lipgloss.Right)
	for i, row := range grid {
		yValue := maxVal - (float64(i)/float64(c.Height-1))*valueRange
		out.WriteString(yAxisStyle.Render(formatChartValue(yValue)))
		out.WriteString(" │ ")
		out.WriteString(string(row))
		out.WriteString("\n")
	}
	out.WriteString(strings.Repeat(" ", yAxisWidth))
	out.WriteString(" └")
	out.WriteString(strings.Repeat("─", chartWidth))
	return out.String()
}

func seriesChar(index int) rune {
	chars := []rune{'●', '■', '▲', '♦'}
	return chars[index%len(chars)]
}

func drawLine(grid [][]rune, x0, y0, x1, y1 int, char rune) {
	dx, dy := absInt(x1-x0), absInt(y1-y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	x, y := x0, y0
	for {
		if x >= 0 && x < len(grid[0]) && y >= 0 && y < len(grid) && grid[y][x] == ' ' {
			grid[y][x] = char
		}
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

func (c *ASCIIChart) renderLegend() string {
	var items []string
	for i, s := range c.Series {
		symbol := lipgloss.NewStyle().Foreground(s.Color).Render(string(seriesChar(i)))
		name := lipgloss.NewStyle().Foreground(ColorForeground).Render(s.Name)
		items = append(items, fmt.Sprintf("%s %s", symbol, name))
	}
	return lipgloss.NewStyle().Foreground(ColorMuted).Render("legend: " + strings.Join(items, " • "))
}

func formatChartValue(value float64) string {
	if math.Abs(value) >= 1000 {
		return fmt.Sprintf("%.1fk", value/1000)
	}
	return fmt.Sprintf("%.1f", value)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
