// Package tui is the interactive scan viewer behind `taxglide scan
// --interactive` (spec.md §6.4). Grounded on the teacher's bubbletea wiring
// (model/update/view split, styles.go's palette, bubbles/table for row
// browsing) but narrowed from a multi-scene retirement-planning app down to
// a single table-browsing program, since a scan result is one flat row set
// rather than a tree of scenarios.
package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/taxglide/taxglide/internal/domain"
)

// ScanModel is the bubbletea.Model backing the scan viewer.
type ScanModel struct {
	rows    []domain.ScanRow
	plateau domain.PlateauReport
	table   table.Model
	width   int
	height  int
	yanked  string
	quitting bool
}

// NewScanModel builds a viewer over rows, with plateau used to highlight the
// sweet-spot range.
func NewScanModel(rows []domain.ScanRow, plateau domain.PlateauReport) ScanModel {
	columns := []table.Column{
		{Title: "deduction", Width: 12},
		{Title: "total_tax", Width: 12},
		{Title: "saved", Width: 12},
		{Title: "roi_%", Width: 10},
		{Title: "plateau", Width: 8},
	}

	trows := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		plateauMark := ""
		if rowInPlateau(r, plateau) {
			plateauMark = "●"
		}
		trows = append(trows, table.Row{
			r.Deduction.StringFixed(0), r.TotalTax.StringFixed(2),
			r.Saved.StringFixed(2), r.ROIPercent.StringFixed(2), plateauMark,
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(trows),
		table.WithFocused(true),
		table.WithHeight(18),
	)
	t.SetStyles(tableStyles())

	return ScanModel{rows: rows, plateau: plateau, table: t, height: 24, width: 100}
}

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableHighlightStyle
	s.Cell = TableCellStyle
	return s
}

func rowInPlateau(row domain.ScanRow, plateau domain.PlateauReport) bool {
	return row.Deduction.GreaterThanOrEqual(plateau.MinD) && row.Deduction.LessThanOrEqual(plateau.MaxD)
}

func (m ScanModel) Init() tea.Cmd { return nil }

func (m ScanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(msg.Height - 14)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "y":
			if cursor := m.table.Cursor(); cursor >= 0 && cursor < len(m.rows) {
				row := m.rows[cursor]
				text := fmt.Sprintf("deduction=%s total_tax=%s saved=%s roi_percent=%s",
					row.Deduction.StringFixed(0), row.TotalTax.StringFixed(2), row.Saved.StringFixed(2), row.ROIPercent.StringFixed(2))
				if err := clipboard.WriteAll(text); err == nil {
					m.yanked = text
				} else {
					m.yanked = "clipboard unavailable: " + err.Error()
				}
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScanModel) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Deduction scan"))
	b.WriteString("\n")

	if len(m.rows) > 0 {
		cursor := m.table.Cursor()
		if cursor < 0 || cursor >= len(m.rows) {
			cursor = 0
		}
		baseline := m.rows[0]
		selected := m.rows[cursor]
		b.WriteString(MetricRow(
			NewMetricCard("Baseline tax", baseline.TotalTax.StringFixed(2)),
			NewMetricCard("Selected deduction", selected.Deduction.StringFixed(0)),
			NewMetricCard("Saved", selected.Saved.StringFixed(2)).WithTrend(selected.Saved.IsPositive(), selected.ROIPercent.StringFixed(2)+"% roi"),
		))
		b.WriteString("\n\n")
	}

	b.WriteString(BorderStyle.Render(m.table.View()))
	b.WriteString("\n")
	b.WriteString(m.renderChart())
	b.WriteString("\n")

	if m.yanked != "" {
		b.WriteString(InfoStyle.Render("copied: " + m.yanked))
		b.WriteString("\n")
	}

	help := HelpKeyStyle.Render("↑/↓") + " " + HelpDescStyle.Render("move") + "  " +
		HelpKeyStyle.Render("pgup/pgdn") + " " + HelpDescStyle.Render("page") + "  " +
		HelpKeyStyle.Render("y") + " " + HelpDescStyle.Render("yank row") + "  " +
		HelpKeyStyle.Render("q") + " " + HelpDescStyle.Render("quit")
	b.WriteString(help)
	return AppStyle.Render(b.String())
}

func (m ScanModel) renderChart() string {
	points := make([]float64, 0, len(m.rows))
	for _, r := range m.rows {
		f, _ := r.ROIPercent.Float64()
		points = append(points, f)
	}
	chart := NewASCIIChart("ROI % across scanned deductions").
		AddSeries("roi_percent", points, ColorChartLine1).
		WithSize(minInt(m.width-4, 90), 10).
		WithXAxisLabel("deduction step index")
	chart.ShowLegend = false
	return chart.Render()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Run launches the interactive scan viewer over rows, highlighting the
// plateau range. It blocks until the user quits.
func Run(rows []domain.ScanRow, plateau domain.PlateauReport) error {
	p := tea.NewProgram(NewScanModel(rows, plateau), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
