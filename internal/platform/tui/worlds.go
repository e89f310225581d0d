package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tile-quest/internal/registry"
)

// WorldsTable renders the registered worlds as a static table.
func WorldsTable(worlds []registry.WorldInfo) string {
	columns := []table.Column{
		{Title: "ID", Width: 12},
		{Title: "Title", Width: 24},
		{Title: "Objects", Width: 8},
		{Title: "Keys", Width: 5},
		{Title: "Doors", Width: 5},
	}
	for _, w := range worlds {
		columns[0].Width = max(columns[0].Width, len(w.ID))
		columns[1].Width = max(columns[1].Width, len(w.Title))
	}

	rows := make([]table.Row, len(worlds))
	for i, w := range worlds {
		rows[i] = table.Row{w.ID, w.Title, strconv.Itoa(w.Objects), strconv.Itoa(w.Keys), strconv.Itoa(w.Doors)}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// nothing is focused, so no row is highlighted
	s.Selected = s.Cell
	t.SetStyles(s)

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return tableStyle.Render(t.View())
}
