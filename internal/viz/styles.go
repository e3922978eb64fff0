package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(CurrentTheme.Primary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(CurrentTheme.Muted)
}

func LabelStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Muted).Width(12)
}

func ValueStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Accent).Bold(true)
}

// FieldStyle colors direction field glyphs.
func FieldStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Field)
}

func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Error).Bold(true)
}

// Title renders a heading line.
func Title(text string) string {
	return TitleStyle().Render(text)
}

// KeyValue renders an aligned "label value" line.
func KeyValue(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, LabelStyle().Render(label), ValueStyle().Render(value))
}

// Table renders rows under headers with the theme's colors.
func Table(headers []string, rows [][]string) string {
	header := lipgloss.NewStyle().Bold(true).Foreground(CurrentTheme.Primary).Padding(0, 1)
	cell := lipgloss.NewStyle().Foreground(CurrentTheme.Text).Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(CurrentTheme.Muted)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	return t.String()
}
