// Package styles provides terminal formatting for stlvec command output.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	Primary    = lipgloss.Color("#7D56F4")
	ValueColor = lipgloss.Color("#04B575")
	ErrorColor = lipgloss.Color("#FF6B6B")
	TextDim    = lipgloss.Color("#A8A8A8")
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ValueColor)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ErrorColor)

	DimStyle = lipgloss.NewStyle().
			Foreground(TextDim)
)

func Header(text string) string {
	return HeaderStyle.Render(text)
}

// Value renders the result of a query.
func Value(text string) string {
	return ValueStyle.Render(text)
}

func Error(text string) string {
	return ErrorStyle.Render("✗ " + text)
}

func Dim(text string) string {
	return DimStyle.Render(text)
}

// Step renders an executed command followed by its result, if any.
func Step(command, result string) string {
	if result == "" {
		return Dim("> " + command)
	}
	return Dim("> "+command) + " " + Value(result)
}
