package styles

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/lista/internal/config"
	"github.com/thenoetrevino/lista/internal/models"
)

var (
	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "ID:", "Status:"
	ValueStyle    lipgloss.Style // For field values

	// Status styles
	CompleteStyle   lipgloss.Style
	IncompleteStyle lipgloss.Style
	SuccessStyle    lipgloss.Style
	ErrorStyle      lipgloss.Style
	WarningStyle    lipgloss.Style
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	CompleteStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Complete))

	IncompleteStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Incomplete))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Complete))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.ErrorFg))

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.WarningFg))
}

// StatusMark renders the checkbox for a status
func StatusMark(status models.Status) string {
	if status == models.StatusComplete {
		return CompleteStyle.Render("[x]")
	}
	return IncompleteStyle.Render("[ ]")
}

// RenderTodoLine renders a todo as a single line
// Format: "[ ] #3 Title - description"
func RenderTodoLine(todo *models.Todo) string {
	line := fmt.Sprintf("%s %s %s",
		StatusMark(todo.Status),
		SubtitleStyle.Render(fmt.Sprintf("#%d", todo.ID)),
		TitleStyle.Render(todo.Title))
	if todo.Description != "" {
		line += " " + SubtitleStyle.Render("- "+todo.Description)
	}
	return line
}

// RenderTodoList renders todos one per line
func RenderTodoList(todos []*models.Todo) string {
	if len(todos) == 0 {
		return SubtitleStyle.Render("No todos")
	}
	lines := make([]string, 0, len(todos))
	for _, todo := range todos {
		lines = append(lines, RenderTodoLine(todo))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RenderField renders a "Label: value" pair
func RenderField(label, value string) string {
	return LabelStyle.Render(label+":") + " " + ValueStyle.Render(value)
}

