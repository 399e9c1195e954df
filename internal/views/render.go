package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// AppData is the fully rendered frame: a screen body plus the shared
// chrome around it.
type AppData struct {
	Body        string
	StatusText  string
	StatusError bool
	Help        string
	Width       int
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	subtleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	cardStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	completeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	todayStyle    = lipgloss.NewStyle().Underline(true)
	focusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

// RenderApp stacks the screen body, status line and help footer.
func RenderApp(data AppData) string {
	lines := []string{data.Body}
	if data.StatusText != "" {
		style := statusStyle
		if data.StatusError {
			style = errorStyle
		}
		lines = append(lines, style.Render(data.StatusText))
	}
	if data.Help != "" {
		lines = append(lines, data.Help)
	}
	return strings.Join(lines, "\n")
}

// RenderMarkdown renders an exercise memo. Falls back to the raw text
// when the renderer fails.
func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
