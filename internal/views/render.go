package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Title      string
	InputView  string
	AddFocused bool
	TaskPanel  string
	Remaining  string
	Palette    string
	HelpPanel  string
	StatusLine string
	StatusErr  bool
	Footer     string
}

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).MarginBottom(1)
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputStyle     = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	buttonStyle    = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4"))
	buttonFocused  = buttonStyle.Background(lipgloss.Color("12")).Bold(true)
	remainingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func RenderApp(data AppData) string {
	button := buttonStyle.Render(AddLabel)
	if data.AddFocused {
		button = buttonFocused.Render(AddLabel)
	}
	entry := lipgloss.JoinHorizontal(lipgloss.Center, inputStyle.Width(44).Render(data.InputView), " ", button)

	lines := []string{
		titleStyle.Render(data.Title),
		entry,
		panelStyle.Width(56).Render(data.TaskPanel),
	}
	if data.Remaining != "" {
		lines = append(lines, remainingStyle.Render(data.Remaining))
	}
	if data.Palette != "" {
		lines = append(lines, data.Palette)
	}
	if data.HelpPanel != "" {
		lines = append(lines, panelStyle.Width(56).Render(data.HelpPanel))
	}
	if data.StatusLine != "" {
		status := statusStyle.Render(data.StatusLine)
		if data.StatusErr {
			status = errorStyle.Render(data.StatusLine)
		}
		lines = append(lines, status)
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

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
