package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	AppTitle         = "TODO App"
	EmptyPlaceholder = "No tasks yet. Add one above!"
	InputPlaceholder = "Add a new task..."
	AddLabel         = "Add"
	DeleteLabel      = "Delete"
)

var (
	doneTextStyle   = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("8"))
	openTextStyle   = lipgloss.NewStyle()
	deleteStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	deleteFocused   = deleteStyle.Bold(true).Underline(true)
	placeholderText = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Align(lipgloss.Center)
	entryHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type TaskRowData struct {
	ID        string
	Text      string
	Completed bool
}

// TaskPanelData is the projection of the task list that RenderTaskPanel
// draws. Placeholder and Rows are mutually exclusive.
type TaskPanelData struct {
	Placeholder string
	Rows        []TaskRowData
	Remaining   string
	Cursor      int
	ListFocused bool
}

type HelpPanelData struct {
	Bindings []string
	HelpView string
	Usage    string
}

func RemainingText(n int) string {
	return fmt.Sprintf("%d task(s) remaining", n)
}

func BuildTaskPanel(rows []TaskRowData, cursor int, listFocused bool) TaskPanelData {
	if len(rows) == 0 {
		return TaskPanelData{Placeholder: EmptyPlaceholder}
	}
	remaining := 0
	for _, row := range rows {
		if !row.Completed {
			remaining++
		}
	}
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= len(rows) {
		cursor = len(rows) - 1
	}
	return TaskPanelData{
		Rows:        rows,
		Remaining:   RemainingText(remaining),
		Cursor:      cursor,
		ListFocused: listFocused,
	}
}

func RenderTaskPanel(data TaskPanelData) string {
	if len(data.Rows) == 0 {
		return placeholderText.Render(data.Placeholder)
	}
	lines := make([]string, 0, len(data.Rows))
	for i, row := range data.Rows {
		selected := data.ListFocused && i == data.Cursor
		lines = append(lines, renderTaskRow(row, selected))
	}
	return strings.Join(lines, "\n")
}

func renderTaskRow(row TaskRowData, selected bool) string {
	cursor := " "
	if selected {
		cursor = ">"
	}
	box := "[ ]"
	text := openTextStyle.Render(row.Text)
	if row.Completed {
		box = "[x]"
		text = doneTextStyle.Render(row.Text)
	}
	del := deleteStyle.Render("[" + DeleteLabel + "]")
	if selected {
		del = deleteFocused.Render("[" + DeleteLabel + "]")
	}
	return fmt.Sprintf("%s %s %s  %s", cursor, box, text, del)
}

// RenderEntryPlaceholder draws the empty entry field.
func RenderEntryPlaceholder(prompt, placeholder string) string {
	return prompt + entryHintStyle.Render(placeholder)
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: %s", input)
}

func RenderHelpPanel(data HelpPanelData) string {
	var b strings.Builder
	b.WriteString("help:\n")
	b.WriteString(strings.Join(data.Bindings, "\n"))
	if data.HelpView != "" {
		b.WriteString("\n" + data.HelpView)
	}
	if data.Usage != "" {
		b.WriteString("\n\n" + data.Usage)
	}
	return b.String()
}
