package update

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasklist/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.syncBubbleData()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(typed, m.Keys.ForceQuit) {
			m.Quitting = true
			return m, tea.Quit
		}
		if m.Palette.Active {
			return m.handlePaletteKey(typed)
		}
		switch m.Focus {
		case FocusAddButton:
			return m.handleAddButtonKey(typed)
		case FocusList:
			return m.handleListKey(typed)
		default:
			return m.handleEntryKey(typed)
		}
	case SetPendingMsg:
		m.setPending(typed.Text)
		return m, nil
	case AddClickedMsg:
		m.addPending()
		return m, nil
	case ToggleTaskMsg:
		m.toggleTask(typed.ID)
		return m, nil
	case DeleteTaskMsg:
		m.deleteTask(typed.ID)
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			log.Printf("error: %v", typed.Err)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	panel := views.BuildTaskPanel(m.taskRows(), m.Cursor, m.Focus == FocusList)
	return views.RenderApp(views.AppData{
		Title:      views.AppTitle,
		InputView:  m.renderEntry(),
		AddFocused: m.Focus == FocusAddButton,
		TaskPanel:  views.RenderTaskPanel(panel),
		Remaining:  panel.Remaining,
		Palette:    views.RenderCommandPalette(m.Palette.Active, m.commandInput.View()),
		HelpPanel:  m.renderHelpIfVisible(),
		StatusLine: status,
		StatusErr:  m.Status.IsError,
		Footer:     fmt.Sprintf("focus: %s | tab next | %s help | ctrl+c quit", m.Focus, m.Keys.Help.Help().Key),
	})
}

func (m Model) renderEntry() string {
	if m.entryInput.Value() == "" {
		return views.RenderEntryPlaceholder(m.entryInput.Prompt, m.entryInput.Placeholder)
	}
	return m.entryInput.View()
}

func (m Model) taskRows() []views.TaskRowData {
	rows := make([]views.TaskRowData, 0, len(m.Tasks.Tasks))
	for _, t := range m.Tasks.Tasks {
		rows = append(rows, views.TaskRowData{ID: t.ID, Text: t.Text, Completed: t.Completed})
	}
	return rows
}
