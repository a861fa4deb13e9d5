package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasklist/internal/commands"
)

func (m *Model) openPalette() {
	m.Palette.Active = true
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.Status = StatusBar{Text: "command palette active"}
	m.syncBubbleData()
}

func (m *Model) closePalette() {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.syncBubbleData()
}

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePalette()
		m.Status = StatusBar{Text: "command palette closed"}
		return m, nil
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	m.Palette.Input = m.commandInput.Value()
	return m, cmd
}

func (m Model) executePaletteCommand() (Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.closePalette()
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	var follow tea.Cmd
	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			if !m.addText(a.Text) {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "add requires task text"}
			}
			return commands.Result{Message: fmt.Sprintf("added task: %s", strings.TrimSpace(a.Text))}, nil
		},
		Toggle: func(r commands.RowArgs) (commands.Result, error) {
			id, ok := m.idAtRow(r.Row)
			if !ok {
				return commands.Result{}, noRowError(r.Row)
			}
			m.toggleTask(id)
			return commands.Result{Message: fmt.Sprintf("toggled task %d", r.Row)}, nil
		},
		Delete: func(r commands.RowArgs) (commands.Result, error) {
			id, ok := m.idAtRow(r.Row)
			if !ok {
				return commands.Result{}, noRowError(r.Row)
			}
			m.deleteTask(id)
			return commands.Result{Message: fmt.Sprintf("deleted task %d", r.Row)}, nil
		},
		Copy: func(r commands.RowArgs) (commands.Result, error) {
			id, ok := m.idAtRow(r.Row)
			if !ok {
				return commands.Result{}, noRowError(r.Row)
			}
			task, _ := m.Tasks.Find(id)
			follow = copyTextCmd(m.clipboard, task.Text)
			return commands.Result{Message: fmt.Sprintf("copying task %d", r.Row)}, nil
		},
	})

	m.closePalette()
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}
	m.Status = StatusBar{Text: res.Message}
	return m, follow
}

func noRowError(row int) error {
	return &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no task at row %d", row)}
}
