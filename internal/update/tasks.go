package update

import (
	"log"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasklist/internal/model"
)

func (m Model) handleEntryKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Next):
		m.setFocus(FocusAddButton)
		return m, nil
	case key.Matches(msg, m.Keys.Prev):
		m.setFocus(FocusList)
		return m, nil
	}

	if key.Matches(msg, m.Keys.Submit) {
		m.submit(model.KeyEnter)
		return m, nil
	}
	var cmd tea.Cmd
	m.entryInput, cmd = m.entryInput.Update(msg)
	m.setPending(m.entryInput.Value())
	return m, cmd
}

func (m Model) handleAddButtonKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Activate):
		m.addPending()
	case key.Matches(msg, m.Keys.Next):
		m.setFocus(FocusList)
	case key.Matches(msg, m.Keys.Prev), key.Matches(msg, m.Keys.Back):
		m.setFocus(FocusEntry)
	case key.Matches(msg, m.Keys.Help):
		m.toggleHelp()
	case key.Matches(msg, m.Keys.Quit):
		m.Quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}
	case key.Matches(msg, m.Keys.Down):
		if m.Cursor < len(m.Tasks.Tasks)-1 {
			m.Cursor++
		}
	case key.Matches(msg, m.Keys.Toggle):
		if id, ok := m.idAtCursor(); ok {
			m.toggleTask(id)
		}
	case key.Matches(msg, m.Keys.Delete):
		if id, ok := m.idAtCursor(); ok {
			m.deleteTask(id)
		}
	case key.Matches(msg, m.Keys.Copy):
		if id, ok := m.idAtCursor(); ok {
			task, _ := m.Tasks.Find(id)
			return m, copyTextCmd(m.clipboard, task.Text)
		}
	case key.Matches(msg, m.Keys.Palette):
		m.openPalette()
	case key.Matches(msg, m.Keys.Help):
		m.toggleHelp()
	case key.Matches(msg, m.Keys.Next), key.Matches(msg, m.Keys.Back), key.Matches(msg, m.Keys.Edit):
		m.setFocus(FocusEntry)
	case key.Matches(msg, m.Keys.Prev):
		m.setFocus(FocusAddButton)
	case key.Matches(msg, m.Keys.Quit):
		m.Quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// submit feeds a key press from the entry field through SubmitKey.
func (m *Model) submit(keyStr string) {
	before := len(m.Tasks.Tasks)
	m.Tasks = m.Tasks.SubmitKey(keyStr, m.ids)
	m.afterAdd(before)
}

func (m *Model) addPending() {
	before := len(m.Tasks.Tasks)
	m.Tasks = m.Tasks.Add(m.ids)
	m.afterAdd(before)
}

func (m *Model) addText(text string) bool {
	before := len(m.Tasks.Tasks)
	m.Tasks = m.Tasks.AddText(m.limitText(text), m.ids)
	return m.afterAdd(before)
}

func (m *Model) afterAdd(before int) bool {
	if len(m.Tasks.Tasks) == before {
		log.Printf("add ignored: blank input")
		return false
	}
	added := m.Tasks.Tasks[len(m.Tasks.Tasks)-1]
	m.Cursor = len(m.Tasks.Tasks) - 1
	m.Status = StatusBar{Text: "task added"}
	log.Printf("task added id=%s remaining=%d", added.ID, m.Tasks.Remaining())
	m.checkInvariants()
	return true
}

func (m *Model) toggleTask(id string) bool {
	task, ok := m.Tasks.Find(id)
	if !ok {
		return false
	}
	m.Tasks = m.Tasks.Toggle(id)
	if task.Completed {
		m.Status = StatusBar{Text: "task reopened"}
	} else {
		m.Status = StatusBar{Text: "task completed"}
	}
	log.Printf("task toggled id=%s completed=%t remaining=%d", id, !task.Completed, m.Tasks.Remaining())
	return true
}

func (m *Model) deleteTask(id string) bool {
	if _, ok := m.Tasks.Find(id); !ok {
		return false
	}
	m.Tasks = m.Tasks.Delete(id)
	m.clampCursor()
	m.Status = StatusBar{Text: "task deleted"}
	log.Printf("task deleted id=%s remaining=%d", id, m.Tasks.Remaining())
	if len(m.Tasks.Tasks) == 0 && m.Focus == FocusList {
		m.setFocus(FocusEntry)
	}
	return true
}

func (m *Model) checkInvariants() {
	if err := m.Tasks.Validate(); err != nil {
		log.Printf("task list invariant broken: %v", err)
	}
}

func (m Model) idAtCursor() (string, bool) {
	return m.idAtRow(m.Cursor + 1)
}

// idAtRow resolves a 1-based row number to a task id.
func (m Model) idAtRow(row int) (string, bool) {
	if row < 1 || row > len(m.Tasks.Tasks) {
		return "", false
	}
	return m.Tasks.Tasks[row-1].ID, true
}

func (m *Model) setFocus(f Focus) {
	m.Focus = f
	m.syncBubbleData()
}

func (m *Model) toggleHelp() {
	m.HelpVisible = !m.HelpVisible
	if m.HelpVisible {
		m.Status = StatusBar{Text: "help shown"}
	} else {
		m.Status = StatusBar{Text: "help hidden"}
	}
}
