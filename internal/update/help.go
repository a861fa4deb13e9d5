package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/tasklist/internal/views"
)

const usageMarkdown = `**Tasks** live only as long as this window.
Type in the entry field and press *enter*, or tab to **Add**.
Palette: ` + "`add <text>`, `toggle <n>`, `delete <n>`, `copy <n>`."

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return m.renderHelpView()
}

func (m Model) renderHelpView() string {
	bindings := m.focusBindings()
	plain := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		plain = append(plain, fmt.Sprintf("- %s: %s", h.Key, h.Desc))
	}
	global := []key.Binding{m.Keys.Next, m.Keys.Prev, m.Keys.ForceQuit}
	return views.RenderHelpPanel(views.HelpPanelData{
		Bindings: plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: global,
			full:  [][]key.Binding{global},
		}),
		Usage: views.RenderMarkdown(usageMarkdown),
	})
}

func (m Model) focusBindings() []key.Binding {
	switch m.Focus {
	case FocusEntry:
		return []key.Binding{m.Keys.Submit}
	case FocusAddButton:
		return []key.Binding{
			m.Keys.Activate,
			m.Keys.Back,
			m.Keys.Help,
			m.Keys.Quit,
		}
	default:
		return []key.Binding{
			m.Keys.Up,
			m.Keys.Down,
			m.Keys.Toggle,
			m.Keys.Delete,
			m.Keys.Copy,
			m.Keys.Edit,
			m.Keys.Palette,
			m.Keys.Help,
			m.Keys.Quit,
		}
	}
}
