package update

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sandeepkv93/tasklist/internal/model"
	"github.com/sandeepkv93/tasklist/internal/views"
)

// Focus is the control that currently receives key presses.
type Focus string

const (
	FocusEntry     Focus = "entry"
	FocusAddButton Focus = "add"
	FocusList      Focus = "list"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type KeyMap struct {
	Submit    key.Binding
	Activate  key.Binding
	Next      key.Binding
	Prev      key.Binding
	Back      key.Binding
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	Delete    key.Binding
	Copy      key.Binding
	Edit      key.Binding
	Palette   key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add task")),
		Activate:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "add task")),
		Next:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next control")),
		Prev:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous control")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to entry")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k/up", "move up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/down", "move down")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space/x", "toggle done")),
		Delete:    key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete task")),
		Copy:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy text")),
		Edit:      key.NewBinding(key.WithKeys("i", "a"), key.WithHelp("i", "type a task")),
		Palette:   key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "command palette")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

// Model is the task list widget. A fresh Model always starts with an
// empty list; nothing is shared between instances.
type Model struct {
	Tasks       model.State
	Focus       Focus
	Cursor      int
	Palette     CommandPaletteState
	HelpVisible bool
	Status      StatusBar
	Keys        KeyMap
	Quitting    bool
	LastError   error

	ids          model.IDSource
	charLimit    int
	clipboard    Clipboard
	entryInput   textinput.Model
	commandInput textinput.Model
	helpModel    help.Model
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

// The messages below mirror pointer-driven interaction with the widget:
// typing into the entry field, clicking Add, clicking a checkbox and
// clicking a row's Delete control.

type SetPendingMsg struct {
	Text string
}

type AddClickedMsg struct{}

type ToggleTaskMsg struct {
	ID string
}

type DeleteTaskMsg struct {
	ID string
}

func NewModel() Model {
	return NewModelWithConfig(DefaultRuntimeConfig())
}

func NewModelWithConfig(cfg RuntimeConfig) Model {
	var cb Clipboard = SystemClipboard{}
	if !cfg.Clipboard {
		cb = disabledClipboard{}
	}
	return NewModelWithDeps(cfg, model.NewIDSource(cfg.IDMode), cb)
}

func NewModelWithDeps(cfg RuntimeConfig, ids model.IDSource, cb Clipboard) Model {
	if ids == nil {
		ids = model.NewIDSource(model.IDModeUUID)
	}
	if cb == nil {
		cb = disabledClipboard{}
	}
	charLimit := cfg.CharLimit
	if charLimit < 0 {
		charLimit = 0
	}
	m := Model{
		Focus:     FocusEntry,
		Keys:      DefaultKeyMap(),
		ids:       ids,
		charLimit: charLimit,
		clipboard: cb,
	}
	m.initBubbleComponents(charLimit)
	m.syncBubbleData()
	return m
}

func (m *Model) initBubbleComponents(charLimit int) {
	m.entryInput = textinput.New()
	m.entryInput.Prompt = "> "
	m.entryInput.Placeholder = views.InputPlaceholder
	m.entryInput.CharLimit = charLimit
	m.entryInput.Width = 40
	m.entryInput.Focus()

	m.commandInput = textinput.New()
	m.commandInput.Prompt = ":"
	m.commandInput.Width = 48

	m.helpModel = help.New()
}

// syncBubbleData pushes task state into the bubble components so the
// entry field always shows Pending.
func (m *Model) syncBubbleData() {
	if m.entryInput.Value() != m.Tasks.Pending {
		m.entryInput.SetValue(m.Tasks.Pending)
	}
	if m.Focus == FocusEntry && !m.Palette.Active {
		m.entryInput.Focus()
	} else {
		m.entryInput.Blur()
	}
	if m.Palette.Active {
		m.commandInput.Focus()
	} else {
		m.commandInput.Blur()
	}
	m.clampCursor()
}

// limitText cuts text to the configured character limit so typed, pasted
// and host-set input all store the same value.
func (m Model) limitText(text string) string {
	if m.charLimit <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= m.charLimit {
		return text
	}
	return string(runes[:m.charLimit])
}

func (m *Model) setPending(text string) {
	m.Tasks = m.Tasks.SetPending(m.limitText(text))
}

func (m *Model) clampCursor() {
	if m.Cursor >= len(m.Tasks.Tasks) {
		m.Cursor = len(m.Tasks.Tasks) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}
