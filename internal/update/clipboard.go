package update

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

var errClipboardDisabled = errors.New("clipboard disabled")

type Clipboard interface {
	WriteAll(text string) error
}

type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

type disabledClipboard struct{}

func (disabledClipboard) WriteAll(string) error { return errClipboardDisabled }

func copyTextCmd(cb Clipboard, text string) tea.Cmd {
	return func() tea.Msg {
		if err := cb.WriteAll(text); err != nil {
			return SetStatusMsg{Text: fmt.Sprintf("copy failed: %v", err), IsError: true}
		}
		return SetStatusMsg{Text: "copied: " + text}
	}
}
