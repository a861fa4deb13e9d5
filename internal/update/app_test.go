package update

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/sandeepkv93/tasklist/internal/model"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func newTestModel(t *testing.T) (Model, *fakeClipboard) {
	t.Helper()
	cb := &fakeClipboard{}
	return NewModelWithDeps(DefaultRuntimeConfig(), model.NewSequenceSource("task"), cb), cb
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enterKey    = tea.KeyMsg{Type: tea.KeyEnter}
	tabKey      = tea.KeyMsg{Type: tea.KeyTab}
	shiftTabKey = tea.KeyMsg{Type: tea.KeyShiftTab}
	spaceKey    = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	escKey      = tea.KeyMsg{Type: tea.KeyEsc}
)

func plainView(m Model) string {
	return ansi.Strip(m.View())
}

// clickAdd moves focus from the entry field to the Add button and presses it.
func clickAdd(t *testing.T, m Model) Model {
	t.Helper()
	m = send(t, m, tabKey)
	if m.Focus != FocusAddButton {
		t.Fatalf("expected add button focus, got %q", m.Focus)
	}
	return send(t, m, enterKey, escKey)
}

func TestNewModelStartsEmpty(t *testing.T) {
	m, _ := newTestModel(t)
	if len(m.Tasks.Tasks) != 0 || m.Tasks.Pending != "" {
		t.Fatalf("expected empty state, got %+v", m.Tasks)
	}
	if m.Focus != FocusEntry {
		t.Fatalf("expected entry focus, got %q", m.Focus)
	}
	out := plainView(m)
	for _, want := range []string{"TODO App", "No tasks yet. Add one above!", "Add a new task...", "Add"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in view: %q", want, out)
		}
	}
	if strings.Contains(out, "remaining") {
		t.Fatalf("remaining text should be hidden on empty list: %q", out)
	}
}

func TestInstancesDoNotShareState(t *testing.T) {
	a := NewModel()
	a = send(t, a, runes("only in a"), enterKey)
	b := NewModel()
	if len(a.Tasks.Tasks) != 1 || len(b.Tasks.Tasks) != 0 {
		t.Fatalf("expected isolated instances, got %d and %d tasks", len(a.Tasks.Tasks), len(b.Tasks.Tasks))
	}
}

func TestAddWithButtonClearsEntry(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, runes("テストタスク"))
	if m.Tasks.Pending != "テストタスク" {
		t.Fatalf("expected keystrokes echoed into pending, got %q", m.Tasks.Pending)
	}
	m = clickAdd(t, m)

	if len(m.Tasks.Tasks) != 1 || m.Tasks.Tasks[0].Text != "テストタスク" || m.Tasks.Tasks[0].Completed {
		t.Fatalf("unexpected tasks: %+v", m.Tasks.Tasks)
	}
	if m.Tasks.Pending != "" || m.entryInput.Value() != "" {
		t.Fatalf("expected cleared entry, got pending=%q input=%q", m.Tasks.Pending, m.entryInput.Value())
	}
	out := plainView(m)
	if !strings.Contains(out, "テストタスク") {
		t.Fatalf("expected task text in view: %q", out)
	}
	if strings.Contains(out, "No tasks yet. Add one above!") {
		t.Fatalf("placeholder should be hidden: %q", out)
	}
}

func TestAddWithEnterTrimsText(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, runes("  Enterで追加  "), enterKey)
	if len(m.Tasks.Tasks) != 1 || m.Tasks.Tasks[0].Text != "Enterで追加" {
		t.Fatalf("unexpected tasks: %+v", m.Tasks.Tasks)
	}
	if m.Focus != FocusEntry {
		t.Fatalf("expected focus to stay on entry, got %q", m.Focus)
	}
	if !strings.Contains(plainView(m), "Enterで追加") {
		t.Fatalf("expected task in view: %q", plainView(m))
	}
}

func TestBlankInputIsIgnored(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, enterKey)
	m = clickAdd(t, m)
	if len(m.Tasks.Tasks) != 0 {
		t.Fatalf("expected no tasks for empty input, got %+v", m.Tasks.Tasks)
	}

	m = send(t, m, runes("   "), enterKey)
	if len(m.Tasks.Tasks) != 0 {
		t.Fatalf("expected no tasks for whitespace input, got %+v", m.Tasks.Tasks)
	}
	if m.Tasks.Pending != "   " {
		t.Fatalf("expected whitespace left pending, got %q", m.Tasks.Pending)
	}
	m = clickAdd(t, m)
	if len(m.Tasks.Tasks) != 0 {
		t.Fatalf("expected no tasks after clicking add, got %+v", m.Tasks.Tasks)
	}
	if !strings.Contains(plainView(m), "No tasks yet. Add one above!") {
		t.Fatalf("expected placeholder: %q", plainView(m))
	}
}

func TestEnterMatchesAddClick(t *testing.T) {
	byKey, _ := newTestModel(t)
	byKey = send(t, byKey, runes("X"), enterKey)

	byClick, _ := newTestModel(t)
	byClick = send(t, byClick, SetPendingMsg{Text: "X"}, AddClickedMsg{})

	if len(byKey.Tasks.Tasks) != 1 || len(byClick.Tasks.Tasks) != 1 {
		t.Fatalf("expected one task each, got %+v and %+v", byKey.Tasks, byClick.Tasks)
	}
	if byKey.Tasks.Tasks[0] != byClick.Tasks.Tasks[0] || byKey.Tasks.Pending != byClick.Tasks.Pending {
		t.Fatalf("enter %+v differs from click %+v", byKey.Tasks, byClick.Tasks)
	}
}

func TestLongInputIsStoredWhole(t *testing.T) {
	long := strings.Repeat("a", 300)

	byKey, _ := newTestModel(t)
	byKey = send(t, byKey, runes(long), enterKey)

	byClick, _ := newTestModel(t)
	byClick = send(t, byClick, SetPendingMsg{Text: long}, AddClickedMsg{})

	if len(byKey.Tasks.Tasks) != 1 || len(byClick.Tasks.Tasks) != 1 {
		t.Fatalf("expected one task each, got %d and %d", len(byKey.Tasks.Tasks), len(byClick.Tasks.Tasks))
	}
	if byKey.Tasks.Tasks[0].Text != long || byClick.Tasks.Tasks[0].Text != long {
		t.Fatalf("expected 300 chars both ways, got %d by key and %d by click",
			len(byKey.Tasks.Tasks[0].Text), len(byClick.Tasks.Tasks[0].Text))
	}
}

func TestCharLimitAppliesToTypedAndSetInput(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	cfg.CharLimit = 5
	newLimited := func() Model {
		return NewModelWithDeps(cfg, model.NewSequenceSource("task"), &fakeClipboard{})
	}

	typed := send(t, newLimited(), runes("abcdefgh"))
	set := send(t, newLimited(), SetPendingMsg{Text: "abcdefgh"})
	for name, m := range map[string]Model{"typed": typed, "set": set} {
		if m.Tasks.Pending != "abcde" || m.entryInput.Value() != "abcde" {
			t.Fatalf("%s: expected pending and field cut to 5, got %q and %q", name, m.Tasks.Pending, m.entryInput.Value())
		}
	}

	typed = send(t, typed, enterKey)
	set = send(t, set, AddClickedMsg{})
	if typed.Tasks.Tasks[0] != set.Tasks.Tasks[0] {
		t.Fatalf("enter %+v differs from click %+v", typed.Tasks.Tasks[0], set.Tasks.Tasks[0])
	}
}

func TestSubmitFollowsKeyMap(t *testing.T) {
	m, _ := newTestModel(t)
	m.Keys.Submit = key.NewBinding(key.WithKeys("ctrl+s"))
	m.Keys.Activate = key.NewBinding(key.WithKeys("ctrl+s"))

	m = send(t, m, runes("x"), tea.KeyMsg{Type: tea.KeyCtrlS})
	if len(m.Tasks.Tasks) != 1 || m.Tasks.Tasks[0].Text != "x" {
		t.Fatalf("expected rebound submit to add, got %+v", m.Tasks.Tasks)
	}

	m = send(t, m, runes("y"), enterKey)
	if len(m.Tasks.Tasks) != 1 || m.Tasks.Pending != "y" {
		t.Fatalf("enter should no longer add, got %+v", m.Tasks)
	}

	m = send(t, m, tabKey, spaceKey)
	if len(m.Tasks.Tasks) != 1 {
		t.Fatalf("space should no longer press add, got %+v", m.Tasks.Tasks)
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if len(m.Tasks.Tasks) != 2 || m.Tasks.Tasks[1].Text != "y" {
		t.Fatalf("expected rebound activate to add, got %+v", m.Tasks.Tasks)
	}
}

func TestToggleCheckboxFromList(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, runes("トグルテスト"), enterKey, shiftTabKey)
	if m.Focus != FocusList {
		t.Fatalf("expected list focus, got %q", m.Focus)
	}
	if !strings.Contains(plainView(m), "[ ] トグルテスト") {
		t.Fatalf("expected unchecked row: %q", plainView(m))
	}

	m = send(t, m, spaceKey)
	if !m.Tasks.Tasks[0].Completed {
		t.Fatal("expected task completed")
	}
	if !strings.Contains(plainView(m), "[x] トグルテスト") {
		t.Fatalf("expected checked row: %q", plainView(m))
	}

	m = send(t, m, runes("x"))
	if m.Tasks.Tasks[0].Completed {
		t.Fatal("expected task reopened")
	}
}

func TestDeleteLastTaskRestoresPlaceholder(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, runes("削除テスト"), enterKey, shiftTabKey)
	if !strings.Contains(plainView(m), "削除テスト") || !strings.Contains(plainView(m), "[Delete]") {
		t.Fatalf("expected row with delete control: %q", plainView(m))
	}

	m = send(t, m, runes("d"))
	out := plainView(m)
	if strings.Contains(out, "削除テスト") {
		t.Fatalf("expected task removed: %q", out)
	}
	if !strings.Contains(out, "No tasks yet. Add one above!") {
		t.Fatalf("expected placeholder restored: %q", out)
	}
	if m.Focus != FocusEntry {
		t.Fatalf("expected focus back on entry, got %q", m.Focus)
	}
}

func TestRemainingCountFollowsToggleAndDelete(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, runes("Task1"), enterKey, runes("Task2"), enterKey)
	if !strings.Contains(plainView(m), "2 task(s) remaining") {
		t.Fatalf("expected 2 remaining: %q", plainView(m))
	}

	m = send(t, m, ToggleTaskMsg{ID: m.Tasks.Tasks[0].ID})
	if !strings.Contains(plainView(m), "1 task(s) remaining") {
		t.Fatalf("expected 1 remaining: %q", plainView(m))
	}

	m = send(t, m, DeleteTaskMsg{ID: m.Tasks.Tasks[1].ID})
	if !strings.Contains(plainView(m), "0 task(s) remaining") {
		t.Fatalf("expected 0 remaining: %q", plainView(m))
	}
}

func TestListCursorNavigation(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, runes("a"), enterKey, runes("b"), enterKey, runes("c"), enterKey, shiftTabKey)
	if m.Cursor != 2 {
		t.Fatalf("expected cursor on newest task, got %d", m.Cursor)
	}
	m = send(t, m, runes("k"), runes("k"), runes("k"))
	if m.Cursor != 0 {
		t.Fatalf("expected cursor clamped at top, got %d", m.Cursor)
	}
	m = send(t, m, spaceKey, runes("j"), runes("d"))
	got := []string{}
	for _, task := range m.Tasks.Tasks {
		got = append(got, task.Text)
	}
	if strings.Join(got, ",") != "a,c" || !m.Tasks.Tasks[0].Completed {
		t.Fatalf("unexpected tasks after navigation: %+v", m.Tasks.Tasks)
	}
	if m.Cursor != 1 {
		t.Fatalf("expected cursor to stay in range, got %d", m.Cursor)
	}
}

func TestUnknownIDsAreNoops(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, runes("keep"), enterKey)
	before := m.Tasks
	m = send(t, m, ToggleTaskMsg{ID: "missing"}, DeleteTaskMsg{ID: "missing"})
	if len(m.Tasks.Tasks) != 1 || m.Tasks.Tasks[0] != before.Tasks[0] {
		t.Fatalf("expected unchanged tasks, got %+v", m.Tasks.Tasks)
	}
}

func TestTypingQDoesNotQuitFromEntry(t *testing.T) {
	m, _ := newTestModel(t)
	updated, _ := m.Update(runes("q"))
	next := updated.(Model)
	if next.Quitting {
		t.Fatal("q in the entry field should be typed, not quit")
	}
	if next.Tasks.Pending != "q" {
		t.Fatalf("expected pending q, got %q", next.Tasks.Pending)
	}

	updated, cmd := next.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	next = updated.(Model)
	if !next.Quitting || cmd == nil {
		t.Fatal("expected ctrl+c to quit")
	}
}

func TestQuitFromList(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, shiftTabKey)
	updated, cmd := m.Update(runes("q"))
	if !updated.(Model).Quitting || cmd == nil {
		t.Fatal("expected q to quit from the list")
	}
}

func TestPaletteCommands(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, shiftTabKey, runes(":"))
	if !m.Palette.Active {
		t.Fatal("expected palette active")
	}
	m = send(t, m, runes("add buy milk"), enterKey)
	if m.Palette.Active {
		t.Fatal("expected palette closed after command")
	}
	if len(m.Tasks.Tasks) != 1 || m.Tasks.Tasks[0].Text != "buy milk" {
		t.Fatalf("unexpected tasks: %+v", m.Tasks.Tasks)
	}
	if m.Status.Text != "added task: buy milk" {
		t.Fatalf("unexpected status: %+v", m.Status)
	}

	m = send(t, m, runes(":"), runes("toggle 1"), enterKey)
	if !m.Tasks.Tasks[0].Completed {
		t.Fatal("expected palette toggle to complete task")
	}

	m = send(t, m, runes(":"), runes("delete 5"), enterKey)
	if !m.Status.IsError || !strings.Contains(m.Status.Text, "no task at row 5") {
		t.Fatalf("expected row error, got %+v", m.Status)
	}
	if len(m.Tasks.Tasks) != 1 {
		t.Fatalf("failed command changed tasks: %+v", m.Tasks.Tasks)
	}

	m = send(t, m, runes(":"), runes("frobnicate"), enterKey)
	if !m.Status.IsError || !strings.HasPrefix(m.Status.Text, "unknown_command") {
		t.Fatalf("expected unknown command error, got %+v", m.Status)
	}

	m = send(t, m, runes(":"), runes("delete 1"), enterKey)
	if len(m.Tasks.Tasks) != 0 {
		t.Fatalf("expected palette delete, got %+v", m.Tasks.Tasks)
	}
}

func TestPaletteEscCloses(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, shiftTabKey, runes(":"), runes("add nope"), escKey)
	if m.Palette.Active || len(m.Tasks.Tasks) != 0 {
		t.Fatalf("expected palette closed without changes, got %+v", m.Tasks)
	}
}

func TestCopyWritesClipboard(t *testing.T) {
	m, cb := newTestModel(t)
	m = send(t, m, runes("copy me"), enterKey, shiftTabKey)

	updated, cmd := m.Update(runes("y"))
	if cmd == nil {
		t.Fatal("expected copy command")
	}
	m = send(t, updated.(Model), cmd())
	if cb.text != "copy me" {
		t.Fatalf("expected clipboard text, got %q", cb.text)
	}
	if m.Status.Text != "copied: copy me" || m.Status.IsError {
		t.Fatalf("unexpected status: %+v", m.Status)
	}

	cb.err = errors.New("no clipboard utility")
	_, cmd = m.Update(runes("y"))
	m = send(t, m, cmd())
	if !m.Status.IsError || !strings.Contains(m.Status.Text, "no clipboard utility") {
		t.Fatalf("expected copy error status, got %+v", m.Status)
	}
	if len(m.Tasks.Tasks) != 1 {
		t.Fatalf("copy failure changed tasks: %+v", m.Tasks.Tasks)
	}
}

func TestDisabledClipboard(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	cfg.Clipboard = false
	cfg.IDMode = model.IDModeSequence
	m := NewModelWithConfig(cfg)
	m = send(t, m, runes("secret"), enterKey, shiftTabKey)
	_, cmd := m.Update(runes("y"))
	m = send(t, m, cmd())
	if !m.Status.IsError || !strings.Contains(m.Status.Text, "clipboard disabled") {
		t.Fatalf("expected disabled clipboard error, got %+v", m.Status)
	}
	if m.Tasks.Tasks[0].ID != "task-1" {
		t.Fatalf("expected sequence ids from config, got %q", m.Tasks.Tasks[0].ID)
	}
}

func TestFocusRing(t *testing.T) {
	m, _ := newTestModel(t)
	want := []Focus{FocusAddButton, FocusList, FocusEntry}
	for i, f := range want {
		m = send(t, m, tabKey)
		if m.Focus != f {
			t.Fatalf("tab %d: expected %q, got %q", i, f, m.Focus)
		}
	}
	m = send(t, m, shiftTabKey)
	if m.Focus != FocusList {
		t.Fatalf("expected shift+tab to wrap to list, got %q", m.Focus)
	}
}

func TestHelpToggle(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, shiftTabKey, runes("?"))
	if !m.HelpVisible {
		t.Fatal("expected help visible")
	}
	out := plainView(m)
	if !strings.Contains(out, "help:") || !strings.Contains(out, "toggle done") {
		t.Fatalf("expected help bindings in view: %q", out)
	}
	m = send(t, m, runes("?"))
	if m.HelpVisible {
		t.Fatal("expected help hidden")
	}
}

func TestStatusAndError(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, SetStatusMsg{Text: "ready"})
	if !strings.Contains(plainView(m), "status: ready") {
		t.Fatalf("expected status in view: %q", plainView(m))
	}
	m = send(t, m, AppErrorMsg{Err: errors.New("boom")})
	if m.LastError == nil || !m.Status.IsError {
		t.Fatalf("expected error state, got %+v", m.Status)
	}
	if !strings.Contains(plainView(m), "status: error: boom") {
		t.Fatalf("expected error status in view: %q", plainView(m))
	}
	m = send(t, m, ClearStatusMsg{})
	if m.Status.Text != "" {
		t.Fatalf("expected cleared status, got %+v", m.Status)
	}
}

func TestStateStaysValidAcrossInteractions(t *testing.T) {
	m, _ := newTestModel(t)
	inputs := []tea.Msg{
		runes("one"), enterKey, runes("  "), enterKey, runes("two"), enterKey,
		shiftTabKey, spaceKey, runes("k"), runes("d"), runes("i"), runes("three"), enterKey,
	}
	for i, msg := range inputs {
		m = send(t, m, msg)
		if err := m.Tasks.Validate(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	got := []string{}
	for _, task := range m.Tasks.Tasks {
		got = append(got, task.Text)
	}
	if strings.Join(got, ",") != "two,three" {
		t.Fatalf("unexpected final tasks: %v", got)
	}
}
