package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyText   = errors.New("model: task text is empty")
	ErrDuplicateID = errors.New("model: duplicate task id")
)

type Task struct {
	ID        string
	Text      string
	Completed bool
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Text) == "" {
		return ErrEmptyText
	}
	if t.Text != strings.TrimSpace(t.Text) {
		return fmt.Errorf("model: task %s text is not trimmed", t.ID)
	}
	return nil
}

// State is the whole task list widget state: the tasks in insertion order
// and the text currently sitting in the entry field.
//
// Every transition returns a new State and leaves the receiver's slice
// untouched, so a State captured before an update stays valid.
type State struct {
	Tasks   []Task
	Pending string
}

func (s State) Validate() error {
	seen := make(map[string]bool, len(s.Tasks))
	for _, t := range s.Tasks {
		if err := t.Validate(); err != nil {
			return err
		}
		if seen[t.ID] {
			return fmt.Errorf("%w: %q", ErrDuplicateID, t.ID)
		}
		seen[t.ID] = true
	}
	return nil
}

func (s State) SetPending(text string) State {
	s.Pending = text
	return s
}

// Add appends the trimmed Pending text as a new task and clears Pending.
// Blank input leaves the state as it is.
func (s State) Add(ids IDSource) State {
	next, ok := s.appendTask(s.Pending, ids)
	if !ok {
		return s
	}
	next.Pending = ""
	return next
}

// AddText is Add with explicit input. Pending is not touched.
func (s State) AddText(text string, ids IDSource) State {
	next, _ := s.appendTask(text, ids)
	return next
}

func (s State) appendTask(text string, ids IDSource) (State, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return s, false
	}
	id := ids.NextID()
	for s.indexOf(id) >= 0 {
		id = ids.NextID()
	}
	tasks := make([]Task, 0, len(s.Tasks)+1)
	tasks = append(tasks, s.Tasks...)
	tasks = append(tasks, Task{ID: id, Text: trimmed})
	s.Tasks = tasks
	return s, true
}

func (s State) Toggle(id string) State {
	idx := s.indexOf(id)
	if idx < 0 {
		return s
	}
	tasks := append([]Task(nil), s.Tasks...)
	tasks[idx].Completed = !tasks[idx].Completed
	s.Tasks = tasks
	return s
}

func (s State) Delete(id string) State {
	idx := s.indexOf(id)
	if idx < 0 {
		return s
	}
	tasks := make([]Task, 0, len(s.Tasks)-1)
	tasks = append(tasks, s.Tasks[:idx]...)
	tasks = append(tasks, s.Tasks[idx+1:]...)
	s.Tasks = tasks
	return s
}

// SubmitKey runs Add when key is "enter" and ignores every other key.
func (s State) SubmitKey(key string, ids IDSource) State {
	if key != KeyEnter {
		return s
	}
	return s.Add(ids)
}

func (s State) Remaining() int {
	n := 0
	for _, t := range s.Tasks {
		if !t.Completed {
			n++
		}
	}
	return n
}

func (s State) Find(id string) (Task, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Task{}, false
	}
	return s.Tasks[idx], true
}

func (s State) indexOf(id string) int {
	for i, t := range s.Tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

const KeyEnter = "enter"
