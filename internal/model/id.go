package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// IDSource hands out task identifiers. Implementations need only be
// unique within one State; State.Add retries on a collision.
type IDSource interface {
	NextID() string
}

type IDMode string

const (
	IDModeUUID     IDMode = "uuid"
	IDModeSequence IDMode = "sequence"
)

func (m IDMode) IsValid() bool {
	switch m {
	case IDModeUUID, IDModeSequence:
		return true
	default:
		return false
	}
}

func ParseIDMode(raw string) (IDMode, error) {
	mode := IDMode(strings.ToLower(strings.TrimSpace(raw)))
	if !mode.IsValid() {
		return "", fmt.Errorf("model: unknown id mode %q", raw)
	}
	return mode, nil
}

func NewIDSource(mode IDMode) IDSource {
	if mode == IDModeSequence {
		return NewSequenceSource("task")
	}
	return UUIDSource{}
}

type UUIDSource struct{}

func (UUIDSource) NextID() string { return uuid.NewString() }

// SequenceSource yields prefix-1, prefix-2, ... in call order.
type SequenceSource struct {
	prefix string
	next   int
}

func NewSequenceSource(prefix string) *SequenceSource {
	return &SequenceSource{prefix: prefix, next: 1}
}

func (s *SequenceSource) NextID() string {
	if s.next <= 0 {
		s.next = 1
	}
	id := fmt.Sprintf("%s-%d", s.prefix, s.next)
	s.next++
	return id
}
