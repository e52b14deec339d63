package tutorial

import (
	"errors"
	"fmt"
)

// ErrUnknownStep is returned when selecting an id or index outside the step set.
var ErrUnknownStep = errors.New("unknown tutorial step")

// Navigator tracks the active step of an immutable, ordered step list.
type Navigator struct {
	steps []Step
	index map[string]int
	cur   int
}

// NewNavigator creates a navigator positioned on the first step. The step
// list must be non-empty and ids must be unique.
func NewNavigator(steps []Step) (*Navigator, error) {
	if len(steps) == 0 {
		return nil, errors.New("tutorial needs at least one step")
	}

	index := make(map[string]int, len(steps))
	for i, s := range steps {
		if s.ID == "" {
			return nil, fmt.Errorf("step %d has an empty id", i+1)
		}
		if _, dup := index[s.ID]; dup {
			return nil, fmt.Errorf("duplicate step id %q", s.ID)
		}
		index[s.ID] = i
	}

	owned := make([]Step, len(steps))
	copy(owned, steps)
	return &Navigator{steps: owned, index: index}, nil
}

// SelectStep makes the step with the given id current. Unknown ids leave the
// navigator unchanged.
func (n *Navigator) SelectStep(id string) error {
	i, ok := n.index[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStep, id)
	}
	n.cur = i
	return nil
}

// SelectIndex makes the step at the 0-based position i current.
func (n *Navigator) SelectIndex(i int) error {
	if i < 0 || i >= len(n.steps) {
		return fmt.Errorf("%w: index %d (have %d steps)", ErrUnknownStep, i, len(n.steps))
	}
	n.cur = i
	return nil
}

// Next moves forward one step. It reports false at the last step.
func (n *Navigator) Next() bool {
	if !n.HasNext() {
		return false
	}
	n.cur++
	return true
}

// Previous moves back one step. It reports false at the first step.
func (n *Navigator) Previous() bool {
	if !n.HasPrevious() {
		return false
	}
	n.cur--
	return true
}

func (n *Navigator) HasNext() bool     { return n.cur < len(n.steps)-1 }
func (n *Navigator) HasPrevious() bool { return n.cur > 0 }
func (n *Navigator) IsLast() bool      { return n.cur == len(n.steps)-1 }
func (n *Navigator) Index() int        { return n.cur }
func (n *Navigator) Len() int          { return len(n.steps) }

// Current returns the active step.
func (n *Navigator) Current() Step {
	return n.steps[n.cur]
}

// Steps returns a copy of the step list in display order.
func (n *Navigator) Steps() []Step {
	out := make([]Step, len(n.steps))
	copy(out, n.steps)
	return out
}

// Lookup finds a step by id.
func (n *Navigator) Lookup(id string) (Step, bool) {
	i, ok := n.index[id]
	if !ok {
		return Step{}, false
	}
	return n.steps[i], true
}
