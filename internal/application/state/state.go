// Package state tracks which scene is active and which transitions are legal.
package state

import (
	"errors"
	"fmt"

	"github.com/younwookim/cakegamba/internal/domain/entity"
)

// ErrInvalidTransition is returned for a scene change the flow does not allow
var ErrInvalidTransition = errors.New("invalid scene transition")

// transitions lists the legal moves out of each scene.
// Loading only ever leads to Cake; Cake and Gamba switch back and forth.
var transitions = map[entity.Scene][]entity.Scene{
	entity.SceneLoading: {entity.SceneCake},
	entity.SceneCake:    {entity.SceneGamba},
	entity.SceneGamba:   {entity.SceneCake},
}

// Machine is the session state machine. It starts in Loading and never ends.
type Machine struct {
	current     entity.Scene
	cakeEntered bool
	transitions int
}

// NewMachine creates a machine in the Loading scene
func NewMachine() *Machine {
	return &Machine{current: entity.SceneLoading}
}

// Current returns the active scene
func (m *Machine) Current() entity.Scene {
	return m.current
}

// CakeEntered reports whether the cake scene has been entered at least once
func (m *Machine) CakeEntered() bool {
	return m.cakeEntered
}

// Transitions returns how many transitions have happened
func (m *Machine) Transitions() int {
	return m.transitions
}

// CanTransition reports whether moving to next is allowed from the current scene
func (m *Machine) CanTransition(next entity.Scene) bool {
	for _, s := range transitions[m.current] {
		if s == next {
			return true
		}
	}
	return false
}

// Transition moves to next, or returns an error wrapping ErrInvalidTransition
func (m *Machine) Transition(next entity.Scene) error {
	if !m.CanTransition(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.current, next)
	}
	m.current = next
	m.transitions++
	if next == entity.SceneCake {
		m.cakeEntered = true
	}
	return nil
}
