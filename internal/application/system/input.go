package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState holds the pointer state for one frame
type InputState struct {
	X       int
	Y       int
	Pressed bool // edge-triggered: true only on the frame the press began
}

// InputReader provides the pointer state for the current frame
type InputReader interface {
	GetInput() InputState
}

// InputSystem reads mouse and touch input from ebiten
type InputSystem struct {
	touches []ebiten.TouchID
}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// GetInput reads the current input state.
// A new touch takes priority over the mouse cursor.
func (s *InputSystem) GetInput() InputState {
	s.touches = inpututil.AppendJustPressedTouchIDs(s.touches[:0])
	if len(s.touches) > 0 {
		x, y := ebiten.TouchPosition(s.touches[0])
		return InputState{X: x, Y: y, Pressed: true}
	}

	mx, my := ebiten.CursorPosition()
	return InputState{
		X:       mx,
		Y:       my,
		Pressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}
}
