package entity

// Scene identifies one of the mutually exclusive screens of a session
type Scene int

const (
	SceneLoading Scene = iota
	SceneCake
	SceneGamba
)

// String returns the string representation of the scene
func (s Scene) String() string {
	switch s {
	case SceneLoading:
		return "Loading"
	case SceneCake:
		return "Cake"
	case SceneGamba:
		return "Gamba"
	default:
		return "Unknown"
	}
}

// Side is one half of the gamba board
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// String returns the string representation of the side
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Sign returns -1 for the left side and 1 for the right side
func (s Side) Sign() float64 {
	if s == SideLeft {
		return -1
	}
	return 1
}

// Sound is a fire-and-forget audio cue
type Sound int

const (
	SoundEating Sound = iota
	SoundPickleMew
)

// String returns the string representation of the sound
func (s Sound) String() string {
	switch s {
	case SoundEating:
		return "Eating"
	case SoundPickleMew:
		return "PickleMew"
	default:
		return "Unknown"
	}
}

// Action is what a UI button asks for when pressed
type Action int

const (
	ActionEnterCake Action = iota
	ActionEnterGamba
	ActionIncreaseBet
	ActionDecreaseBet
	ActionBetLeft
	ActionBetRight
)

// String returns the string representation of the action
func (a Action) String() string {
	switch a {
	case ActionEnterCake:
		return "EnterCakeScene"
	case ActionEnterGamba:
		return "EnterGambaScene"
	case ActionIncreaseBet:
		return "IncreaseBet"
	case ActionDecreaseBet:
		return "DecreaseBet"
	case ActionBetLeft:
		return "BetLeft"
	case ActionBetRight:
		return "BetRight"
	default:
		return "Unknown"
	}
}
