package system

import "github.com/younwookim/cakegamba/internal/domain/entity"

// Intent represents something the player asked for during a frame.
// Intents are queued and resolved at the start of the next frame.
type Intent interface {
	isIntent()
}

// EnterSceneIntent asks the game to switch scenes
type EnterSceneIntent struct {
	Scene entity.Scene
}

func (EnterSceneIntent) isIntent() {}

// BetChange is the direction of a bet adjustment
type BetChange int

const (
	BetIncrease BetChange = iota
	BetDecrease
)

func (c BetChange) String() string {
	switch c {
	case BetIncrease:
		return "Increase"
	case BetDecrease:
		return "Decrease"
	default:
		return "Unknown"
	}
}

// BetChangeIntent asks for the bet to go up or down by one
type BetChangeIntent struct {
	Change BetChange
}

func (BetChangeIntent) isIntent() {}

// BetIntent places the current bet on a side
type BetIntent struct {
	Side entity.Side
}

func (BetIntent) isIntent() {}

// IntentFor maps a button action to its intent
func IntentFor(a entity.Action) (Intent, bool) {
	switch a {
	case entity.ActionEnterCake:
		return EnterSceneIntent{Scene: entity.SceneCake}, true
	case entity.ActionEnterGamba:
		return EnterSceneIntent{Scene: entity.SceneGamba}, true
	case entity.ActionIncreaseBet:
		return BetChangeIntent{Change: BetIncrease}, true
	case entity.ActionDecreaseBet:
		return BetChangeIntent{Change: BetDecrease}, true
	case entity.ActionBetLeft:
		return BetIntent{Side: entity.SideLeft}, true
	case entity.ActionBetRight:
		return BetIntent{Side: entity.SideRight}, true
	default:
		return nil, false
	}
}

// IntentQueue buffers intents raised during one frame
type IntentQueue struct {
	pending []Intent
}

// Push queues an intent for the next drain
func (q *IntentQueue) Push(i Intent) {
	q.pending = append(q.pending, i)
}

// Drain returns the queued intents in order and empties the queue
func (q *IntentQueue) Drain() []Intent {
	out := q.pending
	q.pending = nil
	return out
}

// Clear drops all queued intents
func (q *IntentQueue) Clear() {
	q.pending = nil
}

// Len returns the number of queued intents
func (q *IntentQueue) Len() int {
	return len(q.pending)
}
