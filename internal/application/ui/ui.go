// Package ui builds the on-screen text and buttons for each scene and
// routes pointer presses on buttons into intents.
package ui

import (
	"image/color"
	"strconv"

	"github.com/younwookim/cakegamba/internal/application/system"
	"github.com/younwookim/cakegamba/internal/domain/entity"
	"github.com/younwookim/cakegamba/internal/ecs"
)

var (
	white      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	dark       = color.RGBA{R: 29, G: 29, B: 29, A: 255}
	faint      = color.RGBA{R: 69, G: 69, B: 69, A: 255}
	errorRed   = color.RGBA{R: 255, G: 96, B: 96, A: 255}
	betDown    = color.RGBA{R: 128, A: 255}
	betUp      = color.RGBA{G: 128, A: 255}
	sideButton = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	cakeButton = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

const (
	LoadingText = "Loading assets..."
	GambaText   = "secret gamba"
	CakeText    = "Want more cake?"
)

// ScoreText formats the score for display
func ScoreText(score uint64) string {
	if score == 69 {
		return "69, nice"
	}
	return strconv.FormatUint(score, 10)
}

// SpawnLoading shows the loading message
func SpawnLoading(c *system.Context) {
	w, h := c.Tuning.ScreenWidth, c.Tuning.ScreenHeight
	label(c, entity.SceneLoading, ecs.Label{Text: LoadingText, X: w / 2, Y: h / 2, Size: 69, Color: white})
}

// ShowError adds an error line under the loading message
func ShowError(c *system.Context, err error) {
	w, h := c.Tuning.ScreenWidth, c.Tuning.ScreenHeight
	label(c, entity.SceneLoading, ecs.Label{Text: err.Error(), X: w / 2, Y: h/2 + 80, Size: 18, Color: errorRed})
}

// SpawnCake shows the birthday title and the hidden way into the gamba scene
func SpawnCake(c *system.Context) {
	w, h := c.Tuning.ScreenWidth, c.Tuning.ScreenHeight
	t := c.Tuning.Cake

	label(c, entity.SceneCake, ecs.Label{Text: t.Title, X: w / 2, Y: h * 0.1, Size: 69, Color: t.TitleColor})
	button(c, entity.SceneCake, ecs.Button{
		Rect:      ecs.Rect{X: w - 120, Y: h - 60, W: 120, H: 60},
		Action:    entity.ActionEnterGamba,
		Text:      GambaText,
		TextSize:  12,
		TextColor: faint,
	})
}

// SpawnGamba shows the score, the bet controls, the side buttons and the way back to the cake
func SpawnGamba(c *system.Context) {
	w, h := c.Tuning.ScreenWidth, c.Tuning.ScreenHeight
	text := c.Tuning.Gamba.TextColor

	label(c, entity.SceneGamba, ecs.Label{Prefix: "$", X: w / 2, Y: h * 0.1, Size: 24, Color: text, Binding: ecs.BindScore})

	// Bet row
	bx, by := w*0.7, h*0.7
	button(c, entity.SceneGamba, ecs.Button{
		Rect:     ecs.Rect{X: bx - 124, Y: by - 24, W: 48, H: 48},
		Action:   entity.ActionDecreaseBet,
		Text:     "<",
		TextSize: 24, Fill: betDown, TextColor: text,
	})
	label(c, entity.SceneGamba, ecs.Label{Prefix: "bet: $", X: bx, Y: by, Size: 24, Color: text, Binding: ecs.BindBet})
	button(c, entity.SceneGamba, ecs.Button{
		Rect:     ecs.Rect{X: bx + 76, Y: by - 24, W: 48, H: 48},
		Action:   entity.ActionIncreaseBet,
		Text:     ">",
		TextSize: 24, Fill: betUp, TextColor: text,
	})

	// Side row
	sx, sy := w/2, h*0.8
	button(c, entity.SceneGamba, ecs.Button{
		Rect:     ecs.Rect{X: sx - 136, Y: sy - 24, W: 96, H: 48},
		Action:   entity.ActionBetLeft,
		Text:     "LEFT",
		TextSize: 24, Fill: sideButton, TextColor: text,
	})
	label(c, entity.SceneGamba, ecs.Label{Text: "<->", X: sx, Y: sy, Size: 24, Color: text})
	button(c, entity.SceneGamba, ecs.Button{
		Rect:     ecs.Rect{X: sx + 40, Y: sy - 24, W: 96, H: 48},
		Action:   entity.ActionBetRight,
		Text:     "RIGHT",
		TextSize: 24, Fill: sideButton, TextColor: text,
	})

	button(c, entity.SceneGamba, ecs.Button{
		Rect:     ecs.Rect{X: w - 240, Y: h - 60, W: 240, H: 60},
		Action:   entity.ActionEnterCake,
		Text:     CakeText,
		TextSize: 24, Fill: cakeButton, TextColor: dark,
	})

	UpdateDisplays(c)
}

// UpdateDisplays refreshes every label bound to the score or the bet
func UpdateDisplays(c *system.Context) {
	for id, l := range c.World.Label {
		switch l.Binding {
		case ecs.BindScore:
			l.Text = l.Prefix + ScoreText(c.Wallet.Score)
		case ecs.BindBet:
			l.Text = l.Prefix + strconv.FormatUint(c.Wallet.Bet, 10)
		default:
			continue
		}
		c.World.Label[id] = l
	}
}

// Press queues the intent of the button under a new press.
// Returns true if a button took the press, so the world underneath must ignore it.
func Press(c *system.Context) bool {
	if !c.Input.Pressed {
		return false
	}
	id, ok := ecs.ButtonAt(c.World, float64(c.Input.X), float64(c.Input.Y))
	if !ok {
		return false
	}
	if intent, ok := system.IntentFor(c.World.Button[id].Action); ok {
		c.Intents.Push(intent)
	}
	return true
}

func label(c *system.Context, owner entity.Scene, l ecs.Label) ecs.EntityID {
	id := c.World.Spawn(owner)
	c.World.Label[id] = l
	return id
}

func button(c *system.Context, owner entity.Scene, b ecs.Button) ecs.EntityID {
	id := c.World.Spawn(owner)
	c.World.Button[id] = b
	return id
}
