package system

import (
	"github.com/younwookim/cakegamba/internal/domain/entity"
	"github.com/younwookim/cakegamba/internal/ecs"
)

// ChangeBet applies a bet adjustment, clamping the bet to [1, Score]
func ChangeBet(w *entity.Wallet, change BetChange) {
	switch change {
	case BetIncrease:
		w.IncreaseBet()
	case BetDecrease:
		w.DecreaseBet()
	}
}

// Outcome records how one bet resolved
type Outcome struct {
	Chosen   entity.Side
	Side     entity.Side // drawn outcome side
	Won      bool
	Bankrupt bool
	Grant    uint64 // new score after bankruptcy
	Lane     int
	Height   int // lane height after growth
}

// ResolveBet settles a bet on the chosen side.
// Random draws happen in a fixed order: outcome side, bankruptcy grant (only when broke),
// lane, segment variant. The tower always grows on the drawn side, whatever was chosen.
func ResolveBet(
	wallet *entity.Wallet,
	towers *entity.TowerHeights,
	chosen entity.Side,
	rng RNG,
	t GambaTuning,
) (Outcome, []Effect) {
	var effects []Effect
	out := Outcome{Chosen: chosen, Side: entity.SideRight}
	if rng.Uint32()%2 == 0 {
		out.Side = entity.SideLeft
	}

	if chosen == out.Side {
		out.Won = true
		wallet.Win()
	} else {
		if wallet.Lose() {
			out.Bankrupt = true
			out.Grant = bankruptcyGrant(rng, t)
			wallet.Score = out.Grant
			effects = append(effects, ShowBanner{Amount: out.Grant})
		}
		wallet.CapBet()
	}

	out.Lane = int(rng.Uint32() % entity.LaneCount)
	out.Height = towers.Grow(out.Side, out.Lane)

	effects = append(effects,
		SpawnSegment{
			Side:   out.Side,
			Lane:   out.Lane,
			Height: out.Height,
			Index:  t.Segment.Pick(rng.Uint32()),
		},
		StartPan{Target: float64(out.Height) * t.SegmentSize},
	)

	return out, effects
}

func bankruptcyGrant(rng RNG, t GambaTuning) uint64 {
	span := t.BankruptcySpan
	if span == 0 {
		span = 1
	}
	return uint64(rng.Uint32())%span + t.BankruptcyMin
}

// SetupGamba puts the camera back at the ground and resets the towers, then spawns the ground,
// the sign and a base segment in every lane on both sides
func SetupGamba(c *Context) {
	w := c.World
	t := c.Tuning.Gamba

	c.Camera.Reset(t.ClearColor, t.Ambient)
	c.Towers.Reset()

	ground := w.Spawn(entity.SceneGamba)
	w.Transform[ground] = ecs.Transform{
		Translation: ecs.Vec3{Y: -3200 - t.SegmentSize/2},
		Scale:       6400,
	}
	w.Sprite[ground] = ecs.Sprite{Solid: true, Color: t.GroundColor}

	sign := w.Spawn(entity.SceneGamba)
	w.Transform[sign] = ecs.Transform{Scale: t.SegmentScale}
	w.Sprite[sign] = ecs.Sprite{Index: t.SignIndex}

	for lane := 0; lane < entity.LaneCount; lane++ {
		for _, side := range []entity.Side{entity.SideLeft, entity.SideRight} {
			SpawnTowerSegment(c, side, lane, 0, t.Segment.Pick(c.RNG.Uint32()))
		}
	}
}

// SpawnTowerSegment places a pickable segment for (side, lane) at the given height
func SpawnTowerSegment(c *Context, side entity.Side, lane, height, index int) ecs.EntityID {
	w := c.World
	t := c.Tuning.Gamba

	id := w.Spawn(entity.SceneGamba)
	w.Transform[id] = ecs.Transform{
		Translation: ecs.Vec3{
			X: side.Sign() * float64(lane+1) * t.SegmentSize,
			Y: float64(height) * t.SegmentSize,
		},
		Scale: t.SegmentScale,
	}
	w.Sprite[id] = ecs.Sprite{Index: index}
	w.Segment[id] = ecs.Segment{Side: side, Lane: lane, Height: height}
	w.IsPickable[id] = struct{}{}
	return id
}

// PressGambaScene turns a press on a tower segment into a bet on that segment's side
func PressGambaScene(c *Context, id ecs.EntityID) {
	if seg, ok := c.World.Segment[id]; ok {
		c.Intents.Push(BetIntent{Side: seg.Side})
	}
}

// HandleGambaIntent resolves one bet or bet-change intent.
// Other intents are ignored.
func HandleGambaIntent(c *Context, intent Intent) {
	switch in := intent.(type) {
	case BetChangeIntent:
		ChangeBet(c.Wallet, in.Change)
	case BetIntent:
		out, effects := ResolveBet(c.Wallet, c.Towers, in.Side, c.RNG, c.Tuning.Gamba)
		Apply(c, effects)

		c.Log.Debug("bet resolved",
			"chosen", out.Chosen, "outcome", out.Side, "won", out.Won,
			"score", c.Wallet.Score, "bet", c.Wallet.Bet, "lane", out.Lane, "height", out.Height)
		if out.Bankrupt {
			c.Log.Info("bankrupt", "grant", out.Grant)
		}
	}
}
