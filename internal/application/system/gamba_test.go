package system

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/cakegamba/internal/domain/entity"
	"github.com/younwookim/cakegamba/internal/ecs"
)

func TestChangeBet(t *testing.T) {
	tests := []struct {
		name       string
		score, bet uint64
		change     BetChange
		wantBet    uint64
	}{
		{"increase", 10, 3, BetIncrease, 4},
		{"increase at score", 10, 10, BetIncrease, 10},
		{"decrease", 10, 3, BetDecrease, 2},
		{"decrease at one", 10, 1, BetDecrease, 1},
		{"single coin", 1, 1, BetIncrease, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := entity.NewWallet(tt.score, tt.bet)
			ChangeBet(w, tt.change)
			assert.Equal(t, tt.wantBet, w.Bet)
			assert.Equal(t, tt.score, w.Score)
		})
	}
}

func TestChangeBet_StaysInBounds(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for round := 0; round < 200; round++ {
		score := uint64(r.Intn(20) + 1)
		w := entity.NewWallet(score, uint64(r.Intn(int(score))+1))
		for i := 0; i < 50; i++ {
			change := BetIncrease
			if r.Intn(2) == 0 {
				change = BetDecrease
			}
			ChangeBet(w, change)
			require.GreaterOrEqual(t, w.Bet, uint64(1))
			require.LessOrEqual(t, w.Bet, w.Score)
		}
	}
}

func TestResolveBet_Win(t *testing.T) {
	tuning := testTuning(t).Gamba
	w := entity.NewWallet(10, 3)
	towers := &entity.TowerHeights{}
	// left, lane 3, variant 2
	rng := &scriptedRNG{values: []uint32{0, 3, 2}}

	out, effects := ResolveBet(w, towers, entity.SideLeft, rng, tuning)

	assert.True(t, out.Won)
	assert.False(t, out.Bankrupt)
	assert.Equal(t, entity.SideLeft, out.Side)
	assert.Equal(t, uint64(13), w.Score)
	assert.Equal(t, uint64(3), w.Bet)
	assert.Equal(t, 1, towers.Left[3])
	assert.Equal(t, []Effect{
		SpawnSegment{Side: entity.SideLeft, Lane: 3, Height: 1, Index: 52},
		StartPan{Target: 64},
	}, effects)
}

func TestResolveBet_Loss(t *testing.T) {
	tuning := testTuning(t).Gamba
	w := entity.NewWallet(10, 4)
	towers := &entity.TowerHeights{}
	towers.Right[5] = 2
	// right, lane 5, variant 0
	rng := &scriptedRNG{values: []uint32{1, 11, 0}}

	out, effects := ResolveBet(w, towers, entity.SideLeft, rng, tuning)

	assert.False(t, out.Won)
	assert.Equal(t, entity.SideRight, out.Side)
	assert.Equal(t, uint64(6), w.Score)
	assert.Equal(t, uint64(4), w.Bet)
	assert.Equal(t, 3, towers.Right[5])
	assert.Equal(t, 3, out.Height)
	assert.Equal(t, []Effect{
		SpawnSegment{Side: entity.SideRight, Lane: 5, Height: 3, Index: 50},
		StartPan{Target: 192},
	}, effects)
}

func TestResolveBet_Bankruptcy(t *testing.T) {
	tuning := testTuning(t).Gamba
	w := entity.NewWallet(1, 1)
	towers := &entity.TowerHeights{}
	// right, grant 7%5+5, lane 0, variant 1
	rng := &scriptedRNG{values: []uint32{1, 7, 0, 1}}

	out, effects := ResolveBet(w, towers, entity.SideLeft, rng, tuning)

	assert.True(t, out.Bankrupt)
	assert.Equal(t, uint64(7), out.Grant)
	assert.Equal(t, uint64(7), w.Score)
	assert.Equal(t, uint64(1), w.Bet)
	assert.Equal(t, 1, towers.Right[0])
	require.Len(t, effects, 3)
	assert.Equal(t, ShowBanner{Amount: 7}, effects[0])
}

func TestResolveBet_Properties(t *testing.T) {
	tuning := testTuning(t).Gamba
	rng := rand.New(rand.NewSource(2024))
	w := entity.NewWallet(1, 1)
	towers := &entity.TowerHeights{}

	for i := 0; i < 2000; i++ {
		if rng.Intn(3) == 0 {
			w.Bet = uint64(rng.Intn(int(w.Score))) + 1
		}
		chosen := entity.SideLeft
		if rng.Intn(2) == 0 {
			chosen = entity.SideRight
		}
		before := *w
		beforeTowers := *towers

		out, _ := ResolveBet(w, towers, chosen, rng, tuning)

		switch {
		case out.Won:
			require.Equal(t, chosen, out.Side)
			require.Equal(t, before.Score+before.Bet, w.Score)
			require.Equal(t, before.Bet, w.Bet)
		case out.Bankrupt:
			require.Equal(t, before.Score, before.Bet)
			require.GreaterOrEqual(t, w.Score, uint64(5))
			require.Less(t, w.Score, uint64(10))
			require.Equal(t, min(before.Bet, w.Score), w.Bet)
		default:
			require.NotEqual(t, chosen, out.Side)
			require.Equal(t, before.Score-before.Bet, w.Score)
			require.Equal(t, min(before.Bet, w.Score), w.Bet)
		}
		require.GreaterOrEqual(t, w.Bet, uint64(1))
		require.LessOrEqual(t, w.Bet, w.Score)

		// Exactly one lane grew by one
		require.Equal(t, beforeTowers.Total()+1, towers.Total())
		require.Equal(t, beforeTowers.Height(out.Side, out.Lane)+1, towers.Height(out.Side, out.Lane))
		for lane := 0; lane < entity.LaneCount; lane++ {
			for _, side := range []entity.Side{entity.SideLeft, entity.SideRight} {
				if side == out.Side && lane == out.Lane {
					continue
				}
				require.Equal(t, beforeTowers.Height(side, lane), towers.Height(side, lane))
			}
		}
	}
}

func TestSetupGamba(t *testing.T) {
	c, _ := newTestContext(t, rand.New(rand.NewSource(5)))
	c.Towers.Left[2] = 4
	c.Camera.Pan = entity.NewCameraPan(0, 100, 2)
	c.Camera.Y = 320

	SetupGamba(c)

	assert.Equal(t, 0, c.Towers.Total())
	assert.False(t, c.Camera.Pan.Active)
	assert.Equal(t, 0.0, c.Camera.Y)
	assert.Equal(t, 1.0, c.Camera.Ambient)
	assert.Equal(t, uint8(255), c.Camera.ClearColor.B)
	assert.Len(t, c.World.Segment, 12)
	assert.Equal(t, 14, c.World.CountOwned(entity.SceneGamba))

	lanes := map[entity.Side]map[int]bool{entity.SideLeft: {}, entity.SideRight: {}}
	for id, seg := range c.World.Segment {
		assert.Equal(t, 0, seg.Height)
		lanes[seg.Side][seg.Lane] = true

		tr := c.World.Transform[id]
		assert.Equal(t, seg.Side.Sign()*float64(seg.Lane+1)*64, tr.Translation.X)
		assert.Equal(t, 0.0, tr.Translation.Y)
		assert.Equal(t, 2.0, tr.Scale)
		assert.True(t, c.Tuning.Gamba.Segment.Contains(c.World.Sprite[id].Index))
		assert.Contains(t, c.World.IsPickable, id)
	}
	assert.Len(t, lanes[entity.SideLeft], 6)
	assert.Len(t, lanes[entity.SideRight], 6)
}

func TestHandleGambaIntent_Bet(t *testing.T) {
	// Setup draws 12 variants, then: right, lane 2, variant 3
	values := make([]uint32, 12)
	values = append(values, 1, 2, 3)
	c, _ := newTestContext(t, &scriptedRNG{values: values})
	c.Wallet.Score, c.Wallet.Bet = 5, 2
	SetupGamba(c)
	c.Camera.Y = 32

	HandleGambaIntent(c, BetIntent{Side: entity.SideRight})

	assert.Equal(t, uint64(7), c.Wallet.Score)
	assert.Equal(t, 1, c.Towers.Right[2])
	assert.Len(t, c.World.Segment, 13)

	var grown ecs.EntityID
	for id, seg := range c.World.Segment {
		if seg.Height == 1 {
			grown = id
		}
	}
	require.NotZero(t, grown)
	assert.Equal(t, ecs.Vec3{X: 192, Y: 64}, c.World.Transform[grown].Translation)
	assert.Equal(t, 53, c.World.Sprite[grown].Index)

	require.True(t, c.Camera.Pan.Active)
	assert.Equal(t, 32.0, c.Camera.Pan.Start)
	assert.Equal(t, 64.0, c.Camera.Pan.Target)
}

func TestHandleGambaIntent_BetChange(t *testing.T) {
	c, _ := newTestContext(t, &scriptedRNG{})
	c.Wallet.Score, c.Wallet.Bet = 3, 1

	HandleGambaIntent(c, BetChangeIntent{Change: BetIncrease})
	HandleGambaIntent(c, BetChangeIntent{Change: BetIncrease})
	HandleGambaIntent(c, BetChangeIntent{Change: BetIncrease})
	assert.Equal(t, uint64(3), c.Wallet.Bet)

	HandleGambaIntent(c, BetChangeIntent{Change: BetDecrease})
	assert.Equal(t, uint64(2), c.Wallet.Bet)

	// Scene changes are not handled here
	HandleGambaIntent(c, EnterSceneIntent{Scene: entity.SceneCake})
	assert.Equal(t, uint64(2), c.Wallet.Bet)
}

func TestBankruptcyScenario(t *testing.T) {
	values := make([]uint32, 12)
	// outcome right, grant 5+3, lane 4, variant 0
	values = append(values, 1, 3, 4, 0)
	c, _ := newTestContext(t, &scriptedRNG{values: values})
	SetupGamba(c)
	require.Equal(t, uint64(1), c.Wallet.Score)
	require.Equal(t, uint64(1), c.Wallet.Bet)

	HandleGambaIntent(c, BetIntent{Side: entity.SideLeft})

	assert.Equal(t, uint64(8), c.Wallet.Score)
	assert.Equal(t, uint64(1), c.Wallet.Bet)
	require.Len(t, c.World.Banner, 1)

	banner := ecs.Sorted(c.World.Banner)[0]
	assert.Equal(t, "Damn, you're broke! Here, have $8", c.World.Label[banner].Text)

	dt := 1.0 / 60.0
	elapsed := 0.0
	for c.World.Exists(banner) && elapsed < 10 {
		ecs.UpdateBanners(c.World, dt)
		elapsed += dt
	}
	assert.InDelta(t, 2.5, elapsed, 2*dt)
	assert.Empty(t, c.World.Banner)
}

func TestShowBanner_ReplacesExisting(t *testing.T) {
	c, _ := newTestContext(t, &scriptedRNG{})

	Apply(c, []Effect{ShowBanner{Amount: 5}})
	first := ecs.Sorted(c.World.Banner)[0]
	Apply(c, []Effect{ShowBanner{Amount: 9}})

	require.Len(t, c.World.Banner, 1)
	assert.False(t, c.World.Exists(first))
	second := ecs.Sorted(c.World.Banner)[0]
	assert.Equal(t, BannerText(9), c.World.Label[second].Text)
}

func TestCameraPan(t *testing.T) {
	c, _ := newTestContext(t, &scriptedRNG{})
	c.Camera.Y = 64

	Apply(c, []Effect{StartPan{Target: 192}})
	require.True(t, c.Camera.Pan.Active)

	c.Camera.Update(1)
	assert.InDelta(t, 128, c.Camera.Y, 1e-9)

	c.Camera.Update(1)
	assert.InDelta(t, 192, c.Camera.Y, 1e-9)
	assert.False(t, c.Camera.Pan.Active)

	// Holds at the target once finished
	c.Camera.Update(1)
	assert.InDelta(t, 192, c.Camera.Y, 1e-9)
}

func TestCameraConversions(t *testing.T) {
	cam := &Camera{Y: 100}

	x, y := cam.ScreenToWorld(640, 360, 1280, 720)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 100.0, y)

	sx, sy := cam.WorldToScreen(-64, 0, 1280, 720)
	assert.Equal(t, 576.0, sx)
	assert.Equal(t, 460.0, sy)
}

func TestPressGambaScene(t *testing.T) {
	c, _ := newTestContext(t, &scriptedRNG{})
	SetupGamba(c)

	var left ecs.EntityID
	for id, seg := range c.World.Segment {
		if seg.Side == entity.SideLeft {
			left = id
			break
		}
	}

	PressGambaScene(c, left)
	assert.Equal(t, []Intent{BetIntent{Side: entity.SideLeft}}, c.Intents.Drain())

	// Not a segment
	PressGambaScene(c, 9999)
	assert.Equal(t, 0, c.Intents.Len())
}
