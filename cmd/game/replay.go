package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/cakegamba/internal/application/replay"
	"github.com/younwookim/cakegamba/internal/domain/entity"
	"github.com/younwookim/cakegamba/internal/infrastructure/config"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Replay a recorded session without a window",
	Long: `Replay runs a recording made with --record through the game logic
without opening a window or loading assets, then prints where the
session ended up.

Examples:
  cakegamba replay session.json`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

// Summary is the state a replayed session ends in
type Summary struct {
	Frames int
	Seed   int64
	Scene  entity.Scene
	Score  uint64
	Bet    uint64
	Towers entity.TowerHeights
}

type nopLoader struct{}

func (nopLoader) Load() error { return nil }

func runReplay(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(flagLogLevel)
	if err != nil {
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Error("failed to load config", "err", err)
		return err
	}

	data, err := replay.LoadReplay(args[0])
	if err != nil {
		logger.Error("failed to load replay", "file", args[0], "err", err)
		return err
	}
	logger.Info("replay loaded", "file", args[0], "frames", len(data.Frames), "seed", data.Seed)

	summary, err := simulate(cfg, *data, logger)
	if err != nil {
		return err
	}
	printSummary(cmd.OutOrStdout(), summary)
	return nil
}

// simulate plays every recorded frame through a headless session.
// The recorded seed drives the RNG so the session ends where it did when recorded.
func simulate(cfg *config.GameConfig, data replay.ReplayData, logger *log.Logger) (Summary, error) {
	replayer := replay.NewReplayer(data)
	g, err := newSession(sessionOptions{
		config: cfg,
		seed:   replayer.Seed(),
		loader: nopLoader{},
		input:  replayer,
		logger: logger,
	})
	if err != nil {
		return Summary{}, err
	}

	for !replayer.Done() {
		if err := g.Update(); err != nil {
			return Summary{}, fmt.Errorf("frame %d: %w", replayer.CurrentFrame(), err)
		}
	}

	ctx := g.Context()
	return Summary{
		Frames: replayer.TotalFrames(),
		Seed:   replayer.Seed(),
		Scene:  g.Current(),
		Score:  ctx.Wallet.Score,
		Bet:    ctx.Wallet.Bet,
		Towers: *ctx.Towers,
	}, nil
}

func printSummary(w io.Writer, s Summary) {
	_, _ = fmt.Fprintf(w, "frames: %d\n", s.Frames)
	_, _ = fmt.Fprintf(w, "seed:   %d\n", s.Seed)
	_, _ = fmt.Fprintf(w, "scene:  %s\n", s.Scene)
	_, _ = fmt.Fprintf(w, "score:  %d\n", s.Score)
	_, _ = fmt.Fprintf(w, "bet:    %d\n", s.Bet)
	_, _ = fmt.Fprintf(w, "left:   %v\n", s.Towers.Left)
	_, _ = fmt.Fprintf(w, "right:  %v\n", s.Towers.Right)
}
