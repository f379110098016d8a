// cakegamba is a birthday card you can eat, with a secret gamba behind it.
//
// Usage:
//
//	cakegamba                 - Open the card
//	cakegamba replay <file>   - Replay a recorded session headlessly
//
// Global flags:
//
//	--config <path>     - Game config YAML (default: ./configs/game.yaml, then built-in)
//	--seed <value>      - RNG seed (0 = random based on time)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/spf13/cobra"

	"github.com/younwookim/cakegamba/internal/application/render"
	"github.com/younwookim/cakegamba/internal/application/replay"
	"github.com/younwookim/cakegamba/internal/application/system"
	"github.com/younwookim/cakegamba/internal/infrastructure/assets"
	"github.com/younwookim/cakegamba/internal/infrastructure/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string

	// Run flags
	flagAssets      string
	flagPlaceholder bool
	flagRecord      string
)

// recordAuto is the --record value given without a file name
const recordAuto = "auto"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cakegamba",
	Short: "Eat the cake, blow out the candles, maybe gamble a little",
	Long: `cakegamba opens a birthday card with a cake to eat bite by bite.
A hidden button in the corner leads to the secret gamba, where you bet
on which side the sugar cane grows.

Examples:
  cakegamba
  cakegamba --placeholder
  cakegamba --record session.json --seed 42
  cakegamba replay session.json`,
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.Flags().StringVar(&flagAssets, "assets", "", "Asset directory (overrides assets.dir from config)")
	rootCmd.Flags().BoolVar(&flagPlaceholder, "placeholder", false, "Use a generated atlas and no sounds")
	rootCmd.Flags().StringVar(&flagRecord, "record", "", "Record input to file (e.g. --record replay.json; bare --record picks a timestamped name)")
	rootCmd.Flags().Lookup("record").NoOptDefVal = recordAuto

	rootCmd.AddCommand(replayCmd)
}

func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "cake",
		Level:           lvl,
	}), nil
}

func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

// recordFilename turns the --record value into a file name; "" disables recording
func recordFilename(flag string) string {
	if flag == recordAuto {
		return replay.GenerateFilename()
	}
	return flag
}

func runGame(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(flagLogLevel)
	if err != nil {
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Error("failed to load config", "err", err)
		return err
	}
	seed := resolveSeed(flagSeed)

	var manager *assets.Manager
	if flagPlaceholder {
		manager = assets.NewPlaceholderManager(cfg.Assets)
	} else {
		dir := cfg.Assets.Dir
		if flagAssets != "" {
			dir = flagAssets
		}
		manager = assets.NewManager(os.DirFS(dir), cfg.Assets, audio.NewContext(cfg.Assets.SampleRate))
	}

	renderer, err := render.NewRenderer(manager)
	if err != nil {
		return err
	}

	g, err := newSession(sessionOptions{
		config:   cfg,
		seed:     seed,
		loader:   manager,
		sounds:   manager,
		renderer: renderer,
		input:    system.NewInputSystem(),
		logger:   logger,
	})
	if err != nil {
		return err
	}
	logger.Info("card opened", "seed", seed, "placeholder", flagPlaceholder)

	var recorder *replay.Recorder
	recordFile := recordFilename(flagRecord)
	if recordFile != "" {
		recorder = replay.NewRecorder(seed)
		g.SetRecorder(recorder)
		logger.Info("recording enabled", "file", recordFile, "seed", seed)
	}

	d := cfg.Display
	ebiten.SetWindowSize(d.ScreenWidth*d.Scale, d.ScreenHeight*d.Scale)
	ebiten.SetWindowTitle(d.Title)
	ebiten.SetTPS(d.Framerate)

	runErr := ebiten.RunGame(g)

	if recorder != nil {
		recorder.Stop()
		if err := recorder.Save(recordFile); err != nil {
			logger.Error("failed to save recording", "err", err)
		} else {
			logger.Info("recording saved", "file", recordFile, "frames", recorder.FrameCount())
		}
	}

	return runErr
}
