package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tile-quest/internal/audio"
	"github.com/vovakirdan/tile-quest/internal/config"
	"github.com/vovakirdan/tile-quest/internal/core"
	"github.com/vovakirdan/tile-quest/internal/platform/tui"
	"github.com/vovakirdan/tile-quest/internal/quest"
	"github.com/vovakirdan/tile-quest/internal/registry"
	"github.com/vovakirdan/tile-quest/internal/world"
)

var (
	flagConfig string
	flagMap    string
	flagFPS    int
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play [world]",
	Short: "Play a world",
	Long: `Start playing the given world, or the one named in the config.

Controls:
  W/A/S/D, arrows  - Move
  E                - Swing sword
  Q                - Cast spell
  Enter            - Dismiss notice
  ?                - More keys
  Esc/Ctrl+C       - Quit

Examples:
  quest play
  quest play world01
  quest play --map ./my-map.txt
  quest play --config ./my-quest.yaml --mute`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagMap, "map", "", "Map file replacing the world's built-in map")
	playCmd.Flags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second; 0 = from config)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(args) == 1 {
		cfg.World.ID = args[0]
	}
	if flagMap != "" {
		cfg.World.Map = flagMap
	}
	if flagFPS > 0 {
		cfg.Display.TickRate = flagFPS
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}

	logger, closer, err := openLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	err = play(cfg, logger)
	closer.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// play runs the configured world until the player quits.
func play(cfg config.QuestConfig, logger *log.Logger) error {
	w, err := registry.Get(cfg.World.ID)
	if err != nil {
		return fmt.Errorf("%w (run 'quest list' to see available worlds)", err)
	}

	session, err := newSession(w, cfg, logger)
	if err != nil {
		logger.Error("could not start session", "world", w.ID, "err", err)
		return err
	}

	rt := core.DefaultRuntimeConfig()
	rt.TickRate = cfg.Display.TickRate
	if tw, th, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = tw
		rt.ScreenH = th
	}

	runErr := tui.Run(tui.Options{
		Session: session,
		Config:  cfg,
		Title:   w.Title,
		Audio:   audio.Open(cfg.Audio, logger.WithPrefix("quest/audio")),
		Logger:  logger,
		Runtime: rt,
	})
	logger.Info("session ended", "world", w.ID, "play_time", session.PlayTime(), "won", session.Won())
	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}

// newSession loads the world's terrain, from cfg.World.Map when set, and
// places its objects.
func newSession(w registry.World, cfg config.QuestConfig, logger *log.Logger) (*quest.Session, error) {
	var (
		grid *world.Grid
		err  error
	)
	if cfg.World.Map != "" {
		path, expErr := config.ExpandHome(cfg.World.Map)
		if expErr != nil {
			return nil, expErr
		}
		grid, err = world.LoadMap(path)
	} else {
		grid, err = w.Grid()
	}
	if errors.Is(err, world.ErrEmptyMap) {
		return nil, fmt.Errorf("%w: %w", quest.ErrNoGrid, err)
	}
	if err != nil {
		return nil, err
	}

	return quest.NewSession(quest.Options{
		Grid:    grid,
		Objects: w.Interactables(cfg.Display.TileSize),
		Config:  cfg,
		Logger:  logger,
	})
}
