package quest

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile-quest/internal/config"
	"github.com/vovakirdan/tile-quest/internal/core"
	"github.com/vovakirdan/tile-quest/internal/world"
)

var (
	// ErrNoGrid is returned when a session is created without terrain.
	ErrNoGrid = errors.New("quest: session needs a map with at least one cell")
	// ErrBadTileSize is returned when the configured tile size is not positive.
	ErrBadTileSize = errors.New("quest: tile size must be positive")
)

// Options configures a new session.
type Options struct {
	Grid    *world.Grid
	Objects []world.Interactable // pixel positions at Config.Display.TileSize
	Config  config.QuestConfig
	Logger  *log.Logger // nil discards diagnostics
}

// Session owns all state of one play-through. It is driven by a single
// goroutine: SetInput, then Update, Render and Advance once per frame.
type Session struct {
	grid    *world.Grid
	objects *world.Registry
	player  Player
	clock   *AnimationClock
	engine  *InteractionEngine
	logger  *log.Logger

	tileSize    int
	pendingTile int // 0 when no resize is pending

	input    core.InputFrame
	playTime time.Duration
	events   []Event
	scene    Scene
}

// NewSession creates a session with the player on its start tile.
func NewSession(opts Options) (*Session, error) {
	if opts.Grid == nil || opts.Grid.Height() == 0 || opts.Grid.Width() == 0 {
		return nil, ErrNoGrid
	}
	tile := opts.Config.Display.TileSize
	if tile <= 0 {
		return nil, ErrBadTileSize
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		grid:     opts.Grid,
		objects:  world.NewRegistry(opts.Objects...),
		player:   NewPlayer(opts.Config),
		clock:    NewAnimationClock(opts.Config.Animation.Threshold),
		logger:   logger,
		tileSize: tile,
		input:    core.NewInputFrame(),
	}
	s.engine = NewInteractionEngine(Rules{
		BootsBonus: opts.Config.Items.BootsBonus,
		WinDelay:   opts.Config.WinDelay(),
	}, logger)

	col, row := s.player.Tile(tile)
	logger.Info("session started",
		"grid", [2]int{opts.Grid.Width(), opts.Grid.Height()},
		"objects", s.objects.Len(),
		"tile_size", tile,
		"start", [2]int{col, row})
	s.Render()
	return s, nil
}

// SetInput replaces the pressed actions used by the next Update.
func (s *Session) SetInput(in core.InputFrame) {
	s.input = in.Clone()
}

// SetTileSize schedules a tile size change for the start of the next
// Update. Non-positive sizes are ignored.
func (s *Session) SetTileSize(size int) {
	if size <= 0 {
		s.logger.Warn("ignoring tile size", "size", size)
		return
	}
	s.pendingTile = size
}

// TileSize returns the tile size currently in effect.
func (s *Session) TileSize() int {
	return s.tileSize
}

// Update advances the simulation by one frame. Movement is fixed per
// frame, so dt does not scale it.
func (s *Session) Update(dt time.Duration) {
	s.applyTileSize()
	if s.tileSize <= 0 {
		return
	}

	s.move()
	s.events = append(s.events, s.engine.Interact(&s.player, s.objects, s.tileSize)...)

	s.player.Swinging = s.input.Has(core.ActionSword)
	s.player.Casting = s.input.Has(core.ActionSpell)
	for _, c := range s.clock.Tick(&s.player) {
		s.events = append(s.events, CueEvent(c))
	}
}

func (s *Session) applyTileSize() {
	if s.pendingTile == 0 {
		return
	}
	from, to := s.tileSize, s.pendingTile
	s.pendingTile = 0
	if from == to {
		return
	}
	s.player.rescale(from, to)
	s.objects.Rescale(from, to)
	s.tileSize = to
	s.logger.Debug("tile size changed", "from", from, "to", to)
}

// move applies the pressed directions as one displacement. The last
// pressed direction in up, down, left, right order sets the facing.
func (s *Session) move() {
	p := &s.player
	dx, dy := 0, 0
	moving := false

	if s.input.Has(core.ActionUp) {
		dy -= p.Speed
		p.Direction = world.DirUp
		moving = true
	}
	if s.input.Has(core.ActionDown) {
		dy += p.Speed
		p.Direction = world.DirDown
		moving = true
	}
	if s.input.Has(core.ActionLeft) {
		dx -= p.Speed
		p.Direction = world.DirLeft
		moving = true
	}
	if s.input.Has(core.ActionRight) {
		dx += p.Speed
		p.Direction = world.DirRight
		moving = true
	}

	p.Moving = moving
	if !moving {
		return
	}
	if world.WouldCollide(p.Probe(dx, dy), s.grid, s.objects.Snapshot(), s.tileSize) {
		return
	}
	p.X += dx
	p.Y += dy
}

// Render publishes a scene snapshot of the current state.
func (s *Session) Render() {
	live := s.objects.Snapshot()
	views := make([]ObjectView, 0, len(live))
	for _, o := range live {
		views = append(views, ObjectView{Kind: o.Kind, X: o.X, Y: o.Y})
	}

	s.scene = Scene{
		Grid:     s.grid,
		TileSize: s.tileSize,
		Objects:  views,
		Player: PlayerView{
			X:         s.player.X,
			Y:         s.player.Y,
			W:         s.player.Width,
			H:         s.player.Height,
			Direction: s.player.Direction,
			Sprite:    SelectSprite(s.player),
		},
		Keys:     s.player.Keys,
		HasBoots: s.player.HasBoots,
		PlayTime: s.playTime,
		Won:      s.engine.Won(),
	}
}

// Advance adds dt to the play time. Negative values are ignored.
func (s *Session) Advance(dt time.Duration) {
	if dt > 0 {
		s.playTime += dt
	}
}

// Scene returns the snapshot published by the last Render.
func (s *Session) Scene() Scene {
	return s.scene
}

// Drain returns and clears the events queued since the last call.
func (s *Session) Drain() []Event {
	events := s.events
	s.events = nil
	return events
}

// Player returns a copy of the player.
func (s *Session) Player() Player {
	return s.player
}

// Objects returns a copy of the live objects in registry order.
func (s *Session) Objects() []world.Interactable {
	return s.objects.Snapshot()
}

// PlayTime returns the accumulated play time.
func (s *Session) PlayTime() time.Duration {
	return s.playTime
}

// Won reports whether the treasure has been found.
func (s *Session) Won() bool {
	return s.engine.Won()
}
