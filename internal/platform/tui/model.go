package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile-quest/internal/audio"
	"github.com/vovakirdan/tile-quest/internal/config"
	"github.com/vovakirdan/tile-quest/internal/core"
	"github.com/vovakirdan/tile-quest/internal/loop"
	"github.com/vovakirdan/tile-quest/internal/quest"
)

// Layout rows around the board.
const (
	hudHeight    = 2 // status line and separator
	footerHeight = 2 // message line and help line
)

// noticeMsg delivers a delayed notification.
type noticeMsg struct {
	text string
}

// Options configures a play model.
type Options struct {
	Session *quest.Session
	Config  config.QuestConfig
	Title   string
	Audio   audio.Player // nil plays nothing
	Logger  *log.Logger  // nil discards diagnostics
	Runtime core.RuntimeConfig
}

// Model is the Bubble Tea model for a play session.
type Model struct {
	session *quest.Session
	loop    *loop.Loop
	audio   audio.Player
	logger  *log.Logger
	cfg     config.QuestConfig
	title   string
	rate    int

	screen *core.Screen
	keys   KeyMap
	help   help.Model
	held   *HeldKeys

	now          time.Time
	message      string
	messageUntil time.Time
	notice       string

	width    int
	height   int
	quitting bool
}

// NewModel creates a model around an existing session.
func NewModel(opts Options) Model {
	player := opts.Audio
	if player == nil {
		player = audio.Nop{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rt := opts.Runtime
	if rt.TickRate <= 0 {
		rt.TickRate = opts.Config.Display.TickRate
	}

	h := help.New()
	h.Width = rt.ScreenW

	return Model{
		session: opts.Session,
		loop:    loop.New(opts.Session, opts.Config.MaxDelta()),
		audio:   player,
		logger:  logger,
		cfg:     opts.Config,
		title:   opts.Title,
		rate:    rt.TickRate,
		screen:  core.NewScreen(rt.ScreenW, max(rt.ScreenH-1, 0)),
		keys:    DefaultKeyMap(),
		help:    h,
		held:    NewHeldKeys(opts.Config.HoldWindow()),
		width:   rt.ScreenW,
		height:  rt.ScreenH,
	}
}

// Init starts the music and the tick loop.
func (m Model) Init() tea.Cmd {
	m.audio.StartMusic()
	return tickCmd(m.rate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case noticeMsg:
		m.notice = msg.text
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Dismiss):
		m.notice = ""
		return m, nil
	}

	m.held.Press(m.keys.Action(msg), time.Now())
	return m, nil
}

// handleResize processes window resize events. The session keeps running
// at its configured tile size; one tile always maps to CellWidth columns, so
// only the layout changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one frame and dispatches the events it produced.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.now = now
	m.session.SetInput(m.held.Frame(now))
	m.loop.Frame(now)

	cmds := []tea.Cmd{tickCmd(m.rate)}
	for _, ev := range m.session.Drain() {
		switch ev.Kind {
		case quest.EventMessage:
			m.message = ev.Text
			m.messageUntil = now.Add(m.cfg.MessageDuration())
		case quest.EventCue:
			m.audio.Play(ev.Cue)
		case quest.EventNotification:
			cmds = append(cmds, noticeCmd(ev.Text, ev.Delay))
		}
	}
	return m, tea.Batch(cmds...)
}

func noticeCmd(text string, delay time.Duration) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return noticeMsg{text: text} }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return noticeMsg{text: text}
	})
}

// currentMessage returns the message still on screen, if any.
func (m Model) currentMessage() string {
	if m.message == "" || !m.now.Before(m.messageUntil) {
		return ""
	}
	return m.message
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// draw lays out HUD, board, message line and overlays on dst.
func (m Model) draw(dst *core.Screen) {
	dst.Clear()
	scene := m.session.Scene()

	hud := fmt.Sprintf(" %s   %s   %s", m.title, scene.KeysLabel(), scene.TimeLabel())
	if scene.HasBoots {
		hud += "   Boots"
	}
	dst.DrawText(0, 0, hud, core.ColorBrightWhite)
	for x := range dst.Width() {
		dst.Set(x, 1, '─', core.ColorGray)
	}

	board := Board{CellWidth: m.cfg.Display.CellWidth}
	boardW, boardH := board.Size(scene.Grid)
	if boardW > dst.Width() || hudHeight+boardH+footerHeight-1 > dst.Height() {
		drawOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", boardW, hudHeight+boardH+footerHeight))
		return
	}
	board.OffsetX = (dst.Width() - boardW) / 2
	board.OffsetY = hudHeight
	board.Draw(dst, scene)

	if msg := m.currentMessage(); msg != "" {
		dst.DrawTextCentered(hudHeight+boardH, msg, core.ColorBrightYellow)
	}

	if m.notice != "" {
		drawOverlay(dst, m.notice, "Press enter")
	}
}

// Run starts the Bubble Tea program and closes the audio player when it ends.
func Run(opts Options) error {
	model := NewModel(opts)
	defer model.audio.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
