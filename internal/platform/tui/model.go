package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tinyarcade/internal/core"
	"github.com/vovakirdan/tinyarcade/internal/registry"
	"github.com/vovakirdan/tinyarcade/internal/storage"
)

// Options configures a game screen.
type Options struct {
	Store      *storage.Store // Nil disables score saving
	Logger     *log.Logger
	Player     string        // Name stored with scores
	Embedded   bool          // Esc returns to the menu instead of doing nothing
	HoldWindow time.Duration // Zero uses DefaultHoldWindow
}

// Model is the Bubble Tea model for running arcade games.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	canvas   *core.Canvas
	hud      *HUD
	keys     *KeyMapper
	held     *HeldKeys
	sched    scheduler
	config   core.RuntimeConfig
	seed     int64 // Configured seed; 0 picks a new one per run
	logger   *log.Logger
	player   string
	embedded bool

	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game and resets it.
// The game's loop is started by Init.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	var saver ScoreSaver
	if opts.Store != nil {
		saver = opts.Store
	}

	screen := core.NewScreen(max(cfg.ScreenW, 1), playfieldHeight(cfg.ScreenH))
	w, h := game.World()
	canvas := core.NewCanvas(screen, core.NewRect(0, 0, screen.Width(), screen.Height()), w, h)

	m := Model{
		game:     game,
		screen:   screen,
		canvas:   canvas,
		hud:      NewHUD(saver, logger),
		keys:     NewKeyMapper(logger),
		held:     NewHeldKeys(opts.HoldWindow),
		config:   cfg,
		seed:     cfg.Seed,
		logger:   logger,
		player:   opts.Player,
		embedded: opts.Embedded,
	}
	m.reset()
	return m
}

// playfieldHeight leaves the top row for the HUD.
func playfieldHeight(screenH int) int {
	return max(screenH-1, 1)
}

// reset builds a fresh game session with a new score run.
func (m *Model) reset() {
	cfg := m.config
	if m.seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m.held.Reset()
	m.hud.NewRun(m.game.ID(), m.player)
	m.game.Reset(cfg, m.hud)
	m.canvas.SetWorld(m.game.World())
	m.sched = newScheduler(m.game.Loop(), cfg.TickRate, m.game.Clocks())

	m.logger.Info("game started", "game", m.game.ID(), "run", m.hud.Run().ID, "seed", cfg.Seed)
}

// start runs the game loop and schedules its first callbacks.
// It returns nil if the loop was already running.
func (m Model) start() tea.Cmd {
	epoch, started := m.game.Loop().Start()
	if !started {
		return nil
	}
	return m.sched.start(epoch)
}

// Init starts the game.
func (m Model) Init() tea.Cmd {
	return m.start()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m, m.handleTick(msg)

	case releaseMsg:
		for _, a := range m.held.Expire(msg) {
			m.game.Release(a)
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapPlatformKey(msg) {
	case PlatformKeyQuit:
		m.finish()
		m.quitting = true
		return m, tea.Quit

	case PlatformKeyBack:
		if m.embedded {
			m.finish()
			m.backToMenu = true
		}
		return m, nil

	case PlatformKeyRestart:
		m.finish()
		m.reset()
		return m, m.start()

	case PlatformKeyScreenshot:
		m.saveScreenshot()
		return m, nil
	}

	actions, ok := m.keys.MapKey(msg)
	if !ok {
		return m, nil
	}

	var cmds []tea.Cmd
	held := make([]core.Action, 0, len(actions))
	for _, a := range actions {
		switch a {
		case core.ActionPauseToggle:
			if cmd := m.togglePause(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		case core.ActionStepFrame:
			m.stepFrame()
		default:
			m.game.Press(a)
			held = append(held, a)
		}
	}
	if len(held) > 0 {
		cmds = append(cmds, m.held.Hold(msg.String(), held))
	}
	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

// togglePause pauses or resumes the loop. Ignored after game over.
func (m Model) togglePause() tea.Cmd {
	if m.hud.GameOver {
		return nil
	}
	epoch, started := m.game.Loop().Toggle()
	if !started {
		m.logger.Debug("paused", "game", m.game.ID())
		return nil
	}
	m.logger.Debug("resumed", "game", m.game.ID(), "epoch", epoch)
	return m.sched.start(epoch)
}

// stepFrame runs every clock once and then one frame, without starting
// the loop. Only allowed while paused.
func (m Model) stepFrame() {
	if m.hud.GameOver || m.game.Loop().Running() {
		return
	}
	for _, c := range m.game.Clocks() {
		m.game.Tick(c.ID)
	}
	m.frame()
}

// finish stops the loop and saves the score reached so far.
func (m Model) finish() {
	m.game.Loop().Stop()
	m.hud.Save()
}

// handleResize fits the playfield to the new terminal size.
// Games draw in world units, so the session keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height

	h := playfieldHeight(msg.Height)
	m.screen.Resize(max(msg.Width, 1), h)
	m.canvas.SetView(core.NewRect(0, 0, m.screen.Width(), h))
	return m, nil
}

// handleTick runs one scheduled callback and schedules the next one while
// the callback's epoch is still current.
func (m Model) handleTick(msg TickMsg) tea.Cmd {
	if !m.sched.current(msg) {
		return nil
	}

	if msg.Clock == core.FrameClock {
		m.frame()
	} else {
		m.game.Tick(msg.Clock)
	}

	if !m.sched.current(msg) {
		return nil
	}
	return m.sched.next(msg)
}

// frame draws one game frame and the game-over message when it ends.
func (m Model) frame() {
	wasOver := m.hud.GameOver
	m.game.Frame(m.canvas)
	if m.hud.GameOver && !wasOver {
		m.logger.Info("game over", "game", m.game.ID(), "run", m.hud.Run().ID, "score", m.hud.Final)
		m.screen.DrawMessage("GAME OVER", fmt.Sprintf("Score: %d   R: restart", m.hud.Final))
	}
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot: no home directory", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot: cannot create directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot: cannot write file", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the HUD row and the playfield.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	status := StatusLine{
		Title:    m.game.Title(),
		HUD:      m.hud,
		Paused:   !m.game.Loop().Running() && !m.hud.GameOver,
		Embedded: m.embedded,
	}
	return RenderStatusLine(status, m.screen.Width()) + "\n" + RenderScreen(m.screen)
}

// HUD returns the score state of the current session.
func (m Model) HUD() *HUD {
	return m.hud
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
