// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tinyarcade/internal/core"
)

// Game is the core interface that all arcade games must implement.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, scheduling and terminal output.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "flappy", "pong").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Flappy Bird").
	Title() string

	// World returns the size of the playfield in world units.
	World() (w, h float64)

	// Reset builds a fresh session. Called once at start and again on restart.
	// The loop is left stopped; the platform starts it.
	Reset(cfg core.RuntimeConfig, rep core.Reporter)

	// Loop returns the running/stopped state machine of the frame driver.
	Loop() *core.Loop

	// Clocks lists fixed-rate callbacks scheduled next to the frame callback.
	Clocks() []core.Clock

	// Frame runs one display-refresh pass and draws into r.
	// It may stop the loop (game over).
	Frame(r core.Renderer)

	// Tick runs one callback of the named clock.
	Tick(id core.ClockID)

	// Press and Release deliver held-action transitions from the input layer.
	Press(a core.Action)
	Release(a core.Action)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f()
	titles[id] = g.Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Options are per-run settings chosen on the command line.
type Options struct {
	ConfigPath string // Custom game config YAML; empty uses the search order
	Difficulty string // Difficulty preset name; empty keeps the config's setting
	LevelPath  string // Custom level file, for games that have levels
}

// Configurable is implemented by games that load external configuration.
// The platform calls Configure once, before the first Reset.
type Configurable interface {
	Configure(opts Options) error
}

// CreateConfigured instantiates a game and applies opts when it is Configurable.
func CreateConfigured(id string, opts Options) (Game, error) {
	g, err := Create(id)
	if err != nil {
		return nil, err
	}
	if c, ok := g.(Configurable); ok {
		if err := c.Configure(opts); err != nil {
			return nil, fmt.Errorf("registry: configure %q: %w", id, err)
		}
	}
	return g, nil
}
