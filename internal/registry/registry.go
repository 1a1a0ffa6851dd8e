// Package registry keeps the catalog of playable game variants. Variants
// register themselves from init so importing a game package is enough to
// make it available to the menu, the CLI and the SSH server.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"flapterm/internal/core"
)

// Game is the interface every variant implements. Implementations must
// be pure: all terminal I/O happens in the platform layer, all timing in
// the tick loop.
type Game interface {
	// ID returns the stable identifier used on the command line.
	ID() string

	// Title returns the human-readable name shown in menus.
	Title() string

	// Reset starts a new run with the given runtime configuration.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state without advancing it.
	State() core.GameState
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh instance of a variant.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a variant to the catalog. It panics on a duplicate ID
// since registration happens from init and a duplicate is a programming
// error.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q registered twice", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered variants sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	infos := make([]GameInfo, 0, len(factories))
	for id := range factories {
		infos = append(infos, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

// Create instantiates the variant with the given ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
