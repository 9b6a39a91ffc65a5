// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"merlinpad/internal/device"
)

// Game is the host lifecycle every arcade game implements. The host loop
// drives exactly this surface and nothing else: construct, NewGame, then
// Tick once per loop iteration interleaved with input callbacks, and
// Cleanup when the game is left.
//
// Tick must return promptly (the host loop polls input between ticks) and
// none of these methods may panic: on this device an escaped failure is a
// frozen screen, so games degrade instead. Cleanup is idempotent; the
// host may call it twice during error recovery.
type Game interface {
	// ID returns a unique identifier (e.g. "asteroids"), used for CLI
	// commands and score storage.
	ID() string

	// Title returns a human-readable name for menus.
	Title() string

	// NewGame resets to the initial state (title screen, fresh board).
	NewGame()

	// Tick advances one frame: input classification, simulation,
	// rendering and LED animation, in that order.
	Tick()

	// Button reports a raw key transition on the 12-key pad (0..11).
	Button(key int, pressed bool)

	// EncoderChanged reports a rotary encoder movement as the new and
	// previous absolute positions.
	EncoderChanged(newPos, oldPos int)

	// Cleanup blanks all owned hardware state (LEDs off, display
	// cleared) so the next game starts from a clean slate.
	Cleanup()
}

// Info contains metadata about a registered game.
type Info struct {
	ID    string
	Title string
}

// Factory creates a game instance bound to the device context.
type Factory func(ctx *device.Context) Game

type entry struct {
	factory Factory
	title   string
}

var (
	games = make(map[string]entry)
	mu    sync.RWMutex
)

// Register adds a game factory to the registry. Typically called from a
// game package's init(). Panics if the ID is already taken.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := games[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	games[id] = entry{factory: f, title: title}
}

// List returns information about all registered games, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(games))
	for id, e := range games {
		result = append(result, Info{ID: id, Title: e.title})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a game by ID against the given device context.
func Create(id string, ctx *device.Context) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := games[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(ctx), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := games[id]
	return ok
}

// Keys on the 12-pad, laid out as a 4-row by 3-column grid. The diamond
// K1/K3/K5/K7 is the shared d-pad convention; K9 and K11 sit on the
// bottom row for menu and start. Kept here so games and the host keymap
// agree on one layout.
const (
	KeyUp    = 1
	KeyLeft  = 3
	KeyRight = 5
	KeyDown  = 7
	KeyFire  = 4 // center of the d-pad diamond
	KeyMenu  = 9
	KeyStart = 11
)
