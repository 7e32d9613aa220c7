// Package registry holds the playable modes. Each mode registers itself
// from init(), so hosts discover modes without importing them by name.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/recycle-run/internal/core"
)

// Game is the interface every playable mode implements.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns the mode identifier, also the key for run history.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a new run. Called once at start and again on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into dst.
	Render(dst *core.Screen)

	// State returns the current score, level and run status.
	State() core.GameState
}

// Resizer is implemented by games that can follow a terminal resize
// without restarting the run.
type Resizer interface {
	Resize(w, h int)
}

// DifficultySetter is implemented by games whose difficulty preset can be
// chosen per instance, before Reset.
type DifficultySetter interface {
	SetDifficulty(name string)
}

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("registry: unknown game")

// Factory is a function that creates a new instance of a game.
type Factory func() Game

// Mode describes a registered mode.
type Mode struct {
	ID      string
	Title   string
	Summary string // One line for menus and listings
	Order   int    // Listing position; ties sort by ID
	New     Factory
}

// GameInfo is the listing view of a Mode.
type GameInfo struct {
	ID      string
	Title   string
	Summary string
}

var (
	modes = make(map[string]Mode)
	mu    sync.RWMutex
)

// Register adds a mode. It panics on a duplicate ID, a missing factory
// or an empty title, since all of those are programming errors.
func Register(m Mode) {
	mu.Lock()
	defer mu.Unlock()

	switch {
	case m.ID == "":
		panic("registry: mode without ID")
	case m.New == nil:
		panic(fmt.Sprintf("registry: mode %q has no factory", m.ID))
	case m.Title == "":
		panic(fmt.Sprintf("registry: mode %q has no title", m.ID))
	}
	if _, exists := modes[m.ID]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", m.ID))
	}
	modes[m.ID] = m
}

// List returns all registered modes in listing order.
func List() []GameInfo {
	mu.RLock()
	sorted := make([]Mode, 0, len(modes))
	for _, m := range modes {
		sorted = append(sorted, m)
	}
	mu.RUnlock()

	slices.SortFunc(sorted, func(a, b Mode) int {
		return cmp.Or(cmp.Compare(a.Order, b.Order), cmp.Compare(a.ID, b.ID))
	})

	result := make([]GameInfo, len(sorted))
	for i, m := range sorted {
		result[i] = GameInfo{ID: m.ID, Title: m.Title, Summary: m.Summary}
	}
	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	m, ok := modes[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return m.New(), nil
}

// Exists checks if a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := modes[id]
	return ok
}
