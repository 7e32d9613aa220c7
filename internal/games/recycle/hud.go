package recycle

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/recycle-run/internal/core"
	"github.com/vovakirdan/recycle-run/internal/games/recycle/world"
)

// Message and flash lifetimes.
const (
	messageTime = 3 * time.Second
	flashTime   = 250 * time.Millisecond
)

// hud is the world's host: it keeps what the world asked to display.
type hud struct {
	log   *log.Logger
	clock core.RuntimeConfig // Only TickRate is used

	message      string
	messageTicks int

	lastCue    world.Cue
	flashTicks int
	cues       map[world.Cue]int

	lives  int
	score  int
	camera core.Vec
	alive  int
}

func newHUD(tickRate int, l *log.Logger) *hud {
	return &hud{
		log:   l,
		clock: core.RuntimeConfig{TickRate: tickRate},
		cues:  make(map[world.Cue]int),
	}
}

func (h *hud) EntitySpawned(e *world.Entity) {
	h.alive++
	h.log.Debug("spawned", "id", e.ID, "category", e.Category, "x", e.Pos.X, "y", e.Pos.Y)
}

func (h *hud) EntityDestroyed(id world.EntityID, cat world.Category) {
	h.alive--
	h.log.Debug("destroyed", "id", id, "category", cat)
}

// PlayCue records the cue; hurt and game over flash the screen.
func (h *hud) PlayCue(c world.Cue) {
	h.lastCue = c
	h.cues[c]++
	if c == world.CueHurt || c == world.CueGameOver {
		h.flashTicks = h.clock.Ticks(flashTime)
	}
}

func (h *hud) ShowMessage(text string) {
	h.message = text
	h.messageTicks = h.clock.Ticks(messageTime)
}

func (h *hud) SetLifeDisplay(lives int) {
	h.lives = lives
}

func (h *hud) SetScoreDisplay(score int) {
	h.score = score
}

func (h *hud) CenterCamera(x, y float64) {
	h.camera = core.V(x, y)
}

// tick ages the message and the flash.
func (h *hud) tick() {
	if h.messageTicks > 0 {
		h.messageTicks--
		if h.messageTicks == 0 {
			h.message = ""
		}
	}
	if h.flashTicks > 0 {
		h.flashTicks--
	}
}
