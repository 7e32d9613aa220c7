package recycle

import (
	"fmt"

	"github.com/vovakirdan/recycle-run/internal/core"
	"github.com/vovakirdan/recycle-run/internal/games/recycle/world"
)

// Visual characters for rendering
const (
	PlayerChar         = '@'
	StaticPlatformChar = '█'
	MovingPlatformChar = '═'
	BarrelChar         = 'Ø'
	AcidChar           = '≈'
	GoalChar           = '♻'
)

// RecyclableGlyphs by kind: plastic bottle, glass jar, paper.
var RecyclableGlyphs = [...]rune{'!', 'U', '#'}

// Layout rows: HUD on top, the playfield box, a message line at the bottom.
const (
	hudRows     = 1
	messageRows = 1
)

// viewport maps world coordinates into the playfield box.
type viewport struct {
	x, y, w, h int     // Inner playfield area in cells
	sx, sy     float64 // Cells per world unit
	origin     core.Vec
}

func (g *Game) viewport(dst *core.Screen) viewport {
	wc := g.world.Config().World
	vp := viewport{
		x: 1,
		y: hudRows + 1,
		w: dst.Width() - 2,
		h: dst.Height() - hudRows - messageRows - 2,
	}
	vp.sx = float64(vp.w) / wc.Width
	vp.sy = float64(vp.h) / wc.Height
	vp.origin = core.V(g.hud.camera.X-wc.Width/2, g.hud.camera.Y-wc.Height/2)
	return vp
}

func (vp viewport) cell(p core.Vec) (int, int) {
	return vp.x + int((p.X-vp.origin.X)*vp.sx), vp.y + int((p.Y-vp.origin.Y)*vp.sy)
}

func (vp viewport) inside(cx, cy int) bool {
	return cx >= vp.x && cx < vp.x+vp.w && cy >= vp.y && cy < vp.y+vp.h
}

func (vp viewport) put(dst *core.Screen, p core.Vec, r rune, c core.Color) {
	cx, cy := vp.cell(p)
	if vp.inside(cx, cy) {
		dst.SetColor(cx, cy, r, c)
	}
}

// Render draws the level to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)

	vp := g.viewport(dst)
	dst.DrawBox(vp.x-1, vp.y-1, vp.w+2, vp.h+2)
	g.renderEntities(dst, vp)

	if g.hud.message != "" {
		dst.DrawTextCenteredColor(dst.Height()-1, g.hud.message, core.ColorMessage)
	}
	g.renderOverlay(dst)
}

// renderHUD draws score, lives, the recycling quota and the level.
func (g *Game) renderHUD(dst *core.Screen) {
	s := g.world.State()

	left := fmt.Sprintf("Score: %d  Lives: %d", g.hud.score, g.hud.lives)
	dst.DrawTextColor(1, 0, left, core.ColorHUD)

	binColor := core.ColorBinLocked
	if s.GoalState == world.GoalUnlocked {
		binColor = core.ColorBinOpen
	}
	bin := fmt.Sprintf("Recycled: %d/%d", s.RecyclablesCollected, s.RecyclablesNeeded)
	dst.DrawTextColor((dst.Width()-len(bin))/2, 0, bin, binColor)

	var level string
	if win := g.world.Config().Difficulty.WinLevel; win > 0 {
		level = fmt.Sprintf("Level: %d/%d", min(s.Level, win), win)
	} else {
		level = fmt.Sprintf("Level: %d", s.Level)
	}
	dst.DrawTextColor(dst.Width()-len(level)-1, 0, level, core.ColorHUD)
}

// renderEntities draws platforms first so items and the player stay visible.
func (g *Game) renderEntities(dst *core.Screen, vp viewport) {
	var player *world.Entity
	entities := g.world.Entities()
	for i := range entities {
		e := &entities[i]
		switch e.Category {
		case world.CategoryStaticPlatform:
			g.renderPlatform(dst, vp, e, StaticPlatformChar, core.ColorTerrain)
		case world.CategoryMovingPlatform:
			g.renderPlatform(dst, vp, e, MovingPlatformChar, core.ColorMover)
		}
	}

	for i := range entities {
		e := &entities[i]
		switch e.Category {
		case world.CategoryHazard:
			if e.Hazard.Kind == world.BatteryAcid {
				vp.put(dst, e.Pos, AcidChar, core.ColorAcid)
			} else {
				vp.put(dst, e.Pos, BarrelChar, core.ColorBarrel)
			}
		case world.CategoryRecyclable:
			vp.put(dst, e.Pos, RecyclableGlyphs[e.Recyclable.Kind], core.ColorRecyclable)
		case world.CategoryGoal:
			vp.put(dst, e.Pos, GoalChar, core.ColorBinOpen)
		case world.CategoryPlayer:
			player = e
		}
	}

	if player != nil {
		color := core.ColorPlayer
		if g.hud.flashTicks > 0 {
			color = core.ColorPlayerHurt
		}
		vp.put(dst, player.Pos, PlayerChar, color)
	}
}

// renderPlatform draws the top edge of a platform as a clipped line.
func (g *Game) renderPlatform(dst *core.Screen, vp viewport, e *world.Entity, r rune, c core.Color) {
	b := e.Bounds()
	x0, y := vp.cell(core.V(b.Left, b.Top))
	x1, _ := vp.cell(core.V(b.Right, b.Top))
	if y < vp.y || y >= vp.y+vp.h {
		return
	}
	x0 = core.Clamp(x0, vp.x, vp.x+vp.w-1)
	x1 = core.Clamp(x1, vp.x, vp.x+vp.w-1)
	dst.DrawHLine(x0, y, max(1, x1-x0), r, c)
}

// renderOverlay draws pause, completion and end-of-run boxes.
func (g *Game) renderOverlay(dst *core.Screen) {
	s := g.world.State()
	switch {
	case s.IsWon:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to play again", s.TotalScore)
		g.drawCenteredBox(dst, "ALL LEVELS RECYCLED!", subtitle)

	case s.IsGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", s.RunningScore())
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case s.IsLevelComplete:
		title := fmt.Sprintf("LEVEL %d COMPLETE", s.Level)
		subtitle := fmt.Sprintf("Bonus %d  Total %d  |  SPACE to continue", s.LastBonus, s.TotalScore)
		g.drawCenteredBox(dst, title, subtitle)

	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := min(max(len([]rune(title)), len([]rune(subtitle)))+4, dst.Width())
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillArea(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
