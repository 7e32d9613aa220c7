package core

// Color names what a cell shows rather than a terminal shade.
// Hosts map each role to a concrete style, so the game never deals with
// ANSI codes or light and dark backgrounds.
type Color uint8

const (
	ColorDefault Color = iota
	ColorFrame         // Playfield border and overlay boxes
	ColorHUD           // Score, lives and level counters
	ColorTerrain       // Static platforms
	ColorMover         // Moving platforms
	ColorPlayer
	ColorPlayerHurt // Player during the damage flash
	ColorBarrel
	ColorAcid
	ColorRecyclable
	ColorBinLocked // Quota counter while the bin is still closed
	ColorBinOpen   // Open bin and the quota counter once met
	ColorMessage   // Transient banner line
	colorCount
)

var colorNames = [colorCount]string{
	"default", "frame", "hud", "terrain", "mover", "player", "player-hurt",
	"barrel", "acid", "recyclable", "bin-locked", "bin-open", "message",
}

func (c Color) String() string {
	if c < colorCount {
		return colorNames[c]
	}
	return "unknown"
}
