package player

import (
	"github.com/Wintermark/overworld/internal/catalog"
	"github.com/Wintermark/overworld/internal/config"
	"github.com/Wintermark/overworld/internal/world"
)

// Facing is the direction the player last moved or attempted to move.
type Facing string

const (
	FacingUp    Facing = "up"
	FacingDown  Facing = "down"
	FacingLeft  Facing = "left"
	FacingRight Facing = "right"
)

// Player is one session's avatar. Position is split into a screen coordinate
// and a tile coordinate local to that screen.
type Player struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	Screen world.Coord   `json:"screen"`
	X      int           `json:"x"`
	Y      int           `json:"y"`
	Facing Facing        `json:"facing"`
	Stats  catalog.Stats `json:"stats"`

	footprints map[world.Coord]*footprintRing
	cap        int
	interval   float64
}

func New(id, name string, stats catalog.Stats, w *world.World, cfg config.Config) *Player {
	return &Player{
		ID:         id,
		Name:       name,
		Screen:     w.SpawnScreen,
		X:          w.SpawnTile.X,
		Y:          w.SpawnTile.Y,
		Facing:     FacingDown,
		Stats:      stats,
		footprints: make(map[world.Coord]*footprintRing),
		cap:        cfg.World.FootprintCap,
		interval:   movementInterval(stats, cfg.Movement),
	}
}

// MovementInterval is the time in seconds between accepted steps. Higher
// agility shortens it.
func (p *Player) MovementInterval() float64 { return p.interval }

func movementInterval(stats catalog.Stats, cfg config.MovementConfig) float64 {
	return 1.0 / (cfg.BaseSpeed + cfg.AgilityBonus*float64(stats.Agility))
}

// Move attempts a single step by (dx, dy). Facing updates even when the step
// is blocked. Steps off a screen edge cross into the neighbouring screen, or
// are blocked at the world edge. Returns true when the player actually moved.
func (p *Player) Move(w *world.World, dx, dy int) bool {
	p.face(dx, dy)

	targetScreen := p.Screen
	targetX := p.X + dx
	targetY := p.Y + dy

	switch {
	case targetX < 0:
		targetScreen.X--
		targetX = w.ScreenWidth - 1
	case targetX >= w.ScreenWidth:
		targetScreen.X++
		targetX = 0
	}
	switch {
	case targetY < 0:
		targetScreen.Y--
		targetY = w.ScreenHeight - 1
	case targetY >= w.ScreenHeight:
		targetScreen.Y++
		targetY = 0
	}

	if !w.Contains(targetScreen) {
		return false
	}
	if !w.Screen(targetScreen).Walkable(targetX, targetY) {
		return false
	}

	p.recordFootprint(w)

	p.Screen = targetScreen
	p.X = targetX
	p.Y = targetY
	return true
}

func (p *Player) face(dx, dy int) {
	switch {
	case dy < 0:
		p.Facing = FacingUp
	case dy > 0:
		p.Facing = FacingDown
	case dx < 0:
		p.Facing = FacingLeft
	case dx > 0:
		p.Facing = FacingRight
	}
}

// recordFootprint marks the tile being left, but only on screens whose
// dominant biome is footprint-capable. The merged palette is not the gate:
// transition screens can carry the footprint tile for a minority biome.
func (p *Player) recordFootprint(w *world.World) {
	if p.cap < 1 {
		return
	}
	screen := w.Screen(p.Screen)
	if !screen.FootprintCapable {
		return
	}

	ring, ok := p.footprints[p.Screen]
	if !ok {
		ring = &footprintRing{cap: p.cap}
		p.footprints[p.Screen] = ring
	}
	ring.record(world.TilePos{X: p.X, Y: p.Y})
}

// Footprints returns the recorded footprints on a screen, oldest first.
func (p *Player) Footprints(screen world.Coord) []world.TilePos {
	ring, ok := p.footprints[screen]
	if !ok {
		return nil
	}
	out := make([]world.TilePos, len(ring.positions))
	copy(out, ring.positions)
	return out
}

// footprintRing keeps the most recent distinct positions on one screen.
// Re-stepping on a recorded position refreshes its recency instead of
// duplicating it; the oldest entry is evicted once the cap is exceeded.
type footprintRing struct {
	positions []world.TilePos
	cap       int
}

func (r *footprintRing) record(pos world.TilePos) {
	for i, existing := range r.positions {
		if existing == pos {
			r.positions = append(r.positions[:i], r.positions[i+1:]...)
			break
		}
	}
	r.positions = append(r.positions, pos)
	if len(r.positions) > r.cap {
		r.positions = r.positions[1:]
	}
}
