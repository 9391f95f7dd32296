// Package world partitions the overworld into a grid of fixed-size screens,
// blends biome terrain across latitude bands and places the world's
// inhabitants.
package world

import (
	"fmt"
	"math/rand"

	"github.com/Wintermark/overworld/internal/catalog"
)

// Coord addresses a screen within the world grid.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// TilePos addresses a tile within a single screen.
type TilePos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Enemy is a placed hostile creature. Post-construction it is mutated only by
// the battle resolver through RemoveEnemy / Reset / the Defeated flag.
type Enemy struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Glyph         string        `json:"glyph"`
	FG            string        `json:"fg"`
	BG            string        `json:"bg"`
	MaxHP         int           `json:"max_hp"`
	HP            int           `json:"hp"`
	AttackMin     int           `json:"attack_min"`
	AttackMax     int           `json:"attack_max"`
	RewardTalents int           `json:"reward_talents"`
	Stats         catalog.Stats `json:"stats"`
	TileKey       string        `json:"tile,omitempty"`
	X             int           `json:"x"`
	Y             int           `json:"y"`
	HomeX         int           `json:"home_x"`
	HomeY         int           `json:"home_y"`
	Screen        Coord         `json:"screen"`
	Defeated      bool          `json:"defeated"`
}

func NewEnemy(t catalog.EnemyTemplate, screen Coord, pos TilePos) *Enemy {
	return &Enemy{
		ID:            t.ID,
		Name:          t.Name,
		Glyph:         t.Glyph,
		FG:            t.FG,
		BG:            t.BG,
		MaxHP:         t.MaxHP,
		HP:            t.MaxHP,
		AttackMin:     t.AttackMin,
		AttackMax:     t.AttackMax,
		RewardTalents: t.RewardTalents,
		Stats:         t.Stats,
		TileKey:       t.TileKey,
		X:             pos.X,
		Y:             pos.Y,
		HomeX:         pos.X,
		HomeY:         pos.Y,
		Screen:        screen,
	}
}

// Reset restores hp and the placement-time position (flee/bribe outcome).
func (e *Enemy) Reset() {
	e.HP = e.MaxHP
	e.X = e.HomeX
	e.Y = e.HomeY
	e.Defeated = false
}

func (e *Enemy) AttackDamage(rng *rand.Rand) int {
	if e.AttackMax <= e.AttackMin {
		return e.AttackMin
	}
	return e.AttackMin + rng.Intn(e.AttackMax-e.AttackMin+1)
}

// Character is a placed non-hostile inhabitant.
type Character struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Glyph   string        `json:"glyph"`
	FG      string        `json:"fg"`
	BG      string        `json:"bg"`
	Stats   catalog.Stats `json:"stats"`
	TileKey string        `json:"tile,omitempty"`
	X       int           `json:"x"`
	Y       int           `json:"y"`
	Screen  Coord         `json:"screen"`
}

func NewCharacter(t catalog.CharacterTemplate, screen Coord, pos TilePos) *Character {
	return &Character{
		ID:      t.ID,
		Name:    t.Name,
		Glyph:   t.Glyph,
		FG:      t.FG,
		BG:      t.BG,
		Stats:   t.Stats,
		TileKey: t.TileKey,
		X:       pos.X,
		Y:       pos.Y,
		Screen:  screen,
	}
}

// Screen is one fixed-size partition of the world grid. Owned exclusively by
// World.
type Screen struct {
	Tiles        map[string]catalog.Tile
	Terrain      [][]catalog.Tile
	Biome        catalog.BiomeID
	BiomeWeights map[catalog.BiomeID]float64
	Enemies      []*Enemy
	Characters   []*Character

	// FootprintCapable is set when the dominant biome's own definition
	// carries the footprint tile. Transition screens may hold the tile in
	// their merged palette without being capable.
	FootprintCapable bool
}

func (s *Screen) Walkable(x, y int) bool {
	if y < 0 || y >= len(s.Terrain) || x < 0 || x >= len(s.Terrain[y]) {
		return false
	}
	return s.Terrain[y][x].Walkable
}

// FootprintTile returns the screen's footprint decal tile, if the palette
// carries one.
func (s *Screen) FootprintTile() (catalog.Tile, bool) {
	tile, ok := s.Tiles[catalog.FootprintTileKey]
	return tile, ok
}

// World is the full screen grid. Constructed once per session; read-mostly
// afterwards, with targeted enemy mutations from the battle resolver.
type World struct {
	screens      map[Coord]*Screen
	Columns      int
	Rows         int
	ScreenWidth  int
	ScreenHeight int
	SpawnScreen  Coord
	SpawnTile    TilePos
	timeElapsed  float64
}

func (w *World) TotalWidth() int  { return w.ScreenWidth * w.Columns }
func (w *World) TotalHeight() int { return w.ScreenHeight * w.Rows }

// Screen returns the screen at the given grid coordinate. Asking for a
// coordinate outside the configured grid is a bug in the caller's partition
// arithmetic, so it panics rather than recovering.
func (w *World) Screen(c Coord) *Screen {
	s, ok := w.screens[c]
	if !ok {
		panic(fmt.Sprintf("world: screen coordinate (%d,%d) outside %dx%d grid", c.X, c.Y, w.Columns, w.Rows))
	}
	return s
}

func (w *World) Contains(c Coord) bool {
	return c.X >= 0 && c.X < w.Columns && c.Y >= 0 && c.Y < w.Rows
}

func (w *World) BiomeAt(c Coord) catalog.BiomeID    { return w.Screen(c).Biome }
func (w *World) TerrainAt(c Coord) [][]catalog.Tile { return w.Screen(c).Terrain }
func (w *World) EnemiesAt(c Coord) []*Enemy         { return w.Screen(c).Enemies }
func (w *World) CharactersAt(c Coord) []*Character  { return w.Screen(c).Characters }

// RemoveEnemy drops a defeated enemy from its screen. Reports whether the
// enemy was present.
func (w *World) RemoveEnemy(c Coord, enemy *Enemy) bool {
	s := w.Screen(c)
	for i, e := range s.Enemies {
		if e == enemy {
			s.Enemies = append(s.Enemies[:i], s.Enemies[i+1:]...)
			return true
		}
	}
	return false
}

// ResetEnemy restores an enemy's hp and position after a flee or bribe.
func (w *World) ResetEnemy(enemy *Enemy) {
	enemy.Reset()
}

// AdvanceTime accumulates elapsed play time; non-positive deltas are ignored.
func (w *World) AdvanceTime(delta float64) {
	if delta <= 0 {
		return
	}
	w.timeElapsed += delta
}

func (w *World) TimeElapsed() float64 { return w.timeElapsed }
