package viewport

import (
	"github.com/Wintermark/overworld/internal/catalog"
	"github.com/Wintermark/overworld/internal/player"
	"github.com/Wintermark/overworld/internal/world"
)

// EntityView is an entity projected into camera-local coordinates.
type EntityView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Glyph string `json:"glyph"`
	FG    string `json:"fg"`
	BG    string `json:"bg"`
}

// FootprintView is one recorded footprint projected into the camera window.
type FootprintView struct {
	X    int          `json:"x"`
	Y    int          `json:"y"`
	Tile catalog.Tile `json:"tile"`
}

// Frame is a single render-ready viewport snapshot. Tiles always holds
// exactly Height rows of Width tiles.
type Frame struct {
	Width      int              `json:"width"`
	Height     int              `json:"height"`
	CameraX    int              `json:"camera_x"`
	CameraY    int              `json:"camera_y"`
	PlayerX    int              `json:"player_x"`
	PlayerY    int              `json:"player_y"`
	Biome      catalog.BiomeID  `json:"biome"`
	Tiles      [][]catalog.Tile `json:"tiles"`
	Enemies    []EntityView     `json:"enemies"`
	Characters []EntityView     `json:"characters"`
	Footprints []FootprintView  `json:"footprints"`
}

// Builder assembles camera-local frames out of the fixed world. The camera is
// centred on the player and clamped to the world bounds, so frames near an
// edge stay fully populated instead of showing out-of-world tiles.
type Builder struct {
	world  *world.World
	width  int
	height int
}

func NewBuilder(w *world.World, width, height int) *Builder {
	if width > w.TotalWidth() {
		width = w.TotalWidth()
	}
	if height > w.TotalHeight() {
		height = w.TotalHeight()
	}
	return &Builder{world: w, width: width, height: height}
}

// Snapshot builds the frame for one player. The world is read-only here; the
// player is only read, never owned.
func (b *Builder) Snapshot(p *player.Player) Frame {
	globalX := p.Screen.X*b.world.ScreenWidth + p.X
	globalY := p.Screen.Y*b.world.ScreenHeight + p.Y

	camX := clamp(globalX-b.width/2, 0, b.world.TotalWidth()-b.width)
	camY := clamp(globalY-b.height/2, 0, b.world.TotalHeight()-b.height)

	frame := Frame{
		Width:   b.width,
		Height:  b.height,
		CameraX: camX,
		CameraY: camY,
		PlayerX: globalX - camX,
		PlayerY: globalY - camY,
		Biome:   b.world.BiomeAt(p.Screen),
		Tiles:   b.stitchTiles(camX, camY),
	}

	for _, coord := range b.screensInWindow(camX, camY) {
		b.projectEntities(&frame, coord, camX, camY)
		b.projectFootprints(&frame, p, coord, camX, camY)
	}
	return frame
}

// stitchTiles fills the window row by row, mapping each global tile
// coordinate onto its owning screen and local offset.
func (b *Builder) stitchTiles(camX, camY int) [][]catalog.Tile {
	tiles := make([][]catalog.Tile, b.height)
	for vy := 0; vy < b.height; vy++ {
		row := make([]catalog.Tile, b.width)
		gy := camY + vy
		sy := gy / b.world.ScreenHeight
		ty := gy % b.world.ScreenHeight
		for vx := 0; vx < b.width; vx++ {
			gx := camX + vx
			sx := gx / b.world.ScreenWidth
			tx := gx % b.world.ScreenWidth
			row[vx] = b.world.Screen(world.Coord{X: sx, Y: sy}).Terrain[ty][tx]
		}
		tiles[vy] = row
	}
	return tiles
}

// screensInWindow lists the screen coordinates the camera window overlaps.
func (b *Builder) screensInWindow(camX, camY int) []world.Coord {
	firstX := camX / b.world.ScreenWidth
	lastX := (camX + b.width - 1) / b.world.ScreenWidth
	firstY := camY / b.world.ScreenHeight
	lastY := (camY + b.height - 1) / b.world.ScreenHeight

	coords := make([]world.Coord, 0, (lastX-firstX+1)*(lastY-firstY+1))
	for sy := firstY; sy <= lastY; sy++ {
		for sx := firstX; sx <= lastX; sx++ {
			coords = append(coords, world.Coord{X: sx, Y: sy})
		}
	}
	return coords
}

func (b *Builder) projectEntities(frame *Frame, coord world.Coord, camX, camY int) {
	screen := b.world.Screen(coord)
	baseX := coord.X * b.world.ScreenWidth
	baseY := coord.Y * b.world.ScreenHeight

	for _, e := range screen.Enemies {
		if e.Defeated {
			continue
		}
		vx := baseX + e.X - camX
		vy := baseY + e.Y - camY
		if !b.inWindow(vx, vy) {
			continue
		}
		frame.Enemies = append(frame.Enemies, EntityView{
			ID:    e.ID,
			Name:  e.Name,
			X:     vx,
			Y:     vy,
			Glyph: e.Glyph,
			FG:    e.FG,
			BG:    e.BG,
		})
	}

	for _, c := range screen.Characters {
		vx := baseX + c.X - camX
		vy := baseY + c.Y - camY
		if !b.inWindow(vx, vy) {
			continue
		}
		frame.Characters = append(frame.Characters, EntityView{
			ID:    c.ID,
			Name:  c.Name,
			X:     vx,
			Y:     vy,
			Glyph: c.Glyph,
			FG:    c.FG,
			BG:    c.BG,
		})
	}
}

func (b *Builder) projectFootprints(frame *Frame, p *player.Player, coord world.Coord, camX, camY int) {
	tile, ok := b.world.Screen(coord).FootprintTile()
	if !ok {
		return
	}
	baseX := coord.X * b.world.ScreenWidth
	baseY := coord.Y * b.world.ScreenHeight

	for _, pos := range p.Footprints(coord) {
		vx := baseX + pos.X - camX
		vy := baseY + pos.Y - camY
		if !b.inWindow(vx, vy) {
			continue
		}
		frame.Footprints = append(frame.Footprints, FootprintView{X: vx, Y: vy, Tile: tile})
	}
}

func (b *Builder) inWindow(vx, vy int) bool {
	return vx >= 0 && vx < b.width && vy >= 0 && vy < b.height
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
