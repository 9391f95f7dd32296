package viewport

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wintermark/overworld/internal/catalog"
	"github.com/Wintermark/overworld/internal/catalog/catalogtest"
	"github.com/Wintermark/overworld/internal/config"
	"github.com/Wintermark/overworld/internal/player"
	"github.com/Wintermark/overworld/internal/world"
)

func testConfig() config.Config {
	return config.Config{
		World: config.WorldConfig{
			Columns:           3,
			Rows:              3,
			ScreenWidth:       12,
			ScreenHeight:      10,
			ViewportWidth:     20,
			ViewportHeight:    12,
			TransitionScreens: 1,
			PlacementAttempts: 500,
			CharacterCount:    2,
			FootprintCap:      2,
		},
		Movement: config.MovementConfig{
			BaseSpeed:    3.0,
			AgilityBonus: 0.35,
		},
	}
}

func buildFixture(t *testing.T) (*world.World, *player.Player, *Builder) {
	t.Helper()
	cfg := testConfig()
	w, err := world.NewBuilder(catalogtest.Fixture(t), cfg.World, rand.New(rand.NewSource(1))).Build()
	require.NoError(t, err)

	p := player.New("s1", "hero", player.DefaultStats, w, cfg)
	return w, p, NewBuilder(w, cfg.World.ViewportWidth, cfg.World.ViewportHeight)
}

func TestSnapshotAlwaysFillsTheWindow(t *testing.T) {
	w, p, b := buildFixture(t)

	positions := []struct {
		screen world.Coord
		x, y   int
	}{
		{world.Coord{X: 1, Y: 1}, 6, 5},
		{world.Coord{X: 0, Y: 0}, 0, 0},
		{world.Coord{X: 2, Y: 2}, w.ScreenWidth - 1, w.ScreenHeight - 1},
		{world.Coord{X: 2, Y: 0}, w.ScreenWidth - 1, 0},
	}

	for _, pos := range positions {
		p.Screen = pos.screen
		p.X, p.Y = pos.x, pos.y

		frame := b.Snapshot(p)
		assert.Equal(t, 20, frame.Width)
		assert.Equal(t, 12, frame.Height)
		require.Len(t, frame.Tiles, 12)
		for _, row := range frame.Tiles {
			require.Len(t, row, 20)
		}

		assert.GreaterOrEqual(t, frame.PlayerX, 0)
		assert.Less(t, frame.PlayerX, frame.Width)
		assert.GreaterOrEqual(t, frame.PlayerY, 0)
		assert.Less(t, frame.PlayerY, frame.Height)
	}
}

func TestSnapshotClampsAtWorldOrigin(t *testing.T) {
	_, p, b := buildFixture(t)

	p.Screen = world.Coord{X: 0, Y: 0}
	p.X, p.Y = 0, 0

	frame := b.Snapshot(p)
	assert.Equal(t, 0, frame.CameraX)
	assert.Equal(t, 0, frame.CameraY)
	assert.Equal(t, 0, frame.PlayerX)
	assert.Equal(t, 0, frame.PlayerY)
}

func TestSnapshotClampsAtFarCorner(t *testing.T) {
	w, p, b := buildFixture(t)

	p.Screen = world.Coord{X: 2, Y: 2}
	p.X, p.Y = w.ScreenWidth-1, w.ScreenHeight-1

	frame := b.Snapshot(p)
	assert.Equal(t, w.TotalWidth()-frame.Width, frame.CameraX)
	assert.Equal(t, w.TotalHeight()-frame.Height, frame.CameraY)
	assert.Equal(t, frame.Width-1, frame.PlayerX)
	assert.Equal(t, frame.Height-1, frame.PlayerY)
}

func TestSnapshotCentresWhenUnclamped(t *testing.T) {
	_, p, b := buildFixture(t)

	p.Screen = world.Coord{X: 1, Y: 1}
	p.X, p.Y = 6, 5

	frame := b.Snapshot(p)
	assert.Equal(t, frame.Width/2, frame.PlayerX)
	assert.Equal(t, frame.Height/2, frame.PlayerY)
}

func TestSnapshotStitchesAcrossScreens(t *testing.T) {
	w, p, b := buildFixture(t)

	// Centre the window on the meeting point of four screens.
	p.Screen = world.Coord{X: 1, Y: 1}
	p.X, p.Y = 0, 0

	frame := b.Snapshot(p)
	for vy := 0; vy < frame.Height; vy++ {
		for vx := 0; vx < frame.Width; vx++ {
			gx := frame.CameraX + vx
			gy := frame.CameraY + vy
			expected := w.Screen(world.Coord{
				X: gx / w.ScreenWidth,
				Y: gy / w.ScreenHeight,
			}).Terrain[gy%w.ScreenHeight][gx%w.ScreenWidth]

			assert.Equal(t, expected, frame.Tiles[vy][vx], "tile (%d,%d)", vx, vy)
		}
	}
}

func TestSnapshotSkipsDefeatedEnemies(t *testing.T) {
	w, p, b := buildFixture(t)

	frame := b.Snapshot(p)
	for _, e := range frame.Enemies {
		assert.GreaterOrEqual(t, e.X, 0)
		assert.Less(t, e.X, frame.Width)
		assert.GreaterOrEqual(t, e.Y, 0)
		assert.Less(t, e.Y, frame.Height)
	}

	// Defeating every enemy empties the projection.
	for sy := 0; sy < w.Rows; sy++ {
		for sx := 0; sx < w.Columns; sx++ {
			for _, enemy := range w.EnemiesAt(world.Coord{X: sx, Y: sy}) {
				enemy.Defeated = true
			}
		}
	}
	frame = b.Snapshot(p)
	assert.Empty(t, frame.Enemies)
}

func TestSnapshotProjectsFootprints(t *testing.T) {
	w, p, b := buildFixture(t)

	// Walk along a winter screen edge to leave prints.
	coord := world.Coord{X: 0, Y: 0}
	p.Screen = coord
	p.X, p.Y = 0, 3
	require.True(t, p.Move(w, 0, 1))

	frame := b.Snapshot(p)
	require.Len(t, frame.Footprints, 1)
	assert.Equal(t, catalog.FootprintTileKey, frame.Footprints[0].Tile.ID)
	assert.Equal(t, 0-frame.CameraX, frame.Footprints[0].X)
	assert.Equal(t, 3-frame.CameraY, frame.Footprints[0].Y)
}

func TestNewBuilderClampsOversizedWindow(t *testing.T) {
	cfg := testConfig()
	w, err := world.NewBuilder(catalogtest.Fixture(t), cfg.World, rand.New(rand.NewSource(1))).Build()
	require.NoError(t, err)

	b := NewBuilder(w, 500, 500)
	p := player.New("s1", "hero", player.DefaultStats, w, cfg)

	frame := b.Snapshot(p)
	assert.Equal(t, w.TotalWidth(), frame.Width)
	assert.Equal(t, w.TotalHeight(), frame.Height)
}
