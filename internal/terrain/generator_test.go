package terrain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wintermark/overworld/internal/catalog"
	"github.com/Wintermark/overworld/internal/catalog/catalogtest"
)

func summerDef(t *testing.T) catalog.BiomeDefinition {
	t.Helper()
	def, err := catalogtest.Fixture(t).Definition(catalog.BiomeSummer)
	require.NoError(t, err)
	return def
}

func TestGenerateDimensions(t *testing.T) {
	def := summerDef(t)

	tests := []struct {
		name   string
		width  int
		height int
	}{
		{"standard", 85, 50},
		{"small", 5, 4},
		{"minimal", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := Generate(tt.width, tt.height, def, rand.New(rand.NewSource(1)))

			require.Len(t, grid, tt.height)
			for _, row := range grid {
				assert.Len(t, row, tt.width)
			}
		})
	}
}

func TestGenerateNeverPlacesForestOnBorder(t *testing.T) {
	def := summerDef(t)
	forest := map[string]bool{}
	for _, name := range def.ForestTiles {
		forest[name] = true
	}

	for seed := int64(0); seed < 20; seed++ {
		grid := Generate(30, 20, def, rand.New(rand.NewSource(seed)))
		for y, row := range grid {
			for x, tile := range row {
				if y == 0 || y == len(grid)-1 || x == 0 || x == len(row)-1 {
					assert.False(t, forest[tile.ID], "forest tile %q on border at (%d,%d) seed %d", tile.ID, x, y, seed)
				}
			}
		}
	}
}

func TestGenerateScatterAvoidsBorder(t *testing.T) {
	def := summerDef(t)
	// The fixture's only scatter rule is border-avoiding rock.
	require.Len(t, def.ScatterRules, 1)
	require.True(t, def.ScatterRules[0].AvoidBorder)

	for seed := int64(0); seed < 20; seed++ {
		grid := Generate(30, 20, def, rand.New(rand.NewSource(seed)))
		for y, row := range grid {
			for x, tile := range row {
				if y == 0 || y == len(grid)-1 || x == 0 || x == len(row)-1 {
					assert.NotEqual(t, "rock", tile.ID, "scatter tile on border at (%d,%d)", x, y)
				}
			}
		}
	}
}

func TestGenerateTinyGridIsAllGround(t *testing.T) {
	def := summerDef(t)
	def.ScatterRules = nil

	// Below 3x3 there is no interior, so clusters are skipped entirely.
	grid := Generate(2, 2, def, rand.New(rand.NewSource(7)))
	for _, row := range grid {
		for _, tile := range row {
			assert.Equal(t, def.GroundTile, tile.ID)
		}
	}
}

func TestGenerateCopiesAreIndependent(t *testing.T) {
	def := summerDef(t)
	grid := Generate(10, 10, def, rand.New(rand.NewSource(3)))

	grid[0][0].Glyph = "X"
	assert.NotEqual(t, "X", grid[0][1].Glyph)
}
