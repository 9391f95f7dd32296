// Package terrain generates biome-specific tile grids: a ground fill, a
// random number of forest clusters, then the biome's scatter rules.
package terrain

import (
	"math"
	"math/rand"

	"github.com/Wintermark/overworld/internal/catalog"
)

// Generate creates a height x width grid of independent tile copies for the
// given biome. Forest clusters are confined to the interior: border cells
// never receive forest tiles. Scatter placement has no collision avoidance;
// later writes overwrite earlier ones.
func Generate(width, height int, biome catalog.BiomeDefinition, rng *rand.Rand) [][]catalog.Tile {
	ground := biome.Tiles[biome.GroundTile]

	grid := make([][]catalog.Tile, height)
	for y := range grid {
		row := make([]catalog.Tile, width)
		for x := range row {
			row[x] = ground
		}
		grid[y] = row
	}

	if width >= 3 && height >= 3 && len(biome.ForestTiles) > 0 {
		numForests := randRange(rng, biome.ForestCountMin, biome.ForestCountMax)
		for i := 0; i < numForests; i++ {
			fx := 1 + rng.Intn(width-2)
			fy := 1 + rng.Intn(height-2)
			radius := randRange(rng, biome.ForestRadiusMin, biome.ForestRadiusMax)
			growCluster(grid, biome, rng, fx, fy, radius)
		}
	}

	for _, rule := range biome.ScatterRules {
		tile := biome.Tiles[rule.Tile]
		count := randRange(rng, rule.CountMin, rule.CountMax)
		for i := 0; i < count; i++ {
			x := rng.Intn(width)
			y := rng.Intn(height)
			if rule.AvoidBorder && onBorder(x, y, width, height) {
				continue
			}
			grid[y][x] = tile
		}
	}

	return grid
}

// growCluster overwrites interior cells within the cluster radius with a
// uniformly-chosen forest tile, each cell passing an independent density roll.
func growCluster(grid [][]catalog.Tile, biome catalog.BiomeDefinition, rng *rand.Rand, fx, fy, radius int) {
	height := len(grid)
	width := len(grid[0])

	minY := max(0, fy-radius)
	maxY := min(height-1, fy+radius)
	minX := max(0, fx-radius)
	maxX := min(width-1, fx+radius)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if onBorder(x, y, width, height) {
				continue
			}
			dx := float64(x - fx)
			dy := float64(y - fy)
			if math.Sqrt(dx*dx+dy*dy) >= float64(radius) {
				continue
			}
			if rng.Float64() < biome.ForestDensity {
				name := biome.ForestTiles[rng.Intn(len(biome.ForestTiles))]
				grid[y][x] = biome.Tiles[name]
			}
		}
	}
}

func onBorder(x, y, width, height int) bool {
	return x == 0 || x == width-1 || y == 0 || y == height-1
}

// randRange returns a uniform int in [lo, hi].
func randRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
