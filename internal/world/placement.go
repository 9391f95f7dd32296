package world

import (
	"math/rand"

	"github.com/Wintermark/overworld/internal/catalog"
)

// findSpawn returns the geometric centre of the grid if walkable, otherwise
// the nearest walkable tile found by an expanding ring search.
func findSpawn(grid [][]catalog.Tile) (TilePos, bool) {
	height := len(grid)
	if height == 0 {
		return TilePos{}, false
	}
	width := len(grid[0])
	if width == 0 {
		return TilePos{}, false
	}

	cx, cy := width/2, height/2
	if grid[cy][cx].Walkable {
		return TilePos{X: cx, Y: cy}, true
	}

	maxR := width
	if height > maxR {
		maxR = height
	}
	for r := 1; r < maxR; r++ {
		for y := max(0, cy-r); y <= min(height-1, cy+r); y++ {
			for x := max(0, cx-r); x <= min(width-1, cx+r); x++ {
				if grid[y][x].Walkable {
					return TilePos{X: x, Y: y}, true
				}
			}
		}
	}
	return TilePos{}, false
}

// findRandomWalkable rejection-samples the grid for a walkable, non-excluded
// tile within a bounded number of attempts. The second return value reports
// whether a position was found; callers decide how to degrade on a miss.
func findRandomWalkable(grid [][]catalog.Tile, exclude map[TilePos]struct{}, attempts int, rng *rand.Rand) (TilePos, bool) {
	height := len(grid)
	if height == 0 {
		return TilePos{}, false
	}
	width := len(grid[0])
	if width == 0 {
		return TilePos{}, false
	}

	for i := 0; i < attempts; i++ {
		pos := TilePos{X: rng.Intn(width), Y: rng.Intn(height)}
		if _, skip := exclude[pos]; skip {
			continue
		}
		if grid[pos.Y][pos.X].Walkable {
			return pos, true
		}
	}
	return TilePos{}, false
}

// pickEnemyTemplate selects a species for a screen's dominant biome by
// roulette over the declared per-biome spawn weights. Species with no weight
// for the biome are ineligible; with no eligible species at all the first
// defined species is used so no screen goes empty.
func pickEnemyTemplate(cat *catalog.Catalog, biome catalog.BiomeID, rng *rand.Rand) (catalog.EnemyTemplate, bool) {
	all := cat.Enemies()
	if len(all) == 0 {
		return catalog.EnemyTemplate{}, false
	}

	type weighted struct {
		template catalog.EnemyTemplate
		weight   float64
	}
	var candidates []weighted
	var total float64
	for _, t := range all {
		w := t.SpawnWeights[biome]
		if w > 0 {
			candidates = append(candidates, weighted{template: t, weight: w})
			total += w
		}
	}

	if len(candidates) == 0 {
		return all[0], true
	}

	roll := rng.Float64() * total
	var cumulative float64
	for _, c := range candidates {
		cumulative += c.weight
		if roll <= cumulative {
			return c.template, true
		}
	}
	return candidates[len(candidates)-1].template, true
}
