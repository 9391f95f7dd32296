package world

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/Wintermark/overworld/internal/catalog"
	"github.com/Wintermark/overworld/internal/config"
	"github.com/Wintermark/overworld/internal/terrain"
	"github.com/charmbracelet/log"
)

// Builder constructs a World from an injected catalog and configuration.
// Building runs to completion before the interactive loop starts and is the
// only phase that writes screens.
type Builder struct {
	catalog *catalog.Catalog
	cfg     config.WorldConfig
	rng     *rand.Rand
}

func NewBuilder(cat *catalog.Catalog, cfg config.WorldConfig, rng *rand.Rand) *Builder {
	return &Builder{
		catalog: cat,
		cfg:     cfg,
		rng:     rng,
	}
}

// Build generates every screen of the world grid, places enemies and
// characters, and resolves the player spawn.
func (b *Builder) Build() (*World, error) {
	if b.cfg.Columns < 1 || b.cfg.Rows < 1 {
		return nil, fmt.Errorf("invalid world grid %dx%d", b.cfg.Columns, b.cfg.Rows)
	}
	if b.cfg.ScreenWidth < 1 || b.cfg.ScreenHeight < 1 {
		return nil, fmt.Errorf("invalid screen size %dx%d", b.cfg.ScreenWidth, b.cfg.ScreenHeight)
	}

	start := time.Now()
	log.Debug("Starting world build",
		"columns", b.cfg.Columns,
		"rows", b.cfg.Rows,
		"screen_width", b.cfg.ScreenWidth,
		"screen_height", b.cfg.ScreenHeight,
	)

	w := &World{
		screens:      make(map[Coord]*Screen, b.cfg.Columns*b.cfg.Rows),
		Columns:      b.cfg.Columns,
		Rows:         b.cfg.Rows,
		ScreenWidth:  b.cfg.ScreenWidth,
		ScreenHeight: b.cfg.ScreenHeight,
	}

	for sy := 0; sy < b.cfg.Rows; sy++ {
		for sx := 0; sx < b.cfg.Columns; sx++ {
			coord := Coord{X: sx, Y: sy}
			screen, err := b.buildScreen(coord)
			if err != nil {
				return nil, fmt.Errorf("failed to build screen (%d,%d): %w", sx, sy, err)
			}
			w.screens[coord] = screen
		}
	}

	b.placeCharacters(w)

	if err := b.resolveSpawn(w); err != nil {
		return nil, err
	}

	log.Info("World build completed",
		"screens", len(w.screens),
		"duration", time.Since(start),
	)
	return w, nil
}

// buildScreen generates one screen: dominant biome from the vertical centre,
// one terrain source-map per relevant biome, then a per-row roulette blend so
// biome seams fade gradually instead of snapping at screen edges.
func (b *Builder) buildScreen(coord Coord) (*Screen, error) {
	totalRows := b.cfg.Rows * b.cfg.ScreenHeight

	centreRow := coord.Y*b.cfg.ScreenHeight + b.cfg.ScreenHeight/2
	weights := b.resolveWeights(BiomeWeights(normalizedHeight(centreRow, totalRows), b.cfg.TransitionScreens, b.cfg.Rows))
	dominant := dominantBiome(weights)

	relevant := relevantBiomes(weights)
	if len(relevant) == 0 {
		relevant = []catalog.BiomeID{dominant}
	}

	definitions := make(map[catalog.BiomeID]catalog.BiomeDefinition, len(relevant))
	sources := make(map[catalog.BiomeID][][]catalog.Tile, len(relevant))
	palette := make(map[string]catalog.Tile)
	for _, id := range relevant {
		def, err := b.catalog.Definition(id)
		if err != nil {
			return nil, err
		}
		definitions[id] = def
		sources[id] = terrain.Generate(b.cfg.ScreenWidth, b.cfg.ScreenHeight, def, b.rng)
		for name, tile := range def.Tiles {
			palette[name] = tile
		}
	}

	grid := make([][]catalog.Tile, b.cfg.ScreenHeight)
	for ty := 0; ty < b.cfg.ScreenHeight; ty++ {
		globalRow := coord.Y*b.cfg.ScreenHeight + ty
		rowWeights := b.resolveWeights(BiomeWeights(normalizedHeight(globalRow, totalRows), b.cfg.TransitionScreens, b.cfg.Rows))

		chosen := b.rouletteBiome(relevant, rowWeights, dominant)
		row := make([]catalog.Tile, b.cfg.ScreenWidth)
		copy(row, sources[chosen][ty])
		grid[ty] = row
	}

	// Footprint capability follows the dominant biome's own definition, not
	// the merged palette: a transition screen may inherit the footprint tile
	// from a minority biome without being footprint-capable itself.
	_, footprintCapable := definitions[dominant].Footprint()

	screen := &Screen{
		Tiles:            palette,
		Terrain:          grid,
		Biome:            dominant,
		BiomeWeights:     weights,
		FootprintCapable: footprintCapable,
	}

	b.placeEnemy(screen, coord)

	return screen, nil
}

// resolveWeights folds the weight of any latitude band the catalog does not
// define into the fallback biome, so a catalog that ships fewer than the
// three standard bands still builds.
func (b *Builder) resolveWeights(weights map[catalog.BiomeID]float64) map[catalog.BiomeID]float64 {
	fallback := b.fallbackBiome()
	resolved := make(map[catalog.BiomeID]float64, len(weights))
	for id, w := range weights {
		if !b.catalog.Has(id) {
			id = fallback
		}
		resolved[id] += w
	}
	return resolved
}

// fallbackBiome is the stand-in for undefined latitude bands: the summer
// band when the catalog defines it, otherwise the first defined biome.
func (b *Builder) fallbackBiome() catalog.BiomeID {
	if b.catalog.Has(catalog.BiomeSummer) {
		return catalog.BiomeSummer
	}
	return b.catalog.BiomeIDs()[0]
}

// rouletteBiome picks a row's source biome by cumulative-weight scan among
// the relevant biomes. Falls back to the dominant biome when every relevant
// weight is zero at this row.
func (b *Builder) rouletteBiome(relevant []catalog.BiomeID, weights map[catalog.BiomeID]float64, dominant catalog.BiomeID) catalog.BiomeID {
	var total float64
	for _, id := range relevant {
		if w := weights[id]; w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return dominant
	}

	roll := b.rng.Float64() * total
	var cumulative float64
	chosen := relevant[len(relevant)-1]
	for _, id := range relevant {
		w := weights[id]
		if w <= 0 {
			continue
		}
		cumulative += w
		if roll <= cumulative {
			chosen = id
			break
		}
	}
	return chosen
}

// placeEnemy seeds one enemy on the screen, skipping placement entirely when
// rejection sampling cannot find a walkable tile within the retry bound.
func (b *Builder) placeEnemy(screen *Screen, coord Coord) {
	template, ok := pickEnemyTemplate(b.catalog, screen.Biome, b.rng)
	if !ok {
		return
	}

	pos, found := findRandomWalkable(screen.Terrain, nil, b.cfg.PlacementAttempts, b.rng)
	if !found {
		log.Warn("No walkable tile for enemy, skipping placement",
			"screen_x", coord.X,
			"screen_y", coord.Y,
			"enemy", template.ID,
			"attempts", b.cfg.PlacementAttempts,
		)
		return
	}

	screen.Enemies = append(screen.Enemies, NewEnemy(template, coord, pos))
}

// placeCharacters scatters the non-hostile characters across distinct random
// screens, avoiding tiles already occupied on each.
func (b *Builder) placeCharacters(w *World) {
	templates := b.catalog.Characters()
	if len(templates) == 0 || b.cfg.CharacterCount < 1 {
		return
	}

	coords := make([]Coord, 0, len(w.screens))
	for sy := 0; sy < w.Rows; sy++ {
		for sx := 0; sx < w.Columns; sx++ {
			coords = append(coords, Coord{X: sx, Y: sy})
		}
	}
	b.rng.Shuffle(len(coords), func(i, j int) {
		coords[i], coords[j] = coords[j], coords[i]
	})

	count := b.cfg.CharacterCount
	if count > len(coords) {
		count = len(coords)
	}

	for i := 0; i < count; i++ {
		coord := coords[i]
		screen := w.Screen(coord)

		occupied := make(map[TilePos]struct{}, len(screen.Enemies)+len(screen.Characters))
		for _, e := range screen.Enemies {
			occupied[TilePos{X: e.X, Y: e.Y}] = struct{}{}
		}
		for _, c := range screen.Characters {
			occupied[TilePos{X: c.X, Y: c.Y}] = struct{}{}
		}

		template := templates[i%len(templates)]
		pos, found := findRandomWalkable(screen.Terrain, occupied, b.cfg.PlacementAttempts, b.rng)
		if !found {
			log.Warn("No walkable tile for character, skipping placement",
				"screen_x", coord.X,
				"screen_y", coord.Y,
				"character", template.ID,
			)
			continue
		}
		screen.Characters = append(screen.Characters, NewCharacter(template, coord, pos))
	}
}

// resolveSpawn fixes the player spawn on the central screen and relocates any
// enemy that was placed exactly on the spawn tile.
func (b *Builder) resolveSpawn(w *World) error {
	spawnScreen := Coord{X: w.Columns / 2, Y: w.Rows / 2}
	screen := w.Screen(spawnScreen)

	spawn, ok := findSpawn(screen.Terrain)
	if !ok {
		return fmt.Errorf("spawn screen (%d,%d) has no walkable tile", spawnScreen.X, spawnScreen.Y)
	}

	for _, enemy := range screen.Enemies {
		if enemy.X == spawn.X && enemy.Y == spawn.Y {
			exclude := map[TilePos]struct{}{spawn: {}}
			pos, found := findRandomWalkable(screen.Terrain, exclude, b.cfg.PlacementAttempts, b.rng)
			if found {
				enemy.X = pos.X
				enemy.Y = pos.Y
				enemy.HomeX = pos.X
				enemy.HomeY = pos.Y
			} else {
				enemy.Defeated = true
			}
			log.Debug("Relocated enemy off the spawn tile",
				"enemy", enemy.ID,
				"relocated", found,
			)
		}
	}

	w.SpawnScreen = spawnScreen
	w.SpawnTile = spawn
	return nil
}

func dominantBiome(weights map[catalog.BiomeID]float64) catalog.BiomeID {
	ids := make([]catalog.BiomeID, 0, len(weights))
	for id := range weights {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	best := ids[0]
	for _, id := range ids[1:] {
		if weights[id] > weights[best] {
			best = id
		}
	}
	return best
}

func relevantBiomes(weights map[catalog.BiomeID]float64) []catalog.BiomeID {
	ids := make([]catalog.BiomeID, 0, len(weights))
	for id, w := range weights {
		if w > relevantWeight {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
