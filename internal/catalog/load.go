package catalog

import (
	"context"
	"fmt"

	"github.com/Wintermark/overworld/internal/db"
	"github.com/charmbracelet/log"
)

// Querier is the catalog's view of the database layer. Both *db.Queries and
// *db.LoggingQueries satisfy it.
type Querier interface {
	ListBiomes(ctx context.Context) ([]db.Biome, error)
	ListBiomeTiles(ctx context.Context) ([]db.BiomeTile, error)
	ListCommonTiles(ctx context.Context) ([]db.CommonTile, error)
	ListTileOverrides(ctx context.Context) ([]db.TileOverride, error)
	ListForestTiles(ctx context.Context) ([]db.BiomeForestTile, error)
	ListScatterRules(ctx context.Context) ([]db.ScatterRule, error)
	ListEnemies(ctx context.Context) ([]db.Enemy, error)
	ListEnemySpawnWeights(ctx context.Context) ([]db.EnemySpawnWeight, error)
	ListCharacters(ctx context.Context) ([]db.Character, error)
}

// Load reads the full catalog from storage and builds it. Any missing or
// malformed data is a load-time error; callers treat it as fatal.
func Load(ctx context.Context, q Querier) (*Catalog, error) {
	log.Debug("Loading catalog from database")

	biomeRows, err := q.ListBiomes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list biomes: %w", err)
	}
	tileRows, err := q.ListBiomeTiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list biome tiles: %w", err)
	}
	commonRows, err := q.ListCommonTiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list common tiles: %w", err)
	}
	overrideRows, err := q.ListTileOverrides(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tile overrides: %w", err)
	}
	forestRows, err := q.ListForestTiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list forest tiles: %w", err)
	}
	scatterRows, err := q.ListScatterRules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list scatter rules: %w", err)
	}
	enemyRows, err := q.ListEnemies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list enemies: %w", err)
	}
	weightRows, err := q.ListEnemySpawnWeights(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list enemy spawn weights: %w", err)
	}
	characterRows, err := q.ListCharacters(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}

	raw := Raw{
		CommonTiles: make(map[string]RawTile, len(commonRows)),
	}

	for _, row := range commonRows {
		raw.CommonTiles[row.Name] = RawTile{
			Glyph:    row.Glyph,
			FG:       row.Fg,
			BG:       row.Bg.String,
			Walkable: row.Walkable != 0,
			Sprite:   row.Sprite.String,
		}
	}

	biomes := make(map[string]*RawBiome, len(biomeRows))
	for _, row := range biomeRows {
		rb := &RawBiome{
			ID:            BiomeID(row.BiomeID),
			GroundTile:    row.GroundTile,
			UniqueTiles:   make(map[string]RawTile),
			Overrides:     make(map[string]TilePatch),
			Extras:        make(map[string]RawTile),
			ForestCount:   [2]int{int(row.ForestCountMin), int(row.ForestCountMax)},
			ForestRadius:  [2]int{int(row.ForestRadiusMin), int(row.ForestRadiusMax)},
			ForestDensity: row.ForestDensity,
		}
		biomes[row.BiomeID] = rb
	}

	for _, row := range tileRows {
		rb, ok := biomes[row.BiomeID]
		if !ok {
			return nil, fmt.Errorf("tile %q references unknown biome %q", row.Name, row.BiomeID)
		}
		tile := RawTile{
			Glyph:    row.Glyph,
			FG:       row.Fg,
			BG:       row.Bg.String,
			Walkable: row.Walkable != 0,
			Sprite:   row.Sprite.String,
		}
		switch row.Kind {
		case "unique":
			rb.UniqueTiles[row.Name] = tile
		case "extra":
			rb.Extras[row.Name] = tile
		default:
			return nil, fmt.Errorf("tile %q has unknown kind %q", row.Name, row.Kind)
		}
	}

	for _, row := range overrideRows {
		rb, ok := biomes[row.BiomeID]
		if !ok {
			return nil, fmt.Errorf("override %q references unknown biome %q", row.Name, row.BiomeID)
		}
		patch := TilePatch{
			Glyph: row.Glyph.String,
			FG:    row.Fg.String,
			BG:    row.Bg.String,
		}
		if row.Walkable.Valid {
			walkable := row.Walkable.Int64 != 0
			patch.Walkable = &walkable
		}
		rb.Overrides[row.Name] = patch
	}

	for _, row := range forestRows {
		rb, ok := biomes[row.BiomeID]
		if !ok {
			return nil, fmt.Errorf("forest tile %q references unknown biome %q", row.TileName, row.BiomeID)
		}
		rb.ForestTiles = append(rb.ForestTiles, row.TileName)
	}

	for _, row := range scatterRows {
		rb, ok := biomes[row.BiomeID]
		if !ok {
			return nil, fmt.Errorf("scatter rule %q references unknown biome %q", row.TileName, row.BiomeID)
		}
		rb.ScatterRules = append(rb.ScatterRules, ScatterRule{
			Tile:        row.TileName,
			CountMin:    int(row.CountMin),
			CountMax:    int(row.CountMax),
			AvoidBorder: row.AvoidBorder != 0,
		})
	}

	// Keep storage order stable for biomes.
	for _, row := range biomeRows {
		raw.Biomes = append(raw.Biomes, *biomes[row.BiomeID])
	}

	weightsByEnemy := make(map[string]map[BiomeID]float64, len(enemyRows))
	for _, row := range weightRows {
		if weightsByEnemy[row.EnemyID] == nil {
			weightsByEnemy[row.EnemyID] = make(map[BiomeID]float64)
		}
		weightsByEnemy[row.EnemyID][BiomeID(row.BiomeID)] = row.Weight
	}

	for _, row := range enemyRows {
		raw.Enemies = append(raw.Enemies, EnemyTemplate{
			ID:            row.EnemyID,
			Name:          row.Name,
			Glyph:         row.Glyph,
			FG:            row.Fg,
			BG:            row.Bg,
			MaxHP:         int(row.Hp),
			AttackMin:     int(row.AttackMin),
			AttackMax:     int(row.AttackMax),
			RewardTalents: int(row.RewardTalents),
			Stats: Stats{
				Strength:  int(row.Strength),
				Agility:   int(row.Agility),
				Intellect: int(row.Intellect),
			},
			TileKey:      row.Tile.String,
			SpawnWeights: weightsByEnemy[row.EnemyID],
		})
	}

	for _, row := range characterRows {
		raw.Characters = append(raw.Characters, CharacterTemplate{
			ID:    row.CharacterID,
			Name:  row.Name,
			Glyph: row.Glyph,
			FG:    row.Fg,
			BG:    row.Bg,
			Stats: Stats{
				Strength:  int(row.Strength),
				Agility:   int(row.Agility),
				Intellect: int(row.Intellect),
			},
			TileKey: row.Tile.String,
		})
	}

	cat, err := New(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog: %w", err)
	}

	log.Info("Catalog loaded",
		"biomes", len(raw.Biomes),
		"enemies", len(raw.Enemies),
		"characters", len(raw.Characters),
	)
	return cat, nil
}
