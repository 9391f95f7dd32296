package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wintermark/overworld/internal/db"
)

// mockQuerier implements Querier over in-memory rows.
type mockQuerier struct {
	biomes     []db.Biome
	tiles      []db.BiomeTile
	common     []db.CommonTile
	overrides  []db.TileOverride
	forest     []db.BiomeForestTile
	scatter    []db.ScatterRule
	enemies    []db.Enemy
	weights    []db.EnemySpawnWeight
	characters []db.Character
	failOn     string
}

func (m *mockQuerier) err(query string) error {
	if m.failOn == query {
		return fmt.Errorf("mock %s failure", query)
	}
	return nil
}

func (m *mockQuerier) ListBiomes(ctx context.Context) ([]db.Biome, error) {
	return m.biomes, m.err("biomes")
}
func (m *mockQuerier) ListBiomeTiles(ctx context.Context) ([]db.BiomeTile, error) {
	return m.tiles, m.err("biome_tiles")
}
func (m *mockQuerier) ListCommonTiles(ctx context.Context) ([]db.CommonTile, error) {
	return m.common, m.err("common_tiles")
}
func (m *mockQuerier) ListTileOverrides(ctx context.Context) ([]db.TileOverride, error) {
	return m.overrides, m.err("tile_overrides")
}
func (m *mockQuerier) ListForestTiles(ctx context.Context) ([]db.BiomeForestTile, error) {
	return m.forest, m.err("forest_tiles")
}
func (m *mockQuerier) ListScatterRules(ctx context.Context) ([]db.ScatterRule, error) {
	return m.scatter, m.err("scatter_rules")
}
func (m *mockQuerier) ListEnemies(ctx context.Context) ([]db.Enemy, error) {
	return m.enemies, m.err("enemies")
}
func (m *mockQuerier) ListEnemySpawnWeights(ctx context.Context) ([]db.EnemySpawnWeight, error) {
	return m.weights, m.err("spawn_weights")
}
func (m *mockQuerier) ListCharacters(ctx context.Context) ([]db.Character, error) {
	return m.characters, m.err("characters")
}

func seededQuerier() *mockQuerier {
	return &mockQuerier{
		biomes: []db.Biome{
			{
				BiomeID: "summer", GroundTile: "grass",
				ForestCountMin: 1, ForestCountMax: 2,
				ForestRadiusMin: 2, ForestRadiusMax: 3,
				ForestDensity: 0.7,
			},
		},
		tiles: []db.BiomeTile{
			{BiomeID: "summer", Name: "grass", Glyph: ".", Fg: "#5AC85A", Bg: sql.NullString{String: "#149628", Valid: true}, Walkable: 1, Kind: "unique"},
			{BiomeID: "summer", Name: "tree", Glyph: "T", Fg: "#05460F", Bg: sql.NullString{String: "#149628", Valid: true}, Walkable: 0, Kind: "unique"},
		},
		common: []db.CommonTile{
			{Name: "player", Glyph: "@", Fg: "#F0C850", Walkable: 1},
		},
		overrides: []db.TileOverride{
			{BiomeID: "summer", Name: "player", Fg: sql.NullString{String: "#FFFFFF", Valid: true}},
		},
		forest: []db.BiomeForestTile{
			{BiomeID: "summer", TileName: "tree"},
		},
		scatter: []db.ScatterRule{
			{BiomeID: "summer", TileName: "tree", CountMin: 0, CountMax: 2, AvoidBorder: 1},
		},
		enemies: []db.Enemy{
			{EnemyID: "wild_boar", Name: "Wild Boar", Glyph: "b", Fg: "#780028", Bg: "#149628", Hp: 10, AttackMin: 1, AttackMax: 3, RewardTalents: 1, Strength: 5, Agility: 3, Intellect: 1},
		},
		weights: []db.EnemySpawnWeight{
			{EnemyID: "wild_boar", BiomeID: "summer", Weight: 1.0},
		},
		characters: []db.Character{
			{CharacterID: "warlock", Name: "Warlock", Glyph: "W", Fg: "#B400C8", Bg: "#140028", Strength: 4, Agility: 6, Intellect: 8},
		},
	}
}

func TestLoadBuildsCatalogFromRows(t *testing.T) {
	cat, err := Load(context.Background(), seededQuerier())
	require.NoError(t, err)

	assert.Equal(t, []BiomeID{BiomeSummer}, cat.BiomeIDs())

	def, err := cat.Definition(BiomeSummer)
	require.NoError(t, err)
	assert.Equal(t, "grass", def.GroundTile)
	assert.Equal(t, []string{"tree"}, def.ForestTiles)
	require.Len(t, def.ScatterRules, 1)
	assert.True(t, def.ScatterRules[0].AvoidBorder)

	// Override applied on top of the inherited ground background.
	player := def.Tiles["player"]
	assert.Equal(t, "#FFFFFF", player.FG)
	assert.Equal(t, "#149628", player.BG)

	boar, err := cat.Enemy("wild_boar")
	require.NoError(t, err)
	assert.Equal(t, 10, boar.MaxHP)
	assert.Equal(t, 1.0, boar.SpawnWeights[BiomeSummer])

	warlock, err := cat.Character("warlock")
	require.NoError(t, err)
	assert.Equal(t, Stats{Strength: 4, Agility: 6, Intellect: 8}, warlock.Stats)
}

func TestLoadPropagatesQueryErrors(t *testing.T) {
	for _, failOn := range []string{"biomes", "biome_tiles", "common_tiles", "tile_overrides", "forest_tiles", "scatter_rules", "enemies", "spawn_weights", "characters"} {
		t.Run(failOn, func(t *testing.T) {
			q := seededQuerier()
			q.failOn = failOn

			_, err := Load(context.Background(), q)
			assert.Error(t, err)
		})
	}
}

func TestLoadRejectsDanglingReferences(t *testing.T) {
	q := seededQuerier()
	q.tiles = append(q.tiles, db.BiomeTile{BiomeID: "swamp", Name: "mud", Glyph: ".", Fg: "#000000", Kind: "unique"})

	_, err := Load(context.Background(), q)
	assert.Error(t, err)

	q = seededQuerier()
	q.tiles[0].Kind = "weird"
	_, err = Load(context.Background(), q)
	assert.Error(t, err)
}
