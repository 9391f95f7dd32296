// Package catalogtest provides a small in-memory catalog fixture shared by
// tests across packages, so tests never touch SQLite.
package catalogtest

import (
	"testing"

	"github.com/Wintermark/overworld/internal/catalog"
	"github.com/stretchr/testify/require"
)

// Raw returns the raw fixture catalog: the three latitude-band biomes,
// a couple of enemies with spawn weights, and one character.
func Raw() catalog.Raw {
	return catalog.Raw{
		Biomes: []catalog.RawBiome{
			{
				ID:         catalog.BiomeSummer,
				GroundTile: "grass",
				UniqueTiles: map[string]catalog.RawTile{
					"grass": {Glyph: ".", FG: "#5AC85A", BG: "#149628", Walkable: true},
					"tree":  {Glyph: "T", FG: "#05460F", BG: "#149628", Walkable: false},
					"rock":  {Glyph: "o", FG: "#828282", BG: "#149628", Walkable: false},
				},
				ForestTiles:   []string{"tree"},
				ForestCount:   [2]int{2, 3},
				ForestRadius:  [2]int{2, 3},
				ForestDensity: 0.7,
				ScatterRules: []catalog.ScatterRule{
					{Tile: "rock", CountMin: 1, CountMax: 3, AvoidBorder: true},
				},
			},
			{
				ID:         catalog.BiomeWinter,
				GroundTile: "snow",
				UniqueTiles: map[string]catalog.RawTile{
					"snow": {Glyph: ".", FG: "#E6E6FF", BG: "#D2D2EB", Walkable: true},
					"pine": {Glyph: "A", FG: "#1E5AA0", BG: "#D2D2EB", Walkable: false},
				},
				Extras: map[string]catalog.RawTile{
					catalog.FootprintTileKey: {Glyph: "'", FG: "#C8C8E6", BG: "#D2D2EB", Walkable: true},
				},
				ForestTiles:   []string{"pine"},
				ForestCount:   [2]int{2, 3},
				ForestRadius:  [2]int{2, 3},
				ForestDensity: 0.6,
			},
			{
				ID:         catalog.BiomeDrought,
				GroundTile: "sand",
				UniqueTiles: map[string]catalog.RawTile{
					"sand":   {Glyph: ".", FG: "#D7B45A", BG: "#AA823C", Walkable: true},
					"cactus": {Glyph: "Y", FG: "#3C8C46", BG: "#AA823C", Walkable: false},
				},
				ForestTiles:   []string{"cactus"},
				ForestCount:   [2]int{1, 2},
				ForestRadius:  [2]int{2, 3},
				ForestDensity: 0.6,
			},
		},
		CommonTiles: map[string]catalog.RawTile{
			"player": {Glyph: "@", FG: "#F0C850", Walkable: true},
			"enemy":  {Glyph: "e", FG: "#780028", Walkable: true},
		},
		Enemies: []catalog.EnemyTemplate{
			{
				ID: "frost_wolf", Name: "Frost Wolf", Glyph: "w", FG: "#780028",
				MaxHP: 12, AttackMin: 2, AttackMax: 4, RewardTalents: 2,
				Stats:        catalog.Stats{Strength: 4, Agility: 6, Intellect: 1},
				SpawnWeights: map[catalog.BiomeID]float64{catalog.BiomeWinter: 1.0},
			},
			{
				ID: "wild_boar", Name: "Wild Boar", Glyph: "b", FG: "#780028",
				MaxHP: 10, AttackMin: 1, AttackMax: 3, RewardTalents: 1,
				Stats:        catalog.Stats{Strength: 5, Agility: 3, Intellect: 1},
				SpawnWeights: map[catalog.BiomeID]float64{catalog.BiomeSummer: 0.7, catalog.BiomeDrought: 0.3},
			},
		},
		Characters: []catalog.CharacterTemplate{
			{
				ID: "warlock", Name: "Warlock", Glyph: "W", FG: "#B400C8", BG: "#140028",
				Stats: catalog.Stats{Strength: 4, Agility: 6, Intellect: 8},
			},
		},
	}
}

// Fixture builds the fixture catalog, failing the test on any validation
// error.
func Fixture(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(Raw())
	require.NoError(t, err)
	return cat
}
