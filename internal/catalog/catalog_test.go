package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRaw() Raw {
	return Raw{
		Biomes: []RawBiome{
			{
				ID:         BiomeSummer,
				GroundTile: "grass",
				UniqueTiles: map[string]RawTile{
					"grass": {Glyph: ".", FG: "#5AC85A", BG: "#149628", Walkable: true},
					"tree":  {Glyph: "T", FG: "#05460F", BG: "#149628", Walkable: false},
				},
				ForestTiles:   []string{"tree"},
				ForestCount:   [2]int{1, 2},
				ForestRadius:  [2]int{2, 3},
				ForestDensity: 0.7,
				ScatterRules: []ScatterRule{
					{Tile: "tree", CountMin: 0, CountMax: 2, AvoidBorder: true},
				},
			},
		},
		CommonTiles: map[string]RawTile{
			"player": {Glyph: "@", FG: "#F0C850", Walkable: true},
		},
		Enemies: []EnemyTemplate{
			{
				ID: "wild_boar", Name: "Wild Boar", Glyph: "b", FG: "#780028",
				MaxHP: 10, AttackMin: 1, AttackMax: 3,
				SpawnWeights: map[BiomeID]float64{BiomeSummer: 1.0},
			},
		},
		Characters: []CharacterTemplate{
			{ID: "warlock", Name: "Warlock", Glyph: "W", FG: "#B400C8"},
		},
	}
}

func TestNewBuildsLayeredPalette(t *testing.T) {
	raw := validRaw()
	walkable := false
	raw.Biomes[0].Overrides = map[string]TilePatch{
		"player": {FG: "#FFFFFF", Walkable: &walkable},
	}
	raw.Biomes[0].Extras = map[string]RawTile{
		"flower": {Glyph: "*", FG: "#FF00FF", BG: "#149628", Walkable: true},
	}

	cat, err := New(raw)
	require.NoError(t, err)

	def, err := cat.Definition(BiomeSummer)
	require.NoError(t, err)

	// Unique tiles carry their own colors and the grid ground reference.
	grass := def.Tiles["grass"]
	assert.Equal(t, "grass", grass.ID)
	assert.Equal(t, "#149628", grass.BG)
	assert.Equal(t, "grass", grass.Ground)
	assert.True(t, grass.Walkable)

	// Colorless common tiles inherit the ground background, then overrides
	// apply on top.
	player := def.Tiles["player"]
	assert.Equal(t, "#149628", player.BG)
	assert.Equal(t, "#FFFFFF", player.FG)
	assert.False(t, player.Walkable)

	// Extras join the palette unchanged.
	flower := def.Tiles["flower"]
	assert.Equal(t, "*", flower.Glyph)
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Raw)
	}{
		{
			name:   "no biomes",
			mutate: func(r *Raw) { r.Biomes = nil },
		},
		{
			name:   "unknown ground tile",
			mutate: func(r *Raw) { r.Biomes[0].GroundTile = "lava" },
		},
		{
			name: "ground tile not walkable",
			mutate: func(r *Raw) {
				tiles := r.Biomes[0].UniqueTiles
				g := tiles["grass"]
				g.Walkable = false
				tiles["grass"] = g
			},
		},
		{
			name: "unique tile without background",
			mutate: func(r *Raw) {
				tiles := r.Biomes[0].UniqueTiles
				g := tiles["tree"]
				g.BG = ""
				tiles["tree"] = g
			},
		},
		{
			name:   "forest density above one",
			mutate: func(r *Raw) { r.Biomes[0].ForestDensity = 1.5 },
		},
		{
			name:   "inverted forest count range",
			mutate: func(r *Raw) { r.Biomes[0].ForestCount = [2]int{4, 1} },
		},
		{
			name:   "forest tile not in palette",
			mutate: func(r *Raw) { r.Biomes[0].ForestTiles = []string{"pine"} },
		},
		{
			name: "scatter rule references unknown tile",
			mutate: func(r *Raw) {
				r.Biomes[0].ScatterRules = []ScatterRule{{Tile: "pine", CountMin: 1, CountMax: 2}}
			},
		},
		{
			name: "override targets unknown common tile",
			mutate: func(r *Raw) {
				r.Biomes[0].Overrides = map[string]TilePatch{"ghost": {FG: "#FFFFFF"}}
			},
		},
		{
			name:   "duplicate biome",
			mutate: func(r *Raw) { r.Biomes = append(r.Biomes, r.Biomes[0]) },
		},
		{
			name:   "enemy with non-positive hp",
			mutate: func(r *Raw) { r.Enemies[0].MaxHP = 0 },
		},
		{
			name:   "enemy with inverted attack range",
			mutate: func(r *Raw) { r.Enemies[0].AttackMin = 5 },
		},
		{
			name: "spawn weight references unknown biome",
			mutate: func(r *Raw) {
				r.Enemies[0].SpawnWeights = map[BiomeID]float64{"swamp": 1.0}
			},
		},
		{
			name:   "character with empty id",
			mutate: func(r *Raw) { r.Characters[0].ID = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validRaw()
			tt.mutate(&raw)

			_, err := New(raw)
			assert.Error(t, err)
		})
	}
}

func TestDefinitionIsCached(t *testing.T) {
	cat, err := New(validRaw())
	require.NoError(t, err)

	first, err := cat.Definition(BiomeSummer)
	require.NoError(t, err)
	second, err := cat.Definition(BiomeSummer)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	_, err = cat.Definition("swamp")
	assert.Error(t, err)
}

func TestAccessorsStableOrder(t *testing.T) {
	raw := validRaw()
	raw.Enemies = append(raw.Enemies, EnemyTemplate{
		ID: "ant", Name: "Ant", Glyph: "a", FG: "#780028",
		MaxHP: 1, AttackMin: 0, AttackMax: 1,
	})

	cat, err := New(raw)
	require.NoError(t, err)

	enemies := cat.Enemies()
	require.Len(t, enemies, 2)
	assert.Equal(t, "ant", enemies[0].ID)
	assert.Equal(t, "wild_boar", enemies[1].ID)

	chars := cat.Characters()
	require.Len(t, chars, 1)
	assert.Equal(t, "warlock", chars[0].ID)
}

func TestFootprintDetection(t *testing.T) {
	raw := validRaw()
	cat, err := New(raw)
	require.NoError(t, err)

	def, err := cat.Definition(BiomeSummer)
	require.NoError(t, err)
	_, ok := def.Footprint()
	assert.False(t, ok)

	raw = validRaw()
	raw.Biomes[0].Extras = map[string]RawTile{
		FootprintTileKey: {Glyph: "'", FG: "#C8C8E6", BG: "#149628", Walkable: true},
	}
	cat, err = New(raw)
	require.NoError(t, err)

	def, err = cat.Definition(BiomeSummer)
	require.NoError(t, err)
	tile, ok := def.Footprint()
	assert.True(t, ok)
	assert.Equal(t, FootprintTileKey, tile.ID)
}
