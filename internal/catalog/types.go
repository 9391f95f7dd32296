package catalog

// BiomeID identifies a biome. Values are validated once at catalog load;
// the three latitude bands below ship in the seed data.
type BiomeID string

const (
	BiomeWinter  BiomeID = "winter"
	BiomeSummer  BiomeID = "summer"
	BiomeDrought BiomeID = "drought"
)

// FootprintTileKey is the palette entry rendered as a player footprint decal.
// Only biomes whose palette carries it are footprint-capable.
const FootprintTileKey = "footprint"

// Tile is a value type; every grid cell holds its own copy.
type Tile struct {
	ID       string `json:"id"`
	Glyph    string `json:"glyph"`
	FG       string `json:"fg"`
	BG       string `json:"bg"`
	Walkable bool   `json:"walkable"`
	Ground   string `json:"ground"`
	Sprite   string `json:"sprite,omitempty"`
}

// ScatterRule places a random count of a decorative tile across a map.
type ScatterRule struct {
	Tile        string
	CountMin    int
	CountMax    int
	AvoidBorder bool
}

// BiomeDefinition is the complete description of a biome tileset and its
// generation behaviour. Built once per biome at catalog load.
type BiomeDefinition struct {
	ID              BiomeID
	GroundTile      string
	Tiles           map[string]Tile
	ForestTiles     []string
	ForestCountMin  int
	ForestCountMax  int
	ForestRadiusMin int
	ForestRadiusMax int
	ForestDensity   float64
	ScatterRules    []ScatterRule
}

// Footprint reports whether the biome palette carries a footprint tile.
func (d BiomeDefinition) Footprint() (Tile, bool) {
	tile, ok := d.Tiles[FootprintTileKey]
	return tile, ok
}

type Stats struct {
	Strength  int `json:"str"`
	Agility   int `json:"agi"`
	Intellect int `json:"int"`
}

// EnemyTemplate describes a hostile species as loaded from the catalog.
type EnemyTemplate struct {
	ID            string
	Name          string
	Glyph         string
	FG            string
	BG            string
	MaxHP         int
	AttackMin     int
	AttackMax     int
	RewardTalents int
	Stats         Stats
	TileKey       string
	SpawnWeights  map[BiomeID]float64
}

// CharacterTemplate describes a non-hostile character species.
type CharacterTemplate struct {
	ID      string
	Name    string
	Glyph   string
	FG      string
	BG      string
	Stats   Stats
	TileKey string
}
