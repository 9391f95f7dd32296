package db

import "database/sql"

type Biome struct {
	BiomeID         string
	GroundTile      string
	ForestCountMin  int64
	ForestCountMax  int64
	ForestRadiusMin int64
	ForestRadiusMax int64
	ForestDensity   float64
}

// BiomeTile is a tile belonging to a single biome palette. Kind is either
// "unique" (base palette) or "extra" (decorative additions layered last).
type BiomeTile struct {
	BiomeID  string
	Name     string
	Glyph    string
	Fg       string
	Bg       sql.NullString
	Walkable int64
	Sprite   sql.NullString
	Kind     string
}

// CommonTile is shared across all biomes. A NULL background inherits the
// biome's ground background at catalog build time.
type CommonTile struct {
	Name     string
	Glyph    string
	Fg       string
	Bg       sql.NullString
	Walkable int64
	Sprite   sql.NullString
}

type TileOverride struct {
	BiomeID  string
	Name     string
	Glyph    sql.NullString
	Fg       sql.NullString
	Bg       sql.NullString
	Walkable sql.NullInt64
}

type BiomeForestTile struct {
	BiomeID  string
	TileName string
}

type ScatterRule struct {
	BiomeID     string
	Position    int64
	TileName    string
	CountMin    int64
	CountMax    int64
	AvoidBorder int64
}

type Enemy struct {
	EnemyID       string
	Name          string
	Glyph         string
	Fg            string
	Bg            string
	Hp            int64
	AttackMin     int64
	AttackMax     int64
	RewardTalents int64
	Strength      int64
	Agility       int64
	Intellect     int64
	Tile          sql.NullString
}

type EnemySpawnWeight struct {
	EnemyID string
	BiomeID string
	Weight  float64
}

type Character struct {
	CharacterID string
	Name        string
	Glyph       string
	Fg          string
	Bg          string
	Strength    int64
	Agility     int64
	Intellect   int64
	Tile        sql.NullString
}
