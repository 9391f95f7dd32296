package catalog

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/log"
)

// RawTile is a palette entry before layering. An empty BG means the entry is
// colorless and inherits the biome ground background.
type RawTile struct {
	Glyph    string
	FG       string
	BG       string
	Walkable bool
	Sprite   string
}

// TilePatch overrides selected fields of a common tile for one biome.
// Empty strings keep the common value; Walkable is tri-state.
type TilePatch struct {
	Glyph    string
	FG       string
	BG       string
	Walkable *bool
}

// RawBiome is the unprocessed configuration of a single biome.
type RawBiome struct {
	ID            BiomeID
	GroundTile    string
	UniqueTiles   map[string]RawTile
	Overrides     map[string]TilePatch
	Extras        map[string]RawTile
	ForestTiles   []string
	ForestCount   [2]int
	ForestRadius  [2]int
	ForestDensity float64
	ScatterRules  []ScatterRule
}

// Raw is the full unprocessed catalog as read from storage.
type Raw struct {
	Biomes      []RawBiome
	CommonTiles map[string]RawTile
	Enemies     []EnemyTemplate
	Characters  []CharacterTemplate
}

// Catalog holds every biome definition and creature template, fully built and
// validated. It is immutable after New returns; lookups are cached reads.
type Catalog struct {
	biomes     map[BiomeID]BiomeDefinition
	biomeIDs   []BiomeID
	enemies    map[string]EnemyTemplate
	enemyIDs   []string
	characters map[string]CharacterTemplate
	charIDs    []string
}

// New builds a catalog from raw data, constructing and validating every biome
// definition eagerly so later lookups can never fail.
func New(raw Raw) (*Catalog, error) {
	if len(raw.Biomes) == 0 {
		return nil, fmt.Errorf("catalog has no biomes")
	}

	c := &Catalog{
		biomes:     make(map[BiomeID]BiomeDefinition, len(raw.Biomes)),
		enemies:    make(map[string]EnemyTemplate, len(raw.Enemies)),
		characters: make(map[string]CharacterTemplate, len(raw.Characters)),
	}

	for _, rb := range raw.Biomes {
		if _, dup := c.biomes[rb.ID]; dup {
			return nil, fmt.Errorf("duplicate biome %q", rb.ID)
		}
		def, err := buildBiome(rb, raw.CommonTiles)
		if err != nil {
			return nil, fmt.Errorf("biome %q: %w", rb.ID, err)
		}
		c.biomes[rb.ID] = def
		c.biomeIDs = append(c.biomeIDs, rb.ID)
	}
	sort.Slice(c.biomeIDs, func(i, j int) bool { return c.biomeIDs[i] < c.biomeIDs[j] })

	for _, e := range raw.Enemies {
		if err := validateEnemy(e, c.biomes); err != nil {
			return nil, fmt.Errorf("enemy %q: %w", e.ID, err)
		}
		if _, dup := c.enemies[e.ID]; dup {
			return nil, fmt.Errorf("duplicate enemy %q", e.ID)
		}
		c.enemies[e.ID] = e
		c.enemyIDs = append(c.enemyIDs, e.ID)
	}
	sort.Strings(c.enemyIDs)

	for _, ch := range raw.Characters {
		if ch.ID == "" || ch.Name == "" {
			return nil, fmt.Errorf("character with empty id or name")
		}
		if _, dup := c.characters[ch.ID]; dup {
			return nil, fmt.Errorf("duplicate character %q", ch.ID)
		}
		c.characters[ch.ID] = ch
		c.charIDs = append(c.charIDs, ch.ID)
	}
	sort.Strings(c.charIDs)

	log.Debug("Catalog built",
		"biomes", len(c.biomes),
		"enemies", len(c.enemies),
		"characters", len(c.characters),
	)
	return c, nil
}

// buildBiome layers unique tiles, then the common palette (inheriting the
// ground background for colorless entries and applying per-biome overrides),
// then extra decorative tiles.
func buildBiome(rb RawBiome, common map[string]RawTile) (BiomeDefinition, error) {
	if rb.GroundTile == "" {
		return BiomeDefinition{}, fmt.Errorf("no ground tile configured")
	}

	tiles := make(map[string]Tile, len(rb.UniqueTiles)+len(common)+len(rb.Extras))

	for name, raw := range rb.UniqueTiles {
		if raw.BG == "" {
			return BiomeDefinition{}, fmt.Errorf("unique tile %q has no background", name)
		}
		tiles[name] = builtTile(name, raw, rb.GroundTile)
	}

	ground, ok := tiles[rb.GroundTile]
	if !ok {
		return BiomeDefinition{}, fmt.Errorf("ground tile %q not among unique tiles", rb.GroundTile)
	}
	if !ground.Walkable {
		return BiomeDefinition{}, fmt.Errorf("ground tile %q is not walkable", rb.GroundTile)
	}

	for name := range rb.Overrides {
		if _, ok := common[name]; !ok {
			return BiomeDefinition{}, fmt.Errorf("override targets unknown common tile %q", name)
		}
	}

	for name, base := range common {
		raw := base
		if raw.BG == "" {
			raw.BG = ground.BG
		}
		if patch, ok := rb.Overrides[name]; ok {
			if patch.Glyph != "" {
				raw.Glyph = patch.Glyph
			}
			if patch.FG != "" {
				raw.FG = patch.FG
			}
			if patch.BG != "" {
				raw.BG = patch.BG
			}
			if patch.Walkable != nil {
				raw.Walkable = *patch.Walkable
			}
		}
		tiles[name] = builtTile(name, raw, rb.GroundTile)
	}

	for name, raw := range rb.Extras {
		if raw.BG == "" {
			return BiomeDefinition{}, fmt.Errorf("extra tile %q has no background", name)
		}
		tiles[name] = builtTile(name, raw, rb.GroundTile)
	}

	if rb.ForestDensity < 0 || rb.ForestDensity > 1 {
		return BiomeDefinition{}, fmt.Errorf("forest density %v outside [0,1]", rb.ForestDensity)
	}
	if err := validRange("forest count", rb.ForestCount); err != nil {
		return BiomeDefinition{}, err
	}
	if err := validRange("forest radius", rb.ForestRadius); err != nil {
		return BiomeDefinition{}, err
	}
	for _, name := range rb.ForestTiles {
		if _, ok := tiles[name]; !ok {
			return BiomeDefinition{}, fmt.Errorf("forest tile %q not in palette", name)
		}
	}
	for _, rule := range rb.ScatterRules {
		if _, ok := tiles[rule.Tile]; !ok {
			return BiomeDefinition{}, fmt.Errorf("scatter rule references unknown tile %q", rule.Tile)
		}
		if rule.CountMin < 0 || rule.CountMax < rule.CountMin {
			return BiomeDefinition{}, fmt.Errorf("scatter rule %q has invalid count range [%d,%d]", rule.Tile, rule.CountMin, rule.CountMax)
		}
	}

	forestTiles := append([]string(nil), rb.ForestTiles...)
	scatterRules := append([]ScatterRule(nil), rb.ScatterRules...)

	return BiomeDefinition{
		ID:              rb.ID,
		GroundTile:      rb.GroundTile,
		Tiles:           tiles,
		ForestTiles:     forestTiles,
		ForestCountMin:  rb.ForestCount[0],
		ForestCountMax:  rb.ForestCount[1],
		ForestRadiusMin: rb.ForestRadius[0],
		ForestRadiusMax: rb.ForestRadius[1],
		ForestDensity:   rb.ForestDensity,
		ScatterRules:    scatterRules,
	}, nil
}

func builtTile(name string, raw RawTile, ground string) Tile {
	return Tile{
		ID:       name,
		Glyph:    raw.Glyph,
		FG:       raw.FG,
		BG:       raw.BG,
		Walkable: raw.Walkable,
		Ground:   ground,
		Sprite:   raw.Sprite,
	}
}

func validRange(what string, r [2]int) error {
	if r[0] < 0 || r[1] < r[0] {
		return fmt.Errorf("%s range [%d,%d] is invalid", what, r[0], r[1])
	}
	return nil
}

func validateEnemy(e EnemyTemplate, biomes map[BiomeID]BiomeDefinition) error {
	if e.ID == "" || e.Name == "" {
		return fmt.Errorf("empty id or name")
	}
	if e.MaxHP <= 0 {
		return fmt.Errorf("non-positive hp %d", e.MaxHP)
	}
	if e.AttackMin < 0 || e.AttackMax < e.AttackMin {
		return fmt.Errorf("invalid attack range [%d,%d]", e.AttackMin, e.AttackMax)
	}
	for biome, weight := range e.SpawnWeights {
		if _, ok := biomes[biome]; !ok {
			return fmt.Errorf("spawn weight references unknown biome %q", biome)
		}
		if weight < 0 {
			return fmt.Errorf("negative spawn weight %v for biome %q", weight, biome)
		}
	}
	return nil
}

// Definition returns the cached biome definition. Calling it twice with the
// same id returns identical results.
func (c *Catalog) Definition(id BiomeID) (BiomeDefinition, error) {
	def, ok := c.biomes[id]
	if !ok {
		return BiomeDefinition{}, fmt.Errorf("unknown biome %q", id)
	}
	return def, nil
}

// Has reports whether a biome is defined.
func (c *Catalog) Has(id BiomeID) bool {
	_, ok := c.biomes[id]
	return ok
}

// BiomeIDs lists every defined biome in stable order.
func (c *Catalog) BiomeIDs() []BiomeID {
	return append([]BiomeID(nil), c.biomeIDs...)
}

// Enemies lists every enemy template in stable id order.
func (c *Catalog) Enemies() []EnemyTemplate {
	out := make([]EnemyTemplate, 0, len(c.enemyIDs))
	for _, id := range c.enemyIDs {
		out = append(out, c.enemies[id])
	}
	return out
}

func (c *Catalog) Enemy(id string) (EnemyTemplate, error) {
	e, ok := c.enemies[id]
	if !ok {
		return EnemyTemplate{}, fmt.Errorf("unknown enemy %q", id)
	}
	return e, nil
}

// Characters lists every character template in stable id order.
func (c *Catalog) Characters() []CharacterTemplate {
	out := make([]CharacterTemplate, 0, len(c.charIDs))
	for _, id := range c.charIDs {
		out = append(out, c.characters[id])
	}
	return out
}

func (c *Catalog) Character(id string) (CharacterTemplate, error) {
	ch, ok := c.characters[id]
	if !ok {
		return CharacterTemplate{}, fmt.Errorf("unknown character %q", id)
	}
	return ch, nil
}
