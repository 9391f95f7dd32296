package db

import (
	"context"
)

const listBiomes = `
SELECT biome_id, ground_tile, forest_count_min, forest_count_max,
       forest_radius_min, forest_radius_max, forest_density
FROM biomes
ORDER BY biome_id
`

func (q *Queries) ListBiomes(ctx context.Context) ([]Biome, error) {
	rows, err := q.db.QueryContext(ctx, listBiomes)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Biome
	for rows.Next() {
		var i Biome
		if err := rows.Scan(
			&i.BiomeID,
			&i.GroundTile,
			&i.ForestCountMin,
			&i.ForestCountMax,
			&i.ForestRadiusMin,
			&i.ForestRadiusMax,
			&i.ForestDensity,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const listBiomeTiles = `
SELECT biome_id, name, glyph, fg, bg, walkable, sprite, kind
FROM biome_tiles
ORDER BY biome_id, name
`

func (q *Queries) ListBiomeTiles(ctx context.Context) ([]BiomeTile, error) {
	rows, err := q.db.QueryContext(ctx, listBiomeTiles)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []BiomeTile
	for rows.Next() {
		var i BiomeTile
		if err := rows.Scan(
			&i.BiomeID,
			&i.Name,
			&i.Glyph,
			&i.Fg,
			&i.Bg,
			&i.Walkable,
			&i.Sprite,
			&i.Kind,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const listCommonTiles = `
SELECT name, glyph, fg, bg, walkable, sprite
FROM common_tiles
ORDER BY name
`

func (q *Queries) ListCommonTiles(ctx context.Context) ([]CommonTile, error) {
	rows, err := q.db.QueryContext(ctx, listCommonTiles)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CommonTile
	for rows.Next() {
		var i CommonTile
		if err := rows.Scan(
			&i.Name,
			&i.Glyph,
			&i.Fg,
			&i.Bg,
			&i.Walkable,
			&i.Sprite,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const listTileOverrides = `
SELECT biome_id, name, glyph, fg, bg, walkable
FROM tile_overrides
ORDER BY biome_id, name
`

func (q *Queries) ListTileOverrides(ctx context.Context) ([]TileOverride, error) {
	rows, err := q.db.QueryContext(ctx, listTileOverrides)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []TileOverride
	for rows.Next() {
		var i TileOverride
		if err := rows.Scan(
			&i.BiomeID,
			&i.Name,
			&i.Glyph,
			&i.Fg,
			&i.Bg,
			&i.Walkable,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const listForestTiles = `
SELECT biome_id, tile_name
FROM biome_forest_tiles
ORDER BY biome_id, tile_name
`

func (q *Queries) ListForestTiles(ctx context.Context) ([]BiomeForestTile, error) {
	rows, err := q.db.QueryContext(ctx, listForestTiles)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []BiomeForestTile
	for rows.Next() {
		var i BiomeForestTile
		if err := rows.Scan(&i.BiomeID, &i.TileName); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const listScatterRules = `
SELECT biome_id, position, tile_name, count_min, count_max, avoid_border
FROM scatter_rules
ORDER BY biome_id, position
`

func (q *Queries) ListScatterRules(ctx context.Context) ([]ScatterRule, error) {
	rows, err := q.db.QueryContext(ctx, listScatterRules)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ScatterRule
	for rows.Next() {
		var i ScatterRule
		if err := rows.Scan(
			&i.BiomeID,
			&i.Position,
			&i.TileName,
			&i.CountMin,
			&i.CountMax,
			&i.AvoidBorder,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const listEnemies = `
SELECT enemy_id, name, glyph, fg, bg, hp, attack_min, attack_max,
       reward_talents, strength, agility, intellect, tile
FROM enemies
ORDER BY enemy_id
`

func (q *Queries) ListEnemies(ctx context.Context) ([]Enemy, error) {
	rows, err := q.db.QueryContext(ctx, listEnemies)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Enemy
	for rows.Next() {
		var i Enemy
		if err := rows.Scan(
			&i.EnemyID,
			&i.Name,
			&i.Glyph,
			&i.Fg,
			&i.Bg,
			&i.Hp,
			&i.AttackMin,
			&i.AttackMax,
			&i.RewardTalents,
			&i.Strength,
			&i.Agility,
			&i.Intellect,
			&i.Tile,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const listEnemySpawnWeights = `
SELECT enemy_id, biome_id, weight
FROM enemy_spawn_weights
ORDER BY enemy_id, biome_id
`

func (q *Queries) ListEnemySpawnWeights(ctx context.Context) ([]EnemySpawnWeight, error) {
	rows, err := q.db.QueryContext(ctx, listEnemySpawnWeights)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []EnemySpawnWeight
	for rows.Next() {
		var i EnemySpawnWeight
		if err := rows.Scan(&i.EnemyID, &i.BiomeID, &i.Weight); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const listCharacters = `
SELECT character_id, name, glyph, fg, bg, strength, agility, intellect, tile
FROM characters
ORDER BY character_id
`

func (q *Queries) ListCharacters(ctx context.Context) ([]Character, error) {
	rows, err := q.db.QueryContext(ctx, listCharacters)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Character
	for rows.Next() {
		var i Character
		if err := rows.Scan(
			&i.CharacterID,
			&i.Name,
			&i.Glyph,
			&i.Fg,
			&i.Bg,
			&i.Strength,
			&i.Agility,
			&i.Intellect,
			&i.Tile,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
