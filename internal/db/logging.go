package db

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LoggingQueries wraps Queries to add debug logging around catalog reads.
type LoggingQueries struct {
	*Queries
}

func NewLoggingQueries(db DBTX) *LoggingQueries {
	return &LoggingQueries{
		Queries: New(db),
	}
}

func (lq *LoggingQueries) logQuery(queryName string, start time.Time, count int, err error) {
	duration := time.Since(start)

	if err != nil {
		log.Debug("Database query failed",
			"query", queryName,
			"duration", duration,
			"error", err,
		)
	} else {
		log.Debug("Database query executed",
			"query", queryName,
			"duration", duration,
			"rows", count,
		)
	}
}

func (lq *LoggingQueries) ListBiomes(ctx context.Context) ([]Biome, error) {
	start := time.Now()
	items, err := lq.Queries.ListBiomes(ctx)
	lq.logQuery("ListBiomes", start, len(items), err)
	return items, err
}

func (lq *LoggingQueries) ListBiomeTiles(ctx context.Context) ([]BiomeTile, error) {
	start := time.Now()
	items, err := lq.Queries.ListBiomeTiles(ctx)
	lq.logQuery("ListBiomeTiles", start, len(items), err)
	return items, err
}

func (lq *LoggingQueries) ListCommonTiles(ctx context.Context) ([]CommonTile, error) {
	start := time.Now()
	items, err := lq.Queries.ListCommonTiles(ctx)
	lq.logQuery("ListCommonTiles", start, len(items), err)
	return items, err
}

func (lq *LoggingQueries) ListTileOverrides(ctx context.Context) ([]TileOverride, error) {
	start := time.Now()
	items, err := lq.Queries.ListTileOverrides(ctx)
	lq.logQuery("ListTileOverrides", start, len(items), err)
	return items, err
}

func (lq *LoggingQueries) ListForestTiles(ctx context.Context) ([]BiomeForestTile, error) {
	start := time.Now()
	items, err := lq.Queries.ListForestTiles(ctx)
	lq.logQuery("ListForestTiles", start, len(items), err)
	return items, err
}

func (lq *LoggingQueries) ListScatterRules(ctx context.Context) ([]ScatterRule, error) {
	start := time.Now()
	items, err := lq.Queries.ListScatterRules(ctx)
	lq.logQuery("ListScatterRules", start, len(items), err)
	return items, err
}

func (lq *LoggingQueries) ListEnemies(ctx context.Context) ([]Enemy, error) {
	start := time.Now()
	items, err := lq.Queries.ListEnemies(ctx)
	lq.logQuery("ListEnemies", start, len(items), err)
	return items, err
}

func (lq *LoggingQueries) ListEnemySpawnWeights(ctx context.Context) ([]EnemySpawnWeight, error) {
	start := time.Now()
	items, err := lq.Queries.ListEnemySpawnWeights(ctx)
	lq.logQuery("ListEnemySpawnWeights", start, len(items), err)
	return items, err
}

func (lq *LoggingQueries) ListCharacters(ctx context.Context) ([]Character, error) {
	start := time.Now()
	items, err := lq.Queries.ListCharacters(ctx)
	lq.logQuery("ListCharacters", start, len(items), err)
	return items, err
}
