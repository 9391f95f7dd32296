package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logging  LoggingConfig
	World    WorldConfig
	Movement MovementConfig
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Path            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	MigrationsPath  string
}

type LoggingConfig struct {
	Level      string
	Format     string
	Structured bool
}

// WorldConfig holds every tunable of world generation. The world grid is
// Columns x Rows screens, each screen ScreenWidth x ScreenHeight tiles.
type WorldConfig struct {
	Columns           int
	Rows              int
	ScreenWidth       int
	ScreenHeight      int
	ViewportWidth     int
	ViewportHeight    int
	TransitionScreens int
	PlacementAttempts int
	CharacterCount    int
	FootprintCap      int
	Seed              int64
}

type MovementConfig struct {
	BaseSpeed    float64
	AgilityBonus float64
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            getEnvStr("PORT", "8080"),
			ReadTimeout:     getEnvDuration("READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:     getEnvDuration("IDLE_TIMEOUT", 120*time.Second),
			ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			Path:            getEnvStr("DB_PATH", "./catalog.db"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
			MigrationsPath:  getEnvStr("DB_MIGRATIONS_PATH", "./internal/db/migrations"),
		},
		Logging: LoggingConfig{
			Level:      getEnvStr("LOG_LEVEL", "info"),
			Format:     getEnvStr("LOG_FORMAT", "json"),
			Structured: getEnvBool("LOG_STRUCTURED", true),
		},
		World: WorldConfig{
			Columns:           getEnvInt("WORLD_COLUMNS", 50),
			Rows:              getEnvInt("WORLD_ROWS", 50),
			ScreenWidth:       getEnvInt("WORLD_SCREEN_WIDTH", 85),
			ScreenHeight:      getEnvInt("WORLD_SCREEN_HEIGHT", 50),
			ViewportWidth:     getEnvInt("VIEWPORT_WIDTH", 85),
			ViewportHeight:    getEnvInt("VIEWPORT_HEIGHT", 50),
			TransitionScreens: getEnvInt("WORLD_TRANSITION_SCREENS", 4),
			PlacementAttempts: getEnvInt("WORLD_PLACEMENT_ATTEMPTS", 500),
			CharacterCount:    getEnvInt("WORLD_CHARACTER_COUNT", 5),
			FootprintCap:      getEnvInt("WORLD_FOOTPRINT_CAP", 2),
			Seed:              getEnvInt64("WORLD_SEED", 0),
		},
		Movement: MovementConfig{
			BaseSpeed:    getEnvFloat("MOVE_BASE_SPEED", 3.0),
			AgilityBonus: getEnvFloat("MOVE_AGILITY_BONUS", 0.35),
		},
	}
}

func getEnvStr(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
