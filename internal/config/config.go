package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	ServerPort string
	DBPath     string
	LogLevel   string
	LeagueSize int
	SimSeed    int64 // 0 means seed from the wall clock
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		DBPath:     getEnv("DB_PATH", "clubsim.db"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LeagueSize: getEnvInt("LEAGUE_SIZE", 16),
		SimSeed:    int64(getEnvInt("SIM_SEED", 0)),
	}

	if cfg.LeagueSize < 2 {
		return nil, fmt.Errorf("LEAGUE_SIZE must be at least 2, got %d", cfg.LeagueSize)
	}

	logger.Info().
		Str("server_port", cfg.ServerPort).
		Str("db_path", cfg.DBPath).
		Str("log_level", cfg.LogLevel).
		Int("league_size", cfg.LeagueSize).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

var Module = fx.Provide(Load)
