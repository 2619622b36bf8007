package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"scifoot/internal/constants"
)

type Config struct {
	DBPath     string
	ServerPort string
	LogLevel   string

	GoalBaseRate   float64
	SimSpeed       float64
	SimTick        float64
	InventorySlots int
	SimWorkers     int

	RateLimitRPS   float64
	RateLimitBurst int
	RequestTimeout time.Duration
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		DBPath:         getEnv("DB_PATH", "scifoot.db"),
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		GoalBaseRate:   getEnvFloat("GOAL_BASE_RATE", constants.GoalBaseRate),
		SimSpeed:       getEnvFloat("SIM_SPEED", constants.SimSpeed),
		SimTick:        getEnvFloat("SIM_TICK", constants.SimTick),
		InventorySlots: getEnvInt("INVENTORY_SLOTS", constants.InventorySlots),
		SimWorkers:     getEnvInt("SIM_WORKERS", constants.SimWorkers),
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", constants.RateLimitRPS),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", constants.RateLimitBurst),
		RequestTimeout: constants.RequestTimeout,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Info().
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Float64("goal_base_rate", cfg.GoalBaseRate).
		Float64("sim_speed", cfg.SimSpeed).
		Float64("sim_tick", cfg.SimTick).
		Int("inventory_slots", cfg.InventorySlots).
		Int("sim_workers", cfg.SimWorkers).
		Msg("configuration loaded")

	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c *Config) Validate() error {
	for name, v := range map[string]float64{
		"GOAL_BASE_RATE": c.GoalBaseRate,
		"SIM_SPEED":      c.SimSpeed,
		"SIM_TICK":       c.SimTick,
		"RATE_LIMIT_RPS": c.RateLimitRPS,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s must be finite, got %v", name, v)
		}
	}

	switch {
	case c.GoalBaseRate <= 0:
		return fmt.Errorf("GOAL_BASE_RATE must be positive, got %v", c.GoalBaseRate)
	case c.SimSpeed <= 0:
		return fmt.Errorf("SIM_SPEED must be positive, got %v", c.SimSpeed)
	case c.SimTick <= 0:
		return fmt.Errorf("SIM_TICK must be positive, got %v", c.SimTick)
	case c.InventorySlots <= 0:
		return fmt.Errorf("INVENTORY_SLOTS must be positive, got %d", c.InventorySlots)
	case c.SimWorkers <= 0:
		return fmt.Errorf("SIM_WORKERS must be positive, got %d", c.SimWorkers)
	case c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0:
		return fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return fallback
	}
	return v
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

var Module = fx.Provide(Load)
