// Package config loads game settings from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Coreven01/euchre/engine"
)

// Config holds everything the cmd layer needs to assemble a game.
type Config struct {
	Rules     engine.GameRules
	Seed      uint64
	HumanSeat int // 1-4, or 0 to watch four AI seats
	LogLevel  logrus.Level
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first if present; real environment
// variables win over it.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Rules:     engine.DefaultGameRules(),
		Seed:      uint64(time.Now().UnixNano()),
		HumanSeat: 1,
		LogLevel:  logrus.WarnLevel,
	}

	switch v := os.Getenv("EUCHRE_DIFFICULTY"); v {
	case "", "high":
		cfg.Rules.Difficulty = engine.DifficultyHigh
	case "medium":
		cfg.Rules.Difficulty = engine.DifficultyMedium
	case "low":
		cfg.Rules.Difficulty = engine.DifficultyLow
	default:
		return cfg, fmt.Errorf("config: invalid EUCHRE_DIFFICULTY %q", v)
	}

	if v := os.Getenv("EUCHRE_POINTS_TO_WIN"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return cfg, fmt.Errorf("config: invalid EUCHRE_POINTS_TO_WIN %q", v)
		}
		cfg.Rules.PointsToWin = n
	}

	var err error
	if cfg.Rules.AllowLoner, err = boolEnv("EUCHRE_ALLOW_LONER", cfg.Rules.AllowLoner); err != nil {
		return cfg, err
	}
	if cfg.Rules.AutoFollowSuit, err = boolEnv("EUCHRE_AUTO_FOLLOW_SUIT", cfg.Rules.AutoFollowSuit); err != nil {
		return cfg, err
	}
	if cfg.Rules.StickTheDealer, err = boolEnv("EUCHRE_STICK_THE_DEALER", cfg.Rules.StickTheDealer); err != nil {
		return cfg, err
	}

	if v := os.Getenv("EUCHRE_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("config: invalid EUCHRE_SEED %q", v)
		}
		cfg.Seed = seed
	}

	if v := os.Getenv("EUCHRE_HUMAN_SEAT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > engine.NumSeats {
			return cfg, fmt.Errorf("config: invalid EUCHRE_HUMAN_SEAT %q", v)
		}
		cfg.HumanSeat = n
	}

	if v := os.Getenv("EUCHRE_LOG_LEVEL"); v != "" {
		lvl, err := logrus.ParseLevel(v)
		if err != nil {
			return cfg, fmt.Errorf("config: invalid EUCHRE_LOG_LEVEL %q", v)
		}
		cfg.LogLevel = lvl
	}

	return cfg, nil
}

func boolEnv(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("config: invalid %s %q", key, v)
	}
	return b, nil
}
