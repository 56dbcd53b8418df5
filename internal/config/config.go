package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

type BetTier struct {
	ID      string `json:"id"`
	BaseBet int64  `json:"base_bet"`
}

type GameConfig struct {
	TaxRate             float64   `json:"tax_rate"`
	DefaultTier         string    `json:"default_tier"`
	Tiers               []BetTier `json:"tiers"`
	TurnDurationSeconds int       `json:"turn_duration_seconds"`
	// DefaultTargetTricks is the trick count a team must reach to win a room
	// that did not specify its own target.
	DefaultTargetTricks int `json:"default_target_tricks"`
	// BotAutoFillDelaySeconds configures how many seconds to wait before
	// filling empty seats with bots in a solo human lobby.
	BotAutoFillDelaySeconds int `json:"bot_auto_fill_delay_seconds"`
	// BotPlayDelayMinMs/BotPlayDelayMaxMs bound the artificial pause before a
	// bot takes its turn, so play feels paced rather than instantaneous.
	BotPlayDelayMinMs int `json:"bot_play_delay_min_ms"`
	BotPlayDelayMaxMs int `json:"bot_play_delay_max_ms"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadEnv loads environment variables from a .env file if one exists at the
// given path. A missing file is not an error; deployments may configure the
// process environment directly.
func LoadEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// EnvInt reads an integer environment variable, returning fallback when the
// variable is unset or malformed.
func EnvInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		var c GameConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration.
func GetGameConfig() *GameConfig {
	return cfg
}

// GetTargetTricks returns the configured default target tricks, or 7 when no
// config has been loaded.
func GetTargetTricks() int {
	if cfg == nil || cfg.DefaultTargetTricks <= 0 {
		return 7
	}
	return cfg.DefaultTargetTricks
}

// GetBaseBet returns the base bet for a given tier ID, or the default if not found.
func GetBaseBet(tierID string) int64 {
	if cfg == nil {
		return 100 // Safe default
	}

	target := tierID
	if target == "" {
		target = cfg.DefaultTier
	}

	for _, tier := range cfg.Tiers {
		if tier.ID == target {
			return tier.BaseBet
		}
	}

	// Fallback to default tier if specific ID not found
	for _, tier := range cfg.Tiers {
		if tier.ID == cfg.DefaultTier {
			return tier.BaseBet
		}
	}

	return 100
}
