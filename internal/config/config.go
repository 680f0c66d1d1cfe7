package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Listen            string  `yaml:"listen"`
	DatabaseDSN       string  `yaml:"database_dsn"`
	SaveKey           string  `yaml:"save_key"`
	AutosaveSeconds   int     `yaml:"autosave_seconds"`
	GameSpeed         float64 `yaml:"game_speed"`
	BaseDropChance    float64 `yaml:"base_drop_chance"`
	MaxBulkIterations int64   `yaml:"max_bulk_iterations"`
}

func Default() Config {
	return Config{
		Listen:          ":8080",
		SaveKey:         "chronoClickerSave",
		AutosaveSeconds: 30,
		GameSpeed:       1,
		BaseDropChance:  0.005,
	}
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. A missing file is not an error; the defaults stand.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	applyEnv(&cfg)
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("CHRONOCLICKER_LISTEN")); v != "" {
		cfg.Listen = v
	}
	if v := strings.TrimSpace(os.Getenv("CHRONOCLICKER_DB_DSN")); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := strings.TrimSpace(os.Getenv("CHRONOCLICKER_SAVE_KEY")); v != "" {
		cfg.SaveKey = v
	}
	cfg.AutosaveSeconds = intEnv("CHRONOCLICKER_AUTOSAVE_SECONDS", cfg.AutosaveSeconds)
	cfg.GameSpeed = floatEnv("CHRONOCLICKER_GAME_SPEED", cfg.GameSpeed)
	cfg.BaseDropChance = floatEnv("CHRONOCLICKER_BASE_DROP_CHANCE", cfg.BaseDropChance)
}

func (c Config) validate() error {
	if c.Listen == "" {
		return fmt.Errorf("listen address must not be empty")
	}
	if c.AutosaveSeconds <= 0 {
		return fmt.Errorf("autosave_seconds must be positive, got %d", c.AutosaveSeconds)
	}
	if c.GameSpeed <= 0 {
		return fmt.Errorf("game_speed must be positive, got %v", c.GameSpeed)
	}
	if c.BaseDropChance < 0 || c.BaseDropChance > 1 {
		return fmt.Errorf("base_drop_chance must be in [0,1], got %v", c.BaseDropChance)
	}
	return nil
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func floatEnv(key string, fallback float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
