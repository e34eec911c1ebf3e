// Package config loads runtime configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Discord DiscordConfig `envPrefix:"DISCORD_"`
	Redis   RedisConfig   `envPrefix:"REDIS_"`

	// RosterID keys the roster, live template and drafts in the repositories
	RosterID string `env:"RAID_ROSTER_ID" envDefault:"default"`

	// SeedFile overrides the bundled seed roster when set
	SeedFile string `env:"RAID_SEED_FILE"`

	// DraftTTL bounds how long an abandoned edit working copy is kept
	DraftTTL time.Duration `env:"RAID_DRAFT_TTL" envDefault:"2h"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string `env:"TOKEN"`
	AppID   string `env:"APP_ID"`
	GuildID string `env:"GUILD_ID"` // Optional: for guild-specific commands
}

// RedisConfig holds Redis-specific configuration. An empty URL selects the
// in-memory repositories.
type RedisConfig struct {
	URL string `env:"URL"`
}

// Load reads an optional .env file and parses the environment
func Load() (*Config, error) {
	// A missing .env file is normal outside local development
	_ = godotenv.Load()

	return Parse()
}

// Parse parses the current environment without touching .env files
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.RosterID == "" {
		return nil, errors.New("RAID_ROSTER_ID cannot be empty")
	}

	if cfg.DraftTTL < 0 {
		return nil, errors.New("RAID_DRAFT_TTL cannot be negative")
	}

	return cfg, nil
}

// PersistentStorage reports whether data outlives the process
func (c *Config) PersistentStorage() bool {
	return c.Redis.URL != ""
}

// ValidateDiscord checks the fields the Discord bot cannot start without
func (c *Config) ValidateDiscord() error {
	if c.Discord.Token == "" {
		return errors.New("DISCORD_TOKEN is required")
	}
	return nil
}
