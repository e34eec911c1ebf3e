package roster

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/raidtemplate/internal/models"
)

const (
	// Key prefix for Redis
	rosterKeyPrefix = "roster:"
)

// Config holds configuration for the Redis roster repository
type Config struct {
	// Redis client
	RedisClient redis.UniversalClient
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client redis.UniversalClient
}

// NewRedis creates a new Redis-backed roster repository
func NewRedis(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func rosterKey(id string) string {
	return rosterKeyPrefix + id
}

// SaveRoster persists a roster to Redis
func (r *redisRepository) SaveRoster(ctx context.Context, input *SaveRosterInput) error {
	if input == nil || input.Roster == nil {
		return errors.New("input and roster cannot be nil")
	}

	if input.Roster.ID == "" {
		return errors.New("roster ID cannot be empty")
	}

	rosterJSON, err := json.Marshal(input.Roster)
	if err != nil {
		return fmt.Errorf("failed to marshal roster: %w", err)
	}

	// Rosters live for the whole deployment
	if err := r.client.Set(ctx, rosterKey(input.Roster.ID), rosterJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save roster: %w", err)
	}

	return nil
}

// GetRoster retrieves a roster by ID from Redis
func (r *redisRepository) GetRoster(ctx context.Context, input *GetRosterInput) (*models.Roster, error) {
	if input == nil || input.RosterID == "" {
		return nil, errors.New("input and roster ID cannot be empty")
	}

	rosterJSON, err := r.client.Get(ctx, rosterKey(input.RosterID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrRosterNotFound
		}
		return nil, fmt.Errorf("failed to get roster: %w", err)
	}

	var roster models.Roster
	if err := json.Unmarshal([]byte(rosterJSON), &roster); err != nil {
		return nil, fmt.Errorf("failed to unmarshal roster: %w", err)
	}

	return &roster, nil
}

// DeleteRoster removes a roster from Redis
func (r *redisRepository) DeleteRoster(ctx context.Context, input *DeleteRosterInput) error {
	if input == nil || input.RosterID == "" {
		return errors.New("input and roster ID cannot be empty")
	}

	if err := r.client.Del(ctx, rosterKey(input.RosterID)).Err(); err != nil {
		return fmt.Errorf("failed to delete roster: %w", err)
	}

	return nil
}
