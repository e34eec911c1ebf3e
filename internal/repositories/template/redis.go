package template

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/raidtemplate/internal/models"
)

const templateKeyPrefix = "template:"

// Config holds configuration for the Redis template repository
type Config struct {
	RedisClient redis.UniversalClient
}

type redisRepository struct {
	client redis.UniversalClient
}

// NewRedis creates a new Redis-backed template repository
func NewRedis(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func templateKey(rosterID string) string {
	return templateKeyPrefix + rosterID
}

// SaveTemplate stores the template as a single JSON document so a commit is one write
func (r *redisRepository) SaveTemplate(ctx context.Context, input *SaveTemplateInput) error {
	if input == nil || input.Template == nil {
		return errors.New("input and template cannot be nil")
	}

	if input.Template.ID == "" {
		return errors.New("template ID cannot be empty")
	}

	templateJSON, err := json.Marshal(input.Template)
	if err != nil {
		return fmt.Errorf("failed to marshal template: %w", err)
	}

	if err := r.client.Set(ctx, templateKey(input.Template.ID), templateJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save template: %w", err)
	}

	return nil
}

// GetTemplate retrieves the live template of a roster
func (r *redisRepository) GetTemplate(ctx context.Context, input *GetTemplateInput) (*models.RaidTemplate, error) {
	if input == nil || input.RosterID == "" {
		return nil, errors.New("input and roster ID cannot be empty")
	}

	templateJSON, err := r.client.Get(ctx, templateKey(input.RosterID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}

	var tmpl models.RaidTemplate
	if err := json.Unmarshal([]byte(templateJSON), &tmpl); err != nil {
		return nil, fmt.Errorf("failed to unmarshal template: %w", err)
	}

	return &tmpl, nil
}

// DeleteTemplate removes the live template of a roster
func (r *redisRepository) DeleteTemplate(ctx context.Context, input *DeleteTemplateInput) error {
	if input == nil || input.RosterID == "" {
		return errors.New("input and roster ID cannot be empty")
	}

	if err := r.client.Del(ctx, templateKey(input.RosterID)).Err(); err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}

	return nil
}
