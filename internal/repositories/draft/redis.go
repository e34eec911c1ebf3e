package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/raidtemplate/internal/models"
)

const draftKeyPrefix = "draft:"

// Config holds configuration for the Redis draft repository
type Config struct {
	RedisClient redis.UniversalClient
}

type redisRepository struct {
	client redis.UniversalClient
}

// NewRedis creates a new Redis-backed draft repository
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

func draftKey(rosterID, editorID string) string {
	return draftKeyPrefix + rosterID + ":" + editorID
}

func validateKey(rosterID, editorID string) error {
	if rosterID == "" {
		return errors.New("roster ID cannot be empty")
	}
	if editorID == "" {
		return errors.New("editor ID cannot be empty")
	}
	return nil
}

// SaveDraft stores the working copy, expiring it after input.TTL
func (r *redisRepository) SaveDraft(ctx context.Context, input *SaveDraftInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	if err := validateKey(input.Session.RosterID, input.Session.EditorID); err != nil {
		return err
	}

	sessionJSON, err := json.Marshal(input.Session)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	key := draftKey(input.Session.RosterID, input.Session.EditorID)
	if err := r.client.Set(ctx, key, sessionJSON, input.TTL).Err(); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}

	return nil
}

// GetDraft retrieves the editor's working copy
func (r *redisRepository) GetDraft(ctx context.Context, input *GetDraftInput) (*models.EditSession, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if err := validateKey(input.RosterID, input.EditorID); err != nil {
		return nil, err
	}

	sessionJSON, err := r.client.Get(ctx, draftKey(input.RosterID, input.EditorID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("failed to get draft: %w", err)
	}

	var session models.EditSession
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}

	return &session, nil
}

// DeleteDraft removes the editor's working copy
func (r *redisRepository) DeleteDraft(ctx context.Context, input *DeleteDraftInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if err := validateKey(input.RosterID, input.EditorID); err != nil {
		return err
	}

	if err := r.client.Del(ctx, draftKey(input.RosterID, input.EditorID)).Err(); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}

	return nil
}
