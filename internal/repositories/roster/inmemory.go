package roster

import (
	"context"
	"errors"
	"sync"

	"github.com/KirkDiggler/raidtemplate/internal/models"
)

// InMemoryRepository keeps rosters in process memory.
// Used when no Redis URL is configured.
type InMemoryRepository struct {
	mu      sync.RWMutex
	rosters map[string]*models.Roster
}

// NewInMemory creates a new in-memory roster repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		rosters: make(map[string]*models.Roster),
	}
}

// SaveRoster stores a copy of the roster
func (r *InMemoryRepository) SaveRoster(ctx context.Context, input *SaveRosterInput) error {
	if input == nil || input.Roster == nil {
		return errors.New("input and roster cannot be nil")
	}

	if input.Roster.ID == "" {
		return errors.New("roster ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.rosters[input.Roster.ID] = input.Roster.Clone()
	return nil
}

// GetRoster returns a copy of the stored roster
func (r *InMemoryRepository) GetRoster(ctx context.Context, input *GetRosterInput) (*models.Roster, error) {
	if input == nil || input.RosterID == "" {
		return nil, errors.New("input and roster ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	roster, ok := r.rosters[input.RosterID]
	if !ok {
		return nil, ErrRosterNotFound
	}
	return roster.Clone(), nil
}

// DeleteRoster removes a roster
func (r *InMemoryRepository) DeleteRoster(ctx context.Context, input *DeleteRosterInput) error {
	if input == nil || input.RosterID == "" {
		return errors.New("input and roster ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.rosters, input.RosterID)
	return nil
}
