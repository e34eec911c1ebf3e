package draft

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/KirkDiggler/raidtemplate/internal/common/clock"
	"github.com/KirkDiggler/raidtemplate/internal/models"
)

type inMemoryDraft struct {
	session   *models.EditSession
	expiresAt time.Time
}

// InMemoryRepository keeps working copies in process memory.
// Expired drafts are dropped lazily on read.
type InMemoryRepository struct {
	mu     sync.Mutex
	clock  clock.Clock
	drafts map[string]*inMemoryDraft
}

// NewInMemory creates a new in-memory draft repository; a nil clock uses the system clock
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		clock:  c,
		drafts: make(map[string]*inMemoryDraft),
	}
}

func (r *InMemoryRepository) SaveDraft(ctx context.Context, input *SaveDraftInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	if err := validateKey(input.Session.RosterID, input.Session.EditorID); err != nil {
		return err
	}

	entry := &inMemoryDraft{session: input.Session.Clone()}
	if input.TTL > 0 {
		entry.expiresAt = r.clock.Now().Add(input.TTL)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.drafts[draftKey(input.Session.RosterID, input.Session.EditorID)] = entry
	return nil
}

func (r *InMemoryRepository) GetDraft(ctx context.Context, input *GetDraftInput) (*models.EditSession, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if err := validateKey(input.RosterID, input.EditorID); err != nil {
		return nil, err
	}

	key := draftKey(input.RosterID, input.EditorID)

	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.drafts[key]
	if !ok {
		return nil, ErrDraftNotFound
	}
	if !entry.expiresAt.IsZero() && !r.clock.Now().Before(entry.expiresAt) {
		delete(r.drafts, key)
		return nil, ErrDraftNotFound
	}
	return entry.session.Clone(), nil
}

func (r *InMemoryRepository) DeleteDraft(ctx context.Context, input *DeleteDraftInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if err := validateKey(input.RosterID, input.EditorID); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.drafts, draftKey(input.RosterID, input.EditorID))
	return nil
}
