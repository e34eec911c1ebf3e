package template

import (
	"context"
	"errors"
	"sync"

	"github.com/KirkDiggler/raidtemplate/internal/models"
)

// InMemoryRepository keeps live templates in process memory
type InMemoryRepository struct {
	mu        sync.RWMutex
	templates map[string]*models.RaidTemplate
}

// NewInMemory creates a new in-memory template repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		templates: make(map[string]*models.RaidTemplate),
	}
}

func (r *InMemoryRepository) SaveTemplate(ctx context.Context, input *SaveTemplateInput) error {
	if input == nil || input.Template == nil {
		return errors.New("input and template cannot be nil")
	}

	if input.Template.ID == "" {
		return errors.New("template ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.templates[input.Template.ID] = input.Template.Clone()
	return nil
}

func (r *InMemoryRepository) GetTemplate(ctx context.Context, input *GetTemplateInput) (*models.RaidTemplate, error) {
	if input == nil || input.RosterID == "" {
		return nil, errors.New("input and roster ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	tmpl, ok := r.templates[input.RosterID]
	if !ok {
		return nil, ErrTemplateNotFound
	}
	return tmpl.Clone(), nil
}

func (r *InMemoryRepository) DeleteTemplate(ctx context.Context, input *DeleteTemplateInput) error {
	if input == nil || input.RosterID == "" {
		return errors.New("input and roster ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.templates, input.RosterID)
	return nil
}
