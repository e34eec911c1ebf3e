package draft

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/raidtemplate/internal/repositories/draft Repository

import (
	"context"

	"github.com/KirkDiggler/raidtemplate/internal/models"
)

// Repository stores the working copies of editors in edit mode.
// At most one draft exists per roster and editor.
type Repository interface {
	// SaveDraft creates or replaces the editor's working copy
	SaveDraft(ctx context.Context, input *SaveDraftInput) error

	// GetDraft retrieves the editor's working copy
	GetDraft(ctx context.Context, input *GetDraftInput) (*models.EditSession, error)

	// DeleteDraft removes the editor's working copy, if any
	DeleteDraft(ctx context.Context, input *DeleteDraftInput) error
}
