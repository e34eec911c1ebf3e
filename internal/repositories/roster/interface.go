package roster

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/raidtemplate/internal/repositories/roster Repository

import (
	"context"

	"github.com/KirkDiggler/raidtemplate/internal/models"
)

// Repository defines the interface for roster persistence
type Repository interface {
	// SaveRoster replaces the stored roster as a whole
	SaveRoster(ctx context.Context, input *SaveRosterInput) error

	// GetRoster retrieves a roster by ID
	GetRoster(ctx context.Context, input *GetRosterInput) (*models.Roster, error)

	// DeleteRoster removes a roster
	DeleteRoster(ctx context.Context, input *DeleteRosterInput) error
}
