package template

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/raidtemplate/internal/repositories/template Repository

import (
	"context"

	"github.com/KirkDiggler/raidtemplate/internal/models"
)

// Repository defines the interface for live raid template persistence
type Repository interface {
	// SaveTemplate writes the whole template in one operation
	SaveTemplate(ctx context.Context, input *SaveTemplateInput) error

	// GetTemplate retrieves the live template of a roster
	GetTemplate(ctx context.Context, input *GetTemplateInput) (*models.RaidTemplate, error)

	// DeleteTemplate removes the live template so it is derived again on next read
	DeleteTemplate(ctx context.Context, input *DeleteTemplateInput) error
}
