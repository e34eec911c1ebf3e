package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/raidtemplate/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetErrorMessage returns a user-friendly message for an error
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)

	// GetEditStatusMessage returns a message for an edit mode transition
	GetEditStatusMessage(ctx context.Context, input *GetEditStatusMessageInput) (*GetEditStatusMessageOutput, error)
}
