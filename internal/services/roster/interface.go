package roster

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/raidtemplate/internal/services/roster Service

import "context"

// Service defines the roster operations
type Service interface {
	// Seed initializes a roster from seed data
	Seed(ctx context.Context, input *SeedInput) (*SeedOutput, error)

	// GetRoster returns a copy of the current roster
	GetRoster(ctx context.Context, input *GetRosterInput) (*GetRosterOutput, error)

	// GetPlayer returns a single player for the detail view
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*GetPlayerOutput, error)

	// UpdateName replaces the name of one player
	UpdateName(ctx context.Context, input *UpdateNameInput) (*UpdatePlayerOutput, error)

	// UpdateRole replaces the role of one player
	UpdateRole(ctx context.Context, input *UpdateRoleInput) (*UpdatePlayerOutput, error)

	// UpdateClasses replaces the whole class list of one player
	UpdateClasses(ctx context.Context, input *UpdateClassesInput) (*UpdatePlayerOutput, error)
}
