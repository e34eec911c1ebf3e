package roster

import (
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/raidtemplate/internal/models"
	rosterRepo "github.com/KirkDiggler/raidtemplate/internal/repositories/roster"
)

// Config holds the dependencies of the roster service
type Config struct {
	Repository rosterRepo.Repository

	// Logger defaults to the logrus standard logger
	Logger logrus.FieldLogger
}

// SeedInput contains the data a roster is initialized from
type SeedInput struct {
	RosterID string
	RaidName string
	Players  []*models.Player

	// Overwrite replaces an existing roster instead of failing with ErrRosterExists
	Overwrite bool
}

// SeedOutput contains the stored roster
type SeedOutput struct {
	Roster *models.Roster
}

// GetRosterInput contains parameters for reading a roster
type GetRosterInput struct {
	RosterID string
}

// GetRosterOutput contains the roster. It is a copy; holding it across
// mutations does not observe them.
type GetRosterOutput struct {
	Roster *models.Roster
}

// GetPlayerInput contains parameters for reading one player
type GetPlayerInput struct {
	RosterID string
	PlayerID int
}

// GetPlayerOutput contains the player
type GetPlayerOutput struct {
	Player *models.Player
}

// UpdateNameInput contains parameters for renaming a player
type UpdateNameInput struct {
	RosterID string
	PlayerID int
	Name     string
}

// UpdateRoleInput contains parameters for changing a player's role.
// Role is stored as given.
type UpdateRoleInput struct {
	RosterID string
	PlayerID int
	Role     models.Role
}

// UpdateClassesInput contains parameters for replacing a player's classes
type UpdateClassesInput struct {
	RosterID string
	PlayerID int
	Classes  []string
}

// UpdatePlayerOutput contains the new roster value after an update
type UpdatePlayerOutput struct {
	Roster *models.Roster
}
