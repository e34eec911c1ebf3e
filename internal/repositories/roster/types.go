package roster

import (
	raiderr "github.com/KirkDiggler/raidtemplate/internal/errors"
	"github.com/KirkDiggler/raidtemplate/internal/models"
)

// ErrRosterNotFound is returned when no roster is stored under the ID
var ErrRosterNotFound = raiderr.NotFound("roster not found")

// SaveRosterInput contains parameters for saving a roster
type SaveRosterInput struct {
	Roster *models.Roster
}

// GetRosterInput contains parameters for retrieving a roster
type GetRosterInput struct {
	RosterID string
}

// DeleteRosterInput contains parameters for deleting a roster
type DeleteRosterInput struct {
	RosterID string
}
