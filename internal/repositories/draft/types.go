package draft

import (
	"time"

	raiderr "github.com/KirkDiggler/raidtemplate/internal/errors"
	"github.com/KirkDiggler/raidtemplate/internal/models"
)

// ErrDraftNotFound is returned when the editor has no working copy
var ErrDraftNotFound = raiderr.NotFound("draft not found")

// SaveDraftInput contains parameters for saving a working copy
type SaveDraftInput struct {
	Session *models.EditSession

	// TTL bounds how long an abandoned draft is kept; zero keeps it until deleted
	TTL time.Duration
}

// GetDraftInput contains parameters for retrieving a working copy
type GetDraftInput struct {
	RosterID string
	EditorID string
}

// DeleteDraftInput contains parameters for deleting a working copy
type DeleteDraftInput struct {
	RosterID string
	EditorID string
}
