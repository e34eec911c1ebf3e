package template

import (
	raiderr "github.com/KirkDiggler/raidtemplate/internal/errors"
	"github.com/KirkDiggler/raidtemplate/internal/models"
)

// ErrTemplateNotFound is returned when no template has been stored for the roster
var ErrTemplateNotFound = raiderr.NotFound("template not found")

// SaveTemplateInput contains parameters for saving a template
type SaveTemplateInput struct {
	Template *models.RaidTemplate
}

// GetTemplateInput contains parameters for retrieving a template
type GetTemplateInput struct {
	RosterID string
}

// DeleteTemplateInput contains parameters for deleting a template
type DeleteTemplateInput struct {
	RosterID string
}
