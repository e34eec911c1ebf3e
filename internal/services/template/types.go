package template

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/raidtemplate/internal/catalog"
	"github.com/KirkDiggler/raidtemplate/internal/common/clock"
	"github.com/KirkDiggler/raidtemplate/internal/common/uuid"
	"github.com/KirkDiggler/raidtemplate/internal/models"
	draftRepo "github.com/KirkDiggler/raidtemplate/internal/repositories/draft"
	rosterRepo "github.com/KirkDiggler/raidtemplate/internal/repositories/roster"
	templateRepo "github.com/KirkDiggler/raidtemplate/internal/repositories/template"
)

// DefaultDraftTTL is how long an untouched working copy is kept
const DefaultDraftTTL = 2 * time.Hour

// Config holds the dependencies of the template service
type Config struct {
	// Repository dependencies
	RosterRepo   rosterRepo.Repository
	TemplateRepo templateRepo.Repository
	DraftRepo    draftRepo.Repository

	Catalog *catalog.Catalog

	// Clock and UUIDGenerator default to the system implementations
	Clock         clock.Clock
	UUIDGenerator uuid.Generator

	// DraftTTL defaults to DefaultDraftTTL; every edit refreshes it
	DraftTTL time.Duration

	Logger logrus.FieldLogger
}

// GetTemplateInput contains parameters for reading the live template
type GetTemplateInput struct {
	RosterID string
}

// GetTemplateOutput contains the live template
type GetTemplateOutput struct {
	Template *models.RaidTemplate
}

// GetViewInput contains parameters for reading what an editor should see
type GetViewInput struct {
	RosterID string

	// EditorID may be empty for anonymous readers, who always see the live template
	EditorID string
}

// GetViewOutput contains the template to display
type GetViewOutput struct {
	Template *models.RaidTemplate

	// Editing is true when Template is the editor's working copy
	Editing bool
}

// EnterEditInput contains parameters for entering edit mode
type EnterEditInput struct {
	RosterID string
	EditorID string
}

// EnterEditOutput contains the new edit session
type EnterEditOutput struct {
	Session *models.EditSession
}

// SetFieldInput contains parameters for a field edit
type SetFieldInput struct {
	RosterID string
	EditorID string
	Change   FieldChange
}

// SetFieldOutput contains the updated working copy
type SetFieldOutput struct {
	Template *models.RaidTemplate
}

// SetSkillInput contains parameters for a skill edit
type SetSkillInput struct {
	RosterID string
	EditorID string
	Change   SkillChange
}

// SetSkillOutput contains the updated working copy
type SetSkillOutput struct {
	Template *models.RaidTemplate
}

// CommitInput contains parameters for saving an edit
type CommitInput struct {
	RosterID string
	EditorID string
}

// CommitOutput contains the new live template
type CommitOutput struct {
	Template *models.RaidTemplate
}

// DiscardInput contains parameters for cancelling an edit
type DiscardInput struct {
	RosterID string
	EditorID string
}

// DiscardOutput is empty; the live template is unchanged
type DiscardOutput struct{}

// ResetTemplateInput contains parameters for re-deriving the live template
type ResetTemplateInput struct {
	RosterID string
}

// ResetTemplateOutput contains the new live template
type ResetTemplateOutput struct {
	Template *models.RaidTemplate
}

// ExportTemplateInput contains parameters for exporting the live template
type ExportTemplateInput struct {
	RosterID string
}

// ExportTemplateOutput contains the indented JSON document
type ExportTemplateOutput struct {
	Data []byte
}

// ImportTemplateInput contains a JSON document to make live
type ImportTemplateInput struct {
	RosterID string
	Data     []byte
}

// ImportTemplateOutput contains the new live template
type ImportTemplateOutput struct {
	Template *models.RaidTemplate
}
