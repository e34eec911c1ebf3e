package template

import (
	raiderr "github.com/KirkDiggler/raidtemplate/internal/errors"
)

var (
	ErrRosterNotFound = raiderr.NotFound("roster not found")
	ErrPlayerNotFound = raiderr.NotFound("player not found")

	// ErrInvalidTarget is returned for an index, slot, category or field
	// outside the shape of a player configuration
	ErrInvalidTarget = raiderr.InvalidArgument("invalid target")

	// ErrInvalidValue is returned for a value the catalog does not know
	ErrInvalidValue = raiderr.InvalidArgument("invalid value")

	ErrNotEditing     = raiderr.FailedPrecondition("not in edit mode")
	ErrAlreadyEditing = raiderr.AlreadyExists("already in edit mode")

	// ErrTemplateMismatch is returned when an imported template does not
	// cover exactly the players of the roster
	ErrTemplateMismatch = raiderr.InvalidArgument("template does not match roster")

	ErrNilConfig       = raiderr.InvalidArgument("config cannot be nil")
	ErrNilRosterRepo   = raiderr.InvalidArgument("roster repository cannot be nil")
	ErrNilTemplateRepo = raiderr.InvalidArgument("template repository cannot be nil")
	ErrNilDraftRepo    = raiderr.InvalidArgument("draft repository cannot be nil")
	ErrNilCatalog      = raiderr.InvalidArgument("catalog cannot be nil")
	ErrEmptyRosterID   = raiderr.InvalidArgument("roster ID cannot be empty")
	ErrEmptyEditorID   = raiderr.InvalidArgument("editor ID cannot be empty")
)
