package roster

import (
	raiderr "github.com/KirkDiggler/raidtemplate/internal/errors"
)

var (
	ErrRosterNotFound = raiderr.NotFound("roster not found")
	ErrPlayerNotFound = raiderr.NotFound("player not found")
	ErrRosterExists   = raiderr.AlreadyExists("roster already exists")

	ErrNilConfig     = raiderr.InvalidArgument("config cannot be nil")
	ErrNilRepository = raiderr.InvalidArgument("roster repository cannot be nil")
	ErrEmptyRosterID = raiderr.InvalidArgument("roster ID cannot be empty")
)
