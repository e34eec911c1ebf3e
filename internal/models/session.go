package models

import (
	"time"
)

// EditSession is one editor's in-progress working copy of a raid template
type EditSession struct {
	// ID is the unique identifier for this edit
	ID string `json:"id"`

	// RosterID is the roster whose template is being edited
	RosterID string `json:"rosterId"`

	// EditorID identifies who is editing (a Discord user ID, or "cli")
	EditorID string `json:"editorId"`

	// StartedAt is when edit mode was entered
	StartedAt time.Time `json:"startedAt"`

	// Working is owned by the session and never shared with the live template
	Working *RaidTemplate `json:"working"`
}

// Clone returns a deep copy of the session
func (s *EditSession) Clone() *EditSession {
	if s == nil {
		return nil
	}
	out := *s
	out.Working = s.Working.Clone()
	return &out
}
