package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	raiderr "github.com/KirkDiggler/raidtemplate/internal/errors"
	rosterService "github.com/KirkDiggler/raidtemplate/internal/services/roster"
	templateService "github.com/KirkDiggler/raidtemplate/internal/services/template"
)

// service implements the Service interface
type service struct {
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	seed := time.Now().UnixNano()
	if config != nil && config.Seed != 0 {
		seed = config.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

var errorMessages = map[ErrorKind][]string{
	ErrorKindPlayerNotFound: {
		"Player not found. Check the id on the roster cards.",
		"No one on the roster answers to that id.",
		"That player isn't on this roster. Maybe they benched themselves?",
	},
	ErrorKindRosterNotFound: {
		"There's no roster yet. Ask an officer to seed one.",
		"No roster found for this raid group.",
	},
	ErrorKindInvalidTarget: {
		"That slot doesn't exist. Indexes start at 0 and stop at the end of the list.",
		"Nothing to edit there. Double-check the slot or index.",
		"That target is outside the template.",
	},
	ErrorKindInvalidValue: {
		"That value isn't in the catalog.",
		"Unknown set or ability. Pick one from the list.",
	},
	ErrorKindNotEditing: {
		"You're not in edit mode. Press Edit first.",
		"Start editing before changing the template.",
		"No edit in progress. Hit Edit to get a working copy.",
	},
	ErrorKindAlreadyEditing: {
		"You're already editing. Save or cancel first.",
		"One working copy at a time! Save or cancel the current one.",
	},
	ErrorKindUnknown: {
		"Something went wrong. Try again in a moment.",
		"The raid planner tripped over a wipe mechanic. Try again.",
	},
}

var errorTitles = map[ErrorKind]string{
	ErrorKindPlayerNotFound: "Player not found",
	ErrorKindRosterNotFound: "No roster",
	ErrorKindInvalidTarget:  "Invalid target",
	ErrorKindInvalidValue:   "Invalid value",
	ErrorKindNotEditing:     "Not editing",
	ErrorKindAlreadyEditing: "Already editing",
	ErrorKindUnknown:        "Error",
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil || input.Err == nil {
		return nil, errors.New("input error cannot be nil")
	}

	kind := Classify(input.Err)

	return &GetErrorMessageOutput{
		Kind:    kind,
		Title:   errorTitles[kind],
		Message: s.pick(errorMessages[kind]),
	}, nil
}

// GetEditStatusMessage returns a message for an edit mode transition
func (s *service) GetEditStatusMessage(ctx context.Context, input *GetEditStatusMessageInput) (*GetEditStatusMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	who := input.EditorName
	if who == "" {
		who = "You"
	}

	var title string
	var messages []string

	switch input.Action {
	case EditActionEnter:
		title = "Editing"
		messages = []string{
			"%s now has a working copy. Nobody else sees the changes until you save.",
			"%s entered edit mode. Save to publish, cancel to throw it away.",
		}
	case EditActionSave:
		title = "Saved"
		messages = []string{
			"%s saved the template. It's live for everyone.",
			"Template updated by %s.",
		}
	case EditActionCancel:
		title = "Cancelled"
		messages = []string{
			"%s cancelled. The live template is unchanged.",
			"Edits thrown away by %s. Nothing changed.",
		}
	case EditActionUpdate:
		title = "Updated"
		messages = []string{
			"Working copy updated for %s.",
			"Change noted, %s. Remember to save.",
		}
	case EditActionReset:
		title = "Reset"
		messages = []string{
			"%s rebuilt the template from the roster.",
		}
	case EditActionImport:
		title = "Imported"
		messages = []string{
			"%s imported a template. It's live now.",
		}
	default:
		return nil, fmt.Errorf("unknown edit action %q", input.Action)
	}

	return &GetEditStatusMessageOutput{
		Title:   title,
		Message: fmt.Sprintf(s.pick(messages), who),
	}, nil
}

// Classify maps an error to the kind of message users see for it
func Classify(err error) ErrorKind {
	switch {
	case errors.Is(err, rosterService.ErrPlayerNotFound), errors.Is(err, templateService.ErrPlayerNotFound):
		return ErrorKindPlayerNotFound
	case errors.Is(err, rosterService.ErrRosterNotFound), errors.Is(err, templateService.ErrRosterNotFound):
		return ErrorKindRosterNotFound
	case errors.Is(err, templateService.ErrInvalidTarget):
		return ErrorKindInvalidTarget
	case errors.Is(err, templateService.ErrInvalidValue), errors.Is(err, templateService.ErrTemplateMismatch):
		return ErrorKindInvalidValue
	case errors.Is(err, templateService.ErrNotEditing):
		return ErrorKindNotEditing
	case errors.Is(err, templateService.ErrAlreadyEditing):
		return ErrorKindAlreadyEditing
	case raiderr.IsInvalidArgument(err):
		return ErrorKindInvalidValue
	}
	return ErrorKindUnknown
}

func (s *service) pick(messages []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return messages[s.rand.Intn(len(messages))]
}
