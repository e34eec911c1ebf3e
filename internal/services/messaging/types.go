package messaging

// ErrorKind classifies errors into the groups users get distinct messages for
type ErrorKind string

const (
	ErrorKindPlayerNotFound ErrorKind = "player_not_found"
	ErrorKindRosterNotFound ErrorKind = "roster_not_found"
	ErrorKindInvalidTarget  ErrorKind = "invalid_target"
	ErrorKindInvalidValue   ErrorKind = "invalid_value"
	ErrorKindNotEditing     ErrorKind = "not_editing"
	ErrorKindAlreadyEditing ErrorKind = "already_editing"
	ErrorKindUnknown        ErrorKind = "unknown"
)

// EditAction is an edit mode transition
type EditAction string

const (
	EditActionEnter  EditAction = "enter"
	EditActionSave   EditAction = "save"
	EditActionCancel EditAction = "cancel"
	EditActionUpdate EditAction = "update"
	EditActionReset  EditAction = "reset"
	EditActionImport EditAction = "import"
)

// GetErrorMessageInput contains the error to describe
type GetErrorMessageInput struct {
	Err error
}

// GetErrorMessageOutput contains the message to show
type GetErrorMessageOutput struct {
	Kind    ErrorKind
	Title   string
	Message string
}

// GetEditStatusMessageInput contains parameters for an edit status message
type GetEditStatusMessageInput struct {
	Action EditAction

	// EditorName is shown in the message when set
	EditorName string
}

// GetEditStatusMessageOutput contains the message to show
type GetEditStatusMessageOutput struct {
	Title   string
	Message string
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Seed fixes the random phrasing; zero seeds from the clock
	Seed int64
}
