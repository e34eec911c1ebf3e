package errors

// Code represents an error code for categorizing errors
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "UNKNOWN"

	// CodeInvalidArgument indicates the caller targeted something outside the defined shape
	CodeInvalidArgument Code = "INVALID_ARGUMENT"

	// CodeNotFound indicates a requested roster, template or player was not found
	CodeNotFound Code = "NOT_FOUND"

	// CodeAlreadyExists indicates an attempt to create something that already exists
	CodeAlreadyExists Code = "ALREADY_EXISTS"

	// CodeFailedPrecondition indicates the operation is not valid in the current state
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"

	// CodeInternal indicates internal system error
	CodeInternal Code = "INTERNAL"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}
