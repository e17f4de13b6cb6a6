package commands

// UserError is shown to the player and the loop carries on.
// It is not a system failure, just something the player can't do.
type UserError struct {
	Message string
}

func (e *UserError) Error() string {
	return e.Message
}

// NewUserError creates a user-facing error.
func NewUserError(msg string) *UserError {
	return &UserError{Message: msg}
}

var (
	errUnrecognized = NewUserError("Unrecognized Command")
	errNoWorld      = NewUserError("There is nothing here. The world failed to load.")
)
