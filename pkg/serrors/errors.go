package serrors

import "fmt"

// Error is a coded error that survives transport boundaries. Code is a
// stable machine-readable identifier; Details is optional human context.
type Error struct {
	Code    string
	Message string
	Details string
}

func (e *Error) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
}

func NewError(code, message, details string) *Error {
	return &Error{Code: code, Message: message, Details: details}
}

// WithDetails returns a copy of e carrying the given details string.
func (e *Error) WithDetails(details string) *Error {
	return &Error{Code: e.Code, Message: e.Message, Details: details}
}

// Wrap attaches a cause while keeping the coded error visible to errors.Is.
func Wrap(e *Error, cause error) error {
	return fmt.Errorf("%w: %w", e, cause)
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}
