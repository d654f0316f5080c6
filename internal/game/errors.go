package game

// Code is a machine-readable failure kind.
type Code string

const (
	// CodeIllegalAction - wrong player, phase or turn for the attempted action.
	CodeIllegalAction Code = "ILLEGAL_ACTION"
	// CodeRuleViolation - the card does not fit the target by color or order.
	CodeRuleViolation Code = "RULE_VIOLATION"
	// CodeResourceExhausted - the deck or a discard pile is empty, or the hand is full.
	CodeResourceExhausted Code = "RESOURCE_EXHAUSTED"
	// CodeNavigation - a history index that does not exist.
	CodeNavigation Code = "NAVIGATION"
	// CodeEnumerationInconsistency - a generated move could not be applied.
	CodeEnumerationInconsistency Code = "ENUMERATION_INCONSISTENCY"
)

// Error is a failure with a code and a message.
type Error struct {
	Code    Code   // Machine-readable failure kind
	Message string // Player-facing or diagnostic text
	Cause   error  // Wrapped underlying error
}

// NewError creates an error with a code and message.
func NewError(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError creates an error that wraps an underlying cause.
func WrapError(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// Sentinels for errors.Is checks.
var (
	ErrIllegalAction            = NewError(CodeIllegalAction, "illegal action")
	ErrRuleViolation            = NewError(CodeRuleViolation, "rule violation")
	ErrResourceExhausted        = NewError(CodeResourceExhausted, "resource exhausted")
	ErrNavigation               = NewError(CodeNavigation, "invalid navigation")
	ErrEnumerationInconsistency = NewError(CodeEnumerationInconsistency, "pending move could not be applied")
)
