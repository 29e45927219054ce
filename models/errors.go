package models

// ValidationError marks a request rejected before any state was touched:
// blank table, empty cart, missing order id, edits to a paid order.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}
