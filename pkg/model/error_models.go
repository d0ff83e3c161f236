package model

// ValidationWarning signals an operation that was not performed because it
// would leave the collection in an unwanted state (deleting the last
// article, acting with nothing selected). It is surfaced as a warning, not
// a failure, and never mutates state.
type ValidationWarning struct {
	Msg string
}

func (w *ValidationWarning) Error() string {
	return w.Msg
}

// NewValidationWarning creates a ValidationWarning with the given message.
func NewValidationWarning(msg string) *ValidationWarning {
	return &ValidationWarning{Msg: msg}
}
