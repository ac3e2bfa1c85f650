package apperrors

import "errors"

// Sentinel errors shared by all modules. Layers wrap them with context via
// fmt.Errorf and the CLI boundary classifies with errors.Is.
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("not found")
	ErrInvalidState    = errors.New("invalid state")
	ErrNoActiveSession = errors.New("no active session")
	ErrCorruptData     = errors.New("corrupt data")
)
