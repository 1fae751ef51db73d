package book

import "errors"

// ErrNotFound is returned when an identifier does not resolve to a book.
var ErrNotFound = errors.New("book not found")

// ValidationError reports a bad or missing input field. It is always surfaced
// as a message to the caller, never treated as a fatal fault.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConflictError reports an operation that clashes with current catalog state,
// such as borrowing an unavailable book or reusing an ISBN.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

var (
	// ErrNotAvailable is returned when borrowing a book that is already out.
	ErrNotAvailable = &ConflictError{Message: "book is not available for borrowing"}
	// ErrNotBorrowed is returned when returning a book that is not out.
	ErrNotBorrowed = &ConflictError{Message: "book was not borrowed"}
)
