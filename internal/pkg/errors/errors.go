package errors

import "errors"

var (
	// ErrNotFound is a generic sentinel for missing resources.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrMalformedJSON marks input that could not be decoded into the target collection.
	ErrMalformedJSON = errors.New("malformed json")
	// ErrNoMatchingCollection marks an import aimed at a collection that does not exist.
	ErrNoMatchingCollection = errors.New("no matching collection")
	// ErrUnknownReport marks an export request for a report that is not registered.
	ErrUnknownReport = errors.New("unknown report")
)
