package common

import "errors"

// ErrMissingTitleOrBody signals a message send request without title or body
var ErrMissingTitleOrBody = errors.New("Title and body are required")

// ErrNilSource signals that a nil relational source was provided
var ErrNilSource = errors.New("nil source")

// ErrNilMessageStore signals that a nil message store was provided
var ErrNilMessageStore = errors.New("nil message store")

// ErrNilClock signals that a nil clock was provided
var ErrNilClock = errors.New("nil clock")

// ErrUnknownMetric signals a lookup for a key that is not registered
var ErrUnknownMetric = errors.New("unknown metric")

// ValidationError is returned when the caller supplied incomplete input
type ValidationError struct {
	Err error
}

// Error returns the wrapped message
func (e *ValidationError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// DataAccessError wraps a failure of a data store. The message of the underlying driver error is kept verbatim.
type DataAccessError struct {
	Err error
}

// Error returns the driver message
func (e *DataAccessError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error
func (e *DataAccessError) Unwrap() error {
	return e.Err
}

// NewDataAccessError wraps err unless it is nil
func NewDataAccessError(err error) error {
	if err == nil {
		return nil
	}

	return &DataAccessError{Err: err}
}
