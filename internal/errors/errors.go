package errors

import (
	stderrors "errors"
)

var (
	// Invalid is returned when a caller supplied an unusable argument.
	Invalid = stderrors.New("invalid argument")
	// NotFound is returned when the requested document does not exist.
	NotFound = stderrors.New("not found")
	// Unavailable is returned when the backing store cannot be reached in time.
	Unavailable = stderrors.New("backend unavailable")
	// Malformed is returned when a stored document cannot be coerced into its model.
	Malformed = stderrors.New("malformed document")
)

// Kind returns the sentinel err wraps, or nil when err does not belong to the taxonomy.
func Kind(err error) error {
	for _, k := range []error{Invalid, NotFound, Unavailable, Malformed} {
		if stderrors.Is(err, k) {
			return k
		}
	}
	return nil
}

// KindName is the short label used in logs.
func KindName(err error) string {
	switch Kind(err) {
	case Invalid:
		return "validation"
	case NotFound:
		return "not_found"
	case Unavailable:
		return "unavailable"
	case Malformed:
		return "malformed"
	default:
		return "internal"
	}
}

// publicError carries a message that is safe to show to API clients next to
// the full internal error.
type publicError struct {
	msg string
	err error
}

func (e *publicError) Error() string {
	return e.msg + ": " + e.err.Error()
}

func (e *publicError) Unwrap() error {
	return e.err
}

// WithMessage attaches a client-facing message to err.
func WithMessage(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &publicError{msg: msg, err: err}
}

// Message returns the outermost client-facing message attached to err.
func Message(err error) (string, bool) {
	var pe *publicError
	if stderrors.As(err, &pe) {
		return pe.msg, true
	}
	return "", false
}
