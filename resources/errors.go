package resources

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so the command line can pick an exit path.
type Kind string

const (
	KindConfig      Kind = "config"
	KindCloud       Kind = "cloud"
	KindEnvironment Kind = "environment"
	KindMissingID   Kind = "missing-id"
	KindTimeout     Kind = "timeout"
	KindRemote      Kind = "remote"
)

// ErrInstanceNotFound is returned when a described instance id does not exist.
var ErrInstanceNotFound = errors.New("instance not found")

type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func NewError(kind Kind, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether any *Error in err's chain carries kind.
func IsKind(err error, kind Kind) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Kind == kind {
			return true
		}
		err = e.Err
	}
	return false
}
