package collection

import (
	"fmt"
	"strings"
	"sync"
)

// Error accumulates errors from independent operations that should all be
// attempted before reporting.
type Error struct {
	sync.Mutex
	errs []error
}

func (e *Error) Add(err error) {
	if err == nil {
		return
	}

	e.Lock()
	defer e.Unlock()

	e.errs = append(e.errs, err)
}

func (e *Error) Len() int {
	e.Lock()
	defer e.Unlock()

	return len(e.errs)
}

func (e *Error) Error() error {
	e.Lock()
	defer e.Unlock()

	if len(e.errs) == 0 {
		return nil
	}

	errs := make([]error, len(e.errs))
	copy(errs, e.errs)
	return &multiError{errs: errs}
}

type multiError struct {
	errs []error
}

func (m *multiError) Error() string {
	msgs := make([]string, 0, len(m.errs))
	for _, err := range m.errs {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("encountered errors: \n %s", strings.Join(msgs, "\n "))
}

func (m *multiError) Unwrap() []error {
	return m.errs
}
