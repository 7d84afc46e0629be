// Package errors provides utilities for accumulating multiple errors.
package errors

import "errors"

// Collection accumulates errors from a sequence of operations and reports
// them as one combined error. It is not safe for concurrent use; collect
// from a single goroutine.
type Collection struct {
	errors []error
}

// Add appends err to the collection. Nil errors are ignored, so callers can
// add unconditionally.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// HasError returns true if at least one error has been collected.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// GetError returns the collected errors as a single error: nil when empty,
// the error itself when there is exactly one, and an errors.Join of all of
// them otherwise.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
