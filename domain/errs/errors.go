// Package errs holds the error kinds surfaced by the todo service.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound referenced todo does not exist
	ErrNotFound = errors.New("todo not found")
	// ErrForbidden caller is not the owner of the todo
	ErrForbidden = errors.New("user is not authorized to modify todo")
	// ErrRecordMissing store-level miss on a write that expects an existing record
	ErrRecordMissing = errors.New("record does not exist")
)

// StoreError wraps a failure of the record store or the object store.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Store wraps err as a StoreError. A nil err stays nil, an existing StoreError is returned as is.
func Store(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *StoreError
	if errors.As(err, &se) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}

// IsStoreError reports whether err (or anything it wraps) is a StoreError.
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
