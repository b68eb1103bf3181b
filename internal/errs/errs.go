// Package errs holds the error taxonomy shared by the domain services,
// the storage adapters and the HTTP handlers.
//
// Every data-access operation reports one of three outcomes besides success:
//   - ErrNotFound: the requested id is absent.
//   - *ValidationError: the input was rejected, either before any SQL was
//     built (unknown filter column, bad patch field) or by a constraint in
//     the storage engine (NOT NULL, foreign key, unique, check).
//   - *StorageError: the connection or statement failed.
package errs

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

// ValidationError carries the underlying message verbatim.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Field == "" {
		return msg
	}
	return fmt.Sprintf("%s: %s", e.Field, msg)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// StorageError wraps a driver failure with the operation that hit it.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error { return e.Err }

func Validation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func Validationf(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsStorage(err error) bool {
	var s *StorageError
	return errors.As(err, &s)
}
