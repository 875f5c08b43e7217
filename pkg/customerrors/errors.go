// Package customerrors defines the errors every table operator reports.
// Operators wrap these sentinels with context, callers match them with
// errors.Is.
package customerrors

import (
	"errors"

	perrors "github.com/pkg/errors"
)

var (
	// ErrTableNotFound is returned when the backing file of a table is absent.
	ErrTableNotFound = errors.New("table not found")

	// ErrTableExists is returned by table creation when the file is already present.
	ErrTableExists = errors.New("table already exists")

	// ErrSchemaMismatch is returned when requested columns are absent from a
	// table header or a row does not match the header width.
	ErrSchemaMismatch = errors.New("schema mismatch")

	// ErrInvalidArgument is returned for unknown predicate kinds, unknown
	// aggregate functions and malformed operator arguments. It is always
	// reported before any I/O side effect.
	ErrInvalidArgument = errors.New("invalid operation argument")

	// ErrDuplicateKey is returned when an insert or update would break key
	// column uniqueness.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrValueConversion is returned when a value must be numeric and is not.
	ErrValueConversion = errors.New("value conversion error")

	// ErrEmptyResult is returned when an operator has nothing to derive output from.
	ErrEmptyResult = errors.New("empty result")

	// ErrIO marks underlying read/write failures.
	ErrIO = errors.New("io failure")
)

type ioError struct {
	cause error
}

func (e *ioError) Error() string {
	return ErrIO.Error() + ": " + e.cause.Error()
}

func (e *ioError) Unwrap() error {
	return e.cause
}

func (e *ioError) Is(target error) bool {
	return target == ErrIO
}

// IO wraps err as an ErrIO failure annotated with msg. The original cause
// stays reachable through errors.Is / errors.As. Returns nil if err is nil.
func IO(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrIO) {
		return perrors.Wrap(err, msg)
	}
	return perrors.Wrap(&ioError{cause: err}, msg)
}

// IOf is IO with a formatted message.
func IOf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrIO) {
		return perrors.Wrapf(err, format, args...)
	}
	return perrors.Wrapf(&ioError{cause: err}, format, args...)
}

// IsRecoverable reports whether err describes a condition that leaves every
// table untouched and should be shown as a warning rather than a failure.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrTableNotFound) ||
		errors.Is(err, ErrTableExists) ||
		errors.Is(err, ErrEmptyResult)
}
