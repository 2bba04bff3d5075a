package dashboard

import (
	"errors"
	"fmt"

	"github.com/crapshack/crapdash/internal/validate"
)

// NotFoundError means the operation targeted an id absent from the
// document.
type NotFoundError struct {
	Entity string // "category" or "service"
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

// ReferenceError means a referential-integrity rule blocked the
// operation: a dangling categoryId, or a delete blocked by references.
type ReferenceError struct {
	Message string
}

func (e *ReferenceError) Error() string {
	return e.Message
}

// StorageError means a filesystem failure during document commit or
// asset write. The mutation is considered not applied.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err carries field validation errors.
func IsValidation(err error) bool {
	var verrs validate.Errors
	return errors.As(err, &verrs)
}

// ValidationErrors extracts the field errors from err, if any.
func ValidationErrors(err error) (validate.Errors, bool) {
	var verrs validate.Errors
	ok := errors.As(err, &verrs)
	return verrs, ok
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsReference reports whether err is a referential-integrity error.
func IsReference(err error) bool {
	var ref *ReferenceError
	return errors.As(err, &ref)
}

// IsStorage reports whether err is a storage failure.
func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

// wrapStorage passes caller-correctable errors through untouched and
// classifies everything else as a storage failure.
func wrapStorage(op string, err error) error {
	if err == nil {
		return nil
	}
	if IsValidation(err) || IsNotFound(err) || IsReference(err) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}
