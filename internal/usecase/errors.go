package usecase

import (
	"errors"
	"fmt"

	crerr "github.com/cockroachdb/errors"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
	ErrStoreFailure = errors.New("store failure")
)

// storeFailure wraps a repository error with the operation name and marks it
// as ErrStoreFailure. Match it with IsStoreFailure; the mark is only visible
// to cockroachdb/errors.Is.
func storeFailure(op string, err error) error {
	if err == nil {
		return nil
	}
	if IsStoreFailure(err) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return crerr.Mark(fmt.Errorf("%s: %w", op, err), ErrStoreFailure)
}

func IsStoreFailure(err error) bool {
	return crerr.Is(err, ErrStoreFailure)
}
