package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation failed")
	ErrConcurrency = errors.New("concurrent modification")
)

// NotFoundError is returned when a referenced order, driver, client or statement row is missing.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// ValidationError is returned before any write when an input is malformed or out of range.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ConcurrencyError is returned when an atomic balance update or a settlement lock fails.
type ConcurrencyError struct {
	Op  string
	Key string
}

func (e *ConcurrencyError) Error() string {
	return fmt.Sprintf("%s failed for %s", e.Op, e.Key)
}

func (e *ConcurrencyError) Unwrap() error {
	return ErrConcurrency
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}
