// Package apperr holds the error taxonomy shared by the domain, usecase and
// adapter layers.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned for missing, out-of-range or disallowed input.
type ValidationError struct {
	Message string
	Fields  []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Message)
	}
	return e.Message + ": " + strings.Join(parts, "; ")
}

// Invalid builds a ValidationError without field details.
func Invalid(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error   string       `json:"error"`
	Cause   string       `json:"cause,omitempty"`
	Details []FieldError `json:"details,omitempty"`
}

// NotFoundError is returned when a referenced id does not resolve.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

func NotFound(resource, id string) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// StoreError wraps a datastore failure.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *StoreError) Unwrap() error { return e.Err }

// Store wraps err as a StoreError; nil stays nil.
func Store(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
