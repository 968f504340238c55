package zotero

import (
	"fmt"

	"emperror.dev/errors"
)

const (
	ErrUnknownItemType      = errors.Sentinel("unknown item type")
	ErrMissingRequiredField = errors.Sentinel("missing required field")
	ErrInvalidFieldValue    = errors.Sentinel("invalid field value")
	ErrWriteFailed          = errors.Sentinel("write failed")
)

// UnknownItemTypeError is returned for an itemType without a registered schema.
// The service adds types over time, so callers may want to skip such items.
type UnknownItemTypeError struct {
	Type string
}

func (e *UnknownItemTypeError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownItemType, e.Type)
}

func (e *UnknownItemTypeError) Is(target error) bool {
	return target == ErrUnknownItemType
}

type MissingRequiredFieldError struct {
	Field string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingRequiredField, e.Field)
}

func (e *MissingRequiredFieldError) Is(target error) bool {
	return target == ErrMissingRequiredField
}

type InvalidFieldValueError struct {
	Field  string
	Reason string
}

func (e *InvalidFieldValueError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidFieldValue, e.Field, e.Reason)
}

func (e *InvalidFieldValueError) Is(target error) bool {
	return target == ErrInvalidFieldValue
}

// WriteFailedError describes one rejected object of a write request.
type WriteFailedError struct {
	Index   int
	Key     string
	Code    int64
	Message string
}

func (e *WriteFailedError) Error() string {
	return fmt.Sprintf("item #%v (%v) update/creation failed with [%v]%v", e.Index, e.Key, e.Code, e.Message)
}

func (e *WriteFailedError) Is(target error) bool {
	return target == ErrWriteFailed
}

func unknownItemType(t string) error {
	return errors.WithStack(&UnknownItemTypeError{Type: t})
}

func missingField(field string) error {
	return errors.WithStack(&MissingRequiredFieldError{Field: field})
}

func invalidField(field string, format string, args ...interface{}) error {
	return errors.WithStack(&InvalidFieldValueError{Field: field, Reason: fmt.Sprintf(format, args...)})
}
