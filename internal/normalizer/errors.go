package normalizer

import (
	"errors"
	"fmt"
)

// Rejection kinds. Every error returned by the normalizer also matches ErrRecordRejected.
var (
	ErrRecordRejected  = errors.New("record rejected")
	ErrMissingField    = errors.New("missing field")
	ErrUnknownCurrency = errors.New("unknown currency")
	ErrMalformedDate   = errors.New("malformed publication date")
	ErrMalformedNumber = errors.New("malformed salary")
)

// RejectedError reports which field made a row unusable.
type RejectedError struct {
	Err   error
	Field string
	Value string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("%s: %s %q: %v", ErrRecordRejected, e.Field, e.Value, e.Err)
}

func (e *RejectedError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match ErrRecordRejected regardless of the underlying kind.
func (e *RejectedError) Is(target error) bool {
	return target == ErrRecordRejected
}

func reject(kind error, field, value string) error {
	return &RejectedError{Err: kind, Field: field, Value: value}
}
