package query

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by query operations.
//
// Every argument error wraps [ErrInvalidArgument], so callers may test for
// the broad category or a specific cause:
//
//	_, err := query.Filter(items, nil, query.Default, 0)
//	errors.Is(err, query.ErrInvalidArgument) // true
//	errors.Is(err, query.ErrNilPredicate)    // true
var (
	// ErrInvalidArgument is the category of every caller error below.
	ErrInvalidArgument = errors.New("query: invalid argument")

	// ErrNilPredicate is returned when a required predicate is nil.
	ErrNilPredicate = fmt.Errorf("%w: predicate must not be nil", ErrInvalidArgument)

	// ErrNilSequence is returned when an iter.Seq argument is nil.
	ErrNilSequence = fmt.Errorf("%w: sequence must not be nil", ErrInvalidArgument)

	// ErrNilOperation is returned when a projection operation is the zero
	// Operation or carries a nil function.
	ErrNilOperation = fmt.Errorf("%w: operation must not be empty", ErrInvalidArgument)

	// ErrUnknownMode is returned for a Mode value outside the declared set.
	ErrUnknownMode = fmt.Errorf("%w: unknown mode", ErrInvalidArgument)

	// ErrNegativeCount is returned when count < 0.
	ErrNegativeCount = fmt.Errorf("%w: count must not be negative", ErrInvalidArgument)

	// ErrInvalidPattern is returned when a regular expression or wildcard
	// pattern cannot be compiled.
	ErrInvalidPattern = fmt.Errorf("%w: invalid pattern", ErrInvalidArgument)

	// ErrMemberNotFound is an element-level miss: the element has no member
	// with the requested name.
	ErrMemberNotFound = errors.New("query: member not found")

	// ErrNotSettable is an element-level miss: the member exists but cannot be
	// assigned (unexported, not addressable, or incompatible value).
	ErrNotSettable = errors.New("query: member is not settable")

	// ErrConversion is an element-level miss: the element cannot be
	// converted to the requested kind.
	ErrConversion = errors.New("query: conversion failed")

	// ErrBadArguments is an element-level miss: a method exists but the
	// supplied arguments do not fit its signature.
	ErrBadArguments = errors.New("query: arguments do not match member signature")
)

// ElementError reports which element a projection failed on.
// It is only returned when [Strict] is in effect; otherwise the same value is
// passed to the [OnMiss] callback and the element is dropped.
type ElementError struct {
	Index int
	Err   error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("query: element %d: %v", e.Index, e.Err)
}

func (e *ElementError) Unwrap() error { return e.Err }
