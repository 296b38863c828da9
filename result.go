package fove

import (
	"fmt"

	"github.com/fovesdk/fove-go/capi"
)

// Result pairs a value with the error code of the native call that produced
// it. The code is not a binary success flag: the runtime grades data quality,
// and a Result may carry a usable value alongside Data_LowAccuracy or
// Data_Unreliable. Callers pick their threshold with the quality predicates:
//
//	Reliable()   only None
//	Valid()      None or Data_LowAccuracy
//	Acceptable() None, Data_LowAccuracy or Data_Unreliable
type Result[T any] struct {
	value T
	code  capi.ErrorCode
}

func resultOf[T any](value T, code capi.ErrorCode) Result[T] {
	return Result[T]{value: value, code: code}
}

// Status is a Result that carries no value.
type Status = Result[struct{}]

func statusOf(code capi.ErrorCode) Status {
	return Status{code: code}
}

// Value returns the boxed value. It is only meaningful when the quality
// predicate the caller cares about holds.
func (r Result[T]) Value() T {
	return r.value
}

// ValueOr returns the boxed value when Valid, or fallback otherwise.
func (r Result[T]) ValueOr(fallback T) T {
	if r.Valid() {
		return r.value
	}
	return fallback
}

// Code returns the native error code.
func (r Result[T]) Code() capi.ErrorCode {
	return r.code
}

// Err returns the code as a Go error, nil on None.
func (r Result[T]) Err() error {
	return r.code.Err()
}

// Succeeded reports whether the call returned None.
func (r Result[T]) Succeeded() bool {
	return r.code == capi.ErrorNone
}

// Reliable reports that the value is present and fully trustworthy.
func (r Result[T]) Reliable() bool {
	return r.code == capi.ErrorNone
}

// Valid reports that the value is present and usable, though possibly of
// reduced accuracy.
func (r Result[T]) Valid() bool {
	return r.code == capi.ErrorNone || r.code == capi.ErrorDataLowAccuracy
}

// Acceptable reports that a value is present at all, even an unreliable one.
func (r Result[T]) Acceptable() bool {
	switch r.code {
	case capi.ErrorNone, capi.ErrorDataLowAccuracy, capi.ErrorDataUnreliable:
		return true
	}
	return false
}

// String prints the value when the call succeeded outright, otherwise the
// code name. Degraded-quality results print the code even though a value is
// present.
func (r Result[T]) String() string {
	if r.Succeeded() {
		return fmt.Sprintf("%v", r.value)
	}
	return r.code.String()
}
