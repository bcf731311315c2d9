// Package bnerrors defines the error taxonomy shared by bignum, reduce,
// modexp and primality, together with a small parameterized-error
// wrapper that lets callers attach diagnostic data to a sentinel error
// without breaking errors.Is / errors.Unwrap compatibility.
//
// This is a trimmed adaptation of the parameterized-error pattern: a
// sentinel base error declared with errors.New, plus an unexported
// wrapper type that implements Unwrap() and carries a map[string]any of
// attached data. We deliberately do not reproduce the generic,
// reflection-based struct-typed variant found in larger codebases: the
// three error kinds here (Invalid_Argument, Out_Of_Memory, Unimplemented)
// never need more than a handful of named fields, so a plain map is the
// right amount of machinery.
package bnerrors

import (
	"errors"
	"fmt"
)

// ErrorPrefix is prepended to every sentinel error message originating
// from this module, so errors are recognizable in logs regardless of
// which package raised them.
const ErrorPrefix = "bignum: "

var (
	// ErrInvalidArgument reports that a precondition on an input was
	// violated (e.g. an even Montgomery modulus, a negative subtraction).
	ErrInvalidArgument = errors.New(ErrorPrefix + "invalid argument")

	// ErrOutOfMemory reports that growing an Integer's digit storage
	// failed.
	ErrOutOfMemory = errors.New(ErrorPrefix + "out of memory")

	// ErrUnimplemented reports a request for a code path that exists in
	// the original library only as a stub (redmode=1 in ExponentModFast).
	ErrUnimplemented = errors.New(ErrorPrefix + "unimplemented")
)

// withParams wraps an underlying sentinel error together with arbitrary
// diagnostic data. It is never constructed directly by callers outside
// this package; use WithData.
type withParams struct {
	err    error
	params map[string]any
}

func (e *withParams) Error() string {
	if len(e.params) == 0 {
		return e.err.Error()
	}
	return fmt.Sprintf("%s (%v)", e.err.Error(), e.params)
}

func (e *withParams) Unwrap() error {
	return e.err
}

// WithData wraps err with the given diagnostic key/value pairs. err is
// typically one of the sentinels above; the result still satisfies
// errors.Is(result, err).
func WithData(err error, params map[string]any) error {
	if err == nil {
		return nil
	}
	return &withParams{err: err, params: params}
}

// GetData walks the error chain of err looking for a wrapper created by
// WithData that has a value for key. It returns the value and whether it
// was present.
func GetData(err error, key string) (value any, ok bool) {
	for err != nil {
		if wp, isWp := err.(*withParams); isWp {
			if v, present := wp.params[key]; present {
				return v, true
			}
		}
		err = errors.Unwrap(err)
	}
	return nil, false
}

// HasData reports whether key is attached anywhere along err's chain.
func HasData(err error, key string) bool {
	_, ok := GetData(err, key)
	return ok
}
