// Package zero provides helpers for zero values of generic type parameters.
package zero

import "reflect"

// Value returns the zero value of T. A generic function has no literal it
// can spell for "the zero of my type parameter" inside an expression, so the
// usual workaround is a throwaway `var v T` declaration; Value packages that
// workaround so error paths can stay single-line:
//
//	if err != nil {
//		return zero.Value[T](), err
//	}
func Value[T any]() T {
	var v T

	return v
}

// IsZero reports whether value equals the zero value of T, using a deep
// comparison. This is the usual way to express "the operation produced
// nothing" for arbitrary result types, e.g. as a retry condition:
//
//	builder.RetryIfResult(zero.IsZero[string])
func IsZero[T any](value T) bool {
	var v T

	return reflect.DeepEqual(value, v)
}
