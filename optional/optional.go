// Package optional provides a container holding zero or one value of a type.
// It models presence explicitly instead of relying on nil or sentinel values,
// and doubles as set-at-most-once state: a Value starts empty and can be
// replaced by a populated one, with Empty/NonEmpty making the transition
// checkable.
package optional

import "fmt"

// Value holds either nothing or exactly one value of type T.
// The zero value of Value is empty and ready to use.
type Value[T any] struct {
	value T
	isSet bool
}

// Some creates a populated Value containing v.
func Some[T any](v T) Value[T] {
	return Value[T]{value: v, isSet: true}
}

// None creates an empty Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// NonEmpty returns true if the Value contains a value.
func (o Value[T]) NonEmpty() bool {
	return o.isSet
}

// Empty returns true if the Value does not contain a value.
func (o Value[T]) Empty() bool {
	return !o.isSet
}

// Get returns the contained value and whether it is present.
// This is the safe accessor; the returned value is the zero value of T
// when the Value is empty.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// GetOrPanic returns the contained value, panicking if the Value is empty.
// Calling it on an empty Value is a caller bug, not a recoverable condition.
func (o Value[T]) GetOrPanic() T {
	if !o.isSet {
		panic("optional: called GetOrPanic on None")
	}

	return o.value
}

// GetOrElse returns the contained value, or fallback when empty.
func (o Value[T]) GetOrElse(fallback T) T {
	if o.isSet {
		return o.value
	}

	return fallback
}

// GetOrElseFunc returns the contained value, or the result of calling
// fallback when empty. Use this when the fallback is expensive to build.
func (o Value[T]) GetOrElseFunc(fallback func() T) T {
	if o.isSet {
		return o.value
	}

	return fallback()
}

// String renders the Value as "Some(v)" or "None".
func (o Value[T]) String() string {
	if o.isSet {
		return fmt.Sprintf("Some(%v)", o.value)
	}

	return "None"
}

// Map transforms the contents of o with f, preserving emptiness.
func Map[T, U any](o Value[T], f func(T) U) Value[U] {
	if v, ok := o.Get(); ok {
		return Some(f(v))
	}

	return None[U]()
}
