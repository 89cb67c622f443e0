package combi

import "fmt"

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// --- Parse errors ----------------------------------------------------------

// Error is the failure payload of a parser run.
//
// It is a thin immutable wrapper around a human-readable message. We could
// have used a string directly, but the wrapper conveys more semantic
// information to users of the library.
type Error struct {
	msg string
}

// NewError wraps a message into an Error.
func NewError(msg string) Error {
	return Error{msg: msg}
}

// Message returns the message verbatim, as given at construction time.
func (e Error) Message() string {
	return e.msg
}

// Error returns the message, making parse errors usable wherever a standard
// error is expected.
func (e Error) Error() string {
	return e.msg
}

// --- Results ---------------------------------------------------------------

// Result is what running a parser produces: either a value of type T, or an
// Error describing why no value could be parsed. Exactly one of the two is
// populated. Results are immutable; operations that transform a result
// produce a new one.
type Result[T any] struct {
	val T
	err *Error
}

// yield wraps a value into a successful result. Only parser runs produce
// results, therefore construction stays package-private.
func yield[T any](v T) Result[T] {
	return Result[T]{val: v}
}

// fail wraps a message into a failed result.
func fail[T any](msg string) Result[T] {
	e := Error{msg: msg}
	return Result[T]{err: &e}
}

// OK returns true if the result holds a parsed value.
func (r Result[T]) OK() bool {
	return r.err == nil
}

// Value returns the parsed value. It is only valid if r.OK() is true.
func (r Result[T]) Value() T {
	return r.val
}

// Err returns the failure payload. It is only valid if r.OK() is false.
func (r Result[T]) Err() Error {
	if r.err == nil {
		return Error{}
	}
	return *r.err
}

func (r Result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Err(%s)", r.err.msg)
	}
	return fmt.Sprintf("Ok(%v)", r.val)
}

// MapResult applies f to the contained value when the result is successful.
// A failed result passes through untouched, i.e. with its message unaltered.
func MapResult[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.err != nil {
		return Result[U]{err: r.err}
	}
	return yield(f(r.val))
}
