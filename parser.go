package combi

import "io"

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Parser is the central data type of the library: a recipe for consuming
// characters from an input stream and producing a value of type T, or a
// failure. Parsers are immutable values, cheap to copy, and reusable —
// running a parser leaves it untouched.
//
// Parsers are created exclusively by the factory functions of this package
// (Pure, Fail, Map, Bind, OrDo, Lazy and the character primitives). The
// zero value of Parser is not usable.
type Parser[T any] struct {
	runP func(io.RuneScanner) Result[T]
}

// makeParser is the package-private constructor for parsers. Everything a
// client may do with parsers goes through the enumerated factory functions.
func makeParser[T any](f func(io.RuneScanner) Result[T]) Parser[T] {
	return Parser[T]{runP: f}
}

// Run executes the parser, reading characters from input. This is the only
// point where stream I/O happens; constructing parsers performs no reads.
//
// The stream is borrowed, not owned: combinators advance it monotonically
// and never seek backwards (single-character primitives may unread the one
// rune they rejected, which is within the io.RuneScanner contract). After a
// failed run the stream is left wherever the failing parser stopped.
func (p Parser[T]) Run(input io.RuneScanner) Result[T] {
	return p.runP(input)
}

// --- Monad algebra ---------------------------------------------------------

// Pure returns a parser which consumes no input and always succeeds with a.
// It is the unit of the combinator algebra:
//
//     Bind(Pure(a), f)  ≡  f(a)
//     Bind(p, Pure[T])  ≡  p
func Pure[T any](a T) Parser[T] {
	return makeParser(func(io.RuneScanner) Result[T] {
		return yield(a)
	})
}

// Map applies a function to the result of a parser.
//
// Can be a very useful combinator, f.ex. to apply smart constructors to the
// result of another parser. A failure of p passes through with its message
// unaltered; no input beyond p's own consumption is read.
func Map[T, U any](f func(T) U, p Parser[T]) Parser[U] {
	return makeParser(func(input io.RuneScanner) Result[U] {
		return MapResult(p.runP(input), f)
	})
}

// Bind runs two parsers in sequence, feeding the output of p to f.
//
// The parser returned by f is run against the same, already-advanced
// stream: whatever p consumed stays consumed. Since f may inspect the
// parsed value before deciding on the follow-up parser, Bind is the
// building block for context-sensitive grammars ("read a length prefix,
// then exactly that many characters").
//
// If p fails, the failure propagates with its message unaltered and f is
// never called.
func Bind[T, U any](p Parser[T], f func(T) Parser[U]) Parser[U] {
	return makeParser(func(input io.RuneScanner) Result[U] {
		r := p.runP(input)
		if !r.OK() {
			return fail[U](r.Err().Message())
		}
		return f(r.val).runP(input)
	})
}

// --- Alternative algebra ---------------------------------------------------

// Fail returns a parser which consumes no input and always fails. It is the
// identity element of choice:
//
//     OrDo(Fail[T](), p)  ≡  p  ≡  OrDo(p, Fail[T]())
func Fail[T any]() Parser[T] {
	return makeParser(func(io.RuneScanner) Result[T] {
		return fail[T]("Unknown parse error.")
	})
}

// OrDo tries two parsers in sequence.
//
// If p1 succeeds, its result is returned and p2 is never run. If p1 fails,
// p2 is run; if p2 fails as well, the composite fails with both messages,
// joined by " or ".
//
// Note that p1 could in some situations consume input and _then_ fail. The
// stream is not rewound before p2 runs, so p2 starts at the advanced
// position. This might be exactly what you want, or it might be very
// confusing.
func OrDo[T any](p1, p2 Parser[T]) Parser[T] {
	return makeParser(func(input io.RuneScanner) Result[T] {
		r := p1.runP(input)
		if r.OK() {
			return r
		}
		r2 := p2.runP(input)
		if r2.OK() {
			return r2
		}
		msg := r.Err().Message() + " or " + r2.Err().Message()
		tracer().Debugf("both alternatives failed: %s", msg)
		return fail[T](msg)
	})
}

// --- Recursive grammars ----------------------------------------------------

// Lazy defers construction of a parser until run time: thunk is called only
// when the returned parser is actually run, and the parser it yields is run
// immediately on the same stream.
//
// This is useful e.g. if you want a parser to recurse. A grammar rule
// referring to itself would otherwise recurse during construction already.
func Lazy[T any](thunk func() Parser[T]) Parser[T] {
	return makeParser(func(input io.RuneScanner) Result[T] {
		return thunk().runP(input)
	})
}
