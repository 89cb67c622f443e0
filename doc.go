/*
Package combi is a small parser combinator library.

Combi strives to be a lightweight companion for building character-level
parsers by composition: a handful of primitive parsers together with a
combinator algebra to glue them into grammars. Package structure is as
follows:

■ combi: The base package contains the central Parser type, the Result and
Error types produced by parser runs, the monadic combinators (Pure, Map,
Bind), the alternative combinators (Fail, OrDo), lazy construction for
recursive grammars, and the primitive character parsers.

■ expr: Package expr is a worked example, composing the primitives of the
base package into a small arithmetic expression grammar and evaluator.
Its sub-directory crepl holds an interactive command line tool for it.

Building a Parser

Parsers are values of type Parser[T]. They are created by the factory
functions of this package and combined into larger parsers; no parsing
happens until Run is called with an input stream. A parser reading a
letter-digit pair would be written as

    letter := combi.OneOf("abc")
    digit := combi.OneOf("0123456789")
    pair := combi.Bind(letter, func(l rune) combi.Parser[string] {
        return combi.Map(func(d rune) string {
            return string(l) + string(d)
        }, digit)
    })
    result := pair.Run(strings.NewReader("b7"))   // Ok("b7")

Running a parser consumes characters from an io.RuneScanner and yields a
Result: either a parsed value or an Error carrying a message. Choice
between alternatives is expressed with OrDo, repetition with Many and
Many1, and self-referential grammar rules with Lazy.

A Note on Backtracking

Combinators never rewind the input stream. If the first branch of an OrDo
consumes characters and fails afterwards, the second branch starts at the
already-advanced position. The single-character primitives unread a rune
they rejected, which is all the lookahead this library offers; clients
needing more must buffer input themselves.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package combi

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'combi'.
func tracer() tracing.Trace {
	return tracing.Select("combi")
}
