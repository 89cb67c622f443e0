/*
Package crepl/main provides an interactive command line tool (C.REPL)
for the arithmetic expression grammar of package expr. The grammar is
built entirely from combi parser combinators, which makes C.REPL a
convenient sandbox to observe combinator behavior — failure messages,
alternation, and the effects of non-rewinding input consumption — on
live input.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'combi.expr'
func tracer() tracing.Trace {
	return tracing.Select("combi.expr")
}
