/*
Package expr is a worked example for the combi combinator library.

It implements a small grammar for integer arithmetic, built exclusively
from the primitives of package combi:

    Sum     ::= Product (('+'|'-') Product)*
    Product ::= Factor  (('*'|'/') Factor)*
    Factor  ::= number  |  '(' Sum ')'
    number  ::= digit+

The grammar does not translate to values directly. Instead, parsing
produces postfix code (reverse Polish notation), which Eval then executes
on an operand stack. Whitespace is not part of the grammar; input like
"2*(3+4)" is expected.

Since the choice combinator never rewinds the input, a dangling operator
at the very end of the input ("1+") is consumed and ignored rather than
reported. See the package documentation of combi.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package expr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/combi"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'combi.expr'.
func tracer() tracing.Trace {
	return tracing.Select("combi.expr")
}

// Grammar returns the parser for arithmetic expressions. Running it yields
// postfix code: a flat sequence of number literals and operator tokens.
//
// The returned parser is immutable and may be run any number of times.
func Grammar() combi.Parser[[]string] {
	return sum()
}

// Eval parses and evaluates an arithmetic expression. The complete input
// has to be consumed; trailing characters are an error.
func Eval(input string) (int, error) {
	reader := strings.NewReader(input)
	r := Grammar().Run(reader)
	if !r.OK() {
		return 0, r.Err()
	}
	if c, _, err := reader.ReadRune(); err == nil {
		return 0, combi.NewError(fmt.Sprintf("unexpected trailing input at %q", c))
	}
	tracer().Debugf("postfix code = %v", r.Value())
	return evalPostfix(r.Value())
}

// --- The grammar -----------------------------------------------------------

func sum() combi.Parser[[]string] {
	return chain(product, "+-")
}

func product() combi.Parser[[]string] {
	return chain(factor, "*/")
}

func factor() combi.Parser[[]string] {
	return combi.OrDo(number(), parenthesized())
}

// parenthesized recurses into the top grammar rule. The recursion has to go
// through Lazy, otherwise constructing the grammar would never terminate.
func parenthesized() combi.Parser[[]string] {
	return combi.Bind(combi.Char('('), func(rune) combi.Parser[[]string] {
		return combi.Bind(combi.Lazy(sum), func(code []string) combi.Parser[[]string] {
			return combi.Map(func(rune) []string { return code }, combi.Char(')'))
		})
	})
}

func number() combi.Parser[[]string] {
	return combi.Map(func(digits string) []string { return []string{digits} },
		combi.Many1(combi.OneOf("0123456789")))
}

// chain parses a left-associative chain of operands, separated by one of
// the operator characters in ops, and emits operands and operators in
// postfix order.
func chain(operand func() combi.Parser[[]string], ops string) combi.Parser[[]string] {
	return combi.Bind(operand(), func(code []string) combi.Parser[[]string] {
		return more(operand, ops, code)
	})
}

func more(operand func() combi.Parser[[]string], ops string, code []string) combi.Parser[[]string] {
	step := combi.Bind(combi.OneOf(ops), func(op rune) combi.Parser[[]string] {
		return combi.Bind(operand(), func(rhs []string) combi.Parser[[]string] {
			next := make([]string, 0, len(code)+len(rhs)+1)
			next = append(next, code...)
			next = append(next, rhs...)
			next = append(next, string(op))
			return more(operand, ops, next)
		})
	})
	return combi.OrDo(step, combi.Pure(code))
}

// --- Postfix evaluation ----------------------------------------------------

// evalPostfix executes postfix code on an operand stack.
func evalPostfix(code []string) (int, error) {
	stack := arraystack.New()
	for _, tok := range code {
		switch tok {
		case "+", "-", "*", "/":
			rhs, lhs, ok := pop2(stack)
			if !ok {
				return 0, combi.NewError("malformed postfix code")
			}
			if tok == "/" && rhs == 0 {
				return 0, combi.NewError("division by zero")
			}
			stack.Push(apply(tok, lhs, rhs))
		default:
			n, err := strconv.Atoi(tok)
			if err != nil {
				return 0, combi.NewError(fmt.Sprintf("number out of range: %s", tok))
			}
			stack.Push(n)
		}
	}
	v, ok := stack.Pop()
	if !ok || !stack.Empty() {
		return 0, combi.NewError("malformed postfix code")
	}
	return v.(int), nil
}

func pop2(stack *arraystack.Stack) (rhs int, lhs int, ok bool) {
	r, ok1 := stack.Pop()
	l, ok2 := stack.Pop()
	if !ok1 || !ok2 {
		return 0, 0, false
	}
	return r.(int), l.(int), true
}

func apply(op string, lhs int, rhs int) int {
	switch op {
	case "+":
		return lhs + rhs
	case "-":
		return lhs - rhs
	case "*":
		return lhs * rhs
	}
	return lhs / rhs
}
