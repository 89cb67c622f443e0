package combi

import (
	"fmt"
	"io"
	"strings"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// What follows is the basic set of building blocks that users of the
// library combine with the combinators of parser.go. All primitives read at
// most one rune and unread it when they reject it, so a failed primitive
// leaves the stream where it found it.

const msgEndOfInput = "unexpected end of input"

// readMsg turns a stream read error into a failure message.
func readMsg(err error) string {
	if err == io.EOF {
		return msgEndOfInput
	}
	return err.Error()
}

// AnyChar parses any one character.
//
// This parser can only fail if the end of the stream has been reached.
func AnyChar() Parser[rune] {
	return makeParser(func(input io.RuneScanner) Result[rune] {
		c, _, err := input.ReadRune()
		if err != nil {
			tracer().Debugf("anyChar reached end of input")
			return fail[rune](readMsg(err))
		}
		return yield(c)
	})
}

// Char parses one specific character.
//
// This parser will fail if the next character in the stream is not equal
// to c. A non-matching character is not consumed.
func Char(c rune) Parser[rune] {
	return makeParser(func(input io.RuneScanner) Result[rune] {
		r, _, err := input.ReadRune()
		if err != nil {
			return fail[rune](fmt.Sprintf("expected %q: %s", c, readMsg(err)))
		}
		if r != c {
			input.UnreadRune()
			return fail[rune](fmt.Sprintf("expected %q, found %q", c, r))
		}
		return yield(r)
	})
}

// NotChar parses any character except c.
//
// This parser will fail if the next character does equal c. The rejected
// character is not consumed.
func NotChar(c rune) Parser[rune] {
	return makeParser(func(input io.RuneScanner) Result[rune] {
		r, _, err := input.ReadRune()
		if err != nil {
			return fail[rune](fmt.Sprintf("expected any character but %q: %s", c, readMsg(err)))
		}
		if r == c {
			input.UnreadRune()
			return fail[rune](fmt.Sprintf("unexpected %q", c))
		}
		return yield(r)
	})
}

// OneOf parses one of the characters in set.
//
// This parser will fail if the next character in the stream does not appear
// in set. A non-matching character is not consumed.
func OneOf(set string) Parser[rune] {
	return makeParser(func(input io.RuneScanner) Result[rune] {
		r, _, err := input.ReadRune()
		if err != nil {
			return fail[rune](fmt.Sprintf("expected one of %q: %s", set, readMsg(err)))
		}
		if !strings.ContainsRune(set, r) {
			input.UnreadRune()
			return fail[rune](fmt.Sprintf("%q is not one of %q", r, set))
		}
		return yield(r)
	})
}

// Many greedily parses 0 or more of p, collecting the characters into a
// string.
//
// This parser cannot fail. If the end of the stream is reached or p fails
// on the first attempt, the result is the empty string. Partial consumption
// by a failing composite p is not rolled back.
func Many(p Parser[rune]) Parser[string] {
	return makeParser(func(input io.RuneScanner) Result[string] {
		var b strings.Builder
		for {
			r := p.runP(input)
			if !r.OK() {
				break
			}
			b.WriteRune(r.val)
		}
		return yield(b.String())
	})
}

// Many1 greedily parses 1 or more of p, collecting the characters into a
// string.
//
// This parser will fail if the first attempt at parsing p fails, with p's
// failure message.
func Many1(p Parser[rune]) Parser[string] {
	return Bind(p, func(first rune) Parser[string] {
		return Map(func(rest string) string {
			return string(first) + rest
		}, Many(p))
	})
}
