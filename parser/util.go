/*
File    : libretto/parser/util.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Parser utilities (spec §2 row U): the comma-separated-list and key-value
// combinators underlying array- and struct-literal parsing, generalized
// from original_source/src/parse/util.rs's ParseCommaSeparatedList<P, T>
// into a generic Go function over any element-parsing function.
package parser

import (
	"github.com/libretto-lang/libretto/compiler"
	"github.com/libretto-lang/libretto/token"
)

// ParseCommaSeparated parses a comma-separated list of T, stopping when the
// next token is end (not consumed — the caller pops the closing delimiter).
// An empty list (next token is immediately end) is valid. A trailing comma
// before end is accepted, matching common literal-list ergonomics.
func ParseCommaSeparated[T any](p *Parser, cc *compiler.Context, end token.Type, elem func(*Parser, *compiler.Context) (T, bool)) ([]T, bool) {
	var out []T
	if p.q.Peek().Type == end {
		return out, true
	}
	for {
		v, ok := elem(p, cc)
		if !ok {
			return nil, false
		}
		out = append(out, v)
		if _, ok := p.q.PopIfNextIs(token.COMMA); !ok {
			break
		}
		if p.q.Peek().Type == end {
			break // trailing comma
		}
	}
	return out, true
}
