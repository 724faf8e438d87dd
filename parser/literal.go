/*
File    : libretto/parser/literal.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package parser

import (
	"strconv"

	"github.com/libretto-lang/libretto/compiler"
	"github.com/libretto-lang/libretto/lson"
	"github.com/libretto-lang/libretto/token"
)

// parseLiteral recursively parses an embedded LSON literal: a primitive
// (int/float/string/bool/none), an array `[value, ...]`, or a struct
// `{key: value, ...}`, per §4.3's "LSON literal parsing recursively handles
// {key: value, …}, [value, …], and primitive literals."
func (p *Parser) parseLiteral(cc *compiler.Context) (lson.Value, bool) {
	tok := p.q.Peek()
	switch tok.Type {
	case token.INT:
		p.q.Pop()
		n, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			cc.PushError(compiler.ParseCheckInconsistent("integer literal"))
			return lson.None{}, false
		}
		return lson.Int(n), true

	case token.FLOAT:
		p.q.Pop()
		f, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			cc.PushError(compiler.ParseCheckInconsistent("float literal"))
			return lson.None{}, false
		}
		return lson.Float(f), true

	case token.STRING:
		p.q.Pop()
		return lson.String(tok.Literal), true

	case token.TRUE:
		p.q.Pop()
		return lson.Bool(true), true

	case token.FALSE:
		p.q.Pop()
		return lson.Bool(false), true

	case token.NONE_LIT:
		p.q.Pop()
		return lson.None{}, true

	case token.LBRACKET:
		return p.parseArrayLiteral(cc)

	case token.LBRACE:
		return p.parseStructLiteral(cc)

	default:
		return lson.None{}, false
	}
}

// parseArrayLiteral parses `[ value, ... ]` via the shared comma-separated
// combinator (see util.go), grounded in
// original_source/src/parse/util.rs's ParseCommaSeparatedList.
func (p *Parser) parseArrayLiteral(cc *compiler.Context) (lson.Value, bool) {
	p.q.Pop() // '['
	elems, ok := ParseCommaSeparated(p, cc, token.RBRACKET, func(p *Parser, cc *compiler.Context) (lson.Value, bool) {
		return p.parseLiteral(cc)
	})
	p.q.PopIfNextIs(token.RBRACKET)
	if !ok {
		return lson.None{}, false
	}
	return lson.Array(elems), true
}

// parseStructLiteral parses `{ key: value, ... }` where key is either a bare
// identifier or a string literal.
func (p *Parser) parseStructLiteral(cc *compiler.Context) (lson.Value, bool) {
	p.q.Pop() // '{'
	entries, ok := ParseCommaSeparated(p, cc, token.RBRACE, func(p *Parser, cc *compiler.Context) (keyValue, bool) {
		return p.parseKeyValue(cc)
	})
	p.q.PopIfNextIs(token.RBRACE)
	if !ok {
		return lson.None{}, false
	}
	s := make(lson.Struct, len(entries))
	for _, kv := range entries {
		s[kv.Key] = kv.Value
	}
	return s, true
}

// keyValue is one `key: value` struct-literal entry.
type keyValue struct {
	Key   string
	Value lson.Value
}

// parseKeyValue parses a single struct-literal entry.
func (p *Parser) parseKeyValue(cc *compiler.Context) (keyValue, bool) {
	tok := p.q.Peek()
	var key string
	switch tok.Type {
	case token.IDENT, token.STRING:
		p.q.Pop()
		key = tok.Literal
	default:
		return keyValue{}, false
	}
	if _, ok := p.q.PopIfNextIs(token.COLON); !ok {
		return keyValue{}, false
	}
	v, ok := p.parseLiteral(cc)
	if !ok {
		return keyValue{}, false
	}
	return keyValue{Key: key, Value: v}, true
}
