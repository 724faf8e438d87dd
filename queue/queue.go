/*
File    : libretto/queue/queue.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package queue implements TokenQueue, the two-cursor speculative lookahead
// cursor described in spec §4.2. A TokenQueue tracks a commit position
// (tokens already consumed by the caller) and a speculative cursor (used
// during grammar look-ahead). The parser consumes tokens with Peek, Pop and
// PopIfNextIs, and uses NextIs plus Rewind for its one look-ahead check
// (telling an assignment from an expression statement).
package queue

import "github.com/libretto-lang/libretto/token"

// TokenQueue is a cursor over a fixed token stream with a speculative
// look-ahead cursor in addition to the committed read position.
type TokenQueue struct {
	tokens []token.Token
	commit int // index of the next token to be popped
	spec   int // speculative cursor, always >= commit
}

// New builds a TokenQueue over the given tokens. toks must end with an EOF
// token; NextToken-producing lexers guarantee this.
func New(toks []token.Token) *TokenQueue {
	return &TokenQueue{tokens: toks}
}

// at returns the token at absolute index i, or the trailing EOF token if i is
// past the end of the stream.
func (q *TokenQueue) at(i int) token.Token {
	if i >= len(q.tokens) {
		return q.tokens[len(q.tokens)-1] // EOF
	}
	return q.tokens[i]
}

// Peek returns the token at the speculative cursor without advancing
// anything.
func (q *TokenQueue) Peek() token.Token {
	return q.at(q.spec)
}

// PeekNth returns the token n positions ahead of the speculative cursor.
func (q *TokenQueue) PeekNth(n int) token.Token {
	return q.at(q.spec + n)
}

// NextIs reports whether the token at the speculative cursor has one of the
// given types; if so it advances the speculative cursor and returns true.
func (q *TokenQueue) NextIs(types ...token.Type) bool {
	cur := q.Peek().Type
	for _, t := range types {
		if cur == t {
			q.spec++
			return true
		}
	}
	return false
}

// NextNthIs looks n tokens ahead of the speculative cursor without moving it.
func (q *TokenQueue) NextNthIs(n int, types ...token.Type) bool {
	cur := q.PeekNth(n).Type
	for _, t := range types {
		if cur == t {
			return true
		}
	}
	return false
}

// Pop moves one token from the commit position to the caller. The
// speculative cursor is an absolute index, so it keeps pointing at the same
// token; it only moves when it would fall behind the new commit position,
// and is then raised to it.
func (q *TokenQueue) Pop() token.Token {
	tok := q.at(q.commit)
	if tok.Type != token.EOF {
		q.commit++
	}
	if q.spec < q.commit {
		q.spec = q.commit
	}
	return tok
}

// PopIfNextIs pops only when the speculative cursor currently matches one of
// the given types; returns the popped token and true, or the zero Token and
// false.
func (q *TokenQueue) PopIfNextIs(types ...token.Type) (token.Token, bool) {
	save := q.spec
	if q.NextIs(types...) {
		q.spec = save
		return q.Pop(), true
	}
	return token.Token{}, false
}

// PopUntil drains tokens from the commit position until a token matching one
// of the given types is the next to be popped (that token is not consumed).
func (q *TokenQueue) PopUntil(types ...token.Type) {
	for {
		tok := q.at(q.commit)
		if tok.Type == token.EOF {
			return
		}
		for _, t := range types {
			if tok.Type == t {
				return
			}
		}
		q.Pop()
	}
}

// Mark commits the speculative cursor, making a successful look-ahead
// permanent.
func (q *TokenQueue) Mark() {
	q.commit = q.spec
}

// Rewind abandons the current look-ahead, restoring the speculative cursor to
// the commit position.
func (q *TokenQueue) Rewind() {
	q.spec = q.commit
}

// Reset is an alias for Rewind, named to match the CheckedParse = Reset then
// Check then Parse composition described in §4.2.
func (q *TokenQueue) Reset() {
	q.Rewind()
}

// Commit returns the current commit position, for diagnostics.
func (q *TokenQueue) Commit() int { return q.commit }

// Speculative returns the current speculative cursor position, for
// diagnostics and for tests asserting RawCheck's purity (§8 invariant: two
// calls to RawCheck from the same commit position leave the same speculative
// position and return the same result).
func (q *TokenQueue) Speculative() int { return q.spec }
