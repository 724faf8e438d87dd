package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libretto-lang/libretto/token"
)

func toks(types ...token.Type) []token.Token {
	out := make([]token.Token, 0, len(types)+1)
	for _, t := range types {
		out = append(out, token.Token{Type: t})
	}
	out = append(out, token.Token{Type: token.EOF})
	return out
}

func TestTokenQueue_NextIsAdvancesSpeculativeOnly(t *testing.T) {
	q := New(toks(token.INT, token.PLUS, token.INT))

	require.True(t, q.NextIs(token.INT))
	assert.Equal(t, 1, q.Speculative())
	assert.Equal(t, 0, q.Commit())
}

func TestTokenQueue_RawCheckIsPure(t *testing.T) {
	q := New(toks(token.INT, token.PLUS))

	first := q.NextIs(token.INT)
	firstSpec := q.Speculative()
	q.Rewind()

	second := q.NextIs(token.INT)
	secondSpec := q.Speculative()

	assert.Equal(t, first, second)
	assert.Equal(t, firstSpec, secondSpec)
}

func TestTokenQueue_MarkCommitsLookahead(t *testing.T) {
	q := New(toks(token.INT, token.PLUS, token.INT))

	q.NextIs(token.INT)
	q.NextIs(token.PLUS)
	q.Mark()

	assert.Equal(t, 2, q.Commit())
	popped := q.Pop()
	assert.Equal(t, token.INT, popped.Type)
}

func TestTokenQueue_RewindAbandonsLookahead(t *testing.T) {
	q := New(toks(token.INT, token.PLUS))

	q.NextIs(token.INT)
	q.Rewind()

	assert.Equal(t, 0, q.Commit())
	assert.Equal(t, 0, q.Speculative())
	popped := q.Pop()
	assert.Equal(t, token.INT, popped.Type)
}

func TestTokenQueue_PopIfNextIs(t *testing.T) {
	q := New(toks(token.LET, token.INT))

	tok, ok := q.PopIfNextIs(token.INT)
	assert.False(t, ok)
	assert.Equal(t, token.Token{}, tok)

	tok, ok = q.PopIfNextIs(token.LET)
	assert.True(t, ok)
	assert.Equal(t, token.LET, tok.Type)
	assert.Equal(t, token.INT, q.Peek().Type)
}

func TestTokenQueue_PopUntil(t *testing.T) {
	q := New(toks(token.INT, token.PLUS, token.SEMI, token.INT))

	q.PopUntil(token.SEMI)
	assert.Equal(t, token.SEMI, q.Peek().Type)
	assert.Equal(t, 2, q.Commit())
}

func TestTokenQueue_PopAtEOFIsIdempotent(t *testing.T) {
	q := New(toks())

	first := q.Pop()
	second := q.Pop()
	assert.Equal(t, token.EOF, first.Type)
	assert.Equal(t, token.EOF, second.Type)
	assert.Equal(t, 0, q.Commit())
}
