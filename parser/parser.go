/*
File    : libretto/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements Libretto's recursive-descent parser (ast's node
// types implement the validate/evaluate half of spec §4.3's combinator
// quartet). Each production is a parse function that consumes tokens
// directly; the only raw_check-style look-ahead is checkAssignStmt, which
// tells an assignment from an expression statement. The parser builds a typed
// AST from a speculative-lookahead TokenQueue (package queue) over the
// expression grammar Expr -> Equality -> Comparison -> Term -> Factor ->
// Unary -> Value, plus the statement layer (let, assign, expr-stmt).
package parser

import (
	"github.com/libretto-lang/libretto/ast"
	"github.com/libretto-lang/libretto/compiler"
	"github.com/libretto-lang/libretto/lexer"
	"github.com/libretto-lang/libretto/lson"
	"github.com/libretto-lang/libretto/queue"
	"github.com/libretto-lang/libretto/token"
)

// Parser holds the token queue being consumed. It carries no compile-time
// state of its own — type checking happens in a later Validate pass driven
// by compiler.Context — but parsing may still record a ParseCheckInconsistent
// compile error when a production cannot be parsed from the source, hence
// the *compiler.Context parameter threaded through every parse function.
type Parser struct {
	q *queue.TokenQueue
}

// New builds a Parser over src, lexing it fully up front. TokenQueue's
// speculative cursor needs the whole stream available for look-ahead, so
// unlike the teacher's streaming two-token lookahead, Libretto's parser
// buffers the complete token list (§4.2's "single peekable iterator plus an
// index buffer" realization of the two-cursor discipline).
func New(src string) *Parser {
	return &Parser{q: queue.New(lexer.Tokenize(src))}
}

// NewFromTokens builds a Parser over an already-lexed token stream, used by
// tests that want to exercise the parser against hand-built token lists.
func NewFromTokens(toks []token.Token) *Parser {
	return &Parser{q: queue.New(toks)}
}

// ParseProgram parses statements until EOF, accumulating compile errors into
// cc, and returns the resulting ast.Root. Per §6's compile() contract, the
// AST is returned regardless of errors; callers decide whether to reject.
//
// Forward progress is guaranteed explicitly: a statement that can't start a
// value (an ILLEGAL token, a stray closing delimiter, ...) leaves parseValue
// unable to consume anything, so parseStmt/parseExprStmt would otherwise
// return the same commit position forever. Every iteration therefore checks
// the commit cursor before and after; if a statement made no progress at
// all, the offending token is popped directly so the loop always advances.
func (p *Parser) ParseProgram(cc *compiler.Context) *ast.Root {
	root := &ast.Root{}
	for p.q.Peek().Type != token.EOF {
		before := p.q.Commit()
		stmt := p.parseStmt(cc)
		if stmt == nil {
			// Parse could not make progress (e.g. a genuinely malformed
			// token); skip to the next statement boundary so one bad
			// statement doesn't stall the whole program.
			p.q.PopUntil(token.SEMI)
			p.q.PopIfNextIs(token.SEMI)
			continue
		}
		if p.q.Commit() == before {
			// Nothing was consumed (e.g. a lone ILLEGAL or unexpected
			// closing delimiter that couldn't start a value — parseValue
			// already recorded a ParseCheckInconsistent for this): drop
			// the token directly so the loop doesn't spin on it forever.
			p.q.Pop()
		}
		root.Statements = append(root.Statements, stmt)
	}
	return root
}

// parseStmt dispatches among LetStmt, AssignStmt, and ExprStmt. LetStmt is
// unambiguous (keyword-led); AssignStmt vs ExprStmt share an IDENT prefix,
// so this is exactly the kind of ambiguity §4.3's raw_check/check discipline
// exists for: look ahead for `IDENT =` before committing to AssignStmt.
func (p *Parser) parseStmt(cc *compiler.Context) ast.Node {
	switch p.q.Peek().Type {
	case token.LET:
		return p.parseLetStmt(cc)
	case token.IDENT:
		if p.checkAssignStmt() {
			return p.parseAssignStmt(cc)
		}
		return p.parseExprStmt(cc)
	default:
		return p.parseExprStmt(cc)
	}
}

// checkAssignStmt is AssignStmt's raw_check: does the speculative cursor
// see `IDENT =` (not `IDENT ==`, which the lexer already lexes as a single
// EQ token, so no further disambiguation is needed here)? This is pure
// look-ahead: it always rewinds the speculative cursor back to the commit
// position before returning, win or lose, so parseAssignStmt's own Pop
// calls are the ones that actually consume the ident and '=' tokens
// (§4.2: raw_check "advances only the speculative cursor").
func (p *Parser) checkAssignStmt() bool {
	ok := p.q.NextIs(token.IDENT) && p.q.NextIs(token.ASSIGN)
	p.q.Rewind()
	return ok
}

// parseLetStmt parses `let ident (':' type)? ('=' expr)? ';'`.
func (p *Parser) parseLetStmt(cc *compiler.Context) ast.Node {
	p.q.Pop() // 'let'
	identTok := p.q.Pop()
	stmt := &ast.LetStmt{Ident: identTok.Literal}

	if _, ok := p.q.PopIfNextIs(token.COLON); ok {
		typeTok := p.q.Pop()
		if t, ok := typeNameToType(typeTok.Type); ok {
			stmt.HasDeclaredType = true
			stmt.DeclaredType = t
		} else {
			cc.PushError(compiler.ParseCheckInconsistent("LetStmt type annotation"))
		}
	}

	if _, ok := p.q.PopIfNextIs(token.ASSIGN); ok {
		stmt.Rhs = p.parseExpr(cc)
	}

	p.q.PopIfNextIs(token.SEMI)
	return stmt
}

// parseAssignStmt parses `ident '=' expr ';'`. Only called after
// checkAssignStmt's look-ahead has confirmed the ident and '=' are present;
// the speculative cursor was rewound by checkAssignStmt, so these two Pop
// calls are what actually consumes them.
func (p *Parser) parseAssignStmt(cc *compiler.Context) ast.Node {
	identTok := p.q.Pop()
	p.q.Pop() // '='
	rhs := p.parseExpr(cc)
	p.q.PopIfNextIs(token.SEMI)
	return &ast.AssignStmt{Ident: identTok.Literal, Rhs: rhs}
}

// parseExprStmt parses a bare `expr ';'`.
func (p *Parser) parseExprStmt(cc *compiler.Context) ast.Node {
	inner := p.parseExpr(cc)
	p.q.PopIfNextIs(token.SEMI)
	return &ast.ExprStmt{Inner: inner}
}

// typeNameToType maps a type-name token to its lson.Type, used by LetStmt's
// optional declared-type annotation.
func typeNameToType(t token.Type) (lson.Type, bool) {
	switch t {
	case token.INT_TYPE:
		return lson.IntType, true
	case token.FLOAT_TYPE:
		return lson.FloatType, true
	case token.STRING_TYPE:
		return lson.StringType, true
	case token.BOOL_TYPE:
		return lson.BoolType, true
	case token.STRUCT_TYPE:
		return lson.StructType, true
	case token.ARRAY_TYPE:
		return lson.ArrayType, true
	default:
		return lson.NoneType, false
	}
}

// parseExpr parses the top grammar level: `EqualityExpr ('?' Literal)?`.
func (p *Parser) parseExpr(cc *compiler.Context) ast.Node {
	inner := p.parseEquality(cc)
	expr := &ast.Expr{Inner: inner}
	if _, ok := p.q.PopIfNextIs(token.QUESTION); ok {
		lit, ok := p.parseLiteral(cc)
		if !ok {
			cc.PushError(compiler.ParseCheckInconsistent("Expr default literal"))
			lit = lson.None{}
		}
		expr.HasDefault = true
		expr.Default = lit
		expr.DefaultType = lit.Type()
	}
	return expr
}

// parseEquality parses `Comparison {(== | !=) Comparison}*`.
func (p *Parser) parseEquality(cc *compiler.Context) ast.Node {
	left := p.parseComparison(cc)
	var ops []token.Type
	var rhs []ast.Node
	for {
		tok, ok := p.q.PopIfNextIs(token.EQ, token.NEQ)
		if !ok {
			break
		}
		ops = append(ops, tok.Type)
		rhs = append(rhs, p.parseComparison(cc))
	}
	if len(ops) == 0 {
		return left
	}
	return ast.NewEqualityExpr(left, ops, rhs)
}

// parseComparison parses `Term {(< | > | <= | >=) Term}*`.
func (p *Parser) parseComparison(cc *compiler.Context) ast.Node {
	left := p.parseTerm(cc)
	var ops []token.Type
	var rhs []ast.Node
	for {
		tok, ok := p.q.PopIfNextIs(token.LT, token.GT, token.LEQ, token.GEQ)
		if !ok {
			break
		}
		ops = append(ops, tok.Type)
		rhs = append(rhs, p.parseTerm(cc))
	}
	if len(ops) == 0 {
		return left
	}
	return ast.NewComparisonExpr(left, ops, rhs)
}

// parseTerm parses `Factor {(+ | -) Factor}*`.
func (p *Parser) parseTerm(cc *compiler.Context) ast.Node {
	left := p.parseFactor(cc)
	var ops []token.Type
	var rhs []ast.Node
	for {
		tok, ok := p.q.PopIfNextIs(token.PLUS, token.MINUS)
		if !ok {
			break
		}
		ops = append(ops, tok.Type)
		rhs = append(rhs, p.parseFactor(cc))
	}
	if len(ops) == 0 {
		return left
	}
	return ast.NewTermExpr(left, ops, rhs)
}

// parseFactor parses `Unary {(* | /) Unary}*`.
func (p *Parser) parseFactor(cc *compiler.Context) ast.Node {
	left := p.parseUnary(cc)
	var ops []token.Type
	var rhs []ast.Node
	for {
		tok, ok := p.q.PopIfNextIs(token.STAR, token.SLASH)
		if !ok {
			break
		}
		ops = append(ops, tok.Type)
		rhs = append(rhs, p.parseUnary(cc))
	}
	if len(ops) == 0 {
		return left
	}
	return ast.NewFactorExpr(left, ops, rhs)
}

// parseUnary parses `([! | -])? Value`.
func (p *Parser) parseUnary(cc *compiler.Context) ast.Node {
	if tok, ok := p.q.PopIfNextIs(token.BANG, token.MINUS); ok {
		return &ast.UnaryExpr{Op: tok.Type, Operand: p.parseValue(cc)}
	}
	return p.parseValue(cc)
}

// parseValue parses `Value = Literal(LSON) | Variable(name)`. A
// parenthesized sub-expression is also accepted here as an implementation
// convenience grounded in the teacher's parseParenthesizedExpression — the
// grammar's precedence chain alone has no other way to escape back up to
// the top of the operator chain inside a nested literal-free
// sub-expression. The parenthesized part is parsed as an EqualityExpr, so a
// `? default` tail is not accepted inside the parentheses.
func (p *Parser) parseValue(cc *compiler.Context) ast.Node {
	if _, ok := p.q.PopIfNextIs(token.LPAREN); ok {
		inner := p.parseEquality(cc)
		p.q.PopIfNextIs(token.RPAREN)
		return inner
	}
	if p.q.Peek().Type == token.IDENT {
		tok := p.q.Pop()
		return &ast.ValueExpr{IsVariable: true, Name: tok.Literal}
	}
	lit, ok := p.parseLiteral(cc)
	if !ok {
		cc.PushError(compiler.ParseCheckInconsistent("Value"))
		lit = lson.None{}
	}
	return &ast.ValueExpr{Literal: lit}
}
