/*
File    : lox-interpreter/parser/parser.go
*/

// Package parser implements recursive-descent parsing of a Lox token
// stream into a statement tree, grounded on the teacher's Parser type
// (parser/parser.go): a token cursor with match/check/advance/consume
// helpers, collecting diagnostics instead of failing on the first error.
// Unlike the teacher, which decomposed its (much larger) grammar across
// a dozen parser_*.go files, this grammar is small enough to keep in
// four: this file (cursor plumbing and panic-mode recovery),
// declarations.go and statements.go, and expressions.go (the precedence
// chain).
package parser

import (
	"github.com/EdvardsF/lox-interpreter/ast"
	"github.com/EdvardsF/lox-interpreter/diagnostics"
	"github.com/EdvardsF/lox-interpreter/token"
)

const maxArgs = 255

// Parser turns a token stream into a list of statements. It never panics
// out to its caller: parse errors are recorded on the shared Reporter and
// the parser recovers via synchronize() to keep looking for more errors,
// exactly as spec.md §4.2 describes.
type Parser struct {
	tokens  []token.Token
	current int
	report  *diagnostics.Reporter
}

// New creates a Parser over an already-scanned token stream.
func New(tokens []token.Token, report *diagnostics.Reporter) *Parser {
	return &Parser{tokens: tokens, report: report}
}

// parseError is the internal panic-mode sentinel (spec.md §4.2): thrown
// to unwind to the top of declaration() once a parse step cannot
// proceed. It is never observed outside this package.
type parseError struct{ error }

// Parse parses the whole token stream into a program: a list of
// statements. Each top-level declaration that fails to parse is skipped
// (after synchronize()) so that later declarations still get a chance,
// surfacing as many diagnostics as possible in one pass.
func (p *Parser) Parse() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.isAtEnd() {
		if s := p.declarationRecovering(); s != nil {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

func (p *Parser) declarationRecovering() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); ok {
				p.synchronize()
				stmt = nil
				return
			}
			panic(r)
		}
	}()
	return p.declaration()
}

// synchronize discards tokens until it sees a statement boundary (a
// semicolon) or the start of a new declaration/statement keyword, so
// parsing can resume cleanly after an error (spec.md §4.2).
func (p *Parser) synchronize() {
	for !p.isAtEnd() {
		switch p.peek().Type {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
		if p.previous().Type == token.SEMICOLON {
			return
		}
	}
}

// --- token cursor primitives ---

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == token.EOF
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(typ token.Type) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == typ
}

// match consumes and returns true if the current token is one of types.
func (p *Parser) match(types ...token.Type) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// consume requires the current token to have type typ, advancing past
// it; otherwise it reports message and unwinds via panic-mode recovery.
func (p *Parser) consume(typ token.Type, message string) token.Token {
	if p.check(typ) {
		return p.advance()
	}
	panic(p.errorAt(p.peek(), message))
}

func (p *Parser) errorAt(tok token.Token, message string) parseError {
	where := tok.Lexeme
	if tok.Type == token.EOF {
		where = "end"
	}
	p.report.ReportAt(diagnostics.PhaseParse, tok.Line, where, message)
	return parseError{}
}
