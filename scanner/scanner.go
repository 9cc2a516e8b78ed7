/*
File    : lox-interpreter/scanner/scanner.go
*/

// Package scanner turns Lox source text into an ordered token stream.
// It is grounded on the teacher's lexer.Lexer: a hand-rolled character
// scanner tracking position, line, and the start of the lexeme under
// construction, advancing one byte at a time with Peek/Advance helpers.
package scanner

import (
	"strconv"

	"github.com/EdvardsF/lox-interpreter/diagnostics"
	"github.com/EdvardsF/lox-interpreter/token"
)

// Scanner performs lexical analysis of Lox source code.
type Scanner struct {
	src     string
	start   int // start of the lexeme currently being scanned
	current int // index of the next unread byte
	line    int
	report  *diagnostics.Reporter
}

// New creates a Scanner over src that reports lexical errors to report.
func New(src string, report *diagnostics.Reporter) *Scanner {
	return &Scanner{src: src, start: 0, current: 0, line: 1, report: report}
}

// ScanTokens tokenizes the entire source and returns the resulting
// stream, always terminated by a single EOF token.
func (s *Scanner) ScanTokens() []token.Token {
	var tokens []token.Token
	for {
		s.start = s.current
		if s.isAtEnd() {
			break
		}
		tok, ok := s.scanToken()
		if ok {
			tokens = append(tokens, tok)
		}
	}
	tokens = append(tokens, token.New(token.EOF, "", nil, s.line, s.current, 0))
	return tokens
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.src)
}

func (s *Scanner) advance() byte {
	c := s.src[s.current]
	s.current++
	return c
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.src[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.src) {
		return 0
	}
	return s.src[s.current+1]
}

// match consumes the current byte and returns true only if it equals
// expected; otherwise it leaves the position untouched.
func (s *Scanner) match(expected byte) bool {
	if s.isAtEnd() || s.src[s.current] != expected {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) makeToken(typ token.Type) token.Token {
	return s.makeTokenWithLiteral(typ, nil)
}

func (s *Scanner) makeTokenWithLiteral(typ token.Type, literal interface{}) token.Token {
	lexeme := s.src[s.start:s.current]
	return token.New(typ, lexeme, literal, s.line, s.start, s.current-s.start)
}

// scanToken scans one lexeme starting at s.start (already positioned by
// the caller) and returns it, or ok=false if the lexeme produced no
// token (whitespace, comments) or was a lexical error (already reported).
func (s *Scanner) scanToken() (token.Token, bool) {
	c := s.advance()
	switch c {
	case ' ', '\r', '\t':
		return token.Token{}, false
	case '\n':
		s.line++
		return token.Token{}, false
	case '(':
		return s.makeToken(token.LEFT_PAREN), true
	case ')':
		return s.makeToken(token.RIGHT_PAREN), true
	case '{':
		return s.makeToken(token.LEFT_BRACE), true
	case '}':
		return s.makeToken(token.RIGHT_BRACE), true
	case ',':
		return s.makeToken(token.COMMA), true
	case '.':
		return s.makeToken(token.DOT), true
	case '-':
		return s.makeToken(token.MINUS), true
	case '+':
		return s.makeToken(token.PLUS), true
	case ';':
		return s.makeToken(token.SEMICOLON), true
	case '*':
		return s.makeToken(token.STAR), true
	case '!':
		if s.match('=') {
			return s.makeToken(token.BANG_EQUAL), true
		}
		return s.makeToken(token.BANG), true
	case '=':
		if s.match('=') {
			return s.makeToken(token.EQUAL_EQUAL), true
		}
		return s.makeToken(token.EQUAL), true
	case '<':
		if s.match('=') {
			return s.makeToken(token.LESS_EQUAL), true
		}
		return s.makeToken(token.LESS), true
	case '>':
		if s.match('=') {
			return s.makeToken(token.GREATER_EQUAL), true
		}
		return s.makeToken(token.GREATER), true
	case '/':
		if s.match('/') {
			for s.peek() != '\n' && !s.isAtEnd() {
				s.advance()
			}
			return token.Token{}, false
		}
		return s.makeToken(token.SLASH), true
	case '"', '\'':
		return s.scanString(c)
	default:
		if isDigit(c) {
			return s.scanNumber()
		}
		if isAlpha(c) {
			return s.scanIdentifier()
		}
		s.report.Report(diagnostics.PhaseLex, s.line, "Unexpected character.")
		return token.Token{}, false
	}
}

// scanString reads a string literal delimited by quote (either `"` or
// `'`), permitting embedded newlines (spec.md §4.1).
func (s *Scanner) scanString(quote byte) (token.Token, bool) {
	for s.peek() != quote && !s.isAtEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}
	if s.isAtEnd() {
		s.report.Report(diagnostics.PhaseLex, s.line, "Unterminated string.")
		return token.Token{}, false
	}
	s.advance() // the closing quote
	value := s.src[s.start+1 : s.current-1]
	return s.makeTokenWithLiteral(token.STRING, value), true
}

func (s *Scanner) scanNumber() (token.Token, bool) {
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	text := s.src[s.start:s.current]
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		s.report.Report(diagnostics.PhaseLex, s.line, "Invalid number literal.")
		return token.Token{}, false
	}
	return s.makeTokenWithLiteral(token.NUMBER, value), true
}

func (s *Scanner) scanIdentifier() (token.Token, bool) {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}
	text := s.src[s.start:s.current]
	typ, ok := token.Keywords[text]
	if !ok {
		typ = token.IDENTIFIER
	}
	return s.makeToken(typ), true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
