package parser

import "github.com/shapestone/shape-pipelines/pkg/syntax"

// singleQuoted parses a single-quoted scalar. Text between the quotes is
// emitted as StringText runs, with each "''" escape as its own token and
// each line break (outside key contexts) as its own token.
//
// c-single-quoted(n,c)
func (p *Parser) singleQuoted(indent int, ctx Context) {
	start := p.marker()
	if !p.eatRune('\'') {
		p.errorRecover(p.pos(), "expected '''", ctx.recovery())
		return
	}
	p.token(syntax.KindSingleQuote, start.pos)

	run := p.pos()
	flush := func() {
		if run != p.pos() {
			p.token(syntax.KindStringText, run)
		}
	}

	for {
		switch r := p.peek(); {
		case r == eof:
			flush()
			p.errorRecover(p.pos(), "unterminated single-quoted scalar", ctx.recovery())
			return
		case r == '\'' && p.peekNext() == '\'':
			flush()
			esc := p.pos()
			p.bump()
			p.bump()
			p.token(syntax.KindEscapeSequence, esc)
			run = p.pos()
		case r == '\'':
			flush()
			quote := p.pos()
			p.bump()
			p.token(syntax.KindSingleQuote, quote)
			p.nodeAt(start, syntax.KindSingleQuoted)
			return
		case isBreak(r):
			if ctx.isKey() {
				flush()
				p.errorRecover(p.pos(), "single-quoted scalar must not span lines", isBreak)
				return
			}
			flush()
			p.lineBreak()
			run = p.pos()
		default:
			p.bump()
		}
	}
}

// doubleQuoted parses a double-quoted scalar, tokenized like singleQuoted
// but with backslash escapes.
//
// c-double-quoted(n,c)
func (p *Parser) doubleQuoted(indent int, ctx Context) {
	start := p.marker()
	if !p.eatRune('"') {
		p.errorRecover(p.pos(), `expected '"'`, ctx.recovery())
		return
	}
	p.token(syntax.KindDoubleQuote, start.pos)

	run := p.pos()
	flush := func() {
		if run != p.pos() {
			p.token(syntax.KindStringText, run)
		}
	}

	for {
		switch r := p.peek(); {
		case r == eof:
			flush()
			p.errorRecover(p.pos(), "unterminated double-quoted scalar", ctx.recovery())
			return
		case r == '"':
			flush()
			quote := p.pos()
			p.bump()
			p.token(syntax.KindDoubleQuote, quote)
			p.nodeAt(start, syntax.KindDoubleQuoted)
			return
		case r == '\\':
			flush()
			p.escapeSequence()
			run = p.pos()
		case isBreak(r):
			if ctx.isKey() {
				flush()
				p.errorRecover(p.pos(), "double-quoted scalar must not span lines", isBreak)
				return
			}
			flush()
			p.lineBreak()
			run = p.pos()
		default:
			p.bump()
		}
	}
}

// escapeSequence parses one backslash escape inside a double-quoted scalar.
// An invalid escape is still consumed and tokenized so the scalar keeps its
// extent; only a diagnostic is raised.
//
// c-ns-esc-char
func (p *Parser) escapeSequence() {
	esc := p.pos()
	p.bump()

	switch r := p.peek(); {
	case r == eof:
		p.errorAt(syntax.Span{Start: esc, End: p.pos()}, "invalid escape sequence")
	case r == 'x':
		p.bump()
		p.escapeHex(esc, 2)
	case r == 'u':
		p.bump()
		p.escapeHex(esc, 4)
	case r == 'U':
		p.bump()
		p.escapeHex(esc, 8)
	case isBreak(r):
		// An escaped break continues the scalar on the next line.
		p.bump()
		if r == '\r' && p.atRune('\n') {
			p.bump()
		}
		p.token(syntax.KindEscapeSequence, esc)
	case isSingleCharEscape(r):
		p.bump()
		p.token(syntax.KindEscapeSequence, esc)
	default:
		p.bump()
		p.errorAt(syntax.Span{Start: esc, End: p.pos()}, "invalid escape sequence")
	}
}

// escapeHex consumes the n hex digits of a \x, \u or \U escape.
func (p *Parser) escapeHex(esc int, n int) {
	for i := 0; i < n; i++ {
		if !p.eat(isHexDigit) {
			p.errorAt(syntax.Span{Start: esc, End: p.pos()}, "invalid escape sequence")
			return
		}
	}
	p.token(syntax.KindEscapeSequence, esc)
}

// ns-esc-* single-character forms.
func isSingleCharEscape(r rune) bool {
	switch r {
	case '0', 'a', 'b', 't', '\t', 'n', 'v', 'f', 'r', 'e',
		' ', '"', '/', '\\', 'N', '_', 'L', 'P':
		return true
	}
	return false
}
