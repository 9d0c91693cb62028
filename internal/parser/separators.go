package parser

import (
	"fmt"
	"unicode/utf8"

	"github.com/shapestone/shape-pipelines/pkg/syntax"
)

// Separator grammar. Block and flow contexts allow a separator to cross line
// boundaries, absorbing trailing comments and the indentation prefix of the
// following line; key contexts confine a separator to a single line. Each
// try function reports whether a separator was actually consumed, which
// callers use to gate a following optional construct.

// trySeparator consumes a separator appropriate to the context.
//
// s-separate(n,c)
func (p *Parser) trySeparator(indent int, ctx Context) bool {
	if ctx.isKey() {
		return p.tryInlineSeparator()
	}
	return p.tryLineSeparator(indent)
}

// tryLineSeparator consumes a separator that may span line breaks, including
// trailing comments and the required indentation on the following line.
//
// s-separate-lines(n)
func (p *Parser) tryLineSeparator(indent int) bool {
	switch p.peekSkipInlineSeparator() {
	case eof, '\n', '\r', '#':
		p.separatedLineComments()
		p.flowLinePrefix(indent)
		return true
	default:
		return p.tryInlineSeparator()
	}
}

// tryInlineSeparator consumes whitespace on the current line, if any.
//
// s-separate-in-line
func (p *Parser) tryInlineSeparator() bool {
	if p.isInlineSeparator() {
		p.inlineSeparator()
		return true
	}
	return false
}

// isInlineSeparator reports whether an inline separator is possible here:
// either whitespace follows, or the cursor sits at the start of a line
// (where an empty separator is valid).
//
// s-separate-in-line
func (p *Parser) isInlineSeparator() bool {
	return p.isStartOfLine() || p.at(isWhitespace)
}

// inlineSeparator consumes the whitespace run at the cursor. The run may be
// empty at the start of a line; no token is emitted for an empty run.
func (p *Parser) inlineSeparator() {
	span := p.eatWhile(isWhitespace)
	if !span.Empty() {
		p.tokenAt(syntax.KindInlineSeparator, span)
	}
}

// lineBreak consumes a single \n, \r or \r\n. The caller must have checked
// that a break follows.
//
// b-break
func (p *Parser) lineBreak() {
	start := p.pos()
	isCR := p.atRune('\r')
	p.bump()
	if isCR && p.atRune('\n') {
		p.bump()
	}
	p.token(syntax.KindLineBreak, start)
}

// flowLinePrefix consumes the indentation required at the start of a
// continuation line inside a flow construct, plus any further whitespace.
//
// s-flow-line-prefix(n)
func (p *Parser) flowLinePrefix(indent int) {
	start := p.pos()
	for i := 0; i < indent; i++ {
		if !p.eatRune(' ') {
			p.errorRecover(start, fmt.Sprintf("expected line to be indented %d spaces", indent), isFlowIndicator)
			return
		}
	}
	span := p.eatWhile(isWhitespace)
	if start != p.pos() {
		p.tokenAt(syntax.KindInlineSeparator, syntax.Span{Start: start, End: span.End})
	}
}

// peekSkipInlineSeparator returns the first codepoint after the whitespace
// run at the cursor, without consuming anything.
func (p *Parser) peekSkipInlineSeparator() rune {
	for i := p.cursor; i < len(p.text); i++ {
		b := p.text[i]
		if b == ' ' || b == '\t' {
			continue
		}
		return p.runeAt(i)
	}
	return eof
}

// peekSkipLineSeparator returns the first codepoint after any run of
// whitespace, line breaks and comments, without consuming anything.
func (p *Parser) peekSkipLineSeparator() rune {
	inComment := false
	for i := p.cursor; i < len(p.text); i++ {
		b := p.text[i]
		switch {
		case b == '\n' || b == '\r':
			inComment = false
		case inComment:
		case b == ' ' || b == '\t':
		case b == '#':
			inComment = true
		default:
			return p.runeAt(i)
		}
	}
	return eof
}

// peekSkipSeparator returns the first codepoint past the separator allowed
// by the context.
func (p *Parser) peekSkipSeparator(ctx Context) rune {
	if ctx.isKey() {
		return p.peekSkipInlineSeparator()
	}
	return p.peekSkipLineSeparator()
}

// runeAt decodes the codepoint starting at byte offset i. It bypasses peek
// so speculative scans do not count against the runaway-loop guard.
func (p *Parser) runeAt(i int) rune {
	r, _ := utf8.DecodeRuneInString(p.text[i:])
	return r
}
