package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/shapestone/shape-pipelines/pkg/syntax"
)

// flowNode parses a complete flow-style node: an alias, or optional
// properties followed by flow content. Nesting is bounded by the configured
// depth limit; past it the node is reported and skipped instead of risking
// stack exhaustion.
//
// ns-flow-node(n,c)
func (p *Parser) flowNode(indent int, ctx Context) {
	if p.depth >= p.maxDepth {
		p.errorRecover(p.pos(), "too deeply nested", ctx.recovery())
		return
	}
	p.depth++
	defer func() { p.depth-- }()

	start := p.marker()

	switch {
	case p.atRune('*'):
		p.aliasNode()
	case p.atRune('!') || p.atRune('&'):
		p.properties(indent, ctx)
		if p.trySeparator(indent, ctx) {
			p.flowContent(indent, ctx)
		}
	default:
		p.flowContent(indent, ctx)
	}

	p.nodeAt(start, syntax.KindFlowNode)
}

// flowContent dispatches on one character of lookahead: a plain scalar when
// the first character is safe under the context, otherwise a JSON-like form.
//
// ns-flow-content(n,c)
func (p *Parser) flowContent(indent int, ctx Context) {
	start := p.marker()
	r := p.peek()
	switch {
	case r != eof && isNonWhitespace(r) && !isIndicator(r):
		p.flowYamlContent(indent, ctx)
	case (r == '?' || r == ':' || r == '-') && ctx.isPlainSafe(p.peekNext()):
		p.flowYamlContent(indent, ctx)
	case r == '[' || r == '{' || r == '\'' || r == '"':
		p.flowJsonContent(indent, ctx)
	default:
		p.errorRecover(p.pos(), "invalid flow content", ctx.recovery())
		return
	}
	p.nodeAt(start, syntax.KindFlowContent)
}

// flowYamlContent parses a plain scalar. The first character was validated
// by flowContent.
//
// A plain scalar extends while characters stay safe under the context, with
// two exceptions from the YAML grammar: ':' only continues the scalar when
// followed by another safe character, and '#' only when preceded by a
// non-space. The extent is confined to one line; line folding is the
// semantic layer's concern.
//
// ns-flow-yaml-content(n,c) / ns-plain(n,c)
func (p *Parser) flowYamlContent(indent int, ctx Context) {
	start := p.pos()
	p.bump()

	for {
		switch r := p.peek(); {
		case r == ':':
			next := p.peekNext()
			if next == eof || !ctx.isPlainSafe(next) {
				p.token(syntax.KindPlainScalar, start)
				return
			}
			p.bump()
		case r == '#':
			if !p.precededByNonSpace() {
				p.token(syntax.KindPlainScalar, start)
				return
			}
			p.bump()
		case r != eof && ctx.isPlainSafe(r):
			p.bump()
		default:
			p.token(syntax.KindPlainScalar, start)
			return
		}
	}
}

// precededByNonSpace reports whether the codepoint just before the cursor is
// neither whitespace nor a break. The caller guarantees the cursor is not at
// the start of input.
func (p *Parser) precededByNonSpace() bool {
	r, _ := utf8.DecodeLastRuneInString(p.text[:p.cursor])
	return !isWhitespace(r) && !isBreak(r)
}

// flowJsonContent parses the JSON-like flow forms.
//
// ns-flow-json-content(n,c)
func (p *Parser) flowJsonContent(indent int, ctx Context) {
	switch p.peek() {
	case '[':
		p.flowSequence(indent, ctx)
	case '{':
		p.flowMapping(indent, ctx)
	case '\'':
		p.singleQuoted(indent, ctx)
	case '"':
		p.doubleQuoted(indent, ctx)
	default:
		p.errorRecover(p.pos(), `expected one of '[', '{', '"' or "'"`, ctx.recovery())
	}
}

// flowSequence parses "[ entries ]".
//
// c-flow-sequence(n,c)
func (p *Parser) flowSequence(indent int, ctx Context) {
	start := p.marker()
	if !p.eatRune('[') {
		p.errorRecover(p.pos(), "expected '['", ctx.recovery())
		return
	}
	p.token(syntax.KindSequenceStart, start.pos)

	p.trySeparator(indent, ctx)

	p.flowSequenceEntries(indent, ctx.inFlow())

	end := p.pos()
	if !p.eatRune(']') {
		p.errorRecover(p.pos(), "expected ']'", ctx.recovery())
		return
	}
	p.token(syntax.KindSequenceEnd, end)

	p.nodeAt(start, syntax.KindFlowSequence)
}

// flowSequenceEntries parses comma-separated sequence entries. A trailing
// comma is allowed. The loop either consumes a comma or returns, so it
// always terminates.
//
// ns-s-flow-seq-entries(n,c)
func (p *Parser) flowSequenceEntries(indent int, ctx Context) {
	for {
		if p.isEndOfInput() || p.atRune(']') || p.atRune('}') {
			return
		}
		p.flowSequenceEntry(indent, ctx)
		p.trySeparator(indent, ctx)

		sep := p.pos()
		if !p.eatRune(',') {
			return
		}
		p.token(syntax.KindEntrySeparator, sep)
		p.trySeparator(indent, ctx)
	}
}

// flowSequenceEntry parses one sequence entry: a single-pair mapping
// ("key: value", or explicit "? key : value") or a plain flow node.
//
// Whether the entry is a pair is only known once the colon shows up, so the
// node is parsed in the full flow context and an implicit key that turns out
// to span lines is diagnosed after the fact.
//
// ns-flow-seq-entry(n,c)
func (p *Parser) flowSequenceEntry(indent int, ctx Context) {
	start := p.marker()

	if p.atExplicitKey(ctx) {
		p.explicitKey(indent, ctx)
		p.pairTail(indent, ctx)
		p.nodeAt(start, syntax.KindFlowPair)
		return
	}

	p.flowNode(indent, ctx)
	end := p.pos()
	if p.pairTail(indent, ctx) {
		if strings.ContainsAny(p.text[start.pos:end], "\r\n") {
			span := syntax.Span{Start: start.pos, End: end}
			p.diagnostics = append(p.diagnostics,
				syntax.NewDiagnostic(span, syntax.SeverityError, "implicit key must not span lines"))
		}
		p.nodeAt(start, syntax.KindFlowPair)
	}
}

// flowMapping parses "{ entries }".
//
// c-flow-mapping(n,c)
func (p *Parser) flowMapping(indent int, ctx Context) {
	start := p.marker()
	if !p.eatRune('{') {
		p.errorRecover(p.pos(), "expected '{'", ctx.recovery())
		return
	}
	p.token(syntax.KindMappingStart, start.pos)

	p.trySeparator(indent, ctx)

	p.flowMappingEntries(indent, ctx.inFlow())

	end := p.pos()
	if !p.eatRune('}') {
		p.errorRecover(p.pos(), "expected '}'", ctx.recovery())
		return
	}
	p.token(syntax.KindMappingEnd, end)

	p.nodeAt(start, syntax.KindFlowMapping)
}

// flowMappingEntries parses comma-separated mapping entries.
//
// ns-s-flow-map-entries(n,c)
func (p *Parser) flowMappingEntries(indent int, ctx Context) {
	for {
		if p.isEndOfInput() || p.atRune('}') || p.atRune(']') {
			return
		}
		p.flowMappingEntry(indent, ctx)
		p.trySeparator(indent, ctx)

		sep := p.pos()
		if !p.eatRune(',') {
			return
		}
		p.token(syntax.KindEntrySeparator, sep)
		p.trySeparator(indent, ctx)
	}
}

// flowMappingEntry parses one mapping entry. An implicit key is confined to
// a single line; both the colon and the value are optional, so "{a}" and
// "{a:}" are well-formed.
//
// ns-flow-map-entry(n,c)
func (p *Parser) flowMappingEntry(indent int, ctx Context) {
	start := p.marker()

	if p.atExplicitKey(ctx) {
		p.explicitKey(indent, ctx)
		p.pairTail(indent, ctx)
	} else {
		p.flowNode(indent, ctx.keyContext())
		p.pairTail(indent, ctx)
	}

	p.nodeAt(start, syntax.KindFlowPair)
}

// atExplicitKey reports whether a '?' at the cursor starts an explicit key
// rather than a plain scalar.
func (p *Parser) atExplicitKey(ctx Context) bool {
	if !p.atRune('?') {
		return false
	}
	next := p.peekNext()
	return next == eof || !ctx.isPlainSafe(next)
}

// explicitKey parses "? key". The key itself may be empty.
//
// ns-flow-map-explicit-entry(n,c)
func (p *Parser) explicitKey(indent int, ctx Context) {
	q := p.pos()
	p.bump()
	p.token(syntax.KindMappingKeyToken, q)

	if p.trySeparator(indent, ctx) && p.hasPairKey() {
		p.flowNode(indent, ctx)
		p.trySeparator(indent, ctx)
	}
}

// pairTail parses the optional ": value" tail of a flow pair and reports
// whether a colon was present. The value itself may be empty.
func (p *Parser) pairTail(indent int, ctx Context) bool {
	if p.peekSkipSeparator(ctx) != ':' {
		return false
	}
	p.trySeparator(indent, ctx)
	if !p.atRune(':') {
		return false
	}

	colon := p.pos()
	p.bump()
	p.token(syntax.KindMappingValueToken, colon)

	if p.trySeparator(indent, ctx) && p.hasPairValue() {
		p.flowNode(indent, ctx)
	}
	return true
}

func (p *Parser) hasPairKey() bool {
	r := p.peek()
	return r != eof && r != ':' && !isFlowIndicator(r) && !isBreak(r)
}

func (p *Parser) hasPairValue() bool {
	r := p.peek()
	return r != eof && r != ',' && r != ']' && r != '}'
}
