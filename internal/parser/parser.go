// Package parser implements the recursive-descent grammar for the Azure
// DevOps flavor of YAML, producing a lossless concrete syntax tree plus a
// list of diagnostics.
//
// Every production consumes input and emits tokens and nodes through a
// syntax.Builder; malformed input is reported through diagnostics and Error
// tokens rather than returned errors, so every production "succeeds" and
// callers always proceed. Each grammar function is annotated with the YAML
// 1.2 production it implements.
package parser

import (
	"unicode/utf8"

	"github.com/shapestone/shape-pipelines/pkg/syntax"
)

const (
	// eof is returned by peek and peekNext at end of input.
	eof rune = -1

	// maxPeek bounds the number of consecutive peeks without progress,
	// where progress is consuming input or emitting a token. Tripping it
	// means a grammar function is looping; it is a defect detector for the
	// parser itself, not input validation.
	maxPeek = 1000

	defaultMaxDepth = 500
)

// Option configures a Parser.
type Option func(*Parser)

// WithMaxDepth overrides the maximum flow-node nesting depth. Inputs nested
// deeper than the limit produce a "too deeply nested" diagnostic instead of
// exhausting the call stack.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		p.maxDepth = depth
	}
}

// Parser holds the state of one parse: a read-only cursor over the decoded
// text, the tree builder, and the diagnostics collected so far. A Parser is
// created per call and discarded afterwards; it is not safe for concurrent
// use, but independent parsers never share state.
type Parser struct {
	text        string
	cursor      int
	builder     *syntax.Builder
	diagnostics []syntax.Diagnostic

	peekCount int
	depth     int
	maxDepth  int
}

// New creates a parser over decoded text and opens the root node.
func New(text string, opts ...Option) *Parser {
	p := &Parser{
		text:     text,
		builder:  syntax.NewBuilder(),
		maxDepth: defaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.builder.StartNode(syntax.KindRoot)
	return p
}

// Parse parses a full document and returns the tree plus diagnostics in
// source order. The tree always covers the entire input.
func Parse(text string, opts ...Option) (*syntax.Tree, []syntax.Diagnostic) {
	p := New(text, opts...)
	p.document()
	return p.Finish()
}

// Finish closes the root node and seals the tree.
func (p *Parser) Finish() (*syntax.Tree, []syntax.Diagnostic) {
	p.builder.FinishNode()
	return p.builder.Finish(), p.diagnostics
}

// document parses one YAML document: an optional byte order mark, leading
// comments, directives, at most one root flow node, and trailing comments.
// Anything left over is reported and skipped line by line, so the loop
// always reaches end of input.
//
// l-yaml-document (restricted to directives and a flow-style root node;
// block-style content is out of scope)
func (p *Parser) document() {
	start := p.marker()

	if p.atRune('\ufeff') {
		bom := p.pos()
		p.bump()
		p.token(syntax.KindByteOrderMark, bom)
	}

	haveNode := false
	for !p.isEndOfInput() {
		switch {
		case p.atRune('%'):
			if haveNode {
				p.errorRecover(p.pos(), "directive not allowed after document content", isBreak)
			} else {
				p.directive()
			}
		case p.atRune('#'):
			p.commentText()
		case p.at(isBreak):
			p.lineBreak()
		case p.at(isWhitespace):
			p.inlineSeparator()
		default:
			if haveNode {
				p.errorRecover(p.pos(), "expected end of document", isBreak)
			} else {
				p.flowNode(0, FlowOut)
				haveNode = true
			}
		}
	}

	p.nodeAt(start, syntax.KindDocument)
}

// Scanner primitives. The cursor is a byte offset into text; peek and bump
// operate on whole codepoints.

// peek returns the next codepoint without consuming it, or eof.
func (p *Parser) peek() rune {
	p.peekCount++
	if p.peekCount > maxPeek {
		panic("parser: detected infinite loop")
	}
	if p.cursor >= len(p.text) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(p.text[p.cursor:])
	return r
}

// peekNext returns the second codepoint of lookahead, or eof.
func (p *Parser) peekNext() rune {
	if p.cursor >= len(p.text) {
		return eof
	}
	_, size := utf8.DecodeRuneInString(p.text[p.cursor:])
	if p.cursor+size >= len(p.text) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(p.text[p.cursor+size:])
	return r
}

// bump consumes one codepoint. Calling it at end of input is a parser defect.
func (p *Parser) bump() {
	if p.cursor >= len(p.text) {
		panic("parser: bump called at end of input")
	}
	p.peekCount = 0
	_, size := utf8.DecodeRuneInString(p.text[p.cursor:])
	p.cursor += size
}

// pos returns the current byte offset.
func (p *Parser) pos() int {
	return p.cursor
}

// at reports whether the next codepoint satisfies pred.
func (p *Parser) at(pred func(rune) bool) bool {
	r := p.peek()
	return r != eof && pred(r)
}

// atRune reports whether the next codepoint equals r.
func (p *Parser) atRune(r rune) bool {
	return p.peek() == r
}

// eat consumes the next codepoint if it satisfies pred.
func (p *Parser) eat(pred func(rune) bool) bool {
	if p.at(pred) {
		p.bump()
		return true
	}
	return false
}

// eatRune consumes the next codepoint if it equals r.
func (p *Parser) eatRune(r rune) bool {
	if p.atRune(r) {
		p.bump()
		return true
	}
	return false
}

// eatWhile consumes codepoints while pred holds and returns the consumed span.
func (p *Parser) eatWhile(pred func(rune) bool) syntax.Span {
	start := p.pos()
	for p.at(pred) {
		p.bump()
	}
	return syntax.Span{Start: start, End: p.pos()}
}

// get returns the source text covered by span.
func (p *Parser) get(span syntax.Span) string {
	return p.text[span.Start:span.End]
}

// isStartOfLine is derived, not stored: true at the start of input and
// immediately after a consumed line break.
func (p *Parser) isStartOfLine() bool {
	if p.cursor == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(p.text[:p.cursor])
	return isBreak(r)
}

// isEndOfInput reports whether the cursor reached the end of the text.
func (p *Parser) isEndOfInput() bool {
	return p.cursor >= len(p.text)
}

// Tree-building helpers.

// marker records the current source position and a builder checkpoint so a
// node can be opened retroactively once its kind is known.
type marker struct {
	pos        int
	checkpoint syntax.Checkpoint
}

func (p *Parser) marker() marker {
	return marker{pos: p.pos(), checkpoint: p.builder.Checkpoint()}
}

// nodeAt wraps everything emitted since the marker into a node of the given
// kind.
func (p *Parser) nodeAt(m marker, kind syntax.SyntaxKind) {
	p.builder.StartNodeAt(m.checkpoint, kind)
	p.builder.FinishNode()
}

// token emits a leaf covering [start, current position).
func (p *Parser) token(kind syntax.SyntaxKind, start int) {
	p.tokenAt(kind, syntax.Span{Start: start, End: p.pos()})
}

// tokenAt emits a leaf covering span. Empty spans are allowed; they keep the
// tree shape stable when a construct is entirely missing.
func (p *Parser) tokenAt(kind syntax.SyntaxKind, span syntax.Span) {
	p.peekCount = 0
	p.builder.Token(kind, p.get(span))
}

// Error recovery.

// errorRecover implements the uniform recovery policy: skip forward until
// the recovery predicate matches or input ends, emit one Error token from
// start over everything consumed and skipped, and record one diagnostic.
// The caller treats the production as completed.
func (p *Parser) errorRecover(start int, message string, recover func(rune) bool) {
	for !p.isEndOfInput() && !p.at(recover) {
		p.bump()
	}
	span := syntax.Span{Start: start, End: p.pos()}
	p.tokenAt(syntax.KindError, span)
	p.diagnostics = append(p.diagnostics, syntax.NewDiagnostic(span, syntax.SeverityError, message))
}

// errorAt emits an Error token and diagnostic over an already-consumed span
// without skipping further input. Used where parsing can resume in place,
// such as an invalid escape inside a quoted scalar.
func (p *Parser) errorAt(span syntax.Span, message string) {
	p.tokenAt(syntax.KindError, span)
	p.diagnostics = append(p.diagnostics, syntax.NewDiagnostic(span, syntax.SeverityError, message))
}
