package parser

import "github.com/shapestone/shape-pipelines/pkg/syntax"

// commentText parses a single comment: the # marker and the body up to the
// end of the line.
//
// c-nb-comment-text
func (p *Parser) commentText() {
	start := p.marker()
	if !p.eatRune('#') {
		p.errorRecover(start.pos, "expected '#'", isBreak)
		return
	}
	p.token(syntax.KindCommentToken, start.pos)

	body := p.eatWhile(isNonBreak)
	p.tokenAt(syntax.KindCommentBody, body)

	p.nodeAt(start, syntax.KindCommentText)
}

// separatedLineComments parses the tail of a line after a construct: an
// optional comment separated by whitespace, the line break, and any number
// of following comment-only lines. A comment glued directly to the preceding
// value is an error.
//
// s-l-comments
func (p *Parser) separatedLineComments() {
	if p.atRune('#') {
		start := p.pos()
		p.bump()
		p.errorRecover(start, "comments must be separated from values", isBreak)
		return
	}
	if p.tryInlineSeparator() && p.atRune('#') {
		p.commentText()
	}

	if p.at(isBreak) {
		p.lineBreak()
	} else if p.isEndOfInput() {
		return
	} else if !p.isStartOfLine() {
		p.errorRecover(p.pos(), "expected end of line", isBreak)
		return
	}

	p.lineComments()
}

// lineComments consumes consecutive lines that contain nothing but
// whitespace and comments.
//
// l-comment*
func (p *Parser) lineComments() {
	for p.isInlineSeparator() {
		switch p.peekSkipInlineSeparator() {
		case eof, '#', '\r', '\n':
		default:
			return
		}
		p.inlineSeparator()
		if p.atRune('#') {
			p.commentText()
		} else if p.at(isBreak) {
			p.lineBreak()
		} else if p.isEndOfInput() {
			return
		}
	}
}
