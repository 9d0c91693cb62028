package parser

import "github.com/shapestone/shape-pipelines/pkg/syntax"

// properties parses the node properties preceding flow content: a tag
// followed by an optional anchor, or an anchor followed by an optional tag,
// in either order, separated per the context.
//
// c-ns-properties(n,c)
func (p *Parser) properties(indent int, ctx Context) {
	switch {
	case p.atRune('!'):
		p.tagProperty()
		if p.peekSkipSeparator(ctx) == '&' && p.trySeparator(indent, ctx) {
			p.anchorProperty()
		}
	case p.atRune('&'):
		p.anchorProperty()
		if p.peekSkipSeparator(ctx) == '!' && p.trySeparator(indent, ctx) {
			p.tagProperty()
		}
	default:
		p.errorRecover(p.pos(), "expected '!' or '&'", ctx.recovery())
	}
}

// tagHandle parses one of the three tag handle forms used in a %TAG
// directive: primary "!", secondary "!!", or named "!name!". The whole
// handle becomes a single token.
//
// c-tag-handle
func (p *Parser) tagHandle() {
	start := p.pos()
	if !p.eatRune('!') {
		p.errorRecover(start, "invalid tag handle: expected '!'", isFlowIndicatorOrSeparator)
		return
	}

	if p.at(isWordChar) {
		p.eatWhile(isWordChar)
		if !p.eatRune('!') {
			p.errorRecover(start, "invalid tag handle: expected '!'", isFlowIndicatorOrSeparator)
			return
		}
		p.token(syntax.KindNamedTagHandle, start)
	} else if p.eatRune('!') {
		p.token(syntax.KindSecondaryTagHandle, start)
	} else {
		p.token(syntax.KindPrimaryTagHandle, start)
	}
}

// tagPrefix parses the prefix argument of a %TAG directive: either a local
// prefix starting with '!' or a global URI prefix. The prefix becomes a
// single token.
//
// ns-tag-prefix
func (p *Parser) tagPrefix() {
	start := p.pos()
	if !p.atRune('!') && (!p.at(isURIChar) || p.at(isFlowIndicator)) {
		p.errorRecover(start, "invalid initial tag prefix character", isSeparator)
		return
	}
	p.eatRune('!')
	p.eatWhile(isURIChar)
	p.token(syntax.KindTagPrefix, start)
}

// tagProperty parses a tag attached to a node: the verbatim form "!<uri>",
// a shorthand with a primary, secondary or named handle, or the bare
// non-specific "!".
//
// c-ns-tag-property
func (p *Parser) tagProperty() {
	start := p.marker()
	if !p.eatRune('!') {
		p.errorRecover(start.pos, "expected '!'", isFlowIndicatorOrSeparator)
		return
	}

	if p.eatRune('<') {
		p.token(syntax.KindVerbatimTagStart, start.pos)

		if !p.at(isURIChar) {
			p.errorRecover(p.pos(), "invalid verbatim tag character", isFlowIndicatorOrSeparator)
			return
		}
		uri := p.eatWhile(isURIChar)
		p.tokenAt(syntax.KindVerbatimTag, uri)

		if !p.eatRune('>') {
			p.errorRecover(p.pos(), "expected '>'", isFlowIndicatorOrSeparator)
			return
		}
		p.token(syntax.KindVerbatimTagEnd, uri.End)
	} else if p.at(isTagChar) {
		bang := syntax.Span{Start: start.pos, End: p.pos()}
		nameOrSuffix := p.eatWhile(isTagChar)
		if p.eatRune('!') {
			// Named handle: the middle chars were a handle name, which is
			// held to the stricter word-character class.
			p.tokenAt(syntax.KindTagToken, bang)
			if allWordChars(p.get(nameOrSuffix)) {
				p.tokenAt(syntax.KindNamedTagHandle, nameOrSuffix)
			} else {
				p.errorAt(nameOrSuffix, "invalid character in tag handle")
			}
			p.token(syntax.KindTagToken, nameOrSuffix.End)
			p.tagSuffix()
		} else {
			p.tokenAt(syntax.KindPrimaryTagHandle, bang)
			p.tokenAt(syntax.KindTagSuffix, nameOrSuffix)
		}
	} else if p.eatRune('!') {
		p.token(syntax.KindSecondaryTagHandle, start.pos)
		p.tagSuffix()
	} else {
		p.token(syntax.KindNonSpecificTag, start.pos)
	}

	p.nodeAt(start, syntax.KindTagProperty)
}

// tagSuffix parses the suffix following a tag handle.
func (p *Parser) tagSuffix() {
	if !p.at(isTagChar) {
		p.errorRecover(p.pos(), "expected tag suffix", isFlowIndicatorOrSeparator)
		return
	}
	suffix := p.eatWhile(isTagChar)
	p.tokenAt(syntax.KindTagSuffix, suffix)
}

// anchorProperty parses "&name".
//
// c-ns-anchor-property
func (p *Parser) anchorProperty() {
	start := p.marker()

	if !p.eatRune('&') {
		p.errorRecover(p.pos(), "expected '&'", isFlowIndicatorOrSeparator)
		return
	}
	p.token(syntax.KindAnchorToken, start.pos)

	p.anchorName()

	p.nodeAt(start, syntax.KindAnchorProperty)
}

// aliasNode parses "*name".
//
// c-ns-alias-node
func (p *Parser) aliasNode() {
	start := p.marker()

	if !p.eatRune('*') {
		p.errorRecover(p.pos(), "expected '*'", isFlowIndicatorOrSeparator)
		return
	}
	p.token(syntax.KindAliasToken, start.pos)

	p.anchorName()

	p.nodeAt(start, syntax.KindAliasNode)
}

// anchorName parses the name shared by anchors and aliases.
func (p *Parser) anchorName() {
	if !p.at(isAnchorChar) {
		p.errorRecover(p.pos(), "invalid anchor name character", isFlowIndicatorOrSeparator)
		return
	}
	name := p.eatWhile(isAnchorChar)
	p.tokenAt(syntax.KindAnchorName, name)
}

func allWordChars(s string) bool {
	for _, r := range s {
		if !isWordChar(r) {
			return false
		}
	}
	return true
}
